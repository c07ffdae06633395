package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/shepherdsuite/church_mgmt_app/internal/core/ports/services"
	"github.com/shepherdsuite/church_mgmt_app/internal/dto"
)

// notificationHandler handles church notifications.
type notificationHandler struct {
	notificationSvc portssvc.NotificationSvcFacade
}

func newNotificationHandler(notificationSvc portssvc.NotificationSvcFacade) *notificationHandler {
	return &notificationHandler{notificationSvc: notificationSvc}
}

// registerNotificationRoutes registers notification endpoints under a
// church-scoped group.
func registerNotificationRoutes(rg *gin.RouterGroup, notificationSvc portssvc.NotificationSvcFacade) {
	h := newNotificationHandler(notificationSvc)

	notifications := rg.Group("/notifications")
	{
		notifications.POST("/broadcast", h.broadcast)
		notifications.GET("", h.listMine)
		notifications.POST("/:notificationID/read", h.markRead)
	}
}

// broadcast godoc
// @Summary Broadcast a notification to the church
// @Description Requires church STAFF. Creates a notification for every linked
// account, optionally restricted by church role. Email delivery is best-effort.
// @Tags notifications
// @Accept json
// @Produce json
// @Param churchID path string true "Church ID"
// @Param notification body dto.BroadcastNotificationRequest true "Notification content"
// @Success 201 {object} dto.Envelope
// @Failure 400 {object} dto.Envelope
// @Security BearerAuth
// @Router /churches/{churchID}/notifications/broadcast [post]
func (h *notificationHandler) broadcast(c *gin.Context) {
	accountID, ok := requireAccountID(c)
	if !ok {
		return
	}

	var req dto.BroadcastNotificationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	count, err := h.notificationSvc.Broadcast(c.Request.Context(), c.Param("churchID"), accountID, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.OK(gin.H{"recipients": count}))
}

// listMine godoc
// @Summary List the caller's notifications in the church
// @Tags notifications
// @Produce json
// @Param churchID path string true "Church ID"
// @Param unread query bool false "Only unread notifications"
// @Param page query int false "Page number"
// @Param limit query int false "Page size"
// @Success 200 {object} dto.Envelope{data=[]dto.NotificationResponse}
// @Security BearerAuth
// @Router /churches/{churchID}/notifications [get]
func (h *notificationHandler) listMine(c *gin.Context) {
	accountID, ok := requireAccountID(c)
	if !ok {
		return
	}

	params, ok := parsePagination(c)
	if !ok {
		return
	}

	unreadOnly := c.Query("unread") == "true"
	notifications, err := h.notificationSvc.ListMine(c.Request.Context(), c.Param("churchID"), accountID, unreadOnly, params)
	if err != nil {
		respondError(c, err)
		return
	}

	resp := make([]dto.NotificationResponse, len(notifications))
	for i := range notifications {
		resp[i] = dto.ToNotificationResponse(&notifications[i])
	}
	c.JSON(http.StatusOK, dto.OK(resp))
}

// markRead godoc
// @Summary Mark a notification read
// @Description Idempotent: an already-read notification keeps its original
// read timestamp.
// @Tags notifications
// @Produce json
// @Param churchID path string true "Church ID"
// @Param notificationID path string true "Notification ID"
// @Success 200 {object} dto.Envelope{data=dto.NotificationResponse}
// @Failure 404 {object} dto.Envelope
// @Security BearerAuth
// @Router /churches/{churchID}/notifications/{notificationID}/read [post]
func (h *notificationHandler) markRead(c *gin.Context) {
	accountID, ok := requireAccountID(c)
	if !ok {
		return
	}

	notification, err := h.notificationSvc.MarkRead(c.Request.Context(), c.Param("churchID"), accountID, c.Param("notificationID"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.OK(dto.ToNotificationResponse(notification)))
}
