package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/shepherdsuite/church_mgmt_app/internal/core/ports/services"
	"github.com/shepherdsuite/church_mgmt_app/internal/dto"
)

// campaignHandler handles donation campaigns and their lifecycle.
type campaignHandler struct {
	campaignSvc portssvc.CampaignSvcFacade
}

func newCampaignHandler(campaignSvc portssvc.CampaignSvcFacade) *campaignHandler {
	return &campaignHandler{campaignSvc: campaignSvc}
}

// registerCampaignRoutes registers campaign endpoints under a church-scoped group.
func registerCampaignRoutes(rg *gin.RouterGroup, campaignSvc portssvc.CampaignSvcFacade) {
	h := newCampaignHandler(campaignSvc)

	campaigns := rg.Group("/campaigns")
	{
		campaigns.POST("", h.createCampaign)
		campaigns.GET("", h.listCampaigns)
		campaigns.GET("/:campaignID", h.getCampaign)
		campaigns.PATCH("/:campaignID", h.updateCampaign)
		campaigns.POST("/:campaignID/transition", h.transitionCampaign)
		campaigns.GET("/:campaignID/history", h.listHistory)
	}
}

// createCampaign godoc
// @Summary Create a donation campaign
// @Description Requires church STAFF. New campaigns start as drafts. Gated on
// the church creator's plan.
// @Tags campaigns
// @Accept json
// @Produce json
// @Param churchID path string true "Church ID"
// @Param campaign body dto.CreateCampaignRequest true "Campaign details"
// @Success 201 {object} dto.Envelope{data=dto.CampaignResponse}
// @Failure 403 {object} dto.Envelope "Plan limit reached"
// @Security BearerAuth
// @Router /churches/{churchID}/campaigns [post]
func (h *campaignHandler) createCampaign(c *gin.Context) {
	accountID, ok := requireAccountID(c)
	if !ok {
		return
	}

	var req dto.CreateCampaignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	campaign, err := h.campaignSvc.CreateCampaign(c.Request.Context(), c.Param("churchID"), accountID, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.OK(dto.ToCampaignResponse(campaign)))
}

// listCampaigns godoc
// @Summary List the church's campaigns
// @Tags campaigns
// @Produce json
// @Param churchID path string true "Church ID"
// @Param page query int false "Page number"
// @Param limit query int false "Page size"
// @Success 200 {object} dto.Envelope{data=[]dto.CampaignResponse}
// @Security BearerAuth
// @Router /churches/{churchID}/campaigns [get]
func (h *campaignHandler) listCampaigns(c *gin.Context) {
	params, ok := parsePagination(c)
	if !ok {
		return
	}

	campaigns, err := h.campaignSvc.ListCampaigns(c.Request.Context(), c.Param("churchID"), params)
	if err != nil {
		respondError(c, err)
		return
	}

	resp := make([]dto.CampaignResponse, len(campaigns))
	for i := range campaigns {
		resp[i] = dto.ToCampaignResponse(&campaigns[i])
	}
	c.JSON(http.StatusOK, dto.OK(resp))
}

// getCampaign godoc
// @Summary Get a campaign
// @Tags campaigns
// @Produce json
// @Param churchID path string true "Church ID"
// @Param campaignID path string true "Campaign ID"
// @Success 200 {object} dto.Envelope{data=dto.CampaignResponse}
// @Failure 404 {object} dto.Envelope
// @Security BearerAuth
// @Router /churches/{churchID}/campaigns/{campaignID} [get]
func (h *campaignHandler) getCampaign(c *gin.Context) {
	campaign, err := h.campaignSvc.GetCampaignByID(c.Request.Context(), c.Param("churchID"), c.Param("campaignID"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.OK(dto.ToCampaignResponse(campaign)))
}

// updateCampaign godoc
// @Summary Edit a campaign
// @Description Requires church STAFF. Completed and cancelled campaigns are
// closed to edits.
// @Tags campaigns
// @Accept json
// @Produce json
// @Param churchID path string true "Church ID"
// @Param campaignID path string true "Campaign ID"
// @Param campaign body dto.UpdateCampaignRequest true "Fields to update"
// @Success 200 {object} dto.Envelope{data=dto.CampaignResponse}
// @Failure 409 {object} dto.Envelope
// @Security BearerAuth
// @Router /churches/{churchID}/campaigns/{campaignID} [patch]
func (h *campaignHandler) updateCampaign(c *gin.Context) {
	accountID, ok := requireAccountID(c)
	if !ok {
		return
	}

	var req dto.UpdateCampaignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	campaign, err := h.campaignSvc.UpdateCampaign(c.Request.Context(), c.Param("churchID"), c.Param("campaignID"), accountID, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.OK(dto.ToCampaignResponse(campaign)))
}

// transitionCampaign godoc
// @Summary Move a campaign along its lifecycle
// @Description Requires church ADMIN. Legal moves: draft to active or
// cancelled; active to paused, cancelled or completed; paused to active,
// cancelled or completed.
// @Tags campaigns
// @Accept json
// @Produce json
// @Param churchID path string true "Church ID"
// @Param campaignID path string true "Campaign ID"
// @Param transition body dto.CampaignTransitionRequest true "Target status and optional comment"
// @Success 200 {object} dto.Envelope{data=dto.CampaignResponse}
// @Failure 409 {object} dto.Envelope "Illegal transition"
// @Security BearerAuth
// @Router /churches/{churchID}/campaigns/{campaignID}/transition [post]
func (h *campaignHandler) transitionCampaign(c *gin.Context) {
	accountID, ok := requireAccountID(c)
	if !ok {
		return
	}

	var req dto.CampaignTransitionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	campaign, err := h.campaignSvc.TransitionCampaign(c.Request.Context(), c.Param("churchID"), c.Param("campaignID"), accountID, req.Status, req.Comment)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.OK(dto.ToCampaignResponse(campaign)))
}

// listHistory godoc
// @Summary List a campaign's status history
// @Tags campaigns
// @Produce json
// @Param churchID path string true "Church ID"
// @Param campaignID path string true "Campaign ID"
// @Success 200 {object} dto.Envelope{data=[]dto.CampaignStatusChangeResponse}
// @Security BearerAuth
// @Router /churches/{churchID}/campaigns/{campaignID}/history [get]
func (h *campaignHandler) listHistory(c *gin.Context) {
	history, err := h.campaignSvc.ListCampaignHistory(c.Request.Context(), c.Param("churchID"), c.Param("campaignID"))
	if err != nil {
		respondError(c, err)
		return
	}

	resp := make([]dto.CampaignStatusChangeResponse, len(history))
	for i, ch := range history {
		resp[i] = dto.CampaignStatusChangeResponse{
			ChangeID:   ch.ChangeID,
			FromStatus: ch.FromStatus,
			ToStatus:   ch.ToStatus,
			Comment:    ch.Comment,
			ChangedBy:  ch.ChangedBy,
			ChangedAt:  ch.ChangedAt,
		}
	}
	c.JSON(http.StatusOK, dto.OK(resp))
}
