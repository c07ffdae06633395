package handlers

import (
	"crypto/subtle"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/shepherdsuite/church_mgmt_app/internal/core/ports/services"
	"github.com/shepherdsuite/church_mgmt_app/internal/dto"
	"github.com/shepherdsuite/church_mgmt_app/internal/middleware"
	"github.com/shepherdsuite/church_mgmt_app/internal/platform/config"
)

// subscriptionHandler handles subscription lifecycle and the payment webhook.
type subscriptionHandler struct {
	cfg             *config.Config
	subscriptionSvc portssvc.SubscriptionSvcFacade
}

func newSubscriptionHandler(cfg *config.Config, subscriptionSvc portssvc.SubscriptionSvcFacade) *subscriptionHandler {
	return &subscriptionHandler{cfg: cfg, subscriptionSvc: subscriptionSvc}
}

// registerSubscriptionRoutes registers authenticated subscription endpoints.
func registerSubscriptionRoutes(rg *gin.RouterGroup, cfg *config.Config, subscriptionSvc portssvc.SubscriptionSvcFacade) {
	h := newSubscriptionHandler(cfg, subscriptionSvc)

	subs := rg.Group("/subscription")
	{
		subs.GET("", h.getCurrent)
		subs.POST("", h.subscribe)
		subs.POST("/cancel", h.cancel)
		subs.POST("/renew", h.renew)
	}
}

// registerPaymentWebhookRoute registers the unauthenticated gateway callback.
func registerPaymentWebhookRoute(rg *gin.RouterGroup, cfg *config.Config, subscriptionSvc portssvc.SubscriptionSvcFacade) {
	h := newSubscriptionHandler(cfg, subscriptionSvc)
	rg.POST("/webhooks/payments", h.paymentWebhook)
}

// getCurrent godoc
// @Summary Get the caller's current subscription
// @Description Returns the subscription record, or the free plan when the
// caller never subscribed.
// @Tags subscription
// @Produce json
// @Success 200 {object} dto.Envelope{data=dto.SubscriptionResponse}
// @Failure 401 {object} dto.Envelope
// @Security BearerAuth
// @Router /subscription [get]
func (h *subscriptionHandler) getCurrent(c *gin.Context) {
	accountID, ok := requireAccountID(c)
	if !ok {
		return
	}

	sub, err := h.subscriptionSvc.GetCurrentSubscription(c.Request.Context(), accountID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.OK(dto.ToSubscriptionResponse(sub)))
}

// subscribe godoc
// @Summary Start or change a paid subscription
// @Tags subscription
// @Accept json
// @Produce json
// @Param subscription body dto.SubscribeRequest true "Plan and billing cycle"
// @Success 201 {object} dto.Envelope{data=dto.SubscriptionResponse}
// @Failure 400 {object} dto.Envelope
// @Security BearerAuth
// @Router /subscription [post]
func (h *subscriptionHandler) subscribe(c *gin.Context) {
	accountID, ok := requireAccountID(c)
	if !ok {
		return
	}

	var req dto.SubscribeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	sub, err := h.subscriptionSvc.Subscribe(c.Request.Context(), accountID, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.OK(dto.ToSubscriptionResponse(sub)))
}

// cancel godoc
// @Summary Cancel the caller's active subscription
// @Description The plan's benefits run until the end of the paid period.
// @Tags subscription
// @Produce json
// @Success 200 {object} dto.Envelope{data=dto.SubscriptionResponse}
// @Failure 409 {object} dto.Envelope
// @Security BearerAuth
// @Router /subscription/cancel [post]
func (h *subscriptionHandler) cancel(c *gin.Context) {
	accountID, ok := requireAccountID(c)
	if !ok {
		return
	}

	sub, err := h.subscriptionSvc.Cancel(c.Request.Context(), accountID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.OK(dto.ToSubscriptionResponse(sub)))
}

// renew godoc
// @Summary Renew a cancelled or expired subscription
// @Tags subscription
// @Produce json
// @Success 200 {object} dto.Envelope{data=dto.SubscriptionResponse}
// @Failure 409 {object} dto.Envelope
// @Security BearerAuth
// @Router /subscription/renew [post]
func (h *subscriptionHandler) renew(c *gin.Context) {
	accountID, ok := requireAccountID(c)
	if !ok {
		return
	}

	sub, err := h.subscriptionSvc.Renew(c.Request.Context(), accountID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.OK(dto.ToSubscriptionResponse(sub)))
}

// paymentWebhook godoc
// @Summary Payment gateway callback
// @Description Applies a gateway event to the subscription it references.
// Authenticated by the X-Webhook-Secret shared-secret header.
// @Tags subscription
// @Accept json
// @Produce json
// @Param event body dto.PaymentWebhookRequest true "Gateway event"
// @Success 200 {object} dto.Envelope
// @Failure 401 {object} dto.Envelope
// @Router /webhooks/payments [post]
func (h *subscriptionHandler) paymentWebhook(c *gin.Context) {
	secret := c.GetHeader("X-Webhook-Secret")
	if h.cfg.PaymentWebhookSecret == "" ||
		subtle.ConstantTimeCompare([]byte(secret), []byte(h.cfg.PaymentWebhookSecret)) != 1 {
		middleware.GetLoggerFromCtx(c.Request.Context()).Warn("Payment webhook rejected: bad secret")
		c.JSON(http.StatusUnauthorized, dto.Fail(dto.ErrorBody{Message: "invalid webhook secret"}))
		return
	}

	var req dto.PaymentWebhookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	if err := h.subscriptionSvc.HandleGatewayEvent(c.Request.Context(), req); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.OK(gin.H{"received": true}))
}
