package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/shepherdsuite/church_mgmt_app/internal/core/ports/services"
	"github.com/shepherdsuite/church_mgmt_app/internal/dto"
)

// accountHandler handles the caller's own profile.
type accountHandler struct {
	accountSvc portssvc.AccountSvcFacade
}

func newAccountHandler(accountSvc portssvc.AccountSvcFacade) *accountHandler {
	return &accountHandler{accountSvc: accountSvc}
}

// registerAccountRoutes registers authenticated profile endpoints.
func registerAccountRoutes(rg *gin.RouterGroup, accountSvc portssvc.AccountSvcFacade) {
	h := newAccountHandler(accountSvc)

	me := rg.Group("/me")
	{
		me.GET("", h.getProfile)
		me.PATCH("", h.updateProfile)
		me.DELETE("", h.deactivate)
	}
}

// getProfile godoc
// @Summary Get the caller's profile
// @Tags account
// @Produce json
// @Success 200 {object} dto.Envelope{data=dto.AccountResponse}
// @Failure 401 {object} dto.Envelope
// @Security BearerAuth
// @Router /me [get]
func (h *accountHandler) getProfile(c *gin.Context) {
	accountID, ok := requireAccountID(c)
	if !ok {
		return
	}

	account, err := h.accountSvc.GetAccountByID(c.Request.Context(), accountID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.OK(dto.ToAccountResponse(account)))
}

// updateProfile godoc
// @Summary Update the caller's profile
// @Tags account
// @Accept json
// @Produce json
// @Param profile body dto.UpdateProfileRequest true "Profile fields"
// @Success 200 {object} dto.Envelope{data=dto.AccountResponse}
// @Failure 400 {object} dto.Envelope
// @Security BearerAuth
// @Router /me [patch]
func (h *accountHandler) updateProfile(c *gin.Context) {
	accountID, ok := requireAccountID(c)
	if !ok {
		return
	}

	var req dto.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	account, err := h.accountSvc.UpdateProfile(c.Request.Context(), accountID, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.OK(dto.ToAccountResponse(account)))
}

// deactivate godoc
// @Summary Deactivate the caller's account
// @Description Marks the account inactive. Deactivated accounts cannot log in.
// @Tags account
// @Produce json
// @Success 204 "No Content"
// @Failure 401 {object} dto.Envelope
// @Security BearerAuth
// @Router /me [delete]
func (h *accountHandler) deactivate(c *gin.Context) {
	accountID, ok := requireAccountID(c)
	if !ok {
		return
	}

	if err := h.accountSvc.DeactivateAccount(c.Request.Context(), accountID, accountID); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
