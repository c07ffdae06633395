package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	portsrepo "github.com/shepherdsuite/church_mgmt_app/internal/core/ports/repositories"
	portssvc "github.com/shepherdsuite/church_mgmt_app/internal/core/ports/services"
	"github.com/shepherdsuite/church_mgmt_app/internal/dto"
)

// donationHandler handles donation recording and queries.
type donationHandler struct {
	donationSvc portssvc.DonationSvcFacade
}

func newDonationHandler(donationSvc portssvc.DonationSvcFacade) *donationHandler {
	return &donationHandler{donationSvc: donationSvc}
}

// registerDonationRoutes registers donation endpoints under a church-scoped group.
func registerDonationRoutes(rg *gin.RouterGroup, donationSvc portssvc.DonationSvcFacade) {
	h := newDonationHandler(donationSvc)

	donations := rg.Group("/donations")
	{
		donations.POST("", h.recordDonation)
		donations.GET("", h.listDonations)
		donations.GET("/:donationID", h.getDonation)
		donations.PATCH("/:donationID", h.updateDonation)
		donations.DELETE("/:donationID", h.deleteDonation)
	}
}

// parseDonationFilter builds the listing filter from query parameters.
func parseDonationFilter(c *gin.Context) (portsrepo.DonationFilter, error) {
	var filter portsrepo.DonationFilter

	if raw := c.Query("from"); raw != "" {
		t, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return filter, err
		}
		filter.From = &t
	}
	if raw := c.Query("to"); raw != "" {
		t, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return filter, err
		}
		filter.To = &t
	}
	if raw := c.Query("categoryID"); raw != "" {
		filter.CategoryID = &raw
	}
	if raw := c.Query("campaignID"); raw != "" {
		filter.CampaignID = &raw
	}
	if raw := c.Query("memberID"); raw != "" {
		filter.MemberID = &raw
	}
	return filter, nil
}

// recordDonation godoc
// @Summary Record a donation
// @Description Requires church STAFF. A campaign reference adds the amount to
// the campaign's raised total.
// @Tags donations
// @Accept json
// @Produce json
// @Param churchID path string true "Church ID"
// @Param donation body dto.CreateDonationRequest true "Donation details"
// @Success 201 {object} dto.Envelope{data=dto.DonationResponse}
// @Failure 400 {object} dto.Envelope
// @Security BearerAuth
// @Router /churches/{churchID}/donations [post]
func (h *donationHandler) recordDonation(c *gin.Context) {
	accountID, ok := requireAccountID(c)
	if !ok {
		return
	}

	var req dto.CreateDonationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	donation, err := h.donationSvc.RecordDonation(c.Request.Context(), c.Param("churchID"), accountID, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.OK(dto.ToDonationResponse(donation)))
}

// listDonations godoc
// @Summary List the church's donations
// @Description Filterable by date range (RFC3339), category, campaign and member.
// @Tags donations
// @Produce json
// @Param churchID path string true "Church ID"
// @Param from query string false "Donated-at lower bound (RFC3339)"
// @Param to query string false "Donated-at upper bound (RFC3339)"
// @Param categoryID query string false "Category ID"
// @Param campaignID query string false "Campaign ID"
// @Param memberID query string false "Member ID"
// @Param page query int false "Page number"
// @Param limit query int false "Page size"
// @Success 200 {object} dto.Envelope{data=dto.ListDonationsResponse}
// @Security BearerAuth
// @Router /churches/{churchID}/donations [get]
func (h *donationHandler) listDonations(c *gin.Context) {
	params, ok := parsePagination(c)
	if !ok {
		return
	}

	filter, err := parseDonationFilter(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.Fail(dto.ErrorBody{Message: "from/to must be RFC3339 timestamps"}))
		return
	}

	donations, err := h.donationSvc.ListDonations(c.Request.Context(), c.Param("churchID"), filter, params)
	if err != nil {
		respondError(c, err)
		return
	}

	resp := dto.ListDonationsResponse{
		Donations: make([]dto.DonationResponse, len(donations)),
		Page:      params.Page,
		Limit:     params.Limit,
	}
	for i := range donations {
		resp.Donations[i] = dto.ToDonationResponse(&donations[i])
	}
	c.JSON(http.StatusOK, dto.OK(resp))
}

// getDonation godoc
// @Summary Get a donation
// @Tags donations
// @Produce json
// @Param churchID path string true "Church ID"
// @Param donationID path string true "Donation ID"
// @Success 200 {object} dto.Envelope{data=dto.DonationResponse}
// @Failure 404 {object} dto.Envelope
// @Security BearerAuth
// @Router /churches/{churchID}/donations/{donationID} [get]
func (h *donationHandler) getDonation(c *gin.Context) {
	donation, err := h.donationSvc.GetDonationByID(c.Request.Context(), c.Param("churchID"), c.Param("donationID"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.OK(dto.ToDonationResponse(donation)))
}

// updateDonation godoc
// @Summary Correct a donation record
// @Description Requires church STAFF. Campaign references cannot be changed.
// @Tags donations
// @Accept json
// @Produce json
// @Param churchID path string true "Church ID"
// @Param donationID path string true "Donation ID"
// @Param donation body dto.UpdateDonationRequest true "Fields to correct"
// @Success 200 {object} dto.Envelope{data=dto.DonationResponse}
// @Failure 404 {object} dto.Envelope
// @Security BearerAuth
// @Router /churches/{churchID}/donations/{donationID} [patch]
func (h *donationHandler) updateDonation(c *gin.Context) {
	accountID, ok := requireAccountID(c)
	if !ok {
		return
	}

	var req dto.UpdateDonationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	donation, err := h.donationSvc.UpdateDonation(c.Request.Context(), c.Param("churchID"), c.Param("donationID"), accountID, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.OK(dto.ToDonationResponse(donation)))
}

// deleteDonation godoc
// @Summary Delete a donation record
// @Description Requires church ADMIN. Reverses the campaign contribution when
// one exists.
// @Tags donations
// @Produce json
// @Param churchID path string true "Church ID"
// @Param donationID path string true "Donation ID"
// @Success 204 "No Content"
// @Failure 404 {object} dto.Envelope
// @Security BearerAuth
// @Router /churches/{churchID}/donations/{donationID} [delete]
func (h *donationHandler) deleteDonation(c *gin.Context) {
	accountID, ok := requireAccountID(c)
	if !ok {
		return
	}

	if err := h.donationSvc.DeleteDonation(c.Request.Context(), c.Param("churchID"), c.Param("donationID"), accountID); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
