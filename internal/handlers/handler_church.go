package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/shepherdsuite/church_mgmt_app/internal/core/domain"
	portssvc "github.com/shepherdsuite/church_mgmt_app/internal/core/ports/services"
	"github.com/shepherdsuite/church_mgmt_app/internal/dto"
	"github.com/shepherdsuite/church_mgmt_app/internal/middleware"
)

// maxLogoSizeBytes caps church logo uploads.
const maxLogoSizeBytes = 5 << 20

// churchHandler handles churches, staff and church-nested configuration.
type churchHandler struct {
	churchSvc portssvc.ChurchSvcFacade
}

func newChurchHandler(churchSvc portssvc.ChurchSvcFacade) *churchHandler {
	return &churchHandler{churchSvc: churchSvc}
}

// registerChurchRoutes registers church management endpoints. Routes under
// /churches/:churchID run behind ChurchAccess; finer role checks live in the
// services.
func registerChurchRoutes(rg *gin.RouterGroup, services *portssvc.ServiceContainer) {
	h := newChurchHandler(services.Church)

	churches := rg.Group("/churches")
	{
		churches.POST("", middleware.RequireRoles(domain.RoleAdministrator), h.createChurch)
		churches.GET("", h.listMyChurches)
	}

	churchScoped := rg.Group("/churches/:churchID",
		middleware.ChurchAccess(services.Church, domain.ChurchRoleMember))
	{
		churchScoped.GET("", h.getChurch)
		churchScoped.PATCH("", h.updateChurch)
		churchScoped.PUT("/logo", h.updateLogo)

		staff := churchScoped.Group("/staff")
		{
			staff.POST("", h.addStaff)
			staff.GET("", h.listStaff)
			staff.PATCH("/:accountID", h.updateStaffRole)
			staff.DELETE("/:accountID", h.removeStaff)
		}

		categories := churchScoped.Group("/donation-categories")
		{
			categories.POST("", h.createDonationCategory)
			categories.GET("", h.listDonationCategories)
		}

		svcs := churchScoped.Group("/services")
		{
			svcs.POST("", h.createChurchService)
			svcs.GET("", h.listChurchServices)
		}

		registerMemberRoutes(churchScoped, services.Member)
		registerTeamRoutes(churchScoped, services.Team)
		registerDonationRoutes(churchScoped, services.Donation)
		registerExpenseRoutes(churchScoped, services.Expense)
		registerCampaignRoutes(churchScoped, services.Campaign)
		registerFinanceRoutes(churchScoped, services.Finance)
		registerNotificationRoutes(churchScoped, services.Notification)
	}
}

// createChurch godoc
// @Summary Create a church
// @Description Creates a church with the caller as its ADMIN. Gated on the
// caller's plan entitlements.
// @Tags churches
// @Accept json
// @Produce json
// @Param church body dto.CreateChurchRequest true "Church details"
// @Success 201 {object} dto.Envelope{data=dto.ChurchResponse}
// @Failure 400 {object} dto.Envelope
// @Failure 403 {object} dto.Envelope "Plan limit reached"
// @Security BearerAuth
// @Router /churches [post]
func (h *churchHandler) createChurch(c *gin.Context) {
	accountID, ok := requireAccountID(c)
	if !ok {
		return
	}

	var req dto.CreateChurchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	church, err := h.churchSvc.CreateChurch(c.Request.Context(), accountID, req)
	if err != nil {
		respondError(c, err)
		return
	}

	middleware.GetLoggerFromCtx(c.Request.Context()).Info("Church created",
		slog.String("church_id", church.ChurchID))
	c.JSON(http.StatusCreated, dto.OK(dto.ToChurchResponse(church)))
}

// listMyChurches godoc
// @Summary List the caller's churches
// @Tags churches
// @Produce json
// @Success 200 {object} dto.Envelope{data=dto.ListChurchesResponse}
// @Security BearerAuth
// @Router /churches [get]
func (h *churchHandler) listMyChurches(c *gin.Context) {
	accountID, ok := requireAccountID(c)
	if !ok {
		return
	}

	churches, err := h.churchSvc.ListAccountChurches(c.Request.Context(), accountID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.OK(dto.ToListChurchesResponse(churches)))
}

// getChurch godoc
// @Summary Get a church
// @Tags churches
// @Produce json
// @Param churchID path string true "Church ID"
// @Success 200 {object} dto.Envelope{data=dto.ChurchResponse}
// @Failure 403 {object} dto.Envelope "No membership in this church"
// @Failure 404 {object} dto.Envelope
// @Security BearerAuth
// @Router /churches/{churchID} [get]
func (h *churchHandler) getChurch(c *gin.Context) {
	church, err := h.churchSvc.FindChurchByID(c.Request.Context(), c.Param("churchID"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.OK(dto.ToChurchResponse(church)))
}

// updateChurch godoc
// @Summary Update a church's profile
// @Description Requires church ADMIN.
// @Tags churches
// @Accept json
// @Produce json
// @Param churchID path string true "Church ID"
// @Param church body dto.UpdateChurchRequest true "Fields to update"
// @Success 200 {object} dto.Envelope{data=dto.ChurchResponse}
// @Failure 403 {object} dto.Envelope
// @Security BearerAuth
// @Router /churches/{churchID} [patch]
func (h *churchHandler) updateChurch(c *gin.Context) {
	accountID, ok := requireAccountID(c)
	if !ok {
		return
	}

	var req dto.UpdateChurchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	church, err := h.churchSvc.UpdateChurch(c.Request.Context(), c.Param("churchID"), accountID, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.OK(dto.ToChurchResponse(church)))
}

// updateLogo godoc
// @Summary Upload a church logo
// @Description Accepts a multipart image and stores it. Requires church ADMIN.
// @Tags churches
// @Accept mpfd
// @Produce json
// @Param churchID path string true "Church ID"
// @Param logo formData file true "Logo image"
// @Success 200 {object} dto.Envelope{data=dto.ChurchResponse}
// @Failure 400 {object} dto.Envelope
// @Security BearerAuth
// @Router /churches/{churchID}/logo [put]
func (h *churchHandler) updateLogo(c *gin.Context) {
	accountID, ok := requireAccountID(c)
	if !ok {
		return
	}

	fileHeader, err := c.FormFile("logo")
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.Fail(dto.ErrorBody{Message: "logo file is required"}))
		return
	}
	if fileHeader.Size > maxLogoSizeBytes {
		c.JSON(http.StatusBadRequest, dto.Fail(dto.ErrorBody{Message: "logo must be 5MB or smaller"}))
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.Fail(dto.ErrorBody{Message: "failed to read uploaded file"}))
		return
	}
	defer file.Close()

	church, err := h.churchSvc.UpdateChurchLogo(c.Request.Context(), c.Param("churchID"), accountID, file)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.OK(dto.ToChurchResponse(church)))
}

// addStaff godoc
// @Summary Add an account to the church
// @Description Links an account with a church role. ADMIN/STAFF roles are
// gated on the church creator's plan. Requires church ADMIN.
// @Tags staff
// @Accept json
// @Produce json
// @Param churchID path string true "Church ID"
// @Param staff body dto.AddStaffRequest true "Account ID and role"
// @Success 201 {object} dto.Envelope{data=dto.MembershipResponse}
// @Failure 403 {object} dto.Envelope "Insufficient role or plan limit reached"
// @Failure 404 {object} dto.Envelope "Account not found"
// @Security BearerAuth
// @Router /churches/{churchID}/staff [post]
func (h *churchHandler) addStaff(c *gin.Context) {
	accountID, ok := requireAccountID(c)
	if !ok {
		return
	}

	var req dto.AddStaffRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	membership, err := h.churchSvc.AddStaff(c.Request.Context(), c.Param("churchID"), accountID, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.OK(dto.ToMembershipResponse(membership)))
}

// listStaff godoc
// @Summary List the church's memberships
// @Tags staff
// @Produce json
// @Param churchID path string true "Church ID"
// @Success 200 {object} dto.Envelope{data=[]dto.MembershipResponse}
// @Security BearerAuth
// @Router /churches/{churchID}/staff [get]
func (h *churchHandler) listStaff(c *gin.Context) {
	accountID, ok := requireAccountID(c)
	if !ok {
		return
	}

	memberships, err := h.churchSvc.ListStaff(c.Request.Context(), c.Param("churchID"), accountID)
	if err != nil {
		respondError(c, err)
		return
	}

	resp := make([]dto.MembershipResponse, len(memberships))
	for i := range memberships {
		resp[i] = dto.ToMembershipResponse(&memberships[i])
	}
	c.JSON(http.StatusOK, dto.OK(resp))
}

// updateStaffRole godoc
// @Summary Change a membership's role
// @Description Requires church ADMIN. The church creator's role is immutable.
// @Tags staff
// @Accept json
// @Produce json
// @Param churchID path string true "Church ID"
// @Param accountID path string true "Target account ID"
// @Param role body dto.UpdateStaffRoleRequest true "New role"
// @Success 204 "No Content"
// @Failure 403 {object} dto.Envelope
// @Security BearerAuth
// @Router /churches/{churchID}/staff/{accountID} [patch]
func (h *churchHandler) updateStaffRole(c *gin.Context) {
	accountID, ok := requireAccountID(c)
	if !ok {
		return
	}

	var req dto.UpdateStaffRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	err := h.churchSvc.UpdateStaffRole(c.Request.Context(), c.Param("churchID"), accountID, c.Param("accountID"), req.Role)
	if err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// removeStaff godoc
// @Summary Remove an account from the church
// @Description Marks the membership REMOVED. Requires church ADMIN. The church
// creator cannot be removed.
// @Tags staff
// @Produce json
// @Param churchID path string true "Church ID"
// @Param accountID path string true "Target account ID"
// @Success 204 "No Content"
// @Failure 403 {object} dto.Envelope
// @Security BearerAuth
// @Router /churches/{churchID}/staff/{accountID} [delete]
func (h *churchHandler) removeStaff(c *gin.Context) {
	accountID, ok := requireAccountID(c)
	if !ok {
		return
	}

	err := h.churchSvc.RemoveStaff(c.Request.Context(), c.Param("churchID"), accountID, c.Param("accountID"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// createDonationCategory godoc
// @Summary Create a donation category
// @Description Requires church STAFF.
// @Tags churches
// @Accept json
// @Produce json
// @Param churchID path string true "Church ID"
// @Param category body dto.CreateDonationCategoryRequest true "Category name"
// @Success 201 {object} dto.Envelope{data=domain.DonationCategory}
// @Security BearerAuth
// @Router /churches/{churchID}/donation-categories [post]
func (h *churchHandler) createDonationCategory(c *gin.Context) {
	accountID, ok := requireAccountID(c)
	if !ok {
		return
	}

	var req dto.CreateDonationCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	category, err := h.churchSvc.CreateDonationCategory(c.Request.Context(), c.Param("churchID"), accountID, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.OK(category))
}

// listDonationCategories godoc
// @Summary List the church's donation categories
// @Tags churches
// @Produce json
// @Param churchID path string true "Church ID"
// @Success 200 {object} dto.Envelope{data=[]domain.DonationCategory}
// @Security BearerAuth
// @Router /churches/{churchID}/donation-categories [get]
func (h *churchHandler) listDonationCategories(c *gin.Context) {
	categories, err := h.churchSvc.ListDonationCategories(c.Request.Context(), c.Param("churchID"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.OK(categories))
}

// createChurchService godoc
// @Summary Create a recurring church service
// @Description Requires church STAFF.
// @Tags churches
// @Accept json
// @Produce json
// @Param churchID path string true "Church ID"
// @Param service body dto.CreateChurchServiceRequest true "Service details"
// @Success 201 {object} dto.Envelope{data=domain.ChurchService}
// @Security BearerAuth
// @Router /churches/{churchID}/services [post]
func (h *churchHandler) createChurchService(c *gin.Context) {
	accountID, ok := requireAccountID(c)
	if !ok {
		return
	}

	var req dto.CreateChurchServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	service, err := h.churchSvc.CreateChurchService(c.Request.Context(), c.Param("churchID"), accountID, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.OK(service))
}

// listChurchServices godoc
// @Summary List the church's recurring services
// @Tags churches
// @Produce json
// @Param churchID path string true "Church ID"
// @Success 200 {object} dto.Envelope{data=[]domain.ChurchService}
// @Security BearerAuth
// @Router /churches/{churchID}/services [get]
func (h *churchHandler) listChurchServices(c *gin.Context) {
	services, err := h.churchSvc.ListChurchServices(c.Request.Context(), c.Param("churchID"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.OK(services))
}
