package handlers

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/shepherdsuite/church_mgmt_app/internal/core/domain"
	portssvc "github.com/shepherdsuite/church_mgmt_app/internal/core/ports/services"
	"github.com/shepherdsuite/church_mgmt_app/internal/dto"
)

// maxAttachmentSizeBytes caps expense attachment uploads.
const maxAttachmentSizeBytes = 10 << 20

// expenseHandler handles expenses, their approval lifecycle and attachments.
type expenseHandler struct {
	expenseSvc portssvc.ExpenseSvcFacade
}

func newExpenseHandler(expenseSvc portssvc.ExpenseSvcFacade) *expenseHandler {
	return &expenseHandler{expenseSvc: expenseSvc}
}

// registerExpenseRoutes registers expense endpoints under a church-scoped group.
func registerExpenseRoutes(rg *gin.RouterGroup, expenseSvc portssvc.ExpenseSvcFacade) {
	h := newExpenseHandler(expenseSvc)

	expenses := rg.Group("/expenses")
	{
		expenses.POST("", h.createExpense)
		expenses.GET("", h.listExpenses)
		expenses.GET("/:expenseID", h.getExpense)
		expenses.PATCH("/:expenseID", h.updateExpense)

		expenses.POST("/:expenseID/approve", h.transition(domain.ExpenseApproved))
		expenses.POST("/:expenseID/reject", h.transition(domain.ExpenseRejected))
		expenses.POST("/:expenseID/pay", h.transition(domain.ExpensePaid))
		expenses.GET("/:expenseID/history", h.listHistory)

		attachments := expenses.Group("/:expenseID/attachments")
		{
			attachments.POST("", h.addAttachment)
			attachments.GET("", h.listAttachments)
			attachments.DELETE("/:attachmentID", h.deleteAttachment)
		}
	}
}

// createExpense godoc
// @Summary Raise an expense
// @Description Requires church STAFF. New expenses start pending.
// @Tags expenses
// @Accept json
// @Produce json
// @Param churchID path string true "Church ID"
// @Param expense body dto.CreateExpenseRequest true "Expense details"
// @Success 201 {object} dto.Envelope{data=dto.ExpenseResponse}
// @Failure 400 {object} dto.Envelope
// @Security BearerAuth
// @Router /churches/{churchID}/expenses [post]
func (h *expenseHandler) createExpense(c *gin.Context) {
	accountID, ok := requireAccountID(c)
	if !ok {
		return
	}

	var req dto.CreateExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	expense, err := h.expenseSvc.CreateExpense(c.Request.Context(), c.Param("churchID"), accountID, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.OK(dto.ToExpenseResponse(expense)))
}

// listExpenses godoc
// @Summary List the church's expenses
// @Tags expenses
// @Produce json
// @Param churchID path string true "Church ID"
// @Param status query string false "Filter by status (pending/approved/rejected/paid)"
// @Param page query int false "Page number"
// @Param limit query int false "Page size"
// @Success 200 {object} dto.Envelope{data=[]dto.ExpenseResponse}
// @Security BearerAuth
// @Router /churches/{churchID}/expenses [get]
func (h *expenseHandler) listExpenses(c *gin.Context) {
	params, ok := parsePagination(c)
	if !ok {
		return
	}

	var status *domain.ExpenseStatus
	if raw := c.Query("status"); raw != "" {
		s := domain.ExpenseStatus(raw)
		switch s {
		case domain.ExpensePending, domain.ExpenseApproved, domain.ExpenseRejected, domain.ExpensePaid:
			status = &s
		default:
			c.JSON(http.StatusBadRequest, dto.Fail(dto.ErrorBody{Message: "status must be one of: pending, approved, rejected, paid"}))
			return
		}
	}

	expenses, err := h.expenseSvc.ListExpenses(c.Request.Context(), c.Param("churchID"), status, params)
	if err != nil {
		respondError(c, err)
		return
	}

	resp := make([]dto.ExpenseResponse, len(expenses))
	for i := range expenses {
		resp[i] = dto.ToExpenseResponse(&expenses[i])
	}
	c.JSON(http.StatusOK, dto.OK(resp))
}

// getExpense godoc
// @Summary Get an expense
// @Tags expenses
// @Produce json
// @Param churchID path string true "Church ID"
// @Param expenseID path string true "Expense ID"
// @Success 200 {object} dto.Envelope{data=dto.ExpenseResponse}
// @Failure 404 {object} dto.Envelope
// @Security BearerAuth
// @Router /churches/{churchID}/expenses/{expenseID} [get]
func (h *expenseHandler) getExpense(c *gin.Context) {
	expense, err := h.expenseSvc.GetExpenseByID(c.Request.Context(), c.Param("churchID"), c.Param("expenseID"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.OK(dto.ToExpenseResponse(expense)))
}

// updateExpense godoc
// @Summary Edit a pending expense
// @Description Requires church STAFF. Only pending expenses can be edited.
// @Tags expenses
// @Accept json
// @Produce json
// @Param churchID path string true "Church ID"
// @Param expenseID path string true "Expense ID"
// @Param expense body dto.UpdateExpenseRequest true "Fields to update"
// @Success 200 {object} dto.Envelope{data=dto.ExpenseResponse}
// @Failure 409 {object} dto.Envelope "Expense is not pending"
// @Security BearerAuth
// @Router /churches/{churchID}/expenses/{expenseID} [patch]
func (h *expenseHandler) updateExpense(c *gin.Context) {
	accountID, ok := requireAccountID(c)
	if !ok {
		return
	}

	var req dto.UpdateExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	expense, err := h.expenseSvc.UpdateExpense(c.Request.Context(), c.Param("churchID"), c.Param("expenseID"), accountID, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.OK(dto.ToExpenseResponse(expense)))
}

// transition returns a handler that moves the expense to the given status.
// Used for the approve, reject and pay endpoints; all require church ADMIN.
func (h *expenseHandler) transition(next domain.ExpenseStatus) gin.HandlerFunc {
	return func(c *gin.Context) {
		accountID, ok := requireAccountID(c)
		if !ok {
			return
		}

		// The comment body is optional; an empty body is fine.
		var req dto.ExpenseTransitionRequest
		if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
			respondBindingError(c, err)
			return
		}

		expense, err := h.expenseSvc.TransitionExpense(c.Request.Context(), c.Param("churchID"), c.Param("expenseID"), accountID, next, req.Comment)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, dto.OK(dto.ToExpenseResponse(expense)))
	}
}

// listHistory godoc
// @Summary List an expense's status history
// @Tags expenses
// @Produce json
// @Param churchID path string true "Church ID"
// @Param expenseID path string true "Expense ID"
// @Success 200 {object} dto.Envelope{data=[]dto.ExpenseStatusChangeResponse}
// @Security BearerAuth
// @Router /churches/{churchID}/expenses/{expenseID}/history [get]
func (h *expenseHandler) listHistory(c *gin.Context) {
	history, err := h.expenseSvc.ListStatusHistory(c.Request.Context(), c.Param("churchID"), c.Param("expenseID"))
	if err != nil {
		respondError(c, err)
		return
	}

	resp := make([]dto.ExpenseStatusChangeResponse, len(history))
	for i, ch := range history {
		resp[i] = dto.ExpenseStatusChangeResponse{
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

// addAttachment godoc
// @Summary Attach a receipt or invoice to an expense
// @Description Requires church STAFF. Accepts a multipart file.
// @Tags expense-attachments
// @Accept mpfd
// @Produce json
// @Param churchID path string true "Church ID"
// @Param expenseID path string true "Expense ID"
// @Param file formData file true "Receipt/invoice file"
// @Success 201 {object} dto.Envelope{data=dto.ExpenseAttachmentResponse}
// @Failure 400 {object} dto.Envelope
// @Security BearerAuth
// @Router /churches/{churchID}/expenses/{expenseID}/attachments [post]
func (h *expenseHandler) addAttachment(c *gin.Context) {
	accountID, ok := requireAccountID(c)
	if !ok {
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.Fail(dto.ErrorBody{Message: "attachment file is required"}))
		return
	}
	if fileHeader.Size > maxAttachmentSizeBytes {
		c.JSON(http.StatusBadRequest, dto.Fail(dto.ErrorBody{Message: "attachment must be 10MB or smaller"}))
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.Fail(dto.ErrorBody{Message: "failed to read uploaded file"}))
		return
	}
	defer file.Close()

	attachment, err := h.expenseSvc.AddAttachment(c.Request.Context(), c.Param("churchID"), c.Param("expenseID"), accountID, fileHeader.Filename, file)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.OK(dto.ExpenseAttachmentResponse{
		AttachmentID: attachment.AttachmentID,
		FileName:     attachment.FileName,
		FileURL:      attachment.FileURL,
		UploadedBy:   attachment.UploadedBy,
		UploadedAt:   attachment.UploadedAt,
	}))
}

// listAttachments godoc
// @Summary List an expense's attachments
// @Tags expense-attachments
// @Produce json
// @Param churchID path string true "Church ID"
// @Param expenseID path string true "Expense ID"
// @Success 200 {object} dto.Envelope{data=[]dto.ExpenseAttachmentResponse}
// @Security BearerAuth
// @Router /churches/{churchID}/expenses/{expenseID}/attachments [get]
func (h *expenseHandler) listAttachments(c *gin.Context) {
	attachments, err := h.expenseSvc.ListAttachments(c.Request.Context(), c.Param("churchID"), c.Param("expenseID"))
	if err != nil {
		respondError(c, err)
		return
	}

	resp := make([]dto.ExpenseAttachmentResponse, len(attachments))
	for i, a := range attachments {
		resp[i] = dto.ExpenseAttachmentResponse{
			AttachmentID: a.AttachmentID,
			FileName:     a.FileName,
			FileURL:      a.FileURL,
			UploadedBy:   a.UploadedBy,
			UploadedAt:   a.UploadedAt,
		}
	}
	c.JSON(http.StatusOK, dto.OK(resp))
}

// deleteAttachment godoc
// @Summary Delete an expense attachment
// @Description Requires church STAFF.
// @Tags expense-attachments
// @Produce json
// @Param churchID path string true "Church ID"
// @Param expenseID path string true "Expense ID"
// @Param attachmentID path string true "Attachment ID"
// @Success 204 "No Content"
// @Failure 404 {object} dto.Envelope
// @Security BearerAuth
// @Router /churches/{churchID}/expenses/{expenseID}/attachments/{attachmentID} [delete]
func (h *expenseHandler) deleteAttachment(c *gin.Context) {
	accountID, ok := requireAccountID(c)
	if !ok {
		return
	}

	if err := h.expenseSvc.DeleteAttachment(c.Request.Context(), c.Param("churchID"), c.Param("expenseID"), c.Param("attachmentID"), accountID); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
