package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	portssvc "github.com/shepherdsuite/church_mgmt_app/internal/core/ports/services"
	"github.com/shepherdsuite/church_mgmt_app/internal/dto"
)

// financeHandler handles manual financial records and the reconciliation summary.
type financeHandler struct {
	financeSvc portssvc.FinanceSvcFacade
}

func newFinanceHandler(financeSvc portssvc.FinanceSvcFacade) *financeHandler {
	return &financeHandler{financeSvc: financeSvc}
}

// registerFinanceRoutes registers finance endpoints under a church-scoped group.
func registerFinanceRoutes(rg *gin.RouterGroup, financeSvc portssvc.FinanceSvcFacade) {
	h := newFinanceHandler(financeSvc)

	finance := rg.Group("/finance")
	{
		records := finance.Group("/records")
		{
			records.POST("", h.createRecord)
			records.GET("", h.listRecords)
			records.PUT("/:recordID", h.updateRecord)
			records.DELETE("/:recordID", h.deleteRecord)
		}
		finance.GET("/summary", h.getSummary)
	}
}

// createRecord godoc
// @Summary Enter a manual financial record
// @Description Requires church STAFF. Records cover one month (YYYY-MM).
// @Tags finance
// @Accept json
// @Produce json
// @Param churchID path string true "Church ID"
// @Param record body dto.ManualRecordRequest true "Record details"
// @Success 201 {object} dto.Envelope{data=dto.ManualRecordResponse}
// @Failure 400 {object} dto.Envelope
// @Security BearerAuth
// @Router /churches/{churchID}/finance/records [post]
func (h *financeHandler) createRecord(c *gin.Context) {
	accountID, ok := requireAccountID(c)
	if !ok {
		return
	}

	var req dto.ManualRecordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	record, err := h.financeSvc.CreateManualRecord(c.Request.Context(), c.Param("churchID"), accountID, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.OK(dto.ToManualRecordResponse(record)))
}

// listRecords godoc
// @Summary List the church's manual financial records
// @Tags finance
// @Produce json
// @Param churchID path string true "Church ID"
// @Param page query int false "Page number"
// @Param limit query int false "Page size"
// @Success 200 {object} dto.Envelope{data=[]dto.ManualRecordResponse}
// @Security BearerAuth
// @Router /churches/{churchID}/finance/records [get]
func (h *financeHandler) listRecords(c *gin.Context) {
	params, ok := parsePagination(c)
	if !ok {
		return
	}

	records, err := h.financeSvc.ListManualRecords(c.Request.Context(), c.Param("churchID"), params)
	if err != nil {
		respondError(c, err)
		return
	}

	resp := make([]dto.ManualRecordResponse, len(records))
	for i := range records {
		resp[i] = dto.ToManualRecordResponse(&records[i])
	}
	c.JSON(http.StatusOK, dto.OK(resp))
}

// updateRecord godoc
// @Summary Replace a manual financial record
// @Description Requires church STAFF.
// @Tags finance
// @Accept json
// @Produce json
// @Param churchID path string true "Church ID"
// @Param recordID path string true "Record ID"
// @Param record body dto.ManualRecordRequest true "Record details"
// @Success 200 {object} dto.Envelope{data=dto.ManualRecordResponse}
// @Failure 404 {object} dto.Envelope
// @Security BearerAuth
// @Router /churches/{churchID}/finance/records/{recordID} [put]
func (h *financeHandler) updateRecord(c *gin.Context) {
	accountID, ok := requireAccountID(c)
	if !ok {
		return
	}

	var req dto.ManualRecordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	record, err := h.financeSvc.UpdateManualRecord(c.Request.Context(), c.Param("churchID"), c.Param("recordID"), accountID, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.OK(dto.ToManualRecordResponse(record)))
}

// deleteRecord godoc
// @Summary Delete a manual financial record
// @Description Requires church ADMIN.
// @Tags finance
// @Produce json
// @Param churchID path string true "Church ID"
// @Param recordID path string true "Record ID"
// @Success 204 "No Content"
// @Failure 404 {object} dto.Envelope
// @Security BearerAuth
// @Router /churches/{churchID}/finance/records/{recordID} [delete]
func (h *financeHandler) deleteRecord(c *gin.Context) {
	accountID, ok := requireAccountID(c)
	if !ok {
		return
	}

	if err := h.financeSvc.DeleteManualRecord(c.Request.Context(), c.Param("churchID"), c.Param("recordID"), accountID); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// getSummary godoc
// @Summary Get the church's financial summary for a period
// @Description Aggregates donations, paid expenses and manual records between
// from and to (RFC3339). Only paid expenses count against the books.
// @Tags finance
// @Produce json
// @Param churchID path string true "Church ID"
// @Param from query string true "Period start (RFC3339)"
// @Param to query string true "Period end (RFC3339)"
// @Success 200 {object} dto.Envelope{data=dto.FinancialSummaryResponse}
// @Failure 400 {object} dto.Envelope
// @Security BearerAuth
// @Router /churches/{churchID}/finance/summary [get]
func (h *financeHandler) getSummary(c *gin.Context) {
	from, err := time.Parse(time.RFC3339, c.Query("from"))
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.Fail(dto.ErrorBody{Message: "from must be an RFC3339 timestamp"}))
		return
	}
	to, err := time.Parse(time.RFC3339, c.Query("to"))
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.Fail(dto.ErrorBody{Message: "to must be an RFC3339 timestamp"}))
		return
	}

	summary, err := h.financeSvc.GetFinancialSummary(c.Request.Context(), c.Param("churchID"), from, to)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.OK(dto.ToFinancialSummaryResponse(summary)))
}
