package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/shepherdsuite/church_mgmt_app/internal/apperrors"
	"github.com/shepherdsuite/church_mgmt_app/internal/dto"
	"github.com/shepherdsuite/church_mgmt_app/internal/middleware"
	"github.com/shepherdsuite/church_mgmt_app/internal/utils/pagination"
)

// respondError maps service-layer errors onto the JSON envelope.
// EntitlementErrors keep their remediation hints; AppErrors keep their status
// code; anything else is a 500 with a generic message.
func respondError(c *gin.Context, err error) {
	var entErr *apperrors.EntitlementError
	if errors.As(err, &entErr) {
		c.JSON(http.StatusForbidden, dto.Fail(dto.ErrorBody{
			Message:      entErr.Message,
			Reason:       entErr.Reason,
			Action:       entErr.Action,
			CurrentPlan:  entErr.CurrentPlan,
			RequiredPlan: entErr.RequiredPlan,
		}))
		return
	}

	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		if appErr.Code >= http.StatusInternalServerError {
			middleware.GetLoggerFromCtx(c.Request.Context()).Error("Request failed", "error", err.Error())
			c.JSON(appErr.Code, dto.Fail(dto.ErrorBody{Message: "internal server error"}))
			return
		}
		c.JSON(appErr.Code, dto.Fail(dto.ErrorBody{Message: appErr.Message}))
		return
	}

	switch {
	case errors.Is(err, apperrors.ErrNotFound):
		c.JSON(http.StatusNotFound, dto.Fail(dto.ErrorBody{Message: "resource not found"}))
	case errors.Is(err, apperrors.ErrForbidden):
		c.JSON(http.StatusForbidden, dto.Fail(dto.ErrorBody{Message: "forbidden"}))
	case errors.Is(err, apperrors.ErrUnauthorized):
		c.JSON(http.StatusUnauthorized, dto.Fail(dto.ErrorBody{Message: "unauthorized"}))
	case errors.Is(err, apperrors.ErrDuplicate):
		c.JSON(http.StatusConflict, dto.Fail(dto.ErrorBody{Message: "resource already exists"}))
	case errors.Is(err, apperrors.ErrValidation):
		c.JSON(http.StatusBadRequest, dto.Fail(dto.ErrorBody{Message: err.Error()}))
	default:
		middleware.GetLoggerFromCtx(c.Request.Context()).Error("Request failed", "error", err.Error())
		c.JSON(http.StatusInternalServerError, dto.Fail(dto.ErrorBody{Message: "internal server error"}))
	}
}

// respondBindingError turns a binding failure into a collect-all 400.
func respondBindingError(c *gin.Context, err error) {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		c.JSON(http.StatusBadRequest, dto.Fail(dto.ErrorBody{
			Message: "validation failed",
			Details: dto.ValidationDetails(err),
		}))
		return
	}
	c.JSON(http.StatusBadRequest, dto.Fail(dto.ErrorBody{Message: "invalid request format: " + err.Error()}))
}

// requireAccountID fetches the authenticated account ID, aborting with 401
// when missing.
func requireAccountID(c *gin.Context) (string, bool) {
	accountID, ok := middleware.GetAccountIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.Fail(dto.ErrorBody{Message: "authentication required"}))
		return "", false
	}
	return accountID, true
}

// parsePagination reads page/limit query parameters, aborting with 400 on
// out-of-range values.
func parsePagination(c *gin.Context) (pagination.Params, bool) {
	params, err := pagination.Parse(c.Query("page"), c.Query("limit"))
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.Fail(dto.ErrorBody{Message: err.Error()}))
		return pagination.Params{}, false
	}
	return params, true
}
