package middleware

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/shepherdsuite/church_mgmt_app/internal/apperrors"
	"github.com/shepherdsuite/church_mgmt_app/internal/core/domain"
	ports "github.com/shepherdsuite/church_mgmt_app/internal/core/ports/services"
	"github.com/shepherdsuite/church_mgmt_app/internal/dto"
)

// ChurchAccess resolves the caller's membership in the church named by the
// :churchID path parameter and requires at least the given role. The resolved
// access is stored in the request context for handlers and services.
//
// A caller without a usable membership gets 403; only a church that does not
// exist answers 404.
func ChurchAccess(churchSvc ports.ChurchAuthorizerSvc, requiredRole domain.ChurchRole) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := GetLoggerFromCtx(c.Request.Context())

		churchID := c.Param("churchID")
		if churchID == "" {
			c.AbortWithStatusJSON(http.StatusBadRequest, dto.Fail(dto.ErrorBody{Message: "church ID is required"}))
			return
		}

		accountID, ok := GetAccountIDFromContext(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.Fail(dto.ErrorBody{Message: "authentication required"}))
			return
		}

		role, err := churchSvc.ResolveAccess(c.Request.Context(), accountID, churchID)
		if err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				c.AbortWithStatusJSON(http.StatusNotFound, dto.Fail(dto.ErrorBody{Message: "church not found"}))
				return
			}
			if errors.Is(err, apperrors.ErrForbidden) {
				logger.Warn("Church access denied", "church_id", churchID)
				c.AbortWithStatusJSON(http.StatusForbidden, dto.Fail(dto.ErrorBody{Message: "no access to this church"}))
				return
			}
			logger.Error("Failed to resolve church access", "church_id", churchID, "error", err)
			c.AbortWithStatusJSON(http.StatusInternalServerError, dto.Fail(dto.ErrorBody{Message: "failed to resolve church access"}))
			return
		}

		if !role.Meets(requiredRole) {
			logger.Warn("Insufficient church role", "church_id", churchID, "role", string(role), "required", string(requiredRole))
			c.AbortWithStatusJSON(http.StatusForbidden, dto.Fail(dto.ErrorBody{Message: "insufficient permissions for this church"}))
			return
		}

		ctx := context.WithValue(c.Request.Context(), churchCtxKey, ChurchContext{ChurchID: churchID, Role: role})
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}
