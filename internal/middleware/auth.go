package middleware

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/shepherdsuite/church_mgmt_app/internal/core/domain"
	ports "github.com/shepherdsuite/church_mgmt_app/internal/core/ports/services"
	"github.com/shepherdsuite/church_mgmt_app/internal/dto"
	"github.com/shepherdsuite/church_mgmt_app/internal/utils"
)

// extractToken pulls the access token from the Authorization header or, when
// absent, from the auth cookie.
func extractToken(c *gin.Context, cookieName string) (string, error) {
	authHeader := c.GetHeader("Authorization")
	if authHeader != "" {
		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
			return "", errors.New("authorization header format must be Bearer {token}")
		}
		return parts[1], nil
	}
	token, err := c.Cookie(cookieName)
	if err != nil || token == "" {
		return "", errors.New("authentication required")
	}
	return token, nil
}

// Authentication creates a Gin middleware handler that validates the caller's
// JWT and loads the account. Requests without a valid token are rejected.
func Authentication(jwtSecret, cookieName string, accountSvc ports.AccountReaderSvc) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := GetLoggerFromCtx(c.Request.Context())

		tokenString, err := extractToken(c, cookieName)
		if err != nil {
			logger.Warn("Authentication token missing", "error", err)
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.Fail(dto.ErrorBody{Message: err.Error()}))
			return
		}

		claims, err := utils.ParseAndValidateJWT(tokenString, jwtSecret)
		if err != nil {
			logger.Warn("Invalid token", "error", err)
			msg := "invalid token"
			if errors.Is(err, jwt.ErrTokenExpired) {
				msg = "token has expired"
			}
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.Fail(dto.ErrorBody{Message: msg}))
			return
		}

		accountID := claims.Subject
		if accountID == "" {
			logger.Error("Account ID (subject) missing from valid token")
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.Fail(dto.ErrorBody{Message: "invalid token claims"}))
			return
		}

		account, err := accountSvc.GetAccountByID(c.Request.Context(), accountID)
		if err != nil {
			logger.Warn("Account lookup failed for valid token", "account_id", accountID, "error", err)
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.Fail(dto.ErrorBody{Message: "account not found"}))
			return
		}
		if !account.IsActive {
			logger.Warn("Inactive account attempted access", "account_id", accountID)
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.Fail(dto.ErrorBody{Message: "account is deactivated"}))
			return
		}

		enrichedLogger := logger.With(slog.String("account_id", accountID))

		ctx := context.WithValue(c.Request.Context(), accountIDKey, accountID)
		ctx = context.WithValue(ctx, accountRoleKey, account.Role)
		ctx = context.WithValue(ctx, loggerCtxKey, enrichedLogger)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

// OptionalAuthentication resolves the caller's identity when a valid token is
// present but never rejects the request. Handlers behind it decide what an
// anonymous caller may see.
func OptionalAuthentication(jwtSecret, cookieName string, accountSvc ports.AccountReaderSvc) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, err := extractToken(c, cookieName)
		if err != nil {
			c.Next()
			return
		}

		claims, err := utils.ParseAndValidateJWT(tokenString, jwtSecret)
		if err != nil || claims.Subject == "" {
			c.Next()
			return
		}

		account, err := accountSvc.GetAccountByID(c.Request.Context(), claims.Subject)
		if err != nil || !account.IsActive {
			c.Next()
			return
		}

		ctx := context.WithValue(c.Request.Context(), accountIDKey, account.AccountID)
		ctx = context.WithValue(ctx, accountRoleKey, account.Role)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

// RequireRoles restricts a route to accounts holding one of the given
// platform roles. Must run after Authentication.
func RequireRoles(roles ...domain.AccountRole) gin.HandlerFunc {
	return func(c *gin.Context) {
		role, ok := GetAccountRoleFromContext(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.Fail(dto.ErrorBody{Message: "authentication required"}))
			return
		}
		for _, allowed := range roles {
			if role == allowed {
				c.Next()
				return
			}
		}
		GetLoggerFromCtx(c.Request.Context()).Warn("Insufficient platform role", "role", string(role))
		c.AbortWithStatusJSON(http.StatusForbidden, dto.Fail(dto.ErrorBody{Message: "insufficient permissions"}))
	}
}
