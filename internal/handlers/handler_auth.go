package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/shepherdsuite/church_mgmt_app/internal/core/domain"
	portssvc "github.com/shepherdsuite/church_mgmt_app/internal/core/ports/services"
	"github.com/shepherdsuite/church_mgmt_app/internal/dto"
	"github.com/shepherdsuite/church_mgmt_app/internal/middleware"
	"github.com/shepherdsuite/church_mgmt_app/internal/platform/config"
	"github.com/shepherdsuite/church_mgmt_app/internal/utils"
)

// authHandler handles registration, login and token refresh.
type authHandler struct {
	cfg        *config.Config
	accountSvc portssvc.AccountSvcFacade
	tokenSvc   portssvc.TokenSvcFacade
}

// newAuthHandler creates a new authHandler.
func newAuthHandler(cfg *config.Config, accountSvc portssvc.AccountSvcFacade, tokenSvc portssvc.TokenSvcFacade) *authHandler {
	return &authHandler{
		cfg:        cfg,
		accountSvc: accountSvc,
		tokenSvc:   tokenSvc,
	}
}

// registerAuthRoutes registers the public authentication endpoints.
func registerAuthRoutes(rg *gin.RouterGroup, cfg *config.Config, accountSvc portssvc.AccountSvcFacade, tokenSvc portssvc.TokenSvcFacade) {
	h := newAuthHandler(cfg, accountSvc, tokenSvc)

	auth := rg.Group("/auth")
	{
		auth.POST("/register", h.register)
		auth.POST("/login", h.login)
		auth.POST("/google", h.googleLogin)
		auth.POST("/refresh", h.refresh)
		// Logout resolves the caller when a token is present so the stored
		// refresh token can be cleared, but works without one.
		auth.POST("/logout",
			middleware.OptionalAuthentication(cfg.JWTSecret, cfg.AuthCookieName, accountSvc),
			h.logout)
	}
}

// issueTokens generates an access + refresh token pair for the account,
// persists the refresh token hash and sets the auth cookie.
func (h *authHandler) issueTokens(c *gin.Context, account *domain.Account) (*dto.AuthResponse, error) {
	accessToken, expiresAt, err := h.tokenSvc.GenerateAccessToken(c.Request.Context(), account)
	if err != nil {
		return nil, err
	}
	refreshToken, refreshExpiry, err := h.tokenSvc.GenerateRefreshToken(c.Request.Context(), account)
	if err != nil {
		return nil, err
	}
	if err := h.accountSvc.UpdateRefreshToken(c.Request.Context(), account.AccountID, utils.HashRefreshToken(refreshToken), refreshExpiry); err != nil {
		return nil, err
	}

	maxAge := int(h.cfg.JWTExpiryDuration.Seconds())
	c.SetCookie(h.cfg.AuthCookieName, accessToken, maxAge, "/", "", h.cfg.IsProduction, true)

	return &dto.AuthResponse{
		Token:        accessToken,
		ExpiresAt:    expiresAt,
		RefreshToken: refreshToken,
		Account:      dto.ToAccountResponse(account),
	}, nil
}

// register godoc
// @Summary Register a new account
// @Description Creates a platform account and returns an access/refresh token pair.
// @Tags auth
// @Accept json
// @Produce json
// @Param account body dto.RegisterRequest true "Account details"
// @Success 201 {object} dto.Envelope{data=dto.AuthResponse}
// @Failure 400 {object} dto.Envelope
// @Failure 409 {object} dto.Envelope
// @Router /auth/register [post]
func (h *authHandler) register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	account, err := h.accountSvc.Register(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}

	resp, err := h.issueTokens(c, account)
	if err != nil {
		respondError(c, err)
		return
	}

	middleware.GetLoggerFromCtx(c.Request.Context()).Info("Account registered",
		slog.String("account_id", account.AccountID))
	c.JSON(http.StatusCreated, dto.OK(resp))
}

// login godoc
// @Summary Log in with email and password
// @Tags auth
// @Accept json
// @Produce json
// @Param credentials body dto.LoginRequest true "Login credentials"
// @Success 200 {object} dto.Envelope{data=dto.AuthResponse}
// @Failure 401 {object} dto.Envelope
// @Router /auth/login [post]
func (h *authHandler) login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	account, err := h.accountSvc.AuthenticateAccount(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}

	resp, err := h.issueTokens(c, account)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.OK(resp))
}

// googleLogin godoc
// @Summary Log in with a Google ID token
// @Description Validates a Google ID token obtained client-side and signs the
// account in, creating it on first login.
// @Tags auth
// @Accept json
// @Produce json
// @Param token body dto.GoogleLoginRequest true "Google ID token"
// @Success 200 {object} dto.Envelope{data=dto.AuthResponse}
// @Failure 401 {object} dto.Envelope
// @Router /auth/google [post]
func (h *authHandler) googleLogin(c *gin.Context) {
	var req dto.GoogleLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	account, err := h.accountSvc.AuthenticateWithGoogle(c.Request.Context(), req.IDToken)
	if err != nil {
		respondError(c, err)
		return
	}

	resp, err := h.issueTokens(c, account)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.OK(resp))
}

// refresh godoc
// @Summary Exchange a refresh token for a new token pair
// @Description Rotates the refresh token: the presented token is invalidated
// and a fresh pair is issued.
// @Tags auth
// @Accept json
// @Produce json
// @Param token body dto.RefreshRequest true "Account ID and refresh token"
// @Success 200 {object} dto.Envelope{data=dto.AuthResponse}
// @Failure 401 {object} dto.Envelope
// @Router /auth/refresh [post]
func (h *authHandler) refresh(c *gin.Context) {
	var req dto.RefreshRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	account, err := h.tokenSvc.ValidateAndParseRefreshToken(c.Request.Context(), req.AccountID, req.RefreshToken)
	if err != nil {
		respondError(c, err)
		return
	}

	resp, err := h.issueTokens(c, account)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.OK(resp))
}

// logout godoc
// @Summary Log out
// @Description Clears the stored refresh token and expires the auth cookie.
// @Tags auth
// @Produce json
// @Success 204 "No Content"
// @Security BearerAuth
// @Router /auth/logout [post]
func (h *authHandler) logout(c *gin.Context) {
	if accountID, ok := middleware.GetAccountIDFromContext(c); ok {
		if err := h.accountSvc.ClearRefreshToken(c.Request.Context(), accountID); err != nil {
			middleware.GetLoggerFromCtx(c.Request.Context()).Warn("Failed to clear refresh token",
				slog.String("account_id", accountID), slog.String("error", err.Error()))
		}
	}
	c.SetCookie(h.cfg.AuthCookieName, "", -1, "/", "", h.cfg.IsProduction, true)
	c.Status(http.StatusNoContent)
}
