package handlers

import (
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/gin-gonic/gin"
	"golang.org/x/oauth2"
	"google.golang.org/api/idtoken"

	"github.com/SscSPs/news_management_app/internal/apperrors"
	"github.com/SscSPs/news_management_app/internal/core/domain"
	portssvc "github.com/SscSPs/news_management_app/internal/core/ports/services"
	"github.com/SscSPs/news_management_app/internal/dto"
	"github.com/SscSPs/news_management_app/internal/middleware"
	"github.com/SscSPs/news_management_app/internal/platform/config"
)

const oauthStateCookie = "oauth_state"

// AuthHandler handles password and Google sign-in.
type AuthHandler struct {
	accountService     portssvc.AccountSvcFacade
	tokenService       portssvc.TokenSvcFacade
	googleOAuthService portssvc.GoogleOAuthHandlerSvcFacade
	frontendBaseURL    string
	secureCookies      bool
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(services *portssvc.ServiceContainer, cfg *config.Config) *AuthHandler {
	return &AuthHandler{
		accountService:     services.Account,
		tokenService:       services.TokenService,
		googleOAuthService: services.GoogleOAuthHandler,
		frontendBaseURL:    strings.TrimRight(cfg.FrontendBaseURL, "/"),
		secureCookies:      cfg.IsProduction,
	}
}

// registerAuthRoutes sets up the public authentication routes. loginLimit guards password login.
func registerAuthRoutes(rg *gin.RouterGroup, cfg *config.Config, services *portssvc.ServiceContainer, loginLimit gin.HandlerFunc) {
	h := NewAuthHandler(services, cfg)

	auth := rg.Group("/auth")
	{
		auth.POST("/login", loginLimit, h.Login)

		google := auth.Group("/google")
		google.GET("/login", h.GoogleLogin)
		google.GET("/callback", h.GoogleCallback)
		google.POST("/token", loginLimit, h.GoogleTokenLogin)
	}
}

// issueToken signs a JWT for account and builds the login response.
func (h *AuthHandler) issueToken(c *gin.Context, account *domain.Account) (*dto.LoginResponse, error) {
	token, expiresAt, err := h.tokenService.GenerateAccessToken(c.Request.Context(), account)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{Token: token, ExpiresAt: expiresAt, Account: dto.ToAccountResponse(account)}, nil
}

// Login godoc
// @Summary Password login
// @Description Authenticates an account and returns a JWT carrying its id and role.
// @Tags auth
// @Accept json
// @Produce json
// @Param login body dto.LoginRequest true "Login Credentials"
// @Success 200 {object} dto.LoginResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 429 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request body", err)
		return
	}

	account, err := h.accountService.Authenticate(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		respondError(c, err, "Failed to log in")
		return
	}

	resp, err := h.issueToken(c, account)
	if err != nil {
		respondError(c, err, "Failed to generate token")
		return
	}
	middleware.GetLoggerFromCtx(c.Request.Context()).Info("Account logged in", slog.Int("account_id", account.AccountID))
	c.JSON(http.StatusOK, resp)
}

// GoogleTokenLogin godoc
// @Summary Sign in with a Google ID token
// @Description Validates an ID token obtained by the client and returns a JWT for the linked account.
// @Tags auth
// @Accept json
// @Produce json
// @Param token body dto.GoogleTokenLoginRequest true "Google ID token"
// @Success 200 {object} dto.LoginResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse "Invalid token or unknown account"
// @Router /auth/google/token [post]
func (h *AuthHandler) GoogleTokenLogin(c *gin.Context) {
	var req dto.GoogleTokenLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request body", err)
		return
	}

	account, err := h.accountFromIDToken(c, req.IDToken)
	if err != nil {
		respondError(c, err, "Failed to sign in with Google")
		return
	}

	resp, err := h.issueToken(c, account)
	if err != nil {
		respondError(c, err, "Failed to generate token")
		return
	}
	c.JSON(http.StatusOK, resp)
}

// GoogleLogin godoc
// @Summary Start the Google OAuth flow
// @Description Redirects to Google's consent page with a state cookie.
// @Tags auth
// @Success 307 "Redirect to Google"
// @Router /auth/google/login [get]
func (h *AuthHandler) GoogleLogin(c *gin.Context) {
	state, err := h.googleOAuthService.GenerateStateString(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to start Google login")
		return
	}
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(oauthStateCookie, state, 600, "/", "", h.secureCookies, true)
	c.Redirect(http.StatusTemporaryRedirect, h.googleOAuthService.GetGoogleLoginURL(c.Request.Context(), state))
}

// GoogleCallback godoc
// @Summary Complete the Google OAuth flow
// @Description Exchanges the authorization code and redirects to the frontend with a JWT in the URL fragment.
// @Tags auth
// @Param state query string true "OAuth state"
// @Param code query string true "Authorization code"
// @Success 307 "Redirect to the frontend"
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Router /auth/google/callback [get]
func (h *AuthHandler) GoogleCallback(c *gin.Context) {
	ctx := c.Request.Context()
	logger := middleware.GetLoggerFromCtx(ctx)

	expected, err := c.Cookie(oauthStateCookie)
	if err != nil || expected == "" || expected != c.Query("state") {
		logger.Warn("OAuth state mismatch")
		badRequest(c, "Invalid OAuth state", nil)
		return
	}
	c.SetCookie(oauthStateCookie, "", -1, "/", "", h.secureCookies, true)

	code := c.Query("code")
	if code == "" {
		badRequest(c, "Authorization code is required", nil)
		return
	}

	token, err := h.googleOAuthService.ExchangeCodeForToken(ctx, code)
	if err != nil {
		logger.Warn("Failed to exchange authorization code", slog.String("error", err.Error()))
		respondError(c, apperrors.NewAppError(http.StatusUnauthorized, "Invalid or expired authorization code", err), "Failed to sign in with Google")
		return
	}

	var account *domain.Account
	if rawIDToken, ok := token.Extra("id_token").(string); ok && rawIDToken != "" {
		account, err = h.accountFromIDToken(c, rawIDToken)
	} else {
		account, err = h.accountFromUserInfo(c, token)
	}
	if err != nil {
		respondError(c, err, "Failed to sign in with Google")
		return
	}

	resp, err := h.issueToken(c, account)
	if err != nil {
		respondError(c, err, "Failed to generate token")
		return
	}
	logger.Info("Account signed in with Google", slog.Int("account_id", account.AccountID))
	c.Redirect(http.StatusTemporaryRedirect, h.frontendBaseURL+"/auth/callback#"+url.Values{"token": {resp.Token}}.Encode())
}

func (h *AuthHandler) accountFromIDToken(c *gin.Context, rawIDToken string) (*domain.Account, error) {
	payload, err := h.googleOAuthService.ValidateGoogleIDToken(c.Request.Context(), rawIDToken)
	if err != nil {
		return nil, apperrors.NewAppError(http.StatusUnauthorized, "Invalid Google ID token", err)
	}
	email, verified, picture := googleClaims(payload)
	if !verified {
		return nil, apperrors.NewAppError(http.StatusUnauthorized, "Google email is not verified", nil)
	}
	return h.accountService.ResolveGoogleAccount(c.Request.Context(), payload.Subject, email, picture)
}

func (h *AuthHandler) accountFromUserInfo(c *gin.Context, token *oauth2.Token) (*domain.Account, error) {
	info, err := h.googleOAuthService.GetUserInfo(c.Request.Context(), token)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to fetch Google profile: %v", apperrors.ErrUpstreamUnavailable, err)
	}
	if !info.VerifiedEmail {
		return nil, apperrors.NewAppError(http.StatusUnauthorized, "Google email is not verified", nil)
	}
	return h.accountService.ResolveGoogleAccount(c.Request.Context(), info.ID, info.Email, info.Picture)
}

func googleClaims(payload *idtoken.Payload) (email string, verified bool, picture string) {
	email, _ = payload.Claims["email"].(string)
	verified, _ = payload.Claims["email_verified"].(bool)
	picture, _ = payload.Claims["picture"].(string)
	return email, verified, picture
}
