package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/construct_erp/internal/core/ports/services"
	"github.com/SscSPs/construct_erp/internal/dto"
	"github.com/SscSPs/construct_erp/internal/middleware"
	"github.com/SscSPs/construct_erp/internal/platform/config"
	"github.com/gin-gonic/gin"
	"github.com/ulule/limiter/v3"
	"github.com/ulule/limiter/v3/drivers/store/memory"
)

// authHandler handles login, logout and session introspection.
type authHandler struct {
	sessions portssvc.SessionSvcFacade
	google   portssvc.GoogleOAuthSvcFacade
}

func newAuthHandler(sessions portssvc.SessionSvcFacade, google portssvc.GoogleOAuthSvcFacade) *authHandler {
	return &authHandler{sessions: sessions, google: google}
}

// registerAuthRoutes sets up the public authentication routes.
func registerAuthRoutes(r *gin.Engine, cfg *config.Config, services *portssvc.ServiceContainer) {
	h := newAuthHandler(services.Session, services.GoogleOAuth)

	rate, err := limiter.NewRateFromFormatted(cfg.LoginRateLimit)
	if err != nil {
		slog.Warn("Invalid LOGIN_RATE_LIMIT, using 10-M", slog.String("value", cfg.LoginRateLimit), slog.String("error", err.Error()))
		rate, _ = limiter.NewRateFromFormatted("10-M")
	}
	loginLimiter := middleware.RateLimit(limiter.New(memory.NewStore(), rate))

	auth := r.Group("/api/v1/auth")
	{
		auth.POST("/login", loginLimiter, h.login)
		auth.GET("/google/login", h.googleLoginURL)
		auth.POST("/google/exchange-code", loginLimiter, h.exchangeCodeGoogle)
	}
}

// registerSessionRoutes sets up the authenticated session routes.
func registerSessionRoutes(rg *gin.RouterGroup, sessions portssvc.SessionSvcFacade) {
	h := newAuthHandler(sessions, nil)
	rg.POST("/auth/logout", h.logout)
	rg.GET("/session", h.session)
}

// login godoc
// @Summary User login
// @Description Verifies email and password, binds the user's workspace and returns a session token.
// @Tags auth
// @Accept json
// @Produce json
// @Param login body dto.LoginRequest true "Login Credentials"
// @Success 200 {object} dto.LoginResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 429 {object} ErrorResponse
// @Router /auth/login [post]
func (h *authHandler) login(c *gin.Context) {
	var req dto.LoginRequest
	if !bindJSON(c, &req, "Login") {
		return
	}
	result, err := h.sessions.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		respondError(c, err, "Failed to log in")
		return
	}
	c.JSON(http.StatusOK, dto.LoginResponse{
		Token:   result.Token,
		Session: dto.ToSessionResponse(result.Session, h.sessions.Navigation(result.Session.User.Role)),
	})
}

// googleLoginURL godoc
// @Summary Google login URL
// @Description Returns the Google consent URL and the state the frontend must check on return.
// @Tags auth
// @Produce json
// @Success 200 {object} map[string]string
// @Failure 501 {object} ErrorResponse
// @Router /auth/google/login [get]
func (h *authHandler) googleLoginURL(c *gin.Context) {
	if h.google == nil {
		c.JSON(http.StatusNotImplemented, ErrorResponse{Error: "Google login is not configured"})
		return
	}
	state, err := h.google.GenerateStateString(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to start Google login")
		return
	}
	c.JSON(http.StatusOK, gin.H{"url": h.google.GetGoogleLoginURL(c.Request.Context(), state), "state": state})
}

// exchangeCodeGoogle godoc
// @Summary Exchange Google authorization code
// @Description Exchanges the code, validates the ID token and logs in the registered user with that email.
// @Tags auth
// @Accept json
// @Produce json
// @Param code body dto.ExchangeCodeRequest true "Authorization code"
// @Success 200 {object} dto.LoginResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Router /auth/google/exchange-code [post]
func (h *authHandler) exchangeCodeGoogle(c *gin.Context) {
	var req dto.ExchangeCodeRequest
	if !bindJSON(c, &req, "ExchangeCodeGoogle") {
		return
	}
	result, err := h.sessions.LoginWithGoogle(c.Request.Context(), req.Code)
	if err != nil {
		respondError(c, err, "Failed to log in with Google")
		return
	}
	c.JSON(http.StatusOK, dto.LoginResponse{
		Token:   result.Token,
		Session: dto.ToSessionResponse(result.Session, h.sessions.Navigation(result.Session.User.Role)),
	})
}

// logout godoc
// @Summary Log out
// @Description Ends the session. The token stops working immediately.
// @Tags auth
// @Success 204
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /auth/logout [post]
func (h *authHandler) logout(c *gin.Context) {
	session, ok := sessionOrAbort(c)
	if !ok {
		return
	}
	if err := h.sessions.Logout(c.Request.Context(), session.ID); err != nil {
		respondError(c, err, "Failed to log out")
		return
	}
	c.Status(http.StatusNoContent)
}

// session godoc
// @Summary Current session
// @Description Returns the caller's profile and the views their role may open.
// @Tags auth
// @Produce json
// @Success 200 {object} dto.SessionResponse
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /session [get]
func (h *authHandler) session(c *gin.Context) {
	session, ok := sessionOrAbort(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, dto.ToSessionResponse(*session, h.sessions.Navigation(session.User.Role)))
}
