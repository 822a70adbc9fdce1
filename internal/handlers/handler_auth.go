package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/ulule/limiter/v3"
	"github.com/ulule/limiter/v3/drivers/store/memory"

	portssvc "github.com/peoplenest/payroll-backend/internal/core/ports/services"
	"github.com/peoplenest/payroll-backend/internal/dto"
	"github.com/peoplenest/payroll-backend/internal/middleware"
)

// AuthHandler handles authentication related requests.
type AuthHandler struct {
	authService portssvc.AuthSvcFacade
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(as portssvc.AuthSvcFacade) *AuthHandler {
	return &AuthHandler{authService: as}
}

// registerAuthRoutes sets up the public authentication routes.
func registerAuthRoutes(rg *gin.Engine, authService portssvc.AuthSvcFacade) {
	h := NewAuthHandler(authService)

	// Define rate limit: 5 requests per minute
	rate, _ := limiter.NewRateFromFormatted("5-M")
	store := memory.NewStore()
	ipLimiter := limiter.New(store, rate)

	auth := rg.Group("/api/auth", middleware.RateLimit(ipLimiter))
	{
		auth.POST("/signup/super-admin", h.SignupSuperAdmin)
		auth.POST("/login", h.Login)
		auth.POST("/logout", h.Logout)
	}
}

// SignupSuperAdmin godoc
// @Summary Bootstrap the super admin
// @Description Creates the single super-admin identity. Fails once one exists.
// @Tags auth
// @Accept json
// @Produce json
// @Param signup body dto.SignupSuperAdminRequest true "Super admin details"
// @Success 201 {object} dto.SignupResponse
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/auth/signup/super-admin [post]
func (h *AuthHandler) SignupSuperAdmin(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.SignupSuperAdminRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: bindErrorMessage(err)})
		return
	}

	user, err := h.authService.SignupSuperAdmin(c.Request.Context(), req.Email, req.Password, req.DisplayName)
	if err != nil {
		respondServiceError(c, logger, err, "Failed to create super admin")
		return
	}

	logger.Info("Super admin created")
	c.JSON(http.StatusCreated, dto.ToSignupResponse(user))
}

// Login godoc
// @Summary User login
// @Description Exchanges email/password for a provider session token.
// @Tags auth
// @Accept json
// @Produce json
// @Param login body dto.LoginRequest true "Login Credentials"
// @Success 200 {object} dto.LoginResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Router /api/auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: bindErrorMessage(err)})
		return
	}

	result, err := h.authService.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		respondServiceError(c, logger, err, "Login failed")
		return
	}

	c.JSON(http.StatusOK, dto.ToLoginResponse(result))
}

// Logout godoc
// @Summary User logout
// @Description Revokes every session belonging to the bearer token's identity.
// @Tags auth
// @Produce json
// @Success 200 {object} map[string]string
// @Failure 401 {object} ErrorResponse
// @Router /api/auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	authHeader := c.GetHeader("Authorization")
	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Authorization header format must be Bearer {token}"})
		return
	}

	if err := h.authService.Logout(c.Request.Context(), parts[1]); err != nil {
		respondServiceError(c, logger, err, "Logout failed")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Logged out successfully"})
}
