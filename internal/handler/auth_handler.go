package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/govjobs/govjobs-backend/internal/middleware"
	"github.com/govjobs/govjobs-backend/internal/model"
	"github.com/govjobs/govjobs-backend/internal/response"
	"github.com/govjobs/govjobs-backend/internal/service"
	"github.com/rs/zerolog"
)

// AuthHandler handles authentication endpoints.
type AuthHandler struct {
	adminService *service.AdminService
	log          zerolog.Logger
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(adminService *service.AdminService, log zerolog.Logger) *AuthHandler {
	return &AuthHandler{
		adminService: adminService,
		log:          log.With().Str("component", "auth_handler").Logger(),
	}
}

// AdminLogin godoc
// POST /api/auth/admin/login
// Validates username + password and returns a signed JWT.
func (h *AuthHandler) AdminLogin(c *gin.Context) {
	var req model.AdminLoginRequest
	if !bindCreate(c, &req) {
		return
	}

	res, err := h.adminService.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		respondError(c, h.log, err)
		return
	}

	response.Success(c, http.StatusOK, res)
}

// VerifyAdmin godoc
// GET /api/auth/admin/verify
// Echoes the identity carried by a valid bearer token.
func (h *AuthHandler) VerifyAdmin(c *gin.Context) {
	claims := middleware.GetClaims(c)
	if claims == nil {
		response.Fail(c, http.StatusUnauthorized, response.ErrTokenRequired)
		return
	}

	response.Success(c, http.StatusOK, model.VerifyResponse{
		Valid: true,
		Admin: model.AdminIdentity{ID: claims.AdminID, Username: claims.Username},
	})
}
