package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Tanukash12/DRONA-SHIELD-CONTEST/internal/services"
	"github.com/Tanukash12/DRONA-SHIELD-CONTEST/internal/utils"
)

type AuthHandler struct {
	auth *services.AuthService
}

type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type LoginResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	Role        string `json:"role"`
	Token       string `json:"token"`
	RedirectURL string `json:"redirectUrl"`
}

func NewAuthHandler(auth *services.AuthService) *AuthHandler {
	return &AuthHandler{auth: auth}
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondValidationError(c, "name, email and password are required")
		return
	}

	user, err := h.auth.Register(c.Request.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.RespondCreated(c, gin.H{
		"message": "Registration successful. Account created.",
		"user":    user.Summary(),
	})
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondValidationError(c, "email and password are required")
		return
	}

	result, err := h.auth.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, LoginResponse{
		ID:          result.User.ID,
		Name:        result.User.Name,
		Email:       result.User.Email,
		Role:        string(result.User.Role),
		Token:       result.Token,
		RedirectURL: result.RedirectURL,
	})
}

// Logout is a server-side no-op. Tokens are stateless; the client discards
// its copy and the token dies at its expiry.
func (h *AuthHandler) Logout(c *gin.Context) {
	utils.RespondOK(c, gin.H{"message": "Logged out successfully"})
}
