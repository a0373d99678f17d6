package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/Tanukash12/DRONA-SHIELD-CONTEST/internal/models"
	"github.com/Tanukash12/DRONA-SHIELD-CONTEST/internal/services"
	"github.com/Tanukash12/DRONA-SHIELD-CONTEST/internal/utils"
)

type UserHandler struct {
	users *services.UserService
}

type UpdateUserRequest struct {
	Status *models.UserStatus `json:"status"`
	Role   *models.Role       `json:"role"`
}

func NewUserHandler(users *services.UserService) *UserHandler {
	return &UserHandler{users: users}
}

// List returns all non-admin users. Password hashes never serialize.
func (h *UserHandler) List(c *gin.Context) {
	users, err := h.users.List(c.Request.Context())
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.RespondOK(c, users)
}

func (h *UserHandler) UpdateStatus(c *gin.Context) {
	var req UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondValidationError(c, "invalid request body")
		return
	}

	user, err := h.users.UpdateStatusRole(c.Request.Context(), c.Param("id"), req.Status, req.Role)
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.RespondOK(c, gin.H{
		"message": "User updated successfully",
		"user": gin.H{
			"id":     user.ID,
			"name":   user.Name,
			"status": user.Status,
			"role":   user.Role,
		},
	})
}
