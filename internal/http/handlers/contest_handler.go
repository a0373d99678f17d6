package handlers

import (
	"fmt"

	"github.com/gin-gonic/gin"

	"github.com/Tanukash12/DRONA-SHIELD-CONTEST/internal/http/middleware"
	"github.com/Tanukash12/DRONA-SHIELD-CONTEST/internal/models"
	"github.com/Tanukash12/DRONA-SHIELD-CONTEST/internal/services"
	"github.com/Tanukash12/DRONA-SHIELD-CONTEST/internal/utils"
)

type ContestHandler struct {
	contests *services.ContestService
}

type CreateContestRequest struct {
	Name        string   `json:"name"`
	QuestionIDs []string `json:"questionIds"`
}

type UpdateContestStatusRequest struct {
	Status models.ContestStatus `json:"status" binding:"required"`
}

type AssignUsersRequest struct {
	UserIDs []string `json:"userIds"`
}

func NewContestHandler(contests *services.ContestService) *ContestHandler {
	return &ContestHandler{contests: contests}
}

func (h *ContestHandler) Create(c *gin.Context) {
	var req CreateContestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondValidationError(c, "Please provide a contest name and select at least one question.")
		return
	}

	contest, err := h.contests.Create(c.Request.Context(), req.Name, req.QuestionIDs)
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.RespondCreated(c, gin.H{
		"message": "Contest created successfully.",
		"contest": contest,
	})
}

func (h *ContestHandler) ListAdmin(c *gin.Context) {
	contests, err := h.contests.ListAdmin(c.Request.Context())
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.RespondOK(c, contests)
}

func (h *ContestHandler) UpdateStatus(c *gin.Context) {
	var req UpdateContestStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondValidationError(c, "status is required")
		return
	}

	contest, err := h.contests.UpdateStatus(c.Request.Context(), c.Param("id"), req.Status)
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.RespondOK(c, gin.H{
		"message": fmt.Sprintf("Contest status updated to %s", contest.Status),
		"contest": contest,
	})
}

func (h *ContestHandler) AssignUsers(c *gin.Context) {
	var req AssignUsersRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondValidationError(c, "invalid request body")
		return
	}

	contest, err := h.contests.AssignUsers(c.Request.Context(), c.Param("id"), req.UserIDs)
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.RespondOK(c, gin.H{
		"message": "Users assigned successfully",
		"contest": contest,
	})
}

// ListForUser returns the live contests assigned to the caller.
func (h *ContestHandler) ListForUser(c *gin.Context) {
	identity, ok := middleware.CurrentUser(c)
	if !ok {
		utils.RespondError(c, utils.AuthenticationError("Not authorized"))
		return
	}

	contests, err := h.contests.ListForUser(c.Request.Context(), identity.ID)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	utils.RespondOK(c, contests)
}
