package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"contest-backend/internal/store"

	"github.com/gin-gonic/gin"
)

// AdminHandler exposes contest metadata management to trusted operators.
// Lifecycle state is never editable here; the scheduler owns it.
type AdminHandler struct {
	contests *store.ContestStore
}

func NewAdminHandler(contests *store.ContestStore) *AdminHandler {
	return &AdminHandler{contests: contests}
}

type UpdateContestRequest struct {
	Title       string `json:"title" binding:"required,min=1,max=200" example:"Weekly Contest 2024-01-01"`
	Description string `json:"description" example:"This week's contest"`
}

// ListContests godoc
// @Summary      List all contests
// @Description  Every contest regardless of status, newest window first
// @Tags         admin
// @Produce      json
// @Param        X-Admin-API-Key header string true "Admin API Key"
// @Success      200 {array} Contest
// @Failure      401 {object} ErrorResponse
// @Router       /admin/contests [get]
func (h *AdminHandler) ListContests(c *gin.Context) {
	contests, err := h.contests.ListAll(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, contests)
}

// UpdateContest godoc
// @Summary      Update contest metadata
// @Description  Edit title and description; lifecycle state stays scheduler-owned
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        X-Admin-API-Key header string true "Admin API Key"
// @Param        id path int true "Contest ID"
// @Param        request body UpdateContestRequest true "New metadata"
// @Success      200 {object} Contest
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Router       /admin/contests/{id} [put]
func (h *AdminHandler) UpdateContest(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid contest id"})
		return
	}

	var req UpdateContestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	contest, err := h.contests.UpdateDetails(c.Request.Context(), uint(id), req.Title, req.Description)
	if err != nil {
		if errors.Is(err, store.ErrContestNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, contest)
}
