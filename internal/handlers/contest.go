package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"contest-backend/internal/services"
	"contest-backend/internal/store"

	"github.com/gin-gonic/gin"
)

type ContestHandler struct {
	queryService         *services.QueryService
	participationService *services.ParticipationService
}

func NewContestHandler(queryService *services.QueryService, participationService *services.ParticipationService) *ContestHandler {
	return &ContestHandler{queryService: queryService, participationService: participationService}
}

// GetCurrent godoc
// @Summary      Get the current weekly contest
// @Description  Returns the active contest, or the next scheduled one if none is active yet
// @Tags         contests
// @Produce      json
// @Success      200 {object} services.CurrentContest
// @Failure      404 {object} ErrorResponse
// @Router       /contests/weekly/current [get]
func (h *ContestHandler) GetCurrent(c *gin.Context) {
	current, err := h.queryService.GetCurrent(c.Request.Context())
	if err != nil {
		if errors.Is(err, services.ErrNoCurrentContest) {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "no contest exists yet"})
			return
		}
		h.storeError(c, err)
		return
	}

	c.JSON(http.StatusOK, current)
}

// GetStats godoc
// @Summary      Get aggregate contest statistics
// @Tags         contests
// @Produce      json
// @Success      200 {object} services.ContestStats
// @Failure      503 {object} ErrorResponse
// @Router       /contests/weekly/stats [get]
func (h *ContestHandler) GetStats(c *gin.Context) {
	stats, err := h.queryService.GetStats(c.Request.Context())
	if err != nil {
		h.storeError(c, err)
		return
	}

	c.JSON(http.StatusOK, stats)
}

// GetHistory godoc
// @Summary      List past contests
// @Description  Closed and archived contests, newest window first
// @Tags         contests
// @Produce      json
// @Param        limit query int false "Page size" default(10)
// @Param        offset query int false "Page offset" default(0)
// @Success      200 {object} services.ContestHistory
// @Failure      503 {object} ErrorResponse
// @Router       /contests/weekly/history [get]
func (h *ContestHandler) GetHistory(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	history, err := h.queryService.GetHistory(c.Request.Context(), limit, offset)
	if err != nil {
		h.storeError(c, err)
		return
	}

	c.JSON(http.StatusOK, history)
}

// Participate godoc
// @Summary      Enter the current weekly contest
// @Description  Records the authenticated user's participation, at most once per contest
// @Tags         contests
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body ParticipateRequest true "Contest to enter"
// @Success      201 {object} Participation
// @Failure      401 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Failure      409 {object} ErrorResponse
// @Failure      422 {object} ErrorResponse
// @Failure      503 {object} ErrorResponse
// @Router       /contests/weekly/participate [post]
func (h *ContestHandler) Participate(c *gin.Context) {
	userID := c.GetUint("user_id")

	var req ParticipateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	participation, err := h.participationService.Participate(c.Request.Context(), req.ContestID, userID)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrContestNotFound):
			c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
		case errors.Is(err, store.ErrContestNotActive):
			c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Error: err.Error()})
		case errors.Is(err, store.ErrDuplicateParticipation):
			c.JSON(http.StatusConflict, ErrorResponse{Error: err.Error()})
		case errors.Is(err, store.ErrStoreUnavailable):
			c.JSON(http.StatusServiceUnavailable, ErrorResponse{Error: err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
		}
		return
	}

	c.JSON(http.StatusCreated, participation)
}

type ParticipateRequest struct {
	ContestID uint `json:"contest_id" binding:"required" example:"1"`
}

func (h *ContestHandler) storeError(c *gin.Context, err error) {
	if errors.Is(err, store.ErrStoreUnavailable) {
		c.JSON(http.StatusServiceUnavailable, ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
}
