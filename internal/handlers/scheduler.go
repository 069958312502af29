package handlers

import (
	"net/http"

	"contest-backend/internal/scheduler"

	"github.com/gin-gonic/gin"
)

type SchedulerHandler struct {
	engine *scheduler.Engine
}

func NewSchedulerHandler(engine *scheduler.Engine) *SchedulerHandler {
	return &SchedulerHandler{engine: engine}
}

// GetStatus godoc
// @Summary      Scheduler engine status
// @Description  Reports whether the engine is running, tick times, and the current contest
// @Tags         scheduler
// @Produce      json
// @Success      200 {object} scheduler.Status
// @Router       /scheduler/status [get]
func (h *SchedulerHandler) GetStatus(c *gin.Context) {
	c.JSON(http.StatusOK, h.engine.Status(c.Request.Context()))
}
