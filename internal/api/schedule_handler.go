package api

import (
	"net/http"

	"akramfit/coaching-app/internal/domain"
	"akramfit/coaching-app/internal/service"

	"github.com/gin-gonic/gin"
)

// ScheduleHandler serves the weekly schedule grid.
type ScheduleHandler struct {
	scheduleService service.ScheduleService
}

// NewScheduleHandler creates a new ScheduleHandler.
func NewScheduleHandler(scheduleService service.ScheduleService) *ScheduleHandler {
	return &ScheduleHandler{scheduleService: scheduleService}
}

type SaveScheduleRequest struct {
	Schedule map[string]map[string]string `json:"schedule" binding:"required"`
}

// Get returns the full grid, an empty grid if nothing has been saved yet.
func (h *ScheduleHandler) Get(c *gin.Context) {
	schedule, err := h.scheduleService.GetSchedule(c.Request.Context())
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to retrieve schedule")
		return
	}
	c.JSON(http.StatusOK, schedule)
}

// Save replaces the whole grid. The admin screen edits the grid as a unit, so
// writes are last-write-wins on the singleton document. The response carries
// the normalized grid that was stored, not the raw submission.
func (h *ScheduleHandler) Save(c *gin.Context) {
	var req SaveScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	saved, err := h.scheduleService.SaveSchedule(c.Request.Context(), &domain.WeeklySchedule{Schedule: req.Schedule})
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to save schedule")
		return
	}
	c.JSON(http.StatusOK, saved)
}
