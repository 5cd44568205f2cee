package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	domain "github.com/BruksfildServices01/pro-booking/internal/domain/appointment"
	"github.com/BruksfildServices01/pro-booking/internal/httperr"
	"github.com/BruksfildServices01/pro-booking/internal/middleware"
	ucSchedule "github.com/BruksfildServices01/pro-booking/internal/usecase/schedule"
)

type WorkingHoursHandler struct {
	get     *ucSchedule.GetWorkingHours
	replace *ucSchedule.ReplaceWorkingHours
}

func NewWorkingHoursHandler(
	get *ucSchedule.GetWorkingHours,
	replace *ucSchedule.ReplaceWorkingHours,
) *WorkingHoursHandler {
	return &WorkingHoursHandler{get: get, replace: replace}
}

type WorkingDayConfig struct {
	Weekday    int    `json:"weekday" binding:"min=0,max=6"`
	IsSelected bool   `json:"is_selected"`
	StartTime  string `json:"start_time"`
	EndTime    string `json:"end_time"`
}

type WorkingHoursUpdateRequest struct {
	Days []WorkingDayConfig `json:"days" binding:"required,dive"`
}

func (h *WorkingHoursHandler) Get(c *gin.Context) {
	professionalID := c.MustGet(middleware.ContextUserID).(uint)

	hours, err := h.get.Execute(c.Request.Context(), professionalID)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, hours)
}

func (h *WorkingHoursHandler) Update(c *gin.Context) {
	professionalID := c.MustGet(middleware.ContextUserID).(uint)

	var req WorkingHoursUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	days := make([]domain.WorkingDay, 0, len(req.Days))
	for _, d := range req.Days {
		days = append(days, domain.WorkingDay{
			Weekday:    d.Weekday,
			IsSelected: d.IsSelected,
			StartTime:  d.StartTime,
			EndTime:    d.EndTime,
		})
	}

	hours, err := h.replace.Execute(c.Request.Context(), professionalID, days)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, hours)
}
