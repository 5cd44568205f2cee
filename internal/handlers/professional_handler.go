package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/pro-booking/internal/dto"
	"github.com/BruksfildServices01/pro-booking/internal/httperr"
	"github.com/BruksfildServices01/pro-booking/internal/middleware"
	"github.com/BruksfildServices01/pro-booking/internal/models"
	ucProfessional "github.com/BruksfildServices01/pro-booking/internal/usecase/professional"
)

type ProfileReader interface {
	GetProfessional(ctx context.Context, id uint) (*models.Professional, error)
}

type ProfessionalHandler struct {
	profiles ProfileReader
	pause    *ucProfessional.PauseProfessional
	unpause  *ucProfessional.UnpauseProfessional
	location *ucProfessional.UpdateLocation
}

func NewProfessionalHandler(
	profiles ProfileReader,
	pause *ucProfessional.PauseProfessional,
	unpause *ucProfessional.UnpauseProfessional,
	location *ucProfessional.UpdateLocation,
) *ProfessionalHandler {
	return &ProfessionalHandler{
		profiles: profiles,
		pause:    pause,
		unpause:  unpause,
		location: location,
	}
}

// --------- Requests ---------

type PauseRequest struct {
	Days   int    `json:"days" binding:"required"`
	Reason string `json:"reason"`
}

type LocationRequest struct {
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
}

// --------- Handlers ---------

func (h *ProfessionalHandler) GetMe(c *gin.Context) {
	professionalID := c.MustGet(middleware.ContextUserID).(uint)

	p, err := h.profiles.GetProfessional(c.Request.Context(), professionalID)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"professional": dto.NewProfessionalSummary(*p),
		"pause": gin.H{
			"start":  p.PauseStart,
			"end":    p.PauseEnd,
			"reason": p.PauseReason,
		},
	})
}

func (h *ProfessionalHandler) Pause(c *gin.Context) {
	professionalID := c.MustGet(middleware.ContextUserID).(uint)

	var req PauseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	p, err := h.pause.Execute(c.Request.Context(), professionalID, req.Days, req.Reason)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"pause_start":  p.PauseStart,
		"pause_end":    p.PauseEnd,
		"pause_reason": p.PauseReason,
	})
}

func (h *ProfessionalHandler) Unpause(c *gin.Context) {
	professionalID := c.MustGet(middleware.ContextUserID).(uint)

	if _, err := h.unpause.Execute(c.Request.Context(), professionalID); err != nil {
		httperr.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// UpdateLocation: latitude e longitude nulas removem a localização.
func (h *ProfessionalHandler) UpdateLocation(c *gin.Context) {
	professionalID := c.MustGet(middleware.ContextUserID).(uint)

	var req LocationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}
	if (req.Latitude == nil) != (req.Longitude == nil) {
		httperr.BadRequest(c, "invalid_location", "Informe latitude e longitude.")
		return
	}

	point, err := h.location.Execute(c.Request.Context(), professionalID, req.Latitude, req.Longitude)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"location": point})
}
