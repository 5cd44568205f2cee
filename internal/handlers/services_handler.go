package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/pro-booking/internal/httperr"
	"github.com/BruksfildServices01/pro-booking/internal/httpresp"
	"github.com/BruksfildServices01/pro-booking/internal/middleware"
	ucCatalog "github.com/BruksfildServices01/pro-booking/internal/usecase/catalog"
)

type ServicesHandler struct {
	list    *ucCatalog.ListServices
	replace *ucCatalog.ReplaceServices
}

func NewServicesHandler(
	list *ucCatalog.ListServices,
	replace *ucCatalog.ReplaceServices,
) *ServicesHandler {
	return &ServicesHandler{list: list, replace: replace}
}

// --------- Requests ---------

type ServiceRequest struct {
	Name              string  `json:"name" binding:"required"`
	Price             float64 `json:"price"`
	CustomDuration    *int    `json:"custom_duration"`
	CustomDescription string  `json:"custom_description"`
	IsActive          *bool   `json:"is_active"`
}

type ReplaceServicesRequest struct {
	Services []ServiceRequest `json:"services" binding:"dive"`
}

// --------- Handlers ---------

func (h *ServicesHandler) List(c *gin.Context) {
	professionalID := c.MustGet(middleware.ContextUserID).(uint)

	services, err := h.list.All(c.Request.Context(), professionalID)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.List(c, services)
}

func (h *ServicesHandler) Replace(c *gin.Context) {
	professionalID := c.MustGet(middleware.ContextUserID).(uint)

	var req ReplaceServicesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	in := make([]ucCatalog.ServiceInput, 0, len(req.Services))
	for _, s := range req.Services {
		in = append(in, ucCatalog.ServiceInput{
			Name:              s.Name,
			Price:             s.Price,
			CustomDuration:    s.CustomDuration,
			CustomDescription: s.CustomDescription,
			IsActive:          s.IsActive,
		})
	}

	services, err := h.replace.Execute(c.Request.Context(), professionalID, in)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, services)
}
