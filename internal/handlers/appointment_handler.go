package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/pro-booking/internal/httperr"
	"github.com/BruksfildServices01/pro-booking/internal/httpresp"
	"github.com/BruksfildServices01/pro-booking/internal/middleware"
	ucAppointment "github.com/BruksfildServices01/pro-booking/internal/usecase/appointment"
)

// ======================================================
// HANDLER
// ======================================================

type AppointmentHandler struct {
	create   *ucAppointment.CreateAppointment
	cancel   *ucAppointment.CancelAppointment
	confirm  *ucAppointment.ConfirmAppointment
	complete *ucAppointment.CompleteAppointment
	list     *ucAppointment.ListAppointments
}

func NewAppointmentHandler(
	create *ucAppointment.CreateAppointment,
	cancel *ucAppointment.CancelAppointment,
	confirm *ucAppointment.ConfirmAppointment,
	complete *ucAppointment.CompleteAppointment,
	list *ucAppointment.ListAppointments,
) *AppointmentHandler {
	return &AppointmentHandler{
		create:   create,
		cancel:   cancel,
		confirm:  confirm,
		complete: complete,
		list:     list,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateAppointmentRequest struct {
	ProfessionalID uint   `json:"professional_id" binding:"required"`
	Date           string `json:"date" binding:"required"` // YYYY-MM-DD
	Time           string `json:"time" binding:"required"` // HH:mm
	ServiceName    string `json:"service_name" binding:"required"`
	ContactNumber  string `json:"contact_number"`
	Notes          string `json:"notes"`
}

// ======================================================
// CREATE (cliente)
// ======================================================

func (h *AppointmentHandler) Create(c *gin.Context) {
	actor := middleware.CurrentActor(c)

	var req CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	ap, err := h.create.Execute(
		c.Request.Context(),
		ucAppointment.CreateAppointmentInput{
			ProfessionalID: req.ProfessionalID,
			CustomerID:     actor.ID,
			Date:           req.Date,
			Time:           req.Time,
			ServiceName:    req.ServiceName,
			ContactNumber:  req.ContactNumber,
			Notes:          req.Notes,
		},
	)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	httpresp.Created(c, ap)
}

// ======================================================
// TRANSIÇÕES
// ======================================================

func (h *AppointmentHandler) Cancel(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	ap, err := h.cancel.Execute(c.Request.Context(), id, middleware.CurrentActor(c))
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, ap)
}

func (h *AppointmentHandler) Confirm(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	ap, err := h.confirm.Execute(c.Request.Context(), id, middleware.CurrentActor(c))
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, ap)
}

func (h *AppointmentHandler) Complete(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	ap, err := h.complete.Execute(c.Request.Context(), id, middleware.CurrentActor(c))
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, ap)
}

// ======================================================
// LIST
// ======================================================

func (h *AppointmentHandler) ListByDate(c *gin.Context) {
	professionalID := c.MustGet(middleware.ContextUserID).(uint)

	date := c.Query("date")
	if date == "" {
		httperr.BadRequest(c, "missing_date", "Data obrigatória.")
		return
	}

	list, err := h.list.ByDate(c.Request.Context(), professionalID, date)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"date":         date,
		"appointments": list,
	})
}

func (h *AppointmentHandler) ListUpcoming(c *gin.Context) {
	professionalID := c.MustGet(middleware.ContextUserID).(uint)

	list, err := h.list.Upcoming(c.Request.Context(), professionalID)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"appointments": list})
}

// ListMine: histórico do cliente autenticado.
func (h *AppointmentHandler) ListMine(c *gin.Context) {
	customerID := c.MustGet(middleware.ContextUserID).(uint)

	list, err := h.list.ForCustomer(c.Request.Context(), customerID)
	if err != nil {
		httperr.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"appointments": list})
}
