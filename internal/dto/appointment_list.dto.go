package dto

import (
	"time"

	"github.com/BruksfildServices01/pro-booking/internal/models"
)

type AppointmentListDTO struct {
	ID              uint   `json:"id"`
	ProfessionalID  uint   `json:"professional_id"`
	CustomerID      uint   `json:"customer_id"`
	Date            string `json:"date"`
	StartTime       string `json:"start_time"`
	EndTime         string `json:"end_time"`
	ServiceName     string `json:"service_name"`
	DurationMinutes int    `json:"duration_minutes"`
	Status          string `json:"status"`
	ContactNumber   string `json:"contact_number"`
	Notes           string `json:"notes"`
}

// AppointmentList formata os horários no fuso de operação.
func AppointmentList(apps []models.Appointment, loc *time.Location) []AppointmentListDTO {
	out := make([]AppointmentListDTO, 0, len(apps))
	for _, ap := range apps {
		out = append(out, AppointmentListDTO{
			ID:              ap.ID,
			ProfessionalID:  ap.ProfessionalID,
			CustomerID:      ap.CustomerID,
			Date:            ap.Date,
			StartTime:       ap.StartTime.In(loc).Format("15:04"),
			EndTime:         ap.EndTime.In(loc).Format("15:04"),
			ServiceName:     ap.ServiceName,
			DurationMinutes: ap.DurationMinutes,
			Status:          ap.Status,
			ContactNumber:   ap.ContactNumber,
			Notes:           ap.Notes,
		})
	}
	return out
}
