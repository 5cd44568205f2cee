package appointment

import (
	"context"

	"github.com/BruksfildServices01/pro-booking/internal/models"
)

type Repository interface {
	// -------- Professional --------
	GetProfessional(
		ctx context.Context,
		id uint,
	) (*models.Professional, error)

	// LockProfessional trava a linha do profissional até o fim da transação.
	LockProfessional(
		ctx context.Context,
		id uint,
	) error

	// -------- Availability --------

	// GetWorkingHours devolve nil, nil quando não há registro para o dia.
	GetWorkingHours(
		ctx context.Context,
		professionalID uint,
		weekday int,
	) (*models.WorkingHours, error)

	ListActiveForDate(
		ctx context.Context,
		professionalID uint,
		date string,
	) ([]models.Appointment, error)

	// -------- Appointment --------
	CreateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	GetAppointment(
		ctx context.Context,
		id uint,
	) (*models.Appointment, error)

	// GetAppointmentForUpdate trava a linha do agendamento na transação.
	GetAppointmentForUpdate(
		ctx context.Context,
		id uint,
	) (*models.Appointment, error)

	UpdateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	// -------- Listing --------
	ListByDate(
		ctx context.Context,
		professionalID uint,
		date string,
	) ([]models.Appointment, error)

	ListUpcoming(
		ctx context.Context,
		professionalID uint,
		fromDate string,
	) ([]models.Appointment, error)

	ListForCustomer(
		ctx context.Context,
		customerID uint,
	) ([]models.Appointment, error)

	// -------- Transaction --------
	WithTx(
		ctx context.Context,
		fn func(tx Repository) error,
	) error
}

type WorkingHoursRepository interface {
	ListWorkingHours(
		ctx context.Context,
		professionalID uint,
	) ([]models.WorkingHours, error)

	// ReplaceWorkingHours apaga e recria todos os dias numa transação.
	ReplaceWorkingHours(
		ctx context.Context,
		professionalID uint,
		hours []models.WorkingHours,
	) error

	ProfessionalExists(
		ctx context.Context,
		professionalID uint,
	) (bool, error)
}
