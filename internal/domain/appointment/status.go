package appointment

import "github.com/BruksfildServices01/pro-booking/internal/httperr"

// ===============================
// Appointment Status
// ===============================

type Status string

const (
	StatusScheduled Status = "scheduled"
	StatusConfirmed Status = "confirmed"
	StatusCancelled Status = "cancelled"
	StatusCompleted Status = "completed"
)

// ActiveStatuses são os status que ocupam a agenda.
var ActiveStatuses = []Status{StatusScheduled, StatusConfirmed}

func ActiveStatusStrings() []string {
	out := make([]string, len(ActiveStatuses))
	for i, s := range ActiveStatuses {
		out[i] = string(s)
	}
	return out
}

func (s Status) IsActive() bool {
	return s == StatusScheduled || s == StatusConfirmed
}

func (s Status) IsTerminal() bool {
	return s == StatusCancelled || s == StatusCompleted
}

var transitions = map[Status][]Status{
	StatusScheduled: {StatusConfirmed, StatusCancelled, StatusCompleted},
	StatusConfirmed: {StatusCancelled, StatusCompleted},
}

// ===============================
// Validations
// ===============================

// CanTransition valida a mudança de status; estados terminais não saem.
func CanTransition(from, to Status) error {
	for _, allowed := range transitions[from] {
		if allowed == to {
			return nil
		}
	}
	return httperr.InvalidTransition("invalid_transition")
}

func CanConfirm(current Status) error {
	return CanTransition(current, StatusConfirmed)
}

func CanCancel(current Status) error {
	return CanTransition(current, StatusCancelled)
}

func CanComplete(current Status) error {
	return CanTransition(current, StatusCompleted)
}

func InitialStatus() Status {
	return StatusScheduled
}
