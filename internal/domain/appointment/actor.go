package appointment

import "github.com/BruksfildServices01/pro-booking/internal/httperr"

const (
	RoleCustomer     = "customer"
	RoleProfessional = "professional"
)

// Actor é o principal autenticado que executa a ação.
type Actor struct {
	ID   uint
	Role string
}

// CanAccess: o cliente dono ou o profissional dono. Para os demais o
// agendamento "não existe".
func (a Actor) CanAccess(professionalID, customerID uint) error {
	switch {
	case a.Role == RoleProfessional && a.ID == professionalID:
		return nil
	case a.Role == RoleCustomer && a.ID == customerID:
		return nil
	default:
		return httperr.NotFoundErr("appointment_not_found")
	}
}
