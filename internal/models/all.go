package models

// All lista os modelos migrados pelo AutoMigrate.
func All() []any {
	return []any{
		&Category{},
		&Professional{},
		&WorkingHours{},
		&ServiceTemplate{},
		&ProfessionalService{},
		&Appointment{},
		&Review{},
		&Album{},
		&Photo{},
		&AuditLog{},
	}
}
