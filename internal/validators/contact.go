package validators

import (
	"regexp"
	"time"
)

const MaxContactLength = 15

var contactRe = regexp.MustCompile(`^[0-9+()\- ]+$`)

// IsContactNumber aceita dígitos, espaço e +-() até 15 caracteres.
// Vazio é permitido (contato é opcional).
func IsContactNumber(s string) bool {
	if s == "" {
		return true
	}
	return len(s) <= MaxContactLength && contactRe.MatchString(s)
}

// IsHourMinute valida o formato HH:MM.
func IsHourMinute(s string) bool {
	if len(s) != 5 {
		return false
	}
	_, err := time.Parse("15:04", s)
	return err == nil
}
