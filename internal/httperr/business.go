package httperr

import (
	"errors"
	"fmt"
)

// Kind classifica erros de negócio para o mapeamento HTTP.
type Kind string

const (
	KindValidation        Kind = "validation_error"
	KindSlotConflict      Kind = "slot_conflict"
	KindInvalidTransition Kind = "invalid_transition"
	KindNotFound          Kind = "not_found"
	KindInvalidArgument   Kind = "invalid_argument"
)

type BusinessError struct {
	Kind Kind
	Code string
}

func (e BusinessError) Error() string {
	return fmt.Sprintf("%s: %s", e.Kind, e.Code)
}

func ErrBusiness(kind Kind, code string) error {
	return BusinessError{Kind: kind, Code: code}
}

// -------- atalhos --------

func Validation(code string) error        { return ErrBusiness(KindValidation, code) }
func SlotConflict() error                  { return ErrBusiness(KindSlotConflict, "slot_conflict") }
func InvalidTransition(code string) error { return ErrBusiness(KindInvalidTransition, code) }
func NotFoundErr(code string) error       { return ErrBusiness(KindNotFound, code) }
func InvalidArgument(code string) error   { return ErrBusiness(KindInvalidArgument, code) }

func IsBusiness(err error, code string) bool {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code == code
	}
	return false
}

func IsKind(err error, kind Kind) bool {
	k, ok := KindOf(err)
	return ok && k == kind
}

// KindOf devolve o Kind de um erro de negócio; ok=false para erros internos.
func KindOf(err error) (Kind, bool) {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Kind, true
	}
	return "", false
}
