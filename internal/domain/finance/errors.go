package finance

import (
	"errors"
	"fmt"
)

// ValidationError: entrada malformada. Nunca persiste nada.
type ValidationError struct {
	Field  string
	Reason string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// StorageError: o banco recusou ou está fora. Não há retry automático;
// o chamador decide.
type StorageError struct {
	Op  string
	Err error
}

func (e StorageError) Error() string {
	return fmt.Sprintf("storage failure on %s: %v", e.Op, e.Err)
}

func (e StorageError) Unwrap() error {
	return e.Err
}

// ErrDuplicateAppointment: já existe lançamento para este agendamento
// (índice único parcial em financial_records.appointment_id). Quem conclui
// agendamento trata isso como retomada, não como falha.
var ErrDuplicateAppointment = errors.New("financial record already exists for appointment")
