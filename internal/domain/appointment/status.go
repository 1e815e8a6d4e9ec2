package appointment

import "github.com/petshopsuite/petshop-api/internal/httperr"

// ===============================
// Appointment Status
// ===============================

type Status string

const (
	StatusScheduled Status = "scheduled"
	StatusConfirmed Status = "confirmed"
	StatusPending   Status = "pending"
	StatusCancelled Status = "cancelled"
	StatusCompleted Status = "completed"
)

// ===============================
// Validations
// ===============================

// CanCancel define se um agendamento pode ser cancelado
func CanCancel(current Status) error {
	switch current {
	case StatusScheduled, StatusConfirmed, StatusPending:
		return nil
	}
	return httperr.ErrBusiness("invalid_state")
}

// CanConfirm define se um agendamento pode ser confirmado
func CanConfirm(current Status) error {
	switch current {
	case StatusScheduled, StatusPending:
		return nil
	}
	return httperr.ErrBusiness("invalid_state")
}

// CanComplete define se um agendamento pode ser concluído
func CanComplete(current Status) error {
	switch current {
	case StatusScheduled, StatusConfirmed:
		return nil
	}
	return httperr.ErrBusiness("invalid_state")
}

// InitialStatus valida status inicial
func InitialStatus() Status {
	return StatusScheduled
}
