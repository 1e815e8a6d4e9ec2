package register

// ===============================
// Cash Register Status
// ===============================

type Status string

const (
	StatusOpen   Status = "open"
	StatusClosed Status = "closed"
)

// CanClose define se uma sessão de caixa pode ser fechada
func CanClose(current Status) error {
	if current != StatusOpen {
		return &StateError{Code: "register_not_open"}
	}
	return nil
}

func InitialStatus() Status {
	return StatusOpen
}
