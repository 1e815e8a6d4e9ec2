package register

import "errors"

// StateError: operação contra um caixa no estado errado (abrir com um
// já aberto, fechar um já fechado). Nunca altera estado.
type StateError struct {
	Code string
}

func (e *StateError) Error() string {
	return e.Code
}

func IsStateError(err error, code string) bool {
	var se *StateError
	if errors.As(err, &se) {
		return se.Code == code
	}
	return false
}

// ErrNoOpenRegister: não existe sessão aberta para o pet shop.
var ErrNoOpenRegister = errors.New("no open cash register")
