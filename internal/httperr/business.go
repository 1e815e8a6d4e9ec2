package httperr

import "errors"

// BusinessError carrega um código estável de regra de negócio
// ("insufficient_stock", "time_conflict", ...). A tradução do código
// em status HTTP e mensagem fica na camada de handlers.
type BusinessError struct {
	Code string
}

func (e BusinessError) Error() string {
	return e.Code
}

func ErrBusiness(code string) error {
	return BusinessError{Code: code}
}

// CodeOf extrai o código de negócio de err, se houver.
func CodeOf(err error) (string, bool) {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code, true
	}
	return "", false
}

func IsBusiness(err error, code string) bool {
	got, ok := CodeOf(err)
	return ok && got == code
}
