package identity

import "context"

// AuthenticationError: a senha reconferida não bate. Aborta a operação
// que pediu a confirmação sem tocar em nada.
type AuthenticationError struct {
	Reason string
}

func (e *AuthenticationError) Error() string {
	return e.Reason
}

// Verifier reconfere a senha de um usuário já autenticado. Operações
// sensíveis (abrir caixa) exigem essa confirmação mesmo com JWT válido.
type Verifier interface {
	ReverifyPassword(ctx context.Context, userID uint, password string) error
}
