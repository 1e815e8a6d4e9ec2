package register

import (
	"time"

	"github.com/petshopsuite/petshop-api/internal/models"
)

// ===============================
// Domain Actions
// ===============================

// Close muda a sessão para fechada, gravando contado e esperado de uma
// vez. expected_amount é definido aqui e nunca mais muda.
func Close(
	reg *models.CashRegister,
	counted float64,
	expected float64,
	closedBy uint,
	notes string,
	now time.Time,
) error {

	if err := CanClose(Status(reg.Status)); err != nil {
		return err
	}

	reg.Status = string(StatusClosed)
	reg.FinalAmount = &counted
	reg.ExpectedAmount = &expected
	reg.ClosedBy = &closedBy
	reg.ClosedAt = &now
	reg.Notes = notes

	return nil
}

// Discrepancy deriva a quebra de um caixa fechado: contado − esperado.
// Não é coluna; qualquer leitor recalcula a partir dos dois valores.
func Discrepancy(reg *models.CashRegister) (float64, bool) {
	if reg.Status != string(StatusClosed) || reg.FinalAmount == nil || reg.ExpectedAmount == nil {
		return 0, false
	}
	return *reg.FinalAmount - *reg.ExpectedAmount, true
}
