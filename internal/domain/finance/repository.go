package finance

import (
	"context"
	"time"

	"github.com/petshopsuite/petshop-api/internal/models"
)

type RangeFilter struct {
	Type          string
	PaymentMethod string
	Category      string
}

type Repository interface {
	// Append persiste um lançamento já validado e preenche ID/CreatedAt.
	// Devolve ErrDuplicateAppointment quando o índice único de
	// appointment_id barra a inserção.
	Append(ctx context.Context, rec *models.FinancialRecord) error

	// ListByDateRange: intervalo inclusivo sobre o campo date, ordenado
	// por date DESC, created_at DESC. O resultado é materializado; quem
	// chama filtra e agrega em memória.
	ListByDateRange(
		ctx context.Context,
		petShopID uint,
		from time.Time,
		to time.Time,
		filter RangeFilter,
	) ([]models.FinancialRecord, error)

	// ListCashByDate: lançamentos do dia cujo método é dinheiro (ou
	// vazio, em registros antigos). Insumo do fechamento de caixa.
	ListCashByDate(
		ctx context.Context,
		petShopID uint,
		day time.Time,
	) ([]models.FinancialRecord, error)

	// DailyIncomeTotal: soma das receitas do dia, zero quando não há.
	DailyIncomeTotal(
		ctx context.Context,
		petShopID uint,
		day time.Time,
	) (float64, error)

	GetByAppointmentID(
		ctx context.Context,
		petShopID uint,
		appointmentID uint,
	) (*models.FinancialRecord, error)
}
