package dashboard

import (
	"context"
	"time"

	appointmentDomain "github.com/petshopsuite/petshop-api/internal/domain/appointment"
	"github.com/petshopsuite/petshop-api/internal/domain/finance"
	"github.com/petshopsuite/petshop-api/internal/timezone"
)

type TodayStats struct {
	Revenue          float64 `json:"revenue"`
	AppointmentCount int64   `json:"appointment_count"`
}

// Stats é recalculado a cada chamada. Sem cache, sem invalidação: quem
// consome decide quando buscar de novo.
type Stats struct {
	ledger       finance.Repository
	appointments appointmentDomain.Repository
}

func NewStats(
	ledger finance.Repository,
	appointments appointmentDomain.Repository,
) *Stats {
	return &Stats{
		ledger:       ledger,
		appointments: appointments,
	}
}

func (uc *Stats) Execute(
	ctx context.Context,
	petShopID uint,
) (*TodayStats, error) {

	shop, err := uc.appointments.GetPetShopByID(ctx, petShopID)
	if err != nil {
		return nil, err
	}

	// "Hoje" é o dia-calendário no fuso do pet shop, a mesma régua dos
	// lançamentos e da conferência de caixa.
	now := timezone.NowIn(shop.Timezone)
	dayStart := timezone.DayOf(now)
	dayEnd := dayStart.Add(24 * time.Hour)

	revenue, err := uc.ledger.DailyIncomeTotal(ctx, petShopID, now)
	if err != nil {
		return nil, err
	}

	count, err := uc.appointments.CountActiveForDay(ctx, petShopID, dayStart, dayEnd)
	if err != nil {
		return nil, err
	}

	return &TodayStats{
		Revenue:          revenue,
		AppointmentCount: count,
	}, nil
}
