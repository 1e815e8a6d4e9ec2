package finance

import (
	"context"
	"time"

	"github.com/petshopsuite/petshop-api/internal/audit"
	domain "github.com/petshopsuite/petshop-api/internal/domain/finance"
	"github.com/petshopsuite/petshop-api/internal/models"
	"github.com/petshopsuite/petshop-api/internal/timezone"
)

// ======================================================
// MANUAL ENTRY
// ======================================================

type AppendRecordInput struct {
	PetShopID     uint
	UserID        uint
	Description   string
	Amount        float64
	Type          string
	Category      string
	PaymentMethod string

	// "2006-01-02"; vazio usa o dia de hoje
	Date string

	// Fuso do pet shop; vazio cai no padrão. Define em que
	// dia-calendário o lançamento é datado.
	Timezone string
}

type AppendRecord struct {
	ledger domain.Repository
	audit  *audit.Dispatcher
}

func NewAppendRecord(
	ledger domain.Repository,
	audit *audit.Dispatcher,
) *AppendRecord {
	return &AppendRecord{
		ledger: ledger,
		audit:  audit,
	}
}

func (uc *AppendRecord) Execute(
	ctx context.Context,
	in AppendRecordInput,
) (*models.FinancialRecord, error) {

	var day time.Time
	if in.Date == "" {
		day = timezone.DayOf(timezone.NowIn(in.Timezone))
	} else {
		parsed, err := time.ParseInLocation("2006-01-02", in.Date, timezone.Location(in.Timezone))
		if err != nil {
			return nil, domain.ValidationError{Field: "date", Reason: "must be YYYY-MM-DD"}
		}
		day = parsed
	}

	rec, err := domain.NewRecord(domain.NewRecordInput{
		PetShopID:     in.PetShopID,
		Description:   in.Description,
		Amount:        in.Amount,
		Type:          in.Type,
		Category:      in.Category,
		PaymentMethod: in.PaymentMethod,
		Date:          day,
	})
	if err != nil {
		return nil, err
	}

	if err := uc.ledger.Append(ctx, rec); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		PetShopID: in.PetShopID,
		UserID:    &in.UserID,
		Action:    "financial_record_created",
		Entity:    "financial_record",
		EntityID:  &rec.ID,
		Metadata: map[string]any{
			"type":           rec.Type,
			"amount":         rec.Amount,
			"payment_method": rec.PaymentMethod,
		},
	})

	return rec, nil
}

// ======================================================
// RANGE QUERY + SUMMARY
// ======================================================

type ListRecords struct {
	ledger domain.Repository
}

func NewListRecords(ledger domain.Repository) *ListRecords {
	return &ListRecords{ledger: ledger}
}

func (uc *ListRecords) Execute(
	ctx context.Context,
	petShopID uint,
	from time.Time,
	to time.Time,
	filter domain.RangeFilter,
) ([]models.FinancialRecord, error) {
	return uc.ledger.ListByDateRange(ctx, petShopID, from, to, filter)
}

type DailySummary struct {
	Date         string  `json:"date"`
	TotalIncome  float64 `json:"total_income"`
	TotalExpense float64 `json:"total_expense"`
	Net          float64 `json:"net"`

	// Só receitas entram na quebra por método; despesas aparecem apenas
	// no total e no líquido.
	IncomeByMethod map[string]float64 `json:"income_by_method"`
}

type SummarizeDay struct {
	ledger domain.Repository
}

func NewSummarizeDay(ledger domain.Repository) *SummarizeDay {
	return &SummarizeDay{ledger: ledger}
}

func (uc *SummarizeDay) Execute(
	ctx context.Context,
	petShopID uint,
	day time.Time,
) (*DailySummary, error) {

	dayStart := timezone.DayOf(day)
	records, err := uc.ledger.ListByDateRange(
		ctx,
		petShopID,
		dayStart,
		dayStart,
		domain.RangeFilter{},
	)
	if err != nil {
		return nil, err
	}

	summary := &DailySummary{
		Date:           dayStart.Format("2006-01-02"),
		IncomeByMethod: map[string]float64{},
	}

	for _, rec := range records {
		switch rec.Type {
		case domain.TypeIncome:
			summary.TotalIncome += rec.Amount
			summary.IncomeByMethod[rec.PaymentMethod] += rec.Amount
		case domain.TypeExpense:
			summary.TotalExpense += rec.Amount
		}
	}

	summary.Net = summary.TotalIncome - summary.TotalExpense

	return summary, nil
}
