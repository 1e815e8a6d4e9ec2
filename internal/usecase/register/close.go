package register

import (
	"context"
	"math"

	"github.com/petshopsuite/petshop-api/internal/audit"
	"github.com/petshopsuite/petshop-api/internal/domain/finance"
	domain "github.com/petshopsuite/petshop-api/internal/domain/register"
	"github.com/petshopsuite/petshop-api/internal/models"
	"github.com/petshopsuite/petshop-api/internal/timezone"
)

type CloseRegisterInput struct {
	PetShopID     uint
	UserID        uint
	RegisterID    uint
	CountedAmount float64
	Notes         string
}

type CloseRegisterOutput struct {
	Register    *models.CashRegister
	Discrepancy float64
	Status      finance.DiscrepancyStatus
}

type CloseRegister struct {
	repo   domain.Repository
	ledger finance.Repository
	audit  *audit.Dispatcher
}

func NewCloseRegister(
	repo domain.Repository,
	ledger finance.Repository,
	audit *audit.Dispatcher,
) *CloseRegister {
	return &CloseRegister{
		repo:   repo,
		ledger: ledger,
		audit:  audit,
	}
}

func (uc *CloseRegister) Execute(
	ctx context.Context,
	in CloseRegisterInput,
) (*CloseRegisterOutput, error) {

	if math.IsNaN(in.CountedAmount) || math.IsInf(in.CountedAmount, 0) {
		return nil, finance.ValidationError{Field: "counted_amount", Reason: "not a number"}
	}
	if in.CountedAmount < 0 {
		return nil, finance.ValidationError{Field: "counted_amount", Reason: "must be non-negative"}
	}

	reg, err := uc.repo.GetRegister(ctx, in.PetShopID, in.RegisterID)
	if err != nil {
		return nil, err
	}

	shop, err := uc.repo.GetPetShop(ctx, in.PetShopID)
	if err != nil {
		return nil, err
	}

	// O esperado é calculado sobre o dia-calendário do fechamento no
	// fuso do pet shop — o mesmo fuso em que os lançamentos do dia são
	// datados. Sessão que virou a noite fecha contra o movimento de hoje.
	today := timezone.NowIn(shop.Timezone)
	cashRecords, err := uc.ledger.ListCashByDate(ctx, in.PetShopID, today)
	if err != nil {
		return nil, err
	}

	expected := finance.ExpectedCash(reg.InitialAmount, cashRecords)

	if err := domain.Close(reg, in.CountedAmount, expected, in.UserID, in.Notes, today); err != nil {
		return nil, err
	}

	if err := uc.repo.CloseRegister(ctx, reg); err != nil {
		return nil, err
	}

	diff, status := finance.ClassifyDiscrepancy(in.CountedAmount, expected)

	uc.audit.Dispatch(audit.Event{
		PetShopID: in.PetShopID,
		UserID:    &in.UserID,
		Action:    "register_closed",
		Entity:    "cash_register",
		EntityID:  &reg.ID,
		Metadata: map[string]any{
			"counted_amount":  in.CountedAmount,
			"expected_amount": expected,
			"discrepancy":     diff,
			"result":          string(status),
		},
	})

	return &CloseRegisterOutput{
		Register:    reg,
		Discrepancy: diff,
		Status:      status,
	}, nil
}
