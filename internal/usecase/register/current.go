package register

import (
	"context"

	"github.com/petshopsuite/petshop-api/internal/domain/finance"
	domain "github.com/petshopsuite/petshop-api/internal/domain/register"
	"github.com/petshopsuite/petshop-api/internal/models"
	"github.com/petshopsuite/petshop-api/internal/timezone"
)

type CurrentRegisterOutput struct {
	Register *models.CashRegister `json:"register"`

	// Prévia do esperado para a sessão aberta, recalculada a cada
	// chamada. Nula quando não há sessão aberta.
	ExpectedAmount *float64 `json:"expected_amount,omitempty"`
}

type CurrentRegister struct {
	repo   domain.Repository
	ledger finance.Repository
}

func NewCurrentRegister(
	repo domain.Repository,
	ledger finance.Repository,
) *CurrentRegister {
	return &CurrentRegister{
		repo:   repo,
		ledger: ledger,
	}
}

func (uc *CurrentRegister) Execute(
	ctx context.Context,
	petShopID uint,
) (*CurrentRegisterOutput, error) {

	reg, err := uc.repo.GetOpenRegister(ctx, petShopID)
	if err == domain.ErrNoOpenRegister {
		// sem sessão aberta: devolve a última fechada, se houver
		latest, _, listErr := uc.repo.ListRegisters(ctx, petShopID, 1, 0)
		if listErr != nil {
			return nil, listErr
		}
		if len(latest) == 0 {
			return &CurrentRegisterOutput{}, nil
		}
		return &CurrentRegisterOutput{Register: &latest[0]}, nil
	}
	if err != nil {
		return nil, err
	}

	shop, err := uc.repo.GetPetShop(ctx, petShopID)
	if err != nil {
		return nil, err
	}

	cashRecords, err := uc.ledger.ListCashByDate(ctx, petShopID, timezone.NowIn(shop.Timezone))
	if err != nil {
		return nil, err
	}

	expected := finance.ExpectedCash(reg.InitialAmount, cashRecords)

	return &CurrentRegisterOutput{
		Register:       reg,
		ExpectedAmount: &expected,
	}, nil
}
