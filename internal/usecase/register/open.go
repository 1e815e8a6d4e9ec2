package register

import (
	"context"
	"math"

	"github.com/petshopsuite/petshop-api/internal/audit"
	domain "github.com/petshopsuite/petshop-api/internal/domain/register"
	"github.com/petshopsuite/petshop-api/internal/domain/finance"
	"github.com/petshopsuite/petshop-api/internal/identity"
	"github.com/petshopsuite/petshop-api/internal/models"
	"github.com/petshopsuite/petshop-api/internal/timezone"
)

type OpenRegisterInput struct {
	PetShopID     uint
	UserID        uint
	InitialAmount float64
	Password      string
}

type OpenRegister struct {
	repo     domain.Repository
	verifier identity.Verifier
	audit    *audit.Dispatcher
}

func NewOpenRegister(
	repo domain.Repository,
	verifier identity.Verifier,
	audit *audit.Dispatcher,
) *OpenRegister {
	return &OpenRegister{
		repo:     repo,
		verifier: verifier,
		audit:    audit,
	}
}

func (uc *OpenRegister) Execute(
	ctx context.Context,
	in OpenRegisterInput,
) (*models.CashRegister, error) {

	// Senha reconferida antes de qualquer coisa; falha aqui não toca
	// em estado nenhum.
	if err := uc.verifier.ReverifyPassword(ctx, in.UserID, in.Password); err != nil {
		return nil, err
	}

	if math.IsNaN(in.InitialAmount) || math.IsInf(in.InitialAmount, 0) {
		return nil, finance.ValidationError{Field: "initial_amount", Reason: "not a number"}
	}
	if in.InitialAmount < 0 {
		return nil, finance.ValidationError{Field: "initial_amount", Reason: "must be non-negative"}
	}

	// Checagem antecipada para devolver um erro claro. A garantia de
	// verdade é o índice único parcial: se duas aberturas passarem por
	// aqui ao mesmo tempo, o CreateRegister de uma delas falha.
	if _, err := uc.repo.GetOpenRegister(ctx, in.PetShopID); err == nil {
		return nil, &domain.StateError{Code: "register_already_open"}
	} else if err != domain.ErrNoOpenRegister {
		return nil, err
	}

	now := timezone.Now()

	reg := &models.CashRegister{
		PetShopID:     in.PetShopID,
		Status:        string(domain.StatusOpen),
		InitialAmount: in.InitialAmount,
		OpenedBy:      in.UserID,
		OpenedAt:      now,
	}

	if err := uc.repo.CreateRegister(ctx, reg); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		PetShopID: in.PetShopID,
		UserID:    &in.UserID,
		Action:    "register_opened",
		Entity:    "cash_register",
		EntityID:  &reg.ID,
		Metadata: map[string]any{
			"initial_amount": in.InitialAmount,
		},
	})

	return reg, nil
}
