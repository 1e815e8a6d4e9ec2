package register

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/petshopsuite/petshop-api/internal/audit"
	financedomain "github.com/petshopsuite/petshop-api/internal/domain/finance"
	domain "github.com/petshopsuite/petshop-api/internal/domain/register"
	"github.com/petshopsuite/petshop-api/internal/models"
)

func closeInput(counted float64) CloseRegisterInput {
	return CloseRegisterInput{
		PetShopID:     1,
		UserID:        7,
		RegisterID:    3,
		CountedAmount: counted,
	}
}

func TestCloseRegister(t *testing.T) {
	ctx := context.Background()

	dayRecords := []models.FinancialRecord{
		{Type: financedomain.TypeIncome, Amount: 100, PaymentMethod: financedomain.PaymentCash},
		{Type: financedomain.TypeIncome, Amount: 50, PaymentMethod: financedomain.PaymentCash},
		{Type: financedomain.TypeExpense, Amount: 20, PaymentMethod: financedomain.PaymentCash},
	}

	newOpen := func() *models.CashRegister {
		return &models.CashRegister{
			ID:            3,
			PetShopID:     1,
			Status:        "open",
			InitialAmount: 0,
		}
	}

	t.Run("contado bate com o esperado", func(t *testing.T) {
		repo := new(mockRegisterRepo)
		ledger := new(mockLedger)
		repo.On("GetRegister", ctx, uint(1), uint(3)).Return(newOpen(), nil)
		repo.On("GetPetShop", ctx, uint(1)).Return(&models.PetShop{ID: 1, Timezone: "America/Sao_Paulo"}, nil)
		ledger.On("ListCashByDate", ctx, uint(1), mock.Anything).Return(dayRecords, nil)
		repo.On("CloseRegister", ctx, mock.Anything).Return(nil)

		uc := NewCloseRegister(repo, ledger, audit.NewDiscard())

		out, err := uc.Execute(ctx, closeInput(130))
		require.NoError(t, err)

		assert.Equal(t, financedomain.DiscrepancyMatched, out.Status)
		assert.InDelta(t, 0, out.Discrepancy, 1e-9)
		require.NotNil(t, out.Register.ExpectedAmount)
		assert.InDelta(t, 130.0, *out.Register.ExpectedAmount, 1e-9)
	})

	t.Run("faltando cinco é quebra", func(t *testing.T) {
		repo := new(mockRegisterRepo)
		ledger := new(mockLedger)
		repo.On("GetRegister", ctx, uint(1), uint(3)).Return(newOpen(), nil)
		repo.On("GetPetShop", ctx, uint(1)).Return(&models.PetShop{ID: 1, Timezone: "America/Sao_Paulo"}, nil)
		ledger.On("ListCashByDate", ctx, uint(1), mock.Anything).Return(dayRecords, nil)
		repo.On("CloseRegister", ctx, mock.Anything).Return(nil)

		uc := NewCloseRegister(repo, ledger, audit.NewDiscard())

		out, err := uc.Execute(ctx, closeInput(125))
		require.NoError(t, err)

		assert.Equal(t, financedomain.DiscrepancyShortage, out.Status)
		assert.InDelta(t, -5.0, out.Discrepancy, 1e-9)
	})

	t.Run("sessão já fechada não fecha de novo", func(t *testing.T) {
		repo := new(mockRegisterRepo)
		ledger := new(mockLedger)

		closed := newOpen()
		closed.Status = "closed"
		repo.On("GetRegister", ctx, uint(1), uint(3)).Return(closed, nil)
		repo.On("GetPetShop", ctx, uint(1)).Return(&models.PetShop{ID: 1, Timezone: "America/Sao_Paulo"}, nil)
		ledger.On("ListCashByDate", ctx, uint(1), mock.Anything).Return(dayRecords, nil)

		uc := NewCloseRegister(repo, ledger, audit.NewDiscard())

		_, err := uc.Execute(ctx, closeInput(130))
		assert.True(t, domain.IsStateError(err, "register_not_open"))
		repo.AssertNotCalled(t, "CloseRegister", mock.Anything, mock.Anything)
	})

	t.Run("corrida de dois fechamentos: o UPDATE condicional barra o segundo", func(t *testing.T) {
		repo := new(mockRegisterRepo)
		ledger := new(mockLedger)
		repo.On("GetRegister", ctx, uint(1), uint(3)).Return(newOpen(), nil)
		repo.On("GetPetShop", ctx, uint(1)).Return(&models.PetShop{ID: 1, Timezone: "America/Sao_Paulo"}, nil)
		ledger.On("ListCashByDate", ctx, uint(1), mock.Anything).Return(dayRecords, nil)
		repo.On("CloseRegister", ctx, mock.Anything).
			Return(&domain.StateError{Code: "register_not_open"})

		uc := NewCloseRegister(repo, ledger, audit.NewDiscard())

		_, err := uc.Execute(ctx, closeInput(130))
		assert.True(t, domain.IsStateError(err, "register_not_open"))
	})

	t.Run("dia da conferência segue o fuso do pet shop", func(t *testing.T) {
		repo := new(mockRegisterRepo)
		ledger := new(mockLedger)
		repo.On("GetRegister", ctx, uint(1), uint(3)).Return(newOpen(), nil)
		repo.On("GetPetShop", ctx, uint(1)).
			Return(&models.PetShop{ID: 1, Timezone: "Asia/Tokyo"}, nil)
		ledger.On("ListCashByDate", ctx, uint(1), mock.MatchedBy(func(day time.Time) bool {
			return day.Location().String() == "Asia/Tokyo"
		})).Return(dayRecords, nil)
		repo.On("CloseRegister", ctx, mock.Anything).Return(nil)

		uc := NewCloseRegister(repo, ledger, audit.NewDiscard())

		_, err := uc.Execute(ctx, closeInput(130))
		require.NoError(t, err)
		ledger.AssertExpectations(t)
	})

	t.Run("contado inválido nem consulta o banco", func(t *testing.T) {
		repo := new(mockRegisterRepo)
		ledger := new(mockLedger)

		uc := NewCloseRegister(repo, ledger, audit.NewDiscard())

		_, err := uc.Execute(ctx, closeInput(-1))

		var valErr financedomain.ValidationError
		require.ErrorAs(t, err, &valErr)
		repo.AssertNotCalled(t, "GetRegister", mock.Anything, mock.Anything, mock.Anything)
	})
}
