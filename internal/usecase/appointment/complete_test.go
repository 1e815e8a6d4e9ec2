package appointment

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/petshopsuite/petshop-api/internal/audit"
	domain "github.com/petshopsuite/petshop-api/internal/domain/appointment"
	financedomain "github.com/petshopsuite/petshop-api/internal/domain/finance"
	"github.com/petshopsuite/petshop-api/internal/httperr"
	"github.com/petshopsuite/petshop-api/internal/models"
)

func completeInput() CompleteAppointmentInput {
	return CompleteAppointmentInput{
		PetShopID:     1,
		GroomerID:     7,
		AppointmentID: 42,
	}
}

func completeFixtures(status domain.Status) (*models.PetShop, *models.Appointment, *models.GroomService) {
	shop := &models.PetShop{ID: 1, Timezone: "America/Sao_Paulo"}
	ap := &models.Appointment{
		ID:             42,
		PetShopID:      1,
		GroomerID:      7,
		GroomServiceID: 9,
		Status:         string(status),
	}
	svc := &models.GroomService{ID: 9, PetShopID: 1, Name: "Banho e tosa", Price: 80}
	return shop, ap, svc
}

func TestCompleteAppointment(t *testing.T) {
	ctx := context.Background()

	t.Run("sucesso: receita lançada antes do status", func(t *testing.T) {
		shop, ap, svc := completeFixtures(domain.StatusConfirmed)

		repo := new(mockRepo)
		ledger := new(mockLedger)
		repo.On("GetPetShopByID", ctx, uint(1)).Return(shop, nil)
		repo.On("GetAppointmentForGroomer", ctx, uint(42), uint(7)).Return(ap, nil)
		repo.On("GetService", ctx, uint(1), uint(9)).Return(svc, nil)
		ledger.On("Append", ctx, mock.MatchedBy(func(rec *models.FinancialRecord) bool {
			return rec.Type == financedomain.TypeIncome &&
				rec.Amount == 80 &&
				rec.Category == financedomain.CategoryServices &&
				rec.PaymentMethod == financedomain.PaymentCash &&
				rec.AppointmentID != nil && *rec.AppointmentID == 42
		})).Run(func(args mock.Arguments) {
			args.Get(1).(*models.FinancialRecord).ID = 55
		}).Return(nil)
		repo.On("SetCompleted", ctx, uint(42), mock.Anything).Return(nil)

		uc := NewCompleteAppointment(repo, ledger, audit.NewDiscard())

		got, err := uc.Execute(ctx, completeInput())
		require.NoError(t, err)

		assert.Equal(t, string(domain.StatusCompleted), got.Status)
		require.NotNil(t, got.CompletedAt)

		repo.AssertExpectations(t)
		ledger.AssertExpectations(t)
	})

	t.Run("estado inválido: nada é gravado", func(t *testing.T) {
		shop, ap, _ := completeFixtures(domain.StatusCancelled)

		repo := new(mockRepo)
		ledger := new(mockLedger)
		repo.On("GetPetShopByID", ctx, uint(1)).Return(shop, nil)
		repo.On("GetAppointmentForGroomer", ctx, uint(42), uint(7)).Return(ap, nil)

		uc := NewCompleteAppointment(repo, ledger, audit.NewDiscard())

		_, err := uc.Execute(ctx, completeInput())
		assert.True(t, httperr.IsBusiness(err, "invalid_state"))

		ledger.AssertNotCalled(t, "Append", mock.Anything, mock.Anything)
		repo.AssertNotCalled(t, "SetCompleted", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("falha no livro-caixa: status não é tocado", func(t *testing.T) {
		shop, ap, svc := completeFixtures(domain.StatusConfirmed)

		repo := new(mockRepo)
		ledger := new(mockLedger)
		repo.On("GetPetShopByID", ctx, uint(1)).Return(shop, nil)
		repo.On("GetAppointmentForGroomer", ctx, uint(42), uint(7)).Return(ap, nil)
		repo.On("GetService", ctx, uint(1), uint(9)).Return(svc, nil)
		ledger.On("Append", ctx, mock.Anything).
			Return(financedomain.StorageError{Op: "append", Err: errors.New("db down")})

		uc := NewCompleteAppointment(repo, ledger, audit.NewDiscard())

		_, err := uc.Execute(ctx, completeInput())

		var ledgerErr *LedgerWriteError
		require.ErrorAs(t, err, &ledgerErr)
		repo.AssertNotCalled(t, "SetCompleted", mock.Anything, mock.Anything, mock.Anything)
		assert.Equal(t, string(domain.StatusConfirmed), ap.Status)
	})

	t.Run("falha no passo dois: erro carrega o id do lançamento", func(t *testing.T) {
		shop, ap, svc := completeFixtures(domain.StatusScheduled)

		repo := new(mockRepo)
		ledger := new(mockLedger)
		repo.On("GetPetShopByID", ctx, uint(1)).Return(shop, nil)
		repo.On("GetAppointmentForGroomer", ctx, uint(42), uint(7)).Return(ap, nil)
		repo.On("GetService", ctx, uint(1), uint(9)).Return(svc, nil)
		ledger.On("Append", ctx, mock.Anything).Run(func(args mock.Arguments) {
			args.Get(1).(*models.FinancialRecord).ID = 55
		}).Return(nil)
		repo.On("SetCompleted", ctx, uint(42), mock.Anything).
			Return(errors.New("connection reset"))

		uc := NewCompleteAppointment(repo, ledger, audit.NewDiscard())

		_, err := uc.Execute(ctx, completeInput())

		var partial *PartialCompletionError
		require.ErrorAs(t, err, &partial)
		assert.Equal(t, uint(55), partial.RecordID)
	})

	t.Run("retomada: lançamento existente é reutilizado", func(t *testing.T) {
		shop, ap, svc := completeFixtures(domain.StatusConfirmed)

		repo := new(mockRepo)
		ledger := new(mockLedger)
		repo.On("GetPetShopByID", ctx, uint(1)).Return(shop, nil)
		repo.On("GetAppointmentForGroomer", ctx, uint(42), uint(7)).Return(ap, nil)
		repo.On("GetService", ctx, uint(1), uint(9)).Return(svc, nil)
		ledger.On("Append", ctx, mock.Anything).
			Return(financedomain.ErrDuplicateAppointment)
		ledger.On("GetByAppointmentID", ctx, uint(1), uint(42)).
			Return(&models.FinancialRecord{ID: 55, Amount: 80}, nil)
		repo.On("SetCompleted", ctx, uint(42), mock.Anything).Return(nil)

		uc := NewCompleteAppointment(repo, ledger, audit.NewDiscard())

		got, err := uc.Execute(ctx, completeInput())
		require.NoError(t, err)
		assert.Equal(t, string(domain.StatusCompleted), got.Status)

		// Append foi chamado uma vez, nunca duplicou receita
		ledger.AssertNumberOfCalls(t, "Append", 1)
	})

	t.Run("serviço removido do catálogo: receita zero, conclusão segue", func(t *testing.T) {
		shop, ap, _ := completeFixtures(domain.StatusConfirmed)

		repo := new(mockRepo)
		ledger := new(mockLedger)
		repo.On("GetPetShopByID", ctx, uint(1)).Return(shop, nil)
		repo.On("GetAppointmentForGroomer", ctx, uint(42), uint(7)).Return(ap, nil)
		repo.On("GetService", ctx, uint(1), uint(9)).
			Return(nil, errors.New("record not found"))
		ledger.On("Append", ctx, mock.MatchedBy(func(rec *models.FinancialRecord) bool {
			return rec.Amount == 0 && rec.AppointmentID != nil
		})).Return(nil)
		repo.On("SetCompleted", ctx, uint(42), mock.Anything).Return(nil)

		uc := NewCompleteAppointment(repo, ledger, audit.NewDiscard())

		got, err := uc.Execute(ctx, completeInput())
		require.NoError(t, err)
		assert.Equal(t, string(domain.StatusCompleted), got.Status)
	})
}
