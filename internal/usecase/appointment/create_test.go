package appointment

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/petshopsuite/petshop-api/internal/audit"
	domain "github.com/petshopsuite/petshop-api/internal/domain/appointment"
	"github.com/petshopsuite/petshop-api/internal/httperr"
	"github.com/petshopsuite/petshop-api/internal/models"
	"github.com/petshopsuite/petshop-api/internal/timezone"
)

func createInput() CreateAppointmentInput {
	return CreateAppointmentInput{
		PetShopID:   1,
		GroomerID:   7,
		ClientName:  "Maria",
		ClientPhone: "11999990000",
		PetName:     "Thor",
		PetSpecies:  "dog",
		ServiceID:   9,
		Date:        "2030-05-20",
		Time:        "10:00",
	}
}

func TestCreateAppointment(t *testing.T) {
	ctx := context.Background()

	shop := &models.PetShop{ID: 1, Timezone: "America/Sao_Paulo", MinAdvanceMinutes: 60}
	svc := &models.GroomService{ID: 9, PetShopID: 1, Name: "Banho", DurationMin: 45, Price: 60}

	t.Run("horário muito em cima é recusado", func(t *testing.T) {
		repo := new(mockRepo)
		repo.On("GetPetShopByID", ctx, uint(1)).Return(shop, nil)

		uc := NewCreateAppointment(repo, audit.NewDiscard())

		now := timezone.NowIn(shop.Timezone)

		in := createInput()
		in.Date = now.Format("2006-01-02")
		in.Time = now.Format("15:04")

		_, err := uc.Execute(ctx, in)
		assert.True(t, httperr.IsBusiness(err, "too_soon"))
		repo.AssertNotCalled(t, "CreateAppointment", mock.Anything, mock.Anything)
	})

	t.Run("serviço inexistente", func(t *testing.T) {
		repo := new(mockRepo)
		repo.On("GetPetShopByID", ctx, uint(1)).Return(shop, nil)
		repo.On("GetService", ctx, uint(1), uint(9)).
			Return(nil, httperr.ErrBusiness("service_not_found"))

		uc := NewCreateAppointment(repo, audit.NewDiscard())

		_, err := uc.Execute(ctx, createInput())
		assert.True(t, httperr.IsBusiness(err, "service_not_found"))
	})

	t.Run("fora do expediente do profissional", func(t *testing.T) {
		repo := new(mockRepo)
		repo.On("GetPetShopByID", ctx, uint(1)).Return(shop, nil)
		repo.On("GetService", ctx, uint(1), uint(9)).Return(svc, nil)
		repo.On("IsWithinWorkingHours", ctx, uint(7), mock.Anything, mock.Anything).
			Return(false, nil)

		uc := NewCreateAppointment(repo, audit.NewDiscard())

		_, err := uc.Execute(ctx, createInput())
		assert.True(t, httperr.IsBusiness(err, "outside_working_hours"))
	})

	t.Run("conflito de horário propaga", func(t *testing.T) {
		repo := new(mockRepo)
		repo.On("GetPetShopByID", ctx, uint(1)).Return(shop, nil)
		repo.On("GetService", ctx, uint(1), uint(9)).Return(svc, nil)
		repo.On("IsWithinWorkingHours", ctx, uint(7), mock.Anything, mock.Anything).
			Return(true, nil)
		repo.On("GetOrCreateClient", ctx, uint(1), "Maria", "11999990000", "").
			Return(&models.Client{ID: 2}, nil)
		repo.On("GetOrCreatePet", ctx, uint(1), uint(2), "Thor", "dog").
			Return(&models.Pet{ID: 3}, nil)
		repo.On("AssertNoTimeConflict", ctx, uint(7), mock.Anything, mock.Anything).
			Return(httperr.ErrBusiness("time_conflict"))

		uc := NewCreateAppointment(repo, audit.NewDiscard())

		_, err := uc.Execute(ctx, createInput())
		assert.True(t, httperr.IsBusiness(err, "time_conflict"))
		repo.AssertNotCalled(t, "CreateAppointment", mock.Anything, mock.Anything)
	})

	t.Run("agenda com sucesso", func(t *testing.T) {
		repo := new(mockRepo)
		repo.On("GetPetShopByID", ctx, uint(1)).Return(shop, nil)
		repo.On("GetService", ctx, uint(1), uint(9)).Return(svc, nil)
		repo.On("IsWithinWorkingHours", ctx, uint(7), mock.Anything, mock.Anything).
			Return(true, nil)
		repo.On("GetOrCreateClient", ctx, uint(1), "Maria", "11999990000", "").
			Return(&models.Client{ID: 2}, nil)
		repo.On("GetOrCreatePet", ctx, uint(1), uint(2), "Thor", "dog").
			Return(&models.Pet{ID: 3}, nil)
		repo.On("AssertNoTimeConflict", ctx, uint(7), mock.Anything, mock.Anything).
			Return(nil)
		repo.On("CreateAppointment", ctx, mock.MatchedBy(func(ap *models.Appointment) bool {
			return ap.PetShopID == 1 &&
				ap.ClientID == 2 &&
				ap.PetID == 3 &&
				ap.Status == string(domain.StatusScheduled) &&
				ap.EndTime.Sub(ap.StartTime) == 45*time.Minute
		})).Return(nil)

		uc := NewCreateAppointment(repo, audit.NewDiscard())

		ap, err := uc.Execute(ctx, createInput())
		require.NoError(t, err)
		assert.Equal(t, "10:00", ap.StartTime.Format("15:04"))
		assert.Equal(t, "10:45", ap.EndTime.Format("15:04"))

		repo.AssertExpectations(t)
	})
}
