package appointment

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	domain "github.com/petshopsuite/petshop-api/internal/domain/appointment"
	"github.com/petshopsuite/petshop-api/internal/models"
)

func TestGetAvailability(t *testing.T) {
	ctx := context.Background()

	// terça-feira
	date := time.Date(2030, 5, 21, 0, 0, 0, 0, time.UTC)
	weekday := int(date.Weekday())

	svc := &models.GroomService{ID: 9, DurationMin: 60}

	in := domain.AvailabilityInput{
		PetShopID: 1,
		GroomerID: 7,
		ServiceID: 9,
		Date:      date,
	}

	t.Run("dia sem expediente devolve lista vazia", func(t *testing.T) {
		repo := new(mockRepo)
		repo.On("GetService", ctx, uint(1), uint(9)).Return(svc, nil)
		repo.On("GetWorkingHours", ctx, uint(7), weekday).
			Return(&models.WorkingHours{Active: false}, nil)

		uc := NewGetAvailability(repo)

		slots, err := uc.Execute(ctx, in)
		require.NoError(t, err)
		assert.Empty(t, slots)
	})

	t.Run("duração não positiva no catálogo devolve lista vazia", func(t *testing.T) {
		for _, dur := range []int{0, -30} {
			repo := new(mockRepo)
			repo.On("GetService", ctx, uint(1), uint(9)).
				Return(&models.GroomService{ID: 9, DurationMin: dur}, nil)
			repo.On("GetWorkingHours", ctx, uint(7), weekday).Return(&models.WorkingHours{
				Weekday:   weekday,
				StartTime: "09:00",
				EndTime:   "12:00",
				Active:    true,
			}, nil)
			repo.On("ListAppointmentsForDay", ctx, uint(7), mock.Anything, mock.Anything).
				Return([]models.Appointment{}, nil)

			uc := NewGetAvailability(repo)

			done := make(chan struct{})
			var slots []domain.TimeSlot
			var err error
			go func() {
				slots, err = uc.Execute(ctx, in)
				close(done)
			}()

			select {
			case <-done:
			case <-time.After(2 * time.Second):
				t.Fatalf("Execute não retornou para duração %d", dur)
			}
			require.NoError(t, err)
			assert.Empty(t, slots)
		}
	})

	t.Run("agendamento existente bloqueia o horário", func(t *testing.T) {
		repo := new(mockRepo)
		repo.On("GetService", ctx, uint(1), uint(9)).Return(svc, nil)
		repo.On("GetWorkingHours", ctx, uint(7), weekday).Return(&models.WorkingHours{
			Weekday:   weekday,
			StartTime: "09:00",
			EndTime:   "12:00",
			Active:    true,
		}, nil)
		repo.On("ListAppointmentsForDay", ctx, uint(7), mock.Anything, mock.Anything).
			Return([]models.Appointment{
				{
					StartTime: time.Date(2030, 5, 21, 10, 0, 0, 0, time.UTC),
					EndTime:   time.Date(2030, 5, 21, 11, 0, 0, 0, time.UTC),
				},
			}, nil)

		uc := NewGetAvailability(repo)

		slots, err := uc.Execute(ctx, in)
		require.NoError(t, err)

		require.Len(t, slots, 2)
		assert.Equal(t, "09:00", slots[0].Start)
		assert.Equal(t, "11:00", slots[1].Start)
	})

	t.Run("almoço não vira slot", func(t *testing.T) {
		repo := new(mockRepo)
		repo.On("GetService", ctx, uint(1), uint(9)).Return(svc, nil)
		repo.On("GetWorkingHours", ctx, uint(7), weekday).Return(&models.WorkingHours{
			Weekday:    weekday,
			StartTime:  "09:00",
			EndTime:    "14:00",
			LunchStart: "12:00",
			LunchEnd:   "13:00",
			Active:     true,
		}, nil)
		repo.On("ListAppointmentsForDay", ctx, uint(7), mock.Anything, mock.Anything).
			Return([]models.Appointment{}, nil)

		uc := NewGetAvailability(repo)

		slots, err := uc.Execute(ctx, in)
		require.NoError(t, err)

		var starts []string
		for _, s := range slots {
			starts = append(starts, s.Start)
		}
		assert.Equal(t, []string{"09:00", "10:00", "11:00", "13:00"}, starts)
	})
}
