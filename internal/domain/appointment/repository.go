package appointment

import (
	"context"
	"time"

	"github.com/petshopsuite/petshop-api/internal/models"
)

type Repository interface {
	// -------- PetShop --------
	GetPetShopByID(
		ctx context.Context,
		id uint,
	) (*models.PetShop, error)

	// -------- Service --------
	GetService(
		ctx context.Context,
		petShopID uint,
		serviceID uint,
	) (*models.GroomService, error)

	// -------- Client / Pet --------
	GetOrCreateClient(
		ctx context.Context,
		petShopID uint,
		name string,
		phone string,
		email string,
	) (*models.Client, error)

	GetOrCreatePet(
		ctx context.Context,
		petShopID uint,
		clientID uint,
		name string,
		species string,
	) (*models.Pet, error)

	// -------- Appointment (create / conflict) --------
	CreateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	AssertNoTimeConflict(
		ctx context.Context,
		groomerID uint,
		start time.Time,
		end time.Time,
	) error

	// -------- Appointment (state change) --------
	GetAppointmentForGroomer(
		ctx context.Context,
		appointmentID uint,
		groomerID uint,
	) (*models.Appointment, error)

	UpdateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	// SetCompleted muda o status para completed em um UPDATE condicional
	// (só sai de scheduled/confirmed). Passo 2 da conclusão; roda depois
	// do lançamento no livro-caixa, nunca antes.
	SetCompleted(
		ctx context.Context,
		appointmentID uint,
		now time.Time,
	) error

	// -------- Availability --------
	GetWorkingHours(
		ctx context.Context,
		groomerID uint,
		weekday int,
	) (*models.WorkingHours, error)

	ListAppointmentsForDay(
		ctx context.Context,
		groomerID uint,
		start time.Time,
		end time.Time,
	) ([]models.Appointment, error)

	IsWithinWorkingHours(
		ctx context.Context,
		groomerID uint,
		start time.Time,
		end time.Time,
	) (bool, error)

	ListAppointmentsForPeriod(
		ctx context.Context,
		groomerID uint,
		start time.Time,
		end time.Time,
	) ([]models.Appointment, error)

	// -------- Aggregates --------
	CountActiveForDay(
		ctx context.Context,
		petShopID uint,
		start time.Time,
		end time.Time,
	) (int64, error)
}
