package appointment

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	domain "github.com/petshopsuite/petshop-api/internal/domain/appointment"
	financedomain "github.com/petshopsuite/petshop-api/internal/domain/finance"
	"github.com/petshopsuite/petshop-api/internal/models"
)

// --------- appointment.Repository ---------

type mockRepo struct {
	mock.Mock
}

func (m *mockRepo) GetPetShopByID(ctx context.Context, id uint) (*models.PetShop, error) {
	args := m.Called(ctx, id)
	if shop := args.Get(0); shop != nil {
		return shop.(*models.PetShop), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockRepo) GetService(ctx context.Context, petShopID, serviceID uint) (*models.GroomService, error) {
	args := m.Called(ctx, petShopID, serviceID)
	if svc := args.Get(0); svc != nil {
		return svc.(*models.GroomService), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockRepo) GetOrCreateClient(ctx context.Context, petShopID uint, name, phone, email string) (*models.Client, error) {
	args := m.Called(ctx, petShopID, name, phone, email)
	if client := args.Get(0); client != nil {
		return client.(*models.Client), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockRepo) GetOrCreatePet(ctx context.Context, petShopID, clientID uint, name, species string) (*models.Pet, error) {
	args := m.Called(ctx, petShopID, clientID, name, species)
	if pet := args.Get(0); pet != nil {
		return pet.(*models.Pet), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockRepo) CreateAppointment(ctx context.Context, ap *models.Appointment) error {
	args := m.Called(ctx, ap)
	return args.Error(0)
}

func (m *mockRepo) AssertNoTimeConflict(ctx context.Context, groomerID uint, start, end time.Time) error {
	args := m.Called(ctx, groomerID, start, end)
	return args.Error(0)
}

func (m *mockRepo) GetAppointmentForGroomer(ctx context.Context, appointmentID, groomerID uint) (*models.Appointment, error) {
	args := m.Called(ctx, appointmentID, groomerID)
	if ap := args.Get(0); ap != nil {
		return ap.(*models.Appointment), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockRepo) UpdateAppointment(ctx context.Context, ap *models.Appointment) error {
	args := m.Called(ctx, ap)
	return args.Error(0)
}

func (m *mockRepo) SetCompleted(ctx context.Context, appointmentID uint, now time.Time) error {
	args := m.Called(ctx, appointmentID, now)
	return args.Error(0)
}

func (m *mockRepo) GetWorkingHours(ctx context.Context, groomerID uint, weekday int) (*models.WorkingHours, error) {
	args := m.Called(ctx, groomerID, weekday)
	if wh := args.Get(0); wh != nil {
		return wh.(*models.WorkingHours), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockRepo) ListAppointmentsForDay(ctx context.Context, groomerID uint, start, end time.Time) ([]models.Appointment, error) {
	args := m.Called(ctx, groomerID, start, end)
	if aps := args.Get(0); aps != nil {
		return aps.([]models.Appointment), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockRepo) IsWithinWorkingHours(ctx context.Context, groomerID uint, start, end time.Time) (bool, error) {
	args := m.Called(ctx, groomerID, start, end)
	return args.Bool(0), args.Error(1)
}

func (m *mockRepo) ListAppointmentsForPeriod(ctx context.Context, groomerID uint, start, end time.Time) ([]models.Appointment, error) {
	args := m.Called(ctx, groomerID, start, end)
	if aps := args.Get(0); aps != nil {
		return aps.([]models.Appointment), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockRepo) CountActiveForDay(ctx context.Context, petShopID uint, start, end time.Time) (int64, error) {
	args := m.Called(ctx, petShopID, start, end)
	return args.Get(0).(int64), args.Error(1)
}

var _ domain.Repository = (*mockRepo)(nil)

// --------- finance.Repository ---------

type mockLedger struct {
	mock.Mock
}

func (m *mockLedger) Append(ctx context.Context, rec *models.FinancialRecord) error {
	args := m.Called(ctx, rec)
	return args.Error(0)
}

func (m *mockLedger) ListByDateRange(ctx context.Context, petShopID uint, from, to time.Time, filter financedomain.RangeFilter) ([]models.FinancialRecord, error) {
	args := m.Called(ctx, petShopID, from, to, filter)
	if recs := args.Get(0); recs != nil {
		return recs.([]models.FinancialRecord), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockLedger) ListCashByDate(ctx context.Context, petShopID uint, day time.Time) ([]models.FinancialRecord, error) {
	args := m.Called(ctx, petShopID, day)
	if recs := args.Get(0); recs != nil {
		return recs.([]models.FinancialRecord), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockLedger) DailyIncomeTotal(ctx context.Context, petShopID uint, day time.Time) (float64, error) {
	args := m.Called(ctx, petShopID, day)
	return args.Get(0).(float64), args.Error(1)
}

func (m *mockLedger) GetByAppointmentID(ctx context.Context, petShopID, appointmentID uint) (*models.FinancialRecord, error) {
	args := m.Called(ctx, petShopID, appointmentID)
	if rec := args.Get(0); rec != nil {
		return rec.(*models.FinancialRecord), args.Error(1)
	}
	return nil, args.Error(1)
}

var _ financedomain.Repository = (*mockLedger)(nil)
