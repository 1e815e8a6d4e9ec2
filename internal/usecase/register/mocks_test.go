package register

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	financedomain "github.com/petshopsuite/petshop-api/internal/domain/finance"
	domain "github.com/petshopsuite/petshop-api/internal/domain/register"
	"github.com/petshopsuite/petshop-api/internal/models"
)

// --------- register.Repository ---------

type mockRegisterRepo struct {
	mock.Mock
}

func (m *mockRegisterRepo) GetPetShop(ctx context.Context, petShopID uint) (*models.PetShop, error) {
	args := m.Called(ctx, petShopID)
	if shop := args.Get(0); shop != nil {
		return shop.(*models.PetShop), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockRegisterRepo) GetOpenRegister(ctx context.Context, petShopID uint) (*models.CashRegister, error) {
	args := m.Called(ctx, petShopID)
	if reg := args.Get(0); reg != nil {
		return reg.(*models.CashRegister), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockRegisterRepo) GetRegister(ctx context.Context, petShopID uint, id uint) (*models.CashRegister, error) {
	args := m.Called(ctx, petShopID, id)
	if reg := args.Get(0); reg != nil {
		return reg.(*models.CashRegister), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockRegisterRepo) CreateRegister(ctx context.Context, reg *models.CashRegister) error {
	args := m.Called(ctx, reg)
	return args.Error(0)
}

func (m *mockRegisterRepo) CloseRegister(ctx context.Context, reg *models.CashRegister) error {
	args := m.Called(ctx, reg)
	return args.Error(0)
}

func (m *mockRegisterRepo) ListRegisters(ctx context.Context, petShopID uint, limit, offset int) ([]models.CashRegister, int64, error) {
	args := m.Called(ctx, petShopID, limit, offset)
	return args.Get(0).([]models.CashRegister), args.Get(1).(int64), args.Error(2)
}

var _ domain.Repository = (*mockRegisterRepo)(nil)

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

func (m *mockLedger) GetByAppointmentID(ctx context.Context, petShopID uint, appointmentID uint) (*models.FinancialRecord, error) {
	args := m.Called(ctx, petShopID, appointmentID)
	if rec := args.Get(0); rec != nil {
		return rec.(*models.FinancialRecord), args.Error(1)
	}
	return nil, args.Error(1)
}

var _ financedomain.Repository = (*mockLedger)(nil)

// --------- identity.Verifier ---------

type mockVerifier struct {
	mock.Mock
}

func (m *mockVerifier) ReverifyPassword(ctx context.Context, userID uint, password string) error {
	args := m.Called(ctx, userID, password)
	return args.Error(0)
}
