package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/petshopsuite/petshop-api/internal/domain/finance"
	"github.com/petshopsuite/petshop-api/internal/httperr"
	"github.com/petshopsuite/petshop-api/internal/models"
)

type FinanceGormRepository struct {
	db *gorm.DB
}

func NewFinanceGormRepository(db *gorm.DB) *FinanceGormRepository {
	return &FinanceGormRepository{db: db}
}

func (r *FinanceGormRepository) Append(
	ctx context.Context,
	rec *models.FinancialRecord,
) error {

	if err := r.db.WithContext(ctx).Create(rec).Error; err != nil {
		if rec.AppointmentID != nil && httperr.IsUniqueViolation(err) {
			return finance.ErrDuplicateAppointment
		}
		return finance.StorageError{Op: "append_financial_record", Err: err}
	}

	return nil
}

func (r *FinanceGormRepository) ListByDateRange(
	ctx context.Context,
	petShopID uint,
	from time.Time,
	to time.Time,
	filter finance.RangeFilter,
) ([]models.FinancialRecord, error) {

	q := r.db.WithContext(ctx).
		Where("pet_shop_id = ? AND date >= ? AND date <= ?", petShopID, from, to)

	if filter.Type != "" {
		q = q.Where("type = ?", filter.Type)
	}
	if filter.PaymentMethod != "" {
		q = q.Where("payment_method = ?", filter.PaymentMethod)
	}
	if filter.Category != "" {
		q = q.Where("LOWER(category) = LOWER(?)", filter.Category)
	}

	var records []models.FinancialRecord
	if err := q.
		Order("date DESC, created_at DESC").
		Find(&records).Error; err != nil {
		return nil, finance.StorageError{Op: "list_financial_records", Err: err}
	}

	return records, nil
}

func (r *FinanceGormRepository) ListCashByDate(
	ctx context.Context,
	petShopID uint,
	day time.Time,
) ([]models.FinancialRecord, error) {

	dayStart := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
	dayEnd := dayStart.Add(24 * time.Hour)

	// payment_method vazio entra junto: registros anteriores ao default
	// explícito são dinheiro.
	var records []models.FinancialRecord
	if err := r.db.WithContext(ctx).
		Where(
			"pet_shop_id = ? AND date >= ? AND date < ? AND (payment_method = ? OR payment_method = '')",
			petShopID, dayStart, dayEnd, finance.PaymentCash,
		).
		Order("created_at ASC").
		Find(&records).Error; err != nil {
		return nil, finance.StorageError{Op: "list_cash_records", Err: err}
	}

	return records, nil
}

func (r *FinanceGormRepository) DailyIncomeTotal(
	ctx context.Context,
	petShopID uint,
	day time.Time,
) (float64, error) {

	dayStart := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
	dayEnd := dayStart.Add(24 * time.Hour)

	var total float64
	err := r.db.WithContext(ctx).
		Model(&models.FinancialRecord{}).
		Select("COALESCE(SUM(amount), 0)").
		Where(
			"pet_shop_id = ? AND type = ? AND date >= ? AND date < ?",
			petShopID, finance.TypeIncome, dayStart, dayEnd,
		).
		Scan(&total).Error

	if err != nil {
		return 0, finance.StorageError{Op: "daily_income_total", Err: err}
	}

	return total, nil
}

func (r *FinanceGormRepository) GetByAppointmentID(
	ctx context.Context,
	petShopID uint,
	appointmentID uint,
) (*models.FinancialRecord, error) {

	var rec models.FinancialRecord
	if err := r.db.WithContext(ctx).
		Where("pet_shop_id = ? AND appointment_id = ?", petShopID, appointmentID).
		First(&rec).Error; err != nil {
		return nil, err
	}

	return &rec, nil
}

// Compile-time check
var _ finance.Repository = (*FinanceGormRepository)(nil)
