package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/petshopsuite/petshop-api/internal/domain/register"
	"github.com/petshopsuite/petshop-api/internal/httperr"
	"github.com/petshopsuite/petshop-api/internal/models"
)

type RegisterGormRepository struct {
	db *gorm.DB
}

func NewRegisterGormRepository(db *gorm.DB) *RegisterGormRepository {
	return &RegisterGormRepository{db: db}
}

func (r *RegisterGormRepository) GetPetShop(
	ctx context.Context,
	petShopID uint,
) (*models.PetShop, error) {

	var shop models.PetShop
	if err := r.db.WithContext(ctx).First(&shop, petShopID).Error; err != nil {
		return nil, err
	}

	return &shop, nil
}

func (r *RegisterGormRepository) GetOpenRegister(
	ctx context.Context,
	petShopID uint,
) (*models.CashRegister, error) {

	var reg models.CashRegister
	err := r.db.WithContext(ctx).
		Where("pet_shop_id = ? AND status = ?", petShopID, string(register.StatusOpen)).
		First(&reg).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, register.ErrNoOpenRegister
	}
	if err != nil {
		return nil, err
	}

	return &reg, nil
}

func (r *RegisterGormRepository) GetRegister(
	ctx context.Context,
	petShopID uint,
	id uint,
) (*models.CashRegister, error) {

	var reg models.CashRegister
	if err := r.db.WithContext(ctx).
		Where("id = ? AND pet_shop_id = ?", id, petShopID).
		First(&reg).Error; err != nil {
		return nil, err
	}

	return &reg, nil
}

func (r *RegisterGormRepository) CreateRegister(
	ctx context.Context,
	reg *models.CashRegister,
) error {

	if err := r.db.WithContext(ctx).Create(reg).Error; err != nil {
		// o índice parcial único barrou a segunda abertura simultânea
		if httperr.IsUniqueViolation(err) {
			return &register.StateError{Code: "register_already_open"}
		}
		return err
	}

	return nil
}

func (r *RegisterGormRepository) CloseRegister(
	ctx context.Context,
	reg *models.CashRegister,
) error {

	// UPDATE único e condicional: ou grava status, valores e carimbo de
	// fechamento juntos, ou não grava nada. Duas tentativas de fechar a
	// mesma sessão deixam a segunda sem linhas afetadas.
	res := r.db.WithContext(ctx).
		Model(&models.CashRegister{}).
		Where("id = ? AND status = ?", reg.ID, string(register.StatusOpen)).
		Updates(map[string]any{
			"status":          reg.Status,
			"final_amount":    reg.FinalAmount,
			"expected_amount": reg.ExpectedAmount,
			"closed_by":       reg.ClosedBy,
			"closed_at":       reg.ClosedAt,
			"notes":           reg.Notes,
		})

	if res.Error != nil {
		return res.Error
	}

	if res.RowsAffected == 0 {
		return &register.StateError{Code: "register_not_open"}
	}

	return nil
}

func (r *RegisterGormRepository) ListRegisters(
	ctx context.Context,
	petShopID uint,
	limit int,
	offset int,
) ([]models.CashRegister, int64, error) {

	q := r.db.WithContext(ctx).
		Model(&models.CashRegister{}).
		Where("pet_shop_id = ?", petShopID)

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var regs []models.CashRegister
	if err := q.
		Order("opened_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&regs).Error; err != nil {
		return nil, 0, err
	}

	return regs, total, nil
}

// Compile-time check
var _ register.Repository = (*RegisterGormRepository)(nil)
