package register

import (
	"context"

	"github.com/petshopsuite/petshop-api/internal/models"
)

type Repository interface {
	// GetPetShop carrega o pet shop dono da sessão. O fuso configurado
	// nele define o dia-calendário da conferência de caixa.
	GetPetShop(ctx context.Context, petShopID uint) (*models.PetShop, error)

	// GetOpenRegister devolve a sessão aberta do pet shop ou
	// ErrNoOpenRegister.
	GetOpenRegister(ctx context.Context, petShopID uint) (*models.CashRegister, error)

	GetRegister(ctx context.Context, petShopID uint, id uint) (*models.CashRegister, error)

	// CreateRegister insere a sessão aberta. A violação do índice único
	// parcial (outra sessão aberta) volta como *StateError.
	CreateRegister(ctx context.Context, reg *models.CashRegister) error

	// CloseRegister grava o fechamento em um único UPDATE condicional
	// (status ainda open). Se outra requisição fechou antes, devolve
	// *StateError e não toca na linha.
	CloseRegister(ctx context.Context, reg *models.CashRegister) error

	ListRegisters(
		ctx context.Context,
		petShopID uint,
		limit int,
		offset int,
	) ([]models.CashRegister, int64, error)
}
