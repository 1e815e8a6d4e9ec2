package db

import (
	"log"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/petshopsuite/petshop-api/internal/config"
	"github.com/petshopsuite/petshop-api/internal/models"
)

func NewDB(cfg *config.Config) *gorm.DB {
	db, err := gorm.Open(postgres.Open(cfg.DBUrl), &gorm.Config{
		PrepareStmt: true,
	})
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		log.Fatalf("failed to get sql.DB: %v", err)
	}

	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(10 * time.Minute)

	if err := db.AutoMigrate(
		&models.PetShop{},
		&models.User{},
		&models.Client{},
		&models.Pet{},
		&models.GroomService{},
		&models.Product{},
		&models.WorkingHours{},
		&models.Appointment{},
		&models.FinancialRecord{},
		&models.CashRegister{},
		&models.Sale{},
		&models.SaleItem{},
		&models.AuditLog{},
	); err != nil {
		log.Fatalf("failed to migrate: %v", err)
	}

	// No máximo um caixa aberto por pet shop. A corrida de duas aberturas
	// simultâneas é resolvida aqui, no banco: a segunda inserção falha com
	// violação de unicidade, não depende de check-then-insert na aplicação.
	db.Exec(`
        CREATE UNIQUE INDEX IF NOT EXISTS idx_cash_registers_single_open
        ON cash_registers (pet_shop_id)
        WHERE status = 'open'
    `)

	// Um lançamento financeiro por agendamento. Reexecutar a conclusão de
	// um agendamento nunca duplica receita: a segunda inserção falha e o
	// fluxo retoma a partir do lançamento existente.
	db.Exec(`
        CREATE UNIQUE INDEX IF NOT EXISTS idx_financial_records_appointment
        ON financial_records (appointment_id)
        WHERE appointment_id IS NOT NULL
    `)

	db.Exec(`
        UPDATE pet_shops
        SET timezone = 'America/Sao_Paulo'
        WHERE timezone IS NULL OR timezone = ''
    `)

	return db
}
