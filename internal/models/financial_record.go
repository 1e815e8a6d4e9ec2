package models

import "time"

// Lançamento do livro-caixa. Append-only: nunca é atualizado nem removido
// depois de criado; correções entram como novos lançamentos.
type FinancialRecord struct {
	ID        uint `gorm:"primaryKey" json:"id"`
	PetShopID uint `gorm:"index;not null" json:"pet_shop_id"`

	Description string  `gorm:"size:255;not null" json:"description"`
	Amount      float64 `gorm:"not null" json:"amount"`

	// "income" | "expense"
	Type string `gorm:"size:10;not null" json:"type"`

	Category string `gorm:"size:50" json:"category"`

	// "cash" | "credit_card" | "debit_card" | "pix" — gravado sempre
	// preenchido; o default "cash" é aplicado na escrita, não na leitura.
	PaymentMethod string `gorm:"size:20;not null" json:"payment_method"`

	// Dia a que a transação pertence (não confundir com created_at)
	Date time.Time `gorm:"index;not null" json:"date"`

	AppointmentID *uint `json:"appointment_id"`
	SaleID        *uint `json:"sale_id"`

	CreatedAt time.Time `json:"created_at"`
}
