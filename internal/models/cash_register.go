package models

import "time"

// Sessão diária de caixa. Uma linha por dia de operação; o índice parcial
// criado em internal/db garante no máximo uma sessão aberta por pet shop.
type CashRegister struct {
	ID        uint `gorm:"primaryKey" json:"id"`
	PetShopID uint `gorm:"index;not null" json:"pet_shop_id"`

	// "open" | "closed"
	Status string `gorm:"size:10;not null;default:'open'" json:"status"`

	InitialAmount  float64  `gorm:"not null" json:"initial_amount"`
	FinalAmount    *float64 `json:"final_amount"`
	ExpectedAmount *float64 `json:"expected_amount"`

	OpenedBy uint  `json:"opened_by"`
	ClosedBy *uint `json:"closed_by"`

	OpenedAt time.Time  `json:"opened_at"`
	ClosedAt *time.Time `json:"closed_at"`

	Notes string `gorm:"size:255" json:"notes"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
