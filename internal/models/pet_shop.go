package models

import "time"

type PetShop struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name    string `gorm:"size:100;not null" json:"name"`
	Slug    string `gorm:"size:60;uniqueIndex;not null" json:"slug"`
	Phone   string `gorm:"size:20" json:"phone"`
	Address string `gorm:"size:255" json:"address"`

	// IANA, ex: America/Sao_Paulo
	Timezone string `gorm:"size:50;default:'America/Sao_Paulo'" json:"timezone"`

	// Antecedência mínima para agendamento online, em minutos
	MinAdvanceMinutes int `gorm:"default:60" json:"min_advance_minutes"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
