package models

import "time"

// Tutor do pet, sem login, vinculado ao pet shop
type Client struct {
	ID        uint `gorm:"primaryKey" json:"id"`
	PetShopID uint `json:"pet_shop_id"`

	Name  string `gorm:"size:100;not null" json:"name"`
	Phone string `gorm:"size:20" json:"phone"`
	Email string `gorm:"size:100" json:"email"`
	Notes string `gorm:"size:255" json:"notes"`

	Pets []Pet `json:"pets,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
