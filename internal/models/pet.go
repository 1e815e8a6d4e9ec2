package models

import "time"

type Pet struct {
	ID        uint `gorm:"primaryKey" json:"id"`
	PetShopID uint `json:"pet_shop_id"`

	ClientID uint   `json:"client_id"`
	Client   Client `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"client"`

	Name    string `gorm:"size:100;not null" json:"name"`
	Species string `gorm:"size:30" json:"species"`
	Breed   string `gorm:"size:60" json:"breed"`
	Notes   string `gorm:"size:255" json:"notes"`

	PhotoURL string `gorm:"size:500" json:"photo_url"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
