package models

import "time"

type Appointment struct {
	ID uint `gorm:"primaryKey" json:"id"`

	PetShopID uint    `json:"pet_shop_id"`
	PetShop   PetShop `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"pet_shop"`

	GroomerID uint `json:"groomer_id"`
	Groomer   User `gorm:"foreignKey:GroomerID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"groomer"`

	ClientID uint   `json:"client_id"`
	Client   Client `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"client"`

	PetID uint `json:"pet_id"`
	Pet   Pet  `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"pet"`

	GroomServiceID uint         `json:"groom_service_id"`
	GroomService   GroomService `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"groom_service"`

	StartTime time.Time `json:"start_time"`
	EndTime   time.Time `json:"end_time"`

	Status string `gorm:"size:20;default:'scheduled'" json:"status"`

	Notes       string     `gorm:"size:255" json:"notes"`
	CancelledAt *time.Time `json:"cancelled_at"`
	CompletedAt *time.Time `json:"completed_at"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
