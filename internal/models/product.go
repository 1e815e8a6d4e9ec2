package models

import "time"

// Item de estoque (ração, brinquedos, medicamentos etc)
type Product struct {
	ID        uint `gorm:"primaryKey" json:"id"`
	PetShopID uint `json:"pet_shop_id"`

	Name        string  `gorm:"size:100;not null" json:"name"`
	Description string  `gorm:"size:255" json:"description"`
	SKU         string  `gorm:"size:50" json:"sku"`
	Price       float64 `json:"price"`
	StockQty    int     `gorm:"default:0" json:"stock_qty"`
	Active      bool    `gorm:"default:true" json:"active"`

	Category string `gorm:"size:50" json:"category"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
