package models

import "time"

type Sale struct {
	ID        uint `gorm:"primaryKey" json:"id"`
	PetShopID uint `gorm:"index;not null" json:"pet_shop_id"`

	UserID   uint  `json:"user_id"`
	ClientID *uint `json:"client_id"`

	ReceiptNumber string  `gorm:"size:36;uniqueIndex;not null" json:"receipt_number"`
	Total         float64 `gorm:"not null" json:"total"`
	PaymentMethod string  `gorm:"size:20;not null" json:"payment_method"`

	// id da cobrança no provedor, quando o pagamento é pix/cartão
	ExternalPaymentID string `gorm:"size:64" json:"external_payment_id,omitempty"`

	Items []SaleItem `json:"items"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type SaleItem struct {
	ID     uint `gorm:"primaryKey" json:"id"`
	SaleID uint `gorm:"index;not null" json:"sale_id"`

	ProductID uint    `json:"product_id"`
	Product   Product `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"product"`

	Quantity  int     `gorm:"not null" json:"quantity"`
	UnitPrice float64 `gorm:"not null" json:"unit_price"`
	Subtotal  float64 `gorm:"not null" json:"subtotal"`
}
