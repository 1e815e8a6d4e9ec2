package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/petshopsuite/petshop-api/internal/audit"
	"github.com/petshopsuite/petshop-api/internal/domain/finance"
	"github.com/petshopsuite/petshop-api/internal/httperr"
	"github.com/petshopsuite/petshop-api/internal/httpresp"
	"github.com/petshopsuite/petshop-api/internal/models"
	"github.com/petshopsuite/petshop-api/internal/payments"
	"github.com/petshopsuite/petshop-api/internal/timezone"
)

type SaleHandler struct {
	db       *gorm.DB
	provider payments.Provider
	audit    *audit.Dispatcher
}

func NewSaleHandler(db *gorm.DB, provider payments.Provider, audit *audit.Dispatcher) *SaleHandler {
	return &SaleHandler{
		db:       db,
		provider: provider,
		audit:    audit,
	}
}

type SaleItemRequest struct {
	ProductID uint `json:"product_id" binding:"required"`
	Quantity  int  `json:"quantity" binding:"required"`
}

type CheckoutRequest struct {
	ClientID      *uint             `json:"client_id"`
	PaymentMethod string            `json:"payment_method"`
	PayerEmail    string            `json:"payer_email"`
	Items         []SaleItemRequest `json:"items" binding:"required,min=1"`
}

// POST /api/sales
//
// Venda de balcão: baixa o estoque, grava a venda e lança a receita no
// livro-caixa dentro da mesma transação. A cobrança pix, quando pedida,
// é criada depois do commit — o provedor fora do ar não desfaz a venda.
func (h *SaleHandler) Checkout(c *gin.Context) {
	var req CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	method := finance.NormalizePaymentMethod(req.PaymentMethod)
	if !finance.IsValidPaymentMethod(method) {
		httperr.BadRequest(c, "invalid_payment_method", "método de pagamento desconhecido")
		return
	}

	petShopID := currentPetShopID(c)
	userID := currentUserID(c)

	// A receita da venda é datada no dia-calendário do fuso do shop, a
	// mesma regra da conferência de caixa.
	saleDay := timezone.DayOf(timezone.NowIn(shopTimezone(h.db, petShopID)))

	sale := models.Sale{
		PetShopID:     petShopID,
		UserID:        userID,
		ClientID:      req.ClientID,
		ReceiptNumber: uuid.NewString(),
		PaymentMethod: method,
	}

	err := h.db.Transaction(func(tx *gorm.DB) error {
		for _, item := range req.Items {
			if item.Quantity <= 0 {
				return httperr.ErrBusiness("invalid_quantity")
			}

			var product models.Product
			if err := tx.
				Where("id = ? AND pet_shop_id = ? AND active", item.ProductID, petShopID).
				First(&product).Error; err != nil {
				return httperr.ErrBusiness("product_not_found")
			}

			// baixa condicional; duas vendas do mesmo produto disputam
			// aqui, e a que estourar o saldo falha inteira
			res := tx.Model(&models.Product{}).
				Where("id = ? AND stock_qty >= ?", product.ID, item.Quantity).
				Update("stock_qty", gorm.Expr("stock_qty - ?", item.Quantity))
			if res.Error != nil {
				return res.Error
			}
			if res.RowsAffected == 0 {
				return httperr.ErrBusiness("insufficient_stock")
			}

			subtotal := product.Price * float64(item.Quantity)
			sale.Items = append(sale.Items, models.SaleItem{
				ProductID: product.ID,
				Quantity:  item.Quantity,
				UnitPrice: product.Price,
				Subtotal:  subtotal,
			})
			sale.Total += subtotal
		}

		if err := tx.Create(&sale).Error; err != nil {
			return err
		}

		rec, err := finance.NewRecord(finance.NewRecordInput{
			PetShopID:     petShopID,
			Description:   "Venda " + sale.ReceiptNumber,
			Amount:        sale.Total,
			Type:          finance.TypeIncome,
			Category:      "vendas",
			PaymentMethod: method,
			Date:          saleDay,
		})
		if err != nil {
			return err
		}
		rec.SaleID = &sale.ID

		return tx.Create(rec).Error
	})
	if err != nil {
		if httperr.IsBusiness(err, "insufficient_stock") {
			httperr.Conflict(c, "insufficient_stock", "estoque insuficiente")
			return
		}

		if code, ok := httperr.CodeOf(err); ok {
			httperr.BadRequest(c, code, code)
			return
		}

		var valErr finance.ValidationError
		if errors.As(err, &valErr) {
			httperr.BadRequest(c, "validation_error", valErr.Error())
			return
		}

		httperr.Internal(c, "internal_error", "falha ao registrar a venda")
		return
	}

	h.audit.Dispatch(audit.Event{
		PetShopID: petShopID,
		UserID:    &userID,
		Action:    "sale_completed",
		Entity:    "sale",
		EntityID:  &sale.ID,
		Metadata: map[string]any{
			"total":          sale.Total,
			"payment_method": method,
			"items":          len(sale.Items),
		},
	})

	resp := gin.H{"sale": sale}

	if method == finance.PaymentPix && h.provider != nil {
		charge, err := h.provider.CreatePixCharge(
			c.Request.Context(),
			sale.Total,
			"Venda "+sale.ReceiptNumber,
			req.PayerEmail,
		)
		if err == nil {
			h.db.Model(&sale).Update("external_payment_id", charge.ID)
			resp["pix"] = gin.H{
				"charge_id":      charge.ID,
				"status":         charge.Status,
				"qr_code":        charge.QRCode,
				"qr_code_base64": charge.QRCodeB64,
			}
		} else {
			// venda registrada; a cobrança pode ser reemitida depois
			resp["pix_error"] = "falha ao criar a cobrança pix"
		}
	}

	httpresp.Created(c, resp)
}

// GET /api/sales
func (h *SaleHandler) List(c *gin.Context) {
	var sales []models.Sale
	if err := h.db.
		Where("pet_shop_id = ?", currentPetShopID(c)).
		Preload("Items").
		Order("created_at DESC").
		Limit(100).
		Find(&sales).Error; err != nil {
		httperr.Internal(c, "internal_error", "falha ao listar vendas")
		return
	}

	httpresp.List(c, sales)
}
