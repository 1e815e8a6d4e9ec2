package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/petshopsuite/petshop-api/internal/httperr"
	"github.com/petshopsuite/petshop-api/internal/httpresp"
	"github.com/petshopsuite/petshop-api/internal/models"
)

type InventoryHandler struct {
	db *gorm.DB
}

func NewInventoryHandler(db *gorm.DB) *InventoryHandler {
	return &InventoryHandler{db: db}
}

type ProductRequest struct {
	Name        string  `json:"name" binding:"required"`
	Description string  `json:"description"`
	SKU         string  `json:"sku"`
	Price       float64 `json:"price" binding:"required"`
	StockQty    int     `json:"stock_qty"`
	Category    string  `json:"category"`
	Active      *bool   `json:"active"`
}

type StockAdjustRequest struct {
	// Positivo repõe, negativo dá baixa
	Delta  int    `json:"delta" binding:"required"`
	Reason string `json:"reason"`
}

// GET /api/products?q=
func (h *InventoryHandler) List(c *gin.Context) {
	q := h.db.Where("pet_shop_id = ?", currentPetShopID(c))

	if search := strings.TrimSpace(c.Query("q")); search != "" {
		like := "%" + search + "%"
		q = q.Where("name ILIKE ? OR sku ILIKE ?", like, like)
	}

	var products []models.Product
	if err := q.Order("name ASC").Find(&products).Error; err != nil {
		httperr.Internal(c, "internal_error", "falha ao listar produtos")
		return
	}

	httpresp.List(c, products)
}

// POST /api/products
func (h *InventoryHandler) Create(c *gin.Context) {
	var req ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	if req.Price < 0 || req.StockQty < 0 {
		httperr.BadRequest(c, "validation_error", "preço e estoque devem ser não-negativos")
		return
	}

	product := models.Product{
		PetShopID:   currentPetShopID(c),
		Name:        strings.TrimSpace(req.Name),
		Description: req.Description,
		SKU:         strings.TrimSpace(req.SKU),
		Price:       req.Price,
		StockQty:    req.StockQty,
		Category:    req.Category,
		Active:      true,
	}
	if req.Active != nil {
		product.Active = *req.Active
	}

	if err := h.db.Create(&product).Error; err != nil {
		httperr.Internal(c, "internal_error", "falha ao criar produto")
		return
	}

	httpresp.Created(c, product)
}

// PUT /api/products/:id
func (h *InventoryHandler) Update(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "id inválido")
		return
	}

	var req ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	var product models.Product
	if err := h.db.
		Where("id = ? AND pet_shop_id = ?", id, currentPetShopID(c)).
		First(&product).Error; err != nil {
		httperr.NotFound(c, "product_not_found", "produto não encontrado")
		return
	}

	product.Name = strings.TrimSpace(req.Name)
	product.Description = req.Description
	product.SKU = strings.TrimSpace(req.SKU)
	product.Price = req.Price
	product.Category = req.Category
	if req.Active != nil {
		product.Active = *req.Active
	}

	if err := h.db.Save(&product).Error; err != nil {
		httperr.Internal(c, "internal_error", "falha ao atualizar produto")
		return
	}

	c.JSON(http.StatusOK, product)
}

// POST /api/products/:id/stock
func (h *InventoryHandler) AdjustStock(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "id inválido")
		return
	}

	var req StockAdjustRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	// UPDATE condicional: o saldo nunca fica negativo, mesmo com duas
	// baixas simultâneas sobre o mesmo produto.
	res := h.db.
		Model(&models.Product{}).
		Where("id = ? AND pet_shop_id = ? AND stock_qty + ? >= 0",
			id, currentPetShopID(c), req.Delta).
		Update("stock_qty", gorm.Expr("stock_qty + ?", req.Delta))

	if res.Error != nil {
		httperr.Internal(c, "internal_error", "falha ao ajustar estoque")
		return
	}
	if res.RowsAffected == 0 {
		httperr.Conflict(c, "insufficient_stock", "estoque insuficiente ou produto inexistente")
		return
	}

	var product models.Product
	if err := h.db.First(&product, id).Error; err != nil {
		httperr.Internal(c, "internal_error", "falha ao consultar produto")
		return
	}

	c.JSON(http.StatusOK, product)
}
