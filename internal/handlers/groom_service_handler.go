package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/petshopsuite/petshop-api/internal/cache"
	"github.com/petshopsuite/petshop-api/internal/httperr"
	"github.com/petshopsuite/petshop-api/internal/httpresp"
	"github.com/petshopsuite/petshop-api/internal/models"
)

type GroomServiceHandler struct {
	db      *gorm.DB
	catalog *cache.CatalogCache
}

func NewGroomServiceHandler(db *gorm.DB, catalog *cache.CatalogCache) *GroomServiceHandler {
	return &GroomServiceHandler{db: db, catalog: catalog}
}

type GroomServiceRequest struct {
	Name        string  `json:"name" binding:"required"`
	Description string  `json:"description"`
	DurationMin int     `json:"duration_min" binding:"required"`
	Price       float64 `json:"price" binding:"required"`
	Category    string  `json:"category"`
	Active      *bool   `json:"active"`
}

// GET /api/services
func (h *GroomServiceHandler) List(c *gin.Context) {
	var services []models.GroomService
	if err := h.db.
		Where("pet_shop_id = ?", currentPetShopID(c)).
		Order("name ASC").
		Find(&services).Error; err != nil {
		httperr.Internal(c, "internal_error", "falha ao listar serviços")
		return
	}

	httpresp.List(c, services)
}

// POST /api/services
func (h *GroomServiceHandler) Create(c *gin.Context) {
	var req GroomServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	if req.Price < 0 || req.DurationMin <= 0 {
		httperr.BadRequest(c, "validation_error", "preço e duração devem ser positivos")
		return
	}

	petShopID := currentPetShopID(c)

	svc := models.GroomService{
		PetShopID:   petShopID,
		Name:        strings.TrimSpace(req.Name),
		Description: req.Description,
		DurationMin: req.DurationMin,
		Price:       req.Price,
		Category:    req.Category,
		Active:      true,
	}
	if req.Active != nil {
		svc.Active = *req.Active
	}

	if err := h.db.Create(&svc).Error; err != nil {
		httperr.Internal(c, "internal_error", "falha ao criar serviço")
		return
	}

	h.catalog.Invalidate(c.Request.Context(), petShopID)

	httpresp.Created(c, svc)
}

// PUT /api/services/:id
func (h *GroomServiceHandler) Update(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "id inválido")
		return
	}

	var req GroomServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	if req.Price < 0 || req.DurationMin <= 0 {
		httperr.BadRequest(c, "validation_error", "preço e duração devem ser positivos")
		return
	}

	petShopID := currentPetShopID(c)

	var svc models.GroomService
	if err := h.db.
		Where("id = ? AND pet_shop_id = ?", id, petShopID).
		First(&svc).Error; err != nil {
		httperr.NotFound(c, "service_not_found", "serviço não encontrado")
		return
	}

	svc.Name = strings.TrimSpace(req.Name)
	svc.Description = req.Description
	svc.DurationMin = req.DurationMin
	svc.Price = req.Price
	svc.Category = req.Category
	if req.Active != nil {
		svc.Active = *req.Active
	}

	if err := h.db.Save(&svc).Error; err != nil {
		httperr.Internal(c, "internal_error", "falha ao atualizar serviço")
		return
	}

	h.catalog.Invalidate(c.Request.Context(), petShopID)

	c.JSON(http.StatusOK, svc)
}
