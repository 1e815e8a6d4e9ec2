package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/petshopsuite/petshop-api/internal/httperr"
	"github.com/petshopsuite/petshop-api/internal/models"
	"github.com/petshopsuite/petshop-api/internal/timezone"
)

type PetShopHandler struct {
	db *gorm.DB
}

func NewPetShopHandler(db *gorm.DB) *PetShopHandler {
	return &PetShopHandler{db: db}
}

type UpdatePetShopRequest struct {
	Name              string `json:"name" binding:"required"`
	Phone             string `json:"phone"`
	Address           string `json:"address"`
	Timezone          string `json:"timezone"`
	MinAdvanceMinutes int    `json:"min_advance_minutes"`
}

// GET /api/me
func (h *PetShopHandler) Me(c *gin.Context) {
	var user models.User
	if err := h.db.Preload("PetShop").First(&user, currentUserID(c)).Error; err != nil {
		httperr.NotFound(c, "user_not_found", "usuário não encontrado")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"user": gin.H{
			"id":          user.ID,
			"name":        user.Name,
			"email":       user.Email,
			"phone":       user.Phone,
			"role":        user.Role,
			"pet_shop_id": user.PetShopID,
		},
		"pet_shop": user.PetShop,
	})
}

// GET /api/pet-shop
func (h *PetShopHandler) Get(c *gin.Context) {
	var shop models.PetShop
	if err := h.db.First(&shop, currentPetShopID(c)).Error; err != nil {
		httperr.NotFound(c, "pet_shop_not_found", "pet shop não encontrado")
		return
	}

	c.JSON(http.StatusOK, shop)
}

// PUT /api/pet-shop
func (h *PetShopHandler) Update(c *gin.Context) {
	var req UpdatePetShopRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	if req.Timezone != "" && !timezone.IsValid(req.Timezone) {
		httperr.BadRequest(c, "invalid_timezone", "fuso horário desconhecido")
		return
	}
	if req.MinAdvanceMinutes < 0 {
		httperr.BadRequest(c, "validation_error", "antecedência mínima não pode ser negativa")
		return
	}

	var shop models.PetShop
	if err := h.db.First(&shop, currentPetShopID(c)).Error; err != nil {
		httperr.NotFound(c, "pet_shop_not_found", "pet shop não encontrado")
		return
	}

	shop.Name = strings.TrimSpace(req.Name)
	shop.Phone = req.Phone
	shop.Address = req.Address
	if req.Timezone != "" {
		shop.Timezone = req.Timezone
	}
	if req.MinAdvanceMinutes > 0 {
		shop.MinAdvanceMinutes = req.MinAdvanceMinutes
	}

	if err := h.db.Save(&shop).Error; err != nil {
		httperr.Internal(c, "internal_error", "falha ao atualizar pet shop")
		return
	}

	c.JSON(http.StatusOK, shop)
}
