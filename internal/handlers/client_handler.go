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

type ClientHandler struct {
	db *gorm.DB
}

func NewClientHandler(db *gorm.DB) *ClientHandler {
	return &ClientHandler{db: db}
}

type ClientRequest struct {
	Name  string `json:"name" binding:"required"`
	Phone string `json:"phone"`
	Email string `json:"email"`
	Notes string `json:"notes"`
}

// GET /api/clients?q=
func (h *ClientHandler) List(c *gin.Context) {
	q := h.db.Where("pet_shop_id = ?", currentPetShopID(c))

	if search := strings.TrimSpace(c.Query("q")); search != "" {
		like := "%" + search + "%"
		q = q.Where("name ILIKE ? OR phone LIKE ?", like, like)
	}

	var clients []models.Client
	if err := q.Preload("Pets").Order("name ASC").Find(&clients).Error; err != nil {
		httperr.Internal(c, "internal_error", "falha ao listar tutores")
		return
	}

	httpresp.List(c, clients)
}

// POST /api/clients
func (h *ClientHandler) Create(c *gin.Context) {
	var req ClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	client := models.Client{
		PetShopID: currentPetShopID(c),
		Name:      strings.TrimSpace(req.Name),
		Phone:     req.Phone,
		Email:     strings.ToLower(strings.TrimSpace(req.Email)),
		Notes:     req.Notes,
	}

	if err := h.db.Create(&client).Error; err != nil {
		httperr.Internal(c, "internal_error", "falha ao cadastrar tutor")
		return
	}

	httpresp.Created(c, client)
}

// PUT /api/clients/:id
func (h *ClientHandler) Update(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "id inválido")
		return
	}

	var req ClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	var client models.Client
	if err := h.db.
		Where("id = ? AND pet_shop_id = ?", id, currentPetShopID(c)).
		First(&client).Error; err != nil {
		httperr.NotFound(c, "client_not_found", "tutor não encontrado")
		return
	}

	client.Name = strings.TrimSpace(req.Name)
	client.Phone = req.Phone
	client.Email = strings.ToLower(strings.TrimSpace(req.Email))
	client.Notes = req.Notes

	if err := h.db.Save(&client).Error; err != nil {
		httperr.Internal(c, "internal_error", "falha ao atualizar tutor")
		return
	}

	c.JSON(http.StatusOK, client)
}
