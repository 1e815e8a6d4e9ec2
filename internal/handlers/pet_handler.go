package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/petshopsuite/petshop-api/internal/httperr"
	"github.com/petshopsuite/petshop-api/internal/httpresp"
	"github.com/petshopsuite/petshop-api/internal/media"
	"github.com/petshopsuite/petshop-api/internal/models"
)

const maxPhotoBytes = 8 << 20

type PetHandler struct {
	db       *gorm.DB
	uploader *media.Uploader
}

func NewPetHandler(db *gorm.DB, uploader *media.Uploader) *PetHandler {
	return &PetHandler{db: db, uploader: uploader}
}

type PetRequest struct {
	ClientID uint   `json:"client_id" binding:"required"`
	Name     string `json:"name" binding:"required"`
	Species  string `json:"species"`
	Breed    string `json:"breed"`
	Notes    string `json:"notes"`
}

// GET /api/pets?client_id=
func (h *PetHandler) List(c *gin.Context) {
	q := h.db.Where("pet_shop_id = ?", currentPetShopID(c))

	if raw := c.Query("client_id"); raw != "" {
		clientID, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			httperr.BadRequest(c, "invalid_client_id", "client_id inválido")
			return
		}
		q = q.Where("client_id = ?", clientID)
	}

	var pets []models.Pet
	if err := q.Preload("Client").Order("name ASC").Find(&pets).Error; err != nil {
		httperr.Internal(c, "internal_error", "falha ao listar pets")
		return
	}

	httpresp.List(c, pets)
}

// POST /api/pets
func (h *PetHandler) Create(c *gin.Context) {
	var req PetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	petShopID := currentPetShopID(c)

	var client models.Client
	if err := h.db.
		Where("id = ? AND pet_shop_id = ?", req.ClientID, petShopID).
		First(&client).Error; err != nil {
		httperr.NotFound(c, "client_not_found", "tutor não encontrado")
		return
	}

	pet := models.Pet{
		PetShopID: petShopID,
		ClientID:  client.ID,
		Name:      strings.TrimSpace(req.Name),
		Species:   req.Species,
		Breed:     req.Breed,
		Notes:     req.Notes,
	}

	if err := h.db.Create(&pet).Error; err != nil {
		httperr.Internal(c, "internal_error", "falha ao cadastrar pet")
		return
	}

	httpresp.Created(c, pet)
}

// PUT /api/pets/:id
func (h *PetHandler) Update(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "id inválido")
		return
	}

	var req PetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	var pet models.Pet
	if err := h.db.
		Where("id = ? AND pet_shop_id = ?", id, currentPetShopID(c)).
		First(&pet).Error; err != nil {
		httperr.NotFound(c, "pet_not_found", "pet não encontrado")
		return
	}

	pet.Name = strings.TrimSpace(req.Name)
	pet.Species = req.Species
	pet.Breed = req.Breed
	pet.Notes = req.Notes

	if err := h.db.Save(&pet).Error; err != nil {
		httperr.Internal(c, "internal_error", "falha ao atualizar pet")
		return
	}

	c.JSON(http.StatusOK, pet)
}

// POST /api/pets/:id/photo (multipart, campo "photo")
func (h *PetHandler) UploadPhoto(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "id inválido")
		return
	}

	var pet models.Pet
	if err := h.db.
		Where("id = ? AND pet_shop_id = ?", id, currentPetShopID(c)).
		First(&pet).Error; err != nil {
		httperr.NotFound(c, "pet_not_found", "pet não encontrado")
		return
	}

	file, err := c.FormFile("photo")
	if err != nil {
		httperr.BadRequest(c, "missing_photo", "envie o arquivo no campo photo")
		return
	}
	if file.Size > maxPhotoBytes {
		httperr.BadRequest(c, "photo_too_large", "foto acima de 8MB")
		return
	}

	src, err := file.Open()
	if err != nil {
		httperr.Internal(c, "internal_error", "falha ao ler a foto")
		return
	}
	defer src.Close()

	url, err := h.uploader.UploadPetPhoto(c.Request.Context(), pet.ID, src)
	if err != nil {
		httperr.Internal(c, "upload_failed", "falha ao enviar a foto")
		return
	}

	pet.PhotoURL = url
	if err := h.db.Model(&pet).Update("photo_url", url).Error; err != nil {
		httperr.Internal(c, "internal_error", "falha ao salvar a foto")
		return
	}

	c.JSON(http.StatusOK, pet)
}
