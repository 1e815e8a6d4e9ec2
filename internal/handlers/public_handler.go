package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/petshopsuite/petshop-api/internal/cache"
	domain "github.com/petshopsuite/petshop-api/internal/domain/appointment"
	"github.com/petshopsuite/petshop-api/internal/httperr"
	"github.com/petshopsuite/petshop-api/internal/httpresp"
	"github.com/petshopsuite/petshop-api/internal/models"
	"github.com/petshopsuite/petshop-api/internal/timezone"
	appointmentuc "github.com/petshopsuite/petshop-api/internal/usecase/appointment"
)

// PublicHandler serve a página de agendamento online, sem autenticação.
// Tudo é resolvido pelo slug do pet shop.
type PublicHandler struct {
	db           *gorm.DB
	catalog      *cache.CatalogCache
	availability *appointmentuc.GetAvailability
	create       *appointmentuc.CreateAppointment
}

func NewPublicHandler(
	db *gorm.DB,
	catalog *cache.CatalogCache,
	availability *appointmentuc.GetAvailability,
	create *appointmentuc.CreateAppointment,
) *PublicHandler {
	return &PublicHandler{
		db:           db,
		catalog:      catalog,
		availability: availability,
		create:       create,
	}
}

type PublicBookingRequest struct {
	GroomerID uint `json:"groomer_id" binding:"required"`
	ServiceID uint `json:"service_id" binding:"required"`

	ClientName  string `json:"client_name" binding:"required"`
	ClientPhone string `json:"client_phone" binding:"required"`
	ClientEmail string `json:"client_email"`

	PetName    string `json:"pet_name" binding:"required"`
	PetSpecies string `json:"pet_species"`

	Date  string `json:"date" binding:"required"`
	Time  string `json:"time" binding:"required"`
	Notes string `json:"notes"`
}

func (h *PublicHandler) shopBySlug(c *gin.Context) (*models.PetShop, bool) {
	var shop models.PetShop
	if err := h.db.Where("slug = ?", c.Param("slug")).First(&shop).Error; err != nil {
		httperr.NotFound(c, "pet_shop_not_found", "pet shop não encontrado")
		return nil, false
	}
	return &shop, true
}

// GET /public/:slug
func (h *PublicHandler) GetShop(c *gin.Context) {
	shop, ok := h.shopBySlug(c)
	if !ok {
		return
	}

	var groomers []models.User
	h.db.Select("id", "name").
		Where("pet_shop_id = ?", shop.ID).
		Order("name ASC").
		Find(&groomers)

	c.JSON(http.StatusOK, gin.H{
		"pet_shop": gin.H{
			"id":      shop.ID,
			"name":    shop.Name,
			"slug":    shop.Slug,
			"phone":   shop.Phone,
			"address": shop.Address,
		},
		"groomers": groomers,
	})
}

// GET /public/:slug/services
func (h *PublicHandler) ListServices(c *gin.Context) {
	shop, ok := h.shopBySlug(c)
	if !ok {
		return
	}

	ctx := c.Request.Context()

	if services, hit := h.catalog.Get(ctx, shop.ID); hit {
		httpresp.List(c, services)
		return
	}

	var services []models.GroomService
	if err := h.db.
		Where("pet_shop_id = ? AND active", shop.ID).
		Order("name ASC").
		Find(&services).Error; err != nil {
		httperr.Internal(c, "internal_error", "falha ao listar serviços")
		return
	}

	h.catalog.Set(ctx, shop.ID, services)

	httpresp.List(c, services)
}

// GET /public/:slug/availability?groomer_id=&service_id=&date=
func (h *PublicHandler) Availability(c *gin.Context) {
	shop, ok := h.shopBySlug(c)
	if !ok {
		return
	}

	groomerID, err1 := parseUintQuery(c, "groomer_id")
	serviceID, err2 := parseUintQuery(c, "service_id")
	if err1 != nil || err2 != nil {
		httperr.BadRequest(c, "invalid_request", "groomer_id e service_id são obrigatórios")
		return
	}

	date, err := time.ParseInLocation("2006-01-02", c.Query("date"), timezone.Location(shop.Timezone))
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "date deve ser YYYY-MM-DD")
		return
	}

	slots, err := h.availability.Execute(c.Request.Context(), domain.AvailabilityInput{
		PetShopID: shop.ID,
		GroomerID: groomerID,
		ServiceID: serviceID,
		Date:      date,
	})
	if err != nil {
		writeAppointmentError(c, err)
		return
	}

	httpresp.List(c, slots)
}

// POST /public/:slug/appointments
func (h *PublicHandler) CreateBooking(c *gin.Context) {
	shop, ok := h.shopBySlug(c)
	if !ok {
		return
	}

	var req PublicBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	var groomer models.User
	if err := h.db.
		Where("id = ? AND pet_shop_id = ?", req.GroomerID, shop.ID).
		First(&groomer).Error; err != nil {
		httperr.NotFound(c, "groomer_not_found", "profissional não encontrado")
		return
	}

	ap, err := h.create.Execute(c.Request.Context(), appointmentuc.CreateAppointmentInput{
		PetShopID:   shop.ID,
		GroomerID:   groomer.ID,
		ClientName:  req.ClientName,
		ClientPhone: req.ClientPhone,
		ClientEmail: req.ClientEmail,
		PetName:     req.PetName,
		PetSpecies:  req.PetSpecies,
		ServiceID:   req.ServiceID,
		Date:        req.Date,
		Time:        req.Time,
		Notes:       req.Notes,
	})
	if err != nil {
		writeAppointmentError(c, err)
		return
	}

	httpresp.Created(c, gin.H{
		"id":         ap.ID,
		"start_time": ap.StartTime,
		"end_time":   ap.EndTime,
		"status":     ap.Status,
	})
}

func parseUintQuery(c *gin.Context, key string) (uint, error) {
	v, err := strconv.ParseUint(c.Query(key), 10, 32)
	return uint(v), err
}
