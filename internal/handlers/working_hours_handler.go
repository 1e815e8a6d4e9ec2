package handlers

import (
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/petshopsuite/petshop-api/internal/httperr"
	"github.com/petshopsuite/petshop-api/internal/httpresp"
	"github.com/petshopsuite/petshop-api/internal/models"
)

type WorkingHoursHandler struct {
	db *gorm.DB
}

func NewWorkingHoursHandler(db *gorm.DB) *WorkingHoursHandler {
	return &WorkingHoursHandler{db: db}
}

type WorkingHoursEntry struct {
	Weekday    int    `json:"weekday"`
	StartTime  string `json:"start_time"`
	EndTime    string `json:"end_time"`
	LunchStart string `json:"lunch_start"`
	LunchEnd   string `json:"lunch_end"`
	Active     bool   `json:"active"`
}

type UpdateWorkingHoursRequest struct {
	Entries []WorkingHoursEntry `json:"entries" binding:"required"`
}

// GET /api/working-hours
func (h *WorkingHoursHandler) Get(c *gin.Context) {
	var hours []models.WorkingHours
	if err := h.db.
		Where("groomer_id = ?", currentUserID(c)).
		Order("weekday ASC").
		Find(&hours).Error; err != nil {
		httperr.Internal(c, "internal_error", "falha ao consultar horários")
		return
	}

	httpresp.List(c, hours)
}

// PUT /api/working-hours
//
// Substitui a grade inteira do profissional de uma vez.
func (h *WorkingHoursHandler) Update(c *gin.Context) {
	var req UpdateWorkingHoursRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	for _, e := range req.Entries {
		if e.Weekday < 0 || e.Weekday > 6 {
			httperr.BadRequest(c, "invalid_weekday", "weekday deve estar entre 0 e 6")
			return
		}
		if !e.Active {
			continue
		}
		if !isValidHM(e.StartTime) || !isValidHM(e.EndTime) {
			httperr.BadRequest(c, "invalid_time", "horários devem ser HH:MM")
			return
		}
		if e.LunchStart != "" || e.LunchEnd != "" {
			if !isValidHM(e.LunchStart) || !isValidHM(e.LunchEnd) {
				httperr.BadRequest(c, "invalid_time", "horários de almoço devem ser HH:MM")
				return
			}
		}
	}

	groomerID := currentUserID(c)

	err := h.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.
			Where("groomer_id = ?", groomerID).
			Delete(&models.WorkingHours{}).Error; err != nil {
			return err
		}

		for _, e := range req.Entries {
			wh := models.WorkingHours{
				GroomerID:  groomerID,
				Weekday:    e.Weekday,
				StartTime:  e.StartTime,
				EndTime:    e.EndTime,
				LunchStart: e.LunchStart,
				LunchEnd:   e.LunchEnd,
				Active:     e.Active,
			}
			if err := tx.Create(&wh).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		httperr.Internal(c, "internal_error", "falha ao salvar horários")
		return
	}

	h.Get(c)
}

func isValidHM(hm string) bool {
	_, err := time.Parse("15:04", hm)
	return err == nil
}
