package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/petshopsuite/petshop-api/internal/httperr"
	"github.com/petshopsuite/petshop-api/internal/httpresp"
	"github.com/petshopsuite/petshop-api/internal/timezone"
	appointmentuc "github.com/petshopsuite/petshop-api/internal/usecase/appointment"
)

type AppointmentHandler struct {
	create      *appointmentuc.CreateAppointment
	cancel      *appointmentuc.CancelAppointment
	confirm     *appointmentuc.ConfirmAppointment
	complete    *appointmentuc.CompleteAppointment
	listByDate  *appointmentuc.ListAppointmentsByDate
	listByMonth *appointmentuc.ListAppointmentsByMonth
}

func NewAppointmentHandler(
	create *appointmentuc.CreateAppointment,
	cancel *appointmentuc.CancelAppointment,
	confirm *appointmentuc.ConfirmAppointment,
	complete *appointmentuc.CompleteAppointment,
	listByDate *appointmentuc.ListAppointmentsByDate,
	listByMonth *appointmentuc.ListAppointmentsByMonth,
) *AppointmentHandler {
	return &AppointmentHandler{
		create:      create,
		cancel:      cancel,
		confirm:     confirm,
		complete:    complete,
		listByDate:  listByDate,
		listByMonth: listByMonth,
	}
}

// --------- Requests ---------

type CreateAppointmentRequest struct {
	ClientName  string `json:"client_name" binding:"required"`
	ClientPhone string `json:"client_phone" binding:"required"`
	ClientEmail string `json:"client_email"`

	PetName    string `json:"pet_name" binding:"required"`
	PetSpecies string `json:"pet_species"`

	ServiceID uint `json:"service_id" binding:"required"`

	Date  string `json:"date" binding:"required"`
	Time  string `json:"time" binding:"required"`
	Notes string `json:"notes"`
}

type CompleteAppointmentRequest struct {
	PaymentMethod string `json:"payment_method"`
}

// --------- Handlers ---------

// POST /api/appointments
func (h *AppointmentHandler) Create(c *gin.Context) {
	var req CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	ap, err := h.create.Execute(c.Request.Context(), appointmentuc.CreateAppointmentInput{
		PetShopID:   currentPetShopID(c),
		GroomerID:   currentUserID(c),
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

	httpresp.Created(c, ap)
}

// GET /api/appointments?date=  |  ?year=&month=
func (h *AppointmentHandler) List(c *gin.Context) {
	petShopID := currentPetShopID(c)
	groomerID := currentUserID(c)

	if yearRaw := c.Query("year"); yearRaw != "" {
		year, err1 := strconv.Atoi(yearRaw)
		month, err2 := strconv.Atoi(c.Query("month"))
		if err1 != nil || err2 != nil || month < 1 || month > 12 {
			httperr.BadRequest(c, "invalid_period", "year e month inválidos")
			return
		}

		items, err := h.listByMonth.Execute(c.Request.Context(), groomerID, petShopID, year, month)
		if err != nil {
			httperr.Internal(c, "internal_error", "falha ao listar agendamentos")
			return
		}

		httpresp.List(c, items)
		return
	}

	day := timezone.Now()
	if raw := c.Query("date"); raw != "" {
		parsed, err := time.ParseInLocation("2006-01-02", raw, timezone.Location(""))
		if err != nil {
			httperr.BadRequest(c, "invalid_date", "date deve ser YYYY-MM-DD")
			return
		}
		day = parsed
	}

	items, err := h.listByDate.Execute(c.Request.Context(), groomerID, petShopID, day)
	if err != nil {
		httperr.Internal(c, "internal_error", "falha ao listar agendamentos")
		return
	}

	httpresp.List(c, items)
}

// POST /api/appointments/:id/cancel
func (h *AppointmentHandler) Cancel(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "id inválido")
		return
	}

	ap, err := h.cancel.Execute(c.Request.Context(), currentPetShopID(c), currentUserID(c), uint(id))
	if err != nil {
		writeAppointmentError(c, err)
		return
	}

	c.JSON(http.StatusOK, ap)
}

// POST /api/appointments/:id/confirm
func (h *AppointmentHandler) Confirm(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "id inválido")
		return
	}

	ap, err := h.confirm.Execute(c.Request.Context(), currentPetShopID(c), currentUserID(c), uint(id))
	if err != nil {
		writeAppointmentError(c, err)
		return
	}

	c.JSON(http.StatusOK, ap)
}

// POST /api/appointments/:id/complete
func (h *AppointmentHandler) Complete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "id inválido")
		return
	}

	var req CompleteAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil && err.Error() != "EOF" {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	ap, err := h.complete.Execute(c.Request.Context(), appointmentuc.CompleteAppointmentInput{
		PetShopID:     currentPetShopID(c),
		GroomerID:     currentUserID(c),
		AppointmentID: uint(id),
		PaymentMethod: req.PaymentMethod,
	})
	if err != nil {
		var partial *appointmentuc.PartialCompletionError
		if errors.As(err, &partial) {
			// A receita foi lançada mas o status não virou. Quem chamou
			// pode tentar de novo: a retomada reutiliza o lançamento.
			httperr.WriteWith(c, http.StatusInternalServerError,
				"partial_completion",
				"receita registrada, status não atualizado; tente novamente",
				map[string]any{"financial_record_id": partial.RecordID},
			)
			return
		}

		var ledgerErr *appointmentuc.LedgerWriteError
		if errors.As(err, &ledgerErr) {
			httperr.Internal(c, "ledger_write_failed", "falha ao lançar a receita; nada foi alterado")
			return
		}

		writeAppointmentError(c, err)
		return
	}

	c.JSON(http.StatusOK, ap)
}

// --------- Error mapping ---------

func writeAppointmentError(c *gin.Context, err error) {
	if code, ok := httperr.CodeOf(err); ok {
		status := http.StatusBadRequest
		switch code {
		case "appointment_not_found", "service_not_found":
			status = http.StatusNotFound
		case "time_conflict", "invalid_state":
			status = http.StatusConflict
		}
		httperr.Write(c, status, code, code)
		return
	}

	httperr.Internal(c, "internal_error", "falha na operação de agendamento")
}
