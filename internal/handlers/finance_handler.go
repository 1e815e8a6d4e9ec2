package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	financedomain "github.com/petshopsuite/petshop-api/internal/domain/finance"
	"github.com/petshopsuite/petshop-api/internal/httperr"
	"github.com/petshopsuite/petshop-api/internal/timezone"
	financeuc "github.com/petshopsuite/petshop-api/internal/usecase/finance"
)

type FinanceHandler struct {
	db        *gorm.DB
	append    *financeuc.AppendRecord
	list      *financeuc.ListRecords
	summarize *financeuc.SummarizeDay
}

func NewFinanceHandler(
	db *gorm.DB,
	append *financeuc.AppendRecord,
	list *financeuc.ListRecords,
	summarize *financeuc.SummarizeDay,
) *FinanceHandler {
	return &FinanceHandler{
		db:        db,
		append:    append,
		list:      list,
		summarize: summarize,
	}
}

// --------- Requests ---------

type CreateRecordRequest struct {
	Description   string  `json:"description" binding:"required"`
	Amount        float64 `json:"amount" binding:"required"`
	Type          string  `json:"type" binding:"required"`
	Category      string  `json:"category"`
	PaymentMethod string  `json:"payment_method"`
	Date          string  `json:"date"`
}

// --------- Handlers ---------

// POST /api/financial-records
func (h *FinanceHandler) Create(c *gin.Context) {
	var req CreateRecordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	rec, err := h.append.Execute(c.Request.Context(), financeuc.AppendRecordInput{
		PetShopID:     currentPetShopID(c),
		UserID:        currentUserID(c),
		Description:   req.Description,
		Amount:        req.Amount,
		Type:          req.Type,
		Category:      req.Category,
		PaymentMethod: req.PaymentMethod,
		Date:          req.Date,
		Timezone:      shopTimezone(h.db, currentPetShopID(c)),
	})
	if err != nil {
		var valErr financedomain.ValidationError
		if errors.As(err, &valErr) {
			httperr.BadRequest(c, "validation_error", valErr.Error())
			return
		}

		var stoErr financedomain.StorageError
		if errors.As(err, &stoErr) {
			httperr.Internal(c, "storage_error", "falha ao gravar o lançamento")
			return
		}

		httperr.Internal(c, "internal_error", "falha ao gravar o lançamento")
		return
	}

	c.JSON(http.StatusCreated, rec)
}

// GET /api/financial-records?from=&to=&type=&payment_method=&category=
func (h *FinanceHandler) List(c *gin.Context) {
	loc := timezone.Location(shopTimezone(h.db, currentPetShopID(c)))

	from, err := time.ParseInLocation("2006-01-02", c.Query("from"), loc)
	if err != nil {
		httperr.BadRequest(c, "invalid_from", "from deve ser YYYY-MM-DD")
		return
	}

	to, err := time.ParseInLocation("2006-01-02", c.Query("to"), loc)
	if err != nil {
		httperr.BadRequest(c, "invalid_to", "to deve ser YYYY-MM-DD")
		return
	}

	if to.Before(from) {
		httperr.BadRequest(c, "invalid_range", "to não pode ser anterior a from")
		return
	}

	records, err := h.list.Execute(
		c.Request.Context(),
		currentPetShopID(c),
		from,
		to,
		financedomain.RangeFilter{
			Type:          c.Query("type"),
			PaymentMethod: c.Query("payment_method"),
			Category:      c.Query("category"),
		},
	)
	if err != nil {
		httperr.Internal(c, "internal_error", "falha ao listar lançamentos")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data":  records,
		"total": len(records),
	})
}

// GET /api/financial-records/summary?date=
func (h *FinanceHandler) Summary(c *gin.Context) {
	loc := timezone.Location(shopTimezone(h.db, currentPetShopID(c)))

	day := time.Now().In(loc)
	if raw := c.Query("date"); raw != "" {
		parsed, err := time.ParseInLocation("2006-01-02", raw, loc)
		if err != nil {
			httperr.BadRequest(c, "invalid_date", "date deve ser YYYY-MM-DD")
			return
		}
		day = parsed
	}

	summary, err := h.summarize.Execute(c.Request.Context(), currentPetShopID(c), day)
	if err != nil {
		httperr.Internal(c, "internal_error", "falha ao calcular o resumo do dia")
		return
	}

	c.JSON(http.StatusOK, summary)
}
