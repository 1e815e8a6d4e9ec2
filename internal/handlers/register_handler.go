package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/petshopsuite/petshop-api/internal/domain/finance"
	registerdomain "github.com/petshopsuite/petshop-api/internal/domain/register"
	"github.com/petshopsuite/petshop-api/internal/httperr"
	"github.com/petshopsuite/petshop-api/internal/identity"
	registeruc "github.com/petshopsuite/petshop-api/internal/usecase/register"
)

type RegisterHandler struct {
	open    *registeruc.OpenRegister
	close   *registeruc.CloseRegister
	current *registeruc.CurrentRegister
	repo    registerdomain.Repository
}

func NewRegisterHandler(
	open *registeruc.OpenRegister,
	close *registeruc.CloseRegister,
	current *registeruc.CurrentRegister,
	repo registerdomain.Repository,
) *RegisterHandler {
	return &RegisterHandler{
		open:    open,
		close:   close,
		current: current,
		repo:    repo,
	}
}

// --------- Requests ---------

type OpenRegisterRequest struct {
	InitialAmount float64 `json:"initial_amount"`
	Password      string  `json:"password" binding:"required"`
}

type CloseRegisterRequest struct {
	CountedAmount float64 `json:"counted_amount"`
	Notes         string  `json:"notes"`
}

// --------- Handlers ---------

// POST /api/cash-registers/open
func (h *RegisterHandler) Open(c *gin.Context) {
	var req OpenRegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	reg, err := h.open.Execute(c.Request.Context(), registeruc.OpenRegisterInput{
		PetShopID:     currentPetShopID(c),
		UserID:        currentUserID(c),
		InitialAmount: req.InitialAmount,
		Password:      req.Password,
	})
	if err != nil {
		writeRegisterError(c, err)
		return
	}

	c.JSON(http.StatusCreated, reg)
}

// POST /api/cash-registers/:id/close
func (h *RegisterHandler) Close(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "id inválido")
		return
	}

	var req CloseRegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	out, err := h.close.Execute(c.Request.Context(), registeruc.CloseRegisterInput{
		PetShopID:     currentPetShopID(c),
		UserID:        currentUserID(c),
		RegisterID:    uint(id),
		CountedAmount: req.CountedAmount,
		Notes:         req.Notes,
	})
	if err != nil {
		writeRegisterError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"register":    out.Register,
		"discrepancy": out.Discrepancy,
		"result":      out.Status,
	})
}

// GET /api/cash-registers/current
func (h *RegisterHandler) Current(c *gin.Context) {
	out, err := h.current.Execute(c.Request.Context(), currentPetShopID(c))
	if err != nil {
		httperr.Internal(c, "internal_error", "falha ao consultar o caixa")
		return
	}

	c.JSON(http.StatusOK, out)
}

// GET /api/cash-registers?limit=&offset=
func (h *RegisterHandler) List(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "30"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))
	if limit <= 0 || limit > 100 {
		limit = 30
	}

	regs, total, err := h.repo.ListRegisters(c.Request.Context(), currentPetShopID(c), limit, offset)
	if err != nil {
		httperr.Internal(c, "internal_error", "falha ao listar sessões de caixa")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data":  regs,
		"total": total,
	})
}

// --------- Error mapping ---------

func writeRegisterError(c *gin.Context, err error) {
	var authErr *identity.AuthenticationError
	if errors.As(err, &authErr) {
		httperr.Unauthorized(c, "invalid_password", "senha incorreta")
		return
	}

	var valErr finance.ValidationError
	if errors.As(err, &valErr) {
		httperr.BadRequest(c, "validation_error", valErr.Error())
		return
	}

	var stateErr *registerdomain.StateError
	if errors.As(err, &stateErr) {
		httperr.Conflict(c, stateErr.Code, stateErr.Error())
		return
	}

	if errors.Is(err, registerdomain.ErrNoOpenRegister) || errors.Is(err, gorm.ErrRecordNotFound) {
		httperr.NotFound(c, "register_not_found", "sessão de caixa não encontrada")
		return
	}

	httperr.Internal(c, "internal_error", "falha na operação de caixa")
}
