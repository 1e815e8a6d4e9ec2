package finance

import (
	"math"
	"strings"
	"time"

	"github.com/petshopsuite/petshop-api/internal/models"
)

// ===============================
// Tipos e métodos de pagamento
// ===============================

const (
	TypeIncome  = "income"
	TypeExpense = "expense"
)

const (
	PaymentCash       = "cash"
	PaymentCreditCard = "credit_card"
	PaymentDebitCard  = "debit_card"
	PaymentPix        = "pix"
)

const DefaultCategory = "geral"

// CategoryServices é a categoria padrão de receita gerada por conclusão
// de agendamento.
const CategoryServices = "servicos"

// ===============================
// Construção / validação
// ===============================

type NewRecordInput struct {
	PetShopID     uint
	Description   string
	Amount        float64
	Type          string
	Category      string
	PaymentMethod string
	Date          time.Time
	AppointmentID *uint
	SaleID        *uint
}

// NewRecord valida e monta um lançamento. O método de pagamento ausente
// vira "cash" aqui, na escrita — registros antigos sem método são dinheiro
// por definição e a reconciliação do caixa depende disso.
func NewRecord(in NewRecordInput) (*models.FinancialRecord, error) {
	desc := strings.TrimSpace(in.Description)
	if desc == "" {
		return nil, ValidationError{Field: "description", Reason: "required"}
	}

	if math.IsNaN(in.Amount) || math.IsInf(in.Amount, 0) {
		return nil, ValidationError{Field: "amount", Reason: "not a number"}
	}
	if in.Amount <= 0 {
		return nil, ValidationError{Field: "amount", Reason: "must be positive"}
	}

	if in.Type != TypeIncome && in.Type != TypeExpense {
		return nil, ValidationError{Field: "type", Reason: "must be income or expense"}
	}

	if in.Date.IsZero() {
		return nil, ValidationError{Field: "date", Reason: "required"}
	}

	category := strings.TrimSpace(in.Category)
	if category == "" {
		category = DefaultCategory
	}

	method := strings.TrimSpace(strings.ToLower(in.PaymentMethod))
	if method == "" {
		method = PaymentCash
	}

	return &models.FinancialRecord{
		PetShopID:     in.PetShopID,
		Description:   desc,
		Amount:        in.Amount,
		Type:          in.Type,
		Category:      category,
		PaymentMethod: method,
		Date:          in.Date,
		AppointmentID: in.AppointmentID,
		SaleID:        in.SaleID,
	}, nil
}

// IsCashLike: método "cash" ou vazio conta como dinheiro vivo.
// Registros gravados antes do default explícito não têm método.
func IsCashLike(method string) bool {
	return method == "" || method == PaymentCash
}

// NormalizePaymentMethod aplica o mesmo tratamento de NewRecord: trim,
// minúsculas, vazio vira "cash".
func NormalizePaymentMethod(method string) string {
	m := strings.TrimSpace(strings.ToLower(method))
	if m == "" {
		return PaymentCash
	}
	return m
}

func IsValidPaymentMethod(method string) bool {
	switch method {
	case PaymentCash, PaymentCreditCard, PaymentDebitCard, PaymentPix:
		return true
	}
	return false
}
