package appointment

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/petshopsuite/petshop-api/internal/audit"
	domain "github.com/petshopsuite/petshop-api/internal/domain/appointment"
	"github.com/petshopsuite/petshop-api/internal/domain/finance"
	"github.com/petshopsuite/petshop-api/internal/httperr"
	"github.com/petshopsuite/petshop-api/internal/models"
	"github.com/petshopsuite/petshop-api/internal/timezone"
)

// LedgerWriteError: o passo 1 (lançamento no livro-caixa) falhou.
// Nada foi escrito; o agendamento continua como estava.
type LedgerWriteError struct {
	Err error
}

func (e *LedgerWriteError) Error() string {
	return fmt.Sprintf("ledger write failed: %v", e.Err)
}

func (e *LedgerWriteError) Unwrap() error {
	return e.Err
}

// PartialCompletionError: a receita foi lançada mas o agendamento não
// mudou de status. Carrega o id do lançamento para o chamador retomar
// só o passo 2, sem risco de receita duplicada.
type PartialCompletionError struct {
	RecordID uint
	Err      error
}

func (e *PartialCompletionError) Error() string {
	return fmt.Sprintf("ledger entry %d created but status update failed: %v", e.RecordID, e.Err)
}

func (e *PartialCompletionError) Unwrap() error {
	return e.Err
}

type CompleteAppointment struct {
	repo   domain.Repository
	ledger finance.Repository
	audit  *audit.Dispatcher
}

func NewCompleteAppointment(
	repo domain.Repository,
	ledger finance.Repository,
	audit *audit.Dispatcher,
) *CompleteAppointment {
	return &CompleteAppointment{
		repo:   repo,
		ledger: ledger,
		audit:  audit,
	}
}

type CompleteAppointmentInput struct {
	PetShopID     uint
	GroomerID     uint
	AppointmentID uint

	// Método de pagamento informado no balcão; vazio vira "cash".
	PaymentMethod string
}

// Execute conclui um agendamento em dois passos não atômicos, sempre
// nesta ordem: primeiro a receita no livro-caixa, depois o status.
// Uma queda entre os passos deixa receita lançada para um agendamento
// ainda não concluído — detectável e retomável. A ordem inversa
// deixaria um agendamento concluído sem receita, invisível para sempre.
func (uc *CompleteAppointment) Execute(
	ctx context.Context,
	in CompleteAppointmentInput,
) (*models.Appointment, error) {

	shop, err := uc.repo.GetPetShopByID(ctx, in.PetShopID)
	if err != nil {
		return nil, err
	}

	ap, err := uc.repo.GetAppointmentForGroomer(ctx, in.AppointmentID, in.GroomerID)
	if err != nil {
		return nil, httperr.ErrBusiness("appointment_not_found")
	}

	if err := domain.CanComplete(domain.Status(ap.Status)); err != nil {
		return nil, err
	}

	now := timezone.NowIn(shop.Timezone)

	// Serviço sumiu do catálogo → receita zero, não erro. O agendamento
	// ainda precisa ser concluído.
	var amount float64
	description := "Serviço concluído"
	if svc, err := uc.repo.GetService(ctx, in.PetShopID, ap.GroomServiceID); err == nil {
		amount = svc.Price
		description = svc.Name
	}

	recordID, err := uc.appendLedgerEntry(ctx, in, ap, description, amount, timezone.DayOf(now))
	if err != nil {
		return nil, &LedgerWriteError{Err: err}
	}

	if err := uc.repo.SetCompleted(ctx, ap.ID, now); err != nil {
		return nil, &PartialCompletionError{RecordID: recordID, Err: err}
	}

	// Reflete em memória a transição que o UPDATE condicional acabou de
	// gravar. O estado já foi validado antes do lançamento.
	if err := domain.Complete(ap, now); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		PetShopID: in.PetShopID,
		UserID:    &in.GroomerID,
		Action:    "appointment_completed",
		Entity:    "appointment",
		EntityID:  &ap.ID,
		Metadata: map[string]any{
			"financial_record_id": recordID,
			"amount":              amount,
		},
	})

	return ap, nil
}

// appendLedgerEntry grava a receita do agendamento. Se já existe um
// lançamento para ele (retomada depois de PartialCompletionError), o
// índice único devolve ErrDuplicateAppointment e o lançamento existente
// é reutilizado — nunca duplicamos receita.
func (uc *CompleteAppointment) appendLedgerEntry(
	ctx context.Context,
	in CompleteAppointmentInput,
	ap *models.Appointment,
	description string,
	amount float64,
	day time.Time,
) (uint, error) {

	rec, err := buildCompletionRecord(in, ap, description, amount, day)
	if err != nil {
		return 0, err
	}

	err = uc.ledger.Append(ctx, rec)
	if err == nil {
		return rec.ID, nil
	}

	if errors.Is(err, finance.ErrDuplicateAppointment) {
		existing, getErr := uc.ledger.GetByAppointmentID(ctx, in.PetShopID, ap.ID)
		if getErr != nil {
			return 0, getErr
		}
		return existing.ID, nil
	}

	return 0, err
}

func buildCompletionRecord(
	in CompleteAppointmentInput,
	ap *models.Appointment,
	description string,
	amount float64,
	day time.Time,
) (*models.FinancialRecord, error) {

	apID := ap.ID

	if amount <= 0 {
		// Valor zero ainda vira lançamento para manter o vínculo
		// agendamento ↔ receita rastreável; o construtor rejeita
		// amount <= 0, então montamos direto com o default de método.
		method := in.PaymentMethod
		if method == "" {
			method = finance.PaymentCash
		}
		return &models.FinancialRecord{
			PetShopID:     in.PetShopID,
			Description:   description,
			Amount:        0,
			Type:          finance.TypeIncome,
			Category:      finance.CategoryServices,
			PaymentMethod: method,
			Date:          day,
			AppointmentID: &apID,
		}, nil
	}

	return finance.NewRecord(finance.NewRecordInput{
		PetShopID:     in.PetShopID,
		Description:   description,
		Amount:        amount,
		Type:          finance.TypeIncome,
		Category:      finance.CategoryServices,
		PaymentMethod: in.PaymentMethod,
		Date:          day,
		AppointmentID: &apID,
	})
}
