package appointment

import (
	"context"

	"github.com/petshopsuite/petshop-api/internal/audit"
	domain "github.com/petshopsuite/petshop-api/internal/domain/appointment"
	"github.com/petshopsuite/petshop-api/internal/httperr"
	"github.com/petshopsuite/petshop-api/internal/models"
)

type ConfirmAppointment struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewConfirmAppointment(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *ConfirmAppointment {
	return &ConfirmAppointment{
		repo:  repo,
		audit: audit,
	}
}

func (uc *ConfirmAppointment) Execute(
	ctx context.Context,
	petShopID uint,
	groomerID uint,
	appointmentID uint,
) (*models.Appointment, error) {

	ap, err := uc.repo.GetAppointmentForGroomer(ctx, appointmentID, groomerID)
	if err != nil {
		return nil, httperr.ErrBusiness("appointment_not_found")
	}

	if err := domain.Confirm(ap); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		PetShopID: petShopID,
		UserID:    &groomerID,
		Action:    "appointment_confirmed",
		Entity:    "appointment",
		EntityID:  &ap.ID,
	})

	return ap, nil
}
