package appointment

import (
	"context"

	"github.com/petshopsuite/petshop-api/internal/audit"
	domain "github.com/petshopsuite/petshop-api/internal/domain/appointment"
	"github.com/petshopsuite/petshop-api/internal/httperr"
	"github.com/petshopsuite/petshop-api/internal/models"
	"github.com/petshopsuite/petshop-api/internal/timezone"
)

type CancelAppointment struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewCancelAppointment(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *CancelAppointment {
	return &CancelAppointment{
		repo:  repo,
		audit: audit,
	}
}

func (uc *CancelAppointment) Execute(
	ctx context.Context,
	petShopID uint,
	groomerID uint,
	appointmentID uint,
) (*models.Appointment, error) {

	shop, err := uc.repo.GetPetShopByID(ctx, petShopID)
	if err != nil {
		return nil, err
	}

	ap, err := uc.repo.GetAppointmentForGroomer(ctx, appointmentID, groomerID)
	if err != nil {
		return nil, httperr.ErrBusiness("appointment_not_found")
	}

	now := timezone.NowIn(shop.Timezone)
	if err := domain.Cancel(ap, now); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		PetShopID: petShopID,
		UserID:    &groomerID,
		Action:    "appointment_cancelled",
		Entity:    "appointment",
		EntityID:  &ap.ID,
	})

	return ap, nil
}
