package appointment

import (
	"context"
	"time"

	"github.com/petshopsuite/petshop-api/internal/audit"
	domain "github.com/petshopsuite/petshop-api/internal/domain/appointment"
	"github.com/petshopsuite/petshop-api/internal/httperr"
	"github.com/petshopsuite/petshop-api/internal/models"
	"github.com/petshopsuite/petshop-api/internal/timezone"
)

// ======================================================
// INPUT
// ======================================================

type CreateAppointmentInput struct {
	PetShopID uint
	GroomerID uint

	ClientName  string
	ClientPhone string
	ClientEmail string

	PetName    string
	PetSpecies string

	ServiceID uint

	Date  string
	Time  string
	Notes string
}

// ======================================================
// USE CASE
// ======================================================

type CreateAppointment struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewCreateAppointment(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *CreateAppointment {
	return &CreateAppointment{
		repo:  repo,
		audit: audit,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CreateAppointment) Execute(
	ctx context.Context,
	in CreateAppointmentInput,
) (*models.Appointment, error) {

	shop, err := uc.repo.GetPetShopByID(ctx, in.PetShopID)
	if err != nil {
		return nil, err
	}

	start, err := time.ParseInLocation(
		"2006-01-02 15:04",
		in.Date+" "+in.Time,
		timezone.Location(shop.Timezone),
	)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_date_or_time")
	}

	minAdvance := shop.MinAdvanceMinutes
	if minAdvance <= 0 {
		minAdvance = 120
	}

	now := timezone.NowIn(shop.Timezone)
	if start.Before(now.Add(time.Duration(minAdvance) * time.Minute)) {
		return nil, httperr.ErrBusiness("too_soon")
	}

	svc, err := uc.repo.GetService(ctx, in.PetShopID, in.ServiceID)
	if err != nil {
		return nil, httperr.ErrBusiness("service_not_found")
	}

	end := start.Add(time.Duration(svc.DurationMin) * time.Minute)

	ok, err := uc.repo.IsWithinWorkingHours(ctx, in.GroomerID, start, end)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, httperr.ErrBusiness("outside_working_hours")
	}

	client, err := uc.repo.GetOrCreateClient(
		ctx,
		in.PetShopID,
		in.ClientName,
		in.ClientPhone,
		in.ClientEmail,
	)
	if err != nil {
		return nil, err
	}

	pet, err := uc.repo.GetOrCreatePet(
		ctx,
		in.PetShopID,
		client.ID,
		in.PetName,
		in.PetSpecies,
	)
	if err != nil {
		return nil, err
	}

	if err := uc.repo.AssertNoTimeConflict(ctx, in.GroomerID, start, end); err != nil {
		return nil, err
	}

	ap := &models.Appointment{
		PetShopID:      in.PetShopID,
		GroomerID:      in.GroomerID,
		ClientID:       client.ID,
		PetID:          pet.ID,
		GroomServiceID: svc.ID,
		StartTime:      start,
		EndTime:        end,
		Status:         string(domain.InitialStatus()),
		Notes:          in.Notes,
	}

	if err := uc.repo.CreateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		PetShopID: in.PetShopID,
		UserID:    &in.GroomerID,
		Action:    "appointment_created",
		Entity:    "appointment",
		EntityID:  &ap.ID,
	})

	return ap, nil
}
