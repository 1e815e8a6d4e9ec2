package appointment

import (
	"context"
	"time"

	domain "github.com/petshopsuite/petshop-api/internal/domain/appointment"
	"github.com/petshopsuite/petshop-api/internal/models"
	"github.com/petshopsuite/petshop-api/internal/timezone"
)

type AppointmentListItem struct {
	ID          uint      `json:"id"`
	StartTime   time.Time `json:"start_time"`
	EndTime     time.Time `json:"end_time"`
	Status      string    `json:"status"`
	ClientName  string    `json:"client_name"`
	PetName     string    `json:"pet_name"`
	ServiceName string    `json:"service_name"`
}

type ListAppointmentsByDate struct {
	repo domain.Repository
}

func NewListAppointmentsByDate(repo domain.Repository) *ListAppointmentsByDate {
	return &ListAppointmentsByDate{repo: repo}
}

func (uc *ListAppointmentsByDate) Execute(
	ctx context.Context,
	groomerID uint,
	petShopID uint,
	date time.Time,
) ([]AppointmentListItem, error) {

	shop, err := uc.repo.GetPetShopByID(ctx, petShopID)
	if err != nil {
		return nil, err
	}

	loc := timezone.Location(shop.Timezone)

	start := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, loc)
	end := start.Add(24 * time.Hour)

	appointments, err := uc.repo.ListAppointmentsForPeriod(ctx, groomerID, start, end)
	if err != nil {
		return nil, err
	}

	return toListItems(appointments), nil
}

type ListAppointmentsByMonth struct {
	repo domain.Repository
}

func NewListAppointmentsByMonth(repo domain.Repository) *ListAppointmentsByMonth {
	return &ListAppointmentsByMonth{repo: repo}
}

func (uc *ListAppointmentsByMonth) Execute(
	ctx context.Context,
	groomerID uint,
	petShopID uint,
	year int,
	month int,
) ([]AppointmentListItem, error) {

	shop, err := uc.repo.GetPetShopByID(ctx, petShopID)
	if err != nil {
		return nil, err
	}

	loc := timezone.Location(shop.Timezone)

	start := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, loc)
	end := start.AddDate(0, 1, 0)

	appointments, err := uc.repo.ListAppointmentsForPeriod(ctx, groomerID, start, end)
	if err != nil {
		return nil, err
	}

	return toListItems(appointments), nil
}

func toListItems(appointments []models.Appointment) []AppointmentListItem {
	out := make([]AppointmentListItem, 0, len(appointments))
	for _, ap := range appointments {
		out = append(out, AppointmentListItem{
			ID:          ap.ID,
			StartTime:   ap.StartTime,
			EndTime:     ap.EndTime,
			Status:      ap.Status,
			ClientName:  ap.Client.Name,
			PetName:     ap.Pet.Name,
			ServiceName: ap.GroomService.Name,
		})
	}
	return out
}
