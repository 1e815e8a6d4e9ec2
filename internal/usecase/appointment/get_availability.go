package appointment

import (
	"context"
	"time"

	domain "github.com/petshopsuite/petshop-api/internal/domain/appointment"
	"github.com/petshopsuite/petshop-api/internal/httperr"
)

type GetAvailability struct {
	repo domain.Repository
}

func NewGetAvailability(repo domain.Repository) *GetAvailability {
	return &GetAvailability{repo: repo}
}

// busyInterval é um trecho do dia indisponível para novos agendamentos:
// almoço ou agendamento já marcado.
type busyInterval struct {
	start, end time.Time
}

// Execute gera os horários livres do tosador para um dia, em passos do
// tamanho do serviço. Dia sem expediente devolve lista vazia, não erro.
func (uc *GetAvailability) Execute(
	ctx context.Context,
	in domain.AvailabilityInput,
) ([]domain.TimeSlot, error) {

	svc, err := uc.repo.GetService(ctx, in.PetShopID, in.ServiceID)
	if err != nil {
		return nil, httperr.ErrBusiness("service_not_found")
	}

	wh, err := uc.repo.GetWorkingHours(ctx, in.GroomerID, int(in.Date.Weekday()))
	if err != nil || !wh.Active {
		return []domain.TimeSlot{}, nil
	}

	atHM := func(hm string) time.Time {
		t, _ := time.Parse("15:04", hm)
		return time.Date(
			in.Date.Year(), in.Date.Month(), in.Date.Day(),
			t.Hour(), t.Minute(), 0, 0,
			in.Date.Location(),
		)
	}

	dayStart, dayEnd := atHM(wh.StartTime), atHM(wh.EndTime)

	var busy []busyInterval
	if wh.LunchStart != "" && wh.LunchEnd != "" {
		busy = append(busy, busyInterval{atHM(wh.LunchStart), atHM(wh.LunchEnd)})
	}

	booked, err := uc.repo.ListAppointmentsForDay(ctx, in.GroomerID, dayStart, dayEnd)
	if err != nil {
		return nil, err
	}
	for _, ap := range booked {
		busy = append(busy, busyInterval{ap.StartTime, ap.EndTime})
	}

	step := time.Duration(svc.DurationMin) * time.Minute
	// Serviço com duração inválida no catálogo não oferece horário
	// nenhum; um passo não positivo travaria a varredura abaixo.
	if step <= 0 {
		return []domain.TimeSlot{}, nil
	}

	slots := []domain.TimeSlot{}

	for cur := dayStart; !cur.Add(step).After(dayEnd); cur = cur.Add(step) {
		end := cur.Add(step)

		free := true
		for _, b := range busy {
			if cur.Before(b.end) && end.After(b.start) {
				free = false
				break
			}
		}
		if free {
			slots = append(slots, domain.TimeSlot{
				Start: cur.Format("15:04"),
				End:   end.Format("15:04"),
			})
		}
	}

	return slots, nil
}
