package appointment

import "time"

type AvailabilityInput struct {
	PetShopID uint
	GroomerID uint
	ServiceID uint
	Date      time.Time
}

type TimeSlot struct {
	Start string `json:"start"`
	End   string `json:"end"`
}
