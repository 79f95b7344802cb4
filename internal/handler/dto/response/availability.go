package response

import "salon-booking/internal/usecase/queries"

type TimeSlotResponse struct {
	ID          string `json:"id"`
	Time        string `json:"time"`
	IsAvailable bool   `json:"isAvailable"`
}

type AvailabilityResponse struct {
	ID             string             `json:"id"`
	Type           string             `json:"type"`
	StartDate      string             `json:"startDate"`
	EndDate        string             `json:"endDate"`
	TimeSlots      []TimeSlotResponse `json:"timeSlots"`
	AvailableSlots int                `json:"availableSlots"`
}

func FromAvailabilityView(v *queries.AvailabilityView) *AvailabilityResponse {
	slots := make([]TimeSlotResponse, len(v.TimeSlots))
	for i, s := range v.TimeSlots {
		slots[i] = TimeSlotResponse{ID: s.ID, Time: s.Time, IsAvailable: s.IsAvailable}
	}
	return &AvailabilityResponse{
		ID:             v.ID,
		Type:           v.Type.String(),
		StartDate:      v.StartDate,
		EndDate:        v.EndDate,
		TimeSlots:      slots,
		AvailableSlots: v.AvailableSlots,
	}
}

func FromAvailabilityList(items []*queries.AvailabilityView) []*AvailabilityResponse {
	res := make([]*AvailabilityResponse, len(items))
	for i, it := range items {
		res[i] = FromAvailabilityView(it)
	}
	return res
}

type SlotResponse struct {
	ID           string `json:"id"`
	Time         string `json:"time"`
	IsAvailable  bool   `json:"isAvailable"`
	IsBooked     bool   `json:"isBooked"`
	IsSelectable bool   `json:"isSelectable"`
}

type DateSlotsResponse struct {
	Date    string         `json:"date"`
	RangeID string         `json:"rangeId,omitempty"`
	Slots   []SlotResponse `json:"slots"`
}

func FromDateSlotsView(v *queries.DateSlotsView) *DateSlotsResponse {
	slots := make([]SlotResponse, len(v.Slots))
	for i, s := range v.Slots {
		slots[i] = SlotResponse{
			ID:           s.ID,
			Time:         s.Time,
			IsAvailable:  s.Available,
			IsBooked:     s.Booked,
			IsSelectable: s.Selectable,
		}
	}
	return &DateSlotsResponse{Date: v.Date, RangeID: v.RangeID, Slots: slots}
}
