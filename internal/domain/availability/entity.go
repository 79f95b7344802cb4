package availability

import "strings"

type TimeSlot struct {
	ID          string `json:"id"`
	Time        string `json:"time"`
	IsAvailable bool   `json:"isAvailable"`
}

// Range is an admin-defined date span with its bookable hourly slots.
// Dates are opaque YYYY-MM-DD strings; startDate <= endDate is expected but not enforced.
type Range struct {
	ID        string     `json:"id"`
	Type      Type       `json:"type"`
	StartDate string     `json:"startDate"`
	EndDate   string     `json:"endDate"`
	TimeSlots []TimeSlot `json:"timeSlots"`
}

func NewRange(id string, typ Type, startDate, endDate string, hours Hours) Range {
	return Range{
		ID:        id,
		Type:      typ,
		StartDate: strings.TrimSpace(startDate),
		EndDate:   strings.TrimSpace(endDate),
		TimeSlots: GenerateHourlySlots(hours),
	}
}

// Covers compares ISO dates lexically, which matches calendar order for YYYY-MM-DD.
func (r Range) Covers(date string) bool {
	return r.StartDate <= date && date <= r.EndDate
}

func (r Range) IsInverted() bool {
	return r.StartDate > r.EndDate
}

func (r Range) SlotAt(time string) (TimeSlot, bool) {
	for _, s := range r.TimeSlots {
		if s.Time == time {
			return s, true
		}
	}
	return TimeSlot{}, false
}

func (r Range) AvailableCount() int {
	n := 0
	for _, s := range r.TimeSlots {
		if s.IsAvailable {
			n++
		}
	}
	return n
}
