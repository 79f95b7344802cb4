package request

import (
	"salon-booking/internal/domain/availability"
	"salon-booking/internal/pkg/patch"
)

type CreateAvailabilityRequest struct {
	Type      string `json:"type" binding:"required,oneof=daily weekly monthly"`
	StartDate string `json:"startDate" binding:"required,datetime=2006-01-02"`
	EndDate   string `json:"endDate" binding:"required,datetime=2006-01-02"`
	OpenTime  string `json:"openTime" binding:"omitempty,datetime=15:04"`
	CloseTime string `json:"closeTime" binding:"omitempty,datetime=15:04"`
}

// ToDomain falls back to the standard 09:00-19:00 day for omitted times.
func (r *CreateAvailabilityRequest) ToDomain() (availability.Type, availability.Hours, error) {
	if r.StartDate == "" || r.EndDate == "" {
		return "", availability.Hours{}, availability.ErrMissingDates
	}
	typ, err := availability.NewType(r.Type)
	if err != nil {
		return "", availability.Hours{}, err
	}
	open := orDefault(r.OpenTime, availability.FormatHour(availability.DefaultHours.Open))
	closing := orDefault(r.CloseTime, availability.FormatHour(availability.DefaultHours.Close))
	hours, err := availability.ParseHours(open, closing)
	if err != nil {
		return "", availability.Hours{}, err
	}
	return typ, hours, nil
}

type UpdateAvailabilityRequest struct {
	Type      *string `json:"type" binding:"omitempty,oneof=daily weekly monthly"`
	StartDate *string `json:"startDate" binding:"omitempty,datetime=2006-01-02"`
	EndDate   *string `json:"endDate" binding:"omitempty,datetime=2006-01-02"`
	OpenTime  *string `json:"openTime" binding:"omitempty,datetime=15:04"`
	CloseTime *string `json:"closeTime" binding:"omitempty,datetime=15:04"`
	// Slots toggles availability by time, e.g. {"13:00": false}.
	Slots map[string]bool `json:"slots"`
}

// ToDomain builds the patch against the range being updated. New hours
// regenerate the slot list; the missing end of the pair comes from existing.
func (r *UpdateAvailabilityRequest) ToDomain(existing availability.Range) (availability.Patch, error) {
	var p availability.Patch

	if r.Type != nil {
		typ, err := availability.NewType(*r.Type)
		if err != nil {
			return availability.Patch{}, err
		}
		p.Type = &typ
	}
	p.StartDate = r.StartDate
	p.EndDate = r.EndDate

	slots := existing.TimeSlots
	if r.OpenTime != nil || r.CloseTime != nil {
		current := currentHours(existing)
		open := patch.Coalesce(r.OpenTime, availability.FormatHour(current.Open))
		closing := patch.Coalesce(r.CloseTime, availability.FormatHour(current.Close))
		hours, err := availability.ParseHours(open, closing)
		if err != nil {
			return availability.Patch{}, err
		}
		slots = availability.GenerateHourlySlots(hours)
		p.TimeSlots = &slots
	}
	if len(r.Slots) > 0 {
		toggled := availability.WithSlotAvailability(slots, r.Slots)
		p.TimeSlots = &toggled
	}
	return p, nil
}

func currentHours(r availability.Range) availability.Hours {
	if len(r.TimeSlots) == 0 {
		return availability.DefaultHours
	}
	open, err := availability.ParseClock(r.TimeSlots[0].Time)
	if err != nil {
		return availability.DefaultHours
	}
	closing, err := availability.ParseClock(r.TimeSlots[len(r.TimeSlots)-1].Time)
	if err != nil {
		return availability.DefaultHours
	}
	return availability.Hours{Open: open, Close: closing}
}

func orDefault(v, fallback string) string {
	if v == "" {
		return fallback
	}
	return v
}
