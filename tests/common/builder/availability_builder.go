//go:build unit || e2e

package builder

import (
	"salon-booking/internal/domain/availability"
	reqdto "salon-booking/internal/handler/dto/request"
	"salon-booking/internal/usecase/queries"
)

type AvailabilityBuilder struct {
	ID        string
	Type      availability.Type
	StartDate string
	EndDate   string
	OpenTime  string
	CloseTime string
}

func NewAvailabilityBuilder() *AvailabilityBuilder {
	return &AvailabilityBuilder{
		ID:        "avail-100",
		Type:      availability.TypeWeekly,
		StartDate: "2025-03-01",
		EndDate:   "2025-03-07",
		OpenTime:  "09:00",
		CloseTime: "19:00",
	}
}

func (a *AvailabilityBuilder) With(mutate func(*AvailabilityBuilder)) *AvailabilityBuilder {
	mutate(a)
	return a
}

// Build methods
func (a *AvailabilityBuilder) BuildHours() (availability.Hours, error) {
	return availability.ParseHours(a.OpenTime, a.CloseTime)
}

func (a *AvailabilityBuilder) BuildDomain() (availability.Range, error) {
	hours, err := a.BuildHours()
	if err != nil {
		return availability.Range{}, err
	}
	return availability.NewRange(a.ID, a.Type, a.StartDate, a.EndDate, hours), nil
}

func (a *AvailabilityBuilder) BuildCreateRequestDTO() reqdto.CreateAvailabilityRequest {
	return reqdto.CreateAvailabilityRequest{
		Type:      a.Type.String(),
		StartDate: a.StartDate,
		EndDate:   a.EndDate,
		OpenTime:  a.OpenTime,
		CloseTime: a.CloseTime,
	}
}

func (a *AvailabilityBuilder) BuildView() *queries.AvailabilityView {
	r, err := a.BuildDomain()
	if err != nil {
		panic("AvailabilityBuilder.BuildView: " + err.Error())
	}
	return queries.NewAvailabilityView(r)
}

// Fluent builder methods
func (a *AvailabilityBuilder) WithID(id string) *AvailabilityBuilder {
	a.ID = id
	return a
}

func (a *AvailabilityBuilder) WithType(t availability.Type) *AvailabilityBuilder {
	a.Type = t
	return a
}

func (a *AvailabilityBuilder) WithDates(start, end string) *AvailabilityBuilder {
	a.StartDate = start
	a.EndDate = end
	return a
}

func (a *AvailabilityBuilder) WithHours(open, closing string) *AvailabilityBuilder {
	a.OpenTime = open
	a.CloseTime = closing
	return a
}
