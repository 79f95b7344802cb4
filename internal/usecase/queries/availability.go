package queries

import (
	"context"
	"log/slog"
	"slices"
	"time"

	"salon-booking/internal/domain/availability"
	"salon-booking/internal/pkg/clock"
	"salon-booking/internal/pkg/errs"
)

var (
	ErrRangeNotFound   = errs.New("availability range not found")
	ErrInvalidDate     = errs.New("date must be YYYY-MM-DD")
	ErrDateUnavailable = errs.New("no availability range covers the date")
)

type AvailabilityReadStore interface {
	AvailabilityRanges() []availability.Range
	AvailabilityRange(id string) (availability.Range, bool)
	BookedTimes(date string) []string
}

type AvailabilityQueries interface {
	List(ctx context.Context) ([]*AvailabilityView, error)
	GetByID(ctx context.Context, id string) (*AvailabilityView, error)
	// SlotsForDate is the time-selection step for a given date.
	SlotsForDate(ctx context.Context, date string) (*DateSlotsView, error)
}

type availabilityQueriesImpl struct {
	store                  AvailabilityReadStore
	requireRangeMembership bool
	logger                 *slog.Logger
}

func NewAvailabilityQueries(store AvailabilityReadStore, requireRangeMembership bool, logger *slog.Logger) AvailabilityQueries {
	return &availabilityQueriesImpl{
		store:                  store,
		requireRangeMembership: requireRangeMembership,
		logger:                 logger,
	}
}

func (q *availabilityQueriesImpl) List(ctx context.Context) ([]*AvailabilityView, error) {
	ranges := q.store.AvailabilityRanges()
	views := make([]*AvailabilityView, len(ranges))
	for i, r := range ranges {
		views[i] = NewAvailabilityView(r)
	}
	return views, nil
}

func (q *availabilityQueriesImpl) GetByID(ctx context.Context, id string) (*AvailabilityView, error) {
	r, ok := q.store.AvailabilityRange(id)
	if !ok {
		return nil, ErrRangeNotFound
	}
	return NewAvailabilityView(r), nil
}

func (q *availabilityQueriesImpl) SlotsForDate(ctx context.Context, date string) (*DateSlotsView, error) {
	if _, err := time.Parse(clock.DateLayout, date); err != nil {
		return nil, errs.Mark(err, ErrInvalidDate)
	}

	view := &DateSlotsView{Date: date, Slots: []SlotView{}}
	r, ok := q.selectRange(date)
	if !ok {
		if q.requireRangeMembership {
			return nil, ErrDateUnavailable
		}
		return view, nil
	}
	view.RangeID = r.ID

	booked := q.store.BookedTimes(date)
	for _, s := range r.TimeSlots {
		isBooked := slices.Contains(booked, s.Time)
		view.Slots = append(view.Slots, SlotView{
			ID:         s.ID,
			Time:       s.Time,
			Available:  s.IsAvailable,
			Booked:     isBooked,
			Selectable: s.IsAvailable && !isBooked,
		})
	}
	return view, nil
}

// selectRange picks the first range covering date, or simply the first range
// when membership is not enforced.
func (q *availabilityQueriesImpl) selectRange(date string) (availability.Range, bool) {
	ranges := q.store.AvailabilityRanges()
	if !q.requireRangeMembership {
		if len(ranges) == 0 {
			return availability.Range{}, false
		}
		if !ranges[0].Covers(date) {
			q.logger.Debug("offering slots from a range that does not cover the date",
				"range_id", ranges[0].ID, "date", date)
		}
		return ranges[0], true
	}
	for _, r := range ranges {
		if r.Covers(date) {
			return r, true
		}
	}
	return availability.Range{}, false
}
