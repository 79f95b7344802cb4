package queries

import (
	"context"

	"salon-booking/internal/domain/booking"
	"salon-booking/internal/pkg/errs"
)

var (
	ErrBookingNotFound = errs.New("booking not found")
	ErrInvalidFilter   = errs.New("invalid filter")
)

type BookingReadStore interface {
	ServiceLookup
	Bookings() []booking.Booking
	Booking(id string) (booking.Booking, bool)
}

type BookingQueries interface {
	// List returns bookings in creation order, filtered by status when set.
	List(ctx context.Context, status *booking.Status) ([]*BookingView, error)
	GetByID(ctx context.Context, id string) (*BookingView, error)
	Summary(ctx context.Context) (*BookingSummary, error)
}

type bookingQueriesImpl struct {
	store BookingReadStore
}

func NewBookingQueries(store BookingReadStore) BookingQueries {
	return &bookingQueriesImpl{store: store}
}

func (q *bookingQueriesImpl) List(ctx context.Context, status *booking.Status) ([]*BookingView, error) {
	if status != nil && !status.IsValid() {
		return nil, errs.Mark(booking.ErrInvalidStatus, ErrInvalidFilter)
	}

	views := []*BookingView{}
	for _, b := range q.store.Bookings() {
		if status != nil && b.Status != *status {
			continue
		}
		views = append(views, NewBookingView(b, q.store))
	}
	return views, nil
}

func (q *bookingQueriesImpl) GetByID(ctx context.Context, id string) (*BookingView, error) {
	b, ok := q.store.Booking(id)
	if !ok {
		return nil, ErrBookingNotFound
	}
	return NewBookingView(b, q.store), nil
}

func (q *bookingQueriesImpl) Summary(ctx context.Context) (*BookingSummary, error) {
	var s BookingSummary
	for _, b := range q.store.Bookings() {
		s.Total++
		switch b.Status {
		case booking.StatusPending:
			s.Pending++
		case booking.StatusApproved:
			s.Approved++
		case booking.StatusRejected:
			s.Rejected++
		}
	}
	return &s, nil
}
