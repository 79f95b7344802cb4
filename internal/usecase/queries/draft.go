package queries

import (
	"context"

	"salon-booking/internal/domain/booking"
)

type DraftReadStore interface {
	ServiceLookup
	CurrentBooking() booking.Draft
}

type DraftQueries interface {
	Current(ctx context.Context) (*DraftView, error)
}

type draftQueriesImpl struct {
	store DraftReadStore
}

func NewDraftQueries(store DraftReadStore) DraftQueries {
	return &draftQueriesImpl{store: store}
}

func (q *draftQueriesImpl) Current(ctx context.Context) (*DraftView, error) {
	return NewDraftView(q.store.CurrentBooking(), q.store), nil
}
