package commands

import (
	"context"
	"log/slog"

	reqdto "salon-booking/internal/handler/dto/request"
	"salon-booking/internal/pkg/errs"
	"salon-booking/internal/usecase/queries"
)

var (
	ErrRangeNotFound = queries.ErrRangeNotFound
	ErrInvalidRange  = errs.New("invalid availability range")
)

type AvailabilityCommands interface {
	Create(ctx context.Context, req reqdto.CreateAvailabilityRequest) (*queries.AvailabilityView, error)
	Update(ctx context.Context, id string, req reqdto.UpdateAvailabilityRequest) (*queries.AvailabilityView, error)
	Remove(ctx context.Context, id string) error
}

type availabilityUseCaseImpl struct {
	store  AvailabilityStore
	logger *slog.Logger
}

func NewAvailabilityUseCase(store AvailabilityStore, logger *slog.Logger) AvailabilityCommands {
	return &availabilityUseCaseImpl{store: store, logger: logger}
}

func (uc *availabilityUseCaseImpl) Create(ctx context.Context, req reqdto.CreateAvailabilityRequest) (*queries.AvailabilityView, error) {
	typ, hours, err := req.ToDomain()
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidRange)
	}
	if req.StartDate > req.EndDate {
		uc.logger.WarnContext(ctx, "availability range ends before it starts",
			"start_date", req.StartDate, "end_date", req.EndDate)
	}

	r := uc.store.AddAvailabilityRange(typ, req.StartDate, req.EndDate, hours)
	return queries.NewAvailabilityView(r), nil
}

func (uc *availabilityUseCaseImpl) Update(ctx context.Context, id string, req reqdto.UpdateAvailabilityRequest) (*queries.AvailabilityView, error) {
	existing, ok := uc.store.AvailabilityRange(id)
	if !ok {
		return nil, ErrRangeNotFound
	}

	p, err := req.ToDomain(existing)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidRange)
	}
	if p.IsEmpty() {
		return queries.NewAvailabilityView(existing), nil
	}

	updated, ok := uc.store.UpdateAvailabilityRange(id, p)
	if !ok {
		// removed between the read and the write
		return nil, ErrRangeNotFound
	}
	if updated.IsInverted() {
		uc.logger.WarnContext(ctx, "availability range ends before it starts",
			"range_id", id, "start_date", updated.StartDate, "end_date", updated.EndDate)
	}
	return queries.NewAvailabilityView(updated), nil
}

func (uc *availabilityUseCaseImpl) Remove(ctx context.Context, id string) error {
	if !uc.store.RemoveAvailabilityRange(id) {
		return ErrRangeNotFound
	}
	return nil
}
