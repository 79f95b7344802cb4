package commands

import (
	"context"
	"log/slog"

	"salon-booking/internal/domain/booking"
	reqdto "salon-booking/internal/handler/dto/request"
	"salon-booking/internal/infra"
	"salon-booking/internal/pkg/config"
	"salon-booking/internal/pkg/errs"
	"salon-booking/internal/usecase/queries"
)

var (
	ErrBookingNotFound         = queries.ErrBookingNotFound
	ErrIncompleteDraft         = errs.New("booking draft is incomplete")
	ErrInvalidBooking          = errs.New("invalid booking")
	ErrSlotUnavailable         = errs.New("time slot unavailable")
	ErrInvalidStatus           = errs.New("invalid booking status")
	ErrInvalidStatusTransition = errs.New("invalid booking status transition")
)

type BookingCommands interface {
	// SubmitDraft turns the current draft into a pending booking and clears the draft.
	SubmitDraft(ctx context.Context) (*queries.BookingView, error)
	Create(ctx context.Context, req reqdto.CreateBookingRequest) (*queries.BookingView, error)
	UpdateStatus(ctx context.Context, id string, status string) (*queries.BookingView, error)
}

type bookingUseCaseImpl struct {
	store  BookingStore
	cfg    config.BookingConfig
	logger *slog.Logger
}

func NewBookingUseCase(store BookingStore, cfg config.BookingConfig, logger *slog.Logger) BookingCommands {
	return &bookingUseCaseImpl{store: store, cfg: cfg, logger: logger}
}

func (uc *bookingUseCaseImpl) SubmitDraft(ctx context.Context) (*queries.BookingView, error) {
	b, err := uc.store.SubmitCurrentBooking(func(draft booking.Draft) (booking.Fields, error) {
		fields, err := draft.ToFields()
		if err != nil {
			return booking.Fields{}, errs.Mark(err, ErrIncompleteDraft)
		}
		if err := uc.validate(fields); err != nil {
			return booking.Fields{}, err
		}
		return fields, nil
	}, uc.cfg.EnforceSlotConflicts)
	if err != nil {
		return nil, slotConflict(err)
	}
	return queries.NewBookingView(b, uc.store), nil
}

func (uc *bookingUseCaseImpl) Create(ctx context.Context, req reqdto.CreateBookingRequest) (*queries.BookingView, error) {
	fields, err := req.ToDomain()
	if err != nil {
		if errs.Is(err, booking.ErrUnsupportedSlipType) {
			return nil, errs.Mark(err, ErrUnsupportedSlip)
		}
		return nil, errs.Mark(err, ErrInvalidBooking)
	}

	b, err := uc.create(ctx, fields)
	if err != nil {
		return nil, err
	}
	return queries.NewBookingView(b, uc.store), nil
}

func (uc *bookingUseCaseImpl) create(ctx context.Context, fields booking.Fields) (booking.Booking, error) {
	if err := uc.validate(fields); err != nil {
		return booking.Booking{}, err
	}

	if !uc.cfg.EnforceSlotConflicts {
		return uc.store.AddBooking(fields), nil
	}

	b, err := uc.store.ReserveBooking(fields)
	if err != nil {
		return booking.Booking{}, slotConflict(err)
	}
	return b, nil
}

func (uc *bookingUseCaseImpl) validate(fields booking.Fields) error {
	if err := checkService(uc.store, fields.ServiceID, &fields.Gender); err != nil {
		return err
	}
	if err := booking.ValidatePhone(fields.Phone); err != nil {
		return errs.Mark(err, ErrInvalidBooking)
	}
	return nil
}

func slotConflict(err error) error {
	if infra.IsKind(err, infra.KindConflict) {
		return errs.Mark(err, ErrSlotUnavailable)
	}
	return err
}

func (uc *bookingUseCaseImpl) UpdateStatus(ctx context.Context, id string, status string) (*queries.BookingView, error) {
	next, err := booking.NewStatus(status)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidStatus)
	}

	if uc.cfg.StrictStatusTransitions {
		current, ok := uc.store.Booking(id)
		if !ok {
			return nil, ErrBookingNotFound
		}
		if !booking.CanTransition(current.Status, next) {
			uc.logger.InfoContext(ctx, "booking status change refused",
				"booking_id", id, "from", current.Status, "to", next)
			return nil, errs.Mark(booking.ErrInvalidStatusTransition, ErrInvalidStatusTransition)
		}
	}

	b, ok := uc.store.UpdateBookingStatus(id, next)
	if !ok {
		return nil, ErrBookingNotFound
	}
	return queries.NewBookingView(b, uc.store), nil
}
