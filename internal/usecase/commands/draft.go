package commands

import (
	"context"
	"log/slog"
	"time"

	"salon-booking/internal/domain/availability"
	"salon-booking/internal/domain/booking"
	"salon-booking/internal/domain/catalog"
	reqdto "salon-booking/internal/handler/dto/request"
	"salon-booking/internal/pkg/clock"
	"salon-booking/internal/pkg/config"
	"salon-booking/internal/pkg/errs"
	"salon-booking/internal/pkg/patch"
	"salon-booking/internal/usecase/queries"
)

var (
	ErrServiceNotFound       = queries.ErrServiceNotFound
	ErrServiceGenderMismatch = errs.New("service is not offered for the selected gender")
	ErrInvalidDraft          = errs.New("invalid booking draft")
	ErrUnsupportedSlip       = errs.New("unsupported payment slip type")
	ErrSlipTooLarge          = errs.New("payment slip too large")
)

type DraftCommands interface {
	Update(ctx context.Context, req reqdto.UpdateDraftRequest) (*queries.DraftView, error)
	AttachPaymentSlip(ctx context.Context, data []byte) (*queries.DraftView, error)
	ClearPaymentSlip(ctx context.Context) (*queries.DraftView, error)
	Reset(ctx context.Context) error
}

type draftUseCaseImpl struct {
	store  DraftStore
	cfg    config.BookingConfig
	logger *slog.Logger
}

func NewDraftUseCase(store DraftStore, cfg config.BookingConfig, logger *slog.Logger) DraftCommands {
	return &draftUseCaseImpl{store: store, cfg: cfg, logger: logger}
}

func (uc *draftUseCaseImpl) Update(ctx context.Context, req reqdto.UpdateDraftRequest) (*queries.DraftView, error) {
	p := req.ToDomain()
	if err := validateDraftPatch(p); err != nil {
		return nil, errs.Mark(err, ErrInvalidDraft)
	}

	d, err := uc.store.UpdateCurrentBooking(func(current booking.Draft) (booking.Draft, error) {
		// Picking another gender invalidates the chosen service.
		if p.Gender != nil && p.ServiceID == nil && !sameGender(current.Gender, p.Gender) {
			p.ServiceID = patch.Of("")
		}

		merged := current.Merge(p)
		if merged.ServiceID != nil {
			if err := checkService(uc.store, *merged.ServiceID, merged.Gender); err != nil {
				return booking.Draft{}, err
			}
		}
		return p, nil
	})
	if err != nil {
		return nil, err
	}
	return queries.NewDraftView(d, uc.store), nil
}

func (uc *draftUseCaseImpl) AttachPaymentSlip(ctx context.Context, data []byte) (*queries.DraftView, error) {
	size := int64(len(data))
	if uc.cfg.PaymentSlipMaxBytes > 0 && size > uc.cfg.PaymentSlipMaxBytes {
		return nil, errs.Mark(errs.Newf("%d bytes exceeds the %d byte limit", size, uc.cfg.PaymentSlipMaxBytes), ErrSlipTooLarge)
	}
	if uc.cfg.PaymentSlipRecommendedBytes > 0 && size > uc.cfg.PaymentSlipRecommendedBytes {
		uc.logger.WarnContext(ctx, "payment slip larger than recommended",
			"size_bytes", size, "recommended_bytes", uc.cfg.PaymentSlipRecommendedBytes)
	}

	slip, err := booking.EncodePaymentSlip(data)
	if err != nil {
		if errs.Is(err, booking.ErrUnsupportedSlipType) {
			return nil, errs.Mark(err, ErrUnsupportedSlip)
		}
		return nil, errs.Mark(err, ErrInvalidDraft)
	}

	d := uc.store.SetCurrentBooking(booking.Draft{PaymentSlip: &slip})
	return queries.NewDraftView(d, uc.store), nil
}

func (uc *draftUseCaseImpl) ClearPaymentSlip(ctx context.Context) (*queries.DraftView, error) {
	d := uc.store.SetCurrentBooking(booking.Draft{PaymentSlip: patch.Of("")})
	return queries.NewDraftView(d, uc.store), nil
}

func (uc *draftUseCaseImpl) Reset(ctx context.Context) error {
	uc.store.ResetCurrentBooking()
	return nil
}

// validateDraftPatch checks the fields a step sets. Empty values clear and are always accepted.
func validateDraftPatch(p booking.Draft) error {
	if p.Gender != nil && *p.Gender != "" && !p.Gender.IsValid() {
		return catalog.ErrInvalidGender
	}
	if p.Phone != nil && *p.Phone != "" {
		if err := booking.ValidatePhone(*p.Phone); err != nil {
			return err
		}
	}
	if p.Date != nil && *p.Date != "" {
		if _, err := time.Parse(clock.DateLayout, *p.Date); err != nil {
			return err
		}
	}
	if p.TimeSlot != nil && *p.TimeSlot != "" {
		if _, err := availability.ParseClock(*p.TimeSlot); err != nil {
			return err
		}
	}
	return nil
}

func checkService(services queries.ServiceLookup, serviceID string, gender *catalog.Gender) error {
	svc, ok := services.GetServiceByID(serviceID)
	if !ok {
		return ErrServiceNotFound
	}
	if gender != nil && svc.Gender() != *gender {
		return ErrServiceGenderMismatch
	}
	return nil
}

func sameGender(a, b *catalog.Gender) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}
