package api

import (
	"errors"
	"net/http"

	"salon-booking/internal/domain/booking"
	"salon-booking/internal/handler/httperr"
	"salon-booking/internal/pkg/errs"
	"salon-booking/internal/usecase/commands"
	"salon-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

// abortWithUseCaseError maps use-case sentinels to HTTP statuses.
func abortWithUseCaseError(c *gin.Context, err error, fallback string) {
	switch {
	case errs.IsAny(err, queries.ErrServiceNotFound, queries.ErrBookingNotFound, queries.ErrRangeNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Not found", nil)
	case errs.Is(err, commands.ErrIncompleteDraft):
		var mf *booking.MissingFieldsError
		var detail any
		if errors.As(err, &mf) {
			detail = gin.H{"missingFields": mf.Fields}
		}
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Booking details are incomplete", detail)
	case errs.Is(err, commands.ErrServiceGenderMismatch):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Service is not offered for the selected gender", nil)
	case errs.IsAny(err,
		commands.ErrInvalidRange,
		commands.ErrInvalidDraft,
		commands.ErrInvalidBooking,
		commands.ErrInvalidStatus,
		queries.ErrInvalidFilter,
		queries.ErrInvalidDate,
	):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", err.Error())
	case errs.Is(err, commands.ErrSlotUnavailable):
		httperr.AbortWithError(c, http.StatusConflict, err, "Time slot is already booked", nil)
	case errs.Is(err, commands.ErrInvalidStatusTransition):
		httperr.AbortWithError(c, http.StatusConflict, err, "Only pending bookings can change status", nil)
	case errs.Is(err, queries.ErrDateUnavailable):
		httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "No availability on this date", nil)
	case errs.Is(err, commands.ErrUnsupportedSlip):
		httperr.AbortWithError(c, http.StatusUnsupportedMediaType, err, "Payment slip must be a JPEG or PNG image", nil)
	case errs.Is(err, commands.ErrSlipTooLarge):
		httperr.AbortWithError(c, http.StatusRequestEntityTooLarge, err, "Payment slip is too large", nil)
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, fallback, nil)
	}
}
