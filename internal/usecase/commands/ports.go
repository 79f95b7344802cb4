package commands

import (
	"salon-booking/internal/domain/availability"
	"salon-booking/internal/domain/booking"
	"salon-booking/internal/domain/catalog"
)

// Write-side views of the salon store, one per command group.

type AvailabilityStore interface {
	AvailabilityRange(id string) (availability.Range, bool)
	AddAvailabilityRange(typ availability.Type, startDate, endDate string, hours availability.Hours) availability.Range
	UpdateAvailabilityRange(id string, p availability.Patch) (availability.Range, bool)
	RemoveAvailabilityRange(id string) bool
}

type DraftStore interface {
	GetServiceByID(id string) (catalog.Service, bool)
	SetCurrentBooking(p booking.Draft) booking.Draft
	UpdateCurrentBooking(prepare func(current booking.Draft) (booking.Draft, error)) (booking.Draft, error)
	ResetCurrentBooking()
}

type BookingStore interface {
	GetServiceByID(id string) (catalog.Service, bool)
	Booking(id string) (booking.Booking, bool)
	AddBooking(f booking.Fields) booking.Booking
	ReserveBooking(f booking.Fields) (booking.Booking, error)
	UpdateBookingStatus(id string, status booking.Status) (booking.Booking, bool)
	SubmitCurrentBooking(finalize func(booking.Draft) (booking.Fields, error), reserve bool) (booking.Booking, error)
}
