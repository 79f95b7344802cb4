//go:build unit || e2e

package builder

import (
	"time"

	"salon-booking/internal/domain/booking"
	"salon-booking/internal/domain/catalog"
	reqdto "salon-booking/internal/handler/dto/request"
	"salon-booking/internal/usecase/queries"
)

type BookingBuilder struct {
	ID          string
	FullName    string
	Phone       string
	ServiceID   string
	Gender      catalog.Gender
	Date        string
	TimeSlot    string
	Notes       string
	PaymentSlip string
	Status      booking.Status
	CreatedAt   time.Time
}

func NewBookingBuilder() *BookingBuilder {
	return &BookingBuilder{
		ID:        "booking-100",
		FullName:  "Jane Doe",
		Phone:     "+1 555 123 4567",
		ServiceID: "women-1",
		Gender:    catalog.GenderWomen,
		Date:      "2025-02-06",
		TimeSlot:  "15:00",
		Notes:     "Window seat please",
		Status:    booking.StatusPending,
		CreatedAt: time.Date(2025, 2, 1, 9, 30, 0, 0, time.UTC),
	}
}

func (b *BookingBuilder) With(mutate func(*BookingBuilder)) *BookingBuilder {
	mutate(b)
	return b
}

// Build methods
func (b *BookingBuilder) BuildFields() booking.Fields {
	return booking.Fields{
		FullName:    b.FullName,
		Phone:       b.Phone,
		ServiceID:   b.ServiceID,
		Gender:      b.Gender,
		Date:        b.Date,
		TimeSlot:    b.TimeSlot,
		Notes:       b.Notes,
		PaymentSlip: b.PaymentSlip,
	}
}

func (b *BookingBuilder) BuildDomain() booking.Booking {
	bk := booking.New(b.ID, b.BuildFields(), b.CreatedAt)
	bk.Status = b.Status
	return bk
}

// BuildDraft returns a complete draft; clear fields on the result to make it partial.
func (b *BookingBuilder) BuildDraft() booking.Draft {
	d := booking.Draft{
		FullName:  strPtr(b.FullName),
		Phone:     strPtr(b.Phone),
		ServiceID: strPtr(b.ServiceID),
		Date:      strPtr(b.Date),
		TimeSlot:  strPtr(b.TimeSlot),
	}
	if b.Gender != "" {
		g := b.Gender
		d.Gender = &g
	}
	if b.Notes != "" {
		d.Notes = strPtr(b.Notes)
	}
	if b.PaymentSlip != "" {
		d.PaymentSlip = strPtr(b.PaymentSlip)
	}
	return d
}

func (b *BookingBuilder) BuildCreateRequestDTO() reqdto.CreateBookingRequest {
	return reqdto.CreateBookingRequest{
		FullName:    b.FullName,
		Phone:       b.Phone,
		ServiceID:   b.ServiceID,
		Gender:      b.Gender.String(),
		Date:        b.Date,
		TimeSlot:    b.TimeSlot,
		Notes:       b.Notes,
		PaymentSlip: b.PaymentSlip,
	}
}

func (b *BookingBuilder) BuildDraftRequestDTO() reqdto.UpdateDraftRequest {
	gender := b.Gender.String()
	return reqdto.UpdateDraftRequest{
		FullName:  strPtr(b.FullName),
		Phone:     strPtr(b.Phone),
		ServiceID: strPtr(b.ServiceID),
		Gender:    &gender,
		Date:      strPtr(b.Date),
		TimeSlot:  strPtr(b.TimeSlot),
		Notes:     strPtr(b.Notes),
	}
}

type catalogLookup struct{ *catalog.Catalog }

func (l catalogLookup) GetServiceByID(id string) (catalog.Service, bool) {
	return l.Lookup(id)
}

// BuildView resolves the service against the default catalog.
func (b *BookingBuilder) BuildView() *queries.BookingView {
	return queries.NewBookingView(b.BuildDomain(), catalogLookup{catalog.DefaultCatalog()})
}

func (b *BookingBuilder) BuildDraftView() *queries.DraftView {
	return queries.NewDraftView(b.BuildDraft(), catalogLookup{catalog.DefaultCatalog()})
}

// Fluent builder methods
func (b *BookingBuilder) WithID(id string) *BookingBuilder {
	b.ID = id
	return b
}

func (b *BookingBuilder) WithFullName(name string) *BookingBuilder {
	b.FullName = name
	return b
}

func (b *BookingBuilder) WithPhone(phone string) *BookingBuilder {
	b.Phone = phone
	return b
}

func (b *BookingBuilder) WithService(id string, gender catalog.Gender) *BookingBuilder {
	b.ServiceID = id
	b.Gender = gender
	return b
}

func (b *BookingBuilder) WithSlot(date, timeSlot string) *BookingBuilder {
	b.Date = date
	b.TimeSlot = timeSlot
	return b
}

func (b *BookingBuilder) WithNotes(notes string) *BookingBuilder {
	b.Notes = notes
	return b
}

func (b *BookingBuilder) WithPaymentSlip(slip string) *BookingBuilder {
	b.PaymentSlip = slip
	return b
}

func (b *BookingBuilder) WithStatus(status booking.Status) *BookingBuilder {
	b.Status = status
	return b
}

func (b *BookingBuilder) WithCreatedAt(createdAt time.Time) *BookingBuilder {
	b.CreatedAt = createdAt
	return b
}

func (b *BookingBuilder) AsClassicHaircut() *BookingBuilder {
	b.FullName = "John Smith"
	b.ServiceID = "men-1"
	b.Gender = catalog.GenderMen
	return b
}

func strPtr(s string) *string {
	return &s
}
