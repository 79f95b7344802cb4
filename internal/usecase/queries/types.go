package queries

import (
	"time"

	"salon-booking/internal/domain/availability"
	"salon-booking/internal/domain/booking"
	"salon-booking/internal/domain/catalog"

	"github.com/shopspring/decimal"
)

// ServiceLookup resolves a service id against the catalog.
type ServiceLookup interface {
	GetServiceByID(id string) (catalog.Service, bool)
}

// ServiceView represents read-optimized service data
type ServiceView struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	DurationMin int             `json:"duration"`
	Gender      catalog.Gender  `json:"gender"`
	Image       *string         `json:"image,omitempty"`
}

func NewServiceView(s catalog.Service) *ServiceView {
	return &ServiceView{
		ID:          s.ID(),
		Name:        s.Name(),
		Description: s.Description(),
		Price:       s.Price(),
		DurationMin: s.DurationMin(),
		Gender:      s.Gender(),
		Image:       s.Image(),
	}
}

// BookingView is a booking joined with its service. Service is nil when the
// id no longer resolves against the catalog.
type BookingView struct {
	ID          string         `json:"id"`
	FullName    string         `json:"fullName"`
	Phone       string         `json:"phone"`
	ServiceID   string         `json:"serviceId"`
	Gender      catalog.Gender `json:"gender"`
	Date        string         `json:"date"`
	TimeSlot    string         `json:"timeSlot"`
	Notes       string         `json:"notes,omitempty"`
	PaymentSlip string         `json:"paymentSlip,omitempty"`
	Status      booking.Status `json:"status"`
	CreatedAt   time.Time      `json:"createdAt"`
	Service     *ServiceView   `json:"service,omitempty"`
}

func NewBookingView(b booking.Booking, services ServiceLookup) *BookingView {
	v := &BookingView{
		ID:          b.ID,
		FullName:    b.FullName,
		Phone:       b.Phone,
		ServiceID:   b.ServiceID,
		Gender:      b.Gender,
		Date:        b.Date,
		TimeSlot:    b.TimeSlot,
		Notes:       b.Notes,
		PaymentSlip: b.PaymentSlip,
		Status:      b.Status,
		CreatedAt:   b.CreatedAt,
	}
	if svc, ok := services.GetServiceByID(b.ServiceID); ok {
		v.Service = NewServiceView(svc)
	}
	return v
}

// BookingSummary holds the admin dashboard counters.
type BookingSummary struct {
	Total    int `json:"total"`
	Pending  int `json:"pending"`
	Approved int `json:"approved"`
	Rejected int `json:"rejected"`
}

type AvailabilityView struct {
	ID             string                  `json:"id"`
	Type           availability.Type       `json:"type"`
	StartDate      string                  `json:"startDate"`
	EndDate        string                  `json:"endDate"`
	TimeSlots      []availability.TimeSlot `json:"timeSlots"`
	AvailableSlots int                     `json:"availableSlots"`
}

func NewAvailabilityView(r availability.Range) *AvailabilityView {
	return &AvailabilityView{
		ID:             r.ID,
		Type:           r.Type,
		StartDate:      r.StartDate,
		EndDate:        r.EndDate,
		TimeSlots:      append([]availability.TimeSlot(nil), r.TimeSlots...),
		AvailableSlots: r.AvailableCount(),
	}
}

// SlotView is one time slot as seen by a customer picking a time.
type SlotView struct {
	ID         string `json:"id"`
	Time       string `json:"time"`
	Available  bool   `json:"isAvailable"`
	Booked     bool   `json:"isBooked"`
	Selectable bool   `json:"isSelectable"`
}

type DateSlotsView struct {
	Date    string     `json:"date"`
	RangeID string     `json:"rangeId,omitempty"`
	Slots   []SlotView `json:"slots"`
}

// DraftView is the confirmation step: the draft, its resolved service and
// what is still missing before it can be submitted.
type DraftView struct {
	Draft         booking.Draft `json:"draft"`
	Service       *ServiceView  `json:"service,omitempty"`
	MissingFields []string      `json:"missingFields"`
	Complete      bool          `json:"complete"`
}

func NewDraftView(d booking.Draft, services ServiceLookup) *DraftView {
	missing := d.MissingFields()
	if missing == nil {
		missing = []string{}
	}
	v := &DraftView{
		Draft:         d,
		MissingFields: missing,
		Complete:      len(missing) == 0,
	}
	if d.ServiceID != nil {
		if svc, ok := services.GetServiceByID(*d.ServiceID); ok {
			v.Service = NewServiceView(svc)
		}
	}
	return v
}
