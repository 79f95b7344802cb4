package booking

import (
	"regexp"
	"strings"
	"time"

	"salon-booking/internal/domain/catalog"
)

var phoneRegex = regexp.MustCompile(`^\+?[\d\s-]{10,}$`)

// ValidatePhone accepts an optional leading + followed by at least ten digits, spaces or dashes.
func ValidatePhone(phone string) error {
	if !phoneRegex.MatchString(strings.TrimSpace(phone)) {
		return ErrInvalidPhone
	}
	return nil
}

// Fields is the caller-supplied part of a Booking.
type Fields struct {
	FullName    string
	Phone       string
	ServiceID   string
	Gender      catalog.Gender
	Date        string
	TimeSlot    string
	Notes       string
	PaymentSlip string
}

type Booking struct {
	ID          string         `json:"id"`
	FullName    string         `json:"fullName"`
	Phone       string         `json:"phone"`
	ServiceID   string         `json:"serviceId"`
	Gender      catalog.Gender `json:"gender"`
	Date        string         `json:"date"`
	TimeSlot    string         `json:"timeSlot"`
	Notes       string         `json:"notes,omitempty"`
	PaymentSlip string         `json:"paymentSlip,omitempty"`
	Status      Status         `json:"status"`
	CreatedAt   time.Time      `json:"createdAt"`
}

// New builds a pending booking. It performs no validation.
func New(id string, f Fields, createdAt time.Time) Booking {
	return Booking{
		ID:          id,
		FullName:    f.FullName,
		Phone:       f.Phone,
		ServiceID:   f.ServiceID,
		Gender:      f.Gender,
		Date:        f.Date,
		TimeSlot:    f.TimeSlot,
		Notes:       f.Notes,
		PaymentSlip: f.PaymentSlip,
		Status:      StatusPending,
		CreatedAt:   createdAt,
	}
}

// Holds reports whether b occupies the given date and time.
func (b Booking) Holds(date, timeSlot string) bool {
	return b.Status.IsBlocking() && b.Date == date && b.TimeSlot == timeSlot
}

func (b Booking) HasPaymentSlip() bool {
	return b.PaymentSlip != ""
}
