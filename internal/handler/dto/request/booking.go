package request

import (
	"strings"

	"salon-booking/internal/domain/booking"
	"salon-booking/internal/domain/catalog"
)

type CreateBookingRequest struct {
	FullName    string `json:"fullName" binding:"required,max=200"`
	Phone       string `json:"phone" binding:"required,phone"`
	ServiceID   string `json:"serviceId" binding:"required"`
	Gender      string `json:"gender" binding:"required,oneof=men women"`
	Date        string `json:"date" binding:"required,datetime=2006-01-02"`
	TimeSlot    string `json:"timeSlot" binding:"required,datetime=15:04"`
	Notes       string `json:"notes" binding:"omitempty,max=1000"`
	PaymentSlip string `json:"paymentSlip" binding:"omitempty,startswith=data:image/"`
}

func (r *CreateBookingRequest) ToDomain() (booking.Fields, error) {
	gender, err := catalog.NewGender(r.Gender)
	if err != nil {
		return booking.Fields{}, err
	}
	if err := booking.ValidatePhone(r.Phone); err != nil {
		return booking.Fields{}, err
	}
	if r.PaymentSlip != "" {
		if err := booking.ValidatePaymentSlipURL(r.PaymentSlip); err != nil {
			return booking.Fields{}, err
		}
	}
	return booking.Fields{
		FullName:    strings.TrimSpace(r.FullName),
		Phone:       strings.TrimSpace(r.Phone),
		ServiceID:   r.ServiceID,
		Gender:      gender,
		Date:        r.Date,
		TimeSlot:    r.TimeSlot,
		Notes:       strings.TrimSpace(r.Notes),
		PaymentSlip: r.PaymentSlip,
	}, nil
}

type UpdateBookingStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=pending approved rejected"`
}

// ListBookingsQuery mirrors the admin tabs; "all" and empty disable the filter.
type ListBookingsQuery struct {
	Status string `form:"status" binding:"omitempty,oneof=all pending approved rejected"`
}

func (q *ListBookingsQuery) ToDomain() (*booking.Status, error) {
	if q.Status == "" || q.Status == "all" {
		return nil, nil
	}
	s, err := booking.NewStatus(q.Status)
	if err != nil {
		return nil, err
	}
	return &s, nil
}
