package response

import (
	"time"

	"salon-booking/internal/usecase/queries"
)

type BookingResponse struct {
	ID          string           `json:"id"`
	FullName    string           `json:"fullName"`
	Phone       string           `json:"phone"`
	ServiceID   string           `json:"serviceId"`
	Gender      string           `json:"gender"`
	Date        string           `json:"date"`
	TimeSlot    string           `json:"timeSlot"`
	Notes       string           `json:"notes,omitempty"`
	PaymentSlip string           `json:"paymentSlip,omitempty"`
	Status      string           `json:"status"`
	CreatedAt   string           `json:"createdAt"`
	Service     *ServiceResponse `json:"service,omitempty"`
}

func FromBookingView(v *queries.BookingView) *BookingResponse {
	return &BookingResponse{
		ID:          v.ID,
		FullName:    v.FullName,
		Phone:       v.Phone,
		ServiceID:   v.ServiceID,
		Gender:      v.Gender.String(),
		Date:        v.Date,
		TimeSlot:    v.TimeSlot,
		Notes:       v.Notes,
		PaymentSlip: v.PaymentSlip,
		Status:      v.Status.String(),
		CreatedAt:   v.CreatedAt.UTC().Format(time.RFC3339),
		Service:     FromServiceView(v.Service),
	}
}

func FromBookingList(items []*queries.BookingView) []*BookingResponse {
	res := make([]*BookingResponse, len(items))
	for i, it := range items {
		res[i] = FromBookingView(it)
	}
	return res
}

type BookingSummaryResponse struct {
	Total    int `json:"total"`
	Pending  int `json:"pending"`
	Approved int `json:"approved"`
	Rejected int `json:"rejected"`
}

func FromBookingSummary(s *queries.BookingSummary) *BookingSummaryResponse {
	return &BookingSummaryResponse{
		Total:    s.Total,
		Pending:  s.Pending,
		Approved: s.Approved,
		Rejected: s.Rejected,
	}
}

type DraftResponse struct {
	FullName       *string          `json:"fullName,omitempty"`
	Phone          *string          `json:"phone,omitempty"`
	ServiceID      *string          `json:"serviceId,omitempty"`
	Gender         *string          `json:"gender,omitempty"`
	Date           *string          `json:"date,omitempty"`
	TimeSlot       *string          `json:"timeSlot,omitempty"`
	Notes          *string          `json:"notes,omitempty"`
	PaymentSlip    *string          `json:"paymentSlip,omitempty"`
	Service        *ServiceResponse `json:"service,omitempty"`
	MissingFields  []string         `json:"missingFields"`
	ReadyToSubmit  bool             `json:"readyToSubmit"`
	HasPaymentSlip bool             `json:"hasPaymentSlip"`
}

func FromDraftView(v *queries.DraftView) *DraftResponse {
	d := v.Draft
	res := &DraftResponse{
		FullName:       d.FullName,
		Phone:          d.Phone,
		ServiceID:      d.ServiceID,
		Date:           d.Date,
		TimeSlot:       d.TimeSlot,
		Notes:          d.Notes,
		PaymentSlip:    d.PaymentSlip,
		Service:        FromServiceView(v.Service),
		MissingFields:  v.MissingFields,
		ReadyToSubmit:  v.Complete,
		HasPaymentSlip: d.PaymentSlip != nil,
	}
	if d.Gender != nil {
		g := d.Gender.String()
		res.Gender = &g
	}
	return res
}
