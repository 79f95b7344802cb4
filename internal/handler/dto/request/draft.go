package request

import (
	"strings"

	"salon-booking/internal/domain/booking"
	"salon-booking/internal/domain/catalog"
)

// UpdateDraftRequest carries one wizard step. Omitted fields are kept and
// an empty string clears a field.
type UpdateDraftRequest struct {
	FullName  *string `json:"fullName" binding:"omitempty,max=200"`
	Phone     *string `json:"phone" binding:"omitempty,eq=|phone"`
	ServiceID *string `json:"serviceId"`
	Gender    *string `json:"gender" binding:"omitempty,eq=|oneof=men women"`
	Date      *string `json:"date" binding:"omitempty,eq=|datetime=2006-01-02"`
	TimeSlot  *string `json:"timeSlot" binding:"omitempty,eq=|datetime=15:04"`
	Notes     *string `json:"notes" binding:"omitempty,max=1000"`
}

func (r *UpdateDraftRequest) ToDomain() booking.Draft {
	d := booking.Draft{
		FullName:  trimmed(r.FullName),
		Phone:     trimmed(r.Phone),
		ServiceID: r.ServiceID,
		Date:      r.Date,
		TimeSlot:  r.TimeSlot,
		Notes:     r.Notes,
	}
	if r.Gender != nil {
		g := catalog.Gender(*r.Gender)
		d.Gender = &g
	}
	return d
}

func trimmed(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	return &v
}
