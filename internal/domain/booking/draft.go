package booking

import (
	"strings"

	"salon-booking/internal/domain/catalog"
	"salon-booking/internal/pkg/patch"
)

// Draft is the in-progress booking accumulated across wizard steps.
// A nil field has not been set yet.
type Draft struct {
	FullName    *string         `json:"fullName,omitempty"`
	Phone       *string         `json:"phone,omitempty"`
	ServiceID   *string         `json:"serviceId,omitempty"`
	Gender      *catalog.Gender `json:"gender,omitempty"`
	Date        *string         `json:"date,omitempty"`
	TimeSlot    *string         `json:"timeSlot,omitempty"`
	Notes       *string         `json:"notes,omitempty"`
	PaymentSlip *string         `json:"paymentSlip,omitempty"`
}

// Merge overlays every non-nil field of p onto d, field by field; p wins on overlap.
// A field set to the empty string clears it. The result shares no pointers with d or p.
func (d Draft) Merge(p Draft) Draft {
	return Draft{
		FullName:    clearEmpty(patch.Prefer(p.FullName, d.FullName)),
		Phone:       clearEmpty(patch.Prefer(p.Phone, d.Phone)),
		ServiceID:   clearEmpty(patch.Prefer(p.ServiceID, d.ServiceID)),
		Gender:      clearEmpty(patch.Prefer(p.Gender, d.Gender)),
		Date:        clearEmpty(patch.Prefer(p.Date, d.Date)),
		TimeSlot:    clearEmpty(patch.Prefer(p.TimeSlot, d.TimeSlot)),
		Notes:       clearEmpty(patch.Prefer(p.Notes, d.Notes)),
		PaymentSlip: clearEmpty(patch.Prefer(p.PaymentSlip, d.PaymentSlip)),
	}
}

func clearEmpty[T ~string](v *T) *T {
	if v == nil || *v == "" {
		return nil
	}
	return v
}

func (d Draft) IsEmpty() bool {
	return d == Draft{}
}

// MissingFields lists the mandatory fields not yet set, in wizard order.
func (d Draft) MissingFields() []string {
	var missing []string
	check := func(name string, v *string) {
		if v == nil || strings.TrimSpace(*v) == "" {
			missing = append(missing, name)
		}
	}
	check("date", d.Date)
	check("timeSlot", d.TimeSlot)
	check("fullName", d.FullName)
	check("phone", d.Phone)
	if d.Gender == nil || !d.Gender.IsValid() {
		missing = append(missing, "gender")
	}
	check("serviceId", d.ServiceID)
	return missing
}

// MissingFieldsError is returned by ToFields and matches ErrIncompleteDraft.
type MissingFieldsError struct {
	Fields []string
}

func (e *MissingFieldsError) Error() string {
	return ErrIncompleteDraft.Error() + ": " + strings.Join(e.Fields, ", ")
}

func (e *MissingFieldsError) Unwrap() error {
	return ErrIncompleteDraft
}

// ToFields finalizes the draft; all mandatory fields must be present.
func (d Draft) ToFields() (Fields, error) {
	if missing := d.MissingFields(); len(missing) > 0 {
		return Fields{}, &MissingFieldsError{Fields: missing}
	}
	return Fields{
		FullName:    strings.TrimSpace(*d.FullName),
		Phone:       strings.TrimSpace(*d.Phone),
		ServiceID:   *d.ServiceID,
		Gender:      *d.Gender,
		Date:        *d.Date,
		TimeSlot:    *d.TimeSlot,
		Notes:       patch.Coalesce(d.Notes, ""),
		PaymentSlip: patch.Coalesce(d.PaymentSlip, ""),
	}, nil
}
