package booking

import "errors"

var (
	ErrInvalidStatus           = errors.New("status must be pending, approved or rejected")
	ErrInvalidStatusTransition = errors.New("only pending bookings can change status")
	ErrIncompleteDraft         = errors.New("booking draft is missing required fields")
	ErrInvalidPhone            = errors.New("phone number is invalid")
	ErrUnsupportedSlipType     = errors.New("payment slip must be a JPEG or PNG image")
	ErrEmptySlip               = errors.New("payment slip is empty")
	ErrInvalidSlipEncoding     = errors.New("payment slip is not valid base64")
)

type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusApproved, StatusRejected:
		return true
	default:
		return false
	}
}

// IsBlocking reports whether a booking in this status holds its time slot.
func (s Status) IsBlocking() bool {
	return s != StatusRejected
}

func NewStatus(s string) (Status, error) {
	st := Status(s)
	if !st.IsValid() {
		return "", ErrInvalidStatus
	}
	return st, nil
}

// CanTransition is the admin workflow rule: pending -> approved | rejected.
// Setting the current status again is treated as a no-op and allowed.
func CanTransition(from, to Status) bool {
	if from == to {
		return true
	}
	return from == StatusPending && (to == StatusApproved || to == StatusRejected)
}

// AllStatuses lists statuses in admin tab order.
func AllStatuses() []Status {
	return []Status{StatusPending, StatusApproved, StatusRejected}
}
