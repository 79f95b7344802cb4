package availability

import "errors"

var (
	ErrInvalidType      = errors.New("availability type must be daily, weekly or monthly")
	ErrInvalidClockTime = errors.New("clock time must be HH:MM")
	ErrInvertedHours    = errors.New("open time must not be after close time")
	ErrMissingDates     = errors.New("start date and end date are required")
)

type Type string

const (
	TypeDaily   Type = "daily"
	TypeWeekly  Type = "weekly"
	TypeMonthly Type = "monthly"
)

func (t Type) String() string {
	return string(t)
}

func (t Type) IsValid() bool {
	switch t {
	case TypeDaily, TypeWeekly, TypeMonthly:
		return true
	default:
		return false
	}
}

func NewType(s string) (Type, error) {
	t := Type(s)
	if !t.IsValid() {
		return "", ErrInvalidType
	}
	return t, nil
}
