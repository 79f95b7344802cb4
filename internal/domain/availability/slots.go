package availability

import (
	"fmt"
	"strconv"
	"strings"
)

// Hours is an inclusive open/close pair of whole clock hours.
type Hours struct {
	Open  int
	Close int
}

// DefaultHours matches the salon's standard 09:00-19:00 day.
var DefaultHours = Hours{Open: 9, Close: 19}

// ParseClock reads "HH:MM" and returns the hour; minutes are truncated.
func ParseClock(s string) (int, error) {
	hh, mm, ok := strings.Cut(strings.TrimSpace(s), ":")
	if !ok || len(hh) == 0 || len(hh) > 2 || len(mm) != 2 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidClockTime, s)
	}
	hour, err := strconv.Atoi(hh)
	if err != nil || hour < 0 || hour > 23 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidClockTime, s)
	}
	minute, err := strconv.Atoi(mm)
	if err != nil || minute < 0 || minute > 59 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidClockTime, s)
	}
	return hour, nil
}

func ParseHours(open, closing string) (Hours, error) {
	o, err := ParseClock(open)
	if err != nil {
		return Hours{}, err
	}
	c, err := ParseClock(closing)
	if err != nil {
		return Hours{}, err
	}
	if o > c {
		return Hours{}, ErrInvertedHours
	}
	return Hours{Open: o, Close: c}, nil
}

func (h Hours) Len() int {
	if h.Open > h.Close {
		return 0
	}
	return h.Close - h.Open + 1
}

// GenerateHourlySlots yields one available slot per hour, both ends included.
// An inverted pair yields no slots.
func GenerateHourlySlots(h Hours) []TimeSlot {
	slots := make([]TimeSlot, 0, h.Len())
	for hour := h.Open; hour <= h.Close; hour++ {
		slots = append(slots, TimeSlot{
			ID:          fmt.Sprintf("slot-%d", hour),
			Time:        FormatHour(hour),
			IsAvailable: true,
		})
	}
	return slots
}

func FormatHour(hour int) string {
	return fmt.Sprintf("%02d:00", hour)
}
