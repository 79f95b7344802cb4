package booking

import (
	"time"

	"salon-booking/internal/domain/catalog"
)

// DefaultBookings returns the requests present when the salon opens its books.
func DefaultBookings() []Booking {
	at := func(s string) time.Time {
		t, err := time.Parse(time.RFC3339, s)
		if err != nil {
			panic("invalid seed timestamp " + s)
		}
		return t
	}
	return []Booking{
		{
			ID:        "booking-1",
			FullName:  "John Smith",
			Phone:     "+1 234 567 890",
			ServiceID: "men-1",
			Gender:    catalog.GenderMen,
			Date:      "2025-02-03",
			TimeSlot:  "10:00",
			Notes:     "First time customer",
			Status:    StatusPending,
			CreatedAt: at("2025-01-30T10:00:00Z"),
		},
		{
			ID:        "booking-2",
			FullName:  "Sarah Johnson",
			Phone:     "+1 234 567 891",
			ServiceID: "women-2",
			Gender:    catalog.GenderWomen,
			Date:      "2025-02-04",
			TimeSlot:  "14:00",
			Status:    StatusApproved,
			CreatedAt: at("2025-01-30T11:00:00Z"),
		},
		{
			ID:        "booking-3",
			FullName:  "Emily Davis",
			Phone:     "+1 234 567 892",
			ServiceID: "women-4",
			Gender:    catalog.GenderWomen,
			Date:      "2025-02-05",
			TimeSlot:  "11:00",
			Notes:     "Wedding on Feb 10",
			Status:    StatusPending,
			CreatedAt: at("2025-01-30T12:00:00Z"),
		},
	}
}
