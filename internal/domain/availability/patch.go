package availability

import "salon-booking/internal/pkg/patch"

// Patch is a partial Range. Nil fields leave the target untouched; set fields
// replace it wholesale (last write wins). TimeSlots replaces the entire list.
type Patch struct {
	Type      *Type
	StartDate *string
	EndDate   *string
	TimeSlots *[]TimeSlot
}

func (p Patch) IsEmpty() bool {
	return p.Type == nil && p.StartDate == nil && p.EndDate == nil && p.TimeSlots == nil
}

// Apply returns r with p merged in. The id is never patched.
func (p Patch) Apply(r Range) Range {
	out := Range{
		ID:        r.ID,
		Type:      patch.Coalesce(p.Type, r.Type),
		StartDate: patch.Coalesce(p.StartDate, r.StartDate),
		EndDate:   patch.Coalesce(p.EndDate, r.EndDate),
	}
	slots := patch.Coalesce(p.TimeSlots, r.TimeSlots)
	out.TimeSlots = append([]TimeSlot(nil), slots...)
	return out
}

// WithSlotAvailability returns a copy of slots where the listed times are set
// to the given flags. Unknown times are ignored.
func WithSlotAvailability(slots []TimeSlot, flags map[string]bool) []TimeSlot {
	out := append([]TimeSlot(nil), slots...)
	for i := range out {
		if v, ok := flags[out[i].Time]; ok {
			out[i].IsAvailable = v
		}
	}
	return out
}
