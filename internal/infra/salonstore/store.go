// Package salonstore is the single authoritative holder of the salon's state:
// service catalog, availability ranges, bookings and the in-progress booking draft.
//
// Every read returns a copy; every write goes through a command method. Commands
// are applied under one lock, so each effect is visible to the very next read.
package salonstore

import (
	"log/slog"
	"slices"
	"sync"

	"salon-booking/internal/domain/availability"
	"salon-booking/internal/domain/booking"
	"salon-booking/internal/domain/catalog"
	"salon-booking/internal/infra"
	"salon-booking/internal/pkg/clock"
	"salon-booking/internal/pkg/errs"
	"salon-booking/internal/pkg/idgen"

	"github.com/jinzhu/copier"
)

var ErrSlotTaken = errs.New("time slot already booked")

// Seed is the mutable state a store starts with. It is copied on construction.
type Seed struct {
	Ranges   []availability.Range
	Bookings []booking.Booking
}

func DefaultSeed() Seed {
	return Seed{
		Ranges:   availability.DefaultRanges(),
		Bookings: booking.DefaultBookings(),
	}
}

type Store struct {
	mu       sync.RWMutex
	catalog  *catalog.Catalog
	ranges   []availability.Range
	bookings []booking.Booking
	draft    booking.Draft

	clock  clock.Clock
	ids    idgen.Generator
	logger *slog.Logger
}

func New(cat *catalog.Catalog, seed Seed, clk clock.Clock, ids idgen.Generator, logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.Default()
	}
	return &Store{
		catalog:  cat,
		ranges:   cloneRanges(seed.Ranges),
		bookings: slices.Clone(seed.Bookings),
		clock:    clk,
		ids:      ids,
		logger:   logger,
	}
}

// ---------------------------------------------------------------------------
// Services
// ---------------------------------------------------------------------------

// GetServiceByID searches men then women services. The catalog is immutable,
// so catalog reads take no lock.
func (s *Store) GetServiceByID(id string) (catalog.Service, bool) {
	return s.catalog.Lookup(id)
}

func (s *Store) MenServices() []catalog.Service {
	return s.catalog.ByGender(catalog.GenderMen)
}

func (s *Store) WomenServices() []catalog.Service {
	return s.catalog.ByGender(catalog.GenderWomen)
}

func (s *Store) Services() []catalog.Service {
	return s.catalog.All()
}

// ---------------------------------------------------------------------------
// Availability
// ---------------------------------------------------------------------------

func (s *Store) AvailabilityRanges() []availability.Range {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneRanges(s.ranges)
}

func (s *Store) AvailabilityRange(id string) (availability.Range, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	i := s.rangeIndex(id)
	if i < 0 {
		return availability.Range{}, false
	}
	return cloneRange(s.ranges[i]), true
}

// AddAvailabilityRange appends a range whose slots run hourly from hours.Open to hours.Close.
func (s *Store) AddAvailabilityRange(typ availability.Type, startDate, endDate string, hours availability.Hours) availability.Range {
	r := availability.NewRange(s.ids.NewID(idgen.PrefixAvailability), typ, startDate, endDate, hours)

	s.mu.Lock()
	s.ranges = append(s.ranges, r)
	s.mu.Unlock()

	s.logger.Info("availability range added",
		"range_id", r.ID, "type", r.Type, "start_date", r.StartDate, "end_date", r.EndDate, "slots", len(r.TimeSlots))
	return cloneRange(r)
}

// RemoveAvailabilityRange reports whether a range was removed; an unknown id is a no-op.
func (s *Store) RemoveAvailabilityRange(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	before := len(s.ranges)
	s.ranges = slices.DeleteFunc(s.ranges, func(r availability.Range) bool { return r.ID == id })
	removed := len(s.ranges) < before
	if removed {
		s.logger.Info("availability range removed", "range_id", id)
	}
	return removed
}

// UpdateAvailabilityRange merges p into the matching range; an unknown id is a no-op.
func (s *Store) UpdateAvailabilityRange(id string, p availability.Patch) (availability.Range, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.rangeIndex(id)
	if i < 0 {
		return availability.Range{}, false
	}
	s.ranges[i] = p.Apply(s.ranges[i])
	return cloneRange(s.ranges[i]), true
}

func (s *Store) rangeIndex(id string) int {
	return slices.IndexFunc(s.ranges, func(r availability.Range) bool { return r.ID == id })
}

// ---------------------------------------------------------------------------
// Bookings
// ---------------------------------------------------------------------------

func (s *Store) Bookings() []booking.Booking {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.bookings)
}

func (s *Store) Booking(id string) (booking.Booking, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	i := s.bookingIndex(id)
	if i < 0 {
		return booking.Booking{}, false
	}
	return s.bookings[i], true
}

// AddBooking appends a pending booking. It trusts the caller to have validated f
// and accepts a booking that collides with an existing one.
func (s *Store) AddBooking(f booking.Fields) booking.Booking {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.appendBooking(f)
}

// ReserveBooking is AddBooking with the double-booking check applied atomically:
// it fails when a non-rejected booking already holds (f.Date, f.TimeSlot).
func (s *Store) ReserveBooking(f booking.Fields) (booking.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.checkSlotFree(f); err != nil {
		return booking.Booking{}, err
	}
	return s.appendBooking(f), nil
}

// SubmitCurrentBooking finalizes the draft into a pending booking and clears
// the draft in one step. finalize runs under the store lock, so it may only use
// the lock-free catalog reads; its error aborts the submit and keeps the draft.
// With reserve set the slot is checked as in ReserveBooking.
func (s *Store) SubmitCurrentBooking(finalize func(booking.Draft) (booking.Fields, error), reserve bool) (booking.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	f, err := finalize(booking.Draft{}.Merge(s.draft))
	if err != nil {
		return booking.Booking{}, err
	}
	if reserve {
		if err := s.checkSlotFree(f); err != nil {
			return booking.Booking{}, err
		}
	}
	b := s.appendBooking(f)
	s.draft = booking.Draft{}
	return b, nil
}

func (s *Store) checkSlotFree(f booking.Fields) error {
	for _, b := range s.bookings {
		if b.Holds(f.Date, f.TimeSlot) {
			return infra.WrapStoreErr(s.logger, infra.KindConflict, "reserve booking", ErrSlotTaken,
				"date", f.Date, "time_slot", f.TimeSlot, "held_by", b.ID)
		}
	}
	return nil
}

func (s *Store) appendBooking(f booking.Fields) booking.Booking {
	b := booking.New(s.ids.NewID(idgen.PrefixBooking), f, s.clock.Now())
	s.bookings = append(s.bookings, b)
	s.logger.Info("booking added",
		"booking_id", b.ID, "service_id", b.ServiceID, "date", b.Date, "time_slot", b.TimeSlot)
	return b
}

// UpdateBookingStatus overwrites the status of the matching booking with no
// transition check; an unknown id is a no-op.
func (s *Store) UpdateBookingStatus(id string, status booking.Status) (booking.Booking, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.bookingIndex(id)
	if i < 0 {
		return booking.Booking{}, false
	}
	prev := s.bookings[i].Status
	s.bookings[i].Status = status
	s.logger.Info("booking status updated", "booking_id", id, "from", prev, "to", status)
	return s.bookings[i], true
}

// BookedTimes lists the times on date held by non-rejected bookings, in booking order.
func (s *Store) BookedTimes(date string) []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var times []string
	for _, b := range s.bookings {
		if b.Date == date && b.Status.IsBlocking() {
			times = append(times, b.TimeSlot)
		}
	}
	return times
}

func (s *Store) bookingIndex(id string) int {
	return slices.IndexFunc(s.bookings, func(b booking.Booking) bool { return b.ID == id })
}

// ---------------------------------------------------------------------------
// Draft
// ---------------------------------------------------------------------------

func (s *Store) CurrentBooking() booking.Draft {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return booking.Draft{}.Merge(s.draft)
}

// SetCurrentBooking merges p into the draft, keeping fields p leaves unset.
func (s *Store) SetCurrentBooking(p booking.Draft) booking.Draft {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.draft = s.draft.Merge(p)
	return booking.Draft{}.Merge(s.draft)
}

// UpdateCurrentBooking merges the patch built by prepare from the current
// draft. prepare runs under the store lock, so it may only use the lock-free
// catalog reads; its error leaves the draft untouched.
func (s *Store) UpdateCurrentBooking(prepare func(current booking.Draft) (booking.Draft, error)) (booking.Draft, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, err := prepare(booking.Draft{}.Merge(s.draft))
	if err != nil {
		return booking.Draft{}, err
	}
	s.draft = s.draft.Merge(p)
	return booking.Draft{}.Merge(s.draft), nil
}

func (s *Store) ResetCurrentBooking() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.draft = booking.Draft{}
}

// ---------------------------------------------------------------------------

func cloneRanges(in []availability.Range) []availability.Range {
	if in == nil {
		return nil
	}
	out := make([]availability.Range, 0, len(in))
	if err := copier.CopyWithOption(&out, in, copier.Option{DeepCopy: true}); err != nil {
		panic("salonstore: clone ranges: " + err.Error())
	}
	return out
}

func cloneRange(r availability.Range) availability.Range {
	var out availability.Range
	if err := copier.CopyWithOption(&out, r, copier.Option{DeepCopy: true}); err != nil {
		panic("salonstore: clone range: " + err.Error())
	}
	return out
}
