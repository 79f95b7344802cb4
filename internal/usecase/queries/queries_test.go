//go:build unit

package queries_test

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"salon-booking/internal/domain/availability"
	"salon-booking/internal/domain/booking"
	"salon-booking/internal/domain/catalog"
	"salon-booking/internal/infra/salonstore"
	"salon-booking/internal/pkg/clock"
	"salon-booking/internal/pkg/errs"
	"salon-booking/internal/pkg/idgen"
	"salon-booking/internal/pkg/patch"
	"salon-booking/internal/usecase/queries"
	"salon-booking/tests/common/builder"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var discard = slog.New(slog.NewTextHandler(io.Discard, nil))

func newStore(t *testing.T) *salonstore.Store {
	t.Helper()
	clk := clock.NewMockClock(time.Date(2025, 2, 1, 8, 0, 0, 0, time.UTC))
	return salonstore.New(catalog.DefaultCatalog(), salonstore.DefaultSeed(), clk, idgen.NewSequenceGenerator(100), discard)
}

func serviceIDs(views []*queries.ServiceView) []string {
	ids := make([]string, len(views))
	for i, v := range views {
		ids[i] = v.ID
	}
	return ids
}

func TestServiceQueries(t *testing.T) {
	ctx := context.Background()
	q := queries.NewServiceQueries(newStore(t))

	cases := []struct {
		name   string
		gender *catalog.Gender
		want   []string
	}{
		{"all", nil, []string{"men-1", "men-2", "men-3", "men-4", "women-1", "women-2", "women-3", "women-4", "women-5"}},
		{"men", patch.Of(catalog.GenderMen), []string{"men-1", "men-2", "men-3", "men-4"}},
		{"women", patch.Of(catalog.GenderWomen), []string{"women-1", "women-2", "women-3", "women-4", "women-5"}},
	}
	for _, c := range cases {
		t.Run("list "+c.name, func(t *testing.T) {
			views, err := q.List(ctx, c.gender)
			require.NoError(t, err)
			if diff := cmp.Diff(c.want, serviceIDs(views)); diff != "" {
				t.Errorf("service ids mismatch (-want +got):\n%s", diff)
			}
		})
	}

	t.Run("list rejects unknown gender", func(t *testing.T) {
		_, err := q.List(ctx, patch.Of(catalog.Gender("kids")))
		assert.True(t, errs.Is(err, queries.ErrInvalidFilter))
	})

	t.Run("get", func(t *testing.T) {
		v, err := q.GetByID(ctx, "women-4")
		require.NoError(t, err)
		assert.Equal(t, "Bridal Makeup", v.Name)
		assert.Equal(t, "200", v.Price.String())
		assert.Equal(t, 90, v.DurationMin)
		assert.Equal(t, catalog.GenderWomen, v.Gender)
	})

	t.Run("get unknown", func(t *testing.T) {
		_, err := q.GetByID(ctx, "men-99")
		assert.True(t, errs.Is(err, queries.ErrServiceNotFound))
	})
}

func TestBookingQueries(t *testing.T) {
	ctx := context.Background()

	t.Run("list in creation order", func(t *testing.T) {
		q := queries.NewBookingQueries(newStore(t))
		views, err := q.List(ctx, nil)
		require.NoError(t, err)
		require.Len(t, views, 3)
		assert.Equal(t, "booking-1", views[0].ID)
		assert.Equal(t, "booking-3", views[2].ID)
		require.NotNil(t, views[0].Service)
		assert.Equal(t, "Classic Haircut", views[0].Service.Name)
	})

	t.Run("filter by status", func(t *testing.T) {
		q := queries.NewBookingQueries(newStore(t))
		views, err := q.List(ctx, patch.Of(booking.StatusPending))
		require.NoError(t, err)
		require.Len(t, views, 2)
		for _, v := range views {
			assert.Equal(t, booking.StatusPending, v.Status)
		}

		views, err = q.List(ctx, patch.Of(booking.StatusRejected))
		require.NoError(t, err)
		assert.Empty(t, views)
		assert.NotNil(t, views)
	})

	t.Run("filter rejects unknown status", func(t *testing.T) {
		q := queries.NewBookingQueries(newStore(t))
		_, err := q.List(ctx, patch.Of(booking.Status("cancelled")))
		assert.True(t, errs.Is(err, queries.ErrInvalidFilter))
	})

	t.Run("summary", func(t *testing.T) {
		store := newStore(t)
		store.UpdateBookingStatus("booking-3", booking.StatusRejected)

		s, err := queries.NewBookingQueries(store).Summary(ctx)
		require.NoError(t, err)
		assert.Equal(t, queries.BookingSummary{Total: 3, Pending: 1, Approved: 1, Rejected: 1}, *s)
	})

	t.Run("unresolved service leaves the view without one", func(t *testing.T) {
		store := salonstore.New(catalog.DefaultCatalog(), salonstore.Seed{}, clock.NewMockClock(time.Now()), idgen.NewSequenceGenerator(1), discard)
		b := store.AddBooking(builder.NewBookingBuilder().WithService("retired-1", catalog.GenderMen).BuildFields())

		v, err := queries.NewBookingQueries(store).GetByID(ctx, b.ID)
		require.NoError(t, err)
		assert.Equal(t, "retired-1", v.ServiceID)
		assert.Nil(t, v.Service)
	})

	t.Run("get unknown", func(t *testing.T) {
		_, err := queries.NewBookingQueries(newStore(t)).GetByID(ctx, "booking-404")
		assert.True(t, errs.Is(err, queries.ErrBookingNotFound))
	})
}

func TestAvailabilityQueries(t *testing.T) {
	ctx := context.Background()

	t.Run("list", func(t *testing.T) {
		views, err := queries.NewAvailabilityQueries(newStore(t), false, discard).List(ctx)
		require.NoError(t, err)
		require.Len(t, views, 3)
		assert.Equal(t, availability.TypeMonthly, views[2].Type)
		assert.Equal(t, 11, views[0].AvailableSlots)
	})

	t.Run("get unknown", func(t *testing.T) {
		_, err := queries.NewAvailabilityQueries(newStore(t), false, discard).GetByID(ctx, "avail-404")
		assert.True(t, errs.Is(err, queries.ErrRangeNotFound))
	})

	t.Run("slots mark booked and disabled times", func(t *testing.T) {
		store := newStore(t)
		store.UpdateAvailabilityRange("avail-1", availability.Patch{
			TimeSlots: patch.Of(availability.WithSlotAvailability(availability.GenerateHourlySlots(availability.DefaultHours), map[string]bool{"12:00": false})),
		})
		q := queries.NewAvailabilityQueries(store, false, discard)

		view, err := q.SlotsForDate(ctx, "2025-02-03")
		require.NoError(t, err)
		assert.Equal(t, "avail-1", view.RangeID)
		require.Len(t, view.Slots, 11)

		byTime := map[string]queries.SlotView{}
		for _, s := range view.Slots {
			byTime[s.Time] = s
		}
		assert.True(t, byTime["10:00"].Booked)
		assert.False(t, byTime["10:00"].Selectable)
		assert.False(t, byTime["12:00"].Available)
		assert.False(t, byTime["12:00"].Selectable)
		assert.True(t, byTime["11:00"].Selectable)
	})

	t.Run("rejected bookings free their slot", func(t *testing.T) {
		store := newStore(t)
		store.UpdateBookingStatus("booking-1", booking.StatusRejected)

		view, err := queries.NewAvailabilityQueries(store, false, discard).SlotsForDate(ctx, "2025-02-03")
		require.NoError(t, err)
		for _, s := range view.Slots {
			assert.False(t, s.Booked, s.Time)
		}
	})

	t.Run("first range is used when membership is not required", func(t *testing.T) {
		view, err := queries.NewAvailabilityQueries(newStore(t), false, discard).SlotsForDate(ctx, "2025-03-10")
		require.NoError(t, err)
		assert.Equal(t, "avail-1", view.RangeID)
	})

	t.Run("covering range is used when membership is required", func(t *testing.T) {
		q := queries.NewAvailabilityQueries(newStore(t), true, discard)

		view, err := q.SlotsForDate(ctx, "2025-02-10")
		require.NoError(t, err)
		assert.Equal(t, "avail-2", view.RangeID)

		_, err = q.SlotsForDate(ctx, "2025-03-10")
		assert.True(t, errs.Is(err, queries.ErrDateUnavailable))
	})

	t.Run("no ranges", func(t *testing.T) {
		store := salonstore.New(catalog.DefaultCatalog(), salonstore.Seed{}, clock.NewMockClock(time.Now()), idgen.NewSequenceGenerator(1), discard)
		view, err := queries.NewAvailabilityQueries(store, false, discard).SlotsForDate(ctx, "2025-02-03")
		require.NoError(t, err)
		assert.Empty(t, view.Slots)
		assert.NotNil(t, view.Slots)
	})

	t.Run("invalid date", func(t *testing.T) {
		_, err := queries.NewAvailabilityQueries(newStore(t), false, discard).SlotsForDate(ctx, "03/02/2025")
		assert.True(t, errs.Is(err, queries.ErrInvalidDate))
	})
}

func TestDraftQueries(t *testing.T) {
	ctx := context.Background()

	t.Run("empty draft", func(t *testing.T) {
		view, err := queries.NewDraftQueries(newStore(t)).Current(ctx)
		require.NoError(t, err)
		assert.False(t, view.Complete)
		assert.Len(t, view.MissingFields, 6)
		assert.Nil(t, view.Service)
	})

	t.Run("complete draft resolves its service", func(t *testing.T) {
		store := newStore(t)
		store.SetCurrentBooking(builder.NewBookingBuilder().BuildDraft())

		view, err := queries.NewDraftQueries(store).Current(ctx)
		require.NoError(t, err)
		assert.True(t, view.Complete)
		assert.Empty(t, view.MissingFields)
		require.NotNil(t, view.Service)
		assert.Equal(t, "women-1", view.Service.ID)
	})
}
