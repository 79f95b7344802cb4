//go:build unit

package availability_test

import (
	"testing"

	"salon-booking/internal/domain/availability"
	"salon-booking/internal/pkg/patch"
	"salon-booking/tests/common/builder"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testCase struct {
	name   string
	mutate func(*builder.AvailabilityBuilder)
	errIs  error
	slots  int
}

func TestRange(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		r, err := builder.NewAvailabilityBuilder().BuildDomain()
		require.NoError(t, err)

		assert.Equal(t, "avail-100", r.ID)
		assert.Equal(t, availability.TypeWeekly, r.Type)
		require.Len(t, r.TimeSlots, 11)

		var times []string
		for _, s := range r.TimeSlots {
			assert.True(t, s.IsAvailable, s.Time)
			times = append(times, s.Time)
		}
		want := []string{"09:00", "10:00", "11:00", "12:00", "13:00", "14:00", "15:00", "16:00", "17:00", "18:00", "19:00"}
		if diff := cmp.Diff(want, times); diff != "" {
			t.Errorf("slot times mismatch (-want +got):\n%s", diff)
		}
		assert.Equal(t, "slot-9", r.TimeSlots[0].ID)
		assert.Equal(t, "slot-19", r.TimeSlots[10].ID)
	})

	t.Run("hours", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "minutes are truncated",
				mutate: func(b *builder.AvailabilityBuilder) { b.WithHours("09:30", "11:45") },
				slots:  3,
			},
			{
				name:   "single hour",
				mutate: func(b *builder.AvailabilityBuilder) { b.WithHours("12:00", "12:00") },
				slots:  1,
			},
			{
				name:   "single digit hour",
				mutate: func(b *builder.AvailabilityBuilder) { b.WithHours("8:00", "10:00") },
				slots:  3,
			},
			{
				name:   "whole day",
				mutate: func(b *builder.AvailabilityBuilder) { b.WithHours("00:00", "23:59") },
				slots:  24,
			},
			{
				name:   "open after close",
				mutate: func(b *builder.AvailabilityBuilder) { b.WithHours("19:00", "09:00") },
				errIs:  availability.ErrInvertedHours,
			},
			{
				name:   "hour out of range",
				mutate: func(b *builder.AvailabilityBuilder) { b.WithHours("09:00", "24:00") },
				errIs:  availability.ErrInvalidClockTime,
			},
			{
				name:   "minutes out of range",
				mutate: func(b *builder.AvailabilityBuilder) { b.WithHours("09:60", "10:00") },
				errIs:  availability.ErrInvalidClockTime,
			},
			{
				name:   "missing colon",
				mutate: func(b *builder.AvailabilityBuilder) { b.WithHours("0900", "1000") },
				errIs:  availability.ErrInvalidClockTime,
			},
			{
				name:   "not a number",
				mutate: func(b *builder.AvailabilityBuilder) { b.WithHours("ab:00", "10:00") },
				errIs:  availability.ErrInvalidClockTime,
			},
		})
	})

	t.Run("covers compares calendar dates", func(t *testing.T) {
		r, err := builder.NewAvailabilityBuilder().WithDates("2025-02-01", "2025-02-07").BuildDomain()
		require.NoError(t, err)

		assert.True(t, r.Covers("2025-02-01"))
		assert.True(t, r.Covers("2025-02-03"))
		assert.True(t, r.Covers("2025-02-07"))
		assert.False(t, r.Covers("2025-01-31"))
		assert.False(t, r.Covers("2025-02-08"))
		assert.False(t, r.IsInverted())
	})

	t.Run("inverted dates are kept", func(t *testing.T) {
		r, err := builder.NewAvailabilityBuilder().WithDates("2025-02-07", "2025-02-01").BuildDomain()
		require.NoError(t, err)
		assert.True(t, r.IsInverted())
		assert.False(t, r.Covers("2025-02-03"))
	})

	t.Run("slot lookup", func(t *testing.T) {
		r, err := builder.NewAvailabilityBuilder().BuildDomain()
		require.NoError(t, err)

		s, ok := r.SlotAt("13:00")
		require.True(t, ok)
		assert.Equal(t, "slot-13", s.ID)

		_, ok = r.SlotAt("13:30")
		assert.False(t, ok)
	})
}

func TestNewType(t *testing.T) {
	for _, s := range []string{"daily", "weekly", "monthly"} {
		typ, err := availability.NewType(s)
		require.NoError(t, err)
		assert.Equal(t, s, typ.String())
	}
	_, err := availability.NewType("yearly")
	assert.ErrorIs(t, err, availability.ErrInvalidType)
}

func TestGenerateHourlySlots(t *testing.T) {
	assert.Empty(t, availability.GenerateHourlySlots(availability.Hours{Open: 10, Close: 9}))
	assert.Equal(t, 0, availability.Hours{Open: 10, Close: 9}.Len())
	assert.Equal(t, 11, availability.DefaultHours.Len())
}

func TestPatchApply(t *testing.T) {
	base, err := builder.NewAvailabilityBuilder().BuildDomain()
	require.NoError(t, err)

	t.Run("empty patch keeps everything", func(t *testing.T) {
		p := availability.Patch{}
		assert.True(t, p.IsEmpty())
		if diff := cmp.Diff(base, p.Apply(base)); diff != "" {
			t.Errorf("range changed (-want +got):\n%s", diff)
		}
	})

	t.Run("set fields win", func(t *testing.T) {
		typ := availability.TypeMonthly
		got := availability.Patch{
			Type:    &typ,
			EndDate: patch.Of("2025-03-31"),
		}.Apply(base)

		assert.Equal(t, base.ID, got.ID)
		assert.Equal(t, availability.TypeMonthly, got.Type)
		assert.Equal(t, base.StartDate, got.StartDate)
		assert.Equal(t, "2025-03-31", got.EndDate)
		assert.Len(t, got.TimeSlots, 11)
	})

	t.Run("time slots replaced wholesale", func(t *testing.T) {
		slots := availability.GenerateHourlySlots(availability.Hours{Open: 10, Close: 12})
		got := availability.Patch{TimeSlots: &slots}.Apply(base)
		require.Len(t, got.TimeSlots, 3)

		slots[0].IsAvailable = false
		assert.True(t, got.TimeSlots[0].IsAvailable, "result must not alias the patch")
	})

	t.Run("last write wins", func(t *testing.T) {
		first := availability.Patch{StartDate: patch.Of("2025-03-02")}.Apply(base)
		second := availability.Patch{StartDate: patch.Of("2025-03-03")}.Apply(first)
		assert.Equal(t, "2025-03-03", second.StartDate)
	})
}

func TestWithSlotAvailability(t *testing.T) {
	slots := availability.GenerateHourlySlots(availability.Hours{Open: 9, Close: 11})
	got := availability.WithSlotAvailability(slots, map[string]bool{"10:00": false, "22:00": false})

	require.Len(t, got, 3)
	assert.True(t, got[0].IsAvailable)
	assert.False(t, got[1].IsAvailable)
	assert.True(t, got[2].IsAvailable)
	assert.True(t, slots[1].IsAvailable, "input must not be modified")
}

func TestDefaultRanges(t *testing.T) {
	ranges := availability.DefaultRanges()
	require.Len(t, ranges, 3)

	assert.Equal(t, "avail-1", ranges[0].ID)
	assert.Equal(t, "2025-02-01", ranges[0].StartDate)
	assert.Equal(t, "2025-02-07", ranges[0].EndDate)
	assert.Equal(t, availability.TypeMonthly, ranges[2].Type)
	for _, r := range ranges {
		assert.Len(t, r.TimeSlots, 11, r.ID)
		assert.Equal(t, 11, r.AvailableCount(), r.ID)
	}
}

func runCases(t *testing.T, cases []testCase) {
	t.Helper()
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			actual, err := builder.NewAvailabilityBuilder().With(c.mutate).BuildDomain()

			if c.errIs != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, c.errIs)
				return
			}
			require.NoError(t, err)
			assert.Len(t, actual.TimeSlots, c.slots)
		})
	}
}
