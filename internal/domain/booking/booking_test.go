//go:build unit

package booking_test

import (
	"encoding/base64"
	"strings"
	"testing"
	"time"

	"salon-booking/internal/domain/booking"
	"salon-booking/internal/domain/catalog"
	"salon-booking/tests/common/builder"
	"salon-booking/tests/common/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testCase struct {
	name    string
	mutate  func(*builder.BookingBuilder)
	errIs   error
	missing []string
}

func TestBooking(t *testing.T) {
	t.Run("new booking is pending", func(t *testing.T) {
		at := time.Date(2025, 2, 1, 10, 0, 0, 0, time.UTC)
		b := booking.New("booking-7", builder.NewBookingBuilder().BuildFields(), at)

		assert.Equal(t, "booking-7", b.ID)
		assert.Equal(t, booking.StatusPending, b.Status)
		assert.Equal(t, at, b.CreatedAt)
		assert.Equal(t, "Jane Doe", b.FullName)
		assert.False(t, b.HasPaymentSlip())
	})

	t.Run("builder fields flow into the booking", func(t *testing.T) {
		at := time.Date(2025, 2, 2, 8, 0, 0, 0, time.UTC)
		b := builder.NewBookingBuilder().
			WithFullName("Alex Kim").
			WithNotes("window seat").
			WithPaymentSlip("data:image/png;base64,AAAA").
			WithCreatedAt(at).
			BuildDomain()

		assert.Equal(t, "Alex Kim", b.FullName)
		assert.Equal(t, "window seat", b.Notes)
		assert.True(t, b.HasPaymentSlip())
		assert.Equal(t, at, b.CreatedAt)
	})

	t.Run("holds its slot unless rejected", func(t *testing.T) {
		b := builder.NewBookingBuilder().WithSlot("2025-02-03", "10:00").BuildDomain()
		assert.True(t, b.Holds("2025-02-03", "10:00"))
		assert.False(t, b.Holds("2025-02-03", "11:00"))
		assert.False(t, b.Holds("2025-02-04", "10:00"))

		b.Status = booking.StatusApproved
		assert.True(t, b.Holds("2025-02-03", "10:00"))

		b.Status = booking.StatusRejected
		assert.False(t, b.Holds("2025-02-03", "10:00"))
	})
}

func TestValidatePhone(t *testing.T) {
	valid := []string{"+1 234 567 890", "0812-3456-7890", "1234567890", "  +44 20 7946 0958  "}
	for _, p := range valid {
		assert.NoError(t, booking.ValidatePhone(p), p)
	}
	invalid := []string{"", "12345", "+1 (234) 567 890", "phone-number", "123456789a0"}
	for _, p := range invalid {
		assert.ErrorIs(t, booking.ValidatePhone(p), booking.ErrInvalidPhone, p)
	}
}

func TestStatus(t *testing.T) {
	for _, s := range booking.AllStatuses() {
		got, err := booking.NewStatus(s.String())
		require.NoError(t, err)
		assert.Equal(t, s, got)
	}
	_, err := booking.NewStatus("cancelled")
	assert.ErrorIs(t, err, booking.ErrInvalidStatus)

	assert.True(t, booking.StatusPending.IsBlocking())
	assert.True(t, booking.StatusApproved.IsBlocking())
	assert.False(t, booking.StatusRejected.IsBlocking())
}

func TestCanTransition(t *testing.T) {
	cases := []struct {
		from, to booking.Status
		want     bool
	}{
		{booking.StatusPending, booking.StatusApproved, true},
		{booking.StatusPending, booking.StatusRejected, true},
		{booking.StatusPending, booking.StatusPending, true},
		{booking.StatusApproved, booking.StatusApproved, true},
		{booking.StatusApproved, booking.StatusRejected, false},
		{booking.StatusApproved, booking.StatusPending, false},
		{booking.StatusRejected, booking.StatusApproved, false},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, booking.CanTransition(c.from, c.to), "%s -> %s", c.from, c.to)
	}
}

func TestDraftMerge(t *testing.T) {
	str := func(s string) *string { return &s }

	t.Run("later fields win and others are kept", func(t *testing.T) {
		d := booking.Draft{}.Merge(booking.Draft{Date: str("2025-02-03")})
		d = d.Merge(booking.Draft{TimeSlot: str("10:00")})
		d = d.Merge(booking.Draft{Date: str("2025-02-04")})

		require.NotNil(t, d.Date)
		require.NotNil(t, d.TimeSlot)
		assert.Equal(t, "2025-02-04", *d.Date)
		assert.Equal(t, "10:00", *d.TimeSlot)
		assert.Nil(t, d.FullName)
	})

	t.Run("empty string clears", func(t *testing.T) {
		d := booking.Draft{ServiceID: str("men-1"), Notes: str("hi")}
		d = d.Merge(booking.Draft{ServiceID: str("")})
		assert.Nil(t, d.ServiceID)
		require.NotNil(t, d.Notes)
	})

	t.Run("result shares no pointers", func(t *testing.T) {
		name := "Ann"
		p := booking.Draft{FullName: &name}
		d := booking.Draft{}.Merge(p)

		name = "Bob"
		assert.Equal(t, "Ann", *d.FullName)

		*d.FullName = "Cid"
		assert.Equal(t, "Bob", *p.FullName)
	})

	t.Run("empty merge is empty", func(t *testing.T) {
		assert.True(t, booking.Draft{}.Merge(booking.Draft{}).IsEmpty())
	})
}

func TestDraftToFields(t *testing.T) {
	t.Run("complete draft", func(t *testing.T) {
		f, err := builder.NewBookingBuilder().BuildDraft().ToFields()
		require.NoError(t, err)
		assert.Equal(t, builder.NewBookingBuilder().BuildFields(), f)
	})

	t.Run("missing fields", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:    "no time slot",
				mutate:  func(b *builder.BookingBuilder) { b.TimeSlot = "" },
				errIs:   booking.ErrIncompleteDraft,
				missing: []string{"timeSlot"},
			},
			{
				name:    "blank name",
				mutate:  func(b *builder.BookingBuilder) { b.FullName = "   " },
				errIs:   booking.ErrIncompleteDraft,
				missing: []string{"fullName"},
			},
			{
				name: "personal details missing",
				mutate: func(b *builder.BookingBuilder) {
					b.FullName = ""
					b.Phone = ""
					b.Gender = ""
					b.ServiceID = ""
				},
				errIs:   booking.ErrIncompleteDraft,
				missing: []string{"fullName", "phone", "gender", "serviceId"},
			},
			{
				name:   "notes are optional",
				mutate: func(b *builder.BookingBuilder) { b.Notes = "" },
			},
		})
	})

	t.Run("empty draft lists everything in step order", func(t *testing.T) {
		assert.Equal(t,
			[]string{"date", "timeSlot", "fullName", "phone", "gender", "serviceId"},
			booking.Draft{}.MissingFields())
	})
}

func TestEncodePaymentSlip(t *testing.T) {
	t.Run("png", func(t *testing.T) {
		data := testutil.PNGBytes(t)
		slip, err := booking.EncodePaymentSlip(data)
		require.NoError(t, err)

		require.True(t, strings.HasPrefix(slip, "data:image/png;base64,"), slip)
		decoded, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(slip, "data:image/png;base64,"))
		require.NoError(t, err)
		assert.Equal(t, data, decoded)
	})

	t.Run("jpeg", func(t *testing.T) {
		slip, err := booking.EncodePaymentSlip(testutil.JPEGBytes(t))
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(slip, "data:image/jpeg;base64,"), slip)
	})

	t.Run("pdf rejected", func(t *testing.T) {
		_, err := booking.EncodePaymentSlip(testutil.PDFBytes())
		assert.ErrorIs(t, err, booking.ErrUnsupportedSlipType)
	})

	t.Run("empty rejected", func(t *testing.T) {
		_, err := booking.EncodePaymentSlip(nil)
		assert.ErrorIs(t, err, booking.ErrEmptySlip)
	})
}

func TestValidatePaymentSlipURL(t *testing.T) {
	png := testutil.PNGBytes(t)

	t.Run("encoded slips pass", func(t *testing.T) {
		for _, data := range [][]byte{png, testutil.JPEGBytes(t)} {
			slip, err := booking.EncodePaymentSlip(data)
			require.NoError(t, err)
			assert.NoError(t, booking.ValidatePaymentSlipURL(slip))
		}
	})

	cases := []struct {
		name  string
		slip  string
		errIs error
	}{
		{"gif", testutil.DataURL("image/gif", testutil.GIFBytes(t)), booking.ErrUnsupportedSlipType},
		{"gif content declared as png", testutil.DataURL("image/png", testutil.GIFBytes(t)), booking.ErrUnsupportedSlipType},
		{"pdf content declared as jpeg", testutil.DataURL("image/jpeg", testutil.PDFBytes()), booking.ErrUnsupportedSlipType},
		{"not a data URL", "https://example.com/slip.png", booking.ErrUnsupportedSlipType},
		{"not base64", "data:image/png;base64,@@@", booking.ErrInvalidSlipEncoding},
		{"empty payload", "data:image/png;base64,", booking.ErrEmptySlip},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.ErrorIs(t, booking.ValidatePaymentSlipURL(c.slip), c.errIs)
		})
	}
}

func TestDefaultBookings(t *testing.T) {
	seed := booking.DefaultBookings()
	require.Len(t, seed, 3)

	assert.Equal(t, "booking-1", seed[0].ID)
	assert.Equal(t, "men-1", seed[0].ServiceID)
	assert.Equal(t, catalog.GenderMen, seed[0].Gender)
	assert.Equal(t, booking.StatusPending, seed[0].Status)
	assert.Equal(t, booking.StatusApproved, seed[1].Status)
	assert.Equal(t, "Wedding on Feb 10", seed[2].Notes)
}

func runCases(t *testing.T, cases []testCase) {
	t.Helper()
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := builder.NewBookingBuilder().With(c.mutate).BuildDraft().ToFields()

			if c.errIs != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, c.errIs)

				var mf *booking.MissingFieldsError
				require.ErrorAs(t, err, &mf)
				assert.Equal(t, c.missing, mf.Fields)
				return
			}
			require.NoError(t, err)
		})
	}
}
