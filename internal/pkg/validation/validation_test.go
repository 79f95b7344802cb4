//go:build unit

package validation_test

import (
	"testing"

	"salon-booking/internal/pkg/errs"
	"salon-booking/internal/pkg/validation"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type contactForm struct {
	FullName string `json:"fullName" validate:"required,max=5"`
	Phone    string `json:"phone" validate:"required,phone"`
	Gender   string `form:"gender" validate:"omitempty,oneof=men women"`
	Date     string `json:"date" validate:"omitempty,datetime=2006-01-02"`
	Slip     string `json:"paymentSlip" validate:"omitempty,startswith=data:image/"`
}

func newValidator(t *testing.T) *validator.Validate {
	t.Helper()
	v := validator.New()
	require.NoError(t, validation.Register(v))
	return v
}

func TestPhoneRule(t *testing.T) {
	v := newValidator(t)

	cases := []struct {
		phone string
		ok    bool
	}{
		{"+1 555 123 4567", true},
		{"555-123-4567", true},
		{"5551234567", true},
		{"555 1234", false},
		{"555-CALL-NOW", false},
		{"+44 (20) 7946 0958", false},
	}
	for _, c := range cases {
		t.Run(c.phone, func(t *testing.T) {
			err := v.Struct(contactForm{FullName: "Ann", Phone: c.phone})
			assert.Equal(t, c.ok, err == nil, "%v", err)
		})
	}
}

func TestFormatErrors(t *testing.T) {
	v := newValidator(t)

	err := v.Struct(contactForm{
		FullName: "Annabelle",
		Phone:    "12",
		Gender:   "kids",
		Date:     "2025/02/06",
		Slip:     "data:application/pdf;base64,AA",
	})
	require.Error(t, err)

	assert.Equal(t, map[string]string{
		"fullName":    "fullName must be at most 5 characters",
		"phone":       "phone must be a valid phone number",
		"gender":      "gender must be one of: men, women",
		"date":        "date must match the layout 2006-01-02",
		"paymentSlip": "paymentSlip must start with data:image/",
	}, validation.FormatErrors(err))
}

func TestFormatErrorsRequired(t *testing.T) {
	err := newValidator(t).Struct(contactForm{})

	got := validation.FormatErrors(err)
	assert.Equal(t, "fullName is required", got["fullName"])
	assert.Equal(t, "phone is required", got["phone"])
	assert.Len(t, got, 2)
}

type draftStep struct {
	Phone    *string `json:"phone" validate:"omitempty,eq=|phone"`
	Gender   *string `json:"gender" validate:"omitempty,eq=|oneof=men women"`
	TimeSlot *string `json:"timeSlot" validate:"omitempty,eq=|datetime=15:04"`
}

func TestOptionalClearTags(t *testing.T) {
	v := newValidator(t)
	empty := ""

	t.Run("empty strings pass", func(t *testing.T) {
		assert.NoError(t, v.Struct(draftStep{Phone: &empty, Gender: &empty, TimeSlot: &empty}))
	})

	t.Run("nil pointers pass", func(t *testing.T) {
		assert.NoError(t, v.Struct(draftStep{}))
	})

	t.Run("invalid values report the last rule", func(t *testing.T) {
		phone, gender, slot := "12", "kids", "25:00"
		err := v.Struct(draftStep{Phone: &phone, Gender: &gender, TimeSlot: &slot})
		require.Error(t, err)

		assert.Equal(t, map[string]string{
			"phone":    "phone must be a valid phone number",
			"gender":   "gender must be one of: men, women",
			"timeSlot": "timeSlot must match the layout 15:04",
		}, validation.FormatErrors(err))
	})
}

func TestFormatErrorsIgnoresOtherErrors(t *testing.T) {
	assert.Nil(t, validation.FormatErrors(errs.New("unexpected EOF")))
	assert.Nil(t, validation.FormatErrors(nil))
}
