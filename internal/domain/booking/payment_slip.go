package booking

import (
	"encoding/base64"
	"strings"

	"github.com/gabriel-vasile/mimetype"
)

var allowedSlipTypes = []string{"image/jpeg", "image/png"}

// EncodePaymentSlip sniffs the image type from content and returns it as a data URL.
func EncodePaymentSlip(data []byte) (string, error) {
	if len(data) == 0 {
		return "", ErrEmptySlip
	}
	mt := mimetype.Detect(data)
	if !mimetype.EqualsAny(mt.String(), allowedSlipTypes...) {
		return "", ErrUnsupportedSlipType
	}
	return "data:" + mt.String() + ";base64," + base64.StdEncoding.EncodeToString(data), nil
}

// ValidatePaymentSlipURL checks a client-encoded slip: a base64 JPEG or PNG
// data URL whose content matches its declared type.
func ValidatePaymentSlipURL(slip string) error {
	declared, payload, ok := strings.Cut(strings.TrimPrefix(slip, "data:"), ";base64,")
	if !ok || !strings.HasPrefix(slip, "data:") || !mimetype.EqualsAny(declared, allowedSlipTypes...) {
		return ErrUnsupportedSlipType
	}
	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return ErrInvalidSlipEncoding
	}
	if len(data) == 0 {
		return ErrEmptySlip
	}
	if !mimetype.Detect(data).Is(declared) {
		return ErrUnsupportedSlipType
	}
	return nil
}
