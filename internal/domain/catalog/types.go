package catalog

import "errors"

var (
	ErrInvalidGender       = errors.New("gender must be men or women")
	ErrEmptyServiceID      = errors.New("service id cannot be empty")
	ErrEmptyServiceName    = errors.New("service name cannot be empty")
	ErrNonPositivePrice    = errors.New("service price must be positive")
	ErrNonPositiveDuration = errors.New("service duration must be positive")
	ErrDuplicateServiceID  = errors.New("duplicate service id")
)

type Gender string

const (
	GenderMen   Gender = "men"
	GenderWomen Gender = "women"
)

func (g Gender) String() string {
	return string(g)
}

func (g Gender) IsValid() bool {
	switch g {
	case GenderMen, GenderWomen:
		return true
	default:
		return false
	}
}

func NewGender(s string) (Gender, error) {
	g := Gender(s)
	if !g.IsValid() {
		return "", ErrInvalidGender
	}
	return g, nil
}
