package catalog

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Service is a bookable offering. Catalog data is immutable once built.
type Service struct {
	id          string
	name        string
	description string
	price       decimal.Decimal
	durationMin int
	gender      Gender
	image       *string
}

func NewService(id, name, description string, price decimal.Decimal, durationMin int, gender Gender, image *string) (Service, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return Service{}, ErrEmptyServiceID
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return Service{}, ErrEmptyServiceName
	}
	if !price.IsPositive() {
		return Service{}, ErrNonPositivePrice
	}
	if durationMin <= 0 {
		return Service{}, ErrNonPositiveDuration
	}
	if !gender.IsValid() {
		return Service{}, ErrInvalidGender
	}

	var img *string
	if image != nil {
		v := *image
		img = &v
	}

	return Service{
		id:          id,
		name:        name,
		description: strings.TrimSpace(description),
		price:       price,
		durationMin: durationMin,
		gender:      gender,
		image:       img,
	}, nil
}

func (s Service) ID() string             { return s.id }
func (s Service) Name() string           { return s.name }
func (s Service) Description() string    { return s.description }
func (s Service) Price() decimal.Decimal { return s.price }
func (s Service) DurationMin() int       { return s.durationMin }
func (s Service) Gender() Gender         { return s.gender }
func (s Service) IsZero() bool           { return s.id == "" }

func (s Service) Image() *string {
	if s.image == nil {
		return nil
	}
	v := *s.image
	return &v
}

// Catalog holds the men and women service lists in display order.
type Catalog struct {
	men   []Service
	women []Service
}

func NewCatalog(services ...Service) (*Catalog, error) {
	c := &Catalog{}
	seen := make(map[string]struct{}, len(services))
	for _, s := range services {
		if s.IsZero() {
			return nil, ErrEmptyServiceID
		}
		if _, dup := seen[s.id]; dup {
			return nil, ErrDuplicateServiceID
		}
		seen[s.id] = struct{}{}

		switch s.gender {
		case GenderMen:
			c.men = append(c.men, s)
		case GenderWomen:
			c.women = append(c.women, s)
		default:
			return nil, ErrInvalidGender
		}
	}
	return c, nil
}

// Lookup scans men then women services.
func (c *Catalog) Lookup(id string) (Service, bool) {
	for _, s := range c.men {
		if s.id == id {
			return s, true
		}
	}
	for _, s := range c.women {
		if s.id == id {
			return s, true
		}
	}
	return Service{}, false
}

func (c *Catalog) ByGender(g Gender) []Service {
	switch g {
	case GenderMen:
		return append([]Service(nil), c.men...)
	case GenderWomen:
		return append([]Service(nil), c.women...)
	default:
		return nil
	}
}

func (c *Catalog) All() []Service {
	out := make([]Service, 0, len(c.men)+len(c.women))
	out = append(out, c.men...)
	return append(out, c.women...)
}

func (c *Catalog) Len() int {
	return len(c.men) + len(c.women)
}
