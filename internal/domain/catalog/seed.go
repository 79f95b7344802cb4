package catalog

import "github.com/shopspring/decimal"

type seedService struct {
	id, name, description string
	price                 int64
	durationMin           int
	gender                Gender
}

var defaultServices = []seedService{
	{"men-1", "Classic Haircut", "Traditional precision cut with styling", 45, 30, GenderMen},
	{"men-2", "Beard Grooming", "Shape, trim, and hot towel treatment", 35, 25, GenderMen},
	{"men-3", "Executive Facial", "Deep cleansing and rejuvenating treatment", 75, 45, GenderMen},
	{"men-4", "Hair Styling", "Premium styling with quality products", 55, 40, GenderMen},
	{"women-1", "Signature Haircut", "Expert cut tailored to your style", 65, 45, GenderWomen},
	{"women-2", "Color & Highlights", "Full color service with premium dyes", 150, 120, GenderWomen},
	{"women-3", "Luxury Spa Treatment", "Complete relaxation experience", 120, 90, GenderWomen},
	{"women-4", "Bridal Makeup", "Flawless bridal look for your special day", 200, 90, GenderWomen},
	{"women-5", "Blowout & Styling", "Professional blowout with styling", 55, 45, GenderWomen},
}

// DefaultCatalog returns the salon's fixed service menu.
func DefaultCatalog() *Catalog {
	services := make([]Service, 0, len(defaultServices))
	for _, s := range defaultServices {
		svc, err := NewService(s.id, s.name, s.description, decimal.NewFromInt(s.price), s.durationMin, s.gender, nil)
		if err != nil {
			panic("invalid seed service " + s.id + ": " + err.Error())
		}
		services = append(services, svc)
	}
	c, err := NewCatalog(services...)
	if err != nil {
		panic("invalid seed catalog: " + err.Error())
	}
	return c
}
