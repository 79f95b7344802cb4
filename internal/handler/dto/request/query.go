package request

import "salon-booking/internal/domain/catalog"

type ListServicesQuery struct {
	Gender string `form:"gender" binding:"omitempty,oneof=men women"`
}

func (q *ListServicesQuery) ToDomain() (*catalog.Gender, error) {
	if q.Gender == "" {
		return nil, nil
	}
	g, err := catalog.NewGender(q.Gender)
	if err != nil {
		return nil, err
	}
	return &g, nil
}

type SlotsQuery struct {
	Date string `form:"date" binding:"required,datetime=2006-01-02"`
}
