package response

import "salon-booking/internal/usecase/queries"

type ServiceResponse struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Duration    int     `json:"duration"`
	Gender      string  `json:"gender"`
	Image       *string `json:"image,omitempty"`
}

func FromServiceView(v *queries.ServiceView) *ServiceResponse {
	if v == nil {
		return nil
	}
	return &ServiceResponse{
		ID:          v.ID,
		Name:        v.Name,
		Description: v.Description,
		Price:       v.Price.InexactFloat64(),
		Duration:    v.DurationMin,
		Gender:      v.Gender.String(),
		Image:       v.Image,
	}
}

func FromServiceList(items []*queries.ServiceView) []*ServiceResponse {
	res := make([]*ServiceResponse, len(items))
	for i, it := range items {
		res[i] = FromServiceView(it)
	}
	return res
}
