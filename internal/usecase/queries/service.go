package queries

import (
	"context"

	"salon-booking/internal/domain/catalog"
	"salon-booking/internal/pkg/errs"
)

var ErrServiceNotFound = errs.New("service not found")

type ServiceReadStore interface {
	ServiceLookup
	MenServices() []catalog.Service
	WomenServices() []catalog.Service
	Services() []catalog.Service
}

type ServiceQueries interface {
	// List returns every service, or only one gender's when gender is set.
	List(ctx context.Context, gender *catalog.Gender) ([]*ServiceView, error)
	GetByID(ctx context.Context, id string) (*ServiceView, error)
}

type serviceQueriesImpl struct {
	store ServiceReadStore
}

func NewServiceQueries(store ServiceReadStore) ServiceQueries {
	return &serviceQueriesImpl{store: store}
}

func (q *serviceQueriesImpl) List(ctx context.Context, gender *catalog.Gender) ([]*ServiceView, error) {
	var services []catalog.Service
	switch {
	case gender == nil:
		services = q.store.Services()
	case *gender == catalog.GenderMen:
		services = q.store.MenServices()
	case *gender == catalog.GenderWomen:
		services = q.store.WomenServices()
	default:
		return nil, errs.Mark(catalog.ErrInvalidGender, ErrInvalidFilter)
	}

	views := make([]*ServiceView, len(services))
	for i, s := range services {
		views[i] = NewServiceView(s)
	}
	return views, nil
}

func (q *serviceQueriesImpl) GetByID(ctx context.Context, id string) (*ServiceView, error) {
	svc, ok := q.store.GetServiceByID(id)
	if !ok {
		return nil, ErrServiceNotFound
	}
	return NewServiceView(svc), nil
}
