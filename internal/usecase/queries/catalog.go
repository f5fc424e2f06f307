package queries

import (
	"context"

	"miccheck-web/internal/domain/spot"
	"miccheck-web/internal/infra"
	"miccheck-web/internal/pkg/errs"
	"miccheck-web/internal/usecase/shared"
)

var ErrCatalogUnavailable = errs.New("spot catalog unavailable")

// CatalogQueries reads spots and shows straight from the booking backend.
type CatalogQueries interface {
	ListSpots(ctx context.Context) ([]spot.Spot, error)
	ListShows(ctx context.Context) ([]spot.Show, error)
	BackendHealth(ctx context.Context) error
}

type catalogQueriesImpl struct {
	backend shared.BookingBackend
}

func NewCatalogQueries(backend shared.BookingBackend) CatalogQueries {
	return &catalogQueriesImpl{backend: backend}
}

func (q *catalogQueriesImpl) ListSpots(ctx context.Context) ([]spot.Spot, error) {
	spots, err := q.backend.ListSpots(ctx)
	if err != nil {
		return nil, mapCatalogErr(err, "catalogQueries.ListSpots")
	}
	return spots, nil
}

func (q *catalogQueriesImpl) ListShows(ctx context.Context) ([]spot.Show, error) {
	shows, err := q.backend.ListShows(ctx)
	if err != nil {
		return nil, mapCatalogErr(err, "catalogQueries.ListShows")
	}
	return shows, nil
}

func (q *catalogQueriesImpl) BackendHealth(ctx context.Context) error {
	if err := q.backend.Ping(ctx); err != nil {
		return mapCatalogErr(err, "catalogQueries.BackendHealth")
	}
	return nil
}

func mapCatalogErr(err error, op string) error {
	if infra.IsKind(err, infra.KindUnavailable) || infra.IsKind(err, infra.KindRejected) || infra.IsKind(err, infra.KindDecode) {
		return errs.Mark(errs.Wrap(err, op), ErrCatalogUnavailable)
	}
	return errs.Wrap(err, op)
}
