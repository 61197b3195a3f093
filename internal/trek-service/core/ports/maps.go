package ports

import (
	"context"

	model "trek-tango/internal/trek-service/core/domain/model"
)

// IDistanceProvider issues a single pairwise travel-distance query to
// the external mapping service. Implementations return meters and wrap
// failures in ErrProviderUnavailable or ErrNoRouteFound; they never
// retry. The sequencer issues its calls sequentially, so a batching
// implementation can replace this without changing the contract.
type IDistanceProvider interface {
	Distance(ctx context.Context, origin, destination model.LocationRef) (float64, error)
}
