package services

import (
	"context"
	"fmt"
	"reflect"
	"testing"

	model "trek-tango/internal/trek-service/core/domain/model"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

// planeProvider computes squared euclidean distance from the
// destinations' own coordinates, so generated inputs always have a
// consistent full distance matrix.
type planeProvider struct {
	coords map[string]model.Coordinates
}

func newPlaneProvider(origin model.Coordinates, destinations []model.Destination) *planeProvider {
	coords := map[string]model.Coordinates{
		"": origin, // the point ref has no place id
	}
	for _, d := range destinations {
		coords[d.PlaceID] = model.Coordinates{Latitude: d.Latitude, Longitude: d.Longitude}
	}
	return &planeProvider{coords: coords}
}

func (p *planeProvider) Distance(_ context.Context, origin, destination model.LocationRef) (float64, error) {
	from := p.coords[origin.PlaceID]
	if !origin.IsPlace() {
		from = origin.Coordinates
	}
	to := p.coords[destination.PlaceID]
	dx := from.Latitude - to.Latitude
	dy := from.Longitude - to.Longitude
	return dx*dx + dy*dy, nil
}

func genDestinations() gopter.Gen {
	return gen.IntRange(1, 8).FlatMap(func(v interface{}) gopter.Gen {
		n := v.(int)
		return gen.SliceOfN(2*n, gen.Float64Range(-50, 50)).Map(func(vs []float64) []model.Destination {
			destinations := make([]model.Destination, 0, n)
			for i := 0; i+1 < len(vs); i += 2 {
				destinations = append(destinations, model.Destination{
					PlaceID:   fmt.Sprintf("place-%d", i/2),
					Name:      fmt.Sprintf("generated %d", i/2),
					Latitude:  vs[i],
					Longitude: vs[i+1],
				})
			}
			return destinations
		})
	}, reflect.TypeOf([]model.Destination{}))
}

func samePlaceIdSet(in, out []model.Destination) bool {
	if len(in) != len(out) {
		return false
	}
	seen := make(map[string]int, len(in))
	for _, d := range in {
		seen[d.PlaceID]++
	}
	for _, d := range out {
		seen[d.PlaceID]--
		if seen[d.PlaceID] < 0 {
			return false
		}
	}
	return true
}

func TestSequencerProperties(t *testing.T) {
	log := testLogger(t)
	origin := model.Coordinates{Latitude: 0, Longitude: 0}

	properties := gopter.NewProperties(nil)

	properties.Property("OrderFromPoint returns a permutation of the input", prop.ForAll(
		func(destinations []model.Destination) bool {
			seq := NewSequencerService(log, newPlaneProvider(origin, destinations))
			got, err := seq.OrderFromPoint(context.Background(), origin, destinations)
			if err != nil {
				return false
			}
			return samePlaceIdSet(destinations, got)
		},
		genDestinations(),
	))

	properties.Property("OrderFromPoint anchor is the destination nearest the origin", prop.ForAll(
		func(destinations []model.Destination) bool {
			provider := newPlaneProvider(origin, destinations)
			seq := NewSequencerService(log, provider)
			got, err := seq.OrderFromPoint(context.Background(), origin, destinations)
			if err != nil || len(got) == 0 {
				return false
			}
			anchorDist, _ := provider.Distance(context.Background(), model.PointRef(origin), got[0].Ref())
			for _, d := range destinations {
				dist, _ := provider.Distance(context.Background(), model.PointRef(origin), d.Ref())
				if dist < anchorDist {
					return false
				}
			}
			return true
		},
		genDestinations(),
	))

	properties.Property("OrderFromAnchor keeps the chosen anchor first", prop.ForAll(
		func(destinations []model.Destination) bool {
			seq := NewSequencerService(log, newPlaneProvider(origin, destinations))
			got, err := seq.OrderFromAnchor(context.Background(), destinations)
			if err != nil || len(got) == 0 {
				return false
			}
			return got[0].PlaceID == destinations[0].PlaceID && samePlaceIdSet(destinations, got)
		},
		genDestinations(),
	))

	properties.TestingRun(t)
}
