package services

import (
	"context"
	"math"

	"trek-tango/internal/mylogger"
	model "trek-tango/internal/trek-service/core/domain/model"
	"trek-tango/internal/trek-service/core/myerrors"
	"trek-tango/internal/trek-service/core/ports"
)

// SequencerService orders destinations with a greedy nearest-neighbor
// chain over pairwise queries to the distance provider. It is O(n²)
// provider calls on purpose: lists are small, user-curated, and the
// chain never backtracks. The first provider failure aborts the whole
// ordering, so callers never see a partially ordered list.
type SequencerService struct {
	mylog    mylogger.Logger
	provider ports.IDistanceProvider
}

func NewSequencerService(mylog mylogger.Logger, provider ports.IDistanceProvider) ports.ISequencerService {
	return &SequencerService{
		mylog:    mylog,
		provider: provider,
	}
}

func (s *SequencerService) OrderFromPoint(ctx context.Context, origin model.Coordinates, destinations []model.Destination) ([]model.Destination, error) {
	log := s.mylog.Action("OrderFromPoint")

	if err := validateCoordinates(origin); err != nil {
		return nil, err
	}
	if err := validateDestinations(destinations); err != nil {
		return nil, err
	}
	if len(destinations) == 1 {
		return append([]model.Destination(nil), destinations...), nil
	}

	rest := append([]model.Destination(nil), destinations...)

	// anchor = nearest to the detected point; ties keep input order
	anchorIdx := 0
	best := math.MaxFloat64
	for i := range rest {
		d, err := s.provider.Distance(ctx, model.PointRef(origin), rest[i].Ref())
		if err != nil {
			log.Error("distance query failed, aborting ordering", err, "place_id", rest[i].PlaceID)
			return nil, err
		}
		if d < best {
			best = d
			anchorIdx = i
		}
	}

	anchor := rest[anchorIdx]
	rest = append(rest[:anchorIdx], rest[anchorIdx+1:]...)

	log.Info("anchor selected", "place_id", anchor.PlaceID, "distance_m", best)
	return s.chain(ctx, log, anchor, rest)
}

func (s *SequencerService) OrderFromAnchor(ctx context.Context, destinations []model.Destination) ([]model.Destination, error) {
	log := s.mylog.Action("OrderFromAnchor")

	if err := validateDestinations(destinations); err != nil {
		return nil, err
	}
	if len(destinations) == 1 {
		return append([]model.Destination(nil), destinations...), nil
	}

	// the anchor is user-chosen, not computed
	anchor := destinations[0]
	rest := append([]model.Destination(nil), destinations[1:]...)

	return s.chain(ctx, log, anchor, rest)
}

// chain repeatedly appends the remaining destination nearest to the
// current reference point until none are left. The anchor is always
// element 0 of the result.
func (s *SequencerService) chain(ctx context.Context, log mylogger.Logger, anchor model.Destination, rest []model.Destination) ([]model.Destination, error) {
	ordered := make([]model.Destination, 0, len(rest)+1)
	ordered = append(ordered, anchor)

	current := anchor
	for len(rest) > 0 {
		nearestIdx := 0
		best := math.MaxFloat64
		for i := range rest {
			d, err := s.provider.Distance(ctx, current.Ref(), rest[i].Ref())
			if err != nil {
				log.Error("distance query failed, aborting ordering", err, "place_id", rest[i].PlaceID)
				return nil, err
			}
			if d < best {
				best = d
				nearestIdx = i
			}
		}
		current = rest[nearestIdx]
		ordered = append(ordered, current)
		rest = append(rest[:nearestIdx], rest[nearestIdx+1:]...)
	}

	log.Info("places ordered", "count", len(ordered))
	return ordered, nil
}

func validateDestinations(destinations []model.Destination) error {
	if len(destinations) == 0 {
		return myerrors.ErrEmptyDestinationSet
	}
	seen := make(map[string]bool, len(destinations))
	for _, d := range destinations {
		if d.PlaceID == "" {
			return myerrors.ErrMissingPlaceID
		}
		if seen[d.PlaceID] {
			return myerrors.ErrDuplicatePlaceID
		}
		seen[d.PlaceID] = true
	}
	return nil
}

func validateCoordinates(c model.Coordinates) error {
	if math.Abs(c.Latitude) > 90 {
		return myerrors.ErrInvalidLatitude
	}
	if math.Abs(c.Longitude) > 180 {
		return myerrors.ErrInvalidLongitude
	}
	return nil
}
