package myerrors

import "errors"

var (
	// caller errors, rejected before any external call
	ErrEmptyDestinationSet = errors.New("destination list is empty")
	ErrDuplicatePlaceID    = errors.New("duplicate place id in destination list")
	ErrMissingPlaceID      = errors.New("destination has no place id")
	ErrFieldIsEmpty        = errors.New("field is empty")
	ErrInvalidLatitude     = errors.New("invalid latitude [-90, 90]")
	ErrInvalidLongitude    = errors.New("invalid longitude [-180, 180]")

	// distance provider failures, never retried
	ErrProviderUnavailable = errors.New("distance provider unavailable")
	ErrNoRouteFound        = errors.New("no route found between points")

	// session store failures
	ErrSessionNotFound = errors.New("session not found")
	ErrPlaceNotFound   = errors.New("place not found in session")
	ErrPersistence     = errors.New("session store failure")
)
