package ports

import (
	"context"

	model "trek-tango/internal/trek-service/core/domain/model"
)

type IDB interface {
	IsAlive() error
	Close() error
}

// MutatePlaces rewrites a session's destination list. It runs inside
// the repository's transaction while the session row is locked, so the
// full new list replaces the stored one atomically.
type MutatePlaces func(places []model.Destination) ([]model.Destination, error)

type ISessionRepo interface {
	CreateSession(ctx context.Context, s model.Session) error

	// FindLatestIncomplete returns the most recently created session
	// for the user with sessionComplete=false, or ErrSessionNotFound.
	FindLatestIncomplete(ctx context.Context, username string) (model.Session, error)

	// UpdatePlaces loads the session, applies mutate to its destination
	// list and writes the whole list back in one transaction. Returns
	// the session with the updated list.
	UpdatePlaces(ctx context.Context, sessionId string, mutate MutatePlaces) (model.Session, error)

	// CompleteSession sets sessionComplete=true and returns the
	// session's username. Idempotent.
	CompleteSession(ctx context.Context, sessionId string) (string, error)
}
