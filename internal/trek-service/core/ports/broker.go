package ports

import (
	"context"

	messagebrokerdto "trek-tango/internal/trek-service/core/domain/message_broker_dto"
)

const (
	SessionCreatedKey    = "session.created"
	WaypointCompletedKey = "session.waypoint.completed"
	SessionCompletedKey  = "session.completed"
)

// ISessionBroker publishes session lifecycle events for the feed and
// notification consumers. Publishes are best-effort: callers log
// failures and carry on.
type ISessionBroker interface {
	Close() error
	PublishSessionCreated(ctx context.Context, msg messagebrokerdto.SessionEvent) error
	PublishWaypointCompleted(ctx context.Context, msg messagebrokerdto.SessionEvent) error
	PublishSessionCompleted(ctx context.Context, msg messagebrokerdto.SessionEvent) error
}
