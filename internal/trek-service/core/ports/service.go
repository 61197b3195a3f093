package ports

import (
	"context"

	"trek-tango/internal/trek-service/core/domain/dto"
	model "trek-tango/internal/trek-service/core/domain/model"
)

type ISequencerService interface {
	// OrderFromPoint picks the destination nearest to the detected GPS
	// point as anchor, then chains greedily through the rest.
	OrderFromPoint(ctx context.Context, origin model.Coordinates, destinations []model.Destination) ([]model.Destination, error)

	// OrderFromAnchor keeps destinations[0] as the fixed anchor and
	// chains greedily through the rest.
	OrderFromAnchor(ctx context.Context, destinations []model.Destination) ([]model.Destination, error)
}

type ISessionService interface {
	CreateSession(ctx context.Context, req dto.CreateSessionRequestDto) (string, error)
	FindActiveSession(ctx context.Context, username string) (model.Session, error)
	MarkCompleted(ctx context.Context, sessionId, placeId string) error
	CompleteSession(ctx context.Context, sessionId string) error
}
