package services

import (
	"context"
	"encoding/json"
	"time"

	"trek-tango/internal/mylogger"
	"trek-tango/internal/trek-service/core/domain/dto"
	messagebrokerdto "trek-tango/internal/trek-service/core/domain/message_broker_dto"
	model "trek-tango/internal/trek-service/core/domain/model"
	websocketdto "trek-tango/internal/trek-service/core/domain/websocket_dto"
	"trek-tango/internal/trek-service/core/myerrors"
	"trek-tango/internal/trek-service/core/ports"

	"github.com/google/uuid"
)

// SessionService owns the trek session lifecycle: create, resume,
// per-waypoint completion, finalization. Broker and websocket pushes
// are notifications for external consumers; their failures are logged
// and never fail the session operation itself.
type SessionService struct {
	mylog  mylogger.Logger
	repo   ports.ISessionRepo
	broker ports.ISessionBroker
	notify ports.INotifyWebsocket
}

func NewSessionService(mylog mylogger.Logger, repo ports.ISessionRepo, broker ports.ISessionBroker, notify ports.INotifyWebsocket) ports.ISessionService {
	return &SessionService{
		mylog:  mylog,
		repo:   repo,
		broker: broker,
		notify: notify,
	}
}

func (s *SessionService) CreateSession(ctx context.Context, req dto.CreateSessionRequestDto) (string, error) {
	log := s.mylog.Action("CreateSession")

	if err := validateCreateSession(req); err != nil {
		return "", err
	}

	sessionId := uuid.NewString()

	// the stored list starts with every completed flag down, whatever
	// the client sent
	places := append([]model.Destination(nil), req.ListOfPlaces...)
	for i := range places {
		places[i].Completed = false
	}

	session := model.Session{
		SessionID:                sessionId,
		UserID:                   *req.UserId,
		Username:                 *req.Username,
		ListOfPlaces:             places,
		Detected:                 *req.Detected,
		ConfirmedStarterLocation: *req.ConfirmedStarterLocation,
		Points:                   0,
		SessionComplete:          false,
		CreatedAt:                time.Now().UTC(),
	}

	if err := s.repo.CreateSession(ctx, session); err != nil {
		log.Error("cannot persist session", err, "username", session.Username)
		return "", err
	}

	log.Info("session created", "session_id", sessionId, "username", session.Username, "places", len(places))

	s.publish(ctx, log, ports.SessionCreatedKey, messagebrokerdto.SessionEvent{
		SessionId: sessionId,
		Username:  session.Username,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})

	return sessionId, nil
}

func (s *SessionService) FindActiveSession(ctx context.Context, username string) (model.Session, error) {
	log := s.mylog.Action("FindActiveSession")

	if username == "" {
		return model.Session{}, myerrors.ErrFieldIsEmpty
	}

	session, err := s.repo.FindLatestIncomplete(ctx, username)
	if err != nil {
		return model.Session{}, err
	}

	log.Info("active session found", "session_id", session.SessionID, "username", username)
	return session, nil
}

func (s *SessionService) MarkCompleted(ctx context.Context, sessionId, placeId string) error {
	log := s.mylog.Action("MarkCompleted")

	if sessionId == "" || placeId == "" {
		return myerrors.ErrFieldIsEmpty
	}

	session, err := s.repo.UpdatePlaces(ctx, sessionId, func(places []model.Destination) ([]model.Destination, error) {
		for i := range places {
			if places[i].PlaceID == placeId {
				places[i].Completed = true
				return places, nil
			}
		}
		return nil, myerrors.ErrPlaceNotFound
	})
	if err != nil {
		return err
	}

	log.Info("waypoint completed", "session_id", sessionId, "place_id", placeId)

	s.publish(ctx, log, ports.WaypointCompletedKey, messagebrokerdto.SessionEvent{
		SessionId: sessionId,
		Username:  session.Username,
		PlaceId:   placeId,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
	s.push(log, session.Username, websocketdto.EventWaypointCompleted, websocketdto.SessionProgressDto{
		SessionId:      sessionId,
		PlaceId:        placeId,
		CompletedCount: countCompleted(session.ListOfPlaces),
		TotalCount:     len(session.ListOfPlaces),
	})

	return nil
}

func (s *SessionService) CompleteSession(ctx context.Context, sessionId string) error {
	log := s.mylog.Action("CompleteSession")

	if sessionId == "" {
		return myerrors.ErrFieldIsEmpty
	}

	username, err := s.repo.CompleteSession(ctx, sessionId)
	if err != nil {
		return err
	}

	log.Info("session marked as complete", "session_id", sessionId)

	s.publish(ctx, log, ports.SessionCompletedKey, messagebrokerdto.SessionEvent{
		SessionId: sessionId,
		Username:  username,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
	s.push(log, username, websocketdto.EventSessionCompleted, websocketdto.SessionProgressDto{
		SessionId: sessionId,
	})

	return nil
}

func (s *SessionService) publish(ctx context.Context, log mylogger.Logger, key string, msg messagebrokerdto.SessionEvent) {
	if s.broker == nil {
		return
	}

	var err error
	switch key {
	case ports.SessionCreatedKey:
		err = s.broker.PublishSessionCreated(ctx, msg)
	case ports.WaypointCompletedKey:
		err = s.broker.PublishWaypointCompleted(ctx, msg)
	case ports.SessionCompletedKey:
		err = s.broker.PublishSessionCompleted(ctx, msg)
	}
	if err != nil {
		log.Error("cannot publish session event", err, "routing_key", key, "session_id", msg.SessionId)
	}
}

func (s *SessionService) push(log mylogger.Logger, username, eventType string, data websocketdto.SessionProgressDto) {
	if s.notify == nil {
		return
	}

	payload, err := json.Marshal(data)
	if err != nil {
		log.Error("cannot marshal ws event", err, "type", eventType)
		return
	}
	s.notify.WriteToUser(username, websocketdto.Event{
		Type: eventType,
		Data: payload,
	})
}

func countCompleted(places []model.Destination) int {
	n := 0
	for _, p := range places {
		if p.Completed {
			n++
		}
	}
	return n
}

func validateCreateSession(req dto.CreateSessionRequestDto) error {
	if req.UserId == nil || *req.UserId == "" {
		return myerrors.ErrFieldIsEmpty
	}
	if req.Username == nil || *req.Username == "" {
		return myerrors.ErrFieldIsEmpty
	}
	if req.Detected == nil || req.ConfirmedStarterLocation == nil {
		return myerrors.ErrFieldIsEmpty
	}
	if err := validateCoordinates(*req.ConfirmedStarterLocation); err != nil {
		return err
	}
	return validateDestinations(req.ListOfPlaces)
}
