package handle

import (
	"encoding/json"
	"net/http"

	"trek-tango/internal/mylogger"
	"trek-tango/internal/trek-service/core/domain/dto"
	"trek-tango/internal/trek-service/core/myerrors"
	"trek-tango/internal/trek-service/core/ports"
)

type SessionHandler struct {
	sessionService ports.ISessionService
	log            mylogger.Logger
}

func NewSessionHandler(ss ports.ISessionService, log mylogger.Logger) *SessionHandler {
	return &SessionHandler{
		sessionService: ss,
		log:            log,
	}
}

func (sh *SessionHandler) CreateSession() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		req := dto.CreateSessionRequestDto{}

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			JsonError(w, http.StatusBadRequest, err)
			return
		}

		sessionId, err := sh.sessionService.CreateSession(r.Context(), req)
		if err != nil {
			JsonError(w, statusFromError(err), err)
			return
		}

		jsonResponse(w, http.StatusCreated, dto.CreateSessionResponseDto{SessionId: sessionId})
	}
}

func (sh *SessionHandler) FindActiveSession() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		username := r.PathValue("username")

		session, err := sh.sessionService.FindActiveSession(r.Context(), username)
		if err != nil {
			JsonError(w, statusFromError(err), err)
			return
		}

		jsonResponse(w, http.StatusOK, session)
	}
}

func (sh *SessionHandler) MarkCompleted() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		req := dto.MarkCompletedRequestDto{}

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			JsonError(w, http.StatusBadRequest, err)
			return
		}
		if req.SessionId == nil || req.PlaceId == nil {
			JsonError(w, http.StatusBadRequest, myerrors.ErrFieldIsEmpty)
			return
		}

		if err := sh.sessionService.MarkCompleted(r.Context(), *req.SessionId, *req.PlaceId); err != nil {
			JsonError(w, statusFromError(err), err)
			return
		}

		jsonResponse(w, http.StatusOK, dto.AckResponseDto{Message: "Updated"})
	}
}

func (sh *SessionHandler) CompleteSession() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		req := dto.CompleteSessionRequestDto{}

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			JsonError(w, http.StatusBadRequest, err)
			return
		}
		if req.SessionId == nil {
			JsonError(w, http.StatusBadRequest, myerrors.ErrFieldIsEmpty)
			return
		}

		if err := sh.sessionService.CompleteSession(r.Context(), *req.SessionId); err != nil {
			JsonError(w, statusFromError(err), err)
			return
		}

		jsonResponse(w, http.StatusOK, dto.AckResponseDto{Message: "Session marked as complete"})
	}
}
