package handle

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"trek-tango/internal/mylogger"
	"trek-tango/internal/trek-service/core/domain/dto"
	model "trek-tango/internal/trek-service/core/domain/model"
	"trek-tango/internal/trek-service/core/myerrors"
)

type fakeSessionService struct {
	sessions map[string]model.Session
}

func (f *fakeSessionService) CreateSession(_ context.Context, req dto.CreateSessionRequestDto) (string, error) {
	if req.Username == nil {
		return "", myerrors.ErrFieldIsEmpty
	}
	return "session-1", nil
}

func (f *fakeSessionService) FindActiveSession(_ context.Context, username string) (model.Session, error) {
	s, ok := f.sessions[username]
	if !ok {
		return model.Session{}, myerrors.ErrSessionNotFound
	}
	return s, nil
}

func (f *fakeSessionService) MarkCompleted(_ context.Context, sessionId, placeId string) error {
	if sessionId != "session-1" {
		return myerrors.ErrSessionNotFound
	}
	if placeId != "A" {
		return myerrors.ErrPlaceNotFound
	}
	return nil
}

func (f *fakeSessionService) CompleteSession(_ context.Context, sessionId string) error {
	if sessionId != "session-1" {
		return myerrors.ErrSessionNotFound
	}
	return nil
}

func testLog(t *testing.T) mylogger.Logger {
	t.Helper()
	log, err := mylogger.New(mylogger.LevelError)
	if err != nil {
		t.Fatalf("cannot create logger: %v", err)
	}
	return log
}

func TestFindActiveSession_StatusCodes(t *testing.T) {
	sh := NewSessionHandler(&fakeSessionService{
		sessions: map[string]model.Session{
			"trekker": {SessionID: "session-1", Username: "trekker"},
		},
	}, testLog(t))

	mux := http.NewServeMux()
	mux.Handle("GET /api/session/saveSession/{username}", sh.FindActiveSession())

	tests := []struct {
		name     string
		username string
		wantCode int
	}{
		{"existing incomplete session", "trekker", http.StatusOK},
		{"no session to resume", "stranger", http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/session/saveSession/"+tt.username, nil)
			rec := httptest.NewRecorder()
			mux.ServeHTTP(rec, req)

			if rec.Code != tt.wantCode {
				t.Errorf("status = %d, want %d", rec.Code, tt.wantCode)
			}
		})
	}
}

func TestMarkCompleted_StatusCodes(t *testing.T) {
	sh := NewSessionHandler(&fakeSessionService{}, testLog(t))
	handler := sh.MarkCompleted()

	tests := []struct {
		name     string
		body     string
		wantCode int
	}{
		{"ok", `{"sessionId": "session-1", "placeId": "A"}`, http.StatusOK},
		{"unknown session", `{"sessionId": "nope", "placeId": "A"}`, http.StatusNotFound},
		{"unknown place", `{"sessionId": "session-1", "placeId": "Z"}`, http.StatusNotFound},
		{"missing fields", `{}`, http.StatusBadRequest},
		{"bad json", `{`, http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPut, "/api/session/isCompleted", strings.NewReader(tt.body))
			rec := httptest.NewRecorder()
			handler(rec, req)

			if rec.Code != tt.wantCode {
				t.Errorf("status = %d, want %d", rec.Code, tt.wantCode)
			}
		})
	}
}

func TestCreateSession_Returns201WithSessionId(t *testing.T) {
	sh := NewSessionHandler(&fakeSessionService{}, testLog(t))
	handler := sh.CreateSession()

	body := `{"userId": "u-1", "username": "trekker", "listOfPlaces": [{"place_id": "A"}], "detected": true, "confirmedStarterLocation": {"latitude": 1, "longitude": 2}}`
	req := httptest.NewRequest(http.MethodPost, "/api/session/createSession", strings.NewReader(body))
	rec := httptest.NewRecorder()
	handler(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusCreated)
	}

	var res dto.CreateSessionResponseDto
	if err := json.NewDecoder(rec.Body).Decode(&res); err != nil {
		t.Fatalf("cannot decode response: %v", err)
	}
	if res.SessionId != "session-1" {
		t.Errorf("sessionId = %s, want session-1", res.SessionId)
	}
}
