package maps

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"trek-tango/internal/config"
	"trek-tango/internal/mylogger"
	model "trek-tango/internal/trek-service/core/domain/model"
	"trek-tango/internal/trek-service/core/myerrors"
)

func testClient(t *testing.T, handler http.HandlerFunc) (*httptest.Server, *Client) {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	log, err := mylogger.New(mylogger.LevelError)
	if err != nil {
		t.Fatalf("cannot create logger: %v", err)
	}

	provider := New(&config.Mapsconfig{APIKey: "test-key", BaseURL: srv.URL}, log)
	return srv, provider.(*Client)
}

func TestDistance_OK(t *testing.T) {
	var gotQuery map[string]string
	_, client := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotQuery = map[string]string{
			"units":        r.URL.Query().Get("units"),
			"origins":      r.URL.Query().Get("origins"),
			"destinations": r.URL.Query().Get("destinations"),
			"key":          r.URL.Query().Get("key"),
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"status": "OK",
			"rows": [{"elements": [{"status": "OK", "distance": {"value": 4321, "text": "4.3 km"}}]}]
		}`))
	})

	origin := model.PointRef(model.Coordinates{Latitude: 6.9271, Longitude: 79.8612})
	destination := model.LocationRef{PlaceID: "ChIJ123"}

	got, err := client.Distance(context.Background(), origin, destination)
	if err != nil {
		t.Fatalf("Distance returned error: %v", err)
	}
	if got != 4321 {
		t.Errorf("distance = %v, want 4321", got)
	}

	if gotQuery["units"] != "metric" {
		t.Errorf("units = %s, want metric", gotQuery["units"])
	}
	if gotQuery["origins"] != "6.927100,79.861200" {
		t.Errorf("origins = %s, want 6.927100,79.861200", gotQuery["origins"])
	}
	if gotQuery["destinations"] != "place_id:ChIJ123" {
		t.Errorf("destinations = %s, want place_id:ChIJ123", gotQuery["destinations"])
	}
	if gotQuery["key"] != "test-key" {
		t.Errorf("key = %s, want test-key", gotQuery["key"])
	}
}

func TestDistance_ErrorMapping(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
		wantErr error
	}{
		{
			name: "http 500",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusInternalServerError)
			},
			wantErr: myerrors.ErrProviderUnavailable,
		},
		{
			name: "request denied",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(`{"status": "REQUEST_DENIED", "error_message": "bad key", "rows": []}`))
			},
			wantErr: myerrors.ErrProviderUnavailable,
		},
		{
			name: "unreachable pair",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(`{"status": "OK", "rows": [{"elements": [{"status": "ZERO_RESULTS"}]}]}`))
			},
			wantErr: myerrors.ErrNoRouteFound,
		},
		{
			name: "unknown place",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(`{"status": "OK", "rows": [{"elements": [{"status": "NOT_FOUND"}]}]}`))
			},
			wantErr: myerrors.ErrNoRouteFound,
		},
		{
			name: "empty matrix",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(`{"status": "OK", "rows": []}`))
			},
			wantErr: myerrors.ErrProviderUnavailable,
		},
		{
			name: "garbage body",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(`not json`))
			},
			wantErr: myerrors.ErrProviderUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, client := testClient(t, tt.handler)

			_, err := client.Distance(context.Background(),
				model.LocationRef{PlaceID: "a"},
				model.LocationRef{PlaceID: "b"})
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestDistance_ProviderDown(t *testing.T) {
	srv, client := testClient(t, func(w http.ResponseWriter, r *http.Request) {})
	srv.Close()

	_, err := client.Distance(context.Background(),
		model.LocationRef{PlaceID: "a"},
		model.LocationRef{PlaceID: "b"})
	if !errors.Is(err, myerrors.ErrProviderUnavailable) {
		t.Errorf("error = %v, want ErrProviderUnavailable", err)
	}
}
