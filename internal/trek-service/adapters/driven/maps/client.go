package maps

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"trek-tango/internal/config"
	"trek-tango/internal/mylogger"
	model "trek-tango/internal/trek-service/core/domain/model"
	"trek-tango/internal/trek-service/core/myerrors"
	"trek-tango/internal/trek-service/core/ports"
)

const defaultBaseURL = "https://maps.googleapis.com/maps/api/distancematrix/json"

// Client queries the distance-matrix API for the travel distance
// between two points. One request per pair, no retries; any upstream
// failure surfaces as ErrProviderUnavailable, an unreachable pair as
// ErrNoRouteFound.
type Client struct {
	baseURL string
	apiKey  string
	client  *http.Client
	mylog   mylogger.Logger
}

func New(cfg *config.Mapsconfig, mylog mylogger.Logger) ports.IDistanceProvider {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	return &Client{
		baseURL: baseURL,
		apiKey:  cfg.APIKey,
		client: &http.Client{
			Timeout: 30 * time.Second,
		},
		mylog: mylog,
	}
}

type matrixResponse struct {
	Status       string `json:"status"`
	ErrorMessage string `json:"error_message"`
	Rows         []struct {
		Elements []struct {
			Status   string `json:"status"`
			Distance struct {
				Value float64 `json:"value"` // meters
				Text  string  `json:"text"`
			} `json:"distance"`
		} `json:"elements"`
	} `json:"rows"`
}

func (c *Client) Distance(ctx context.Context, origin, destination model.LocationRef) (float64, error) {
	params := url.Values{}
	params.Set("units", "metric")
	params.Set("origins", refParam(origin))
	params.Set("destinations", refParam(destination))
	params.Set("key", c.apiKey)

	u := fmt.Sprintf("%s?%s", c.baseURL, params.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", myerrors.ErrProviderUnavailable, err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		c.mylog.Error("distance matrix request failed", err)
		return 0, fmt.Errorf("%w: %v", myerrors.ErrProviderUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return 0, fmt.Errorf("%w: unexpected status %s", myerrors.ErrProviderUnavailable, resp.Status)
	}

	var m matrixResponse
	if err := json.NewDecoder(resp.Body).Decode(&m); err != nil {
		return 0, fmt.Errorf("%w: decode response: %v", myerrors.ErrProviderUnavailable, err)
	}

	if m.Status != "OK" {
		return 0, fmt.Errorf("%w: api status %s: %s", myerrors.ErrProviderUnavailable, m.Status, m.ErrorMessage)
	}
	if len(m.Rows) == 0 || len(m.Rows[0].Elements) == 0 {
		return 0, fmt.Errorf("%w: empty matrix", myerrors.ErrProviderUnavailable)
	}

	el := m.Rows[0].Elements[0]
	switch el.Status {
	case "OK":
		return el.Distance.Value, nil
	case "ZERO_RESULTS", "NOT_FOUND":
		return 0, fmt.Errorf("%w: element status %s", myerrors.ErrNoRouteFound, el.Status)
	default:
		return 0, fmt.Errorf("%w: element status %s", myerrors.ErrProviderUnavailable, el.Status)
	}
}

func refParam(r model.LocationRef) string {
	if r.IsPlace() {
		return "place_id:" + r.PlaceID
	}
	return fmt.Sprintf("%f,%f", r.Coordinates.Latitude, r.Coordinates.Longitude)
}
