package websocketdto

import "encoding/json"

type Event struct {
	Type string          `json:"type"`
	Data json.RawMessage `json:"data"`
}

const (
	EventWaypointCompleted = "waypoint_completed"
	EventSessionCompleted  = "session_completed"
)

// SessionProgressDto is pushed to the session owner's open connection
// whenever a waypoint is marked or the trek finishes.
type SessionProgressDto struct {
	SessionId      string `json:"session_id"`
	PlaceId        string `json:"place_id,omitempty"`
	CompletedCount int    `json:"completed_count"`
	TotalCount     int    `json:"total_count"`
}
