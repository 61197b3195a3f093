package messagebrokerdto

// SessionEvent is published on the trek_topic exchange under the
// session.* routing keys.
type SessionEvent struct {
	SessionId string `json:"session_id"`
	Username  string `json:"username"`
	PlaceId   string `json:"place_id,omitempty"`
	Timestamp string `json:"timestamp"`
}
