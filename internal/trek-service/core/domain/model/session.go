package domain

import "time"

// Coordinates is a raw geographic point.
type Coordinates struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Destination is one place the user wants to visit. It lives embedded
// inside a session's ordered list and has no persistence of its own.
type Destination struct {
	PlaceID   string  `json:"place_id"` // provider place id, unique within a list
	Name      string  `json:"name"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Completed bool    `json:"completed"`
}

// Ref returns the distance-provider reference for this destination.
// Destinations are always addressed by provider place id.
func (d Destination) Ref() LocationRef {
	return LocationRef{PlaceID: d.PlaceID}
}

// LocationRef addresses a point for the distance provider: either a
// provider place id or raw coordinates, never both.
type LocationRef struct {
	PlaceID     string
	Coordinates Coordinates
}

// PointRef wraps raw coordinates as a provider reference.
func PointRef(c Coordinates) LocationRef {
	return LocationRef{Coordinates: c}
}

func (r LocationRef) IsPlace() bool {
	return r.PlaceID != ""
}

// Session is the durable record of one trek in progress. ListOfPlaces
// keeps the order assigned by the sequencer at creation time; only the
// per-destination Completed flags mutate afterwards.
type Session struct {
	SessionID                string        `json:"sessionId"`
	UserID                   string        `json:"userId"`
	Username                 string        `json:"username"`
	ListOfPlaces             []Destination `json:"listOfPlaces"`
	Detected                 bool          `json:"detected"`
	ConfirmedStarterLocation Coordinates   `json:"confirmedStarterLocation"`
	Points                   int           `json:"points"`
	SessionComplete          bool          `json:"sessionComplete"`
	CreatedAt                time.Time     `json:"createdAt"`
}
