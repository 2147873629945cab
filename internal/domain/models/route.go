package models

type Route struct {
	ID      int64   `json:"id"`
	Name    string  `json:"name"`
	StopIDs []int64 `json:"stopIds,omitempty"`

	Stops []Stop `json:"stops,omitempty"`
}

type Stop struct {
	ID        int64   `json:"id"`
	Name      string  `json:"name"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}
