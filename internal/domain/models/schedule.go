package models

// Schedule is one planned trip of a gocart on a travel date.
type Schedule struct {
	ID         int64  `json:"id"`
	GoCartID   int64  `json:"gocartId"`
	TravelDate string `json:"travelDate"`
	StartTime  string `json:"startTime"`
	DropTime   string `json:"dropTime"`

	NumberPlate string `json:"numberPlate,omitempty"`
}
