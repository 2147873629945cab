package models

// GoCart is one shuttle vehicle. Driver and route assignments are optional.
type GoCart struct {
	ID          int64  `json:"id"`
	NumberPlate string `json:"numberPlate"`
	DriverID    int64  `json:"driverId"`
	RouteID     int64  `json:"routeId"`
	Capacity    int    `json:"capacity"`

	// Display-only fields filled by list joins.
	DriverName string `json:"driverName,omitempty"`
	RouteName  string `json:"routeName,omitempty"`
}

// SeatLayout is one seat position within a gocart.
type SeatLayout struct {
	ID         int64  `json:"id"`
	GoCartID   int64  `json:"gocartId"`
	SeatNumber string `json:"seatNumber"`
}
