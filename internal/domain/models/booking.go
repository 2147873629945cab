package models

// BookingStatuses is the advisory status list shown on the booking edit form.
// The stored status field is free text and is not checked against this list.
var BookingStatuses = []string{"pending", "confirmed", "cancelled", "completed"}

type Booking struct {
	ID            int64   `json:"id"`
	UserID        int64   `json:"userId"`
	ScheduleID    int64   `json:"scheduleId"`
	PickupStopID  int64   `json:"pickupStopId"`
	DropoffStopID int64   `json:"dropoffStopId"`
	Fare          float64 `json:"fare"`
	Status        string  `json:"status"`
	PaymentRef    string  `json:"paymentRef"`
	SeatIDs       []int64 `json:"seatIds,omitempty"`
	CreatedAt     string  `json:"createdAt"`

	// Display-only fields filled by list joins.
	RiderName   string `json:"riderName,omitempty"`
	TravelDate  string `json:"travelDate,omitempty"`
	PickupName  string `json:"pickupName,omitempty"`
	DropoffName string `json:"dropoffName,omitempty"`
	SeatNumbers string `json:"seatNumbers,omitempty"`
}
