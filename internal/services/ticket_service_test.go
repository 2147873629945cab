package services

import (
	"bytes"
	"testing"
)

func TestTicketServiceGenerate(t *testing.T) {
	loader := func(id int64) (ticketData, error) {
		return ticketData{
			BookingID:   id,
			RiderName:   "Test Rider",
			RiderPhone:  "01700000000",
			TravelDate:  "2026-09-01",
			StartTime:   "08:30",
			PickupStop:  "Main Gate",
			DropoffStop: "Library",
			SeatNumbers: "A1, A2",
			Status:      "confirmed",
			Fare:        40,
			PaymentRef:  "TXN-123",
		}, nil
	}

	svc := TicketService{Loader: loader}

	pdf, filename, err := svc.GenerateTicket(7)
	if err != nil {
		t.Fatalf("GenerateTicket returned error: %v", err)
	}
	if len(pdf) == 0 {
		t.Fatalf("GenerateTicket returned empty data")
	}
	if filename != "ticket-booking-7.pdf" {
		t.Fatalf("unexpected filename %q", filename)
	}
	if !bytes.HasPrefix(pdf, []byte("%PDF")) {
		t.Fatalf("output does not look like a PDF")
	}
}
