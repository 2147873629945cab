package services

import (
	"bytes"
	"fmt"
	"strings"

	"gocart-admin/internal/repositories"
	"gocart-admin/internal/utils"

	"github.com/phpdave11/gofpdf"
)

// TicketService renders a booking into a printable PDF ticket.
type TicketService struct {
	BookingRepo  repositories.BookingStore
	UserRepo     repositories.UserStore
	ScheduleRepo repositories.ScheduleStore
	StopRepo     repositories.StopStore
	RequestID    string
	Loader       func(int64) (ticketData, error)
}

type ticketData struct {
	BookingID   int64
	RiderName   string
	RiderPhone  string
	TravelDate  string
	StartTime   string
	PickupStop  string
	DropoffStop string
	SeatNumbers string
	Status      string
	Fare        float64
	PaymentRef  string
}

func (s TicketService) GenerateTicket(bookingID int64) ([]byte, string, error) {
	data, err := s.loadTicketData(bookingID)
	if err != nil {
		return nil, "", err
	}
	utils.LogEvent(s.RequestID, "ticket", "generate", fmt.Sprintf("booking_id=%d", bookingID))
	return buildTicketPDF(data)
}

func (s TicketService) loadTicketData(bookingID int64) (ticketData, error) {
	if s.Loader != nil {
		return s.Loader(bookingID)
	}

	var out ticketData
	b, err := s.bookingRepo().GetByID(bookingID)
	if err != nil {
		return out, err
	}
	out.BookingID = b.ID
	out.Status = b.Status
	out.Fare = b.Fare
	out.PaymentRef = b.PaymentRef

	if rider, err := s.userRepo().GetByID(b.UserID, "student"); err == nil {
		out.RiderName = rider.FullName()
		out.RiderPhone = rider.Phone
	}
	if sched, err := s.scheduleRepo().GetByID(b.ScheduleID); err == nil {
		out.TravelDate = sched.TravelDate
		out.StartTime = sched.StartTime
	}
	if pickup, err := s.stopRepo().GetByID(b.PickupStopID); err == nil {
		out.PickupStop = pickup.Name
	}
	if dropoff, err := s.stopRepo().GetByID(b.DropoffStopID); err == nil {
		out.DropoffStop = dropoff.Name
	}

	seats := make([]string, 0, len(b.SeatIDs))
	for _, id := range b.SeatIDs {
		seats = append(seats, fmt.Sprintf("#%d", id))
	}
	out.SeatNumbers = strings.Join(seats, ", ")
	return out, nil
}

func (s TicketService) bookingRepo() repositories.BookingStore {
	if s.BookingRepo != nil {
		return s.BookingRepo
	}
	return repositories.BookingRepository{}
}

func (s TicketService) userRepo() repositories.UserStore {
	if s.UserRepo != nil {
		return s.UserRepo
	}
	return repositories.UserRepository{}
}

func (s TicketService) scheduleRepo() repositories.ScheduleStore {
	if s.ScheduleRepo != nil {
		return s.ScheduleRepo
	}
	return repositories.ScheduleRepository{}
}

func (s TicketService) stopRepo() repositories.StopStore {
	if s.StopRepo != nil {
		return s.StopRepo
	}
	return repositories.StopRepository{}
}

func buildTicketPDF(d ticketData) ([]byte, string, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("GoCart Ticket", false)
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, "GOCART SHUTTLE TICKET")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 12)
	lines := []string{
		fmt.Sprintf("Booking No   : %d", d.BookingID),
		fmt.Sprintf("Rider        : %s", safe(d.RiderName, "-")),
		fmt.Sprintf("Phone        : %s", safe(d.RiderPhone, "-")),
		fmt.Sprintf("Travel Date  : %s", safe(d.TravelDate, "-")),
		fmt.Sprintf("Departure    : %s", safe(d.StartTime, "-")),
		fmt.Sprintf("From         : %s", safe(d.PickupStop, "-")),
		fmt.Sprintf("To           : %s", safe(d.DropoffStop, "-")),
		fmt.Sprintf("Seats        : %s", safe(d.SeatNumbers, "-")),
		fmt.Sprintf("Status       : %s", safe(d.Status, "-")),
		fmt.Sprintf("Fare         : %s", utils.FormatMoney(d.Fare)),
		fmt.Sprintf("Payment Ref  : %s", safe(d.PaymentRef, "-")),
	}
	for _, line := range lines {
		pdf.Cell(0, 8, line)
		pdf.Ln(8)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", err
	}
	filename := fmt.Sprintf("ticket-booking-%d.pdf", d.BookingID)
	return buf.Bytes(), filename, nil
}

func safe(v, fallback string) string {
	if strings.TrimSpace(v) == "" {
		return fallback
	}
	return v
}
