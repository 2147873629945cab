package handlers

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"gocart-admin/internal/domain/models"
	"gocart-admin/internal/http/middleware"
	"gocart-admin/internal/services"
	"gocart-admin/internal/utils"

	"github.com/gin-gonic/gin"
)

// GET /admin/bookings
func ListBookings(c *gin.Context) {
	bookings, err := bookingRepo.ListAll()
	if err != nil {
		renderServerError(c, "List Bookings", err)
		return
	}
	render(c, http.StatusOK, "booking_list.html", gin.H{"bookings": bookings})
}

// GET+POST /admin/bookings/:id/edit
func EditBooking(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	booking, err := bookingRepo.GetByID(id)
	if err != nil {
		renderRepoError(c, "Edit Booking", err)
		return
	}

	schedules, err := scheduleRepo.ListAll()
	if err != nil {
		renderServerError(c, "Edit Booking", err)
		return
	}
	stops, err := stopRepo.ListAll()
	if err != nil {
		renderServerError(c, "Edit Booking", err)
		return
	}
	seats, err := bookingSeatChoices(booking, schedules)
	if err != nil {
		renderServerError(c, "Edit Booking", err)
		return
	}

	selectedSeats := map[int64]bool{}
	for _, seatID := range booking.SeatIDs {
		selectedSeats[seatID] = true
	}

	data := gin.H{
		"booking":       booking,
		"selectedSeats": selectedSeats,
		"schedules":     schedules,
		"stops":         stops,
		"seats":         seats,
		// Advisory only; the stored status is whatever was submitted.
		"statuses": models.BookingStatuses,
	}

	if c.Request.Method != http.MethodPost {
		render(c, http.StatusOK, "booking_edit.html", data)
		return
	}

	booking.ScheduleID, _ = strconv.ParseInt(strings.TrimSpace(c.PostForm("schedule")), 10, 64)
	booking.PickupStopID, _ = strconv.ParseInt(strings.TrimSpace(c.PostForm("pickup_stop")), 10, 64)
	booking.DropoffStopID, _ = strconv.ParseInt(strings.TrimSpace(c.PostForm("dropoff_stop")), 10, 64)
	booking.Fare, _ = utils.ParseMoney(c.PostForm("fare"))
	booking.Status = c.PostForm("status")
	booking.PaymentRef = c.PostForm("payment_ref")

	if err := bookingRepo.Update(booking); err != nil {
		renderServerError(c, "Edit Booking", err)
		return
	}

	seatIDs := utils.ParseIDList(c.PostFormArray("seats"))
	if err := bookingRepo.ReplaceSeats(id, seatIDs); err != nil {
		renderServerError(c, "Edit Booking", err)
		return
	}

	utils.LogEvent(middleware.GetRequestID(c), "booking", "update", fmt.Sprintf("id=%d seats=%d", id, len(seatIDs)))
	redirectWithFlash(c, "/admin/bookings", "Booking updated successfully.")
}

// bookingSeatChoices scopes the seat checklist to the gocart serving the
// booking's schedule; a booking without a schedule is offered every seat.
func bookingSeatChoices(b models.Booking, schedules []models.Schedule) ([]models.SeatLayout, error) {
	for _, s := range schedules {
		if s.ID == b.ScheduleID && s.GoCartID != 0 {
			return seatRepo.ListByGoCart(s.GoCartID)
		}
	}
	return seatRepo.ListAll()
}

// GET+POST /admin/bookings/:id/delete
func DeleteBooking(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	if _, err := bookingRepo.GetByID(id); err != nil {
		renderRepoError(c, "Delete Booking", err)
		return
	}

	if c.Request.Method != http.MethodPost {
		c.Redirect(http.StatusSeeOther, "/admin/bookings")
		return
	}

	if err := bookingRepo.Delete(id); err != nil {
		renderServerError(c, "Delete Booking", err)
		return
	}

	utils.LogEvent(middleware.GetRequestID(c), "booking", "delete", fmt.Sprintf("id=%d", id))
	redirectWithFlash(c, "/admin/bookings", "Booking deleted successfully.")
}

// GET /admin/bookings/:id/ticket
func BookingTicket(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	svc := services.TicketService{
		BookingRepo:  bookingRepo,
		UserRepo:     userRepo,
		ScheduleRepo: scheduleRepo,
		StopRepo:     stopRepo,
		RequestID:    middleware.GetRequestID(c),
	}

	pdf, filename, err := svc.GenerateTicket(id)
	if err != nil {
		renderRepoError(c, "Booking Ticket", err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "application/pdf", pdf)
}
