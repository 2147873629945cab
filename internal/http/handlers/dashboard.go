package handlers

import (
	"net/http"

	"gocart-admin/internal/domain/models"

	"github.com/gin-gonic/gin"
)

// GET /admin/
func Dashboard(c *gin.Context) {
	counts := gin.H{}
	for _, item := range []struct {
		key   string
		count func() (int, error)
	}{
		{"gocart_count", gocartRepo.Count},
		{"route_count", routeRepo.Count},
		{"stop_count", stopRepo.Count},
		{"driver_count", func() (int, error) { return userRepo.CountByRole(models.RoleDriver) }},
		{"student_count", func() (int, error) { return userRepo.CountByRole(models.RoleStudent) }},
		{"schedule_count", scheduleRepo.Count},
		{"booking_count", bookingRepo.Count},
		{"contact_message_count", contactRepo.Count},
	} {
		n, err := item.count()
		if err != nil {
			renderServerError(c, "Dashboard", err)
			return
		}
		counts[item.key] = n
	}

	render(c, http.StatusOK, "dashboard.html", counts)
}
