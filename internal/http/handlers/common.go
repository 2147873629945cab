package handlers

import (
	"log"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"gocart-admin/internal/domain"
	"gocart-admin/internal/http/middleware"
	"gocart-admin/internal/mail"
	"gocart-admin/internal/repositories"

	"github.com/gin-gonic/gin"
)

// Repositories used by the admin handlers. Concrete implementations fall back
// to the shared config.DB connection, which tests replace with sqlmock.
var (
	userRepo     repositories.UserStore       = repositories.UserRepository{}
	gocartRepo   repositories.GoCartStore     = repositories.GoCartRepository{}
	stopRepo     repositories.StopStore       = repositories.StopRepository{}
	routeRepo    repositories.RouteStore      = repositories.RouteRepository{}
	scheduleRepo repositories.ScheduleStore   = repositories.ScheduleRepository{}
	bookingRepo  repositories.BookingStore    = repositories.BookingRepository{}
	seatRepo     repositories.SeatLayoutStore = repositories.SeatLayoutRepository{}
	contactRepo  repositories.ContactStore    = repositories.ContactRepository{}
)

var (
	mailer    mail.Sender
	uploadDir = "uploads"
)

// SetMailer wires the outbound mail transport; called once at startup and by
// tests with a fake.
func SetMailer(s mail.Sender) {
	mailer = s
}

// SetUploadDir points profile picture uploads at the configured directory.
func SetUploadDir(dir string) {
	if strings.TrimSpace(dir) != "" {
		uploadDir = dir
	}
}

const flashCookie = "gocart_flash"

// setFlash stores a one-shot status message consumed by the next render.
func setFlash(c *gin.Context, msg string) {
	c.SetCookie(flashCookie, url.QueryEscape(msg), 60, "/", "", false, true)
}

func takeFlash(c *gin.Context) string {
	raw, err := c.Cookie(flashCookie)
	if err != nil || raw == "" {
		return ""
	}
	c.SetCookie(flashCookie, "", -1, "/", "", false, true)
	msg, err := url.QueryUnescape(raw)
	if err != nil {
		return ""
	}
	return msg
}

// render wraps c.HTML, injecting the flash message and the signed-in user.
func render(c *gin.Context, status int, tmpl string, data gin.H) {
	if data == nil {
		data = gin.H{}
	}
	if _, ok := data["flash"]; !ok {
		data["flash"] = takeFlash(c)
	}
	if user, ok := middleware.CurrentUser(c); ok {
		data["user"] = user
	}
	c.HTML(status, tmpl, data)
}

func redirectWithFlash(c *gin.Context, location, msg string) {
	setFlash(c, msg)
	c.Redirect(http.StatusSeeOther, location)
}

func paramID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		renderNotFound(c, domain.NotFoundError{Resource: "record"})
		return 0, false
	}
	return id, true
}

func renderNotFound(c *gin.Context, err error) {
	render(c, http.StatusNotFound, "error.html", gin.H{
		"title":   "Not Found",
		"message": err.Error(),
	})
}

func renderServerError(c *gin.Context, action string, err error) {
	log.Printf("%s error: %v (request_id=%s)", action, err, middleware.GetRequestID(c))
	render(c, http.StatusInternalServerError, "error.html", gin.H{
		"title":   "Server Error",
		"message": "something went wrong, please try again",
	})
}

// renderRepoError picks between the not-found page and the generic 500 page.
func renderRepoError(c *gin.Context, action string, err error) {
	if domain.IsNotFound(err) {
		renderNotFound(c, err)
		return
	}
	renderServerError(c, action, err)
}
