package handlers

import (
	"html/template"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"

	"gocart-admin/internal/config"
	"gocart-admin/internal/domain/models"
	"gocart-admin/internal/mail"
)

// Stub template set covering every page the handlers under test render.
const testTemplates = `
{{define "login.html"}}login{{with .error}}|{{.}}{{end}}{{end}}
{{define "dashboard.html"}}dashboard|gocarts={{.gocart_count}}|drivers={{.driver_count}}{{end}}
{{define "stop_form.html"}}stop-form{{with .stop}}|{{.Name}}{{end}}{{end}}
{{define "stop_list.html"}}stop-list{{end}}
{{define "gocart_form.html"}}gocart-form{{with .error}}|{{.}}{{end}}{{end}}
{{define "gocart_list.html"}}gocart-list{{end}}
{{define "contact_reply.html"}}reply{{if .sent}}|sent{{end}}{{with .sendError}}|senderr:{{.}}{{end}}{{end}}
{{define "contact_list.html"}}contact-list{{end}}
{{define "contact_view.html"}}contact-view{{end}}
{{define "error.html"}}error|{{.message}}{{end}}
`

func newTestEngine(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.SetHTMLTemplate(template.Must(template.New("t").Parse(testTemplates)))
	return r
}

func useMockDB(t *testing.T) sqlmock.Sqlmock {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	prev := config.DB
	config.DB = db
	t.Cleanup(func() {
		config.DB = prev
		db.Close()
	})
	return mock
}

func postForm(r *gin.Engine, path string, form url.Values) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	r.ServeHTTP(w, req)
	return w
}

var userTestColumns = []string{
	"id", "username", "password_hash", "role", "is_staff",
	"first_name", "last_name", "email", "phone", "gender", "dob",
	"present_address", "postal_code", "home_district", "nationality",
	"nid_card_no", "profile_picture", "created_at",
}

func userTestRow(t *testing.T, id int64, username, password, role string, isStaff bool) *sqlmock.Rows {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("bcrypt error: %v", err)
	}
	return sqlmock.NewRows(userTestColumns).AddRow(
		id, username, string(hash), role, isStaff,
		"Admin", "User", username+"@example.com", "", "", "",
		"", "", "", "", "", "", "2025-01-01 10:00:00",
	)
}

func TestLoginSuccessSetsSessionAndRedirects(t *testing.T) {
	mock := useMockDB(t)
	r := newTestEngine(t)
	r.POST("/admin/login", Login)

	mock.ExpectQuery("FROM users WHERE username").
		WithArgs("admin").
		WillReturnRows(userTestRow(t, 1, "admin", "secret123", "staff", true))

	w := postForm(r, "/admin/login", url.Values{
		"username": {"admin"},
		"password": {"secret123"},
	})

	if w.Code != http.StatusSeeOther {
		t.Fatalf("expected 303, got %d", w.Code)
	}
	if loc := w.Header().Get("Location"); loc != "/admin/" {
		t.Fatalf("expected redirect to /admin/, got %q", loc)
	}
	if !strings.Contains(w.Header().Get("Set-Cookie"), "gocart_admin_session") {
		t.Fatalf("session cookie not set: %q", w.Header().Get("Set-Cookie"))
	}
}

func TestLoginNonStaffGetsGenericMessage(t *testing.T) {
	mock := useMockDB(t)
	r := newTestEngine(t)
	r.POST("/admin/login", Login)

	mock.ExpectQuery("FROM users WHERE username").
		WithArgs("rider").
		WillReturnRows(userTestRow(t, 7, "rider", "secret123", "student", false))

	w := postForm(r, "/admin/login", url.Values{
		"username": {"rider"},
		"password": {"secret123"},
	})

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 re-render, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), loginFailedMsg) {
		t.Fatalf("expected generic failure message, got %q", w.Body.String())
	}
	if strings.Contains(w.Header().Get("Set-Cookie"), "gocart_admin_session") {
		t.Fatalf("no session cookie should be issued on failure")
	}
}

func TestLoginUnknownUserGetsSameMessage(t *testing.T) {
	mock := useMockDB(t)
	r := newTestEngine(t)
	r.POST("/admin/login", Login)

	mock.ExpectQuery("FROM users WHERE username").
		WithArgs("ghost").
		WillReturnRows(sqlmock.NewRows(userTestColumns))

	w := postForm(r, "/admin/login", url.Values{
		"username": {"ghost"},
		"password": {"whatever"},
	})

	if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), loginFailedMsg) {
		t.Fatalf("expected generic failure message, got %d %q", w.Code, w.Body.String())
	}
}

func TestAddStopIncompleteFormReRendersBlank(t *testing.T) {
	mock := useMockDB(t)
	r := newTestEngine(t)
	r.POST("/admin/stops/add", AddStop)

	// Missing latitude: nothing is written and the blank form comes back.
	w := postForm(r, "/admin/stops/add", url.Values{
		"name":      {"Library Gate"},
		"longitude": {"90.41"},
	})

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 re-render, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "stop-form") {
		t.Fatalf("expected stop form, got %q", w.Body.String())
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("no DB writes expected: %v", err)
	}
}

func TestAddStopCreatesAndRedirects(t *testing.T) {
	mock := useMockDB(t)
	r := newTestEngine(t)
	r.POST("/admin/stops/add", AddStop)

	mock.ExpectExec("INSERT INTO stops").
		WithArgs("Library Gate", 23.726, 90.41).
		WillReturnResult(sqlmock.NewResult(11, 1))

	w := postForm(r, "/admin/stops/add", url.Values{
		"name":      {"Library Gate"},
		"latitude":  {"23.726"},
		"longitude": {"90.41"},
	})

	if w.Code != http.StatusSeeOther {
		t.Fatalf("expected 303, got %d", w.Code)
	}
	if loc := w.Header().Get("Location"); loc != "/admin/stops" {
		t.Fatalf("expected redirect to /admin/stops, got %q", loc)
	}
	if !strings.Contains(w.Header().Get("Set-Cookie"), "gocart_flash") {
		t.Fatalf("flash cookie not set")
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestEditStopOverwritesOmittedFields(t *testing.T) {
	mock := useMockDB(t)
	r := newTestEngine(t)
	r.POST("/admin/stops/:id/edit", EditStop)

	mock.ExpectQuery("FROM stops WHERE id").
		WithArgs(int64(5)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "latitude", "longitude"}).
			AddRow(5, "Library Gate", 23.726, 90.41))
	// Latitude and longitude were not submitted, so they are stored as zero,
	// not kept at their previous values.
	mock.ExpectExec("UPDATE stops SET").
		WithArgs("Renamed Gate", 0.0, 0.0, int64(5)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	w := postForm(r, "/admin/stops/5/edit", url.Values{
		"name": {"Renamed Gate"},
	})

	if w.Code != http.StatusSeeOther {
		t.Fatalf("expected 303, got %d", w.Code)
	}
	if loc := w.Header().Get("Location"); loc != "/admin/stops" {
		t.Fatalf("expected redirect to /admin/stops, got %q", loc)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestDeleteStopGetDoesNotDelete(t *testing.T) {
	mock := useMockDB(t)
	r := newTestEngine(t)
	r.GET("/admin/stops/:id/delete", DeleteStop)

	mock.ExpectQuery("FROM stops WHERE id").
		WithArgs(int64(5)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "latitude", "longitude"}).
			AddRow(5, "Library Gate", 23.726, 90.41))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/admin/stops/5/delete", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusSeeOther {
		t.Fatalf("expected 303, got %d", w.Code)
	}
	// The mock has no DELETE expectation, so an execute would have failed.
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestDeleteStopPostDeletes(t *testing.T) {
	mock := useMockDB(t)
	r := newTestEngine(t)
	r.POST("/admin/stops/:id/delete", DeleteStop)

	mock.ExpectQuery("FROM stops WHERE id").
		WithArgs(int64(5)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "latitude", "longitude"}).
			AddRow(5, "Library Gate", 23.726, 90.41))
	mock.ExpectExec("DELETE FROM stops").
		WithArgs(int64(5)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	w := postForm(r, "/admin/stops/5/delete", url.Values{})

	if w.Code != http.StatusSeeOther {
		t.Fatalf("expected 303, got %d", w.Code)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestAddGoCartBindingFailureRendersInlineError(t *testing.T) {
	mock := useMockDB(t)
	r := newTestEngine(t)
	r.POST("/admin/gocarts/add", AddGoCart)

	mock.ExpectQuery("FROM users WHERE role").
		WithArgs("driver").
		WillReturnRows(sqlmock.NewRows(userTestColumns))
	mock.ExpectQuery("FROM routes ORDER BY id DESC").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name"}))

	// Number plate missing: the form comes back with an inline error.
	w := postForm(r, "/admin/gocarts/add", url.Values{
		"capacity": {"8"},
	})

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 re-render, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "fill in all required fields") {
		t.Fatalf("expected inline validation error, got %q", w.Body.String())
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("no INSERT expected: %v", err)
	}
}

func TestBookingSeatChoicesScopedToGoCart(t *testing.T) {
	mock := useMockDB(t)

	schedules := []models.Schedule{
		{ID: 3, GoCartID: 2},
		{ID: 4, GoCartID: 1},
	}

	mock.ExpectQuery("FROM seat_layouts WHERE gocart_id").
		WithArgs(int64(2)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "gocart_id", "seat_number"}).
			AddRow(5, 2, "A1").
			AddRow(6, 2, "A2"))

	seats, err := bookingSeatChoices(models.Booking{ID: 12, ScheduleID: 3}, schedules)
	if err != nil {
		t.Fatalf("bookingSeatChoices returned error: %v", err)
	}
	if len(seats) != 2 || seats[0].GoCartID != 2 {
		t.Fatalf("expected seats for gocart 2, got %+v", seats)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestBookingSeatChoicesFallBackToAllSeats(t *testing.T) {
	mock := useMockDB(t)

	mock.ExpectQuery("FROM seat_layouts ORDER BY gocart_id").
		WillReturnRows(sqlmock.NewRows([]string{"id", "gocart_id", "seat_number"}).
			AddRow(5, 2, "A1"))

	seats, err := bookingSeatChoices(models.Booking{ID: 12}, nil)
	if err != nil {
		t.Fatalf("bookingSeatChoices returned error: %v", err)
	}
	if len(seats) != 1 {
		t.Fatalf("expected the full seat list, got %+v", seats)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

var contactTestColumns = []string{"id", "email", "subject", "message", "replied", "created_at"}

type fakeMailer struct {
	err  error
	to   string
	sent bool
}

func (f *fakeMailer) Send(to, subject, body string) error {
	if f.err != nil {
		return f.err
	}
	f.to = to
	f.sent = true
	return nil
}

func TestContactReplySuccessMarksReplied(t *testing.T) {
	mock := useMockDB(t)
	r := newTestEngine(t)
	r.POST("/admin/contact-messages/:id/reply", ReplyContactMessage)

	fm := &fakeMailer{}
	SetMailer(fm)
	t.Cleanup(func() { SetMailer(nil) })

	mock.ExpectQuery("FROM contact_messages WHERE id").
		WithArgs(int64(9)).
		WillReturnRows(sqlmock.NewRows(contactTestColumns).
			AddRow(9, "rider@example.com", "Lost item", "Left a bag", false, "2025-02-01 09:30:00"))
	mock.ExpectExec("UPDATE contact_messages SET replied = 1").
		WithArgs(int64(9)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	w := postForm(r, "/admin/contact-messages/9/reply", url.Values{
		"subject": {""},
		"body":    {"We found your bag."},
	})

	if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), "sent") {
		t.Fatalf("expected sent confirmation, got %d %q", w.Code, w.Body.String())
	}
	if !fm.sent || fm.to != "rider@example.com" {
		t.Fatalf("mailer not invoked as expected: %+v", fm)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestContactReplyBadHeaderLeavesUnreplied(t *testing.T) {
	mock := useMockDB(t)
	r := newTestEngine(t)
	r.POST("/admin/contact-messages/:id/reply", ReplyContactMessage)

	SetMailer(&fakeMailer{err: mail.ErrBadHeader})
	t.Cleanup(func() { SetMailer(nil) })

	mock.ExpectQuery("FROM contact_messages WHERE id").
		WithArgs(int64(9)).
		WillReturnRows(sqlmock.NewRows(contactTestColumns).
			AddRow(9, "rider@example.com", "Lost item", "Left a bag", false, "2025-02-01 09:30:00"))

	w := postForm(r, "/admin/contact-messages/9/reply", url.Values{
		"subject": {"Re:\r\nBcc: attacker@example.com"},
		"body":    {"hello"},
	})

	if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), "senderr") {
		t.Fatalf("expected inline send error, got %d %q", w.Code, w.Body.String())
	}
	// No MarkReplied expectation: the message must stay unreplied.
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestDashboardRendersLiveCounts(t *testing.T) {
	mock := useMockDB(t)
	r := newTestEngine(t)
	r.GET("/admin/", Dashboard)

	countRow := func(n int) *sqlmock.Rows {
		return sqlmock.NewRows([]string{"COUNT(*)"}).AddRow(n)
	}
	mock.ExpectQuery("SELECT COUNT").WillReturnRows(countRow(3))                      // gocarts
	mock.ExpectQuery("SELECT COUNT").WillReturnRows(countRow(2))                      // routes
	mock.ExpectQuery("SELECT COUNT").WillReturnRows(countRow(6))                      // stops
	mock.ExpectQuery("SELECT COUNT").WithArgs("driver").WillReturnRows(countRow(4))   // drivers
	mock.ExpectQuery("SELECT COUNT").WithArgs("student").WillReturnRows(countRow(20)) // students
	mock.ExpectQuery("SELECT COUNT").WillReturnRows(countRow(5))                      // schedules
	mock.ExpectQuery("SELECT COUNT").WillReturnRows(countRow(7))                      // bookings
	mock.ExpectQuery("SELECT COUNT").WillReturnRows(countRow(1))                      // contact messages

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/admin/", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	body := w.Body.String()
	if !strings.Contains(body, "gocarts=3") || !strings.Contains(body, "drivers=4") {
		t.Fatalf("counts missing from dashboard: %q", body)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}
