package handlers

import (
	"net/http"
	"strings"

	"gocart-admin/internal/http/middleware"
	"gocart-admin/internal/utils"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

const loginFailedMsg = "Invalid credentials or not an admin user."

// GET /admin/login
func ShowLogin(c *gin.Context) {
	if _, ok := sessionStaffUser(c); ok {
		c.Redirect(http.StatusSeeOther, "/admin/")
		return
	}
	render(c, http.StatusOK, "login.html", gin.H{})
}

// POST /admin/login
func Login(c *gin.Context) {
	username := strings.TrimSpace(c.PostForm("username"))
	password := strings.TrimSpace(c.PostForm("password"))

	user, err := userRepo.GetByUsername(username)
	if err != nil || !user.IsStaff ||
		bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		// One generic message: do not reveal whether the account exists or
		// merely lacks the staff flag.
		render(c, http.StatusOK, "login.html", gin.H{"error": loginFailedMsg})
		return
	}

	token, err := middleware.NewSessionToken(user.ID)
	if err != nil {
		renderServerError(c, "Login", err)
		return
	}

	c.SetCookie(middleware.SessionCookie, token, 86400, "/", "", false, true)
	utils.LogEvent(middleware.GetRequestID(c), "auth", "login", "staff login "+username)
	c.Redirect(http.StatusSeeOther, "/admin/")
}

// GET /admin/logout
func Logout(c *gin.Context) {
	c.SetCookie(middleware.SessionCookie, "", -1, "/", "", false, true)
	c.Redirect(http.StatusSeeOther, "/admin/login")
}

// sessionStaffUser resolves the session cookie outside the guarded group,
// used only to skip the login form for already signed-in staff.
func sessionStaffUser(c *gin.Context) (int64, bool) {
	raw, err := c.Cookie(middleware.SessionCookie)
	if err != nil || raw == "" {
		return 0, false
	}
	userID, err := middleware.ParseSessionUserID(raw)
	if err != nil {
		return 0, false
	}
	user, err := userRepo.GetAnyByID(userID)
	if err != nil || !user.IsStaff {
		return 0, false
	}
	return user.ID, true
}
