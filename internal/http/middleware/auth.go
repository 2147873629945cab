package middleware

import (
	"net/http"
	"strings"
	"time"

	"gocart-admin/internal/domain/models"
	"gocart-admin/internal/repositories"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// SessionCookie carries the signed admin session token.
const SessionCookie = "gocart_admin_session"

const authUserKey = "auth_user"

var sessionSecret = []byte("gocart-dev-secret-change-me")

// SetSessionSecret overrides the signing key; called once at startup.
func SetSessionSecret(secret string) {
	if strings.TrimSpace(secret) != "" {
		sessionSecret = []byte(secret)
	}
}

// NewSessionToken issues a signed session token for a logged-in staff user.
func NewSessionToken(userID int64) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": userID,
		"exp":     time.Now().Add(24 * time.Hour).Unix(),
	})
	return token.SignedString(sessionSecret)
}

// ParseSessionUserID validates a session token and returns the embedded user id.
func ParseSessionUserID(raw string) (int64, error) {
	claims := jwt.MapClaims{}
	_, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return sessionSecret, nil
	})
	if err != nil {
		return 0, err
	}
	id, ok := claims["user_id"].(float64)
	if !ok {
		return 0, jwt.ErrTokenInvalidClaims
	}
	return int64(id), nil
}

// StaffOnly gates every admin handler. The user is reloaded on each request
// so a revoked staff flag takes effect immediately; anything short of an
// authenticated staff identity is diverted to the login page, never an error.
func StaffOnly(users repositories.UserStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		raw, err := c.Cookie(SessionCookie)
		if err != nil || raw == "" {
			divertToLogin(c)
			return
		}

		userID, err := ParseSessionUserID(raw)
		if err != nil {
			divertToLogin(c)
			return
		}

		user, err := users.GetAnyByID(userID)
		if err != nil || !user.IsStaff {
			divertToLogin(c)
			return
		}

		c.Set(authUserKey, user)
		c.Next()
	}
}

func divertToLogin(c *gin.Context) {
	c.Redirect(http.StatusSeeOther, "/admin/login")
	c.Abort()
}

// CurrentUser returns the authenticated staff user set by StaffOnly.
func CurrentUser(c *gin.Context) (models.User, bool) {
	if v, ok := c.Get(authUserKey); ok {
		if u, ok := v.(models.User); ok {
			return u, true
		}
	}
	return models.User{}, false
}
