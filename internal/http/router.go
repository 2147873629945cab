package api

import (
	"log"
	stdhttp "net/http"
	"time"

	intconfig "gocart-admin/internal/config"
	h "gocart-admin/internal/http/handlers"
	"gocart-admin/internal/http/middleware"
	"gocart-admin/internal/repositories"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func NewRouter(env intconfig.Env) *gin.Engine {
	r := gin.New()
	r.Use(middleware.RequestID(), middleware.Logger(), gin.Recovery())

	if len(env.CORSOrigins) > 0 {
		r.Use(cors.New(cors.Config{
			AllowOrigins:     env.CORSOrigins,
			AllowMethods:     []string{"GET", "POST", "OPTIONS"},
			AllowHeaders:     []string{"Content-Type", "Accept", "Origin"},
			AllowCredentials: true,
			MaxAge:           24 * time.Hour,
		}))
	}

	if err := r.SetTrustedProxies(nil); err != nil {
		log.Printf("warning: failed to set trusted proxies: %v", err)
	}

	if env.TemplateGlob != "" {
		r.LoadHTMLGlob(env.TemplateGlob)
	}
	r.Static("/uploads", env.UploadDir)

	r.NoRoute(func(c *gin.Context) {
		c.JSON(stdhttp.StatusNotFound, gin.H{
			"error":  "route not found",
			"path":   c.Request.URL.Path,
			"method": c.Request.Method,
		})
	})

	r.GET("/healthz", h.Health)

	// Login and logout sit outside the staff gate.
	auth := r.Group("/admin")
	auth.GET("/login", h.ShowLogin)
	auth.POST("/login", h.Login)
	auth.GET("/logout", h.Logout)

	admin := r.Group("/admin")
	admin.Use(middleware.StaffOnly(repositories.UserRepository{}))
	{
		admin.GET("/", h.Dashboard)
		admin.GET("/db-check", h.DBCheck)

		mountCRUD(admin, "/drivers", crud{
			list: h.ListDrivers, edit: h.EditDriver, delete: h.DeleteDriver,
		})
		mountCRUD(admin, "/students", crud{
			list: h.ListStudents, edit: h.EditStudent, delete: h.DeleteStudent,
		})
		mountCRUD(admin, "/gocarts", crud{
			list: h.ListGoCarts, add: h.AddGoCart, edit: h.EditGoCart, delete: h.DeleteGoCart,
		})
		mountCRUD(admin, "/routes", crud{
			list: h.ListRoutes, add: h.AddRoute, edit: h.EditRoute, delete: h.DeleteRoute,
		})
		mountCRUD(admin, "/stops", crud{
			list: h.ListStops, add: h.AddStop, edit: h.EditStop, delete: h.DeleteStop,
		})
		mountCRUD(admin, "/schedules", crud{
			list: h.ListSchedules, add: h.AddSchedule, edit: h.EditSchedule, delete: h.DeleteSchedule,
		})
		mountCRUD(admin, "/bookings", crud{
			list: h.ListBookings, edit: h.EditBooking, delete: h.DeleteBooking,
		})
		admin.GET("/bookings/:id/ticket", h.BookingTicket)

		admin.GET("/contact-messages", h.ListContactMessages)
		admin.GET("/contact-messages/:id/view", h.ViewContactMessage)
		admin.GET("/contact-messages/:id/reply", h.ReplyContactMessage)
		admin.POST("/contact-messages/:id/reply", h.ReplyContactMessage)
		admin.GET("/contact-messages/:id/delete", h.DeleteContactMessage)
		admin.POST("/contact-messages/:id/delete", h.DeleteContactMessage)
	}

	return r
}

type crud struct {
	list   gin.HandlerFunc
	add    gin.HandlerFunc
	edit   gin.HandlerFunc
	delete gin.HandlerFunc
}

// mountCRUD wires the uniform list/add/edit/delete surface. Form pages accept
// GET for render and POST for submit; delete on GET only redirects back.
func mountCRUD(g *gin.RouterGroup, prefix string, c crud) {
	g.GET(prefix, c.list)
	if c.add != nil {
		g.GET(prefix+"/add", c.add)
		g.POST(prefix+"/add", c.add)
	}
	g.GET(prefix+"/:id/edit", c.edit)
	g.POST(prefix+"/:id/edit", c.edit)
	g.GET(prefix+"/:id/delete", c.delete)
	g.POST(prefix+"/:id/delete", c.delete)
}
