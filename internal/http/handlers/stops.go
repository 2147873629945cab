package handlers

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"gocart-admin/internal/domain/models"
	"gocart-admin/internal/http/middleware"
	"gocart-admin/internal/utils"

	"github.com/gin-gonic/gin"
)

// GET /admin/stops
func ListStops(c *gin.Context) {
	stops, err := stopRepo.ListAll()
	if err != nil {
		renderServerError(c, "List Stops", err)
		return
	}
	render(c, http.StatusOK, "stop_list.html", gin.H{"stops": stops})
}

// GET+POST /admin/stops/add
func AddStop(c *gin.Context) {
	if c.Request.Method != http.MethodPost {
		render(c, http.StatusOK, "stop_form.html", gin.H{})
		return
	}

	name := strings.TrimSpace(c.PostForm("name"))
	latRaw := strings.TrimSpace(c.PostForm("latitude"))
	lngRaw := strings.TrimSpace(c.PostForm("longitude"))

	lat, latErr := strconv.ParseFloat(latRaw, 64)
	lng, lngErr := strconv.ParseFloat(lngRaw, 64)

	// Incomplete submissions fall back to the blank form without a message.
	if name == "" || latErr != nil || lngErr != nil {
		render(c, http.StatusOK, "stop_form.html", gin.H{})
		return
	}

	id, err := stopRepo.Create(models.Stop{Name: name, Latitude: lat, Longitude: lng})
	if err != nil {
		renderServerError(c, "Add Stop", err)
		return
	}

	utils.LogEvent(middleware.GetRequestID(c), "stop", "create", fmt.Sprintf("id=%d name=%s", id, name))
	redirectWithFlash(c, "/admin/stops", "Stop added successfully.")
}

// GET+POST /admin/stops/:id/edit
func EditStop(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	stop, err := stopRepo.GetByID(id)
	if err != nil {
		renderRepoError(c, "Edit Stop", err)
		return
	}

	if c.Request.Method != http.MethodPost {
		render(c, http.StatusOK, "stop_form.html", gin.H{"stop": stop})
		return
	}

	stop.Name = c.PostForm("name")
	stop.Latitude, _ = strconv.ParseFloat(strings.TrimSpace(c.PostForm("latitude")), 64)
	stop.Longitude, _ = strconv.ParseFloat(strings.TrimSpace(c.PostForm("longitude")), 64)

	if err := stopRepo.Update(stop); err != nil {
		renderServerError(c, "Edit Stop", err)
		return
	}

	utils.LogEvent(middleware.GetRequestID(c), "stop", "update", fmt.Sprintf("id=%d", id))
	redirectWithFlash(c, "/admin/stops", "Stop updated successfully.")
}

// GET+POST /admin/stops/:id/delete
func DeleteStop(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	if _, err := stopRepo.GetByID(id); err != nil {
		renderRepoError(c, "Delete Stop", err)
		return
	}

	if c.Request.Method != http.MethodPost {
		c.Redirect(http.StatusSeeOther, "/admin/stops")
		return
	}

	if err := stopRepo.Delete(id); err != nil {
		renderServerError(c, "Delete Stop", err)
		return
	}

	utils.LogEvent(middleware.GetRequestID(c), "stop", "delete", fmt.Sprintf("id=%d", id))
	redirectWithFlash(c, "/admin/stops", "Stop deleted successfully.")
}
