package handlers

import (
	"fmt"
	"net/http"
	"strings"

	"gocart-admin/internal/http/middleware"
	"gocart-admin/internal/utils"

	"github.com/gin-gonic/gin"
)

// GET /admin/routes
func ListRoutes(c *gin.Context) {
	routes, err := routeRepo.ListAll()
	if err != nil {
		renderServerError(c, "List Routes", err)
		return
	}
	render(c, http.StatusOK, "route_list.html", gin.H{"routes": routes})
}

func routeFormRefs(c *gin.Context) (gin.H, bool) {
	stops, err := stopRepo.ListAll()
	if err != nil {
		renderServerError(c, "Route form", err)
		return nil, false
	}
	return gin.H{"stops": stops}, true
}

// GET+POST /admin/routes/add
func AddRoute(c *gin.Context) {
	data, ok := routeFormRefs(c)
	if !ok {
		return
	}

	if c.Request.Method != http.MethodPost {
		render(c, http.StatusOK, "route_form.html", data)
		return
	}

	name := strings.TrimSpace(c.PostForm("name"))
	if name == "" {
		render(c, http.StatusOK, "route_form.html", data)
		return
	}

	id, err := routeRepo.Create(name)
	if err != nil {
		renderServerError(c, "Add Route", err)
		return
	}

	stopIDs := utils.ParseIDList(c.PostFormArray("stops"))
	if err := routeRepo.ReplaceStops(id, stopIDs); err != nil {
		renderServerError(c, "Add Route", err)
		return
	}

	utils.LogEvent(middleware.GetRequestID(c), "route", "create", fmt.Sprintf("id=%d name=%s stops=%d", id, name, len(stopIDs)))
	redirectWithFlash(c, "/admin/routes", "Route added successfully.")
}

// GET+POST /admin/routes/:id/edit
func EditRoute(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	route, err := routeRepo.GetByID(id)
	if err != nil {
		renderRepoError(c, "Edit Route", err)
		return
	}

	data, ok := routeFormRefs(c)
	if !ok {
		return
	}
	data["route"] = route

	selected := map[int64]bool{}
	for _, stopID := range route.StopIDs {
		selected[stopID] = true
	}
	data["selectedStops"] = selected

	if c.Request.Method != http.MethodPost {
		render(c, http.StatusOK, "route_form.html", data)
		return
	}

	name := strings.TrimSpace(c.PostForm("name"))
	if name == "" {
		render(c, http.StatusOK, "route_form.html", data)
		return
	}

	if err := routeRepo.UpdateName(id, name); err != nil {
		renderServerError(c, "Edit Route", err)
		return
	}

	// Full replace of the stop set: anything absent from the submission is
	// detached, anything new attached.
	stopIDs := utils.ParseIDList(c.PostFormArray("stops"))
	if err := routeRepo.ReplaceStops(id, stopIDs); err != nil {
		renderServerError(c, "Edit Route", err)
		return
	}

	utils.LogEvent(middleware.GetRequestID(c), "route", "update", fmt.Sprintf("id=%d stops=%d", id, len(stopIDs)))
	redirectWithFlash(c, "/admin/routes", "Route updated successfully.")
}

// GET+POST /admin/routes/:id/delete
func DeleteRoute(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	if _, err := routeRepo.GetByID(id); err != nil {
		renderRepoError(c, "Delete Route", err)
		return
	}

	if c.Request.Method != http.MethodPost {
		c.Redirect(http.StatusSeeOther, "/admin/routes")
		return
	}

	if err := routeRepo.Delete(id); err != nil {
		renderServerError(c, "Delete Route", err)
		return
	}

	utils.LogEvent(middleware.GetRequestID(c), "route", "delete", fmt.Sprintf("id=%d", id))
	redirectWithFlash(c, "/admin/routes", "Route deleted successfully.")
}
