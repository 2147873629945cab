package handlers

import (
	"fmt"
	"net/http"

	"gocart-admin/internal/domain/models"
	"gocart-admin/internal/http/middleware"
	"gocart-admin/internal/utils"

	"github.com/gin-gonic/gin"
)

// gocartForm is the one validated field set in the admin: binding failures are
// rendered inline instead of the silent re-render the other entities use.
type gocartForm struct {
	NumberPlate string `form:"number_plate" binding:"required"`
	DriverID    int64  `form:"driver"`
	RouteID     int64  `form:"route"`
	Capacity    int    `form:"capacity" binding:"required,min=1"`
}

// GET /admin/gocarts
func ListGoCarts(c *gin.Context) {
	carts, err := gocartRepo.ListAll()
	if err != nil {
		renderServerError(c, "List GoCarts", err)
		return
	}
	render(c, http.StatusOK, "gocart_list.html", gin.H{"gocarts": carts})
}

func gocartFormRefs(c *gin.Context) (gin.H, bool) {
	drivers, err := userRepo.ListByRole(models.RoleDriver)
	if err != nil {
		renderServerError(c, "GoCart form", err)
		return nil, false
	}
	routes, err := routeRepo.ListAll()
	if err != nil {
		renderServerError(c, "GoCart form", err)
		return nil, false
	}
	return gin.H{"drivers": drivers, "routes": routes}, true
}

// GET+POST /admin/gocarts/add
func AddGoCart(c *gin.Context) {
	data, ok := gocartFormRefs(c)
	if !ok {
		return
	}

	if c.Request.Method != http.MethodPost {
		render(c, http.StatusOK, "gocart_form.html", data)
		return
	}

	var form gocartForm
	if err := c.ShouldBind(&form); err != nil {
		data["error"] = "Please fill in all required fields correctly."
		data["form"] = form
		render(c, http.StatusOK, "gocart_form.html", data)
		return
	}

	id, err := gocartRepo.Create(models.GoCart{
		NumberPlate: form.NumberPlate,
		DriverID:    form.DriverID,
		RouteID:     form.RouteID,
		Capacity:    form.Capacity,
	})
	if err != nil {
		renderServerError(c, "Add GoCart", err)
		return
	}

	utils.LogEvent(middleware.GetRequestID(c), "gocart", "create", fmt.Sprintf("id=%d plate=%s", id, form.NumberPlate))
	redirectWithFlash(c, "/admin/gocarts", "GoCart added successfully.")
}

// GET+POST /admin/gocarts/:id/edit
func EditGoCart(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	cart, err := gocartRepo.GetByID(id)
	if err != nil {
		renderRepoError(c, "Edit GoCart", err)
		return
	}

	data, ok := gocartFormRefs(c)
	if !ok {
		return
	}
	data["gocart"] = cart

	if c.Request.Method != http.MethodPost {
		render(c, http.StatusOK, "gocart_form.html", data)
		return
	}

	var form gocartForm
	if err := c.ShouldBind(&form); err != nil {
		data["error"] = "Please fill in all required fields correctly."
		render(c, http.StatusOK, "gocart_form.html", data)
		return
	}

	cart.NumberPlate = form.NumberPlate
	cart.DriverID = form.DriverID
	cart.RouteID = form.RouteID
	cart.Capacity = form.Capacity

	if err := gocartRepo.Update(cart); err != nil {
		renderServerError(c, "Edit GoCart", err)
		return
	}

	utils.LogEvent(middleware.GetRequestID(c), "gocart", "update", fmt.Sprintf("id=%d", id))
	redirectWithFlash(c, "/admin/gocarts", "GoCart updated successfully.")
}

// GET+POST /admin/gocarts/:id/delete
func DeleteGoCart(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	if _, err := gocartRepo.GetByID(id); err != nil {
		renderRepoError(c, "Delete GoCart", err)
		return
	}

	if c.Request.Method != http.MethodPost {
		c.Redirect(http.StatusSeeOther, "/admin/gocarts")
		return
	}

	if err := gocartRepo.Delete(id); err != nil {
		renderServerError(c, "Delete GoCart", err)
		return
	}

	utils.LogEvent(middleware.GetRequestID(c), "gocart", "delete", fmt.Sprintf("id=%d", id))
	redirectWithFlash(c, "/admin/gocarts", "GoCart deleted successfully.")
}
