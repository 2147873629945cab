package handlers

import (
	"gocart-admin/internal/domain/models"

	"github.com/gin-gonic/gin"
)

var driverPages = userPages{
	role:     models.RoleDriver,
	label:    "Driver",
	listTmpl: "driver_list.html",
	editTmpl: "driver_edit.html",
	listPath: "/admin/drivers",
	withNID:  true,
}

// GET /admin/drivers
func ListDrivers(c *gin.Context) { listUsers(c, driverPages) }

// GET+POST /admin/drivers/:id/edit
func EditDriver(c *gin.Context) { editUser(c, driverPages) }

// GET+POST /admin/drivers/:id/delete
func DeleteDriver(c *gin.Context) { deleteUser(c, driverPages) }
