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

// GET /admin/schedules
func ListSchedules(c *gin.Context) {
	schedules, err := scheduleRepo.ListAll()
	if err != nil {
		renderServerError(c, "List Schedules", err)
		return
	}
	render(c, http.StatusOK, "schedule_list.html", gin.H{"schedules": schedules})
}

func scheduleFormRefs(c *gin.Context) (gin.H, bool) {
	carts, err := gocartRepo.ListAll()
	if err != nil {
		renderServerError(c, "Schedule form", err)
		return nil, false
	}
	return gin.H{"gocarts": carts}, true
}

// GET+POST /admin/schedules/add
func AddSchedule(c *gin.Context) {
	data, ok := scheduleFormRefs(c)
	if !ok {
		return
	}

	if c.Request.Method != http.MethodPost {
		render(c, http.StatusOK, "schedule_form.html", data)
		return
	}

	gocartID, _ := strconv.ParseInt(strings.TrimSpace(c.PostForm("gocart")), 10, 64)
	travelDate := strings.TrimSpace(c.PostForm("travel_date"))
	startTime := strings.TrimSpace(c.PostForm("start_time"))
	dropTime := strings.TrimSpace(c.PostForm("drop_time"))

	if gocartID <= 0 || travelDate == "" || startTime == "" || dropTime == "" {
		render(c, http.StatusOK, "schedule_form.html", data)
		return
	}
	if _, err := utils.ParseDate(travelDate); err != nil {
		render(c, http.StatusOK, "schedule_form.html", data)
		return
	}

	id, err := scheduleRepo.Create(models.Schedule{
		GoCartID:   gocartID,
		TravelDate: travelDate,
		StartTime:  startTime,
		DropTime:   dropTime,
	})
	if err != nil {
		renderServerError(c, "Add Schedule", err)
		return
	}

	utils.LogEvent(middleware.GetRequestID(c), "schedule", "create", fmt.Sprintf("id=%d date=%s", id, travelDate))
	redirectWithFlash(c, "/admin/schedules", "Schedule added successfully.")
}

// GET+POST /admin/schedules/:id/edit
func EditSchedule(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	schedule, err := scheduleRepo.GetByID(id)
	if err != nil {
		renderRepoError(c, "Edit Schedule", err)
		return
	}

	data, ok := scheduleFormRefs(c)
	if !ok {
		return
	}
	data["schedule"] = schedule

	if c.Request.Method != http.MethodPost {
		render(c, http.StatusOK, "schedule_form.html", data)
		return
	}

	schedule.GoCartID, _ = strconv.ParseInt(strings.TrimSpace(c.PostForm("gocart")), 10, 64)
	schedule.TravelDate = strings.TrimSpace(c.PostForm("travel_date"))
	schedule.StartTime = strings.TrimSpace(c.PostForm("start_time"))
	schedule.DropTime = strings.TrimSpace(c.PostForm("drop_time"))

	if err := scheduleRepo.Update(schedule); err != nil {
		renderServerError(c, "Edit Schedule", err)
		return
	}

	utils.LogEvent(middleware.GetRequestID(c), "schedule", "update", fmt.Sprintf("id=%d", id))
	redirectWithFlash(c, "/admin/schedules", "Schedule updated successfully.")
}

// GET+POST /admin/schedules/:id/delete
func DeleteSchedule(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	if _, err := scheduleRepo.GetByID(id); err != nil {
		renderRepoError(c, "Delete Schedule", err)
		return
	}

	if c.Request.Method != http.MethodPost {
		c.Redirect(http.StatusSeeOther, "/admin/schedules")
		return
	}

	if err := scheduleRepo.Delete(id); err != nil {
		renderServerError(c, "Delete Schedule", err)
		return
	}

	utils.LogEvent(middleware.GetRequestID(c), "schedule", "delete", fmt.Sprintf("id=%d", id))
	redirectWithFlash(c, "/admin/schedules", "Schedule deleted successfully.")
}
