package handlers

import (
	"fmt"
	"net/http"
	"path/filepath"
	"time"

	"gocart-admin/internal/http/middleware"
	"gocart-admin/internal/utils"

	"github.com/gin-gonic/gin"
)

// Drivers and students are both User records distinguished by role; the
// handlers below share the mechanics and the wrappers pin the role, template
// names and editable field set.

type userPages struct {
	role     string
	label    string
	listTmpl string
	editTmpl string
	listPath string
	withNID  bool
}

func listUsers(c *gin.Context, p userPages) {
	users, err := userRepo.ListByRole(p.role)
	if err != nil {
		renderServerError(c, "List "+p.label, err)
		return
	}
	render(c, http.StatusOK, p.listTmpl, gin.H{p.role + "s": users})
}

func editUser(c *gin.Context, p userPages) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	user, err := userRepo.GetByID(id, p.role)
	if err != nil {
		renderRepoError(c, "Edit "+p.label, err)
		return
	}

	if c.Request.Method != http.MethodPost {
		render(c, http.StatusOK, p.editTmpl, gin.H{p.role: user})
		return
	}

	// Overwrite every editable field from the submission; omitted inputs
	// arrive empty and are stored empty, not preserved.
	user.FirstName = c.PostForm("first_name")
	user.LastName = c.PostForm("last_name")
	user.Email = c.PostForm("email")
	user.Phone = c.PostForm("phone")
	user.Gender = c.PostForm("gender")
	user.DOB = c.PostForm("dob")
	user.PresentAddress = c.PostForm("present_address")
	user.PostalCode = c.PostForm("postal_code")
	user.HomeDistrict = c.PostForm("home_district")
	user.Nationality = c.PostForm("nationality")
	if p.withNID {
		user.NIDCardNo = c.PostForm("nid_card_no")
	}

	updatePicture := false
	if file, err := c.FormFile("profile_picture"); err == nil && file != nil {
		name := fmt.Sprintf("%s-%d-%d%s", p.role, user.ID, time.Now().Unix(), filepath.Ext(file.Filename))
		dst := filepath.Join(uploadDir, name)
		if err := c.SaveUploadedFile(file, dst); err != nil {
			renderServerError(c, "Edit "+p.label, err)
			return
		}
		user.ProfilePicture = dst
		updatePicture = true
	}

	if err := userRepo.Update(user, updatePicture); err != nil {
		renderServerError(c, "Edit "+p.label, err)
		return
	}

	utils.LogEvent(middleware.GetRequestID(c), p.role, "update", fmt.Sprintf("id=%d", user.ID))
	redirectWithFlash(c, p.listPath, p.label+" updated successfully.")
}

func deleteUser(c *gin.Context, p userPages) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	if _, err := userRepo.GetByID(id, p.role); err != nil {
		renderRepoError(c, "Delete "+p.label, err)
		return
	}

	// A bare navigation performs no deletion.
	if c.Request.Method != http.MethodPost {
		c.Redirect(http.StatusSeeOther, p.listPath)
		return
	}

	if err := userRepo.Delete(id, p.role); err != nil {
		renderServerError(c, "Delete "+p.label, err)
		return
	}

	utils.LogEvent(middleware.GetRequestID(c), p.role, "delete", fmt.Sprintf("id=%d", id))
	redirectWithFlash(c, p.listPath, p.label+" deleted successfully.")
}
