package handlers

import (
	"gocart-admin/internal/domain/models"

	"github.com/gin-gonic/gin"
)

var studentPages = userPages{
	role:     models.RoleStudent,
	label:    "Student",
	listTmpl: "student_list.html",
	editTmpl: "student_edit.html",
	listPath: "/admin/students",
}

// GET /admin/students
func ListStudents(c *gin.Context) { listUsers(c, studentPages) }

// GET+POST /admin/students/:id/edit
func EditStudent(c *gin.Context) { editUser(c, studentPages) }

// GET+POST /admin/students/:id/delete
func DeleteStudent(c *gin.Context) { deleteUser(c, studentPages) }
