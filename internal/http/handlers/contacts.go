package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"gocart-admin/internal/http/middleware"
	"gocart-admin/internal/mail"
	"gocart-admin/internal/utils"

	"github.com/gin-gonic/gin"
)

// GET /admin/contact-messages
func ListContactMessages(c *gin.Context) {
	messages, err := contactRepo.ListAll()
	if err != nil {
		renderServerError(c, "List Contact Messages", err)
		return
	}
	render(c, http.StatusOK, "contact_list.html", gin.H{"messages": messages})
}

// GET /admin/contact-messages/:id/view
func ViewContactMessage(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	msg, err := contactRepo.GetByID(id)
	if err != nil {
		renderRepoError(c, "View Contact Message", err)
		return
	}
	render(c, http.StatusOK, "contact_view.html", gin.H{"message": msg})
}

// GET+POST /admin/contact-messages/:id/reply
func ReplyContactMessage(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	msg, err := contactRepo.GetByID(id)
	if err != nil {
		renderRepoError(c, "Reply Contact Message", err)
		return
	}

	data := gin.H{"message": msg}

	if c.Request.Method != http.MethodPost {
		render(c, http.StatusOK, "contact_reply.html", data)
		return
	}

	subject := strings.TrimSpace(c.PostForm("subject"))
	body := c.PostForm("body")
	if subject == "" {
		subject = "Re: " + msg.Subject
	}

	if mailer == nil {
		renderServerError(c, "Reply Contact Message", fmt.Errorf("mail transport not configured"))
		return
	}

	if err := mailer.Send(msg.Email, subject, body); err != nil {
		// A malformed header is the one send failure handled in place; the
		// message stays unreplied and the error text is shown.
		if errors.Is(err, mail.ErrBadHeader) {
			data["sendError"] = err.Error()
			render(c, http.StatusOK, "contact_reply.html", data)
			return
		}
		renderServerError(c, "Reply Contact Message", err)
		return
	}

	if err := contactRepo.MarkReplied(id); err != nil {
		renderServerError(c, "Reply Contact Message", err)
		return
	}

	msg.Replied = true
	data["message"] = msg
	data["sent"] = true
	utils.LogEvent(middleware.GetRequestID(c), "contact", "reply", fmt.Sprintf("id=%d to=%s", id, msg.Email))
	render(c, http.StatusOK, "contact_reply.html", data)
}

// GET+POST /admin/contact-messages/:id/delete
func DeleteContactMessage(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	if _, err := contactRepo.GetByID(id); err != nil {
		renderRepoError(c, "Delete Contact Message", err)
		return
	}

	if c.Request.Method != http.MethodPost {
		c.Redirect(http.StatusSeeOther, "/admin/contact-messages")
		return
	}

	if err := contactRepo.Delete(id); err != nil {
		renderServerError(c, "Delete Contact Message", err)
		return
	}

	utils.LogEvent(middleware.GetRequestID(c), "contact", "delete", fmt.Sprintf("id=%d", id))
	redirectWithFlash(c, "/admin/contact-messages", "Message deleted successfully.")
}
