package handlers

import (
	"bytes"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yungbote/agrinet/internal/http/response"
	"github.com/yungbote/agrinet/internal/platform/logger"
	"github.com/yungbote/agrinet/internal/services"
	"github.com/yungbote/agrinet/internal/web/pages"
)

type ContactHandler struct {
	log     *logger.Logger
	contact services.ContactService
}

func NewContactHandler(log *logger.Logger, contact services.ContactService) *ContactHandler {
	return &ContactHandler{
		log:     log.With("handler", "ContactHandler"),
		contact: contact,
	}
}

const msgContactBody = "Please fill in your name, email and message."

// Submit accepts the contact form either as JSON or as a plain form post. Form posts
// get an HTML notice page back so the form works without JavaScript.
func (h *ContactHandler) Submit(c *gin.Context) {
	wantsJSON := c.ContentType() == gin.MIMEJSON

	var in services.ContactInput
	if err := c.ShouldBind(&in); err != nil {
		h.log.Warn("contact body rejected", "error", err)
		h.respond(c, wantsJSON, http.StatusBadRequest, "invalid_body", msgContactBody)
		return
	}

	msg, err := h.contact.Submit(c.Request.Context(), in)
	switch {
	case errors.Is(err, services.ErrInvalidContact):
		h.respond(c, wantsJSON, http.StatusBadRequest, "invalid_contact", services.ContactProblem(err))
		return
	case err != nil:
		h.log.Error("contact submit failed", "error", err)
		h.respond(c, wantsJSON, http.StatusInternalServerError, "contact_failed", "Your message could not be sent. Please try again later.")
		return
	}

	if wantsJSON {
		response.RespondCreated(c, gin.H{"id": msg.ID.String()})
		return
	}
	h.notice(c, http.StatusOK, "Thank you!", "We received your message and will get back to you soon.", false)
}

func (h *ContactHandler) respond(c *gin.Context, wantsJSON bool, status int, code string, public string) {
	if wantsJSON {
		response.RespondError(c, status, code, errors.New(public))
		return
	}
	h.notice(c, status, "Your message was not sent", public, true)
}

func (h *ContactHandler) notice(c *gin.Context, status int, heading, message string, isError bool) {
	var buf bytes.Buffer
	if err := pages.RenderDocument(&buf, pages.HomeMetadata(), pages.Notice(heading, message, isError)); err != nil {
		h.log.Error("render notice page failed", "error", err)
		c.String(http.StatusInternalServerError, "internal server error")
		return
	}
	response.RespondHTML(c, status, buf.Bytes())
}
