package v1

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"portfolio-backend/internal/delivery/http/response"
	"portfolio-backend/internal/domain"
	"portfolio-backend/pkg/apperror"
)

type ContactHandler struct {
	contactUC domain.ContactUsecase
}

// NewContactHandler registers the contact routes. Submission is public;
// message management requires authentication. Any authenticated caller may
// manage messages; a role model would gate this further.
func NewContactHandler(public *gin.RouterGroup, protected *gin.RouterGroup, contactUC domain.ContactUsecase) {
	handler := &ContactHandler{contactUC: contactUC}

	public.POST("/contact", handler.Submit)

	messages := protected.Group("/contact/messages")
	{
		messages.GET("", handler.List)
		messages.GET("/:id", handler.Get)
		messages.PUT("/:id/read", handler.MarkRead)
		messages.DELETE("/:id", handler.Delete)
	}
}

// Submit godoc
// @Summary      Submit the contact form
// @Description  Send a message to the portfolio owner. Public endpoint.
// @Tags         contact
// @Accept       json
// @Produce      json
// @Param        contact  body      domain.ContactSubmission  true  "Contact form data"
// @Success      201      {object}  map[string]interface{}
// @Failure      400      {object}  response.ErrorBody
// @Failure      500      {object}  response.ErrorBody
// @Router       /contact [post]
func (h *ContactHandler) Submit(c *gin.Context) {
	var req domain.ContactSubmission
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest("Invalid request body"))
		return
	}

	msg, err := h.contactUC.Submit(c.Request.Context(), &req)
	if err != nil {
		h.fail(c, err, "Failed to send message")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Contact message sent successfully",
		"id":      msg.ID,
	})
}

// List godoc
// @Summary      List contact messages
// @Description  Page through received messages, newest first
// @Tags         contact
// @Produce      json
// @Param        page      query     int  false  "Page number"
// @Param        per_page  query     int  false  "Page size (max 100)"
// @Success      200       {object}  domain.ContactPage
// @Failure      401       {object}  response.ErrorBody
// @Router       /contact/messages [get]
// @Security     BearerAuth
func (h *ContactHandler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	perPage, _ := strconv.Atoi(c.DefaultQuery("per_page", "10"))

	result, err := h.contactUC.List(c.Request.Context(), page, perPage)
	if err != nil {
		h.fail(c, err, "Failed to get messages")
		return
	}

	c.JSON(http.StatusOK, result)
}

// Get godoc
// @Summary      Get one contact message
// @Tags         contact
// @Produce      json
// @Param        id   path      int  true  "Message ID"
// @Success      200  {object}  map[string]interface{}
// @Failure      404  {object}  response.ErrorBody
// @Router       /contact/messages/{id} [get]
// @Security     BearerAuth
func (h *ContactHandler) Get(c *gin.Context) {
	id, err := messageID(c)
	if err != nil {
		c.Error(err)
		return
	}

	msg, err := h.contactUC.Get(c.Request.Context(), id)
	if err != nil {
		h.fail(c, err, "Failed to get message")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": msg})
}

// MarkRead godoc
// @Summary      Mark a contact message as read
// @Tags         contact
// @Produce      json
// @Param        id   path      int  true  "Message ID"
// @Success      200  {object}  map[string]interface{}
// @Failure      404  {object}  response.ErrorBody
// @Failure      500  {object}  response.ErrorBody
// @Router       /contact/messages/{id}/read [put]
// @Security     BearerAuth
func (h *ContactHandler) MarkRead(c *gin.Context) {
	id, err := messageID(c)
	if err != nil {
		c.Error(err)
		return
	}

	msg, err := h.contactUC.MarkRead(c.Request.Context(), id)
	if err != nil {
		h.fail(c, err, "Failed to mark message as read")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":         "Message marked as read",
		"contact_message": msg,
	})
}

// Delete godoc
// @Summary      Delete a contact message
// @Tags         contact
// @Produce      json
// @Param        id   path      int  true  "Message ID"
// @Success      200  {object}  map[string]interface{}
// @Failure      404  {object}  response.ErrorBody
// @Failure      500  {object}  response.ErrorBody
// @Router       /contact/messages/{id} [delete]
// @Security     BearerAuth
func (h *ContactHandler) Delete(c *gin.Context) {
	id, err := messageID(c)
	if err != nil {
		c.Error(err)
		return
	}

	if err := h.contactUC.Delete(c.Request.Context(), id); err != nil {
		h.fail(c, err, "Failed to delete message")
		return
	}

	response.Message(c, http.StatusOK, "Contact message deleted successfully")
}

// fail passes expected client errors through and replaces anything else
// with the endpoint's generic 500 message; detail stays in the server log.
func (h *ContactHandler) fail(c *gin.Context, err error, fallback string) {
	if apperror.IsClientError(err) {
		c.Error(err)
		return
	}
	c.Error(apperror.New(http.StatusInternalServerError, fallback, err))
}

func messageID(c *gin.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return 0, apperror.BadRequest("Invalid ID format")
	}
	return id, nil
}
