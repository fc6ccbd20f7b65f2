package controllers

import (
	"net/http"

	"bakery-shop/middleware"
	"bakery-shop/models"
	"bakery-shop/services"

	"github.com/gin-gonic/gin"
)

type ContactController struct {
	feedback *services.FeedbackService
}

func NewContactController(feedback *services.FeedbackService) *ContactController {
	return &ContactController{feedback: feedback}
}

// @Summary Contact us
// @Description Stores a message. One message per email address is accepted.
// @Tags Contact
// @Accept json
// @Produce plain
// @Param input body models.ContactRequest true "Message"
// @Success 200 {string} string
// @Failure 400 {string} string
// @Failure 409 {string} string
// @Failure 500 {string} string
// @Router /contact-us [post]
func (ctrl *ContactController) PostContact(c *gin.Context) {
	req := c.MustGet(middleware.RequestBodyKey).(models.ContactRequest)

	confirmation, err := ctrl.feedback.Record(c.Request.Context(), req)
	if err != nil {
		middleware.Fail(c, err)
		return
	}
	c.String(http.StatusOK, confirmation)
}
