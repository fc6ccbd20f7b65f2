package controllers

import (
	"fmt"
	"net/http"
	"time"

	"bakery-shop/libs"
	"bakery-shop/middleware"
	"bakery-shop/models"
	"bakery-shop/services"

	"github.com/gin-gonic/gin"
)

type AdminController struct {
	auth     *services.AuthService
	feedback *services.FeedbackService
}

func NewAdminController(auth *services.AuthService, feedback *services.FeedbackService) *AdminController {
	return &AdminController{auth: auth, feedback: feedback}
}

// @Summary Admin login
// @Tags Admin
// @Accept json
// @Produce json
// @Param input body models.AdminLoginRequest true "Credentials"
// @Success 200 {object} models.LoginResponse
// @Failure 400 {string} string
// @Failure 401 {string} string
// @Router /admin/login [post]
func (ctrl *AdminController) Login(c *gin.Context) {
	req := c.MustGet(middleware.RequestBodyKey).(models.AdminLoginRequest)

	resp, err := ctrl.auth.Login(req)
	if err != nil {
		middleware.Fail(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// @Summary List feedback
// @Tags Admin
// @Security BearerAuth
// @Produce json
// @Success 200 {array} models.FeedbackSubmission
// @Failure 401 {string} string
// @Failure 500 {string} string
// @Router /admin/feedback [get]
func (ctrl *AdminController) ListFeedback(c *gin.Context) {
	submissions, err := ctrl.feedback.List(c.Request.Context())
	if err != nil {
		middleware.Fail(c, err)
		return
	}
	c.JSON(http.StatusOK, submissions)
}

// @Summary Export feedback
// @Description Spreadsheet with every contact form submission
// @Tags Admin
// @Security BearerAuth
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success 200 {file} file
// @Failure 401 {string} string
// @Failure 500 {string} string
// @Router /admin/feedback/export [get]
func (ctrl *AdminController) ExportFeedback(c *gin.Context) {
	submissions, err := ctrl.feedback.List(c.Request.Context())
	if err != nil {
		middleware.Fail(c, err)
		return
	}

	buf, err := libs.FeedbackWorkbook(submissions)
	if err != nil {
		middleware.Fail(c, err)
		return
	}

	filename := fmt.Sprintf("feedback-%s.xlsx", time.Now().Format("2006-01-02"))
	c.Header("Content-Disposition", "attachment; filename="+filename)
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", buf.Bytes())
}
