package middleware

import (
	"log"
	"net/http"

	"bakery-shop/models"

	"github.com/gin-gonic/gin"
)

// ErrorResponder writes the last error a handler attached with c.Error as a
// plain text response. Server faults are logged and answered with a generic
// message.
func ErrorResponder() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}

		err := c.Errors.Last().Err
		status, message := models.StatusOf(err)
		if status >= http.StatusInternalServerError {
			log.Printf("[%s] %s %s failed: %v", c.GetString(requestIDKey), c.Request.Method, c.Request.URL.Path, err)
		}
		c.String(status, message)
	}
}

// Fail attaches err for ErrorResponder and stops the handler chain.
func Fail(c *gin.Context, err error) {
	_ = c.Error(err)
	c.Abort()
}
