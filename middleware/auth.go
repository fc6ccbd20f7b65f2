package middleware

import (
	"strings"

	"bakery-shop/models"
	"bakery-shop/services"

	"github.com/gin-gonic/gin"
)

// AdminAuth lets through requests carrying a valid admin bearer token.
func AdminAuth(auth *services.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenParts := strings.Split(c.GetHeader("Authorization"), " ")
		if len(tokenParts) != 2 || tokenParts[0] != "Bearer" {
			Fail(c, models.ErrUnauthorized)
			return
		}

		claims, err := auth.Verify(tokenParts[1])
		if err != nil {
			Fail(c, err)
			return
		}
		if claims.Role != "admin" {
			Fail(c, models.ErrUnauthorized)
			return
		}

		c.Set("admin", claims.Username)
		c.Next()
	}
}
