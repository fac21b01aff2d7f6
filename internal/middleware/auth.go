package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/jengzang/vacances-backend-go/internal/auth"
	"github.com/jengzang/vacances-backend-go/pkg/response"
)

// AdminAuth requires a valid admin bearer token
func AdminAuth(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || strings.TrimSpace(token) == "" {
			response.Error(c, http.StatusUnauthorized, "Missing bearer token", nil)
			return
		}

		claims, err := auth.Verify(secret, strings.TrimSpace(token))
		if err != nil {
			code := http.StatusUnauthorized
			if errors.Is(err, auth.ErrForbidden) {
				code = http.StatusForbidden
			}
			response.Error(c, code, "Unauthorized", err)
			return
		}

		c.Set("subject", claims.Subject)
		c.Next()
	}
}
