package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"stayfinder-backend/services"
	"stayfinder-backend/utils"
)

// ContextUserID is the gin context key holding the authenticated user id.
const ContextUserID = "userID"

// Auth verifies the session token from the Authorization header or the
// "token" cookie and stores the user id in the request context. Handlers
// behind it only ever consume that id.
func Auth(secret string) gin.HandlerFunc {
	key := []byte(secret)
	return func(c *gin.Context) {
		tokenString := ""
		if header := c.GetHeader("Authorization"); header != "" {
			parts := strings.SplitN(header, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
				utils.JSONError(c, http.StatusUnauthorized, "Unauthorized")
				c.Abort()
				return
			}
			tokenString = parts[1]
		} else if cookie, err := c.Cookie("token"); err == nil {
			tokenString = cookie
		}

		if tokenString == "" {
			utils.JSONError(c, http.StatusUnauthorized, "Unauthorized")
			c.Abort()
			return
		}

		token, err := jwt.ParseWithClaims(tokenString, &services.Claims{}, func(t *jwt.Token) (interface{}, error) {
			return key, nil
		})
		if err != nil || !token.Valid {
			utils.JSONError(c, http.StatusUnauthorized, "Unauthorized")
			c.Abort()
			return
		}

		claims, ok := token.Claims.(*services.Claims)
		if !ok || claims.Sub == "" {
			utils.JSONError(c, http.StatusUnauthorized, "Unauthorized")
			c.Abort()
			return
		}

		c.Set(ContextUserID, claims.Sub)
		c.Next()
	}
}
