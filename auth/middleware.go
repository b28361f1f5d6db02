package auth

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/TheLastAirbenderAng/payment-calculator/utils"
)

const ownerKey = "ownerID"

// RequireAuth returns gin middleware that validates the bearer token and
// stores the authenticated owner ID on the request context.
func RequireAuth(jwtManager *JWTManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			utils.HandleError(c, utils.NewUnauthorizedError(utils.ErrUnauthorized))
			c.Abort()
			return
		}

		token := strings.TrimPrefix(header, "Bearer ")
		if token == header {
			utils.HandleError(c, utils.NewUnauthorizedError("Authorization header must be a bearer token"))
			c.Abort()
			return
		}

		claims, err := jwtManager.Validate(token)
		if err != nil {
			utils.HandleError(c, utils.NewUnauthorizedError("Invalid or expired token"))
			c.Abort()
			return
		}

		c.Set(ownerKey, claims.UserID)
		c.Next()
	}
}

// OwnerID returns the authenticated owner ID set by RequireAuth.
func OwnerID(c *gin.Context) string {
	return c.GetString(ownerKey)
}
