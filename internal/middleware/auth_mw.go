package middleware

import (
	"errors"
	"net/http"
	"strings"

	"jobtrail/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

const (
	// AuthUserKey holds the resolved *model.User in the gin context
	AuthUserKey = "authUser"
	// AuthUserNameKey holds the owner name used for resource scoping
	AuthUserNameKey = "authUserName"
)

// TokenAuthMiddleware resolves the Authorization header to a user via an
// exact access-token match. Clients may send the raw token or prefix it with
// "Bearer ". Every resource route sits behind this guard; there is no other
// authentication path.
func TokenAuthMiddleware(authService service.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header required"})
			return
		}

		token := authHeader
		if len(token) > 7 && strings.EqualFold(token[:7], "Bearer ") {
			token = token[7:]
		}

		user, err := authService.Authenticate(c.Request.Context(), token)
		if err != nil {
			if !errors.Is(err, service.ErrInvalidToken) {
				log.Error().Err(err).Msg("token lookup failed")
			}
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid access token"})
			return
		}

		c.Set(AuthUserKey, user)
		c.Set(AuthUserNameKey, user.Name)

		c.Next()
	}
}
