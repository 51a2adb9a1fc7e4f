package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	mem "scoutinghike/pkg/memcache"
	"scoutinghike/pkg/utils"
)

const (
	UserIDKey           = "user_id"
	RoleKey             = "Role"
	VolunteerSessionKey = "volunteer_session"

	VolunteerSessionHeader = "X-Volunteer-Session"
)

func JWTAuthMiddleware(issuer *utils.TokenIssuer) gin.HandlerFunc {

	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			utils.RespondError(c, http.StatusUnauthorized, "Authorization header missing or invalid")
			c.Abort()
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		claims, err := issuer.ValidateToken(tokenString)
		if err != nil {
			utils.RespondError(c, http.StatusUnauthorized, "Invalid or expired token")
			c.Abort()
			return
		}

		// Pass user information to the next handler
		c.Set(UserIDKey, claims.UserID)
		c.Set(RoleKey, claims.Role)
		c.Next()
	}
}

func RoleMiddleware(requiredRole string) gin.HandlerFunc {

	return func(c *gin.Context) {
		role := c.GetString(RoleKey)

		if role != requiredRole {
			utils.RespondError(c, http.StatusForbidden, "Forbidden: insufficient permissions")
			c.Abort()
			return
		}

		c.Next()
	}
}

type SessionResolver interface {
	Resolve(ctx context.Context, token string) (mem.VolunteerSession, error)
}

// VolunteerSessionMiddleware admits requests carrying a session token
// obtained by redeeming an access code.
func VolunteerSessionMiddleware(resolver SessionResolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := c.GetHeader(VolunteerSessionHeader)
		if token == "" {
			utils.RespondError(c, http.StatusUnauthorized, "Volunteer session missing")
			c.Abort()
			return
		}

		session, err := resolver.Resolve(c.Request.Context(), token)
		if err != nil {
			utils.HandleServiceError(c, "Niet ingelogd", err)
			return
		}

		c.Set(VolunteerSessionKey, session)
		c.Next()
	}
}

// CurrentVolunteer returns the session stored by VolunteerSessionMiddleware.
func CurrentVolunteer(c *gin.Context) (mem.VolunteerSession, bool) {
	v, ok := c.Get(VolunteerSessionKey)
	if !ok {
		return mem.VolunteerSession{}, false
	}
	session, ok := v.(mem.VolunteerSession)
	return session, ok
}
