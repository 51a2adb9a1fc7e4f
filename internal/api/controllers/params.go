package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"scoutinghike/internal/services"
	"scoutinghike/pkg/middleware"
	"scoutinghike/pkg/utils"
)

// organizerFrom reads the identity JWTAuthMiddleware stored on the context.
func organizerFrom(c *gin.Context) (services.Organizer, bool) {
	id, err := uuid.Parse(c.GetString(middleware.UserIDKey))
	if err != nil {
		utils.RespondError(c, http.StatusUnauthorized, "Invalid or expired token")
		c.Abort()
		return services.Organizer{}, false
	}
	return services.NewOrganizer(id, c.GetString(middleware.RoleKey)), true
}

func uuidParam(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid "+name)
		return uuid.Nil, false
	}
	return id, true
}
