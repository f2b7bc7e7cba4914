package handlers

import (
	"net/http"

	"studybuddy/middleware"
	"studybuddy/models"
	"studybuddy/services"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	userService *services.UserService
	guard       *services.AccessGuard
}

func NewUserHandler(userService *services.UserService, guard *services.AccessGuard) *UserHandler {
	return &UserHandler{
		userService: userService,
		guard:       guard,
	}
}

// ListUsers is only served to the administrator; everyone else sees a 404.
func (h *UserHandler) ListUsers(c *gin.Context) {
	user, _ := c.Get(middleware.ContextUserKey)
	current, _ := user.(*models.User)
	if !h.guard.CanListIdentities(current) {
		respondError(c, services.ErrNotFound)
		return
	}

	users, err := h.userService.ListUsers(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, users)
}
