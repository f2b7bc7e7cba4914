package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"studybuddy/middleware"
	"studybuddy/services"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type ErrorResponse struct {
	Error string `json:"error"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

// respondError maps a service error onto a status code. Unknown errors are
// logged and hidden behind a generic 500.
func respondError(c *gin.Context, err error) {
	var missing *services.MissingAnswerError
	var invalid *services.InvalidAnswerError

	switch {
	case errors.Is(err, services.ErrNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "not found"})
	case errors.Is(err, services.ErrUserExists), errors.Is(err, services.ErrSummaryExists):
		c.JSON(http.StatusConflict, ErrorResponse{Error: err.Error()})
	case errors.Is(err, services.ErrInvalidLogin):
		c.Header("WWW-Authenticate", "Bearer")
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: err.Error()})
	case errors.Is(err, services.ErrMissingCredential),
		errors.Is(err, services.ErrInvalidOrExpiredToken),
		errors.Is(err, services.ErrUnknownIdentity):
		middleware.Unauthorized(c)
	case errors.Is(err, services.ErrInvalidCredentialFormat),
		errors.Is(err, services.ErrNoQuestions),
		errors.Is(err, services.ErrInvalidQuestion),
		errors.Is(err, services.ErrInvalidDate),
		errors.Is(err, services.ErrInvalidInput),
		errors.As(err, &missing),
		errors.As(err, &invalid):
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	default:
		zap.L().Error("request failed",
			zap.String("method", c.Request.Method),
			zap.String("path", c.FullPath()),
			zap.Error(err))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal server error"})
	}
}

func badRequest(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
}

// currentUserID reads the id set by middleware.AuthMiddleware.
func currentUserID(c *gin.Context) (uint, bool) {
	v, ok := c.Get(middleware.ContextUserIDKey)
	if !ok {
		middleware.Unauthorized(c)
		return 0, false
	}
	id, ok := v.(uint)
	if !ok || id == 0 {
		middleware.Unauthorized(c)
		return 0, false
	}
	return id, true
}

func parseID(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid " + name})
		return 0, false
	}
	return uint(id), true
}
