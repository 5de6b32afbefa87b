package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"planner/internal/auth"
	"planner/internal/middleware"
	"planner/internal/repository"
	"planner/internal/service"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ErrorResponse is the body of a failed page or form request.
type ErrorResponse struct {
	Error string `json:"error"`
	Field string `json:"field,omitempty"`
}

func currentUser(c *gin.Context) (auth.Identity, bool) {
	identity, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Not authenticated"})
	}
	return identity, ok
}

// pathID reads a positive integer path parameter. Anything else is treated as
// an unknown resource.
func pathID(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "Not found"})
		return 0, false
	}
	return uint(id), true
}

func eventURL(id uint) string {
	return fmt.Sprintf("/event/%d", id)
}

// respondError maps service errors onto page responses.
func respondError(c *gin.Context, logger *zap.Logger, err error) {
	var verr *service.ValidationError
	switch {
	case errors.As(err, &verr):
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: verr.Message, Field: verr.Field})
	case errors.Is(err, repository.ErrEventNotFound), errors.Is(err, repository.ErrTaskNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "Not found"})
	default:
		logger.Error("request failed",
			zap.String("path", c.FullPath()),
			zap.String("request_id", c.GetString(middleware.RequestIDKey)),
			zap.Error(err))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Internal server error"})
	}
}
