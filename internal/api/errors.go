package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/pageza/recipe-finder/backend/internal/service"
	"github.com/pageza/recipe-finder/backend/internal/types"
)

const (
	msgQueryRequired   = "Query parameter is required and must be a string"
	msgInvalidRecipeID = "Recipe ID must be a valid number"
	msgUnexpected      = "An unexpected error occurred"
)

// ValidationError is a malformed request parameter. It never reaches the upstream.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// errorResponse maps a handler failure onto the response body. Only an
// upstream 401 keeps its status; quota and not-found collapse into 500.
// Any other error keeps its message, the generic one is used only when empty.
func errorResponse(err error) types.ErrorResponse {
	var validationErr *ValidationError
	if errors.As(err, &validationErr) {
		return types.ErrorResponse{
			Error:      "Bad Request",
			Message:    validationErr.Message,
			StatusCode: http.StatusBadRequest,
		}
	}

	var upstreamErr *service.UpstreamError
	if errors.As(err, &upstreamErr) {
		status := http.StatusInternalServerError
		if upstreamErr.Kind == service.KindUnauthorized {
			status = http.StatusUnauthorized
		}
		return types.ErrorResponse{
			Error:      "Internal Server Error",
			Message:    upstreamErr.Message,
			StatusCode: status,
		}
	}

	message := msgUnexpected
	if err != nil && err.Error() != "" {
		message = err.Error()
	}
	return types.ErrorResponse{
		Error:      "Internal Server Error",
		Message:    message,
		StatusCode: http.StatusInternalServerError,
	}
}

// handleError logs err and writes its response
func (h *RecipeHandler) handleError(c *gin.Context, err error) {
	resp := errorResponse(err)

	logger := zerolog.Ctx(c.Request.Context())
	event := logger.Error()
	if resp.StatusCode == http.StatusBadRequest {
		event = logger.Debug()
	}
	event.Err(err).Str("path", c.Request.URL.Path).Int("status", resp.StatusCode).Msg("request failed")

	c.JSON(resp.StatusCode, resp)
}
