package middleware

import (
	"fmt"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/pageza/recipe-finder/backend/internal/types"
)

// genericErrorMessage replaces internal error text outside development
const genericErrorMessage = "An unexpected error occurred"

// ErrorHandler recovers panics escaping the handlers and answers with a JSON
// 500. The panic value is exposed as the message only when exposeErrors is set.
// gin's own recovery output is discarded, the panic is logged here instead.
func ErrorHandler(exposeErrors bool) gin.HandlerFunc {
	return gin.CustomRecoveryWithWriter(io.Discard, func(c *gin.Context, recovered any) {
		zerolog.Ctx(c.Request.Context()).Error().
			Str("panic", fmt.Sprint(recovered)).
			Str("path", c.Request.URL.Path).
			Msg("unhandled error")

		message := genericErrorMessage
		if exposeErrors {
			if err, ok := recovered.(error); ok {
				message = err.Error()
			} else {
				message = fmt.Sprint(recovered)
			}
		}

		c.AbortWithStatusJSON(http.StatusInternalServerError, types.ErrorResponse{
			Error:      "Internal Server Error",
			Message:    message,
			StatusCode: http.StatusInternalServerError,
		})
	})
}

// NotFound answers requests no route matched
func NotFound() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusNotFound, types.ErrorResponse{
			Error:      "Not Found",
			Message:    fmt.Sprintf("The requested endpoint %s %s does not exist", c.Request.Method, c.Request.URL.Path),
			StatusCode: http.StatusNotFound,
		})
	}
}
