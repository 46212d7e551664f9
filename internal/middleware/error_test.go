package middleware

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pageza/recipe-finder/backend/internal/types"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func setupErrorRouter(exposeErrors bool) *gin.Engine {
	router := gin.New()
	router.Use(ErrorHandler(exposeErrors))
	router.GET("/panic", func(c *gin.Context) {
		panic(errors.New("nil map write in handler"))
	})
	router.GET("/panic-string", func(c *gin.Context) {
		panic("something broke")
	})
	router.NoRoute(NotFound())
	return router
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) types.ErrorResponse {
	t.Helper()
	var body types.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func TestErrorHandler(t *testing.T) {
	tests := []struct {
		name         string
		exposeErrors bool
		path         string
		wantMessage  string
	}{
		{"development exposes error", true, "/panic", "nil map write in handler"},
		{"development exposes panic value", true, "/panic-string", "something broke"},
		{"production hides error", false, "/panic", "An unexpected error occurred"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := setupErrorRouter(tt.exposeErrors)

			w := httptest.NewRecorder()
			router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, tt.path, nil))

			assert.Equal(t, http.StatusInternalServerError, w.Code)
			assert.Equal(t, types.ErrorResponse{
				Error:      "Internal Server Error",
				Message:    tt.wantMessage,
				StatusCode: http.StatusInternalServerError,
			}, decodeError(t, w))
		})
	}
}

func TestNotFound(t *testing.T) {
	router := setupErrorRouter(false)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/recipes/search", nil))

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, types.ErrorResponse{
		Error:      "Not Found",
		Message:    "The requested endpoint DELETE /recipes/search does not exist",
		StatusCode: http.StatusNotFound,
	}, decodeError(t, w))
}
