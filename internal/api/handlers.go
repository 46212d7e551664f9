package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/pageza/recipe-finder/backend/config"
)

// Version is the API version reported by the info endpoint
const Version = "1.0.0"

// HealthCheck returns the health status of the API
func HealthCheck(env config.Environment) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":      "OK",
			"message":     "Recipe Finder API is running",
			"timestamp":   time.Now().UTC().Format(time.RFC3339Nano),
			"environment": string(env),
		})
	}
}

// APIInfo describes the API and lists its endpoints
func APIInfo(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"name":        "Recipe Finder API",
		"version":     Version,
		"description": "A RESTful API for searching recipes using Spoonacular",
		"endpoints": gin.H{
			"health":            "GET /health",
			"metrics":           "GET /metrics",
			"searchRecipes":     "GET /recipes/search?query={query}&number={number}",
			"getRecipe":         "GET /recipes/{id}",
			"randomRecipe":      "GET /recipes/random?tags={tags}&number={number}",
			"searchIngredients": "GET /recipes/ingredients?query={query}&number={number}",
		},
		"documentation": "https://spoonacular.com/food-api/docs",
	})
}
