package api

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/pageza/recipe-finder/backend/internal/service"
)

// RecipeHandler serves the /recipes endpoints by delegating to a RecipeProvider
type RecipeHandler struct {
	recipes service.RecipeProvider
}

// NewRecipeHandler creates a RecipeHandler
func NewRecipeHandler(recipes service.RecipeProvider) *RecipeHandler {
	return &RecipeHandler{recipes: recipes}
}

func (h *RecipeHandler) RegisterRoutes(router gin.IRouter) {
	recipes := router.Group("/recipes")
	{
		recipes.GET("/search", h.SearchRecipes)
		recipes.GET("/random", h.GetRandomRecipe)
		recipes.GET("/ingredients", h.SearchIngredients)
		// must stay after the literal routes above
		recipes.GET("/:id", h.GetRecipe)
	}
}

// upstreamContext detaches the upstream call from the inbound connection.
// A client hanging up does not cancel the call, its result is dropped.
func upstreamContext(c *gin.Context) context.Context {
	return context.WithoutCancel(c.Request.Context())
}

// SearchRecipes handles GET /recipes/search?query=chicken&number=10
func (h *RecipeHandler) SearchRecipes(c *gin.Context) {
	query, ok := requiredQuery(c, "query")
	if !ok {
		h.handleError(c, &ValidationError{Message: msgQueryRequired})
		return
	}
	number := recipeSearchCount.parse(c.Query("number"))

	results, err := h.recipes.SearchRecipes(upstreamContext(c), query, number)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, results)
}

// GetRecipe handles GET /recipes/:id
func (h *RecipeHandler) GetRecipe(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		h.handleError(c, &ValidationError{Message: msgInvalidRecipeID})
		return
	}

	recipe, err := h.recipes.GetRecipeByID(upstreamContext(c), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, recipe)
}

// GetRandomRecipe handles GET /recipes/random?tags=vegetarian&number=1
func (h *RecipeHandler) GetRandomRecipe(c *gin.Context) {
	number := randomRecipeCount.parse(c.Query("number"))

	result, err := h.recipes.GetRandomRecipe(upstreamContext(c), optionalTags(c), number)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// SearchIngredients handles GET /recipes/ingredients?query=apple&number=10
func (h *RecipeHandler) SearchIngredients(c *gin.Context) {
	query, ok := requiredQuery(c, "query")
	if !ok {
		h.handleError(c, &ValidationError{Message: msgQueryRequired})
		return
	}
	number := ingredientSearchCount.parse(c.Query("number"))

	results, err := h.recipes.SearchIngredients(upstreamContext(c), query, number)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, results)
}
