package service

import (
	"context"

	"github.com/pageza/recipe-finder/backend/internal/types"
)

// RecipeProvider defines the recipe lookups the HTTP handlers delegate to
type RecipeProvider interface {
	SearchRecipes(ctx context.Context, query string, number int) (*types.RecipeSearchResponse, error)
	GetRecipeByID(ctx context.Context, id int) (*types.RecipeDetails, error)
	// GetRandomRecipe omits the tag filter when tags is empty
	GetRandomRecipe(ctx context.Context, tags string, number int) (*types.RandomRecipeResponse, error)
	SearchIngredients(ctx context.Context, query string, number int) (*types.IngredientSearchResponse, error)
}

var _ RecipeProvider = (*SpoonacularService)(nil)
