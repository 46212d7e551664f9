package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/pageza/recipe-finder/backend/internal/types"
)

// MockRecipeProvider is a mock implementation of service.RecipeProvider
type MockRecipeProvider struct {
	mock.Mock
}

// SearchRecipes mocks the SearchRecipes method
func (m *MockRecipeProvider) SearchRecipes(ctx context.Context, query string, number int) (*types.RecipeSearchResponse, error) {
	args := m.Called(ctx, query, number)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*types.RecipeSearchResponse), args.Error(1)
}

// GetRecipeByID mocks the GetRecipeByID method
func (m *MockRecipeProvider) GetRecipeByID(ctx context.Context, id int) (*types.RecipeDetails, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*types.RecipeDetails), args.Error(1)
}

// GetRandomRecipe mocks the GetRandomRecipe method
func (m *MockRecipeProvider) GetRandomRecipe(ctx context.Context, tags string, number int) (*types.RandomRecipeResponse, error) {
	args := m.Called(ctx, tags, number)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*types.RandomRecipeResponse), args.Error(1)
}

// SearchIngredients mocks the SearchIngredients method
func (m *MockRecipeProvider) SearchIngredients(ctx context.Context, query string, number int) (*types.IngredientSearchResponse, error) {
	args := m.Called(ctx, query, number)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*types.IngredientSearchResponse), args.Error(1)
}
