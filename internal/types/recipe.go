package types

import "encoding/json"

// RecipeSearchResult is a single hit of a recipe keyword search
type RecipeSearchResult struct {
	ID        int    `json:"id"`
	Title     string `json:"title"`
	Image     string `json:"image"`
	ImageType string `json:"imageType"`
}

// RecipeSearchResponse is the payload of GET /recipes/search
type RecipeSearchResponse struct {
	Results      []RecipeSearchResult `json:"results"`
	Number       int                  `json:"number"`
	Offset       int                  `json:"offset"`
	TotalResults int                  `json:"totalResults"`

	raw json.RawMessage
}

// Ingredient is one line of a recipe's ingredient list
type Ingredient struct {
	ID           int     `json:"id"`
	Name         string  `json:"name"`
	Amount       float64 `json:"amount"`
	Unit         string  `json:"unit"`
	Original     string  `json:"original"`
	OriginalName string  `json:"originalName"`
}

// RecipeStep is a numbered cooking step
type RecipeStep struct {
	Number int    `json:"number"`
	Step   string `json:"step"`
}

// RecipeInstructions groups the steps of one named instruction block
type RecipeInstructions struct {
	Name  string       `json:"name"`
	Steps []RecipeStep `json:"steps"`
}

// RecipeDetails is the full information of a single recipe
type RecipeDetails struct {
	ID                   int                  `json:"id"`
	Title                string               `json:"title"`
	Image                string               `json:"image"`
	Servings             int                  `json:"servings"`
	ReadyInMinutes       int                  `json:"readyInMinutes"`
	SourceURL            string               `json:"sourceUrl"`
	Summary              string               `json:"summary"`
	ExtendedIngredients  []Ingredient         `json:"extendedIngredients"`
	AnalyzedInstructions []RecipeInstructions `json:"analyzedInstructions"`
	Cuisines             []string             `json:"cuisines,omitempty"`
	Diets                []string             `json:"diets,omitempty"`

	raw json.RawMessage
}

// RandomRecipeResponse is the payload of GET /recipes/random
type RandomRecipeResponse struct {
	Recipes []RecipeDetails `json:"recipes"`

	raw json.RawMessage
}

// IngredientSearchResult is a single hit of an ingredient keyword search
type IngredientSearchResult struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Image string `json:"image"`
}

// IngredientSearchResponse is the payload of GET /recipes/ingredients
type IngredientSearchResponse struct {
	Results []IngredientSearchResult `json:"results"`
	Number  int                      `json:"number"`
	Offset  int                      `json:"offset"`

	raw json.RawMessage
}

// ErrorResponse is the body written for every failed request
type ErrorResponse struct {
	Error      string `json:"error"`
	Message    string `json:"message"`
	StatusCode int    `json:"statusCode"`
}
