package service

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/pageza/recipe-finder/backend/internal/observability"
	"github.com/pageza/recipe-finder/backend/internal/types"
)

// DefaultBaseURL is the public Spoonacular API
const DefaultBaseURL = "https://api.spoonacular.com"

// maxErrorBody bounds how much of a failed response is read for logging
const maxErrorBody = 1024

// SpoonacularService handles interactions with the Spoonacular API.
// It is immutable after construction and safe for concurrent use.
type SpoonacularService struct {
	apiKey  string
	baseURL string
	client  *http.Client
	timeout time.Duration
	logger  zerolog.Logger
}

// Option configures a SpoonacularService
type Option func(*SpoonacularService)

// WithBaseURL points the service at a different API host
func WithBaseURL(baseURL string) Option {
	return func(s *SpoonacularService) {
		s.baseURL = strings.TrimRight(baseURL, "/")
	}
}

// WithHTTPClient sets the client used for upstream calls
func WithHTTPClient(client *http.Client) Option {
	return func(s *SpoonacularService) {
		s.client = client
	}
}

// WithTimeout bounds every upstream call. Zero keeps the transport default.
func WithTimeout(timeout time.Duration) Option {
	return func(s *SpoonacularService) {
		s.timeout = timeout
	}
}

// WithLogger sets the logger for upstream call diagnostics
func WithLogger(logger zerolog.Logger) Option {
	return func(s *SpoonacularService) {
		s.logger = logger
	}
}

// NewSpoonacularService creates a new SpoonacularService instance
func NewSpoonacularService(apiKey string, opts ...Option) (*SpoonacularService, error) {
	if apiKey == "" {
		return nil, ErrMissingAPIKey
	}

	s := &SpoonacularService{
		apiKey:  apiKey,
		baseURL: DefaultBaseURL,
		logger:  zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(s)
	}

	switch {
	case s.client == nil:
		s.client = &http.Client{Timeout: s.timeout}
	case s.timeout > 0:
		client := *s.client
		client.Timeout = s.timeout
		s.client = &client
	}

	return s, nil
}

// SearchRecipes searches recipes by keyword
func (s *SpoonacularService) SearchRecipes(ctx context.Context, query string, number int) (*types.RecipeSearchResponse, error) {
	params := url.Values{}
	params.Set("query", query)
	params.Set("number", strconv.Itoa(number))

	var result types.RecipeSearchResponse
	if err := s.get(ctx, "search_recipes", "Failed to search recipes", "/recipes/complexSearch", params, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// GetRecipeByID fetches the full information of a single recipe
func (s *SpoonacularService) GetRecipeByID(ctx context.Context, id int) (*types.RecipeDetails, error) {
	var result types.RecipeDetails
	path := fmt.Sprintf("/recipes/%d/information", id)
	prefix := fmt.Sprintf("Failed to fetch recipe with ID %d", id)
	if err := s.get(ctx, "get_recipe", prefix, path, url.Values{}, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// GetRandomRecipe fetches number random recipes, optionally filtered by
// comma-separated tags. The tags parameter is not sent when tags is empty.
func (s *SpoonacularService) GetRandomRecipe(ctx context.Context, tags string, number int) (*types.RandomRecipeResponse, error) {
	params := url.Values{}
	params.Set("number", strconv.Itoa(number))
	if tags != "" {
		params.Set("tags", tags)
	}

	var result types.RandomRecipeResponse
	if err := s.get(ctx, "random_recipe", "Failed to fetch random recipe", "/recipes/random", params, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// SearchIngredients searches the ingredient index by keyword
func (s *SpoonacularService) SearchIngredients(ctx context.Context, query string, number int) (*types.IngredientSearchResponse, error) {
	params := url.Values{}
	params.Set("query", query)
	params.Set("number", strconv.Itoa(number))

	var result types.IngredientSearchResponse
	if err := s.get(ctx, "search_ingredients", "Failed to search ingredients", "/food/ingredients/search", params, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// get issues a GET against the API with the key attached and decodes a 2xx
// body into out. Failures go through classifyError.
func (s *SpoonacularService) get(ctx context.Context, operation, prefix, path string, params url.Values, out any) error {
	params.Set("apiKey", s.apiKey)
	endpoint := s.baseURL + path + "?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	outcome := "success"
	defer func() {
		observability.UpstreamRequestsTotal.WithLabelValues(operation, outcome).Inc()
		observability.UpstreamLatency.WithLabelValues(operation).Observe(time.Since(start).Seconds())
	}()

	resp, err := s.client.Do(req)
	if err != nil {
		classified := classifyError(err, prefix)
		outcome = outcomeOf(classified)
		s.logger.Warn().Err(classified).Str("operation", operation).Str("url", redactURL(req.URL)).Msg("upstream request failed")
		return classified
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		classified := classifyError(&statusError{StatusCode: resp.StatusCode}, prefix)
		outcome = outcomeOf(classified)
		s.logger.Warn().
			Str("operation", operation).
			Str("url", redactURL(req.URL)).
			Int("status", resp.StatusCode).
			Bytes("body", body).
			Msg("upstream returned error status")
		return classified
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		outcome = "decode_error"
		return fmt.Errorf("failed to decode %s response: %w", operation, err)
	}

	s.logger.Debug().
		Str("operation", operation).
		Str("url", redactURL(req.URL)).
		Dur("duration", time.Since(start)).
		Msg("upstream request completed")
	return nil
}

func outcomeOf(err error) string {
	if upstreamErr, ok := err.(*UpstreamError); ok {
		return upstreamErr.Kind.String()
	}
	return "error"
}

// redactURL renders u with the API key masked
func redactURL(u *url.URL) string {
	redacted := *u
	q := redacted.Query()
	if q.Has("apiKey") {
		q.Set("apiKey", "REDACTED")
		redacted.RawQuery = q.Encode()
	}
	return redacted.String()
}
