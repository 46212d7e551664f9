package service

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pageza/recipe-finder/backend/internal/observability"
)

const testAPIKey = "test-api-key"

// fakeSpoonacular records every request and answers with the given status and body
type fakeSpoonacular struct {
	server *httptest.Server
	calls  atomic.Int32

	mu        sync.Mutex
	lastPath  string
	lastQuery url.Values
}

func (f *fakeSpoonacular) last() (string, url.Values) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.lastPath, f.lastQuery
}

func newFakeSpoonacular(t *testing.T, status int, body string) *fakeSpoonacular {
	t.Helper()
	f := &fakeSpoonacular{}
	f.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		f.calls.Add(1)
		f.mu.Lock()
		f.lastPath = r.URL.Path
		f.lastQuery = r.URL.Query()
		f.mu.Unlock()
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(f.server.Close)
	return f
}

func newTestService(t *testing.T, f *fakeSpoonacular, opts ...Option) *SpoonacularService {
	t.Helper()
	opts = append([]Option{WithBaseURL(f.server.URL)}, opts...)
	svc, err := NewSpoonacularService(testAPIKey, opts...)
	require.NoError(t, err)
	return svc
}

func TestNewSpoonacularService(t *testing.T) {
	t.Run("should fail without API key", func(t *testing.T) {
		svc, err := NewSpoonacularService("")

		assert.ErrorIs(t, err, ErrMissingAPIKey)
		assert.Nil(t, svc)
	})

	t.Run("should create service with API key", func(t *testing.T) {
		svc, err := NewSpoonacularService(testAPIKey)

		require.NoError(t, err)
		assert.Equal(t, DefaultBaseURL, svc.baseURL)
		assert.NotNil(t, svc.client)
	})

	t.Run("should not copy timeout onto caller client", func(t *testing.T) {
		client := &http.Client{}
		svc, err := NewSpoonacularService(testAPIKey, WithHTTPClient(client), WithTimeout(time.Second))

		require.NoError(t, err)
		assert.Equal(t, time.Duration(0), client.Timeout)
		assert.Equal(t, time.Second, svc.client.Timeout)
	})

	t.Run("should trim trailing slash from base URL", func(t *testing.T) {
		svc, err := NewSpoonacularService(testAPIKey, WithBaseURL("http://localhost:9999/"))

		require.NoError(t, err)
		assert.Equal(t, "http://localhost:9999", svc.baseURL)
	})
}

func TestSearchRecipes(t *testing.T) {
	f := newFakeSpoonacular(t, http.StatusOK, `{"results":[{"id":1,"title":"Chicken Soup","image":"soup.jpg","imageType":"jpg"}],"number":5,"offset":0,"totalResults":120}`)
	svc := newTestService(t, f)

	result, err := svc.SearchRecipes(context.Background(), "chicken", 5)

	require.NoError(t, err)
	path, query := f.last()
	assert.Equal(t, "/recipes/complexSearch", path)
	assert.Equal(t, "chicken", query.Get("query"))
	assert.Equal(t, "5", query.Get("number"))
	assert.Equal(t, testAPIKey, query.Get("apiKey"))
	require.Len(t, result.Results, 1)
	assert.Equal(t, "Chicken Soup", result.Results[0].Title)
	assert.Equal(t, 120, result.TotalResults)
}

func TestGetRecipeByID(t *testing.T) {
	f := newFakeSpoonacular(t, http.StatusOK, `{"id":715538,"title":"Bruschetta","servings":4,"readyInMinutes":35}`)
	svc := newTestService(t, f)

	recipe, err := svc.GetRecipeByID(context.Background(), 715538)

	require.NoError(t, err)
	path, query := f.last()
	assert.Equal(t, "/recipes/715538/information", path)
	assert.Equal(t, testAPIKey, query.Get("apiKey"))
	assert.Equal(t, 715538, recipe.ID)
	assert.Equal(t, 35, recipe.ReadyInMinutes)
}

func TestGetRecipeByIDForwardsUnexpectedFieldTypes(t *testing.T) {
	upstream := `{"id":1,"title":"x","servings":4.5}`
	f := newFakeSpoonacular(t, http.StatusOK, upstream)
	svc := newTestService(t, f)

	recipe, err := svc.GetRecipeByID(context.Background(), 1)

	require.NoError(t, err)
	assert.Equal(t, upstream, string(recipe.Raw()))

	out, err := json.Marshal(recipe)
	require.NoError(t, err)
	assert.Equal(t, upstream, string(out))
}

func TestGetRandomRecipe(t *testing.T) {
	t.Run("omits tags when empty", func(t *testing.T) {
		f := newFakeSpoonacular(t, http.StatusOK, `{"recipes":[{"id":1,"title":"Pie"}]}`)
		svc := newTestService(t, f)

		result, err := svc.GetRandomRecipe(context.Background(), "", 1)

		require.NoError(t, err)
		path, query := f.last()
		assert.Equal(t, "/recipes/random", path)
		assert.False(t, query.Has("tags"))
		assert.Equal(t, "1", query.Get("number"))
		require.Len(t, result.Recipes, 1)
	})

	t.Run("forwards tags verbatim", func(t *testing.T) {
		f := newFakeSpoonacular(t, http.StatusOK, `{"recipes":[]}`)
		svc := newTestService(t, f)

		_, err := svc.GetRandomRecipe(context.Background(), "vegetarian,dessert", 3)

		require.NoError(t, err)
		_, query := f.last()
		assert.Equal(t, "vegetarian,dessert", query.Get("tags"))
		assert.Equal(t, "3", query.Get("number"))
	})
}

func TestSearchIngredients(t *testing.T) {
	f := newFakeSpoonacular(t, http.StatusOK, `{"results":[{"id":9003,"name":"apple","image":"apple.jpg"}],"number":10,"offset":0}`)
	svc := newTestService(t, f)

	result, err := svc.SearchIngredients(context.Background(), "apple", 10)

	require.NoError(t, err)
	path, query := f.last()
	assert.Equal(t, "/food/ingredients/search", path)
	assert.Equal(t, "apple", query.Get("query"))
	assert.Equal(t, "10", query.Get("number"))
	assert.Equal(t, "apple", result.Results[0].Name)
}

func TestUpstreamStatusClassification(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		kind    Kind
		message string
	}{
		{"unauthorized", http.StatusUnauthorized, KindUnauthorized, "Unauthorized: Invalid API key"},
		{"quota exceeded", http.StatusPaymentRequired, KindQuotaExceeded, "Payment Required: API quota exceeded"},
		{"not found", http.StatusNotFound, KindNotFound, "Not Found: Recipe or ingredient not found"},
		{"server error", http.StatusInternalServerError, KindUpstream, "Failed to fetch recipe with ID 42: request failed with status code 500"},
		{"rate limited", http.StatusTooManyRequests, KindUpstream, "Failed to fetch recipe with ID 42: request failed with status code 429"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFakeSpoonacular(t, tt.status, `{"status":"failure","code":1,"message":"nope"}`)
			svc := newTestService(t, f)

			recipe, err := svc.GetRecipeByID(context.Background(), 42)

			assert.Nil(t, recipe)
			var upstreamErr *UpstreamError
			require.ErrorAs(t, err, &upstreamErr)
			assert.Equal(t, tt.kind, upstreamErr.Kind)
			assert.Equal(t, tt.status, upstreamErr.StatusCode)
			assert.Equal(t, tt.message, upstreamErr.Error())
			assert.True(t, IsKind(err, tt.kind))
			assert.Equal(t, int32(1), f.calls.Load())
		})
	}
}

func TestTransportFailure(t *testing.T) {
	f := newFakeSpoonacular(t, http.StatusOK, `{}`)
	svc := newTestService(t, f)
	f.server.Close()

	_, err := svc.SearchRecipes(context.Background(), "chicken", 10)

	var upstreamErr *UpstreamError
	require.ErrorAs(t, err, &upstreamErr)
	assert.Equal(t, KindUpstream, upstreamErr.Kind)
	assert.Equal(t, 0, upstreamErr.StatusCode)
	assert.Contains(t, upstreamErr.Message, "Failed to search recipes: ")
	assert.NotContains(t, upstreamErr.Message, testAPIKey)
}

func TestTimeout(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	svc, err := NewSpoonacularService(testAPIKey, WithBaseURL(server.URL), WithTimeout(20*time.Millisecond))
	require.NoError(t, err)

	_, err = svc.GetRandomRecipe(context.Background(), "", 1)

	assert.True(t, IsKind(err, KindUpstream))
	assert.Contains(t, err.Error(), "Failed to fetch random recipe: ")
}

func TestDecodeFailureIsNotUpstreamError(t *testing.T) {
	f := newFakeSpoonacular(t, http.StatusOK, `<html>not json</html>`)
	svc := newTestService(t, f)

	_, err := svc.SearchIngredients(context.Background(), "apple", 10)

	require.Error(t, err)
	var upstreamErr *UpstreamError
	assert.False(t, errors.As(err, &upstreamErr))
}

func TestClassifyErrorPassesThroughOtherErrors(t *testing.T) {
	plain := errors.New("boom")

	assert.Same(t, plain, classifyError(plain, "Failed to search recipes"))
}

func TestRedactURL(t *testing.T) {
	u, err := url.Parse("https://api.spoonacular.com/recipes/random?apiKey=secret&number=1")
	require.NoError(t, err)

	redacted := redactURL(u)

	assert.NotContains(t, redacted, "secret")
	assert.Contains(t, redacted, "apiKey=REDACTED")
	assert.Equal(t, "secret", u.Query().Get("apiKey"))
}

func TestUpstreamCallsAreCounted(t *testing.T) {
	f := newFakeSpoonacular(t, http.StatusPaymentRequired, `{}`)
	svc := newTestService(t, f)
	counter := observability.UpstreamRequestsTotal.WithLabelValues("search_ingredients", KindQuotaExceeded.String())
	before := testutil.ToFloat64(counter)

	_, err := svc.SearchIngredients(context.Background(), "apple", 10)

	require.Error(t, err)
	assert.Equal(t, 1.0, testutil.ToFloat64(counter)-before)
}
