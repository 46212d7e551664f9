package api

import (
	"errors"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
)

// countRange bounds the optional "number" query parameter of an endpoint
type countRange struct {
	min, max, def int
}

var (
	recipeSearchCount     = countRange{min: 1, max: 100, def: 10}
	randomRecipeCount     = countRange{min: 1, max: 10, def: 1}
	ingredientSearchCount = countRange{min: 1, max: 100, def: 10}
)

func (r countRange) clamp(n int) int {
	return min(max(n, r.min), r.max)
}

// parse reads a base-10 count and clamps it. Empty or non-numeric input
// yields the default. Out of range integers saturate and clamp like any other.
func (r countRange) parse(raw string) int {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return r.def
	}
	return r.clamp(n)
}

// requiredQuery returns the single non-empty value of a query parameter.
// ok is false when the parameter is absent, empty or repeated.
func requiredQuery(c *gin.Context, name string) (value string, ok bool) {
	values, present := c.GetQueryArray(name)
	if !present || len(values) != 1 || values[0] == "" {
		return "", false
	}
	return values[0], true
}

// optionalTags joins every non-empty tags value with commas
func optionalTags(c *gin.Context) string {
	var tags []string
	for _, v := range c.QueryArray("tags") {
		if v != "" {
			tags = append(tags, v)
		}
	}
	return strings.Join(tags, ",")
}
