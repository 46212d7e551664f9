package types

import "encoding/json"

// The upstream payloads carry many more fields than the ones declared above.
// Each response type keeps the bytes it was decoded from and marshals back to
// them, so the gateway forwards exactly what the upstream sent.

// keepRaw copies data and fills view from it as far as the declared field
// types allow. A mismatched field leaves the typed view partial and never
// fails the payload, which is still forwarded as-is.
func keepRaw(data []byte, view any) json.RawMessage {
	_ = json.Unmarshal(data, view)
	return append(json.RawMessage(nil), data...)
}

// Raw returns the upstream bytes the response was decoded from
func (r *RecipeSearchResponse) Raw() json.RawMessage { return r.raw }

func (r *RecipeSearchResponse) UnmarshalJSON(data []byte) error {
	type plain RecipeSearchResponse
	r.raw = keepRaw(data, (*plain)(r))
	return nil
}

func (r RecipeSearchResponse) MarshalJSON() ([]byte, error) {
	if r.raw != nil {
		return r.raw, nil
	}
	type plain RecipeSearchResponse
	return json.Marshal(plain(r))
}

// Raw returns the upstream bytes the recipe was decoded from
func (r *RecipeDetails) Raw() json.RawMessage { return r.raw }

func (r *RecipeDetails) UnmarshalJSON(data []byte) error {
	type plain RecipeDetails
	r.raw = keepRaw(data, (*plain)(r))
	return nil
}

func (r RecipeDetails) MarshalJSON() ([]byte, error) {
	if r.raw != nil {
		return r.raw, nil
	}
	type plain RecipeDetails
	return json.Marshal(plain(r))
}

// Raw returns the upstream bytes the response was decoded from
func (r *RandomRecipeResponse) Raw() json.RawMessage { return r.raw }

func (r *RandomRecipeResponse) UnmarshalJSON(data []byte) error {
	type plain RandomRecipeResponse
	r.raw = keepRaw(data, (*plain)(r))
	return nil
}

func (r RandomRecipeResponse) MarshalJSON() ([]byte, error) {
	if r.raw != nil {
		return r.raw, nil
	}
	type plain RandomRecipeResponse
	return json.Marshal(plain(r))
}

// Raw returns the upstream bytes the response was decoded from
func (r *IngredientSearchResponse) Raw() json.RawMessage { return r.raw }

func (r *IngredientSearchResponse) UnmarshalJSON(data []byte) error {
	type plain IngredientSearchResponse
	r.raw = keepRaw(data, (*plain)(r))
	return nil
}

func (r IngredientSearchResponse) MarshalJSON() ([]byte, error) {
	if r.raw != nil {
		return r.raw, nil
	}
	type plain IngredientSearchResponse
	return json.Marshal(plain(r))
}
