package handlers

import (
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"net/http"
	"testing"
)

func TestNamedRequireAuth(t *testing.T) {
	env := newTestEnv(t)

	for _, path := range []string{"/api/recipe/tags", "/api/recipe/ingredients"} {
		assert.Equal(t, http.StatusUnauthorized, env.do(http.MethodGet, path, "", nil).Code, path)
		assert.Equal(t, http.StatusUnauthorized, env.do(http.MethodPost, path, "", map[string]string{"name": "x"}).Code, path)
	}
}

func TestTagList(t *testing.T) {
	env := newTestEnv(t)
	token := env.signUp("user@example.com")
	otherToken := env.signUp("other@example.com")

	env.createTag(token, "Dessert")
	env.createTag(token, "Vegan")
	env.createTag(otherToken, "Fruity")

	rec := env.do(http.MethodGet, "/api/recipe/tags", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var res []NamedInfoWithID
	decode(t, rec, &res)
	require.Len(t, res, 2)
	assert.Equal(t, "Vegan", res[0].Name)
	assert.Equal(t, "Dessert", res[1].Name)
}

func TestTagCreate(t *testing.T) {
	env := newTestEnv(t)
	token := env.signUp("user@example.com")

	tag := env.createTag(token, "Vegan")
	assert.NotZero(t, tag.ID)
	assert.Equal(t, "Vegan", tag.Name)

	rec := env.do(http.MethodPost, "/api/recipe/tags", token, map[string]string{"name": ""})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestIngredientList(t *testing.T) {
	env := newTestEnv(t)
	token := env.signUp("user@example.com")
	otherToken := env.signUp("other@example.com")

	env.createIngredient(token, "Kale")
	env.createIngredient(token, "Salt")
	env.createIngredient(otherToken, "Vinegar")

	rec := env.do(http.MethodGet, "/api/recipe/ingredients", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var res []NamedInfoWithID
	decode(t, rec, &res)
	require.Len(t, res, 2)
	assert.Equal(t, "Salt", res[0].Name)
	assert.Equal(t, "Kale", res[1].Name)
}

func TestNamedAssignedOnly(t *testing.T) {
	env := newTestEnv(t)
	token := env.signUp("user@example.com")

	breakfast := env.createTag(token, "Breakfast")
	env.createTag(token, "Lunch")
	eggs := env.createIngredient(token, "Eggs")
	env.createIngredient(token, "Flour")

	env.createRecipe(token, map[string]any{
		"tags":        []uint{breakfast.ID},
		"ingredients": []uint{eggs.ID},
	})

	rec := env.do(http.MethodGet, "/api/recipe/tags?assigned_only=1", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var tags []NamedInfoWithID
	decode(t, rec, &tags)
	assert.Equal(t, []NamedInfoWithID{breakfast}, tags)

	rec = env.do(http.MethodGet, "/api/recipe/ingredients?assigned_only=true", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var ingredients []NamedInfoWithID
	decode(t, rec, &ingredients)
	assert.Equal(t, []NamedInfoWithID{eggs}, ingredients)

	rec = env.do(http.MethodGet, "/api/recipe/tags?assigned_only=0", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	decode(t, rec, &tags)
	assert.Len(t, tags, 2)
}

func TestIsTruthy(t *testing.T) {
	for in, want := range map[string]bool{
		"":      false,
		"0":     false,
		"1":     true,
		"2":     true,
		"true":  true,
		"false": false,
		"yes":   false,
	} {
		assert.Equal(t, want, isTruthy(in), in)
	}
}
