package handlers

import (
	"bytes"
	"fmt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"recipe-app-api/app/server/constants"
	"strings"
	"testing"
)

// 最小的 PNG 文件头，足够识别类型
var pngBytes = append([]byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR"), make([]byte, 64)...)

func (env *testEnv) upload(token string, id uint, field, filename string, data []byte) *httptest.ResponseRecorder {
	env.t.Helper()

	body := &bytes.Buffer{}
	w := multipart.NewWriter(body)
	if field != "" {
		part, err := w.CreateFormFile(field, filename)
		require.NoError(env.t, err)
		_, err = part.Write(data)
		require.NoError(env.t, err)
	} else {
		require.NoError(env.t, w.WriteField("note", "no file"))
	}
	require.NoError(env.t, w.Close())

	req := httptest.NewRequest(http.MethodPost, fmt.Sprintf("/api/recipe/recipes/%d/upload-image", id), body)
	req.Header.Set("Content-Type", w.FormDataContentType())
	if token != "" {
		req.Header.Set("Authorization", "Token "+token)
	}
	return env.serve(req)
}

func TestRecipeImageUpload(t *testing.T) {
	env := newTestEnv(t)
	token := env.signUp("user@example.com")
	recipe := env.createRecipe(token, nil)

	rec := env.upload(token, recipe.ID, "image", "Photo.PNG", pngBytes)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var res RecipeImage
	decode(t, rec, &res)
	assert.Equal(t, recipe.ID, res.ID)
	require.NotNil(t, res.Image)
	assert.True(t, strings.HasPrefix(*res.Image, "http://media.test/"+constants.RecipeImagePathPrefix), *res.Image)
	assert.True(t, strings.HasSuffix(*res.Image, ".png"), *res.Image)

	keys := env.images.keys()
	require.Len(t, keys, 1)
	assert.Equal(t, "image/png", env.images.types[keys[0]])
	assert.Equal(t, pngBytes, env.images.objects[keys[0]])

	// 详情中返回图片地址
	rec = env.do(http.MethodGet, recipePath(recipe.ID), token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var detail RecipeDetail
	decode(t, rec, &detail)
	assert.Equal(t, res.Image, detail.Image)

	t.Run("replacing removes the previous image", func(t *testing.T) {
		rec := env.upload(token, recipe.ID, "image", "again.png", pngBytes)
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

		newKeys := env.images.keys()
		require.Len(t, newKeys, 1)
		assert.NotEqual(t, keys[0], newKeys[0])
	})

	t.Run("deleting the recipe removes the image", func(t *testing.T) {
		rec := env.do(http.MethodDelete, recipePath(recipe.ID), token, nil)
		require.Equal(t, http.StatusNoContent, rec.Code)
		assert.Empty(t, env.images.keys())
	})
}

func TestRecipeImageUploadInvalid(t *testing.T) {
	env := newTestEnv(t)
	token := env.signUp("user@example.com")
	otherToken := env.signUp("other@example.com")
	recipe := env.createRecipe(token, nil)

	t.Run("not an image", func(t *testing.T) {
		rec := env.upload(token, recipe.ID, "image", "notes.png", []byte("just some text"))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("missing file", func(t *testing.T) {
		rec := env.upload(token, recipe.ID, "", "", nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("foreign recipe", func(t *testing.T) {
		rec := env.upload(otherToken, recipe.ID, "image", "photo.png", pngBytes)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("unauthenticated", func(t *testing.T) {
		rec := env.upload("", recipe.ID, "image", "photo.png", pngBytes)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	assert.Empty(t, env.images.keys())
}

func TestRecipeImageUploadWithoutStore(t *testing.T) {
	env := newTestEnv(t, noImages)
	token := env.signUp("user@example.com")
	recipe := env.createRecipe(token, nil)

	rec := env.upload(token, recipe.ID, "image", "photo.png", pngBytes)
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}
