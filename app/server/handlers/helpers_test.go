package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"github.com/alexedwards/argon2id"
	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
	"gorm.io/gorm"
	"io"
	"net/http"
	"net/http/httptest"
	"recipe-app-api/app/server/account"
	"recipe-app-api/app/server/inits"
	"recipe-app-api/app/server/storage"
	"strconv"
	"sync"
	"testing"
)

var testHashParams = &argon2id.Params{
	Memory:      1024,
	Iterations:  1,
	Parallelism: 1,
	SaltLength:  16,
	KeyLength:   32,
}

// fakeImages 内存中的对象存储
type fakeImages struct {
	mu      sync.Mutex
	objects map[string][]byte
	types   map[string]string
}

var _ storage.ImageStore = (*fakeImages)(nil)

func newFakeImages() *fakeImages {
	return &fakeImages{
		objects: map[string][]byte{},
		types:   map[string]string{},
	}
}

func (f *fakeImages) Put(_ context.Context, key string, r io.Reader, _ int64, contentType string) error {
	data, err := io.ReadAll(r)
	if err != nil {
		return err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.objects[key] = data
	f.types[key] = contentType
	return nil
}

func (f *fakeImages) Remove(_ context.Context, key string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.objects, key)
	delete(f.types, key)
	return nil
}

func (f *fakeImages) URL(key string) string {
	return "http://media.test/" + key
}

func (f *fakeImages) keys() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	keys := make([]string, 0, len(f.objects))
	for k := range f.objects {
		keys = append(keys, k)
	}
	return keys
}

type testEnv struct {
	t      *testing.T
	e      *echo.Echo
	db     *gorm.DB
	images *fakeImages
}

type envOptions struct {
	strict   bool
	noImages bool
}

func newTestEnv(t *testing.T, opts ...func(*envOptions)) *testEnv {
	t.Helper()

	var o envOptions
	for _, opt := range opts {
		opt(&o)
	}

	db, err := inits.OpenDB(sqlite.Open("file:" + uuid.NewString() + "?mode=memory&cache=shared"))
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	env := &testEnv{t: t, db: db}

	var images storage.ImageStore
	if !o.noImages {
		env.images = newFakeImages()
		images = env.images
	}

	app := NewApp(zaptest.NewLogger(t), db, nil, images, o.strict, account.WithHashParams(testHashParams))
	env.e = echo.New()
	app.Register(env.e)

	return env
}

func strict(o *envOptions)   { o.strict = true }
func noImages(o *envOptions) { o.noImages = true }

// do 发送 JSON 请求， token 为空时不带认证头
func (env *testEnv) do(method, path, token string, body any) *httptest.ResponseRecorder {
	env.t.Helper()

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(env.t, err)
		reader = bytes.NewReader(data)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Token "+token)
	}

	return env.serve(req)
}

func (env *testEnv) serve(req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	env.e.ServeHTTP(rec, req)
	return rec
}

// signUp 通过接口注册并登录，返回令牌
func (env *testEnv) signUp(email string) string {
	env.t.Helper()

	rec := env.do(http.MethodPost, "/api/user/create", "", map[string]string{
		"email":    email,
		"password": "testpass123",
		"name":     "Test Name",
	})
	require.Equal(env.t, http.StatusCreated, rec.Code, rec.Body.String())

	rec = env.do(http.MethodPost, "/api/user/token", "", map[string]string{
		"email":    email,
		"password": "testpass123",
	})
	require.Equal(env.t, http.StatusOK, rec.Code, rec.Body.String())

	var res LoginToken
	decode(env.t, rec, &res)
	require.NotEmpty(env.t, res.Token)
	return res.Token
}

func (env *testEnv) createTag(token, name string) NamedInfoWithID {
	env.t.Helper()

	rec := env.do(http.MethodPost, "/api/recipe/tags", token, map[string]string{"name": name})
	require.Equal(env.t, http.StatusCreated, rec.Code, rec.Body.String())

	var res NamedInfoWithID
	decode(env.t, rec, &res)
	return res
}

func (env *testEnv) createIngredient(token, name string) NamedInfoWithID {
	env.t.Helper()

	rec := env.do(http.MethodPost, "/api/recipe/ingredients", token, map[string]string{"name": name})
	require.Equal(env.t, http.StatusCreated, rec.Code, rec.Body.String())

	var res NamedInfoWithID
	decode(env.t, rec, &res)
	return res
}

func (env *testEnv) createRecipe(token string, body map[string]any) RecipeInfo {
	env.t.Helper()

	payload := map[string]any{
		"title":        "Sample recipe",
		"time_minutes": 10,
		"price":        "5.00",
	}
	for k, v := range body {
		payload[k] = v
	}

	rec := env.do(http.MethodPost, "/api/recipe/recipes", token, payload)
	require.Equal(env.t, http.StatusCreated, rec.Code, rec.Body.String())

	var res RecipeInfo
	decode(env.t, rec, &res)
	return res
}

func recipePath(id uint) string {
	return fmt.Sprintf("/api/recipe/recipes/%d", id)
}

func decode(t *testing.T, rec *httptest.ResponseRecorder, v any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), v), rec.Body.String())
}

func uintString(id uint) string {
	return strconv.FormatUint(uint64(id), 10)
}
