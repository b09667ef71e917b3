package simulation

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func setupTestApp(t *testing.T) (*fiber.App, *Store) {
	t.Helper()
	app := fiber.New()
	store := NewStore()
	require.NoError(t, NewFeature(store, zap.NewNop()).Load(app))
	return app, store
}

func TestHandleSet(t *testing.T) {
	app, store := setupTestApp(t)

	req := httptest.NewRequest("POST", "/set-data", strings.NewReader(`{"SC": 500}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "Data received!", body["message"])
	assert.Equal(t, "/game", body["redirect_url"])
	assert.JSONEq(t, `{"SC": 500}`, string(store.Get()))
}

func TestHandleSet_Invalid(t *testing.T) {
	app, store := setupTestApp(t)

	resp, err := app.Test(httptest.NewRequest("POST", "/set-data", strings.NewReader(`SC=500`)))
	require.NoError(t, err)
	assert.Equal(t, 400, resp.StatusCode)
	assert.Equal(t, DefaultDocument(), store.Get())
}

func TestHandleGet(t *testing.T) {
	app, _ := setupTestApp(t)

	resp, err := app.Test(httptest.NewRequest("GET", "/get-data", nil))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)
	assert.Equal(t, "application/json", resp.Header.Get("Content-Type"))

	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.JSONEq(t, string(DefaultDocument()), string(data))
}
