package pages

import (
	"io"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"simulation-server/feature/simulation"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func setupTestApp(t *testing.T) (*fiber.App, *simulation.Store) {
	t.Helper()
	templates := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(templates, "index.html"), []byte(`<h1>Self-Organization</h1>`), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(templates, "simulator-form.html"),
		[]byte(`{{range .Params}}<input id="{{.ID}}" name="{{.Name}}" type="{{.Type}}" value="{{.Value}}">{{end}}`), 0o644))

	static := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(static, "js"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(static, "js", "simulator.js"), []byte("run()"), 0o644))

	store := simulation.NewStore()
	app := fiber.New()
	require.NoError(t, NewFeature(templates, static, store, zap.NewNop()).Load(app))
	return app, store
}

func get(t *testing.T, app *fiber.App, target string) (int, string) {
	t.Helper()
	resp, err := app.Test(httptest.NewRequest("GET", target, nil))
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, string(body)
}

func TestIndexPage(t *testing.T) {
	app, _ := setupTestApp(t)
	code, body := get(t, app, "/")
	assert.Equal(t, 200, code)
	assert.Equal(t, "<h1>Self-Organization</h1>", body)
}

func TestMissingTemplate(t *testing.T) {
	app, _ := setupTestApp(t)
	code, body := get(t, app, "/simulator")
	assert.Equal(t, 404, code)
	assert.Contains(t, body, "template not found")
}

func TestSimulatorForm(t *testing.T) {
	app, store := setupTestApp(t)

	code, body := get(t, app, "/simulator_form")
	assert.Equal(t, 200, code)
	assert.Contains(t, body, `<input id="param-sphere-count" name="sphereCount" type="number" value="0">`)
	assert.Contains(t, body, `id="param-sc" name="SC" type="number" value="800"`)

	require.NoError(t, store.Set([]byte(`{"label": "<b>"}`)))
	_, body = get(t, app, "/simulator_form")
	assert.Contains(t, body, `type="text" value="&lt;b&gt;"`)
	assert.NotContains(t, body, "sphereCount")
}

func TestTestRoute(t *testing.T) {
	app, _ := setupTestApp(t)
	code, body := get(t, app, "/test")
	assert.Equal(t, 200, code)
	assert.Equal(t, "Test route is working!", body)
}

func TestStatic(t *testing.T) {
	app, _ := setupTestApp(t)
	code, body := get(t, app, "/static/js/simulator.js")
	assert.Equal(t, 200, code)
	assert.Equal(t, "run()", body)
}

func TestFormFields(t *testing.T) {
	fields := FormFields([]simulation.Param{
		{Key: "freqX", Value: "1", Kind: "number"},
		{Key: "halfsphereCount", Value: "0", Kind: "number"},
	})
	require.Len(t, fields, 2)
	assert.Equal(t, "param-freq-x", fields[0].ID)
	assert.Equal(t, "freq x", fields[0].Label)
	assert.Equal(t, "param-halfsphere-count", fields[1].ID)
	assert.Equal(t, "halfsphere count", fields[1].Label)
}
