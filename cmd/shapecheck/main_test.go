package main

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/shapeguard/pkg/config"
	"github.com/dmitrymomot/shapeguard/pkg/shape"
)

const userShapeYAML = `
name: string
age: [number, undefined]
email: [email, null]
address:
  city: string
`

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func run(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	cmd := newRootCmd()
	cmd.SetArgs(args)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestCheck(t *testing.T) {
	dir := t.TempDir()
	shapeFile := writeFile(t, dir, "user.yaml", userShapeYAML)

	good := writeFile(t, dir, "good.json", `{"name":"Ann","age":41,"email":"ann@example.com","address":{"city":"Oslo"}}`)
	goodYAML := writeFile(t, dir, "good.yaml", "name: Bob\nemail: null\naddress:\n  city: Rome\n")
	bad := writeFile(t, dir, "bad.json", `{"name":"Ann","email":null,"address":null}`)
	list := writeFile(t, dir, "list.json", `[{"name":"Ann","email":null,"address":{"city":"Oslo"}}]`)
	broken := writeFile(t, dir, "broken.json", `{"name":`)

	t.Run("matching documents", func(t *testing.T) {
		out, _, err := run(t, "", "check", "--shape", shapeFile, good, goodYAML)
		require.NoError(t, err)
		assert.Equal(t, "ok\t"+good+"\nok\t"+goodYAML+"\n", out)
	})

	t.Run("mismatch fails the command", func(t *testing.T) {
		out, _, err := run(t, "", "check", "-s", shapeFile, good, bad)
		require.ErrorIs(t, err, ErrMismatch)
		assert.Contains(t, err.Error(), "1 of 2")
		assert.Contains(t, out, "FAIL\t"+bad)
	})

	t.Run("all", func(t *testing.T) {
		_, _, err := run(t, "", "check", "--shape", shapeFile, "--all", list)
		require.NoError(t, err)

		_, _, err = run(t, "", "check", "--shape", shapeFile, "--all", good)
		require.ErrorIs(t, err, ErrMismatch)
	})

	t.Run("stdin", func(t *testing.T) {
		out, _, err := run(t, `{"name":"Eve","email":null,"address":{"city":"Kyiv"}}`, "check", "--shape", shapeFile, "-")
		require.NoError(t, err)
		assert.Equal(t, "ok\t-\n", out)
	})

	t.Run("unreadable data", func(t *testing.T) {
		_, _, err := run(t, "", "check", "--shape", shapeFile, broken)
		require.ErrorIs(t, err, ErrReadData)

		_, _, err = run(t, "", "check", "--shape", shapeFile, filepath.Join(dir, "missing.json"))
		require.ErrorIs(t, err, ErrReadData)
	})

	t.Run("bad shape file", func(t *testing.T) {
		_, _, err := run(t, "", "check", "--shape", filepath.Join(dir, "user.toml"), good)
		require.ErrorIs(t, err, shape.ErrUnsupportedFormat)
	})

	t.Run("requires shape flag", func(t *testing.T) {
		_, _, err := run(t, "", "check", good)
		require.Error(t, err)
	})
}

func TestLint(t *testing.T) {
	dir := t.TempDir()
	clean := writeFile(t, dir, "clean.yaml", userShapeYAML)
	dirty := writeFile(t, dir, "dirty.json", `{"name":"","tags":[["string"]],"count":3}`)

	out, _, err := run(t, "", "lint", clean)
	require.NoError(t, err)
	assert.Equal(t, "ok\t"+clean+"\n", out)

	out, _, err = run(t, "", "lint", clean, dirty)
	require.ErrorIs(t, err, ErrLintFailed)
	assert.Contains(t, out, "ok\t"+clean)
	assert.Contains(t, out, "FAIL\t"+dirty+"\t")
	assert.Contains(t, out, "count")
	assert.Contains(t, out, "name")
	assert.Contains(t, out, "tags[0]")
}

func TestConfig(t *testing.T) {
	t.Setenv("SHAPECHECK_ENV", "production")
	t.Setenv("SHAPECHECK_LOG_LEVEL", "warn")
	t.Setenv("SHAPECHECK_MAX_DEPTH", "2")
	t.Setenv("HTTP_ADDR", "127.0.0.1:0")
	config.ResetCache()
	t.Cleanup(config.ResetCache)

	cfg, err := loadConfig()
	require.NoError(t, err)
	assert.Equal(t, "production", cfg.Env)
	assert.Equal(t, 2, cfg.MaxDepth)
	assert.Equal(t, "127.0.0.1:0", cfg.HTTP.Addr)
	assert.Len(t, cfg.ShapeOptions(), 2)

	log, err := cfg.Logger()
	require.NoError(t, err)
	assert.False(t, log.Enabled(t.Context(), slog.LevelInfo))
	assert.True(t, log.Enabled(t.Context(), slog.LevelWarn))

	cfg.LogFormat = "xml"
	_, err = cfg.Logger()
	require.ErrorIs(t, err, ErrInvalidLogFormat)

	cfg.LogFormat = ""
	cfg.LogLevel = "loud"
	_, err = cfg.Logger()
	require.Error(t, err)
}

func TestServeRouter(t *testing.T) {
	t.Parallel()

	s, err := shape.FromYAML([]byte(userShapeYAML))
	require.NoError(t, err)
	h := newRouter(s, &app{log: slog.New(slog.DiscardHandler)})

	post := func(path, body string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		return rec
	}

	rec := post("/validate", `{"name":"Ann","email":"ann@example.com","address":{"city":"Oslo"}}`)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"matched":true}`, rec.Body.String())

	rec = post("/validate", `{"name":"Ann","email":"nope","address":{"city":"Oslo"}}`)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	rec = post("/validate/all", `[{"name":"Ann","email":null,"address":{"city":"Oslo"}}]`)
	assert.Equal(t, http.StatusOK, rec.Code)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ALIVE", rec.Body.String())
}
