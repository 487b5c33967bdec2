package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{"CATALOG_URL", "MAX_PRODUCTS", "FETCH_TIMEOUT_MS", "HTTP_ADDR", "SHUTDOWN_TIMEOUT", "LOG_LEVEL", "LOG_OUTPUT"} {
		t.Setenv(k, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)
	c := Load()
	assert.Equal(t, DefaultCatalogURL, c.CatalogURL)
	assert.Equal(t, 8, c.MaxProducts)
	assert.Equal(t, time.Duration(0), c.FetchTimeout)
	assert.Equal(t, ":8080", c.HTTPAddr)
	assert.Equal(t, 15*time.Second, c.ShutdownTimeout)
	assert.Equal(t, "info", c.LogLevel)
	assert.Equal(t, "stderr", c.LogOutput)
}

func TestLoadEnvOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("CATALOG_URL", "http://127.0.0.1:9999/products")
	t.Setenv("MAX_PRODUCTS", "4")
	t.Setenv("FETCH_TIMEOUT_MS", "250")
	t.Setenv("HTTP_ADDR", ":9090")
	t.Setenv("SHUTDOWN_TIMEOUT", "2")
	t.Setenv("LOG_LEVEL", "debug")
	c := Load()
	assert.Equal(t, "http://127.0.0.1:9999/products", c.CatalogURL)
	assert.Equal(t, 4, c.MaxProducts)
	assert.Equal(t, 250*time.Millisecond, c.FetchTimeout)
	assert.Equal(t, ":9090", c.HTTPAddr)
	assert.Equal(t, 2*time.Second, c.ShutdownTimeout)
	assert.Equal(t, "debug", c.LogLevel)
}

func TestLoadClampsMaxProducts(t *testing.T) {
	clearEnv(t)
	t.Setenv("MAX_PRODUCTS", "0")
	assert.Equal(t, 8, Load().MaxProducts)
	t.Setenv("MAX_PRODUCTS", "20")
	assert.Equal(t, 8, Load().MaxProducts)
}

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(p, []byte(body), 0o600))
	return p
}

func TestLoadFileYAML(t *testing.T) {
	clearEnv(t)
	p := writeFile(t, "showcase.yaml", "catalog_url: http://example.test/products\nmax_products: 6\nfetch_timeout_ms: 1500\nshutdown_timeout: 3\n")
	c, err := LoadFile(p)
	require.NoError(t, err)
	assert.Equal(t, "http://example.test/products", c.CatalogURL)
	assert.Equal(t, 6, c.MaxProducts)
	assert.Equal(t, 1500*time.Millisecond, c.FetchTimeout)
	assert.Equal(t, 3*time.Second, c.ShutdownTimeout)
	assert.Equal(t, ":8080", c.HTTPAddr)
}

func TestLoadFileTOMLWithEnvOnTop(t *testing.T) {
	clearEnv(t)
	t.Setenv("HTTP_ADDR", ":7070")
	p := writeFile(t, "showcase.toml", "http_addr = \":6060\"\nlog_level = \"warn\"\n")
	c, err := LoadFile(p)
	require.NoError(t, err)
	assert.Equal(t, ":7070", c.HTTPAddr)
	assert.Equal(t, "warn", c.LogLevel)
	assert.Equal(t, 15*time.Second, c.ShutdownTimeout)
}

func TestLoadFileUnsupported(t *testing.T) {
	p := writeFile(t, "showcase.ini", "x=1")
	_, err := LoadFile(p)
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}

func TestLoadFileMissing(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
