package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("ENVIRONMENT", "development")
	t.Setenv("TOKEN_CACHE_TTL", "90s")
	t.Setenv("COOKIE_SECURE", "not-a-bool")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 90*time.Second, cfg.TokenCacheTTL)
	assert.True(t, cfg.CookieSecure, "unparseable values fall back to the default")
	assert.Equal(t, "admin", cfg.Admin.Name)
	assert.Equal(t, "user", cfg.User.Name)
	assert.Equal(t, "properties", cfg.Algolia.IndexName)
	assert.False(t, cfg.Algolia.Enabled())
}

func TestLoadFileOverlay(t *testing.T) {
	path := filepath.Join(t.TempDir(), "acredge.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
[uploads.project.images]
max_size = "5MB"
max_count = 10
`), 0o600))
	t.Setenv("CONFIG_FILE", path)

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, UploadLimit{MaxSize: "5MB", MaxCount: 10}, cfg.Uploads["project"]["images"])
}

func TestLoadFileErrors(t *testing.T) {
	t.Setenv("CONFIG_FILE", filepath.Join(t.TempDir(), "missing.toml"))
	_, err := Load()
	assert.Error(t, err)
}

func validConfig() *Config {
	backend := func(name string) Backend {
		return Backend{Name: name, ProjectID: name + "-project", StorageBucket: name + "-bucket", CredentialsPath: "/etc/" + name + ".json"}
	}
	return &Config{
		Environment:  "production",
		JWTSecret:    "secret",
		StoreBackend: "firestore",
		Admin:        backend("admin"),
		User:         backend("user"),
	}
}

func TestValidate(t *testing.T) {
	assert.NoError(t, validConfig().Validate())

	t.Run("missing backend settings", func(t *testing.T) {
		cfg := validConfig()
		cfg.User = Backend{Name: "user"}
		cfg.JWTSecret = ""
		err := cfg.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "user project id is required")
		assert.Contains(t, err.Error(), "user credentials are required")
		assert.Contains(t, err.Error(), "JWT_SECRET is required")
	})

	t.Run("memory store only in development", func(t *testing.T) {
		cfg := &Config{Environment: "production", JWTSecret: "s", StoreBackend: "memory"}
		assert.Error(t, cfg.Validate())

		cfg.Environment = "development"
		assert.NoError(t, cfg.Validate())
		assert.True(t, cfg.UsesMemoryStore())
	})

	t.Run("unknown backend", func(t *testing.T) {
		cfg := validConfig()
		cfg.StoreBackend = "postgres"
		assert.Error(t, cfg.Validate())
	})

	t.Run("bad upload size", func(t *testing.T) {
		cfg := validConfig()
		cfg.Uploads = map[string]map[string]UploadLimit{"project": {"images": {MaxSize: "lots"}}}
		err := cfg.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "uploads.project.images")
	})
}

func TestServiceAccountJSON(t *testing.T) {
	b := Backend{ProjectID: "p", ClientEmail: "svc@p.iam.gserviceaccount.com", PrivateKey: `-----BEGIN KEY-----\nabc\n-----END KEY-----`}
	assert.True(t, b.HasCredentials())

	data, err := b.ServiceAccountJSON()
	require.NoError(t, err)
	assert.Contains(t, string(data), `"client_email":"svc@p.iam.gserviceaccount.com"`)
	assert.Contains(t, string(data), `-----BEGIN KEY-----\nabc`)

	none, err := Backend{}.ServiceAccountJSON()
	require.NoError(t, err)
	assert.Nil(t, none)
}
