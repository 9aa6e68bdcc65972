package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Chdir(t.TempDir())
	for _, k := range []string{"APP_ADDR", "USER_STORE", "JWT_SECRET", "PASSWORD_HASHING", "TOKEN_TTL_MIN", "CORS_ALLOWED_ORIGINS"} {
		t.Setenv(k, "")
	}

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.HTTPAddr)
	assert.Equal(t, UserStoreMemory, cfg.UserStore)
	assert.Equal(t, HashingPlain, cfg.PasswordHashing)
	assert.Equal(t, devJWTSecret, cfg.JWTSecret)
	assert.Equal(t, time.Hour, cfg.TokenTTL)
	assert.Equal(t, int64(1<<20), cfg.MaxBodyBytes)
	assert.Empty(t, cfg.AllowedOrigins)
}

func TestLoad_Overrides(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("APP_ADDR", ":9090")
	t.Setenv("USER_STORE", "Postgres")
	t.Setenv("JWT_SECRET", "s3cret")
	t.Setenv("PASSWORD_HASHING", "bcrypt")
	t.Setenv("RATE_LIMIT_RPS", "2.5")
	t.Setenv("RATE_LIMIT_BURST", "not-a-number")
	t.Setenv("CORS_ALLOWED_ORIGINS", "http://a.test, http://b.test ,")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.HTTPAddr)
	assert.Equal(t, UserStorePostgres, cfg.UserStore)
	assert.Equal(t, "s3cret", cfg.JWTSecret)
	assert.Equal(t, HashingBcrypt, cfg.PasswordHashing)
	assert.Equal(t, 2.5, cfg.RateLimitRPS)
	assert.Equal(t, 20, cfg.RateLimitBurst)
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.AllowedOrigins)
}

func TestLoad_RequiresSecretForSharedStores(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("USER_STORE", "redis")
	t.Setenv("JWT_SECRET", "")

	_, err := Load()
	assert.Error(t, err)
}

func TestLoad_RejectsUnknownValues(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("JWT_SECRET", "x")

	t.Setenv("USER_STORE", "mongo")
	_, err := Load()
	assert.Error(t, err)

	t.Setenv("USER_STORE", "memory")
	t.Setenv("PASSWORD_HASHING", "md5")
	_, err = Load()
	assert.Error(t, err)
}

func TestLoadEnvFiles_DoesNotOverrideExistingEnv(t *testing.T) {
	tmp := t.TempDir()
	p := filepath.Join(tmp, ".env")
	require.NoError(t, os.WriteFile(p, []byte("APP_ADDR=from_file\nCATALOG_FILE=books.json\n"), 0644))

	t.Setenv("APP_ADDR", "from_env")
	t.Setenv("CATALOG_FILE", "")
	os.Unsetenv("CATALOG_FILE")
	t.Chdir(tmp)

	LoadEnvFiles()

	assert.Equal(t, "from_env", os.Getenv("APP_ADDR"))
	assert.Equal(t, "books.json", os.Getenv("CATALOG_FILE"))
}
