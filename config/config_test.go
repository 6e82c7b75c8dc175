package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func loadFrom(t *testing.T, yml string) (*Config, error) {
	t.Helper()

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yml"), []byte(yml), 0o600))

	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })

	// Load works on the global viper; reset so earlier search paths from
	// other tests cannot shadow this temp dir.
	viper.Reset()
	return Load()
}

// Multi-word keys from the file must land in the struct, not silently
// fall back to defaults.
func TestLoadBindsFileKeys(t *testing.T) {
	cfg, err := loadFrom(t, `
server:
  port: 9090
  read_timeout: 20s
database:
  host: localhost
  max_open_conns: 40
jwt:
  secret: test-secret
  expiry_hours: 3
rate_limit:
  requests_per_second: 25
security:
  bcrypt_cost: 12
  allowed_origins:
    - http://localhost:5173
`)
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, 20*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, 40, cfg.Database.MaxOpenConns)
	assert.Equal(t, 3, cfg.JWT.ExpiryHours)
	assert.Equal(t, 25.0, cfg.RateLimit.RequestsPerSecond)
	assert.Equal(t, 12, cfg.Security.BcryptCost)
	assert.Equal(t, []string{"http://localhost:5173"}, cfg.Security.AllowedOrigins)
}

func TestLoadKeepsDefaultsForAbsentKeys(t *testing.T) {
	cfg, err := loadFrom(t, `
jwt:
  secret: test-secret
`)
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, 2, cfg.JWT.ExpiryHours)
	assert.Equal(t, 10, cfg.Security.BcryptCost)
}

func TestLoadRequiresSecret(t *testing.T) {
	if os.Getenv("JWT_SECRET") != "" {
		t.Skip("JWT_SECRET set in the environment")
	}

	_, err := loadFrom(t, `
server:
  port: 9090
`)
	assert.Error(t, err)
}
