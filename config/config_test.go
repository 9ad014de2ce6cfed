package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleYAML = `
env:
  env: test
  serviceName: shop
  log:
    level: debug
http:
  port: 8080
  timeouts:
    readTimeout: 5s
mongo:
  uri: mongodb://localhost:27017
  database: produits
auth:
  bcryptCost: 10
`

func TestLoadWithEnv_FileAndEnvOverride(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "shoptest.yaml"), []byte(sampleYAML), 0o600))
	t.Chdir(dir)

	t.Setenv("MONGO_URI", "mongodb://mongo:27017")
	t.Setenv("HTTP_PORT", "9090")

	cfg, err := LoadWithEnv[Config]("shoptest")
	require.NoError(t, err)

	assert.Equal(t, "shop", cfg.Env.ServiceName)
	assert.Equal(t, 9090, cfg.HTTP.Port)
	assert.Equal(t, 5*time.Second, cfg.HTTP.Timeouts.ReadTimeout)
	require.NotNil(t, cfg.Mongo)
	assert.Equal(t, "mongodb://mongo:27017", cfg.Mongo.URI)
	assert.Equal(t, "produits", cfg.Mongo.Database)
}

func TestLoadWithEnv_MissingFile(t *testing.T) {
	t.Chdir(t.TempDir())

	_, err := LoadWithEnv[Config]("does-not-exist")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found in any search path")
}

func TestApplyDefaults(t *testing.T) {
	cfg := &Config{}
	applyDefaults(cfg)

	assert.Equal(t, defaultMaxRequestBodySize, cfg.HTTP.MaxRequestBodySize)
	assert.Equal(t, defaultBcryptCost, cfg.Auth.BcryptCost)
	assert.Equal(t, "produits", cfg.Mongo.Database)
	assert.Equal(t, "produit", cfg.Mongo.ProductCollection)
	assert.Equal(t, "users", cfg.Mongo.UserCollection)
	assert.Equal(t, defaultConnectTimeout, cfg.Mongo.ConnectTimeout)
}
