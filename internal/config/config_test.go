package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("MONGODB_URI", "")
	t.Setenv("DB_NAME", "")
	t.Setenv("UPLOAD_DIR", "")
	t.Setenv("PUBLIC_DIR", "")

	cfg := LoadConfig()

	assert.Equal(t, "3000", cfg.Port)
	assert.Equal(t, "mongodb://localhost:27017", cfg.MongoURI)
	assert.Equal(t, "messenger", cfg.DBName)
	assert.Equal(t, "uploads", cfg.UploadDir)
	assert.Equal(t, "public", cfg.PublicDir)
}

func TestLoadConfigFromEnvironment(t *testing.T) {
	t.Setenv("PORT", "8080")
	t.Setenv("MONGODB_URI", "mongodb://db:27017")
	t.Setenv("DB_NAME", "feed")
	t.Setenv("UPLOAD_DIR", "/var/data/uploads")

	cfg := LoadConfig()

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "mongodb://db:27017", cfg.MongoURI)
	assert.Equal(t, "feed", cfg.DBName)
	assert.Equal(t, "/var/data/uploads", cfg.UploadDir)
}
