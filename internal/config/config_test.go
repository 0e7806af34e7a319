package config

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromReader_DefaultsApplied(t *testing.T) {
	cfg, err := FromReader(strings.NewReader("site:\n  base_url: https://sport.example\n"))
	require.NoError(t, err)

	assert.Equal(t, "Sport Agency", cfg.Site.Name)
	assert.Equal(t, "https://sport.example", cfg.Site.BaseURL)
	assert.Equal(t, ":8080", cfg.HTTP.Address)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)
}

func TestFromReader_UnknownFieldRejected(t *testing.T) {
	_, err := FromReader(strings.NewReader("sit:\n  name: typo\n"))
	assert.Error(t, err)
}

func TestValidate_BadWebhookURL(t *testing.T) {
	var cfg Config
	cfg.Defaults()
	cfg.Notify.WebhookURL = "not a url"
	assert.Error(t, cfg.Validate())
}

func TestAppURL(t *testing.T) {
	d := DatabaseConfig{Host: "db", Port: 5432, User: "agency", Password: "s3cret", Name: "sportagency", SSLMode: "disable"}
	u, err := d.AppURL()
	require.NoError(t, err)
	assert.Equal(t, "postgres://agency:s3cret@db:5432/sportagency?sslmode=disable", u)

	d = DatabaseConfig{URL: "postgres://x@y/z"}
	u, err = d.AppURL()
	require.NoError(t, err)
	assert.Equal(t, "postgres://x@y/z", u)

	d = DatabaseConfig{Host: "db"}
	_, err = d.AppURL()
	assert.Error(t, err)
}

func TestMaintenanceURL(t *testing.T) {
	// Bootstrap must target the server's postgres database, not the app DB,
	// so create-database can run before the app DB exists.
	d := DatabaseConfig{Host: "db", Port: 5432, User: "agency", Password: "s3cret", Name: "sportagency", SSLMode: "disable"}
	u, err := d.MaintenanceURL()
	require.NoError(t, err)
	assert.Equal(t, "postgres://agency:s3cret@db:5432/postgres?sslmode=disable", u)

	d = DatabaseConfig{URL: "postgres://x@y:5432/z?sslmode=disable"}
	u, err = d.MaintenanceURL()
	require.NoError(t, err)
	assert.Equal(t, "postgres://x@y:5432/postgres?sslmode=disable", u)

	d = DatabaseConfig{Host: "db"}
	_, err = d.MaintenanceURL()
	assert.Error(t, err)
}
