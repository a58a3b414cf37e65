package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseJSON_Success(t *testing.T) {
	body := `{
		"app": {"token_sign_key": "json-secret", "token_issuer": "json-issuer", "version": "2.0.0"},
		"storage": {
			"db": {"uri": "mongodb://json:27017", "database": "trips", "collection": "tripInfo"},
			"s3": {"region": "us-east-1", "bucket": "b", "temp_bucket": "tb", "upload_url_ttl": "2m"}
		},
		"server": {"http_address": "localhost:7000", "request_timeout": "15s"}
	}`
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	cfg, err := parseJSON(path)
	require.NoError(t, err)

	assert.Equal(t, "json-secret", cfg.App.TokenSignKey)
	assert.Equal(t, "2.0.0", cfg.App.Version)
	assert.Equal(t, "mongodb://json:27017", cfg.Storage.DB.URI)
	assert.Equal(t, 2*time.Minute, cfg.Storage.S3.UploadURLTTL)
	assert.Equal(t, "localhost:7000", cfg.Server.HTTPAddress)
	assert.Equal(t, 15*time.Second, cfg.Server.RequestTimeout)
}

func TestParseJSON_FileMissing(t *testing.T) {
	_, err := parseJSON(filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)
}

func TestDuration_UnmarshalJSON(t *testing.T) {
	var d Duration

	require.NoError(t, d.UnmarshalJSON([]byte(`"90s"`)))
	assert.Equal(t, Duration(90*time.Second), d)

	require.NoError(t, d.UnmarshalJSON([]byte(`1000000000`)))
	assert.Equal(t, Duration(time.Second), d)

	assert.Error(t, d.UnmarshalJSON([]byte(`"not-a-duration"`)))
	assert.Error(t, d.UnmarshalJSON([]byte(`true`)))
}
