package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_parseEnv(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	t.Run("variables override defaults", func(t *testing.T) {
		os.Args = []string{"testbin"}
		t.Setenv("TEXTFIX_ADDR", ":9999")
		t.Setenv("TEXTFIX_OTP_VALIDITY", "2m")
		t.Setenv("TEXTFIX_ALLOWED_ORIGINS", "http://a,http://b")
		t.Setenv("TEXTFIX_REQUIRE_VERIFIED_EMAIL", "true")
		t.Setenv("TEXTFIX_OPENAI_API_KEY", "sk-test")

		var cfg Config
		cfg.LoadDefaults()
		parseEnv(&cfg)

		assert.Equal(t, ":9999", cfg.EndpointAddrHTTP)
		assert.Equal(t, 2*time.Minute, cfg.OTPValidity)
		assert.Equal(t, []string{"http://a", "http://b"}, cfg.AllowedOrigins)
		assert.True(t, cfg.RequireVerifiedEmail)
		assert.Equal(t, "sk-test", cfg.OpenAIAPIKey)
		assert.Equal(t, "secretKey", cfg.SecretKey, "unset variables keep the current value")
	})

	t.Run("dotenv file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "test.env")
		require.NoError(t, os.WriteFile(path, []byte("TEXTFIX_SECRET_KEY=from-file\n"), 0o600))
		t.Setenv("TEXTFIX_SECRET_KEY", "")
		require.NoError(t, os.Unsetenv("TEXTFIX_SECRET_KEY"))
		os.Args = []string{"testbin", "-env", path}

		var cfg Config
		cfg.LoadDefaults()
		parseEnv(&cfg)

		assert.Equal(t, "from-file", cfg.SecretKey)
		require.NoError(t, os.Unsetenv("TEXTFIX_SECRET_KEY"))
	})

	t.Run("missing dotenv panics", func(t *testing.T) {
		os.Args = []string{"testbin", "-e", filepath.Join(t.TempDir(), "nope.env")}
		assert.Panics(t, func() { parseEnv(&Config{}) })
	})

	t.Run("bad duration panics", func(t *testing.T) {
		os.Args = []string{"testbin"}
		t.Setenv("TEXTFIX_OTP_VALIDITY", "soon")
		assert.Panics(t, func() { parseEnv(&Config{}) })
	})
}
