package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFlags(t *testing.T, args ...string) *pflag.FlagSet {
	t.Helper()
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	RegisterFlags(fs)
	require.NoError(t, fs.Parse(args))
	return fs
}

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		"DOCINTAKE_LOG_LEVEL", "DOCINTAKE_LOG_FILE", "DOCINTAKE_BROWSE_START_DIR",
		"DOCINTAKE_TELEMETRY_OTLP_ENDPOINT", "OTEL_EXPORTER_OTLP_ENDPOINT", "OTEL_SERVICE_NAME",
	} {
		t.Setenv(k, "")
		os.Unsetenv(k)
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)
	cfg, err := Load(newFlags(t))
	require.NoError(t, err)

	wd, _ := os.Getwd()
	assert.Equal(t, DefaultLogLevel, cfg.Log.Level)
	assert.Empty(t, cfg.Log.File)
	assert.Equal(t, wd, cfg.Browse.StartDir)
	assert.Empty(t, cfg.Telemetry.OTLPEndpoint)
	assert.Equal(t, DefaultServiceName, cfg.Telemetry.ServiceName)
}

func TestLoad_FlagsOverrideEnv(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	t.Setenv("DOCINTAKE_LOG_LEVEL", "warn")
	t.Setenv("DOCINTAKE_BROWSE_START_DIR", dir)

	cfg, err := Load(newFlags(t))
	require.NoError(t, err)
	assert.Equal(t, "warn", cfg.Log.Level)
	assert.Equal(t, dir, cfg.Browse.StartDir)

	cfg, err = Load(newFlags(t, "--log-level", "debug"))
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoad_ConfigFile(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	path := filepath.Join(dir, "docintake.yaml")
	content := "log:\n  level: error\n  file: " + filepath.Join(dir, "out.log") + "\n" +
		"browse:\n  start_dir: " + dir + "\n  show_hidden: true\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(newFlags(t, "--config", path))
	require.NoError(t, err)
	assert.Equal(t, "error", cfg.Log.Level)
	assert.Equal(t, filepath.Join(dir, "out.log"), cfg.Log.File)
	assert.Equal(t, dir, cfg.Browse.StartDir)
	assert.True(t, cfg.Browse.ShowHidden)
}

func TestLoad_EnvFile(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	path := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(path, []byte("DOCINTAKE_LOG_LEVEL=debug\nDOCINTAKE_BROWSE_START_DIR="+dir+"\n"), 0o644))

	cfg, err := Load(newFlags(t, "--env-file", path))
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, dir, cfg.Browse.StartDir)

	_, err = Load(newFlags(t, "--env-file", filepath.Join(dir, "missing.env")))
	require.Error(t, err)
}

func TestLoad_OTelEnvFallback(t *testing.T) {
	clearEnv(t)
	t.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "collector:4318")
	t.Setenv("OTEL_SERVICE_NAME", "intake-dev")

	cfg, err := Load(nil)
	require.NoError(t, err)
	assert.Equal(t, "collector:4318", cfg.Telemetry.OTLPEndpoint)
	assert.Equal(t, "intake-dev", cfg.Telemetry.ServiceName)
}

func TestLoad_InvalidLevel(t *testing.T) {
	clearEnv(t)
	_, err := Load(newFlags(t, "--log-level", "loud"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "log.level")
}

func TestValidate_StartDirNotDirectory(t *testing.T) {
	f := filepath.Join(t.TempDir(), "file.txt")
	require.NoError(t, os.WriteFile(f, []byte("x"), 0o644))

	cfg := &Config{Log: LogConfig{Level: "info"}, Browse: BrowseConfig{StartDir: f}}
	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not a directory")

	cfg.Browse.StartDir = filepath.Join(t.TempDir(), "missing")
	require.Error(t, cfg.Validate())
}
