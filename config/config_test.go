package config

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoadConfig(t *testing.T) {
	path := writeConfig(t, `
http:
  address: ":8081"
  swagger_enabled: true
kafka:
  brokers: ["kafka:9092"]
  booking_topic: bookings
redis:
  addr: redis:6379
  db: 2
log:
  level: debug
`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, ":8081", cfg.HTTP.Address)
	assert.True(t, cfg.HTTP.SwaggerEnabled)
	assert.Equal(t, ":9090", cfg.GRPC.Address)
	assert.Equal(t, []string{"kafka:9092"}, cfg.Kafka.Brokers)
	assert.Equal(t, "bookings", cfg.Kafka.BookingTopic)
	assert.Equal(t, "airbooking-worker", cfg.Kafka.GroupID)
	assert.True(t, cfg.Kafka.Enabled())
	assert.Equal(t, 2, cfg.Redis.DB)
	assert.Equal(t, 60, cfg.Worker.DedupeTTLMinutes)
	assert.Equal(t, slog.LevelDebug, cfg.Log.SlogLevel())
}

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig(writeConfig(t, "{}\n"))
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.HTTP.Address)
	assert.Equal(t, "booking-events", cfg.Kafka.BookingTopic)
	assert.False(t, cfg.Kafka.Enabled())
	assert.Equal(t, slog.LevelInfo, cfg.Log.SlogLevel())
}

func TestLoadConfig_Errors(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorContains(t, err, "failed to read config")

	_, err = LoadConfig(writeConfig(t, "http: [unclosed"))
	assert.ErrorContains(t, err, "failed to parse config")
}

func TestPath(t *testing.T) {
	t.Setenv("CONFIG_PATH", "/etc/airportdesk.yaml")
	assert.Equal(t, "/etc/airportdesk.yaml", Path())
}

func TestLoadDotEnv(t *testing.T) {
	var logs bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&logs, nil))
	dir := t.TempDir()

	loadDotEnv(logger, filepath.Join(dir, ".env"))
	assert.Empty(t, logs.String())

	path := filepath.Join(dir, "app.env")
	require.NoError(t, os.WriteFile(path, []byte("AIRPORTDESK_DOTENV_KEY=loaded\n"), 0o600))
	t.Cleanup(func() { os.Unsetenv("AIRPORTDESK_DOTENV_KEY") })

	loadDotEnv(logger, path)
	assert.Empty(t, logs.String())
	assert.Equal(t, "loaded", os.Getenv("AIRPORTDESK_DOTENV_KEY"))

	// каталог вместо файла: ошибка чтения, а не отсутствие файла
	loadDotEnv(logger, dir)
	assert.Contains(t, logs.String(), "level=WARN")
	assert.Contains(t, logs.String(), "load .env failed")
}
