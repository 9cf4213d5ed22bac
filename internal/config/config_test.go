package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(body), 0o600))
	return dir
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, StoragePostgres, cfg.Storage.Driver)
	assert.Equal(t, DispatchDirect, cfg.Dispatch.Mode)
	assert.Equal(t, time.Minute, cfg.Schedule.PollInterval)
	assert.Equal(t, 24*time.Hour, cfg.Schedule.SnoozeDuration)
	assert.Equal(t, 48*time.Hour, cfg.Schedule.ExpiryWindow)
	assert.Equal(t, 3, cfg.Schedule.MaxAttempts)
	assert.Equal(t, 2, cfg.Schedule.MaxSnoozes)
	assert.EqualValues(t, 3, cfg.Retry.Attempts)
	assert.EqualValues(t, time.Second, cfg.Retry.Delay)
}

func TestLoad_FileAndEnv(t *testing.T) {
	dir := writeConfig(t, `
storage:
  driver: memory
schedule:
  poll_interval: 30s
  max_snoozes: 0
rabbitmq:
  port: 5672
  retry_ttl: 10s
`)
	t.Setenv("DISPATCH_MODE", "queue")
	t.Setenv("DB_HOST", "db.internal")

	cfg, err := Load(dir)
	require.NoError(t, err)

	assert.Equal(t, StorageMemory, cfg.Storage.Driver)
	assert.Equal(t, DispatchQueue, cfg.Dispatch.Mode)
	assert.Equal(t, 30*time.Second, cfg.Schedule.PollInterval)
	assert.Equal(t, 0, cfg.Schedule.MaxSnoozes)
	assert.Equal(t, 10*time.Second, cfg.RabbitMQ.RetryTTL)
	assert.Equal(t, "db.internal", cfg.Database.Master.Host)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"storage driver", "storage:\n  driver: sqlite\n"},
		{"dispatch mode", "dispatch:\n  mode: carrier-pigeon\n"},
		{"poll interval", "schedule:\n  poll_interval: 0s\n"},
		{"batch size", "schedule:\n  batch_size: 0\n"},
		{"queue without workers", "dispatch:\n  mode: queue\nworkers:\n  count: 0\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.body))
			assert.Error(t, err)
		})
	}
}

func TestURLAndDSN(t *testing.T) {
	r := RabbitMQ{User: "guest", Password: "secret", Host: "mq", Port: 5672}
	assert.Equal(t, "amqp://guest:secret@mq:5672", r.URL())

	n := DatabaseNode{User: "u", Pass: "p", Host: "h", Port: "5432", Name: "plants", SSLMode: "disable"}
	assert.Equal(t, "postgres://u:p@h:5432/plants?sslmode=disable", n.DSN())
}
