package cfg

import (
	"testing"
	"time"

	"github.com/DRSN-tech/watch-store/pkg/e"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequiredEnv(t *testing.T) {
	t.Helper()
	t.Setenv("POSTGRES_USER", "watch")
	t.Setenv("POSTGRES_PASSWORD", "secret")
	t.Setenv("POSTGRES_DB", "watch_store")
	t.Setenv("KAFKA_BROKERS", "kafka-1:9092,kafka-2:9092")
}

func TestLoad_Defaults(t *testing.T) {
	// given
	setRequiredEnv(t)

	// when
	cfg, err := Load()

	// then
	require.NoError(t, err)
	assert.Equal(t, "development", cfg.App.Env)
	assert.Equal(t, "8080", cfg.Http.Port)
	assert.Equal(t, "8091", cfg.Grpc.Port)
	assert.Equal(t, []string{"kafka-1:9092", "kafka-2:9092"}, cfg.Kafka.Brokers)
	assert.Equal(t, "catalog-events", cfg.Kafka.Topic)
	assert.Equal(t, "catalog-images", cfg.Minio.BucketName)
	assert.Equal(t, "http://minio:9000", cfg.Minio.PublicBaseURL)
	assert.Equal(t, 3*time.Minute, cfg.Redis.ListTTL)
	assert.False(t, cfg.Catalog.AtomicCreate)
	assert.Equal(t, 10, cfg.Outbox.BatchSize)
	assert.Equal(t, 5*time.Minute, cfg.Outbox.ClaimTimeout)
	assert.Equal(t, "host=localhost port=5432 user=watch password=secret dbname=watch_store sslmode=disable", cfg.Db.DSN())
}

func TestLoad_Overrides(t *testing.T) {
	// given
	setRequiredEnv(t)
	t.Setenv("CATALOG_ATOMIC_CREATE", "true")
	t.Setenv("MINIO_USE_SSL", "true")
	t.Setenv("MINIO_ENDPOINT", "s3.example.com")
	t.Setenv("MINIO_PUBLIC_URL", "https://cdn.example.com/")
	t.Setenv("HTTP_READ_TIMEOUT", "7s")

	// when
	cfg, err := Load()

	// then
	require.NoError(t, err)
	assert.True(t, cfg.Catalog.AtomicCreate)
	assert.True(t, cfg.Minio.MinioUseSSL)
	assert.Equal(t, "https://cdn.example.com", cfg.Minio.PublicBaseURL)
	assert.Equal(t, 7*time.Second, cfg.Http.ReadTimeout)
}

func TestLoad_Errors(t *testing.T) {
	testCases := []struct {
		name  string
		key   string
		value string
	}{
		{"missing postgres user", "POSTGRES_USER", ""},
		{"missing kafka brokers", "KAFKA_BROKERS", ""},
		{"bad bool", "CATALOG_ATOMIC_CREATE", "maybe"},
		{"bad duration", "LIST_CACHE_TTL", "forever"},
		{"bad batch size", "OUTBOX_BATCH_SIZE", "0"},
		{"zero claim timeout", "OUTBOX_CLAIM_TIMEOUT", "0s"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			setRequiredEnv(t)
			t.Setenv(tc.key, tc.value)

			_, err := Load()

			assert.Error(t, err)
		})
	}
}

func TestParseIntEnv(t *testing.T) {
	t.Setenv("SOME_INT", "abc")

	v, err := parseIntEnv("SOME_INT", 5)

	assert.ErrorIs(t, err, e.ErrIncorrectEnvVariable)
	assert.Equal(t, 5, v)
}
