package closer

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/DRSN-tech/watch-store/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCloser_LIFO(t *testing.T) {
	c := NewCloser(0, logger.NewNop())
	var order []string
	var mu sync.Mutex
	record := func(name string) func() {
		return func() {
			mu.Lock()
			defer mu.Unlock()
			order = append(order, name)
		}
	}

	c.AddFunc("postgres", record("postgres"))
	c.AddFunc("redis", record("redis"))
	c.AddFunc("http", record("http"))

	require.NoError(t, c.Close(context.Background()))
	assert.Equal(t, []string{"http", "redis", "postgres"}, order)

	require.NoError(t, c.Close(context.Background()), "second close is a no-op")
	assert.Len(t, order, 3)
}

func TestCloser_CollectsErrors(t *testing.T) {
	c := NewCloser(0, logger.NewNop())
	c.Add("kafka", func(context.Context) error { return errors.New("broker gone") })
	c.AddFunc("redis", func() {})

	err := c.Close(context.Background())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "kafka: broker gone")
}

func TestCloser_ForcedAfterTimeout(t *testing.T) {
	c := NewCloser(50*time.Millisecond, logger.NewNop())
	forced := make(chan struct{})

	c.Add("slow", func(ctx context.Context) error {
		select {
		case <-ctx.Done():
			close(forced)
			return ctx.Err()
		case <-time.After(time.Second):
			return nil
		}
	})
	c.Add("hung", func(ctx context.Context) error {
		<-ctx.Done()
		return ctx.Err()
	})

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	err := c.Close(ctx)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "shutdown interrupted after 0/2 funcs")
	assert.Contains(t, err.Error(), "[FORCED] slow")
	select {
	case <-forced:
	default:
		t.Fatal("slow func was not force-closed")
	}
}
