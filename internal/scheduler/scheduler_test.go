package scheduler

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

// mockEnqueuer is a mock implementation of DigestEnqueuer
type mockEnqueuer struct {
	calls []time.Time
	err   error
}

func (m *mockEnqueuer) EnqueueDigest(ctx context.Context, at time.Time) error {
	m.calls = append(m.calls, at)
	return m.err
}

func TestNew(t *testing.T) {
	tests := []struct {
		name          string
		schedule      string
		expectedError bool
	}{
		{name: "daily", schedule: "0 8 * * *"},
		{name: "descriptor", schedule: "@hourly"},
		{name: "invalid expression", schedule: "every morning", expectedError: true},
		{name: "seconds field is not accepted", schedule: "0 0 8 * * *", expectedError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := New(tt.schedule, &mockEnqueuer{}, zap.NewNop())

			if tt.expectedError {
				assert.Error(t, err)
				assert.Nil(t, s)
				return
			}
			require.NoError(t, err)
			assert.Len(t, s.cron.Entries(), 1)
		})
	}
}

func TestScheduler_RequestDigest(t *testing.T) {
	at := time.Date(2026, 4, 1, 8, 0, 0, 0, time.UTC)

	t.Run("success", func(t *testing.T) {
		enqueuer := &mockEnqueuer{}
		s, err := New("0 8 * * *", enqueuer, zap.NewNop())
		require.NoError(t, err)
		s.now = func() time.Time { return at }

		s.requestDigest()

		require.Len(t, enqueuer.calls, 1)
		assert.Equal(t, at, enqueuer.calls[0])
	})

	t.Run("enqueue failure is logged", func(t *testing.T) {
		core, logs := observer.New(zap.ErrorLevel)
		enqueuer := &mockEnqueuer{err: errors.New("redis down")}
		s, err := New("0 8 * * *", enqueuer, zap.New(core))
		require.NoError(t, err)

		s.requestDigest()

		assert.Equal(t, 1, logs.FilterMessage("Failed to enqueue contact digest").Len())
	})
}

func TestScheduler_StartStop(t *testing.T) {
	s, err := New("0 8 * * *", &mockEnqueuer{}, zap.NewNop())
	require.NoError(t, err)

	s.Start()
	next := s.Next()
	s.Stop()

	assert.False(t, next.IsZero())
	assert.Equal(t, 8, next.Hour())
}
