package jobs

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-VideoLinkService/pkg/logger"
)

type mockReactivator struct {
	mock.Mock
}

func (m *mockReactivator) ReactivateExpiredBlocks(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func TestNewScheduler_InvalidSchedule(t *testing.T) {
	_, err := NewScheduler(&mockReactivator{}, "every day", time.Minute, logger.NewNop())
	assert.ErrorIs(t, err, ErrInvalidSchedule)
}

func TestScheduler_ReactivateBlocks(t *testing.T) {
	t.Run("runs the reactivation with a deadline", func(t *testing.T) {
		r := &mockReactivator{}
		r.On("ReactivateExpiredBlocks", mock.MatchedBy(func(ctx context.Context) bool {
			_, ok := ctx.Deadline()
			return ok
		})).Return(int64(3), nil).Once()

		s, err := NewScheduler(r, "5 0 * * *", time.Minute, logger.NewNop())
		require.NoError(t, err)

		s.ReactivateBlocks()
		r.AssertExpectations(t)
	})

	t.Run("errors are logged, not propagated", func(t *testing.T) {
		r := &mockReactivator{}
		r.On("ReactivateExpiredBlocks", mock.Anything).Return(int64(0), errors.New("db down")).Once()

		s, err := NewScheduler(r, "@daily", time.Minute, logger.NewNop())
		require.NoError(t, err)

		assert.NotPanics(t, s.ReactivateBlocks)
		r.AssertExpectations(t)
	})
}
