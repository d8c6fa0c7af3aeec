package job

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// MockSweeper is a mock implementation of Sweeper
type MockSweeper struct {
	mock.Mock
}

func (m *MockSweeper) SweepExpired(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

// MockSweepRecorder is a mock implementation of SweepRecorder
type MockSweepRecorder struct {
	mock.Mock
}

func (m *MockSweepRecorder) RecordPresenceSwept(n int64) {
	m.Called(n)
}

func TestPresenceSweepJob_Run(t *testing.T) {
	t.Run("성공: 만료 항목 제거 후 기록", func(t *testing.T) {
		sweeper := new(MockSweeper)
		recorder := new(MockSweepRecorder)
		sweeper.On("SweepExpired", mock.Anything).Return(int64(3), nil)
		recorder.On("RecordPresenceSwept", int64(3)).Return()

		NewPresenceSweepJob(sweeper, recorder, zap.NewNop()).Run()

		sweeper.AssertExpectations(t)
		recorder.AssertExpectations(t)
	})

	t.Run("실패: 저장소 에러 시 기록하지 않음", func(t *testing.T) {
		sweeper := new(MockSweeper)
		recorder := new(MockSweepRecorder)
		sweeper.On("SweepExpired", mock.Anything).Return(int64(0), errors.New("db down"))

		NewPresenceSweepJob(sweeper, recorder, zap.NewNop()).Run()

		sweeper.AssertExpectations(t)
		recorder.AssertNotCalled(t, "RecordPresenceSwept", mock.Anything)
	})

	t.Run("recorder 없이 실행", func(t *testing.T) {
		sweeper := new(MockSweeper)
		sweeper.On("SweepExpired", mock.Anything).Return(int64(1), nil)

		assert.NotPanics(t, func() { NewPresenceSweepJob(sweeper, nil, zap.NewNop()).Run() })
	})
}

func TestScheduler_RunsAndStops(t *testing.T) {
	s := NewScheduler(zap.NewNop())
	var runs atomic.Int32
	require.NoError(t, s.AddFunc("tick", "@every 1s", func() { runs.Add(1) }))

	s.Start()
	assert.Eventually(t, func() bool { return runs.Load() >= 1 }, 3*time.Second, 50*time.Millisecond)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	s.Stop(ctx)
}

func TestScheduler_RejectsBadSpec(t *testing.T) {
	s := NewScheduler(zap.NewNop())
	err := s.AddFunc("bad", "every minute please", func() {})
	assert.Error(t, err)
}
