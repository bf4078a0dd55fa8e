package archive_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/Egor213/BotStats/internal/archive"
	"github.com/Egor213/BotStats/internal/domain"
	countermocks "github.com/Egor213/BotStats/internal/mocks/counters"
	"github.com/sony/gobreaker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type fakeSink struct {
	name     string
	mu       sync.Mutex
	failures int
	calls    int
	saved    []domain.AccountStats
}

func (f *fakeSink) Name() string { return f.name }

func (f *fakeSink) Save(_ context.Context, snapshot domain.AccountStats) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	if f.failures != 0 {
		if f.failures > 0 {
			f.failures--
		}
		return errors.New("unavailable")
	}
	f.saved = append(f.saved, snapshot)
	return nil
}

func snapshot() domain.AccountStats {
	return *domain.NewAccountStats("bot1", "2024-03-01 10:00:00 AM")
}

func TestArchiver_SavesToEverySink(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	counter := countermocks.NewMockCounter(ctrl)
	counter.EXPECT().Inc("file", "ok")
	counter.EXPECT().Inc("kafka", "ok")

	file, kafka := &fakeSink{name: "file"}, &fakeSink{name: "kafka"}
	a := archive.New([]archive.Sink{file, kafka}, archive.WithCounter(counter))
	require.Equal(t, 2, a.Len())

	require.NoError(t, a.Save(context.Background(), snapshot()))

	assert.Len(t, file.saved, 1)
	assert.Len(t, kafka.saved, 1)
	assert.Equal(t, "bot1", file.saved[0].Name)
}

func TestArchiver_RetriesTransientFailure(t *testing.T) {
	sink := &fakeSink{name: "postgres", failures: 1}
	a := archive.New([]archive.Sink{sink}, archive.WithRetries(2, time.Millisecond))

	require.NoError(t, a.Save(context.Background(), snapshot()))

	assert.Equal(t, 2, sink.calls)
	assert.Len(t, sink.saved, 1)
}

func TestArchiver_FailureDoesNotSkipOtherSinks(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	counter := countermocks.NewMockCounter(ctrl)
	counter.EXPECT().Inc("postgres", "failed")
	counter.EXPECT().Inc("file", "ok")

	broken := &fakeSink{name: "postgres", failures: -1}
	file := &fakeSink{name: "file"}
	a := archive.New([]archive.Sink{broken, file},
		archive.WithCounter(counter),
		archive.WithRetries(1, time.Millisecond),
	)

	err := a.Save(context.Background(), snapshot())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "postgres")
	assert.Equal(t, 2, broken.calls)
	assert.Len(t, file.saved, 1)
}

func TestArchiver_BreakerOpensAfterConsecutiveFailures(t *testing.T) {
	broken := &fakeSink{name: "kafka", failures: -1}
	a := archive.New([]archive.Sink{broken}, archive.WithRetries(0, time.Millisecond))

	for i := 0; i < 3; i++ {
		assert.Error(t, a.Save(context.Background(), snapshot()))
	}
	err := a.Save(context.Background(), snapshot())

	assert.ErrorIs(t, err, gobreaker.ErrOpenState)
	assert.Equal(t, 3, broken.calls)
}

func TestArchiver_StopsOnContextDone(t *testing.T) {
	broken := &fakeSink{name: "kafka", failures: -1}
	a := archive.New([]archive.Sink{broken}, archive.WithRetries(100, time.Hour))

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	start := time.Now()
	assert.Error(t, a.Save(ctx, snapshot()))
	assert.Less(t, time.Since(start), 5*time.Second)
}
