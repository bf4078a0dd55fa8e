package store_test

import (
	"context"
	"testing"
	"time"

	"github.com/Egor213/BotStats/internal/domain"
	countermocks "github.com/Egor213/BotStats/internal/mocks/counters"
	"github.com/Egor213/BotStats/internal/store"
	"github.com/coder/quartz"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func seedKeywordLogs(st *store.Store, n int) {
	st.UpsertKeywords("bot1", []domain.KeywordUpdate{{ID: 5}})
	for i := 0; i < n; i++ {
		st.AppendKeywordLog("bot1", 5, logEntry("info", i))
	}
}

func TestSweeper_TrimsOnTick(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	dropped := countermocks.NewMockCounter(ctrl)
	dropped.EXPECT().Add(float64(0), "account")
	dropped.EXPECT().Add(float64(50), "keyword")

	mClock := quartz.NewMock(t)
	st := store.New(store.WithClock(mClock))
	seedKeywordLogs(st, 150)

	sw := store.NewSweeper(st,
		store.SweepClock(mClock),
		store.SweepInterval(time.Hour),
		store.SweepThreshold(100),
		store.SweepDroppedCounter(dropped),
	)
	sw.Start(ctx)

	mClock.Advance(30 * time.Minute).MustWait(ctx)
	assert.Len(t, st.KeywordLogs("bot1", 5), 150)

	mClock.Advance(30 * time.Minute).MustWait(ctx)
	require.Eventually(t, func() bool {
		return len(st.KeywordLogs("bot1", 5)) == 100
	}, 5*time.Second, 10*time.Millisecond)

	require.NoError(t, sw.Close())

	kw, ok := st.Keyword("bot1", 5)
	require.True(t, ok)
	assert.Equal(t, uint64(150), kw.LogCounts)
	assert.Equal(t, "msg-50", kw.Logs[0].Message)
}

func TestSweeper_DeepReset(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	mClock := quartz.NewMock(t)
	st := store.New(store.WithClock(mClock))
	seedKeywordLogs(st, 3)
	st.UpdateAccount("bot1", domain.AccountDelta{APICallDiff: domain.Some(uint64(4))})

	sw := store.NewSweeper(st,
		store.SweepClock(mClock),
		store.SweepInterval(time.Minute),
		store.SweepThreshold(0),
	)
	sw.Start(ctx)

	mClock.Advance(time.Minute).MustWait(ctx)
	require.Eventually(t, func() bool {
		acc, _ := st.Account("bot1")
		return acc.LogCounts == 0 && acc.APICalls == 0
	}, 5*time.Second, 10*time.Millisecond)

	require.NoError(t, sw.Close())

	kw, ok := st.Keyword("bot1", 5)
	require.True(t, ok)
	assert.Zero(t, kw.LogCounts)
	assert.Empty(t, kw.Logs)
}

func TestSweeper_RealClockStops(t *testing.T) {
	st := store.New()
	seedKeywordLogs(st, 20)

	sw := store.NewSweeper(st, store.SweepInterval(5*time.Millisecond), store.SweepThreshold(10))
	sw.Start(context.Background())
	sw.Start(context.Background())

	require.Eventually(t, func() bool {
		return len(st.KeywordLogs("bot1", 5)) == 10
	}, 5*time.Second, 5*time.Millisecond)

	require.NoError(t, sw.Close())
	require.NoError(t, sw.Close())
}

func TestSweeper_CloseWithoutStart(t *testing.T) {
	sw := store.NewSweeper(store.New())
	assert.NoError(t, sw.Close())
}
