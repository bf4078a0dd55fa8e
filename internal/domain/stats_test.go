package domain_test

import (
	"fmt"
	"testing"

	"github.com/Egor213/BotStats/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func entry(kind string, i int) domain.LogEntry {
	return domain.LogEntry{Kind: kind, Timestamp: "t", Message: fmt.Sprintf("msg-%d", i)}
}

func TestAccountStats_ApplyDelta(t *testing.T) {
	a := domain.NewAccountStats("bot1", "t0")

	a.ApplyDelta(domain.AccountDelta{
		ErrorCounts: domain.Some(uint64(3)),
		Running:     domain.Some(true),
		APICallDiff: domain.Some(uint64(10)),
	}, "t1")
	a.ApplyDelta(domain.AccountDelta{
		ErrorCounts:         domain.Some(uint64(2)),
		InternalAPICallDiff: domain.Some(uint64(4)),
	}, "t2")

	assert.Equal(t, uint64(5), a.ErrorCounts)
	assert.True(t, a.Running)
	assert.Equal(t, uint64(10), a.APICalls)
	assert.Equal(t, uint64(4), a.InternalAPICalls)
	assert.Equal(t, "t0", a.StartedAt)
	assert.Equal(t, "t2", a.LastUpdatedAt)
}

func TestAccountStats_CloneIsDeep(t *testing.T) {
	a := domain.NewAccountStats("bot1", "t0")
	a.AppendLog(entry("info", 0), "t1")
	k := domain.NewKeywordStats(1, "t1")
	k.AppendLogs([]domain.LogEntry{entry("info", 1)}, "t1")
	a.Keywords[1] = k

	c := a.Clone()
	a.AppendLog(entry("info", 2), "t2")
	k.AppendLogs([]domain.LogEntry{entry("error", 3)}, "t2")
	k.Running = domain.Some(true)

	assert.Len(t, c.Logs, 1)
	require.Contains(t, c.Keywords, uint64(1))
	assert.Len(t, c.Keywords[1].Logs, 1)
	assert.Equal(t, uint64(0), c.Keywords[1].ErrorCounts)
	assert.False(t, c.Keywords[1].Running.Set)
}

func TestAccountStats_TrimLogs(t *testing.T) {
	testCases := []struct {
		name        string
		appended    int
		keep        int
		wantLen     int
		wantDropped int
	}{
		{name: "under threshold", appended: 3, keep: 5, wantLen: 3, wantDropped: 0},
		{name: "at threshold", appended: 5, keep: 5, wantLen: 5, wantDropped: 0},
		{name: "over threshold", appended: 8, keep: 5, wantLen: 5, wantDropped: 3},
		{name: "zero keeps nothing", appended: 4, keep: 0, wantLen: 0, wantDropped: 4},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			a := domain.NewAccountStats("bot1", "t0")
			k := domain.NewKeywordStats(9, "t0")
			a.Keywords[9] = k
			for i := 0; i < tc.appended; i++ {
				a.AppendLog(entry("info", i), "t")
				k.AppendLogs([]domain.LogEntry{entry("info", i)}, "t")
			}

			accDropped, kwDropped := a.TrimLogs(tc.keep)

			assert.Equal(t, tc.wantDropped, accDropped)
			assert.Equal(t, tc.wantDropped, kwDropped)
			require.Len(t, a.Logs, tc.wantLen)
			require.Len(t, k.Logs, tc.wantLen)
			for i := 0; i < tc.wantLen; i++ {
				want := fmt.Sprintf("msg-%d", tc.appended-tc.wantLen+i)
				assert.Equal(t, want, a.Logs[i].Message)
				assert.Equal(t, want, k.Logs[i].Message)
			}
			assert.Equal(t, uint64(tc.appended), a.LogCounts)
			assert.Equal(t, uint64(tc.appended), k.LogCounts)
		})
	}
}

func TestAccountStats_ResetCounters(t *testing.T) {
	a := domain.NewAccountStats("bot1", "t0")
	a.ApplyDelta(domain.AccountDelta{APICallDiff: domain.Some(uint64(3)), InternalAPICallDiff: domain.Some(uint64(1))}, "t")
	a.AppendLog(entry("error", 0), "t")
	k := domain.NewKeywordStats(2, "t")
	k.AppendLogs([]domain.LogEntry{entry("error", 1), entry("info", 2)}, "t")
	a.Keywords[2] = k

	a.ResetCounters()

	assert.Zero(t, a.ErrorCounts)
	assert.Zero(t, a.LogCounts)
	assert.Zero(t, a.APICalls)
	assert.Zero(t, a.InternalAPICalls)
	assert.Zero(t, k.ErrorCounts)
	assert.Zero(t, k.LogCounts)
	assert.Len(t, k.Logs, 2)
}
