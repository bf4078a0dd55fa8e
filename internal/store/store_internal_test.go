package store

import (
	"testing"
	"time"

	"github.com/Egor213/BotStats/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_WritePanicReleasesLock(t *testing.T) {
	s := New()
	s.AppendAccountLog("bot1", domain.LogEntry{Kind: "info"})

	assert.NotPanics(t, func() {
		s.write("boom", func(now string) {
			s.accounts["bot1"].LogCounts++
			var m map[string]int
			m["x"] = 1
		})
	})

	done := make(chan struct{})
	go func() {
		s.AppendAccountLog("bot2", domain.LogEntry{Kind: "info"})
		_, _ = s.Account("bot1")
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("store lock was not released after a panic")
	}

	acc, ok := s.Account("bot2")
	require.True(t, ok)
	assert.Equal(t, uint64(1), acc.LogCounts)
	assert.Len(t, acc.Logs, 1)
}
