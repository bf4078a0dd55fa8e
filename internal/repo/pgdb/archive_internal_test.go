package pgdb

import (
	"math"
	"testing"

	"github.com/Egor213/BotStats/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestSortedKeywordIDs(t *testing.T) {
	keywords := map[uint64]*domain.KeywordStats{
		30: domain.NewKeywordStats(30, "t"),
		2:  domain.NewKeywordStats(2, "t"),
		11: domain.NewKeywordStats(11, "t"),
	}

	assert.Equal(t, []uint64{2, 11, 30}, sortedKeywordIDs(keywords))
	assert.Empty(t, sortedKeywordIDs(nil))
}

func TestToBigint(t *testing.T) {
	testCases := []struct {
		name string
		in   uint64
		want int64
	}{
		{name: "zero", in: 0, want: 0},
		{name: "in range", in: 42, want: 42},
		{name: "max int64", in: math.MaxInt64, want: math.MaxInt64},
		{name: "above int64", in: math.MaxUint64, want: math.MaxInt64},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, toBigint(tc.in))
		})
	}
}

func TestToNumeric(t *testing.T) {
	for _, id := range []uint64{0, 7, math.MaxInt64 + 1, math.MaxUint64} {
		n := toNumeric(id)
		assert.True(t, n.Valid)
		assert.Zero(t, n.Exp)
		assert.True(t, n.Int.IsUint64())
		assert.Equal(t, id, n.Int.Uint64())
	}
}
