package domain_test

import (
	"encoding/json"
	"testing"

	"github.com/Egor213/BotStats/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpt_Unmarshal(t *testing.T) {
	testCases := []struct {
		name string
		body string
		want domain.KeywordPatch
	}{
		{
			name: "missing fields stay unset",
			body: `{}`,
			want: domain.KeywordPatch{},
		},
		{
			name: "null is unset",
			body: `{"running": null, "name": null}`,
			want: domain.KeywordPatch{},
		},
		{
			name: "zero values are set",
			body: `{"running": false, "placement": 0, "name": ""}`,
			want: domain.KeywordPatch{
				Running:   domain.Some(false),
				Placement: domain.Some(uint64(0)),
				Name:      domain.Some(""),
			},
		},
		{
			name: "keyword maps to label",
			body: `{"keyword": "shoes", "current_price": 12.5}`,
			want: domain.KeywordPatch{
				Label:        domain.Some("shoes"),
				CurrentPrice: domain.Some(12.5),
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var got domain.KeywordPatch
			require.NoError(t, json.Unmarshal([]byte(tc.body), &got))
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestOpt_UnmarshalWrongType(t *testing.T) {
	var got domain.KeywordPatch
	assert.Error(t, json.Unmarshal([]byte(`{"running": "yes"}`), &got))
}

func TestOpt_MarshalUnsetAsNull(t *testing.T) {
	k := domain.NewKeywordStats(7, "now")
	k.Running = domain.Some(true)

	raw, err := json.Marshal(k)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.Equal(t, true, decoded["running"])
	assert.Nil(t, decoded["name"])
	assert.Contains(t, decoded, "name")
	assert.Equal(t, []any{}, decoded["logs"])
}

func TestKeywordUpdate_Unmarshal(t *testing.T) {
	body := `{"id": 5, "running": true, "error_counts": 2, "logs": [{"type": "info", "time": "t", "message": "m", "meta": {"a": 1}}]}`

	var got domain.KeywordUpdate
	require.NoError(t, json.Unmarshal([]byte(body), &got))

	assert.Equal(t, uint64(5), got.ID)
	assert.Equal(t, domain.Some(true), got.Running)
	assert.Equal(t, domain.Some(uint64(2)), got.ErrorCounts)
	require.Len(t, got.Logs, 1)
	assert.Equal(t, "info", got.Logs[0].Kind)
	assert.JSONEq(t, `{"a": 1}`, string(got.Logs[0].Meta))
}
