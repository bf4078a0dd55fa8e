package domain

// AccountDelta is a partial update of the account counters. Counts are added, Running is overwritten.
type AccountDelta struct {
	ErrorCounts         Opt[uint64] `json:"error_counts"`
	Running             Opt[bool]   `json:"running"`
	APICallDiff         Opt[uint64] `json:"no_of_api_call_diff"`
	InternalAPICallDiff Opt[uint64] `json:"no_of_internal_api_call_diff"`
}

// KeywordPatch holds the overwrite-style keyword fields.
type KeywordPatch struct {
	Name         Opt[string]  `json:"name"`
	Label        Opt[string]  `json:"keyword"`
	Placement    Opt[uint64]  `json:"placement"`
	Running      Opt[bool]    `json:"running"`
	AdsRunning   Opt[bool]    `json:"ads_running"`
	AdsPosition  Opt[uint64]  `json:"ads_position"`
	CurrentPrice Opt[float64] `json:"current_price"`
}

func (p KeywordPatch) IsEmpty() bool {
	return !p.Name.Set && !p.Label.Set && !p.Placement.Set && !p.Running.Set &&
		!p.AdsRunning.Set && !p.AdsPosition.Set && !p.CurrentPrice.Set
}

// KeywordUpdate is one element of a set_keywords batch.
type KeywordUpdate struct {
	ID uint64 `json:"id"`
	KeywordPatch
	ErrorCounts Opt[uint64] `json:"error_counts"`
	Logs        []LogEntry  `json:"logs" validate:"dive"`
}
