package domain

// TimeLayout is the layout of every timestamp string the service produces.
const TimeLayout = "2006-01-02 03:04:05 PM"

type KeywordStats struct {
	ID            uint64       `json:"id"`
	LastUpdatedAt string       `json:"last_updated_at"`
	ErrorCounts   uint64       `json:"error_counts"`
	LogCounts     uint64       `json:"log_counts"`
	Name          Opt[string]  `json:"name"`
	Label         Opt[string]  `json:"keyword"`
	Placement     Opt[uint64]  `json:"placement"`
	Running       Opt[bool]    `json:"running"`
	AdsRunning    Opt[bool]    `json:"ads_running"`
	AdsPosition   Opt[uint64]  `json:"ads_position"`
	CurrentPrice  Opt[float64] `json:"current_price"`
	Logs          []LogEntry   `json:"logs"`
}

func NewKeywordStats(id uint64, now string) *KeywordStats {
	return &KeywordStats{
		ID:            id,
		LastUpdatedAt: now,
		Logs:          []LogEntry{},
	}
}

func (k *KeywordStats) ApplyPatch(p KeywordPatch, now string) {
	k.Name.Apply(p.Name)
	k.Label.Apply(p.Label)
	k.Placement.Apply(p.Placement)
	k.Running.Apply(p.Running)
	k.AdsRunning.Apply(p.AdsRunning)
	k.AdsPosition.Apply(p.AdsPosition)
	k.CurrentPrice.Apply(p.CurrentPrice)
	k.LastUpdatedAt = now
}

// AppendLogs counts every entry, not every call.
func (k *KeywordStats) AppendLogs(logs []LogEntry, now string) {
	if len(logs) == 0 {
		return
	}
	k.Logs = append(k.Logs, logs...)
	k.LogCounts += uint64(len(logs))
	k.ErrorCounts += countErrors(logs)
	k.LastUpdatedAt = now
}

func (k *KeywordStats) Clone() *KeywordStats {
	c := *k
	c.Logs = cloneLogs(k.Logs)
	return &c
}

type AccountStats struct {
	Name             string                   `json:"account_name"`
	ErrorCounts      uint64                   `json:"error_counts"`
	LogCounts        uint64                   `json:"log_counts"`
	Running          bool                     `json:"running"`
	APICalls         uint64                   `json:"no_api_calls"`
	InternalAPICalls uint64                   `json:"no_internal_api_calls"`
	StartedAt        string                   `json:"started_at"`
	LastUpdatedAt    string                   `json:"last_updated_at"`
	Logs             []LogEntry               `json:"logs"`
	Keywords         map[uint64]*KeywordStats `json:"keywords"`
}

func NewAccountStats(name, now string) *AccountStats {
	return &AccountStats{
		Name:          name,
		StartedAt:     now,
		LastUpdatedAt: now,
		Logs:          []LogEntry{},
		Keywords:      make(map[uint64]*KeywordStats),
	}
}

func (a *AccountStats) ApplyDelta(d AccountDelta, now string) {
	if v, ok := d.ErrorCounts.Get(); ok {
		a.ErrorCounts += v
	}
	if v, ok := d.Running.Get(); ok {
		a.Running = v
	}
	if v, ok := d.APICallDiff.Get(); ok {
		a.APICalls += v
	}
	if v, ok := d.InternalAPICallDiff.Get(); ok {
		a.InternalAPICalls += v
	}
	a.LastUpdatedAt = now
}

func (a *AccountStats) AppendLog(entry LogEntry, now string) {
	a.Logs = append(a.Logs, entry)
	a.LogCounts++
	if entry.IsError() {
		a.ErrorCounts++
	}
	a.LastUpdatedAt = now
}

// Clone returns a deep copy that shares nothing mutable with a.
func (a *AccountStats) Clone() AccountStats {
	c := *a
	c.Logs = cloneLogs(a.Logs)
	c.Keywords = make(map[uint64]*KeywordStats, len(a.Keywords))
	for id, k := range a.Keywords {
		c.Keywords[id] = k.Clone()
	}
	return c
}

// TrimLogs keeps the newest keep entries of the account log and of every keyword log.
// Counters are left alone.
func (a *AccountStats) TrimLogs(keep int) (accountDropped, keywordDropped int) {
	a.Logs, accountDropped = trimLogs(a.Logs, keep)
	for _, k := range a.Keywords {
		var n int
		k.Logs, n = trimLogs(k.Logs, keep)
		keywordDropped += n
	}
	return accountDropped, keywordDropped
}

// ResetCounters zeroes every counter of the account and its keywords.
func (a *AccountStats) ResetCounters() {
	a.ErrorCounts = 0
	a.LogCounts = 0
	a.APICalls = 0
	a.InternalAPICalls = 0
	for _, k := range a.Keywords {
		k.ErrorCounts = 0
		k.LogCounts = 0
	}
}
