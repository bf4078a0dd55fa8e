package service

import (
	"context"

	"github.com/Egor213/BotStats/internal/domain"
	"github.com/Egor213/BotStats/internal/metrics"
	"github.com/Egor213/BotStats/internal/store"
)

const (
	scopeAccount = "account"
	scopeKeyword = "keyword"
	kindOther    = "other"
)

// StatsService counts every store operation it forwards.
type StatsService struct {
	store    *store.Store
	counters *metrics.Counters
}

func NewStatsService(s *store.Store, cnt *metrics.Counters) *StatsService {
	return &StatsService{
		store:    s,
		counters: cnt,
	}
}

func (s *StatsService) ListAccounts() []string {
	return s.store.ListAccounts()
}

func (s *StatsService) Account(name string) (domain.AccountStats, bool) {
	return s.store.Account(name)
}

func (s *StatsService) Keyword(name string, id uint64) (domain.KeywordStats, bool) {
	return s.store.Keyword(name, id)
}

func (s *StatsService) KeywordLogs(name string, id uint64) []domain.LogEntry {
	return s.store.KeywordLogs(name, id)
}

func (s *StatsService) UpdateAccount(name string, delta domain.AccountDelta) domain.AccountStats {
	snapshot := s.store.UpdateAccount(name, delta)
	s.counters.Updates.Inc("update_account")
	return snapshot
}

func (s *StatsService) AppendAccountLog(name string, entry domain.LogEntry) {
	s.store.AppendAccountLog(name, entry)
	s.counters.Updates.Inc("append_account_log")
	s.counters.LogsAppended.Inc(scopeAccount, kindLabel(entry))
}

func (s *StatsService) UpsertKeywords(name string, updates []domain.KeywordUpdate) {
	s.store.UpsertKeywords(name, updates)
	s.counters.Updates.Inc("upsert_keywords")
	for _, u := range updates {
		s.countLogs(u.Logs)
	}
}

func (s *StatsService) AppendKeywordLog(name string, id uint64, entry domain.LogEntry) bool {
	ok := s.store.AppendKeywordLog(name, id, entry)
	s.counters.Updates.Inc("append_keyword_log")
	if ok {
		s.counters.LogsAppended.Inc(scopeKeyword, kindLabel(entry))
	}
	return ok
}

func (s *StatsService) UpdateKeyword(name string, id uint64, patch domain.KeywordPatch) bool {
	ok := s.store.UpdateKeyword(name, id, patch)
	s.counters.Updates.Inc("update_keyword")
	return ok
}

func (s *StatsService) ClearAccount(ctx context.Context, name string) {
	s.store.ClearAccount(ctx, name)
	s.counters.Updates.Inc("clear_account")
}

func (s *StatsService) ResetAccount(name string) {
	s.store.ResetAccount(name)
	s.counters.Updates.Inc("reset_account")
}

func (s *StatsService) countLogs(logs []domain.LogEntry) {
	var errs, other int
	for _, l := range logs {
		if l.IsError() {
			errs++
		} else {
			other++
		}
	}
	if errs > 0 {
		s.counters.LogsAppended.Add(float64(errs), scopeKeyword, domain.LogKindError)
	}
	if other > 0 {
		s.counters.LogsAppended.Add(float64(other), scopeKeyword, kindOther)
	}
}

// kindLabel keeps the label set bounded: the entry type is free-form.
func kindLabel(entry domain.LogEntry) string {
	if entry.IsError() {
		return domain.LogKindError
	}
	return kindOther
}
