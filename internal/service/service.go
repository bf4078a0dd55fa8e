package service

import (
	"context"

	"github.com/Egor213/BotStats/internal/domain"
	"github.com/Egor213/BotStats/internal/metrics"
	"github.com/Egor213/BotStats/internal/store"
)

type Stats interface {
	ListAccounts() []string
	Account(name string) (domain.AccountStats, bool)
	Keyword(name string, id uint64) (domain.KeywordStats, bool)
	KeywordLogs(name string, id uint64) []domain.LogEntry
	UpdateAccount(name string, delta domain.AccountDelta) domain.AccountStats
	AppendAccountLog(name string, entry domain.LogEntry)
	UpsertKeywords(name string, updates []domain.KeywordUpdate)
	AppendKeywordLog(name string, id uint64, entry domain.LogEntry) bool
	UpdateKeyword(name string, id uint64, patch domain.KeywordPatch) bool
	ClearAccount(ctx context.Context, name string)
	ResetAccount(name string)
}

type Services struct {
	Stats Stats
}

type ServicesDependencies struct {
	Store    *store.Store
	Counters *metrics.Counters
}

func NewServices(deps ServicesDependencies) *Services {
	return &Services{
		Stats: NewStatsService(deps.Store, deps.Counters),
	}
}
