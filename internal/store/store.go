package store

import (
	"context"
	"slices"
	"sync"
	"time"

	"github.com/Egor213/BotStats/internal/domain"
	"github.com/coder/quartz"
	log "github.com/sirupsen/logrus"
)

const defaultArchiveTimeout = 3 * time.Second

// Store is the in-memory aggregate of every account. One RWMutex guards the whole map:
// readers run in parallel, writers and the retention sweep are serialized.
//
// Writes auto-create unknown accounts. Reads never do, they report absence instead.
type Store struct {
	mu       sync.RWMutex
	accounts map[string]*domain.AccountStats

	clock          quartz.Clock
	archiver       Archiver
	archiveTimeout time.Duration
	archives       sync.WaitGroup
}

func New(opts ...Option) *Store {
	s := &Store{
		accounts:       make(map[string]*domain.AccountStats),
		clock:          quartz.NewReal(),
		archiveTimeout: defaultArchiveTimeout,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

func (s *Store) now() string {
	return s.clock.Now().Local().Format(domain.TimeLayout)
}

// write runs fn under the write lock. A panic inside fn is logged and swallowed so the
// lock is always released and later operations keep working. Changes fn made before the
// panic are kept, so counters and log sequences of that account may disagree afterwards.
func (s *Store) write(op string, fn func(now string)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	defer func() {
		if r := recover(); r != nil {
			log.WithFields(log.Fields{
				"operation": op,
				"panic":     r,
			}).Error("Recovered from panic in store write")
		}
	}()

	fn(s.now())
}

// account must be called with the write lock held.
func (s *Store) account(name, now string) *domain.AccountStats {
	acc, ok := s.accounts[name]
	if !ok {
		acc = domain.NewAccountStats(name, now)
		s.accounts[name] = acc
		log.WithField("account", name).Debug("Account created")
	}
	return acc
}

func (s *Store) ListAccounts() []string {
	s.mu.RLock()
	names := make([]string, 0, len(s.accounts))
	for name := range s.accounts {
		names = append(names, name)
	}
	s.mu.RUnlock()

	slices.Sort(names)
	return names
}

// Account returns a deep copy of the account, or false if it was never written to.
func (s *Store) Account(name string) (domain.AccountStats, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	acc, ok := s.accounts[name]
	if !ok {
		return domain.AccountStats{}, false
	}
	return acc.Clone(), true
}

func (s *Store) Keyword(name string, id uint64) (domain.KeywordStats, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	acc, ok := s.accounts[name]
	if !ok {
		return domain.KeywordStats{}, false
	}
	kw, ok := acc.Keywords[id]
	if !ok {
		return domain.KeywordStats{}, false
	}
	return *kw.Clone(), true
}

// KeywordLogs returns an empty slice for an unknown account or keyword.
func (s *Store) KeywordLogs(name string, id uint64) []domain.LogEntry {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if acc, ok := s.accounts[name]; ok {
		if kw, ok := acc.Keywords[id]; ok {
			return kw.Clone().Logs
		}
	}
	return []domain.LogEntry{}
}

func (s *Store) UpdateAccount(name string, delta domain.AccountDelta) domain.AccountStats {
	var snapshot domain.AccountStats
	s.write("update_account", func(now string) {
		acc := s.account(name, now)
		acc.ApplyDelta(delta, now)
		snapshot = acc.Clone()
	})
	return snapshot
}

func (s *Store) AppendAccountLog(name string, entry domain.LogEntry) {
	s.write("append_account_log", func(now string) {
		s.account(name, now).AppendLog(entry, now)
	})
}

// UpsertKeywords applies the updates in order. Existing keywords get a partial patch,
// unknown ids are created. Attached logs are appended in both cases.
func (s *Store) UpsertKeywords(name string, updates []domain.KeywordUpdate) {
	s.write("upsert_keywords", func(now string) {
		acc := s.account(name, now)
		acc.LastUpdatedAt = now

		for _, u := range updates {
			kw, ok := acc.Keywords[u.ID]
			if !ok {
				kw = domain.NewKeywordStats(u.ID, now)
				acc.Keywords[u.ID] = kw
			}
			kw.ApplyPatch(u.KeywordPatch, now)
			if v, ok := u.ErrorCounts.Get(); ok {
				kw.ErrorCounts += v
			}
			kw.AppendLogs(u.Logs, now)
		}
	})
}

// AppendKeywordLog is a no-op when the keyword does not exist. Both the keyword and its
// account count the entry.
func (s *Store) AppendKeywordLog(name string, id uint64, entry domain.LogEntry) bool {
	var found bool
	s.write("append_keyword_log", func(now string) {
		acc := s.account(name, now)
		kw, ok := acc.Keywords[id]
		if !ok {
			return
		}
		found = true

		kw.AppendLogs([]domain.LogEntry{entry}, now)
		acc.LogCounts++
		if entry.IsError() {
			acc.ErrorCounts++
		}
		acc.LastUpdatedAt = now
	})
	return found
}

// UpdateKeyword patches an existing keyword. Unknown accounts and keywords are left alone.
func (s *Store) UpdateKeyword(name string, id uint64, patch domain.KeywordPatch) bool {
	var found bool
	s.write("update_keyword", func(now string) {
		acc, ok := s.accounts[name]
		if !ok {
			return
		}
		kw, ok := acc.Keywords[id]
		if !ok {
			return
		}
		found = true
		kw.ApplyPatch(patch, now)
	})
	return found
}

// ClearAccount replaces the account with a fresh one. The old content goes to the archiver
// on a background goroutine bounded by the archive timeout; archive errors are logged only.
// Wait blocks until those goroutines finish.
func (s *Store) ClearAccount(ctx context.Context, name string) {
	var (
		snapshot domain.AccountStats
		existed  bool
	)
	s.write("clear_account", func(now string) {
		if acc, ok := s.accounts[name]; ok {
			snapshot = acc.Clone()
			existed = true
		}
		s.accounts[name] = domain.NewAccountStats(name, now)
	})

	if existed && s.archiver != nil {
		s.archives.Add(1)
		go func() {
			defer s.archives.Done()
			s.archive(ctx, snapshot)
		}()
	}
}

// Wait blocks until every archive started by ClearAccount has finished.
func (s *Store) Wait() {
	s.archives.Wait()
}

func (s *Store) archive(ctx context.Context, snapshot domain.AccountStats) {
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.archiveTimeout)
	defer cancel()

	if err := s.archiver.Save(ctx, snapshot); err != nil {
		log.WithFields(log.Fields{
			"account": snapshot.Name,
			"error":   err,
		}).Error("Failed to archive account before clear")
		return
	}
	log.WithField("account", snapshot.Name).Info("Account archived")
}

// ResetAccount zeroes every counter of the account and drops all its logs. Keywords and
// their scalar fields survive.
func (s *Store) ResetAccount(name string) {
	s.write("reset_account", func(now string) {
		acc := s.account(name, now)
		acc.TrimLogs(0)
		acc.ResetCounters()
		acc.LastUpdatedAt = now
	})
}

type SweepResult struct {
	Accounts           int
	AccountLogsDropped int
	KeywordLogsDropped int
	Reset              bool
}

// Sweep trims every log sequence to its newest threshold entries in one locked pass.
// A zero threshold is the deep reset: all logs are dropped and all counters zeroed.
func (s *Store) Sweep(threshold int) SweepResult {
	res := SweepResult{Reset: threshold == 0}
	s.write("sweep", func(string) {
		for _, acc := range s.accounts {
			accDropped, kwDropped := acc.TrimLogs(threshold)
			if res.Reset {
				acc.ResetCounters()
			}
			res.Accounts++
			res.AccountLogsDropped += accDropped
			res.KeywordLogsDropped += kwDropped
		}
	})
	return res
}
