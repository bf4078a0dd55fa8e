package pgdb

import (
	"context"
	"encoding/json"
	"math"
	"math/big"
	"slices"

	"github.com/Egor213/BotStats/internal/domain"
	errorsUtils "github.com/Egor213/BotStats/pkg/errors"
	"github.com/Egor213/BotStats/pkg/postgres"
	"github.com/jackc/pgx/v5/pgtype"
)

type ArchiveRepo struct {
	*postgres.Postgres
}

func NewArchiveRepo(pg *postgres.Postgres) *ArchiveRepo {
	return &ArchiveRepo{pg}
}

// SaveAccount stores the account row and one row per keyword in a single transaction.
func (r *ArchiveRepo) SaveAccount(ctx context.Context, snapshot domain.AccountStats) (int64, error) {
	var id int64

	err := r.TrManager.Do(ctx, func(ctx context.Context) error {
		logs, err := json.Marshal(snapshot.Logs)
		if err != nil {
			return errorsUtils.WrapPathErr(err)
		}

		sql, args, err := r.Builder.
			Insert("account_archives").
			Columns("account_name", "error_counts", "log_counts", "no_api_calls", "no_internal_api_calls",
				"running", "started_at", "last_updated_at", "logs").
			Values(snapshot.Name, toBigint(snapshot.ErrorCounts), toBigint(snapshot.LogCounts),
				toBigint(snapshot.APICalls), toBigint(snapshot.InternalAPICalls),
				snapshot.Running, snapshot.StartedAt, snapshot.LastUpdatedAt, string(logs)).
			Suffix("RETURNING id").
			ToSql()
		if err != nil {
			return errorsUtils.WrapPathErr(err)
		}

		tr := r.CtxGetter.DefaultTrOrDB(ctx, r.Pool)
		if err := tr.QueryRow(ctx, sql, args...).Scan(&id); err != nil {
			return errorsUtils.WrapPathErr(err)
		}

		if len(snapshot.Keywords) == 0 {
			return nil
		}

		query := r.Builder.
			Insert("keyword_archives").
			Columns("archive_id", "keyword_id", "keyword", "error_counts", "log_counts", "data")

		for _, kwID := range sortedKeywordIDs(snapshot.Keywords) {
			kw := snapshot.Keywords[kwID]
			data, err := json.Marshal(kw)
			if err != nil {
				return errorsUtils.WrapPathErr(err)
			}

			var label any
			if v, ok := kw.Label.Get(); ok {
				label = v
			}
			query = query.Values(id, toNumeric(kw.ID), label, toBigint(kw.ErrorCounts), toBigint(kw.LogCounts), string(data))
		}

		sql, args, err = query.ToSql()
		if err != nil {
			return errorsUtils.WrapPathErr(err)
		}

		if _, err := tr.Exec(ctx, sql, args...); err != nil {
			return errorsUtils.WrapPathErr(err)
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	return id, nil
}

func sortedKeywordIDs(keywords map[uint64]*domain.KeywordStats) []uint64 {
	ids := make([]uint64, 0, len(keywords))
	for id := range keywords {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}

// toBigint saturates counters at the BIGINT maximum.
func toBigint(v uint64) int64 {
	if v > math.MaxInt64 {
		return math.MaxInt64
	}
	return int64(v)
}

// toNumeric keeps the full uint64 range of keyword ids.
func toNumeric(v uint64) pgtype.Numeric {
	return pgtype.Numeric{Int: new(big.Int).SetUint64(v), Valid: true}
}
