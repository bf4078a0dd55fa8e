package repo

import (
	"context"

	"github.com/Egor213/BotStats/internal/domain"
	"github.com/Egor213/BotStats/internal/repo/pgdb"
	"github.com/Egor213/BotStats/pkg/postgres"
)

type Archive interface {
	SaveAccount(ctx context.Context, snapshot domain.AccountStats) (int64, error)
}

type Repositories struct {
	Archive
}

func NewRepositories(pg *postgres.Postgres) *Repositories {
	return &Repositories{
		Archive: pgdb.NewArchiveRepo(pg),
	}
}
