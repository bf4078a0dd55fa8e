package store

import (
	"context"

	"github.com/Egor213/BotStats/internal/domain"
)

// Archiver receives the last snapshot of an account before ClearAccount wipes it.
type Archiver interface {
	Save(ctx context.Context, snapshot domain.AccountStats) error
}
