package archive

import (
	"context"

	"github.com/Egor213/BotStats/internal/domain"
	"github.com/Egor213/BotStats/internal/repo"
	log "github.com/sirupsen/logrus"
)

type RepoSink struct {
	repo repo.Archive
}

func NewRepoSink(r repo.Archive) *RepoSink {
	return &RepoSink{repo: r}
}

func (s *RepoSink) Name() string {
	return "postgres"
}

func (s *RepoSink) Save(ctx context.Context, snapshot domain.AccountStats) error {
	id, err := s.repo.SaveAccount(ctx, snapshot)
	if err != nil {
		return err
	}
	log.WithFields(log.Fields{
		"account":    snapshot.Name,
		"archive_id": id,
	}).Debug("Account archived to postgres")
	return nil
}
