package app

import (
	"errors"
	"os"
	"strings"
	"time"

	errorsUtils "github.com/Egor213/BotStats/pkg/errors"

	"github.com/cenkalti/backoff/v4"
	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	log "github.com/sirupsen/logrus"
)

const (
	defaultAttempts = 10
	defaultTimeout  = time.Second
	migrationsPath  = "migrations"
)

// Migrate applies the archive schema. Any failure is fatal.
func Migrate(pgUrl string) {
	pgUrl = withSSLModeDisabled(pgUrl)

	if _, err := os.Stat(migrationsPath); os.IsNotExist(err) {
		log.Fatalf("migrations directory %q does not exist", migrationsPath)
	}

	b := backoff.NewConstantBackOff(defaultTimeout)
	mgrt, err := backoff.RetryNotifyWithData(func() (*migrate.Migrate, error) {
		return migrate.New("file://"+migrationsPath, pgUrl)
	}, backoff.WithMaxRetries(b, defaultAttempts), func(err error, _ time.Duration) {
		log.WithField("error", err).Info("Postgres trying to connect for migrations")
	})
	if err != nil {
		log.Fatal(errorsUtils.WrapPathErr(err))
	}
	defer mgrt.Close()

	err = mgrt.Up()
	if errors.Is(err, migrate.ErrNoChange) {
		log.Info("Migration no change")
		return
	}
	if err != nil {
		log.Fatal(errorsUtils.WrapPathErr(err))
	}

	log.Info("Migration successful up")
}

// withSSLModeDisabled adds sslmode=disable unless the url already sets sslmode.
func withSSLModeDisabled(pgUrl string) string {
	if strings.Contains(pgUrl, "sslmode=") {
		return pgUrl
	}
	if strings.Contains(pgUrl, "?") {
		return pgUrl + "&sslmode=disable"
	}
	return pgUrl + "?sslmode=disable"
}
