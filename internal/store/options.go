package store

import (
	"time"

	"github.com/coder/quartz"
)

type Option func(*Store)

func WithClock(clock quartz.Clock) Option {
	return func(s *Store) {
		s.clock = clock
	}
}

func WithArchiver(a Archiver) Option {
	return func(s *Store) {
		s.archiver = a
	}
}

func WithArchiveTimeout(timeout time.Duration) Option {
	return func(s *Store) {
		s.archiveTimeout = timeout
	}
}
