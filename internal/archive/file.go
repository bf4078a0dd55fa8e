package archive

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/Egor213/BotStats/internal/domain"
	errorsUtils "github.com/Egor213/BotStats/pkg/errors"
)

const backupTimeLayout = "2006-01-02 15:04:05"

// FileSink writes each snapshot as an indented JSON file into dir.
type FileSink struct {
	dir string
	now func() time.Time
}

func NewFileSink(dir string) *FileSink {
	return &FileSink{dir: dir, now: time.Now}
}

func (s *FileSink) Name() string {
	return "file"
}

func (s *FileSink) Save(ctx context.Context, snapshot domain.AccountStats) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	data, err := json.MarshalIndent(snapshot, "", "  ")
	if err != nil {
		return errorsUtils.WrapPathErr(err)
	}

	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return errorsUtils.WrapPathErr(err)
	}

	name := SanitizeFilename(fmt.Sprintf("%s %s", snapshot.Name, s.now().Format(backupTimeLayout))) + ".json"
	tmp, err := os.CreateTemp(s.dir, ".archive-*")
	if err != nil {
		return errorsUtils.WrapPathErr(err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return errorsUtils.WrapPathErr(err)
	}
	if err := tmp.Close(); err != nil {
		return errorsUtils.WrapPathErr(err)
	}

	if err := os.Rename(tmp.Name(), filepath.Join(s.dir, name)); err != nil {
		return errorsUtils.WrapPathErr(err)
	}
	return nil
}
