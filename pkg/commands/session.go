package commands

import (
	"context"
	"io"
	"os"

	"github.com/charmbracelet/log"

	"tableflip.dev/todo/pkg/app"
	"tableflip.dev/todo/pkg/logging"
	"tableflip.dev/todo/pkg/store"
)

// session is the loaded configuration, logger and service a command runs
// against.
type session struct {
	Config  store.Config
	Log     *log.Logger
	Service *app.Service

	closer io.Closer
}

// Close releases the log file, if one was opened.
func (s *session) Close() error {
	if s.closer == nil {
		return nil
	}
	return s.closer.Close()
}

// loadConfig is replaced in tests.
var loadConfig = store.LoadConfig

// openSession reads configuration, builds the logger and restores the task
// list. When toFile is set the logger writes to the configured log file
// instead of stderr so full screen programs are not disturbed.
func openSession(ctx context.Context, toFile bool) (*session, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}

	s := &session{Config: cfg}
	if toFile {
		l, c, err := logging.OpenFile(cfg.LogFile(), cfg.LogLevel())
		if err != nil {
			return nil, err
		}
		s.Log, s.closer = l, c
	} else {
		s.Log = logging.New(os.Stderr, cfg.LogLevel())
	}

	p, err := store.Load(cfg, store.WithLogger(s.Log))
	if err != nil {
		_ = s.Close()
		return nil, err
	}
	s.Service = app.New(p, s.Log)
	if _, err := s.Service.Load(ctx); err != nil {
		_ = s.Close()
		return nil, err
	}
	return s, nil
}
