package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/peterbourgon/diskv/v3"

	"tableflip.dev/todo/pkg/logging"
	"tableflip.dev/todo/pkg/task"
)

// Persistence defines the persistence contract for the task list. The whole
// list is kept as one JSON snapshot.
type Persistence interface {
	// Load restores the snapshot. Missing or malformed data yields an empty
	// list rather than an error.
	Load(ctx context.Context) task.List
	// Save replaces the snapshot with tasks.
	Save(tasks task.List) error
	// Watch reports snapshot changes made by any process.
	Watch(ctx context.Context) (<-chan Event, error)
}

// Option customizes Load.
type Option func(*persistence)

// WithLogger routes store diagnostics to l.
func WithLogger(l *log.Logger) Option {
	return func(p *persistence) {
		if l != nil {
			p.log = l
		}
	}
}

// Load creates a Persistence backed by diskv using the provided config.
func Load(cfg Config, opts ...Option) (Persistence, error) {
	if cfg == nil {
		var err error
		cfg, err = LoadConfig()
		if err != nil {
			return nil, err
		}
	}

	basePath := cfg.BasePath()
	if basePath == "" {
		return nil, errors.New("store: base path unknown")
	}
	key := cfg.Key()
	if key == "" {
		key = defaultKey
	}

	p := &persistence{
		d: diskv.New(diskv.Options{
			BasePath:          basePath,
			TempDir:           filepath.Join(basePath, tempDirName),
			AdvancedTransform: keyToPathTransform,
			InverseTransform:  pathToKeyTransform,
			// No cache: other processes write the same file.
			CacheSizeMax: 0,
		}),
		basePath: basePath,
		key:      key,
		log:      logging.Discard(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p, nil
}

const tempDirName = ".tmp"

type persistence struct {
	d        *diskv.Diskv
	basePath string
	key      string
	log      *log.Logger
}

func (p *persistence) Load(_ context.Context) task.List {
	val, err := p.d.Read(p.key)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			p.log.Warn("store: unreadable snapshot, starting empty", "key", p.key, "err", err)
		}
		return task.List{}
	}
	if len(val) == 0 {
		return task.List{}
	}
	var list task.List
	if err := json.Unmarshal(val, &list); err != nil {
		p.log.Warn("store: invalid snapshot, starting empty", "key", p.key, "err", err)
		return task.List{}
	}
	if list == nil {
		return task.List{}
	}
	return list.Normalize()
}

func (p *persistence) Save(tasks task.List) error {
	if tasks == nil {
		tasks = task.List{}
	}
	data, err := json.Marshal(tasks)
	if err != nil {
		return fmt.Errorf("store: encode snapshot: %w", err)
	}
	if err := p.d.Write(p.key, data); err != nil {
		return fmt.Errorf("store: write snapshot: %w", err)
	}
	p.log.Debug("store: saved snapshot", "key", p.key, "tasks", len(tasks))
	return nil
}

// Keys live directly under the base path.
func keyToPathTransform(key string) *diskv.PathKey {
	return &diskv.PathKey{
		Path:     []string{},
		FileName: key,
	}
}

func pathToKeyTransform(pathKey *diskv.PathKey) string {
	return pathKey.FileName
}
