// Package store persists journal snapshots on disk.
package store

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"

	"github.com/peterbourgon/diskv/v3"

	"tableflip.dev/daybook/pkg/journal"
	"tableflip.dev/daybook/pkg/task"
)

const (
	dailyDir = "daily"
	tempDir  = ".tmp"
)

// layoutDirs is the directory layout under the journal root. Only daily is
// read and written; the rest are created so the layout matches journals made
// by the earlier tool.
var layoutDirs = []string{dailyDir, "monthly_log", "yearly_log", "future_log", "backlog"}

// Persistence is the load/save boundary around a journal snapshot.
type Persistence interface {
	Load(ctx context.Context) (journal.Snapshot, error)
	Save(ctx context.Context, snap journal.Snapshot) error
	Root() string
}

// Load creates a Persistence backed by diskv using the provided config,
// creating the journal directories if they are missing. A nil config is
// resolved with LoadConfig.
func Load(cfg Config) (Persistence, error) {
	if cfg == nil {
		var err error
		cfg, err = LoadConfig()
		if err != nil {
			return nil, err
		}
	}

	root := cfg.BasePath()
	if root == "" {
		return nil, ErrNoRoot
	}
	if err := EnsureRoot(root); err != nil {
		return nil, err
	}

	return &persistence{d: diskv.New(diskv.Options{
		BasePath:          filepath.Join(root, dailyDir),
		TempDir:           filepath.Join(root, tempDir),
		AdvancedTransform: keyToPathTransform,
		InverseTransform:  pathToKeyTransform,
		CacheSizeMax:      1024 * 1024, // 1MB
	}), root: root}, nil
}

// EnsureRoot creates the journal root and its log directories.
func EnsureRoot(root string) error {
	if root == "" {
		return ErrNoRoot
	}
	for _, dir := range layoutDirs {
		if err := os.MkdirAll(filepath.Join(root, dir), 0o755); err != nil {
			return fmt.Errorf("store: ensure root: %w", err)
		}
	}
	return nil
}

type persistence struct {
	d    *diskv.Diskv
	root string
}

func (p *persistence) Root() string {
	return p.root
}

// Load reads every stored day. Files that are not named for a day, or that sit
// outside their year/month directory, are skipped. An unreadable or corrupt
// day fails the whole load so callers never work from a partial journal.
func (p *persistence) Load(ctx context.Context) (journal.Snapshot, error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	snap := make(journal.Snapshot)
	for key := range p.d.Keys(ctx.Done()) {
		day, err := journal.ParseDay(key)
		if err != nil {
			log.Printf("store: skipping %q: not a day", key)
			continue
		}
		val, err := p.d.Read(key)
		if errors.Is(err, fs.ErrNotExist) {
			log.Printf("store: skipping %q: not in its month directory", key)
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("store: read %s: %w", key, err)
		}
		tasks := make([]task.Task, 0)
		if err := json.Unmarshal(val, &tasks); err != nil {
			return nil, fmt.Errorf("store: decode %s: %w", key, err)
		}
		if tasks == nil {
			tasks = make([]task.Task, 0)
		}
		snap[day] = tasks
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return snap, nil
}

// Save writes each day in snap. Days missing from snap are left on disk.
func (p *persistence) Save(ctx context.Context, snap journal.Snapshot) error {
	for day, tasks := range snap {
		if err := ctx.Err(); err != nil {
			return err
		}
		if tasks == nil {
			tasks = []task.Task{}
		}
		data, err := json.Marshal(tasks)
		if err != nil {
			return fmt.Errorf("store: encode %s: %w", day, err)
		}
		if err := p.d.WriteStream(day.String(), bytes.NewReader(data), true); err != nil {
			return fmt.Errorf("store: write %s: %w", day, err)
		}
	}
	return nil
}

// keyToPathTransform files "2024-05-01" under 2024/05/.
func keyToPathTransform(key string) *diskv.PathKey {
	if len(key) != len(journal.LayoutISO) {
		return &diskv.PathKey{Path: []string{}, FileName: key}
	}
	return &diskv.PathKey{
		Path:     []string{key[:4], key[5:7]},
		FileName: key,
	}
}

func pathToKeyTransform(pathKey *diskv.PathKey) string {
	return pathKey.FileName
}
