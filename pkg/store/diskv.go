// Package store persists the planner's values as JSON blobs in a key/value
// directory.
package store

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"sort"

	"github.com/peterbourgon/diskv/v3"
	"pkt.systems/pslog"
)

// Keys of the four persisted values.
const (
	KeySubjects = "sp_subjects"
	KeyTasks    = "sp_tasks"
	KeySessions = "sp_sessions"
	KeySettings = "sp_settings"
)

// Persistence is a flat key/value store of serialized values.
type Persistence interface {
	Read(key string) ([]byte, error)
	Write(key string, data []byte) error
	Erase(key string) error
	Keys(ctx context.Context) []string
	BasePath() string
	Watch(ctx context.Context) (<-chan Event, error)
}

// Open creates a Persistence backed by diskv using the provided config.
func Open(cfg Config) (Persistence, error) {
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
	return &persistence{d: diskv.New(diskv.Options{
		BasePath:  basePath,
		Transform: flatTransform,
		// Other planner processes write the same directory, so every read
		// goes to disk.
		CacheSizeMax: 0,
	}), basePath: basePath}, nil
}

type persistence struct {
	d        *diskv.Diskv
	basePath string
}

func (p *persistence) Read(key string) ([]byte, error) {
	return p.d.Read(key)
}

func (p *persistence) Write(key string, data []byte) error {
	return p.d.Write(key, data)
}

func (p *persistence) Erase(key string) error {
	err := p.d.Erase(key)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return err
}

func (p *persistence) Keys(ctx context.Context) []string {
	keys := make([]string, 0, 4)
	for key := range p.d.Keys(ctx.Done()) {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

func (p *persistence) BasePath() string {
	return p.basePath
}

// Load decodes the value stored under key. A missing key, unreadable file,
// malformed JSON or a stored null all yield fallback.
func Load[T any](ctx context.Context, p Persistence, key string, fallback T) T {
	log := pslog.Ctx(ctx)
	raw, err := p.Read(key)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			log.Debug("store read failed, using default", "key", key, "err", err)
		}
		return fallback
	}
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return fallback
	}
	var v T
	if err := json.Unmarshal(raw, &v); err != nil {
		log.Debug("store decode failed, using default", "key", key, "err", err)
		return fallback
	}
	return v
}

// Save encodes v as JSON and writes it under key.
func Save(p Persistence, key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("store: encode %s: %w", key, err)
	}
	if err := p.Write(key, data); err != nil {
		return fmt.Errorf("store: write %s: %w", key, err)
	}
	return nil
}

// flatTransform keeps every key as a file directly under the base path.
func flatTransform(string) []string {
	return []string{}
}
