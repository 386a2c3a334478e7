// Package store is the local persisted store: the logged-in session,
// signed-up accounts, reading progress, quiz results and uploaded notes.
package store

import (
	"context"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/peterbourgon/diskv/v3"
)

// ErrNotFound is returned when a record does not exist.
var ErrNotFound = errors.New("store: not found")

// Persistence is every record kind StudyEd stores locally.
type Persistence interface {
	Sessions
	Progress
	QuizResults
	Uploads
	BasePath() string
}

// Load creates a Persistence backed by diskv using the provided config.
func Load(cfg Config) (Persistence, error) {
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
		BasePath:          basePath,
		AdvancedTransform: keyToPathTransform,
		InverseTransform:  pathToKeyTransform,
		CacheSizeMax:      1024 * 1024, // 1MB
	}), basePath: basePath}, nil
}

type persistence struct {
	d        *diskv.Diskv
	basePath string
}

func (p *persistence) BasePath() string { return p.basePath }

func (p *persistence) get(key string, v any) error {
	if !p.d.Has(key) {
		return ErrNotFound
	}
	data, err := p.d.Read(key)
	if err != nil {
		return fmt.Errorf("store: read %s: %w", key, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("store: decode %s: %w", key, err)
	}
	return nil
}

func (p *persistence) put(key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("store: encode %s: %w", key, err)
	}
	if err := p.d.Write(key, data); err != nil {
		return fmt.Errorf("store: write %s: %w", key, err)
	}
	return nil
}

func (p *persistence) erase(key string) error {
	if !p.d.Has(key) {
		return ErrNotFound
	}
	return p.d.Erase(key)
}

// each decodes every record in bucket, skipping records that fail to decode.
func each[T any](ctx context.Context, p *persistence, bucket string, fn func(T)) error {
	var firstErr error
	for key := range p.d.KeysPrefix(bucket+keySep, ctx.Done()) {
		var rec T
		if err := p.get(key, &rec); err != nil {
			if firstErr == nil {
				firstErr = err
			}
			continue
		}
		fn(rec)
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	return firstErr
}

const keySep = "-"

// key builds `bucket-encodedname`, one directory per bucket.
func key(bucket, name string) string {
	return bucket + keySep + encode(name)
}

func keyToPathTransform(s string) *diskv.PathKey {
	parts := strings.Split(s, keySep)
	return &diskv.PathKey{
		Path:     parts[:len(parts)-1],
		FileName: parts[len(parts)-1],
	}
}

func pathToKeyTransform(pathKey *diskv.PathKey) string {
	return fmt.Sprintf("%s%s%s", strings.Join(pathKey.Path, keySep), keySep, pathKey.FileName)
}

// encode keeps arbitrary names safe as a single path element that never
// contains keySep.
func encode(s string) string {
	return hex.EncodeToString([]byte(s))
}
