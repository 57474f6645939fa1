package store

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/peterbourgon/diskv/v3"
)

// Slots is the durable key/value boundary holding session data.
// A missing key is reported through the bool result, never as an error.
type Slots interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Put(ctx context.Context, key, value string) error
	Erase(ctx context.Context, key string) error
}

// BatchSlots is implemented by backends that can write several slots in one
// atomic step.
type BatchSlots interface {
	Slots
	PutAll(ctx context.Context, values map[string]string) error
}

const (
	sessionBucket  = "session"
	snapshotBucket = "snapshot"
	stagingDir     = ".staging"
)

// Disk stores session slots and resource snapshots with diskv.
type Disk struct {
	d        *diskv.Diskv
	basePath string
}

var _ Slots = (*Disk)(nil)

// Load creates a Disk store rooted at the configured base path.
func Load(cfg Config) (*Disk, error) {
	if cfg == nil {
		var err error
		cfg, err = LoadConfig()
		if err != nil {
			return nil, err
		}
	}

	basePath := cfg.BasePath()
	if basePath == "" {
		return nil, errors.New("store: base path required")
	}
	if err := os.MkdirAll(basePath, 0o700); err != nil {
		return nil, fmt.Errorf("store: ensure base path: %w", err)
	}
	return &Disk{d: diskv.New(diskv.Options{
		BasePath:          basePath,
		TempDir:           filepath.Join(basePath, stagingDir),
		AdvancedTransform: keyToPathTransform,
		InverseTransform:  pathToKeyTransform,
		CacheSizeMax:      0, // other processes write the same files
		FilePerm:          0o600,
		PathPerm:          0o700,
	}), basePath: basePath}, nil
}

// BasePath returns the directory backing the store.
func (p *Disk) BasePath() string {
	return p.basePath
}

func (p *Disk) Get(_ context.Context, key string) (string, bool, error) {
	k, err := slotKey(key)
	if err != nil {
		return "", false, err
	}
	val, err := p.d.Read(k)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("store: read %s: %w", key, err)
	}
	return string(val), true, nil
}

func (p *Disk) Put(_ context.Context, key, value string) error {
	k, err := slotKey(key)
	if err != nil {
		return err
	}
	if err := p.d.Write(k, []byte(value)); err != nil {
		return fmt.Errorf("store: write %s: %w", key, err)
	}
	return nil
}

func (p *Disk) Erase(_ context.Context, key string) error {
	k, err := slotKey(key)
	if err != nil {
		return err
	}
	if err := p.d.Erase(k); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("store: erase %s: %w", key, err)
	}
	return nil
}

func slotKey(name string) (string, error) {
	return bucketKey(sessionBucket, name)
}

// bucketKey makes `bucket-name`.
func bucketKey(bucket, name string) (string, error) {
	if name == "" || strings.ContainsAny(name, "-/\\.") {
		return "", fmt.Errorf("store: invalid key %q", name)
	}
	return fmt.Sprintf("%s-%s", bucket, name), nil
}

func keyToPathTransform(s string) *diskv.PathKey {
	parts := strings.Split(s, "-")
	return &diskv.PathKey{
		Path:     parts[:len(parts)-1],
		FileName: parts[len(parts)-1],
	}
}

func pathToKeyTransform(pathKey *diskv.PathKey) string {
	return fmt.Sprintf("%s-%s", strings.Join(pathKey.Path, "-"), pathKey.FileName)
}
