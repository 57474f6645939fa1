package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"time"

	"tableflip.dev/advcontrol/pkg/resource"
)

type snapshotEnvelope struct {
	FetchedAt time.Time       `json:"fetched_at"`
	Data      json.RawMessage `json:"data"`
}

// PutSnapshot records the last successfully fetched collection for kind.
func (p *Disk) PutSnapshot(kind resource.Kind, v any) error {
	key, err := bucketKey(snapshotBucket, string(kind))
	if err != nil {
		return err
	}
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("store: encode %s snapshot: %w", kind, err)
	}
	env, err := json.Marshal(snapshotEnvelope{FetchedAt: time.Now().UTC(), Data: data})
	if err != nil {
		return err
	}
	if err := p.d.Write(key, env); err != nil {
		return fmt.Errorf("store: write %s snapshot: %w", kind, err)
	}
	return nil
}

// LoadSnapshot decodes the cached collection for kind into v. The bool is false
// when nothing has been cached yet.
func (p *Disk) LoadSnapshot(kind resource.Kind, v any) (time.Time, bool, error) {
	key, err := bucketKey(snapshotBucket, string(kind))
	if err != nil {
		return time.Time{}, false, err
	}
	raw, err := p.d.Read(key)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return time.Time{}, false, nil
		}
		return time.Time{}, false, fmt.Errorf("store: read %s snapshot: %w", kind, err)
	}
	var env snapshotEnvelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return time.Time{}, false, fmt.Errorf("store: decode %s snapshot: %w", kind, err)
	}
	if err := json.Unmarshal(env.Data, v); err != nil {
		return time.Time{}, false, fmt.Errorf("store: decode %s snapshot: %w", kind, err)
	}
	return env.FetchedAt, true, nil
}

// SnapshotTime reports when kind was last cached without decoding its data.
func (p *Disk) SnapshotTime(kind resource.Kind) (time.Time, bool) {
	var discard json.RawMessage
	at, ok, err := p.LoadSnapshot(kind, &discard)
	if err != nil {
		return time.Time{}, false
	}
	return at, ok
}

// DropSnapshots removes every cached collection. Used on sign-out.
func (p *Disk) DropSnapshots() error {
	for _, kind := range resource.AllKinds() {
		key, err := bucketKey(snapshotBucket, string(kind))
		if err != nil {
			return err
		}
		if err := p.d.Erase(key); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("store: erase %s snapshot: %w", kind, err)
		}
	}
	return nil
}
