package store

import (
	"context"
	"fmt"
)

const (
	BackendDisk  = "disk"
	BackendRedis = "redis"
)

// OpenSlots picks the session backend. The returned close func is never nil.
func OpenSlots(ctx context.Context, backend, redisURL string, disk *Disk) (Slots, func() error, error) {
	noop := func() error { return nil }
	switch backend {
	case "", BackendDisk:
		return disk, noop, nil
	case BackendRedis:
		r, err := DialRedis(ctx, redisURL)
		if err != nil {
			return nil, noop, err
		}
		return r, r.Close, nil
	default:
		return nil, noop, fmt.Errorf("store: unknown session backend %q", backend)
	}
}
