package booking

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
)

// DayLocker serializes booking creation per (cleaner, calendar day). The
// availability check and the insert run under the lock, which closes the
// check-then-act race between concurrent creation requests.
type DayLocker interface {
	// Acquire blocks until the lock for the key is held or ctx is done.
	// The returned function releases the lock.
	Acquire(ctx context.Context, cleanerID, day string) (func(), error)
}

// MemoryDayLocker is an in-process DayLocker for single-node deployments
// and tests.
type MemoryDayLocker struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func NewMemoryDayLocker() *MemoryDayLocker {
	return &MemoryDayLocker{locks: make(map[string]*sync.Mutex)}
}

func (l *MemoryDayLocker) Acquire(_ context.Context, cleanerID, day string) (func(), error) {
	key := cleanerID + "|" + day
	l.mu.Lock()
	m, ok := l.locks[key]
	if !ok {
		m = &sync.Mutex{}
		l.locks[key] = m
	}
	l.mu.Unlock()

	m.Lock()
	return m.Unlock, nil
}

// releaseScript deletes the lock key only if this process still owns it,
// so an expired lock reclaimed by another request is never released here.
const releaseScript = `if redis.call("get", KEYS[1]) == ARGV[1] then return redis.call("del", KEYS[1]) else return 0 end`

// RedisDayLocker is a DayLocker backed by redis SETNX with a TTL, for
// deployments running more than one instance against the same store.
type RedisDayLocker struct {
	Client *redis.Client
	// TTL bounds how long a crashed holder can block a (cleaner, day) key.
	TTL time.Duration
	// RetryInterval is the polling interval while the lock is contended.
	RetryInterval time.Duration
}

func (l *RedisDayLocker) Acquire(ctx context.Context, cleanerID, day string) (func(), error) {
	key := "booking:daylock:" + cleanerID + ":" + day
	token := uuid.New().String()

	ttl := l.TTL
	if ttl == 0 {
		ttl = 10 * time.Second
	}
	retry := l.RetryInterval
	if retry == 0 {
		retry = 50 * time.Millisecond
	}

	for {
		ok, err := l.Client.SetNX(ctx, key, token, ttl).Result()
		if err != nil {
			return nil, fmt.Errorf("failed to acquire day lock %s: %w", key, err)
		}
		if ok {
			break
		}
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(retry):
		}
	}

	release := func() {
		releaseCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		l.Client.Eval(releaseCtx, releaseScript, []string{key}, token)
	}
	return release, nil
}
