package cache

import (
	"context"
	"sync"

	"github.com/amirasaad/aliasregistry/pkg/domain/alias"
	"golang.org/x/sync/singleflight"
)

// Loader puts a RecordCache in front of a lookup and collapses concurrent
// misses on the same key into one load. A nil record (absent) is returned
// to every waiter but never cached.
//
// A load that overlaps an Invalidate of its key returns its result to the
// waiters but does not write it back to the cache.
type Loader struct {
	cache    RecordCache
	inflight singleflight.Group

	mu    sync.Mutex
	loads map[string]*loadState
}

// loadState tracks the loads running for one key. gen moves on every
// Invalidate of the key; the entry is removed once refs drops to zero.
type loadState struct {
	gen  uint64
	refs int
}

// NewLoader wraps c. A nil cache disables caching but keeps de-duplication.
func NewLoader(c RecordCache) *Loader {
	return &Loader{cache: c, loads: make(map[string]*loadState)}
}

// Get returns the cached record for key, or calls load and caches its result.
func (l *Loader) Get(
	ctx context.Context,
	key string,
	load func(ctx context.Context) (*alias.Record, error),
) (*alias.Record, error) {
	if l.cache != nil {
		if rec, ok := l.cache.Get(ctx, key); ok {
			return rec, nil
		}
	}
	v, err, _ := l.inflight.Do(key, func() (any, error) {
		state, gen := l.begin(key)
		rec, err := load(ctx)
		if err != nil || rec == nil {
			l.finish(key, state, gen, nil)
			return rec, err
		}
		l.finish(key, state, gen, func() {
			if l.cache != nil {
				_ = l.cache.Set(ctx, key, rec)
			}
		})
		return rec, nil
	})
	if err != nil {
		return nil, err
	}
	rec, _ := v.(*alias.Record)
	return rec, nil
}

func (l *Loader) begin(key string) (*loadState, uint64) {
	l.mu.Lock()
	defer l.mu.Unlock()
	state, ok := l.loads[key]
	if !ok {
		state = &loadState{}
		l.loads[key] = state
	}
	state.refs++
	return state, state.gen
}

// finish runs store only when no Invalidate of key happened since begin.
// store runs under the lock so an Invalidate either sees the stored entry
// and deletes it, or bumps gen first and the store is skipped.
func (l *Loader) finish(key string, state *loadState, gen uint64, store func()) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if store != nil && state.gen == gen {
		store()
	}
	state.refs--
	if state.refs == 0 {
		delete(l.loads, key)
	}
}

// Invalidate drops keys from the cache and forgets in-flight loads for them.
func (l *Loader) Invalidate(ctx context.Context, keys ...string) error {
	l.mu.Lock()
	for _, key := range keys {
		if state, ok := l.loads[key]; ok {
			state.gen++
		}
		l.inflight.Forget(key)
	}
	l.mu.Unlock()
	if l.cache == nil {
		return nil
	}
	return l.cache.Delete(ctx, keys...)
}
