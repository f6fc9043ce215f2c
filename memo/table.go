package memo

import (
	"errors"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var errAbandoned = errors.New("memoized computation panicked")

// entry is the table value for one argument tuple. done is closed once val
// and err are final; readers must wait on it first.
type entry[R any] struct {
	done chan struct{}
	val  R
	err  error
}

// fill runs compute for a freshly inserted entry. On failure or panic the
// entry is discarded before waiters are released, so a waiter that retries
// never finds the failed entry again.
func (e *entry[R]) fill(discard func(), compute func() (R, error)) (R, error) {
	completed := false
	defer func() {
		if !completed {
			e.err = errAbandoned
			discard()
		}
		close(e.done)
	}()

	e.val, e.err = compute()
	completed = true
	if e.err != nil {
		discard()
	}
	return e.val, e.err
}

// table is the cache shared by every arity. It is owned by exactly one
// memoized callable and never exposed.
type table[R any] struct {
	id       string
	shards   []*Trie[*entry[R]]
	logger   *zap.Logger
	observer func(Event)

	hits     atomic.Uint64
	misses   atomic.Uint64
	failures atomic.Uint64
}

func newTable[R any](opts []Option) *table[R] {
	o := newOptions(opts)
	shards := make([]*Trie[*entry[R]], o.numShards)
	for i := range shards {
		shards[i] = NewTrie[*entry[R]]()
	}
	t := &table[R]{
		id:       uuid.New().String(),
		shards:   shards,
		logger:   o.logger,
		observer: o.observer,
	}
	t.logger.Debug("created memo table", zap.String("memoId", t.id), zap.Int("shards", o.numShards))
	return t
}

// ID identifies the memoized callable in logs and events.
func (t *table[R]) ID() string {
	return t.id
}

// Len reports the number of cached argument tuples, including computations
// still in flight.
func (t *table[R]) Len() int {
	n := 0
	for _, shard := range t.shards {
		n += shard.Len()
	}
	return n
}

func (t *table[R]) Stats() Stats {
	return Stats{
		Hits:     t.hits.Load(),
		Misses:   t.misses.Load(),
		Failures: t.failures.Load(),
	}
}

// getOrCompute returns the stored result for keys, or runs compute exactly
// once for it. A caller that finds a pending entry blocks until the
// computing caller is done; if that computation failed, the caller retries
// and may become the next computing caller.
func (t *table[R]) getOrCompute(keys []Key, compute func() (R, error)) (R, error) {
	var start time.Time
	if t.observer != nil {
		start = time.Now()
	}

	trie := t.shards[shardIndex(keys[0], len(t.shards))]
	for {
		pending := &entry[R]{done: make(chan struct{})}
		actual, loaded := trie.LoadOrStore(keys, pending)
		if !loaded {
			res, err := pending.fill(
				func() { trie.CompareAndDelete(keys, pending) },
				compute,
			)
			if err != nil {
				t.failures.Add(1)
				t.record(keys, Failure, start, err)
				return res, err
			}
			t.misses.Add(1)
			t.record(keys, Miss, start, nil)
			return res, nil
		}

		<-actual.done
		if actual.err == nil {
			t.hits.Add(1)
			t.record(keys, Hit, start, nil)
			return actual.val, nil
		}
	}
}

// peek returns the finished result for keys without computing or waiting.
// It reports false for a missing key and for a computation still in flight.
func (t *table[R]) peek(keys []Key) (R, bool) {
	var zero R
	e, ok := t.shards[shardIndex(keys[0], len(t.shards))].Load(keys)
	if !ok {
		return zero, false
	}
	select {
	case <-e.done:
		if e.err == nil {
			return e.val, true
		}
	default:
	}
	return zero, false
}

func (t *table[R]) record(keys []Key, outcome Outcome, start time.Time, err error) {
	if ce := t.logger.Check(zap.DebugLevel, "memo "+outcome.String()); ce != nil {
		ce.Write(
			zap.String("memoId", t.id),
			zap.Any("keys", keys),
			zap.Error(err),
		)
	}
	if t.observer != nil {
		t.observer(newEvent(t.id, outcome, start, err))
	}
}
