package memo

import (
	"sync"
	"sync/atomic"

	"github.com/on-the-ground/functional_ive_go/shared/helper"
)

// Key is one level of an argument tuple key, as produced by tableKey.
type Key = any

// Trie maps fixed-length key paths to values. Level i of the path is the i-th
// argument of a call, so a three-argument callable uses a three-level trie of
// sync.Maps. Every path stored in one Trie must have the same length.
//
// Trie never evicts. It is safe for concurrent use.
type Trie[O any] struct {
	root *sync.Map
	size atomic.Int64
}

func NewTrie[O any]() *Trie[O] {
	return &Trie[O]{root: &sync.Map{}}
}

// Load returns the value stored under keys without creating any interior node.
func (t *Trie[O]) Load(keys []Key) (O, bool) {
	m, k, ok := t.lookup(keys)
	if !ok {
		var zero O
		return zero, false
	}
	return helper.GetTypedValueOf2[O](func() (any, bool) { return m.Load(k) })
}

// LoadOrStore returns the existing value for keys if present. Otherwise it
// stores value and returns it with loaded == false. The check and the insert
// are a single atomic step on the leaf map.
func (t *Trie[O]) LoadOrStore(keys []Key, value O) (actual O, loaded bool) {
	m, k := t.traverse(keys)
	raw, loaded := m.LoadOrStore(k, value)
	if !loaded {
		t.size.Add(1)
	}
	return raw.(O), loaded
}

// CompareAndDelete deletes the entry for keys if its value equals old.
// The stored values must be comparable.
func (t *Trie[O]) CompareAndDelete(keys []Key, old O) (deleted bool) {
	m, k, ok := t.lookup(keys)
	if !ok {
		return false
	}
	if deleted = m.CompareAndDelete(k, old); deleted {
		t.size.Add(-1)
	}
	return deleted
}

// Len reports the number of stored leaves.
func (t *Trie[O]) Len() int {
	return int(t.size.Load())
}

// traverse walks to the leaf map for keys, creating interior maps as needed.
// Interior maps are inserted with LoadOrStore so that two callers racing on a
// new prefix agree on a single child.
func (t *Trie[O]) traverse(keys []Key) (*sync.Map, Key) {
	length := len(keys)
	if length == 0 {
		panic("traverse: empty keys")
	}

	targetMap := t.root
	for _, k := range keys[:length-1] {
		v, ok := targetMap.Load(k)
		if !ok {
			v, _ = targetMap.LoadOrStore(k, &sync.Map{})
		}
		targetMap = v.(*sync.Map)
	}
	return targetMap, keys[length-1]
}

func (t *Trie[O]) lookup(keys []Key) (*sync.Map, Key, bool) {
	length := len(keys)
	if length == 0 {
		panic("lookup: empty keys")
	}

	targetMap := t.root
	for _, k := range keys[:length-1] {
		next, ok := helper.GetTypedValueOf2[*sync.Map](func() (any, bool) { return targetMap.Load(k) })
		if !ok {
			return nil, nil, false
		}
		targetMap = next
	}
	return targetMap, keys[length-1], true
}
