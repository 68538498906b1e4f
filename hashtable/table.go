// This is free and unencumbered software released into the public domain.
//
// Anyone is free to copy, modify, publish, use, compile, sell, or
// distribute this software, either in source code form or as a compiled
// binary, for any purpose, commercial or non-commercial, and by any
// means.
//
// In jurisdictions that recognize copyright laws, the author or authors
// of this software dedicate any and all copyright interest in the
// software to the public domain. We make this dedication for the benefit
// of the public at large and to the detriment of our heirs and
// successors. We intend this dedication to be an overt act of
// relinquishment in perpetuity of all present and future rights to this
// software under copyright law.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND,
// EXPRESS OR IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF
// MERCHANTABILITY, FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT.
// IN NO EVENT SHALL THE AUTHORS BE LIABLE FOR ANY CLAIM, DAMAGES OR
// OTHER LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE,
// ARISING FROM, OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR
// OTHER DEALINGS IN THE SOFTWARE.
//
// For more information, please refer to <https://unlicense.org>

// Package hashtable implements a chained hash table specialized for
// deduplicating immutable value records by structural key. Unlike a plain
// Go map, Insert returns a stable pointer into the table that remains
// valid across further non-removing operations, so callers can form
// references to a value before any of its own referrers are inserted.
package hashtable

import "hash/maphash"

// A Hasher defines a hash function and an equivalence relation over
// values of type T. Hash and Equal must be consistent: if Equal(x, y) is
// true, Hash must write the same bytes for x and y.
type Hasher[T any] interface {
	Hash(h *maphash.Hash, v T)
	Equal(a, b T) bool
}

type entry[T any] struct {
	value T
	next  *entry[T]
}

const (
	initialBuckets    = 1024
	defaultLoadFactor = 1.0
)

// Table is a chained hash table over values of type T, deduplicated
// according to the Hasher H.
type Table[T any, H Hasher[T]] struct {
	hasher     H
	seed       maphash.Seed
	buckets    []*entry[T]
	size       int
	loadFactor float64
}

// New returns an empty Table using hasher for hashing and equality.
func New[T any, H Hasher[T]](hasher H) *Table[T, H] {
	return &Table[T, H]{
		hasher:     hasher,
		seed:       maphash.MakeSeed(),
		buckets:    make([]*entry[T], initialBuckets),
		loadFactor: defaultLoadFactor,
	}
}

// Len reports the number of values currently stored.
func (t *Table[T, H]) Len() int {
	return t.size
}

func (t *Table[T, H]) hashOf(v T) uint64 {
	var h maphash.Hash
	h.SetSeed(t.seed)
	t.hasher.Hash(&h, v)
	return h.Sum64()
}

func (t *Table[T, H]) bucketIndex(hash uint64) int {
	return int(hash & uint64(len(t.buckets)-1))
}

func (t *Table[T, H]) findNode(v T, index int) *entry[T] {
	for e := t.buckets[index]; e != nil; e = e.next {
		if t.hasher.Equal(e.value, v) {
			return e
		}
	}
	return nil
}

// Insert finds an existing value structurally equal to v, or inserts v as
// a new entry. It returns whether the value was newly created and a
// pointer to the canonical stored value, stable until the next growing
// insert, Replace, Retain, Clear, or Drain.
func (t *Table[T, H]) Insert(v T) (isNew bool, ref *T) {
	hash := t.hashOf(v)
	index := t.bucketIndex(hash)
	if e := t.findNode(v, index); e != nil {
		return false, &e.value
	}
	e := &entry[T]{value: v, next: t.buckets[index]}
	t.buckets[index] = e
	t.size++
	t.growIfNeeded()
	return true, &e.value
}

// Get returns the canonical stored value structurally equal to v, if any.
func (t *Table[T, H]) Get(v T) (ref *T, ok bool) {
	index := t.bucketIndex(t.hashOf(v))
	if e := t.findNode(v, index); e != nil {
		return &e.value, true
	}
	return nil, false
}

// GetMut is an alias of Get that documents the caller's intent to mutate
// the returned value in place.
func (t *Table[T, H]) GetMut(v T) (ref *T, ok bool) {
	return t.Get(v)
}

// Replace inserts value, replacing any existing structurally-equal entry
// in place, and returns the previous value, if any.
func (t *Table[T, H]) Replace(v T) (previous T, hadPrevious bool) {
	index := t.bucketIndex(t.hashOf(v))
	if e := t.findNode(v, index); e != nil {
		previous = e.value
		e.value = v
		return previous, true
	}
	e := &entry[T]{value: v, next: t.buckets[index]}
	t.buckets[index] = e
	t.size++
	t.growIfNeeded()
	var zero T
	return zero, false
}

func (t *Table[T, H]) growIfNeeded() {
	if float64(t.size) <= t.loadFactor*float64(len(t.buckets)) {
		return
	}
	t.rehash(len(t.buckets) * 2)
}

func (t *Table[T, H]) rehash(newBucketCount int) {
	oldBuckets := t.buckets
	t.buckets = make([]*entry[T], newBucketCount)
	for _, head := range oldBuckets {
		for e := head; e != nil; {
			next := e.next
			index := t.bucketIndex(t.hashOf(e.value))
			e.next = t.buckets[index]
			t.buckets[index] = e
			e = next
		}
	}
}

// Iter calls yield for every value currently stored, in unspecified but
// stable order between structural mutations. It stops early if yield
// returns false.
func (t *Table[T, H]) Iter(yield func(T) bool) {
	for _, head := range t.buckets {
		for e := head; e != nil; e = e.next {
			if !yield(e.value) {
				return
			}
		}
	}
}

// Retain removes every entry for which keep returns false.
func (t *Table[T, H]) Retain(keep func(T) bool) {
	for i, head := range t.buckets {
		var newHead *entry[T]
		var tail *entry[T]
		for e := head; e != nil; {
			next := e.next
			if keep(e.value) {
				e.next = nil
				if tail == nil {
					newHead = e
				} else {
					tail.next = e
				}
				tail = e
			} else {
				t.size--
			}
			e = next
		}
		t.buckets[i] = newHead
	}
}

// Clear removes every entry.
func (t *Table[T, H]) Clear() {
	for i := range t.buckets {
		t.buckets[i] = nil
	}
	t.size = 0
}

// Drain removes every entry, calling yield with each removed value.
func (t *Table[T, H]) Drain(yield func(T) bool) {
	buckets := t.buckets
	t.buckets = make([]*entry[T], len(buckets))
	t.size = 0
	for _, head := range buckets {
		for e := head; e != nil; e = e.next {
			if !yield(e.value) {
				return
			}
		}
	}
}
