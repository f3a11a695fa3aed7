// CineMatch - Preference Vector Movie Recommender
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package cache

import "sync"

// DefaultCapacity is used when NewLRU is given a non-positive capacity.
const DefaultCapacity = 1024

// lruEntry is a node in the recency list.
type lruEntry[K comparable, V any] struct {
	key   K
	value V
	prev  *lruEntry[K, V]
	next  *lruEntry[K, V]
}

// Stats is a snapshot of cache counters.
type Stats struct {
	Hits      int64 `json:"hits"`
	Misses    int64 `json:"misses"`
	Evictions int64 `json:"evictions"`
	Size      int   `json:"size"`
	Capacity  int   `json:"capacity"`
}

// HitRate returns hits as a percentage of lookups.
func (s Stats) HitRate() float64 {
	total := s.Hits + s.Misses
	if total == 0 {
		return 0
	}
	return float64(s.Hits) / float64(total) * 100
}

// LRU is a fixed-capacity least-recently-used cache.
type LRU[K comparable, V any] struct {
	mu sync.Mutex

	capacity int
	items    map[K]*lruEntry[K, V]

	// head.next is the most recently used, tail.prev the least.
	head *lruEntry[K, V]
	tail *lruEntry[K, V]

	hits      int64
	misses    int64
	evictions int64
}

// NewLRU creates a cache holding at most capacity entries.
func NewLRU[K comparable, V any](capacity int) *LRU[K, V] {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}

	c := &LRU[K, V]{
		capacity: capacity,
		items:    make(map[K]*lruEntry[K, V], capacity),
		head:     &lruEntry[K, V]{},
		tail:     &lruEntry[K, V]{},
	}
	c.head.next = c.tail
	c.tail.prev = c.head
	return c
}

// Get returns the value for key and marks it most recently used.
func (c *LRU[K, V]) Get(key K) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	entry, ok := c.items[key]
	if !ok {
		c.misses++
		var zero V
		return zero, false
	}

	c.moveToFront(entry)
	c.hits++
	return entry.value, true
}

// Add stores value under key, evicting the least recently used entry when
// the cache is full.
func (c *LRU[K, V]) Add(key K, value V) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if entry, ok := c.items[key]; ok {
		entry.value = value
		c.moveToFront(entry)
		return
	}

	entry := &lruEntry[K, V]{key: key, value: value}
	c.addToFront(entry)
	c.items[key] = entry

	for len(c.items) > c.capacity {
		c.evictOldest()
	}
}

// Len returns the number of stored entries.
func (c *LRU[K, V]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.items)
}

// Stats returns a snapshot of the cache counters.
func (c *LRU[K, V]) Stats() Stats {
	c.mu.Lock()
	defer c.mu.Unlock()
	return Stats{
		Hits:      c.hits,
		Misses:    c.misses,
		Evictions: c.evictions,
		Size:      len(c.items),
		Capacity:  c.capacity,
	}
}

// The helpers below must be called with mu held.

func (c *LRU[K, V]) addToFront(entry *lruEntry[K, V]) {
	entry.prev = c.head
	entry.next = c.head.next
	c.head.next.prev = entry
	c.head.next = entry
}

func (c *LRU[K, V]) moveToFront(entry *lruEntry[K, V]) {
	entry.prev.next = entry.next
	entry.next.prev = entry.prev
	c.addToFront(entry)
}

func (c *LRU[K, V]) evictOldest() {
	oldest := c.tail.prev
	if oldest == c.head {
		return
	}
	oldest.prev.next = oldest.next
	oldest.next.prev = oldest.prev
	delete(c.items, oldest.key)
	c.evictions++
}
