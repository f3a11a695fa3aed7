// CineMatch - Preference Vector Movie Recommender
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

/*
Package cache provides a thread-safe, bounded LRU cache.

The ranking engine uses it to memoize full ranked catalogs per target vector.
The catalog is immutable for the life of the process, so entries never go
stale and leave only when evicted for space.

# Usage

	c := cache.NewLRU[string, int](1024)
	c.Add("a", 1)
	if v, ok := c.Get("a"); ok {
	    // use v
	}

# Eviction

Entries are kept in a doubly-linked list ordered by recency. Adding past
capacity evicts the least recently used entry.

# Thread Safety

All methods are safe for concurrent use. Get takes the lock exclusively
because a hit reorders the recency list.
*/
package cache
