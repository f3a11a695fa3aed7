// CineMatch - Preference Vector Movie Recommender
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

// Package recommend ranks a fixed movie catalog against a preference vector.
//
// # Ranking
//
// Every catalog item is scored by the cosine similarity between the user's
// preference vector and the item's vector. Items are then ordered by
// descending score with a stable sort, so items with equal scores keep their
// catalog order. The top K entries of that ordering are the recommendations.
//
// The ranking functions are pure:
//
//	ranked := recommend.Rank(pref, catalog.Items())
//	top := ranked.Top(5)
//
// The pure functions cache nothing. Every call rescores the whole catalog,
// which is cheap for catalogs of a few hundred items.
//
// # Engine
//
// Engine wraps the pure functions for hosts such as the HTTP API, WebSocket
// sessions and the CLI. It owns the injected catalog, applies the default
// and maximum K, assigns request IDs and keeps request counters. With
// Config.CacheSize set, it also keeps an LRU of full ranked catalogs keyed by
// target vector, so slider positions that repeat are served without a
// rescore:
//
//	engine, err := recommend.NewEngine(recommend.DefaultConfig(), cat, logger)
//	resp, err := engine.Recommend(recommend.Request{
//	    Preference: vector.New(7, 3, 8),
//	    K:          5,
//	})
//
// Two modes are supported. ModePreference ranks against the request's
// preference vector. ModeSimilar ranks against the vector of an existing
// catalog item and leaves that item out of the result.
//
// # Malformed Input
//
// Preference vectors containing NaN or infinite components are rejected with
// ErrInvalidPreference. The pure functions do not check their input; a NaN
// score has no defined position in the ordering.
//
// # Thread Safety
//
// The catalog is read-only after construction and the engine keeps no state
// besides atomic counters, so any number of goroutines may rank concurrently.
package recommend
