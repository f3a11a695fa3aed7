// CineMatch - Preference Vector Movie Recommender
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

// Package vector implements the three-dimensional preference space used for
// movie matching.
//
// A Vector3 holds the tone, intensity and complexity coordinates of either a
// user's preference or a catalog item. The package is a leaf: it has no
// dependencies on other cinematch packages and every function is pure.
//
// # Similarity
//
// CosineSimilarity measures the angle between two vectors and ignores their
// length. The zero vector has no direction, so any comparison involving it
// yields exactly 0:
//
//	a := vector.New(1, 10, 1)
//	b := vector.New(10, 1, 10)
//	score := vector.CosineSimilarity(a, b) // ~0.2091
//
// Results are not clamped to [-1, 1]; rounding may leave a value a few ulps
// outside that interval.
//
// # Magnitudes
//
// Magnitude and CosineSimilarity scale each vector by its largest absolute
// component before squaring, so very large or very small coordinates neither
// overflow to +Inf nor underflow to 0.
package vector
