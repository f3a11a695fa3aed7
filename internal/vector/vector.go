// CineMatch - Preference Vector Movie Recommender
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package vector

import (
	"errors"
	"fmt"
	"math"
)

// ErrNonFinite is returned by Validate when a component is NaN or infinite.
var ErrNonFinite = errors.New("vector component is not a finite number")

// Vector3 is a point in preference space.
type Vector3 struct {
	// X is the tone axis (light to dark).
	X float64 `json:"tone" yaml:"tone"`

	// Y is the intensity axis (calm to intense).
	Y float64 `json:"intensity" yaml:"intensity"`

	// Z is the complexity axis (simple to complex).
	Z float64 `json:"complexity" yaml:"complexity"`
}

// New returns the vector (tone, intensity, complexity).
func New(tone, intensity, complexity float64) Vector3 {
	return Vector3{X: tone, Y: intensity, Z: complexity}
}

// Zero is the vector with all components equal to 0.
var Zero = Vector3{}

// String formats the vector as "(x, y, z)".
func (v Vector3) String() string {
	return fmt.Sprintf("(%g, %g, %g)", v.X, v.Y, v.Z)
}

// IsZero reports whether every component equals 0.
func (v Vector3) IsZero() bool {
	return v.X == 0 && v.Y == 0 && v.Z == 0
}

// IsFinite reports whether no component is NaN or infinite.
func (v Vector3) IsFinite() bool {
	return isFinite(v.X) && isFinite(v.Y) && isFinite(v.Z)
}

// Validate returns an error wrapping ErrNonFinite naming the first
// non-finite component, or nil.
func (v Vector3) Validate() error {
	switch {
	case !isFinite(v.X):
		return fmt.Errorf("tone %v: %w", v.X, ErrNonFinite)
	case !isFinite(v.Y):
		return fmt.Errorf("intensity %v: %w", v.Y, ErrNonFinite)
	case !isFinite(v.Z):
		return fmt.Errorf("complexity %v: %w", v.Z, ErrNonFinite)
	}
	return nil
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

// maxAbs returns the largest absolute component of v.
func (v Vector3) maxAbs() float64 {
	return math.Max(math.Abs(v.X), math.Max(math.Abs(v.Y), math.Abs(v.Z)))
}

// divide returns v with every component divided by d.
func (v Vector3) divide(d float64) Vector3 {
	return Vector3{X: v.X / d, Y: v.Y / d, Z: v.Z / d}
}

// Dot returns the inner product of a and b.
func Dot(a, b Vector3) float64 {
	return a.X*b.X + a.Y*b.Y + a.Z*b.Z
}

// Magnitude returns the Euclidean length of v. It is 0 only for the zero vector.
func Magnitude(v Vector3) float64 {
	m := v.maxAbs()
	if m == 0 || math.IsInf(m, 0) || math.IsNaN(m) {
		return m
	}
	u := v.divide(m)
	return m * math.Sqrt(Dot(u, u))
}

// CosineSimilarity returns dot(a, b) / (|a| * |b|), or exactly 0 when either
// vector is the zero vector.
func CosineSimilarity(a, b Vector3) float64 {
	if a.IsZero() || b.IsZero() {
		return 0
	}

	// Dividing by the largest component keeps every square in [0, 1].
	ua := a.divide(a.maxAbs())
	ub := b.divide(b.maxAbs())

	return Dot(ua, ub) / math.Sqrt(Dot(ua, ua)*Dot(ub, ub))
}

// Scale returns v with every component multiplied by s.
func Scale(v Vector3, s float64) Vector3 {
	return Vector3{X: v.X * s, Y: v.Y * s, Z: v.Z * s}
}

// Normalize returns v unchanged.
//
// Ranking works on raw preference values; cosine similarity is already
// independent of length, so no rescaling is applied here.
func Normalize(v Vector3) Vector3 {
	return v
}
