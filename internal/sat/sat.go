// Package sat has small helpers for unsigned counters that must not wrap and for timestamps that do.
package sat

import (
	"golang.org/x/exp/constraints"
)

// Inc returns v+1, or v if v is already the maximum value of T.
func Inc[T constraints.Unsigned](v T) T {
	if v == ^T(0) {
		return v
	}
	return v + 1
}

// Add returns v+d, clamped to the maximum value of T.
func Add[T constraints.Unsigned](v, d T) T {
	if s := v + d; s >= v {
		return s
	}
	return ^T(0)
}

// Sub returns v-d, clamped to lo.
func Sub[T constraints.Integer](v, d, lo T) T {
	if v < lo+d {
		return lo
	}
	return v - d
}

// Since returns the time elapsed between then and now on a free-running counter that wraps silently.
func Since[T constraints.Unsigned](now, then T) T {
	return now - then
}
