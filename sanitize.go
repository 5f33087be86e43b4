// SPDX-License-Identifier: MIT
// Package: polygrid
//
// sanitize.go - silent parameter clamping.
//
// Contract:
//   - Sanitization never fails: out-of-domain values are corrected, not
//     rejected. radius/scale clamp to ≥ 0 (NaN → 0); numX/numY/level clamp
//     to ≥ 1. Pure functions, no I/O.
//   - Applied after broadcasting and before any geometry call, so generator
//     code can assume its domain unconditionally.

package polygrid

import "math"

// minCount is the lower bound for numX, numY and level.
const minCount = 1

// clampScalar maps radius/scale inputs into [0, +inf).
// NaN sanitizes to 0 (a degenerate but valid tile), +Inf passes through.
func clampScalar(v float64) float64 {
	if math.IsNaN(v) || v < 0 {
		return 0
	}

	return v
}

// clampCount maps integer extent inputs into [1, +inf).
func clampCount(n int) int {
	if n < minCount {
		return minCount
	}

	return n
}

// SanitizeScalar is the host-facing form of radius/scale clamping:
// max(0, v), with NaN treated as 0. Exported for adapters that sanitize
// number streams before constructing a GridSpec.
func SanitizeScalar(v float64) float64 { return clampScalar(v) }

// SanitizeCount is the host-facing form of extent clamping for hosts whose
// number streams are untyped floats: max(1, round(v)). NaN rounds to the
// minimum.
func SanitizeCount(v float64) int {
	if math.IsNaN(v) {
		return minCount
	}

	return clampCount(int(math.Round(v)))
}
