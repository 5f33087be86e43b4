// SPDX-License-Identifier: MIT
// Package: polygrid
//
// impl_triangle.go - triangle (simplex) layout lattice generator.
//
// Canonical model:
//   - `level` rows from apex to base; row r (0-indexed from the apex at the
//     origin) holds r+1 points at y = -r·ry, centered about x = 0.
//   - Total points: level·(level+1)/2.
//   - Adjacent rows differ by one point, so every row sits half a pitch off
//     its neighbor — exactly the offset the triangle/hexagon lattices need.
//
// Determinism:
//   - Stable order: apex first, then rows top-to-bottom, x ascending.
//
// Complexity:
//   - O(level²) time and space.

package polygrid

import "github.com/go-gl/mathgl/mgl64"

// latticeTriangle emits the simplex lattice of `level` rows.
// Precondition: level ≥ 1 (sanitized upstream).
func latticeTriangle(m pitchSpec, level int) []mgl64.Vec2 {
	pts := make([]mgl64.Vec2, 0, level*(level+1)/2)
	for r := 0; r < level; r++ {
		pts = centeredRow(pts, r+1, -float64(r)*m.ry, m.px)
	}

	return pts
}
