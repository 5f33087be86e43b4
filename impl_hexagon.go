// SPDX-License-Identifier: MIT
// Package: polygrid
//
// impl_hexagon.go - hexagon layout lattice generator.
//
// Canonical model:
//   - A hex cluster of `level` rings around a single center point: ring k
//     (1..level-1) holds the 6k lattice points whose hex-distance from the
//     center is k, so every ring-1 point is edge-adjacent to the center
//     tile. Total points: 1 + 3·level·(level-1); level = 1 degenerates to
//     the single center point.
//   - The cluster is enumerated through the lattice's adjacency basis as
//     2·level-1 stacks of 2·level-1-|q| points each (level, level+1, ...,
//     2·level-1, ..., level), centered about the origin:
//       flat-top hexagon tiles: stacks are COLUMNS at x = q·px/2 with
//         in-column spacing 2·ry = √3·R (the vertical neighbor) — the
//         in-row pitch px = 3R is two hex steps and must not appear inside
//         a ring;
//       triangle/square tiles: stacks are ROWS at y = -q·ry with in-row
//         spacing px, matching their lattice's nearest-neighbor set.
//
// Determinism:
//   - Flat-top tiles: columns left-to-right, y ascending within a column.
//   - Row-stacked tiles: rows top-to-bottom, x ascending.
//
// Complexity:
//   - O(level²) time and space.

package polygrid

import "github.com/go-gl/mathgl/mgl64"

// latticeHexagon emits the hex-cluster lattice of `level` rings.
// Precondition: level ≥ 1 (sanitized upstream).
func latticeHexagon(m pitchSpec, level int) []mgl64.Vec2 {
	stacks := 2*level - 1
	mid := level - 1
	pts := make([]mgl64.Vec2, 0, 1+3*level*(level-1))
	for s := 0; s < stacks; s++ {
		// |s-mid| is the distance from the widest (middle) stack.
		d := s - mid
		if d < 0 {
			d = -d
		}
		cnt := stacks - d
		half := float64(cnt-1) / 2
		if m.colMajor {
			// Column at x = q·px/2; odd columns land on half-integer
			// multiples of 2·ry through the centering term.
			x := float64(s-mid) * m.px / 2
			for i := 0; i < cnt; i++ {
				pts = append(pts, mgl64.Vec2{x, (float64(i) - half) * 2 * m.ry})
			}
		} else {
			// Row at y descending from +mid·ry to -mid·ry.
			y := float64(mid-s) * m.ry
			for i := 0; i < cnt; i++ {
				pts = append(pts, mgl64.Vec2{(float64(i) - half) * m.px, y})
			}
		}
	}

	return pts
}
