// SPDX-License-Identifier: MIT
// Package: polygrid
//
// impl_diamond.go - diamond (rhombus) layout lattice generator.
//
// Canonical model:
//   - Two mirrored simplex halves sharing the widest row: row counts run
//     1, 2, ..., level, level-1, ..., 1 over 2·level-1 rows, each row at
//     y = -r·ry and centered about x = 0.
//   - Total points: level·(level+1)/2 + (level-1)·level/2 = level².
//
// Determinism:
//   - Stable order: top apex first, rows top-to-bottom, x ascending.
//
// Complexity:
//   - O(level²) time and space.

package polygrid

import "github.com/go-gl/mathgl/mgl64"

// latticeDiamond emits the level² diamond lattice.
// Precondition: level ≥ 1 (sanitized upstream).
func latticeDiamond(m pitchSpec, level int) []mgl64.Vec2 {
	rows := 2*level - 1
	pts := make([]mgl64.Vec2, 0, level*level)
	for r := 0; r < rows; r++ {
		// Count grows to `level` at the middle row, then shrinks again.
		cnt := r + 1
		if r >= level {
			cnt = rows - r
		}
		pts = centeredRow(pts, cnt, -float64(r)*m.ry, m.px)
	}

	return pts
}
