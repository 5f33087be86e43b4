// SPDX-License-Identifier: MIT
// Package: polygrid
//
// impl_rectangle.go - rectangle layout lattice generator.
//
// Canonical model:
//   - numX × numY points, row-major: rows ascend along +Y, columns along +X.
//   - For polygon kinds with rowOffset (triangle, hexagon) every odd row is
//     shifted +px/2 so unscaled tiles stay edge-adjacent; square rows are
//     never shifted.
//
// Determinism:
//   - Stable order: (row 0, col 0..numX-1), (row 1, ...), ...
//
// Complexity:
//   - O(numX·numY) time and space.

package polygrid

import "github.com/go-gl/mathgl/mgl64"

// latticeRectangle emits the numX × numY rectangle lattice.
// Preconditions: numX ≥ 1, numY ≥ 1 (sanitized upstream).
func latticeRectangle(m pitchSpec, numX, numY int) []mgl64.Vec2 {
	pts := make([]mgl64.Vec2, 0, numX*numY)
	for row := 0; row < numY; row++ {
		// Odd rows of an offset lattice shift by half the horizontal pitch.
		shift := 0.0
		if m.rowOffset && row%2 == 1 {
			shift = m.px / 2
		}
		y := float64(row) * m.ry
		for col := 0; col < numX; col++ {
			pts = append(pts, mgl64.Vec2{float64(col)*m.px + shift, y})
		}
	}

	return pts
}
