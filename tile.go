// SPDX-License-Identifier: MIT
// Package: polygrid
//
// tile.go - per-lattice-point polygon construction.
//
// Canonical model:
//   - The regular polygon of p.Sides() vertices is inscribed in a circle of
//     the given circumradius, counter-clockwise, with vertex 0 on a fixed
//     reference direction per kind: triangle 90° (apex up), square 45°
//     (axis-aligned sides), hexagon 0° (flat top).
//   - Scale acts about the tile's own center: v = center + scale·(R·dir).
//   - Angle rotates the whole grid rigidly about the origin: both the
//     lattice point and the tile's local offsets turn together, i.e.
//     world = Rot(angle)·(point + scale·local).
//
// Determinism:
//   - Vertex indexing, winding and edge order are fixed by the reference
//     direction; identical inputs yield identical tiles.
//   - radius = 0 or scale = 0 collapses all vertices onto the center point;
//     the tile stays structurally valid (zero-area).

package polygrid

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// referenceAngle is the direction of vertex 0 for each polygon kind, in
// radians. Precondition: p.IsValid().
func referenceAngle(p PolygonKind) float64 {
	switch p {
	case PolygonTriangle:
		return math.Pi / 2 // apex up
	case PolygonSquare:
		return math.Pi / 4 // corners at ±45°, sides axis-aligned
	default: // PolygonHexagon
		return 0 // pointy left/right, flat top edge
	}
}

// buildTile constructs the tile centered at lattice point pt.
// radius and scale are sanitized (≥ 0); angle is unrestricted.
// Complexity: O(p.Sides()) time and space.
func buildTile(pt mgl64.Vec2, p PolygonKind, radius, scale, angle float64) Tile {
	n := p.Sides()
	rot := mgl64.Rotate2D(angle)
	c := rot.Mul2x1(pt)

	t := Tile{
		Center:   mgl64.Vec3{c.X(), c.Y(), 0},
		Vertices: make([]mgl64.Vec3, n),
		Edges:    make([][2]int, n),
		Face:     make([]int, n),
	}

	ref := referenceAngle(p)
	step := 2 * math.Pi / float64(n)
	for i := 0; i < n; i++ {
		theta := ref + float64(i)*step
		// Local offset at full radius, shrunk about the center by scale.
		local := mgl64.Vec2{radius * math.Cos(theta), radius * math.Sin(theta)}.Mul(scale)
		w := rot.Mul2x1(pt.Add(local))
		t.Vertices[i] = mgl64.Vec3{w.X(), w.Y(), 0}

		// Side i runs from vertex i to vertex i+1 (mod n), stored lo<hi.
		a, b := i, (i+1)%n
		if a > b {
			a, b = b, a
		}
		t.Edges[i] = [2]int{a, b}
		t.Face[i] = i
	}

	return t
}
