// SPDX-License-Identifier: MIT
// Package: polygrid
//
// lattice.go - pitch metrics and lattice generator dispatch.
//
// Canonical model:
//   - A lattice point is the center of exactly one tile. Generators emit
//     points in a canonical unrotated, uncentered frame; rotation and
//     centering are applied afterwards.
//   - Pitch (center-to-center spacing) derives from the polygon kind and the
//     circumradius R so that unscaled tiles are exactly edge-adjacent:
//       triangle: px = √3·R (side), row height ry = px·sin60° = 3R/2,
//                 alternate rows offset px/2;
//       square:   px = ry = √2·R (side), no row offset;
//       hexagon:  px = 3R, ry = √3·R/2, alternate rows offset px/2
//                 (flat-top hexes: the half-offset rows fill the in-row gap).
//   - For flat-top hexes the nearest-neighbor steps are (±px/2, ±ry) and
//     (0, ±2·ry); px itself spans two hex steps. Ring-shaped layouts must
//     therefore build on the half-pitch basis, never on whole rows of px
//     (colMajor flags this to the hex-cluster generator).
//
// Determinism:
//   - Emission order is stable and documented per layout (impl_*.go).
//   - R = 0 collapses every pitch to zero; generators still emit the full
//     point count (all coincident), keeping the one-point-one-tile invariant.

package polygrid

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// pitchSpec captures the spacing metrics of one polygon kind at a given
// circumradius.
type pitchSpec struct {
	px        float64 // horizontal center-to-center spacing within a row
	ry        float64 // vertical spacing between consecutive rows
	rowOffset bool    // alternate rectangle rows shift by px/2
	colMajor  bool    // hex-cluster rings stack columns (flat-top adjacency)
}

// pitchFor derives the lattice metrics for polygon kind p at circumradius r.
// Precondition: p.IsValid() (checked at the API boundary).
func pitchFor(p PolygonKind, r float64) pitchSpec {
	switch p {
	case PolygonTriangle:
		side := math.Sqrt(3) * r
		return pitchSpec{px: side, ry: side * math.Sin(math.Pi/3), rowOffset: true}
	case PolygonSquare:
		side := math.Sqrt2 * r
		return pitchSpec{px: side, ry: side, rowOffset: false}
	default: // PolygonHexagon
		return pitchSpec{px: 3 * r, ry: math.Sqrt(3) * r / 2, rowOffset: true, colMajor: true}
	}
}

// circumradiusFor converts a sanitized size value into a circumradius
// according to the size mode: under SizeEdgeLength the value is the polygon
// side length (triangle s/√3, square s/√2, hexagon s).
func circumradiusFor(mode SizeMode, p PolygonKind, size float64) float64 {
	if mode == SizeCircumradius {
		return size
	}
	switch p {
	case PolygonTriangle:
		return size / math.Sqrt(3)
	case PolygonSquare:
		return size / math.Sqrt2
	default: // PolygonHexagon: side equals circumradius
		return size
	}
}

// generateLattice dispatches to the layout-specific generator.
// Inputs are sanitized; only the parameters the layout reads are consulted
// (numX/numY for Rectangle, level otherwise).
func generateLattice(layout LayoutKind, m pitchSpec, numX, numY, level int) []mgl64.Vec2 {
	switch layout {
	case LayoutRectangle:
		return latticeRectangle(m, numX, numY)
	case LayoutTriangle:
		return latticeTriangle(m, level)
	case LayoutDiamond:
		return latticeDiamond(m, level)
	default: // LayoutHexagon
		return latticeHexagon(m, level)
	}
}

// centerLattice shifts pts by the negative of their bounding-box midpoint
// (not the point average), so the overall layout is centered at the origin.
// Mutates pts in place and returns it for chaining.
// Complexity: O(len(pts)) time, O(1) extra space.
func centerLattice(pts []mgl64.Vec2) []mgl64.Vec2 {
	if len(pts) == 0 {
		return pts
	}
	minX, maxX := pts[0].X(), pts[0].X()
	minY, maxY := pts[0].Y(), pts[0].Y()
	for _, p := range pts[1:] {
		minX = math.Min(minX, p.X())
		maxX = math.Max(maxX, p.X())
		minY = math.Min(minY, p.Y())
		maxY = math.Max(maxY, p.Y())
	}
	mid := mgl64.Vec2{(minX + maxX) / 2, (minY + maxY) / 2}
	for i := range pts {
		pts[i] = pts[i].Sub(mid)
	}

	return pts
}

// centeredRow appends cnt points at height y, centered about x=0 with
// horizontal spacing px, in ascending-x order. Shared by the simplex-style
// layouts: consecutive rows whose counts differ by one land exactly half a
// pitch apart, which keeps offset-lattice tiles edge-adjacent.
func centeredRow(dst []mgl64.Vec2, cnt int, y, px float64) []mgl64.Vec2 {
	half := float64(cnt-1) / 2
	for i := 0; i < cnt; i++ {
		dst = append(dst, mgl64.Vec2{(float64(i) - half) * px, y})
	}

	return dst
}
