// SPDX-License-Identifier: MIT
// Package: polygrid
//
// types.go - core kinds and geometry value types.
//
// Design contract (strict):
//   - Kinds are small integer enums with IsValid/String; zero value is the
//     most common choice (PolygonTriangle, LayoutRectangle, SizeCircumradius).
//   - Tile/Grid/Mesh are immutable once returned by the package; callers may
//     read slices freely but must not assume shared backing arrays.
//   - Edge pairs are normalized lo<hi; faces index into the owning vertex
//     sequence only.

package polygrid

import (
	"github.com/go-gl/mathgl/mgl64"
)

// PolygonKind selects the shape of each individual tile.
type PolygonKind int

const (
	// PolygonTriangle is an equilateral triangle, apex up.
	PolygonTriangle PolygonKind = iota
	// PolygonSquare is an axis-aligned square.
	PolygonSquare
	// PolygonHexagon is a flat-top regular hexagon.
	PolygonHexagon
)

// Sides reports the vertex/edge count of the polygon (3, 4 or 6).
// Returns 0 for an invalid kind.
func (p PolygonKind) Sides() int {
	switch p {
	case PolygonTriangle:
		return 3
	case PolygonSquare:
		return 4
	case PolygonHexagon:
		return 6
	default:
		return 0
	}
}

// IsValid reports whether p is one of the declared polygon kinds.
func (p PolygonKind) IsValid() bool { return p.Sides() != 0 }

func (p PolygonKind) String() string {
	switch p {
	case PolygonTriangle:
		return "triangle"
	case PolygonSquare:
		return "square"
	case PolygonHexagon:
		return "hexagon"
	default:
		return "unknown"
	}
}

// LayoutKind selects the macro shape that constrains which lattice points exist.
type LayoutKind int

const (
	// LayoutRectangle is a numX × numY point grid.
	LayoutRectangle LayoutKind = iota
	// LayoutTriangle is a simplex of `level` rows, apex first.
	LayoutTriangle
	// LayoutDiamond is two mirrored simplex halves sharing the middle row.
	LayoutDiamond
	// LayoutHexagon is a hex cluster of `level` rings around one center point.
	LayoutHexagon
)

// IsValid reports whether l is one of the declared layout kinds.
func (l LayoutKind) IsValid() bool {
	return l >= LayoutRectangle && l <= LayoutHexagon
}

func (l LayoutKind) String() string {
	switch l {
	case LayoutRectangle:
		return "rectangle"
	case LayoutTriangle:
		return "triangle"
	case LayoutDiamond:
		return "diamond"
	case LayoutHexagon:
		return "hexagon"
	default:
		return "unknown"
	}
}

// SizeMode controls how the Radius input is interpreted.
type SizeMode int

const (
	// SizeCircumradius treats Radius as the circumscribed-circle radius.
	SizeCircumradius SizeMode = iota
	// SizeEdgeLength treats Radius as the polygon side length.
	SizeEdgeLength
)

// IsValid reports whether m is one of the declared size modes.
func (m SizeMode) IsValid() bool {
	return m == SizeCircumradius || m == SizeEdgeLength
}

func (m SizeMode) String() string {
	switch m {
	case SizeCircumradius:
		return "circumradius"
	case SizeEdgeLength:
		return "edge-length"
	default:
		return "unknown"
	}
}

// Tile is one polygon instance placed at a lattice point.
// Vertices are in counter-clockwise winding order; Edges are the polygon
// sides as normalized (lo<hi) index pairs over Vertices; Face lists all
// vertex indices in winding order. A Tile is immutable once built.
type Tile struct {
	Center   mgl64.Vec3
	Vertices []mgl64.Vec3
	Edges    [][2]int
	Face     []int
}

// Grid is the per-tuple result: one tile per lattice point, in lattice
// emission order, plus the raw center list (always populated regardless of
// the separate/joined output mode).
type Grid struct {
	Centers []mgl64.Vec3
	Tiles   []Tile
}

// Mesh is the joined-output representation: tile geometry welded into a
// single deduplicated vertex pool. Edges are unique normalized pairs in
// first-seen order; Faces keep one entry per source tile.
type Mesh struct {
	Vertices []mgl64.Vec3
	Edges    [][2]int
	Faces    [][]int
}

// GridSpec is a vectorized grid request. Scalar vectors of different
// lengths are broadcast to the maximum length before evaluation; vectors
// the chosen layout does not read (NumX/NumY outside LayoutRectangle,
// Level inside it) may be nil.
type GridSpec struct {
	Layout  LayoutKind
	Polygon PolygonKind

	Radius []float64 // tile size, interpreted per SizeMode; clamped ≥ 0
	Scale  []float64 // per-tile scale about the tile center; clamped ≥ 0
	Angle  []float64 // rigid grid rotation in radians

	NumX  []int // rectangle columns; clamped ≥ 1
	NumY  []int // rectangle rows; clamped ≥ 1
	Level []int // triangle/diamond/hexagon extent; clamped ≥ 1
}

// GridBatch holds one Grid per aligned parameter tuple, plus one welded
// Mesh per Grid when joined output was requested (Meshes is nil under
// WithSeparate).
type GridBatch struct {
	Grids  []Grid
	Meshes []Mesh
}

// Len reports the number of evaluations in the batch.
func (b *GridBatch) Len() int { return len(b.Grids) }
