// SPDX-License-Identifier: MIT
// Package polygrid_test verifies lattice point enumeration per layout.
package polygrid_test

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/katalvlaran/polygrid"
)

const coordTolerance = 1e-9

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) <= coordTolerance
}

//----------------------------------------------------------------------------//
// Pitch metrics
//----------------------------------------------------------------------------//

// TestPitchFor verifies the per-polygon spacing metrics at circumradius 1.
func TestPitchFor(t *testing.T) {
	sqrt3 := math.Sqrt(3)
	cases := []struct {
		name   string
		kind   polygrid.PolygonKind
		px, ry float64
		offset bool
	}{
		{"Triangle", polygrid.PolygonTriangle, sqrt3, sqrt3 * math.Sin(math.Pi/3), true},
		{"Square", polygrid.PolygonSquare, math.Sqrt2, math.Sqrt2, false},
		{"Hexagon", polygrid.PolygonHexagon, 3, sqrt3 / 2, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			m := polygrid.ExportedPitchFor(tc.kind, 1)
			if !almostEqual(m.PitchX(), tc.px) {
				t.Errorf("px = %v; want %v", m.PitchX(), tc.px)
			}
			if !almostEqual(m.PitchY(), tc.ry) {
				t.Errorf("ry = %v; want %v", m.PitchY(), tc.ry)
			}
			if m.Offset() != tc.offset {
				t.Errorf("rowOffset = %v; want %v", m.Offset(), tc.offset)
			}
		})
	}
}

// TestCircumradiusFor verifies the edge-length → circumradius conversion.
func TestCircumradiusFor(t *testing.T) {
	if r := polygrid.ExportedCircumradiusFor(polygrid.SizeCircumradius, polygrid.PolygonSquare, 2); r != 2 {
		t.Errorf("circumradius mode changed the value: %v", r)
	}
	if r := polygrid.ExportedCircumradiusFor(polygrid.SizeEdgeLength, polygrid.PolygonTriangle, math.Sqrt(3)); !almostEqual(r, 1) {
		t.Errorf("triangle side √3 should give circumradius 1; got %v", r)
	}
	if r := polygrid.ExportedCircumradiusFor(polygrid.SizeEdgeLength, polygrid.PolygonSquare, math.Sqrt2); !almostEqual(r, 1) {
		t.Errorf("square side √2 should give circumradius 1; got %v", r)
	}
	if r := polygrid.ExportedCircumradiusFor(polygrid.SizeEdgeLength, polygrid.PolygonHexagon, 1); r != 1 {
		t.Errorf("hexagon side equals circumradius; got %v", r)
	}
}

//----------------------------------------------------------------------------//
// Point counts per layout
//----------------------------------------------------------------------------//

// TestLatticeCounts verifies the closed-form point counts of every layout
// across all polygon kinds.
func TestLatticeCounts(t *testing.T) {
	polygons := []polygrid.PolygonKind{
		polygrid.PolygonTriangle, polygrid.PolygonSquare, polygrid.PolygonHexagon,
	}
	cases := []struct {
		name              string
		layout            polygrid.LayoutKind
		numX, numY, level int
		want              int
	}{
		{"Rect3x4", polygrid.LayoutRectangle, 3, 4, 1, 12},
		{"Rect1x1", polygrid.LayoutRectangle, 1, 1, 1, 1},
		{"Triangle1", polygrid.LayoutTriangle, 1, 1, 1, 1},
		{"Triangle3", polygrid.LayoutTriangle, 1, 1, 3, 6},
		{"Triangle5", polygrid.LayoutTriangle, 1, 1, 5, 15},
		{"Diamond1", polygrid.LayoutDiamond, 1, 1, 1, 1},
		{"Diamond3", polygrid.LayoutDiamond, 1, 1, 3, 9},
		{"Diamond4", polygrid.LayoutDiamond, 1, 1, 4, 16},
		{"Hexagon1", polygrid.LayoutHexagon, 1, 1, 1, 1},
		{"Hexagon2", polygrid.LayoutHexagon, 1, 1, 2, 7},
		{"Hexagon3", polygrid.LayoutHexagon, 1, 1, 3, 19},
		{"Hexagon5", polygrid.LayoutHexagon, 1, 1, 5, 61},
	}
	for _, tc := range cases {
		for _, p := range polygons {
			m := polygrid.ExportedPitchFor(p, 1)
			pts := polygrid.ExportedGenerateLattice(tc.layout, m, tc.numX, tc.numY, tc.level)
			if len(pts) != tc.want {
				t.Errorf("%s/%s: %d points; want %d", tc.name, p, len(pts), tc.want)
			}
		}
	}
}

//----------------------------------------------------------------------------//
// Ordering and geometry
//----------------------------------------------------------------------------//

// TestLatticeRectangle_Order verifies row-major emission and the odd-row
// half-pitch offset for an offset lattice.
func TestLatticeRectangle_Order(t *testing.T) {
	m := polygrid.ExportedPitchFor(polygrid.PolygonHexagon, 1) // px=3, ry=√3/2
	pts := polygrid.ExportedGenerateLattice(polygrid.LayoutRectangle, m, 2, 2, 1)
	want := []mgl64.Vec2{
		{0, 0},
		{3, 0},
		{1.5, math.Sqrt(3) / 2},
		{4.5, math.Sqrt(3) / 2},
	}
	if len(pts) != len(want) {
		t.Fatalf("point count = %d; want %d", len(pts), len(want))
	}
	for i := range want {
		if !almostEqual(pts[i].X(), want[i].X()) || !almostEqual(pts[i].Y(), want[i].Y()) {
			t.Errorf("point %d = %v; want %v", i, pts[i], want[i])
		}
	}
}

// TestLatticeRectangle_SquareNoOffset verifies that square rows never shift.
func TestLatticeRectangle_SquareNoOffset(t *testing.T) {
	m := polygrid.ExportedPitchFor(polygrid.PolygonSquare, 1)
	pts := polygrid.ExportedGenerateLattice(polygrid.LayoutRectangle, m, 2, 3, 1)
	for i, p := range pts {
		col := i % 2
		if !almostEqual(p.X(), float64(col)*math.Sqrt2) {
			t.Errorf("point %d x = %v; rows must not be offset", i, p.X())
		}
	}
}

// TestLatticeTriangle_RowWidths verifies that row r carries r+1 points and
// consecutive rows sit half a pitch apart horizontally.
func TestLatticeTriangle_RowWidths(t *testing.T) {
	m := polygrid.ExportedPitchFor(polygrid.PolygonTriangle, 1)
	pts := polygrid.ExportedGenerateLattice(polygrid.LayoutTriangle, m, 1, 1, 4)

	idx := 0
	for r := 0; r < 4; r++ {
		rowY := -float64(r) * m.PitchY()
		for i := 0; i <= r; i++ {
			p := pts[idx]
			if !almostEqual(p.Y(), rowY) {
				t.Errorf("row %d point %d y = %v; want %v", r, i, p.Y(), rowY)
			}
			idx++
		}
	}
	// Apex sits at the origin in the canonical frame.
	if !almostEqual(pts[0].X(), 0) || !almostEqual(pts[0].Y(), 0) {
		t.Errorf("apex = %v; want origin", pts[0])
	}
}

// TestLatticeHexagon_FlatTopRing pins the ring-1 geometry of the hex
// cluster for flat-top hexagon tiles: the six neighbors of the center sit
// one hex step away at (±px/2, ±ry) and (0, ±2·ry), all at distance √3·R.
// The in-row pitch px = 3R spans two hex steps and must never appear
// inside a ring.
func TestLatticeHexagon_FlatTopRing(t *testing.T) {
	sqrt3 := math.Sqrt(3)
	m := polygrid.ExportedPitchFor(polygrid.PolygonHexagon, 1)
	pts := polygrid.ExportedGenerateLattice(polygrid.LayoutHexagon, m, 1, 1, 2)
	if len(pts) != 7 {
		t.Fatalf("point count = %d; want 7", len(pts))
	}

	want := []mgl64.Vec2{
		{-1.5, -sqrt3 / 2}, {-1.5, sqrt3 / 2},
		{0, -sqrt3}, {0, 0}, {0, sqrt3},
		{1.5, -sqrt3 / 2}, {1.5, sqrt3 / 2},
	}
	for _, w := range want {
		found := false
		for _, p := range pts {
			if almostEqual(p.X(), w.X()) && almostEqual(p.Y(), w.Y()) {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("missing lattice point %v", w)
		}
	}
	for _, p := range pts {
		if d := p.Len(); !almostEqual(d, 0) && !almostEqual(d, sqrt3) {
			t.Errorf("ring-1 point %v at distance %v; want √3", p, d)
		}
	}
}

// TestLatticeHexagon_TriangleRing verifies the row-stacked branch for
// triangle tiles: their nearest-neighbor set is (±px, 0) and (±px/2, ±ry),
// so every ring-1 point also lands one lattice step (√3·R) from the center.
func TestLatticeHexagon_TriangleRing(t *testing.T) {
	sqrt3 := math.Sqrt(3)
	m := polygrid.ExportedPitchFor(polygrid.PolygonTriangle, 1)
	pts := polygrid.ExportedGenerateLattice(polygrid.LayoutHexagon, m, 1, 1, 2)
	if len(pts) != 7 {
		t.Fatalf("point count = %d; want 7", len(pts))
	}
	for _, p := range pts {
		if d := p.Len(); !almostEqual(d, 0) && !almostEqual(d, sqrt3) {
			t.Errorf("ring-1 point %v at distance %v; want √3", p, d)
		}
	}
}

// TestCenterLattice verifies bounding-box centering: per axis, min = -max.
func TestCenterLattice(t *testing.T) {
	layouts := []struct {
		name   string
		layout polygrid.LayoutKind
	}{
		{"Rectangle", polygrid.LayoutRectangle},
		{"Triangle", polygrid.LayoutTriangle},
		{"Diamond", polygrid.LayoutDiamond},
		{"Hexagon", polygrid.LayoutHexagon},
	}
	m := polygrid.ExportedPitchFor(polygrid.PolygonTriangle, 1)
	for _, tc := range layouts {
		t.Run(tc.name, func(t *testing.T) {
			pts := polygrid.ExportedGenerateLattice(tc.layout, m, 4, 3, 4)
			pts = polygrid.ExportedCenterLattice(pts)

			minX, maxX := math.Inf(1), math.Inf(-1)
			minY, maxY := math.Inf(1), math.Inf(-1)
			for _, p := range pts {
				minX = math.Min(minX, p.X())
				maxX = math.Max(maxX, p.X())
				minY = math.Min(minY, p.Y())
				maxY = math.Max(maxY, p.Y())
			}
			if !almostEqual(minX, -maxX) || !almostEqual(minY, -maxY) {
				t.Errorf("bbox not symmetric: x[%v,%v] y[%v,%v]", minX, maxX, minY, maxY)
			}
		})
	}
}

// TestLattice_Deterministic verifies that identical inputs produce identical
// point sequences across calls.
func TestLattice_Deterministic(t *testing.T) {
	m := polygrid.ExportedPitchFor(polygrid.PolygonHexagon, 2.5)
	a := polygrid.ExportedGenerateLattice(polygrid.LayoutHexagon, m, 1, 1, 4)
	b := polygrid.ExportedGenerateLattice(polygrid.LayoutHexagon, m, 1, 1, 4)
	if len(a) != len(b) {
		t.Fatalf("lengths differ: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Errorf("point %d differs: %v vs %v", i, a[i], b[i])
		}
	}
}

// TestLattice_ZeroRadius verifies that a zero circumradius collapses every
// pitch but keeps the full point count (one point per tile).
func TestLattice_ZeroRadius(t *testing.T) {
	m := polygrid.ExportedPitchFor(polygrid.PolygonSquare, 0)
	pts := polygrid.ExportedGenerateLattice(polygrid.LayoutRectangle, m, 3, 3, 1)
	if len(pts) != 9 {
		t.Fatalf("point count = %d; want 9", len(pts))
	}
	for i, p := range pts {
		if p.X() != 0 || p.Y() != 0 {
			t.Errorf("point %d = %v; want origin", i, p)
		}
	}
}
