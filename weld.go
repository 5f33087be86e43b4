// SPDX-License-Identifier: MIT
// Package: polygrid
//
// weld.go - coincident-vertex merging across tiles.
//
// Canonical model:
//   - Exact-match welding on a quantization grid, not epsilon-ball
//     clustering: each vertex maps to the integer key
//     (round(x/eps), round(y/eps), round(z/eps)); the first vertex seen for
//     a key becomes canonical, later occurrences redirect to it.
//   - Edge and face index lists are rewritten through the redirect map.
//     Edges that collapse to a point (a == b after redirect) are dropped;
//     duplicate edges (the side shared by two adjacent tiles) are kept once,
//     in first-seen order. Faces keep one entry per source tile.
//   - Tiles that do not touch (scale ≠ 1, or any separated arrangement)
//     simply produce no shared keys: welding is a safe no-op.
//
// Determinism:
//   - Vertex pool order is first-occurrence order over tiles in input order;
//     idempotent: welding a welded mesh changes nothing.

package polygrid

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// weldKey is the quantized coordinate triple used for exact-match lookup.
type weldKey [3]int64

// quantize maps v onto the eps grid. Precondition: eps > 0.
func quantize(v mgl64.Vec3, eps float64) weldKey {
	return weldKey{
		int64(math.Round(v.X() / eps)),
		int64(math.Round(v.Y() / eps)),
		int64(math.Round(v.Z() / eps)),
	}
}

// welder accumulates a deduplicated vertex pool keyed by quantized
// coordinates. The first vertex observed for a key wins.
type welder struct {
	eps   float64
	index map[weldKey]int
	mesh  Mesh
	seen  map[[2]int]struct{} // edge dedup, normalized pairs
}

func newWelder(eps float64) *welder {
	return &welder{
		eps:   eps,
		index: make(map[weldKey]int),
		seen:  make(map[[2]int]struct{}),
	}
}

// add returns the canonical pool index for v, inserting it if unseen.
func (w *welder) add(v mgl64.Vec3) int {
	k := quantize(v, w.eps)
	if i, ok := w.index[k]; ok {
		return i
	}
	i := len(w.mesh.Vertices)
	w.mesh.Vertices = append(w.mesh.Vertices, v)
	w.index[k] = i

	return i
}

// edge records the normalized pair (a,b) once, dropping degenerate loops.
func (w *welder) edge(a, b int) {
	if a == b {
		return // side collapsed onto a single welded vertex
	}
	if a > b {
		a, b = b, a
	}
	pair := [2]int{a, b}
	if _, dup := w.seen[pair]; dup {
		return
	}
	w.seen[pair] = struct{}{}
	w.mesh.Edges = append(w.mesh.Edges, pair)
}

// weldTiles merges the tiles' geometry into a single Mesh.
// Complexity: O(total vertex count) expected time, O(merged count) space.
func weldTiles(tiles []Tile, eps float64) Mesh {
	w := newWelder(eps)
	for _, t := range tiles {
		// Redirect map: tile-local vertex index -> pool index.
		remap := make([]int, len(t.Vertices))
		for i, v := range t.Vertices {
			remap[i] = w.add(v)
		}
		for _, e := range t.Edges {
			w.edge(remap[e[0]], remap[e[1]])
		}
		face := make([]int, len(t.Face))
		for i, fi := range t.Face {
			face[i] = remap[fi]
		}
		w.mesh.Faces = append(w.mesh.Faces, face)
	}

	return w.mesh
}

// Mesh produces the welded single-mesh form of the grid, merging vertices
// coincident within eps. This is exactly what joined-output assembly runs;
// it is exposed for hosts that assemble separate and join later.
func (g Grid) Mesh(eps float64) Mesh {
	return weldTiles(g.Tiles, eps)
}

// Weld re-runs vertex merging on an existing mesh, preserving face count
// and first-seen ordering. Welding an already-welded mesh at the same eps
// returns an equal mesh (idempotence).
func (m Mesh) Weld(eps float64) Mesh {
	w := newWelder(eps)
	remap := make([]int, len(m.Vertices))
	for i, v := range m.Vertices {
		remap[i] = w.add(v)
	}
	for _, e := range m.Edges {
		w.edge(remap[e[0]], remap[e[1]])
	}
	for _, f := range m.Faces {
		face := make([]int, len(f))
		for i, fi := range f {
			face[i] = remap[fi]
		}
		w.mesh.Faces = append(w.mesh.Faces, face)
	}

	return w.mesh
}
