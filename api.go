// SPDX-License-Identifier: MIT
// Package: polygrid
//
// api.go - thin public entry-point for grid assembly.
//
// Design contract (strict):
//   - One orchestrator: Assemble(spec, opts...). Resolves options into an
//     immutable gridConfig, validates kinds, broadcasts the parameter
//     vectors, then runs the per-tuple pipeline:
//     sanitize → lattice → (center) → tiles → (weld).
//   - Validation order: kinds, then required-vector presence, then strict
//     broadcast lengths. Errors wrap sentinels once at this boundary.
//   - Parameters the chosen layout does not read are never consulted:
//     NumX/NumY outside LayoutRectangle and Level inside it may be nil.
//   - Determinism: same spec/options ⇒ identical batches.
//   - Safety: never panics; returns sentinel-wrapped errors only.

package polygrid

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
)

// methodAssemble tags errors produced at the Assemble boundary.
const methodAssemble = "Assemble"

// Assemble evaluates the vectorized grid request and returns one Grid per
// aligned parameter tuple, plus one welded Mesh per Grid unless
// WithSeparate was given.
//
// The batch length L is the maximum length among the vectors the layout
// reads; shorter vectors are aligned to L under the configured
// BroadcastPolicy (repeat-last by default).
//
// Complexity: O(Σ points·sides) over the batch; memory proportional to the
// emitted geometry.
func Assemble(spec GridSpec, opts ...Option) (*GridBatch, error) {
	cfg := newGridConfig(opts...)

	// 1) Kind validation (fail fast; no partial work).
	if !spec.Layout.IsValid() {
		return nil, fmt.Errorf("%s: layout=%d: %w", methodAssemble, spec.Layout, ErrUnknownLayout)
	}
	if !spec.Polygon.IsValid() {
		return nil, fmt.Errorf("%s: polygon=%d: %w", methodAssemble, spec.Polygon, ErrUnknownPolygon)
	}
	if !cfg.sizeMode.IsValid() {
		return nil, fmt.Errorf("%s: size mode=%d: %w", methodAssemble, cfg.sizeMode, ErrUnknownSizeMode)
	}

	// 2) Required-vector presence. Only vectors the layout reads count;
	//    rectangle extent and level are mutually exclusive by layout.
	rect := spec.Layout == LayoutRectangle
	if len(spec.Radius) == 0 {
		return nil, fmt.Errorf("%s: radius: %w", methodAssemble, ErrEmptyInput)
	}
	if len(spec.Scale) == 0 {
		return nil, fmt.Errorf("%s: scale: %w", methodAssemble, ErrEmptyInput)
	}
	if len(spec.Angle) == 0 {
		return nil, fmt.Errorf("%s: angle: %w", methodAssemble, ErrEmptyInput)
	}
	if rect {
		if len(spec.NumX) == 0 {
			return nil, fmt.Errorf("%s: numX: %w", methodAssemble, ErrEmptyInput)
		}
		if len(spec.NumY) == 0 {
			return nil, fmt.Errorf("%s: numY: %w", methodAssemble, ErrEmptyInput)
		}
	} else if len(spec.Level) == 0 {
		return nil, fmt.Errorf("%s: level: %w", methodAssemble, ErrEmptyInput)
	}

	// 3) Broadcast to the common batch length L.
	var L int
	if rect {
		L = batchLen(len(spec.Radius), len(spec.Scale), len(spec.Angle), len(spec.NumX), len(spec.NumY))
	} else {
		L = batchLen(len(spec.Radius), len(spec.Scale), len(spec.Angle), len(spec.Level))
	}

	radius, err := alignVec(spec.Radius, L, cfg.policy)
	if err != nil {
		return nil, fmt.Errorf("%s: radius: %w", methodAssemble, err)
	}
	scale, err := alignVec(spec.Scale, L, cfg.policy)
	if err != nil {
		return nil, fmt.Errorf("%s: scale: %w", methodAssemble, err)
	}
	angle, err := alignVec(spec.Angle, L, cfg.policy)
	if err != nil {
		return nil, fmt.Errorf("%s: angle: %w", methodAssemble, err)
	}
	// Unread extents stay at their minimum; generators never consult them.
	var numX, numY, level []int
	if rect {
		if numX, err = alignVec(spec.NumX, L, cfg.policy); err != nil {
			return nil, fmt.Errorf("%s: numX: %w", methodAssemble, err)
		}
		if numY, err = alignVec(spec.NumY, L, cfg.policy); err != nil {
			return nil, fmt.Errorf("%s: numY: %w", methodAssemble, err)
		}
	} else {
		if level, err = alignVec(spec.Level, L, cfg.policy); err != nil {
			return nil, fmt.Errorf("%s: level: %w", methodAssemble, err)
		}
	}

	// 4) Per-tuple pipeline. Every iteration is independent of the others.
	batch := &GridBatch{Grids: make([]Grid, 0, L)}
	if !cfg.separate {
		batch.Meshes = make([]Mesh, 0, L)
	}
	for t := 0; t < L; t++ {
		r := clampScalar(radius[t])
		s := clampScalar(scale[t])
		a := angle[t]

		nx, ny, lvl := minCount, minCount, minCount
		if rect {
			nx, ny = clampCount(numX[t]), clampCount(numY[t])
		} else {
			lvl = clampCount(level[t])
		}

		cr := circumradiusFor(cfg.sizeMode, spec.Polygon, r)
		pts := generateLattice(spec.Layout, pitchFor(spec.Polygon, cr), nx, ny, lvl)
		if cfg.center {
			pts = centerLattice(pts)
		}

		grid := Grid{
			Centers: make([]mgl64.Vec3, 0, len(pts)),
			Tiles:   make([]Tile, 0, len(pts)),
		}
		for _, pt := range pts {
			tile := buildTile(pt, spec.Polygon, cr, s, a)
			grid.Tiles = append(grid.Tiles, tile)
			grid.Centers = append(grid.Centers, tile.Center)
		}
		batch.Grids = append(batch.Grids, grid)

		if !cfg.separate {
			batch.Meshes = append(batch.Meshes, weldTiles(grid.Tiles, cfg.weldEps))
		}
	}

	return batch, nil
}
