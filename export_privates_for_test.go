// SPDX-License-Identifier: MIT

package polygrid

// Test-Bridge (White-Box) for private kernels.
//
// Purpose:
//   - Expose unexported pipeline stages to polygrid_test ONLY, enabling
//     white-box verification of each component without widening the prod API.
//   - Keep ALL test-only bridges co-located here; if a private helper
//     changes signature, mirror the change once, not across many tests.

var (
	// ExportedClampScalar exposes clampScalar (radius/scale sanitization).
	ExportedClampScalar = clampScalar
	// ExportedClampCount exposes clampCount (extent sanitization).
	ExportedClampCount = clampCount
	// ExportedBatchLen exposes batchLen (broadcast length resolution).
	ExportedBatchLen = batchLen
	// ExportedPitchFor exposes pitchFor (polygon spacing metrics).
	ExportedPitchFor = pitchFor
	// ExportedCircumradiusFor exposes the size-mode conversion.
	ExportedCircumradiusFor = circumradiusFor
	// ExportedGenerateLattice exposes the layout dispatch.
	ExportedGenerateLattice = generateLattice
	// ExportedCenterLattice exposes bounding-box centering.
	ExportedCenterLattice = centerLattice
	// ExportedBuildTile exposes per-point polygon construction.
	ExportedBuildTile = buildTile
	// ExportedWeldTiles exposes the tile welder.
	ExportedWeldTiles = weldTiles
	// ExportedReferenceAngle exposes the vertex-0 direction per kind.
	ExportedReferenceAngle = referenceAngle
)

// ExportedAlignVec exposes the generic broadcast alignment.
func ExportedAlignVec[T any](in []T, l int, p BroadcastPolicy) ([]T, error) {
	return alignVec(in, l, p)
}

// PitchX/PitchY/PitchOffset give tests read access to pitchSpec fields.
func (m pitchSpec) PitchX() float64 { return m.px }
func (m pitchSpec) PitchY() float64 { return m.ry }
func (m pitchSpec) Offset() bool    { return m.rowOffset }
