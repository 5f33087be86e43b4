// Package polygrid generates tilings of regular polygons (triangle, square,
// hexagon) confined to a macro-shaped layout (rectangle, triangle, diamond,
// hexagon), producing per-tile vertex/edge/face geometry, per-tile centers,
// and — when joined output is requested — a single welded mesh per grid.
//
// What:
//
//   - Assemble: the single orchestrator. Broadcasts vectorized parameters
//     (radius, scale, angle, numX, numY, level) to a common length, then for
//     each aligned tuple: sanitize → enumerate lattice points → build tiles →
//     optionally weld coincident vertices into one mesh.
//   - LayoutKind × PolygonKind: four macro layouts times three tile shapes,
//     each combination a deterministic pure generator.
//   - Weld: quantized-key vertex merging across edge-adjacent tiles
//     (exact-match on a configurable epsilon grid, default 1e-5).
//
// Why:
//
//   - Procedural meshing: hex maps, triangle fans, board layouts.
//   - Node-graph hosts: vectorized inputs map one-to-one onto the batch API.
//   - Test fixtures: stable ordering makes outputs golden-file friendly.
//
// Determinism:
//
//   - Same GridSpec and options ⇒ identical batches, byte for byte.
//   - Lattice emission order is stable and documented per layout (impl_*.go).
//   - No RNG, no I/O, no global state; every evaluation in a batch is
//     independent and safe to shard across goroutines by the caller.
//
// Numeric policy:
//
//   - Out-of-domain scalars never fail: radius/scale clamp to ≥ 0,
//     numX/numY/level clamp to ≥ 1 (silent sanitization).
//   - radius=0 or scale=0 degenerates tiles to single points — defined
//     behavior, not an error.
//   - Parameters inapplicable to the chosen layout are not read.
//
// Errors:
//
//   - ErrUnknownLayout / ErrUnknownPolygon / ErrUnknownSizeMode: enum value
//     outside the declared set.
//   - ErrEmptyInput: a required parameter vector has length 0.
//   - ErrLengthMismatch: BroadcastStrict saw incompatible vector lengths.
//
// Coordinates use mgl64 (github.com/go-gl/mathgl): lattice points are
// mgl64.Vec2, emitted geometry is mgl64.Vec3 with z=0.
//
//	go get github.com/katalvlaran/polygrid
package polygrid
