// SPDX-License-Identifier: MIT
// Package: polygrid
//
// errors.go - sentinel errors for the polygrid package.
//
// Error policy (explicit and strict):
//   - Only sentinel variables (package-level) are exposed.
//   - Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   - Implementations attach context via fmt.Errorf("...: %w", ErrX);
//     sentinels themselves carry no parameters.
//   - Numeric edge cases (radius=0, scale=0, out-of-range scalars) are NOT
//     errors: they are silently sanitized or produce defined degenerate
//     geometry. Errors exist only for host contract violations: invalid
//     enum values, empty required vectors, strict-broadcast mismatches.
//   - Algorithms never panic; validation panics are confined to option
//     constructors (WithX...).

package polygrid

import "errors"

// ErrUnknownLayout indicates a LayoutKind outside the declared set
// (Rectangle, Triangle, Diamond, Hexagon).
// Usage: if errors.Is(err, ErrUnknownLayout) { /* fix the enum value */ }.
var ErrUnknownLayout = errors.New("polygrid: unknown layout kind")

// ErrUnknownPolygon indicates a PolygonKind outside the declared set
// (Triangle, Square, Hexagon).
var ErrUnknownPolygon = errors.New("polygrid: unknown polygon kind")

// ErrUnknownSizeMode indicates a SizeMode outside the declared set
// (Circumradius, EdgeLength). Size mode is configured via WithSizeMode,
// so this surfaces only when a host forwards a raw integer.
var ErrUnknownSizeMode = errors.New("polygrid: unknown size mode")

// ErrEmptyInput indicates a parameter vector the chosen layout reads has
// length 0. Broadcasting pads short vectors but never invents values.
var ErrEmptyInput = errors.New("polygrid: empty input vector")

// ErrLengthMismatch indicates that BroadcastStrict encountered a vector
// whose length is neither 1 nor the batch length L.
// Never returned under BroadcastRepeatLast or BroadcastCycle.
var ErrLengthMismatch = errors.New("polygrid: input vector length mismatch")

// --- Implementation notes -----------------------------------------------
//
// Wrapping style (required):
//
//	return fmt.Errorf("%s: layout=%d: %w", methodAssemble, layout, ErrUnknownLayout)
//
// This preserves the sentinel for errors.Is while adding a deterministic
// context prefix. Tests assert with errors.Is, never on message text.
//
// Validation order in Assemble:
//  1. kind validity (layout, polygon, size mode),
//  2. required-vector presence (ErrEmptyInput, in declared field order),
//  3. strict broadcast lengths (ErrLengthMismatch).
