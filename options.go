// SPDX-License-Identifier: MIT
// Package: polygrid
//
// options.go - functional options for grid assembly.
//
// Contract (strict):
//   - Options are functional (type Option func(*gridConfig)).
//   - Option constructors VALIDATE and PANIC on meaningless inputs
//     (programmer error); Assemble itself never panics.
//   - No hidden globals; everything flows through gridConfig.
//   - Defaults are deterministic and documented in config.go.

package polygrid

import "math"

// Option customizes grid assembly by mutating a gridConfig instance before
// evaluation begins.
// Complexity: applying N options costs O(N) time, O(1) space.
type Option func(*gridConfig)

// WithCenter offsets every lattice arrangement by the negative of its
// bounding-box midpoint, so the layout is centered at the origin.
// Complexity: O(1) here; adds one O(points) pass per evaluation.
func WithCenter() Option {
	return func(c *gridConfig) {
		c.center = true
	}
}

// WithSeparate switches to per-tile output: the batch carries tile-local
// vertices/edges/faces and no welded meshes are computed.
// Default is joined output (one welded Mesh per grid).
func WithSeparate() Option {
	return func(c *gridConfig) {
		c.separate = true
	}
}

// WithSizeMode selects how the Radius input is interpreted
// (circumradius vs. edge length). Panics on an invalid mode; a host
// forwarding untrusted integers should pre-check SizeMode.IsValid.
func WithSizeMode(m SizeMode) Option {
	if !m.IsValid() {
		// Fail fast: option constructors validate and panic.
		panic("polygrid: WithSizeMode(invalid mode)")
	}
	return func(c *gridConfig) {
		c.sizeMode = m
	}
}

// WithBroadcastPolicy selects how parameter vectors of differing lengths
// are aligned (repeat-last, cycle, or strict). Panics on an undeclared
// policy value.
func WithBroadcastPolicy(p BroadcastPolicy) Option {
	if !p.isValid() {
		panic("polygrid: WithBroadcastPolicy(invalid policy)")
	}
	return func(c *gridConfig) {
		c.policy = p
	}
}

// WithWeldEpsilon overrides the vertex-weld quantization step.
// Two vertices merge iff every coordinate rounds to the same multiple of
// eps. Panics if eps is not a positive finite number.
func WithWeldEpsilon(eps float64) Option {
	if math.IsNaN(eps) || math.IsInf(eps, 0) || eps <= 0 {
		panic("polygrid: WithWeldEpsilon(eps must be positive and finite)")
	}
	return func(c *gridConfig) {
		c.weldEps = eps
	}
}
