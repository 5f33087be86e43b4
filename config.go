// SPDX-License-Identifier: MIT
// Package: polygrid
//
// config.go - internal configuration and deterministic defaults.
//
// Design:
//   - gridConfig is the single source of truth for all assembly knobs.
//   - Defaults are deterministic and named; no globals, no magic literals.
//   - newGridConfig applies options in-order (later overrides earlier).

package polygrid

// DefaultWeldEpsilon is the vertex-weld quantization step: coordinates are
// rounded to multiples of this value before key comparison, so only
// vertices coincident within it merge. 1e-5 is small enough that tiles
// separated by any visible gap never weld, and large enough to absorb the
// floating-point drift of the rotate/scale pipeline at unit radius.
const DefaultWeldEpsilon = 1e-5

// gridConfig aggregates all knobs used by Assemble.
// It is passed by VALUE downstream (immutable to callers).
type gridConfig struct {
	center   bool            // offset layouts to their bounding-box center
	separate bool            // per-tile output; skip welding
	sizeMode SizeMode        // radius interpretation
	policy   BroadcastPolicy // vector alignment policy
	weldEps  float64         // weld quantization step (>0)
}

// newGridConfig constructs a config with deterministic defaults and applies
// all options in order.
// Complexity: O(len(opts)) time, O(1) space.
func newGridConfig(opts ...Option) gridConfig {
	cfg := gridConfig{
		center:   false,               // canonical uncentered frame
		separate: false,               // joined: weld into one mesh per grid
		sizeMode: SizeCircumradius,    // radius = circumscribed-circle radius
		policy:   BroadcastRepeatLast, // host-ecosystem padding convention
		weldEps:  DefaultWeldEpsilon,  // 1e-5
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	return cfg
}
