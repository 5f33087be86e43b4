// SPDX-License-Identifier: MIT
// Package: polygrid
//
// broadcast.go - vectorized parameter alignment.
//
// Canonical model:
//   - Every scalar input arrives as an ordered vector; the batch length L is
//     the maximum length among the vectors the layout actually reads.
//   - Shorter vectors are padded to L according to BroadcastPolicy before
//     any geometry runs; geometry code never sees ragged inputs.
//
// Determinism:
//   - Alignment is a pure function of (input, L, policy); padded slices are
//     fresh allocations, never aliases of the caller's data beyond the
//     copied prefix.

package polygrid

// BroadcastPolicy selects how parameter vectors shorter than the batch
// length L are extended.
type BroadcastPolicy int

const (
	// BroadcastRepeatLast pads a short vector by repeating its last element
	// (the node-graph host convention, "match long repeat").
	BroadcastRepeatLast BroadcastPolicy = iota
	// BroadcastCycle pads by cycling through the vector from its start.
	BroadcastCycle
	// BroadcastStrict accepts only vectors of length 1 or exactly L and
	// fails with ErrLengthMismatch otherwise.
	BroadcastStrict
)

func (p BroadcastPolicy) isValid() bool {
	return p >= BroadcastRepeatLast && p <= BroadcastStrict
}

func (p BroadcastPolicy) String() string {
	switch p {
	case BroadcastRepeatLast:
		return "repeat-last"
	case BroadcastCycle:
		return "cycle"
	case BroadcastStrict:
		return "strict"
	default:
		return "unknown"
	}
}

// batchLen returns the maximum of the given vector lengths.
// Callers pass only the lengths of vectors the layout reads.
func batchLen(lens ...int) int {
	max := 0
	for _, n := range lens {
		if n > max {
			max = n
		}
	}

	return max
}

// alignVec extends in to exactly L elements under the given policy.
// Preconditions (enforced by Assemble): len(in) ≥ 1, L ≥ 1.
// Returns ErrLengthMismatch only under BroadcastStrict.
// Complexity: O(L) time and space.
func alignVec[T any](in []T, L int, policy BroadcastPolicy) ([]T, error) {
	if len(in) == L {
		// Copy anyway: downstream must never alias caller-owned storage.
		out := make([]T, L)
		copy(out, in)

		return out, nil
	}
	if policy == BroadcastStrict && len(in) != 1 {
		return nil, ErrLengthMismatch
	}

	out := make([]T, L)
	copy(out, in)
	for i := len(in); i < L; i++ {
		if policy == BroadcastCycle {
			out[i] = in[i%len(in)]
		} else {
			// RepeatLast (and Strict with a single element) pad with the
			// most recent value.
			out[i] = in[len(in)-1]
		}
	}

	return out, nil
}
