// Package clone simulates restriction-enzyme cloning over DNA sequences:
// splitting a sequence into fragments at known cut positions, mapping
// annotated features onto those fragments, and predicting the products of
// ligating a vector fragment to an insert fragment.
//
// The package never locates cut sites itself. A locator (see
// internal/enzyme) resolves enzyme names to cut offsets and hands them in;
// everything here is a pure function over caller-owned inputs.
package clone

import (
	"fmt"
	"strings"

	"github.com/TimothyStiles/poly/checks"
)

// Topology is whether a sequence has two free ends or none.
type Topology string

const (
	// Linear sequences have a 5' and a 3' free end
	Linear Topology = "linear"

	// Circular sequences have no ends, coordinates wrap modulo length
	Circular Topology = "circular"
)

// Sequence is an uppercase DNA string paired with its topology.
type Sequence struct {
	Seq      string   `json:"seq"`
	Topology Topology `json:"topology"`
}

// NewSequence normalizes a raw sequence to uppercase and checks that it only
// holds A, C, G, T or N bases.
func NewSequence(seq string, topology Topology) (Sequence, error) {
	normalized := strings.ToUpper(strings.Join(strings.Fields(seq), ""))
	if normalized == "" {
		return Sequence{}, fmt.Errorf("empty sequence: %w", ErrInvalidInput)
	}

	for i, base := range normalized {
		switch base {
		case 'A', 'C', 'G', 'T', 'N':
		default:
			return Sequence{}, fmt.Errorf("unexpected base %q at index %d: %w", base, i, ErrInvalidInput)
		}
	}

	if topology != Linear && topology != Circular {
		return Sequence{}, fmt.Errorf("unknown topology %q: %w", topology, ErrInvalidInput)
	}

	return Sequence{Seq: normalized, Topology: topology}, nil
}

// Length of the sequence in basepairs.
func (s Sequence) Length() int {
	return len(s.Seq)
}

// GC is the sequence's GC content as a percentage.
func (s Sequence) GC() float64 {
	if s.Seq == "" {
		return 0
	}
	return checks.GcContent(s.Seq) * 100.0
}
