package clone

import (
	"fmt"
	"sort"

	"github.com/google/uuid"
)

// EndType classifies one terminus of a fragment.
type EndType string

const (
	// Blunt ends have no overhang and ligate to any other blunt end
	Blunt EndType = "blunt"

	// Sticky ends have single-stranded overhanging bases
	Sticky EndType = "sticky"
)

// Cut is a single 0-indexed cleavage offset and the enzyme that made it.
// The offset already accounts for the enzyme's cleavage position within its
// recognition site (the locator's job, not this package's).
type Cut struct {
	Position int    `json:"position"`
	Enzyme   string `json:"enzyme"`
}

// Fragment is a slice of a parent sequence produced by digestion. Start and
// End are offsets on the parent's coordinate space. A circular fragment
// that wraps the origin reports End = Start + Length, which may exceed the
// parent's length, so End - Start always equals the fragment's true length.
type Fragment struct {
	ID            string    `json:"id"`
	Seq           string    `json:"seq"`
	Length        int       `json:"length"`
	Start         int       `json:"start"`
	End           int       `json:"end"`
	FivePrimeEnd  EndType   `json:"five_prime_end"`
	ThreePrimeEnd EndType   `json:"three_prime_end"`
	Features      []Feature `json:"features"`
}

// CutMap maps each cut offset to the name of the enzyme that cut there.
// When two enzymes share an offset the one latest in (position, name) sort
// order wins. That mirrors the ambiguity in cut bookkeeping upstream: the
// map can only hold one name per offset and the winner is made
// deterministic by sorting rather than meaningful.
func CutMap(cuts []Cut) map[int]string {
	sorted := make([]Cut, len(cuts))
	copy(sorted, cuts)
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].Position != sorted[j].Position {
			return sorted[i].Position < sorted[j].Position
		}
		return sorted[i].Enzyme < sorted[j].Enzyme
	})

	enzymeAt := make(map[int]string, len(sorted))
	for _, c := range sorted {
		enzymeAt[c.Position] = c.Enzyme
	}
	return enzymeAt
}

// Digest splits a sequence into fragments at the given cut positions.
//
// The cuts may come from any number of enzymes in any order; they're
// deduplicated and sorted here. With no cuts at all the whole sequence
// comes back as a single blunt-ended fragment. The emitted fragments are
// pairwise non-overlapping and their lengths always sum to the parent
// sequence's length, in both topologies.
func Digest(seq Sequence, cuts []Cut, features []Feature) ([]Fragment, error) {
	seqLen := len(seq.Seq)
	if seqLen == 0 {
		return nil, fmt.Errorf("empty sequence: %w", ErrInvalidInput)
	}

	for _, c := range cuts {
		if c.Position < 0 || c.Position >= seqLen {
			return nil, fmt.Errorf("cut at %d outside sequence of length %d: %w", c.Position, seqLen, ErrInvalidInput)
		}
	}

	positions := cutPositions(cuts)

	if len(positions) == 0 {
		// no cut occurred, the whole sequence is one blunt fragment
		return []Fragment{{
			ID:            uuid.NewString(),
			Seq:           seq.Seq,
			Length:        seqLen,
			Start:         0,
			End:           seqLen,
			FivePrimeEnd:  Blunt,
			ThreePrimeEnd: Blunt,
			Features:      FeaturesInRange(features, 0, seqLen, seqLen, false),
		}}, nil
	}

	if seq.Topology == Circular {
		return circularFragments(seq, positions, features), nil
	}
	return linearFragments(seq, positions, features), nil
}

// cutPositions is the ascending, duplicate-eliminated union of all cuts.
func cutPositions(cuts []Cut) []int {
	seen := make(map[int]bool, len(cuts))
	positions := []int{}
	for _, c := range cuts {
		if !seen[c.Position] {
			seen[c.Position] = true
			positions = append(positions, c.Position)
		}
	}
	sort.Ints(positions)
	return positions
}

// circularFragments makes one fragment per cut, each spanning to the next
// cut in the list and the last wrapping back around to the first. Every cut
// leaves sticky ends on both sides of the junction.
func circularFragments(seq Sequence, positions []int, features []Feature) []Fragment {
	seqLen := len(seq.Seq)
	fragments := make([]Fragment, 0, len(positions))

	for i := range positions {
		start := positions[i]
		end := positions[(i+1)%len(positions)]

		var fragSeq string
		reportedEnd := end
		if end <= start {
			// fragment wraps past the origin: tail of the sequence
			// followed by its head, End pushed past the parent length
			// so End - Start stays the true length
			fragSeq = seq.Seq[start:] + seq.Seq[:end]
			reportedEnd = end + seqLen
		} else {
			fragSeq = seq.Seq[start:end]
		}

		fragments = append(fragments, Fragment{
			ID:            uuid.NewString(),
			Seq:           fragSeq,
			Length:        len(fragSeq),
			Start:         start,
			End:           reportedEnd,
			FivePrimeEnd:  Sticky,
			ThreePrimeEnd: Sticky,
			Features:      FeaturesInRange(features, start, end, seqLen, true),
		})
	}

	return fragments
}

// linearFragments makes a blunt/sticky leading fragment before the first
// cut, sticky/sticky fragments between cuts, and a sticky/blunt trailing
// fragment after the last. Leading and trailing fragments are skipped when
// they'd be empty.
func linearFragments(seq Sequence, positions []int, features []Feature) []Fragment {
	seqLen := len(seq.Seq)
	fragments := []Fragment{}

	if positions[0] > 0 {
		fragments = append(fragments, Fragment{
			ID:            uuid.NewString(),
			Seq:           seq.Seq[:positions[0]],
			Length:        positions[0],
			Start:         0,
			End:           positions[0],
			FivePrimeEnd:  Blunt,
			ThreePrimeEnd: Sticky,
			Features:      FeaturesInRange(features, 0, positions[0], seqLen, false),
		})
	}

	for i := 0; i < len(positions)-1; i++ {
		start := positions[i]
		end := positions[i+1]

		fragments = append(fragments, Fragment{
			ID:            uuid.NewString(),
			Seq:           seq.Seq[start:end],
			Length:        end - start,
			Start:         start,
			End:           end,
			FivePrimeEnd:  Sticky,
			ThreePrimeEnd: Sticky,
			Features:      FeaturesInRange(features, start, end, seqLen, false),
		})
	}

	if last := positions[len(positions)-1]; last < seqLen {
		fragments = append(fragments, Fragment{
			ID:            uuid.NewString(),
			Seq:           seq.Seq[last:],
			Length:        seqLen - last,
			Start:         last,
			End:           seqLen,
			FivePrimeEnd:  Sticky,
			ThreePrimeEnd: Blunt,
			Features:      FeaturesInRange(features, last, seqLen, seqLen, false),
		})
	}

	return fragments
}

// Stats summarizes a digest's fragments.
type Stats struct {
	TotalFragments   int `json:"total_fragments"`
	LargestFragment  int `json:"largest_fragment"`
	SmallestFragment int `json:"smallest_fragment"`
	AverageFragment  int `json:"average_fragment"`
}

// DigestStats computes summary statistics for a digest's fragments.
func DigestStats(fragments []Fragment) Stats {
	if len(fragments) == 0 {
		return Stats{}
	}

	stats := Stats{
		TotalFragments:   len(fragments),
		LargestFragment:  fragments[0].Length,
		SmallestFragment: fragments[0].Length,
	}

	total := 0
	for _, f := range fragments {
		total += f.Length
		if f.Length > stats.LargestFragment {
			stats.LargestFragment = f.Length
		}
		if f.Length < stats.SmallestFragment {
			stats.SmallestFragment = f.Length
		}
	}
	stats.AverageFragment = total / len(fragments)

	return stats
}
