package clone

// Feature is an annotated half-open interval [Start, End) on a sequence:
// a gene, promoter, origin, etc.
//
// Features belong to the sequence or fragment that carries them. A fragment
// made by digestion or ligation gets derived copies with shifted
// coordinates, never a shared reference to the parent's features.
type Feature struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Type string `json:"type"`

	// Start is 0-indexed, inclusive
	Start int `json:"start"`

	// End is 0-indexed, exclusive
	End int `json:"end"`

	// Strand is 1 for forward, -1 for reverse
	Strand int `json:"strand"`

	// Color for display, hex format
	Color string `json:"color,omitempty"`

	Notes      string            `json:"notes,omitempty"`
	Qualifiers map[string]string `json:"qualifiers,omitempty"`
}

// copy returns a deep copy of the feature. Used because derived fragments
// and ligation products must not share qualifier maps with their parents.
func (f Feature) copy() Feature {
	c := f
	if f.Qualifiers != nil {
		c.Qualifiers = make(map[string]string, len(f.Qualifiers))
		for k, v := range f.Qualifiers {
			c.Qualifiers[k] = v
		}
	}
	return c
}

// FeaturesInRange returns copies of the features overlapping [start, end).
//
// When the sequence is circular and end < start the query range itself
// crosses the origin. The two legs of the split query are [start, seqLen)
// and [0, end), so a feature overlaps iff it starts at or after the range
// start OR ends at or before the range end.
func FeaturesInRange(features []Feature, start, end, seqLen int, circular bool) []Feature {
	overlapping := []Feature{}

	for _, f := range features {
		if circular && end < start {
			if f.Start >= start || f.End <= end {
				overlapping = append(overlapping, f.copy())
			}
		} else if f.End > start && f.Start < end {
			overlapping = append(overlapping, f.copy())
		}
	}

	return overlapping
}
