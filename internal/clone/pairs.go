package clone

// Enzyme is the metadata record the scorer works over. The locator fully
// populates every field before a record reaches this package.
type Enzyme struct {
	Name string `json:"name"`

	// OverhangOffset is positive for a 5' overhang, negative for a 3'
	// overhang and zero for a blunt cutter
	OverhangOffset int `json:"overhang_offset"`

	RecognitionSite string `json:"recognition_site"`
}

// Blunt is whether the enzyme leaves no overhang.
func (e Enzyme) Blunt() bool {
	return e.OverhangOffset == 0
}

// PairSuggestion is a scored enzyme pair for directional cloning.
type PairSuggestion struct {
	Enzyme1 string `json:"enzyme1"`
	Enzyme2 string `json:"enzyme2"`

	// Score in [0, 1], higher is better
	Score float64 `json:"score"`

	Reasons  []string `json:"reasons"`
	Warnings []string `json:"warnings"`

	BufferCompatible bool `json:"buffer_compatible"`
}

// methylationSensitive enzymes get a Dam/Dcm warning attached to any pair
// they appear in. The set is a fixed reference list; it doesn't change the
// score.
var methylationSensitive = map[string]bool{
	"EcoRI": true,
	"PstI":  true,
	"XbaI":  true,
	"KpnI":  true,
	"XhoI":  true,
	"ClaI":  true,
	"SacI":  true,
	"SacII": true,
}

// ScorePair rates two enzymes as a directional-cloning pair.
//
// Scoring starts neutral at 0.5 and moves on a few heuristics: differing
// overhangs prevent the cut ends from re-closing on themselves, two sticky
// cutters ligate more efficiently than blunt ones, and distinct recognition
// sites keep the two cuts independent. The buffer term is an optimistic
// constant, there's no real buffer data to check against.
func ScorePair(a, b Enzyme) PairSuggestion {
	score := 0.5
	reasons := []string{}
	warnings := []string{}

	if a.OverhangOffset != b.OverhangOffset {
		score += 0.2
		reasons = append(reasons, "different overhang types prevent self-ligation")
	} else {
		score -= 0.15
		warnings = append(warnings, "same overhang type may cause unwanted ligation")
	}

	if !a.Blunt() && !b.Blunt() {
		score += 0.15
		reasons = append(reasons, "both create sticky ends (efficient ligation)")
	}

	// no buffer data available, assume commercial enzymes share a buffer
	score += 0.1
	reasons = append(reasons, "enzymes likely compatible in common buffers")

	if methylationSensitive[a.Name] {
		warnings = append(warnings, a.Name+" may be sensitive to Dam/Dcm methylation")
	}
	if methylationSensitive[b.Name] {
		warnings = append(warnings, b.Name+" may be sensitive to Dam/Dcm methylation")
	}

	if a.RecognitionSite != b.RecognitionSite {
		score += 0.1
		reasons = append(reasons, "different recognition sequences")
	}

	if score > 1.0 {
		score = 1.0
	} else if score < 0.0 {
		score = 0.0
	}

	return PairSuggestion{
		Enzyme1:          a.Name,
		Enzyme2:          b.Name,
		Score:            score,
		Reasons:          reasons,
		Warnings:         warnings,
		BufferCompatible: true,
	}
}
