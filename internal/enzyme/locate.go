package enzyme

import (
	"regexp"
	"sort"
	"strings"

	"github.com/TimothyStiles/poly/checks"
	"github.com/TimothyStiles/poly/transform"

	"github.com/clonelab/clonelab/internal/clone"
)

// Site is one located cut: the 0-indexed offset at which the enzyme
// cleaves (not where its recognition sequence starts) plus the recognition
// footprint and the single-stranded overhang the cut exposes.
type Site struct {
	Enzyme   string `json:"enzyme"`
	Position int    `json:"position"`
	Strand   int    `json:"strand"`

	RecognitionStart int `json:"recognition_start"`
	RecognitionEnd   int `json:"recognition_end"`

	OverhangSeq string `json:"overhang_seq"`
}

// Locate finds every cut site for the named enzymes on a sequence. Cut
// offsets come back 0-indexed, sorted and deduplicated per enzyme. On
// circular sequences sites spanning the origin are found and reported
// modulo the sequence length.
func Locate(seq clone.Sequence, names []string) (map[string][]Site, error) {
	resolved, err := Resolve(names)
	if err != nil {
		return nil, err
	}

	located := make(map[string][]Site, len(resolved))
	for _, e := range resolved {
		located[e.Name] = e.sites(seq)
	}
	return located, nil
}

// SiteCounts is the number of cuts each named enzyme makes in a sequence.
func SiteCounts(seq clone.Sequence, names []string) (map[string]int, error) {
	located, err := Locate(seq, names)
	if err != nil {
		return nil, err
	}

	counts := make(map[string]int, len(located))
	for name, sites := range located {
		counts[name] = len(sites)
	}
	return counts, nil
}

// SingleCutters are the named enzymes that cut a sequence exactly once,
// sorted by name. Single cutters leave the rest of the sequence intact,
// which is what directional cloning wants.
func SingleCutters(seq clone.Sequence, names []string) ([]string, error) {
	counts, err := SiteCounts(seq, names)
	if err != nil {
		return nil, err
	}

	single := []string{}
	for name, count := range counts {
		if count == 1 {
			single = append(single, name)
		}
	}
	sort.Strings(single)
	return single, nil
}

// Cuts flattens located sites into the cut list the fragment builder
// consumes. Enzymes are walked in sorted-name order so that when two
// enzymes cut at the same offset, which name is kept is deterministic.
func Cuts(located map[string][]Site) []clone.Cut {
	names := make([]string, 0, len(located))
	for name := range located {
		names = append(names, name)
	}
	sort.Strings(names)

	cuts := []clone.Cut{}
	for _, name := range names {
		for _, site := range located[name] {
			cuts = append(cuts, clone.Cut{Position: site.Position, Enzyme: name})
		}
	}
	return cuts
}

// sites scans one sequence for one enzyme.
func (e Enzyme) sites(seq clone.Sequence) []Site {
	seqLen := len(seq.Seq)
	siteLen := len(e.Site)
	if seqLen < siteLen {
		return []Site{}
	}

	circular := seq.Topology == clone.Circular

	// on circular sequences append a site-length prefix so recognition
	// sequences spanning the origin are still seen; every window start
	// in [0, seqLen) is visited exactly once
	scan := seq.Seq
	if circular {
		scan += seq.Seq[:siteLen-1]
	}

	re := regexp.MustCompile("^" + recogRegex(e.Site) + "$")

	found := []Site{}
	for pos := 0; pos+siteLen <= len(scan); pos++ {
		if re.MatchString(scan[pos : pos+siteLen]) {
			found = append(found, e.siteAt(seq, pos, 1))
		}
	}

	// non-palindromic sites also bind the reverse strand; palindromes
	// would just double-report themselves
	if !checks.IsPalindromic(e.Site) {
		revScan := transform.ReverseComplement(seq.Seq)
		if circular {
			revScan += transform.ReverseComplement(seq.Seq)[:siteLen-1]
		}
		for pos := 0; pos+siteLen <= len(revScan); pos++ {
			if re.MatchString(revScan[pos : pos+siteLen]) {
				// recognition start mapped back onto the forward strand
				fwd := seqLen - pos - siteLen
				fwd = ((fwd % seqLen) + seqLen) % seqLen
				found = append(found, e.siteAt(seq, fwd, -1))
			}
		}
	}

	// dedupe by cut offset and report in ascending cut order. A cut at
	// the very end of a linear molecule separates nothing, drop it.
	seen := map[int]bool{}
	sites := []Site{}
	for _, s := range found {
		if !circular && s.Position >= seqLen {
			continue
		}
		if !seen[s.Position] {
			seen[s.Position] = true
			sites = append(sites, s)
		}
	}
	sort.Slice(sites, func(i, j int) bool {
		return sites[i].Position < sites[j].Position
	})
	return sites
}

// siteAt builds the Site for a recognition sequence starting at
// recognitionStart on the forward strand.
func (e Enzyme) siteAt(seq clone.Sequence, recognitionStart, strand int) Site {
	seqLen := len(seq.Seq)
	circular := seq.Topology == clone.Circular

	cutIndex := e.CutIndex
	if strand < 0 {
		// the cut index mirrors across the site on the reverse strand
		cutIndex = len(e.Site) - e.CutIndex
	}

	cut := recognitionStart + cutIndex
	if circular {
		cut %= seqLen
	} else if cut > seqLen {
		cut = seqLen
	}

	var overhang string
	switch {
	case e.Overhang > 0:
		overhang = substr(seq.Seq, cut, cut+e.Overhang, circular)
	case e.Overhang < 0:
		overhang = substr(seq.Seq, cut+e.Overhang, cut, circular)
	}

	return Site{
		Enzyme:           e.Name,
		Position:         cut,
		Strand:           strand,
		RecognitionStart: recognitionStart,
		RecognitionEnd:   recognitionStart + len(e.Site),
		OverhangSeq:      overhang,
	}
}

// substr slices [start, end) out of a sequence, wrapping modulo length on
// circular sequences and clamping to the bounds on linear ones.
func substr(seq string, start, end int, circular bool) string {
	seqLen := len(seq)
	if seqLen == 0 || end <= start {
		return ""
	}

	if !circular {
		if start < 0 {
			start = 0
		}
		if end > seqLen {
			end = seqLen
		}
		if end <= start {
			return ""
		}
		return seq[start:end]
	}

	var b strings.Builder
	for i := start; i < end; i++ {
		b.WriteByte(seq[((i%seqLen)+seqLen)%seqLen])
	}
	return b.String()
}

// recogRegex turns an IUPAC recognition sequence into a regex for
// searching the template sequence for recognition sites.
func recogRegex(recog string) string {
	regexDecode := map[rune]string{
		'A': "A",
		'C': "C",
		'G': "G",
		'T': "T",
		'M': "(A|C)",
		'R': "(A|G)",
		'W': "(A|T)",
		'Y': "(C|T)",
		'S': "(C|G)",
		'K': "(G|T)",
		'H': "(A|C|T)",
		'D': "(A|G|T)",
		'V': "(A|C|G)",
		'B': "(C|G|T)",
		'N': "(A|C|G|T)",
		'X': "(A|C|G|T)",
	}

	var decoded strings.Builder
	for _, c := range recog {
		decoded.WriteString(regexDecode[c])
	}
	return decoded.String()
}
