// Package enzyme locates restriction-enzyme cut sites on DNA sequences.
//
// It owns the enzyme metadata table and the recognition-site scan, and
// feeds internal/clone fully-resolved cut offsets; the core never resolves
// an enzyme name itself.
package enzyme

import (
	"fmt"
	"sort"
	"strings"

	"github.com/clonelab/clonelab/internal/clone"
)

// Enzyme is one restriction enzyme: its IUPAC recognition site, where on
// the top strand it cuts within that site, and the signed overhang it
// leaves (positive = 5' overhang, negative = 3' overhang, zero = blunt).
type Enzyme struct {
	Name     string `json:"name"`
	Site     string `json:"recognition_site"`
	CutIndex int    `json:"cut_index"`
	Overhang int    `json:"overhang"`
}

// Meta is the enzyme as the core's scorer sees it.
func (e Enzyme) Meta() clone.Enzyme {
	return clone.Enzyme{
		Name:            e.Name,
		OverhangOffset:  e.Overhang,
		RecognitionSite: e.Site,
	}
}

// enzymes are the common commercially available enzymes this tool knows
// about. Sites and cut indexes are REBASE data, eg EcoRI's G^AATTC is
// {Site: GAATTC, CutIndex: 1, Overhang: 4}.
var enzymes = map[string]Enzyme{
	"AgeI":    {"AgeI", "ACCGGT", 1, 4},
	"ApaI":    {"ApaI", "GGGCCC", 5, -4},
	"BamHI":   {"BamHI", "GGATCC", 1, 4},
	"BglII":   {"BglII", "AGATCT", 1, 4},
	"ClaI":    {"ClaI", "ATCGAT", 2, 2},
	"EcoRI":   {"EcoRI", "GAATTC", 1, 4},
	"EcoRV":   {"EcoRV", "GATATC", 3, 0},
	"HindIII": {"HindIII", "AAGCTT", 1, 4},
	"KpnI":    {"KpnI", "GGTACC", 5, -4},
	"MluI":    {"MluI", "ACGCGT", 1, 4},
	"NcoI":    {"NcoI", "CCATGG", 1, 4},
	"NdeI":    {"NdeI", "CATATG", 2, 2},
	"NheI":    {"NheI", "GCTAGC", 1, 4},
	"NotI":    {"NotI", "GCGGCCGC", 2, 4},
	"PstI":    {"PstI", "CTGCAG", 5, -4},
	"PvuII":   {"PvuII", "CAGCTG", 3, 0},
	"SacI":    {"SacI", "GAGCTC", 5, -4},
	"SacII":   {"SacII", "CCGCGG", 4, -2},
	"SalI":    {"SalI", "GTCGAC", 1, 4},
	"SmaI":    {"SmaI", "CCCGGG", 3, 0},
	"SpeI":    {"SpeI", "ACTAGT", 1, 4},
	"XbaI":    {"XbaI", "TCTAGA", 1, 4},
	"XhoI":    {"XhoI", "CTCGAG", 1, 4},
}

// Names lists every known enzyme, sorted.
func Names() []string {
	names := make([]string, 0, len(enzymes))
	for name := range enzymes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Lookup finds an enzyme by name, case-insensitively.
func Lookup(name string) (Enzyme, bool) {
	if e, ok := enzymes[name]; ok {
		return e, true
	}
	for _, e := range enzymes {
		if strings.EqualFold(e.Name, name) {
			return e, true
		}
	}
	return Enzyme{}, false
}

// Resolve turns a list of enzyme names into enzyme records, skipping names
// it doesn't recognize. An empty resolved set is an error: downstream
// operations must fail fast rather than digest with no enzymes.
func Resolve(names []string) ([]Enzyme, error) {
	if len(names) == 0 {
		return nil, fmt.Errorf("no enzyme names passed: %w", clone.ErrNoEnzymes)
	}

	resolved := []Enzyme{}
	for _, name := range names {
		if e, ok := Lookup(name); ok {
			resolved = append(resolved, e)
		}
	}

	if len(resolved) == 0 {
		return nil, fmt.Errorf("no valid enzymes found from: %s: %w", strings.Join(names, ", "), clone.ErrNoEnzymes)
	}

	sort.Slice(resolved, func(i, j int) bool {
		return resolved[i].Name < resolved[j].Name
	})
	return resolved, nil
}
