package enzyme

import (
	"sort"

	"github.com/clonelab/clonelab/internal/clone"
)

// SuggestPairs scores enzyme pairs for cloning an insert into a vector.
//
// Only enzymes that cut both sequences exactly once are candidates, so
// neither molecule gets shredded. With fewer than two common single
// cutters there is nothing to pair and the list comes back empty. Every
// unordered pair among the candidates is scored and the suggestions are
// returned best first.
func SuggestPairs(vector, insert clone.Sequence, names []string) ([]clone.PairSuggestion, error) {
	vectorSingle, err := SingleCutters(vector, names)
	if err != nil {
		return nil, err
	}
	insertSingle, err := SingleCutters(insert, names)
	if err != nil {
		return nil, err
	}

	insertSet := make(map[string]bool, len(insertSingle))
	for _, name := range insertSingle {
		insertSet[name] = true
	}

	common := []string{}
	for _, name := range vectorSingle {
		if insertSet[name] {
			common = append(common, name)
		}
	}

	if len(common) < 2 {
		return []clone.PairSuggestion{}, nil
	}

	pairs := []clone.PairSuggestion{}
	for i := 0; i < len(common); i++ {
		for j := i + 1; j < len(common); j++ {
			first, _ := Lookup(common[i])
			second, _ := Lookup(common[j])
			pairs = append(pairs, clone.ScorePair(first.Meta(), second.Meta()))
		}
	}

	sort.SliceStable(pairs, func(i, j int) bool {
		return pairs[i].Score > pairs[j].Score
	})
	return pairs, nil
}
