package cmd

import (
	"github.com/spf13/cobra"

	"github.com/clonelab/clonelab/config"
	"github.com/clonelab/clonelab/internal/clone"
	"github.com/clonelab/clonelab/internal/enzyme"
)

var (
	pairsVector       string
	pairsInsert       string
	pairsEnzymes      []string
	pairsLinearVector bool
	pairsOut          string
)

// pairsOutput mirrors the enzyme-pair response shape.
type pairsOutput struct {
	Pairs []clone.PairSuggestion `json:"pairs"`
}

// pairsCmd suggests enzyme pairs for directional cloning
var pairsCmd = &cobra.Command{
	Use:   "pairs",
	Short: "Suggest enzyme pairs for cloning an insert into a vector",
	Long: `Suggest pairs of enzymes for directional cloning: enzymes that cut
both the vector and the insert exactly once, paired up and scored by how
cleanly the resulting ends will ligate. An empty list means fewer than two
of the scanned enzymes single-cut both sequences.

The vector is treated as circular unless --linear-vector is passed; the
insert is always treated as linear.`,
	Run: runPairs,
}

func runPairs(cmd *cobra.Command, args []string) {
	conf := config.New()

	names := pairsEnzymes
	if len(names) == 0 {
		names = conf.Enzymes.Panel
	}

	vector, err := readSeq(pairsVector, topologyOf(!pairsLinearVector))
	if err != nil {
		stderr.Fatalln(err)
	}
	insert, err := readSeq(pairsInsert, clone.Linear)
	if err != nil {
		stderr.Fatalln(err)
	}

	pairs, err := enzyme.SuggestPairs(vector, insert, names)
	if err != nil {
		stderr.Fatalln(err)
	}

	writeJSON(pairsOut, pairsOutput{Pairs: pairs})
}

func init() {
	rootCmd.AddCommand(pairsCmd)

	pairsCmd.Flags().StringVarP(&pairsVector, "vector", "v", "", "vector sequence, literal bases or @path to a raw sequence file")
	pairsCmd.Flags().StringVarP(&pairsInsert, "insert", "i", "", "insert sequence, literal bases or @path to a raw sequence file")
	pairsCmd.Flags().StringSliceVarP(&pairsEnzymes, "enzymes", "e", nil, "enzyme names to consider (default: the configured panel)")
	pairsCmd.Flags().BoolVar(&pairsLinearVector, "linear-vector", false, "treat the vector as linear instead of circular")
	pairsCmd.Flags().StringVarP(&pairsOut, "out", "o", "", "path to write the suggestions to (default: stdout)")

	pairsCmd.MarkFlagRequired("vector")
	pairsCmd.MarkFlagRequired("insert")
}
