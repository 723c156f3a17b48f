package cmd

import (
	"github.com/spf13/cobra"

	"github.com/clonelab/clonelab/internal/clone"
	"github.com/clonelab/clonelab/internal/enzyme"
)

var (
	digestSeq      string
	digestEnzymes  []string
	digestCircular bool
	digestFeatures string
	digestOut      string
)

// digestOutput mirrors the digest response shape.
type digestOutput struct {
	Fragments        []clone.Fragment `json:"fragments"`
	TotalFragments   int              `json:"total_fragments"`
	LargestFragment  int              `json:"largest_fragment"`
	SmallestFragment int              `json:"smallest_fragment"`
}

// digestCmd simulates a restriction digest
var digestCmd = &cobra.Command{
	Use:   "digest",
	Short: "Digest a sequence into fragments with restriction enzymes",
	Long: `Simulate a restriction digest: cut the sequence at every site the
named enzymes recognize and report the resulting fragments.

Each fragment carries its slice of the sequence, its coordinates on the
original, its end types, and whichever features from --features fall within
it. Fragment ids can be passed to "clonelab ligate" afterwards.`,
	Run: runDigest,
}

func runDigest(cmd *cobra.Command, args []string) {
	seq, err := readSeq(digestSeq, topologyOf(digestCircular))
	if err != nil {
		stderr.Fatalln(err)
	}

	features, err := readFeatures(digestFeatures)
	if err != nil {
		stderr.Fatalln(err)
	}

	located, err := enzyme.Locate(seq, digestEnzymes)
	if err != nil {
		stderr.Fatalln(err)
	}

	fragments, err := clone.Digest(seq, enzyme.Cuts(located), features)
	if err != nil {
		stderr.Fatalln(err)
	}

	stats := clone.DigestStats(fragments)
	writeJSON(digestOut, digestOutput{
		Fragments:        fragments,
		TotalFragments:   stats.TotalFragments,
		LargestFragment:  stats.LargestFragment,
		SmallestFragment: stats.SmallestFragment,
	})
}

func init() {
	rootCmd.AddCommand(digestCmd)

	digestCmd.Flags().StringVarP(&digestSeq, "seq", "s", "", "sequence to digest, literal bases or @path to a raw sequence file")
	digestCmd.Flags().StringSliceVarP(&digestEnzymes, "enzymes", "e", nil, "enzyme names to digest with")
	digestCmd.Flags().BoolVarP(&digestCircular, "circular", "c", false, "treat the sequence as circular")
	digestCmd.Flags().StringVarP(&digestFeatures, "features", "f", "", "path to a JSON file of features on the sequence")
	digestCmd.Flags().StringVarP(&digestOut, "out", "o", "", "path to write the fragments to (default: stdout)")

	digestCmd.MarkFlagRequired("seq")
	digestCmd.MarkFlagRequired("enzymes")
}
