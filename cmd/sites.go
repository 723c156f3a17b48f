package cmd

import (
	"github.com/spf13/cobra"

	"github.com/clonelab/clonelab/config"
	"github.com/clonelab/clonelab/internal/enzyme"
)

var (
	sitesSeq      string
	sitesEnzymes  []string
	sitesCircular bool
	sitesOut      string
)

// sitesOutput mirrors the enzyme-sites response shape.
type sitesOutput struct {
	Sites map[string][]enzyme.Site `json:"sites"`
}

// sitesCmd finds restriction sites in a sequence
var sitesCmd = &cobra.Command{
	Use:   "sites",
	Short: "Find restriction sites in a sequence",
	Long: `Find every cut site the named enzymes make in a sequence.

Reported positions are 0-indexed cut offsets, not recognition-sequence
starts. Without --enzymes the configured panel of common enzymes is
scanned.`,
	Run: runSites,
}

func runSites(cmd *cobra.Command, args []string) {
	conf := config.New()

	names := sitesEnzymes
	if len(names) == 0 {
		names = conf.Enzymes.Panel
	}

	seq, err := readSeq(sitesSeq, topologyOf(sitesCircular))
	if err != nil {
		stderr.Fatalln(err)
	}

	located, err := enzyme.Locate(seq, names)
	if err != nil {
		stderr.Fatalln(err)
	}

	writeJSON(sitesOut, sitesOutput{Sites: located})
}

func init() {
	rootCmd.AddCommand(sitesCmd)

	sitesCmd.Flags().StringVarP(&sitesSeq, "seq", "s", "", "sequence to scan, literal bases or @path to a raw sequence file")
	sitesCmd.Flags().StringSliceVarP(&sitesEnzymes, "enzymes", "e", nil, "enzyme names to scan for (default: the configured panel)")
	sitesCmd.Flags().BoolVarP(&sitesCircular, "circular", "c", false, "treat the sequence as circular")
	sitesCmd.Flags().StringVarP(&sitesOut, "out", "o", "", "path to write the sites to (default: stdout)")

	sitesCmd.MarkFlagRequired("seq")
}
