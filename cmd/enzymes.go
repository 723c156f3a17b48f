package cmd

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/clonelab/clonelab/internal/enzyme"
)

// enzymesCmd is for listing out all the available enzymes usable for
// digesting a sequence. Useful for if the user doesn't know which enzymes
// are available
var enzymesCmd = &cobra.Command{
	Use:   "enzymes [name]",
	Short: "List the enzymes available for digests",
	Long: `Lists the known enzymes by name along with their recognition
sequence (with a caret at the cut position) and the overhang they leave.
Pass a name to filter the list.

	<Name>	<Recognition sequence>	<Overhang>`,
	Run: runEnzymes,
}

func runEnzymes(cmd *cobra.Command, args []string) {
	// from https://golang.org/pkg/text/tabwriter/
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', tabwriter.TabIndent)

	names := enzyme.Names()
	if len(args) > 0 {
		query := args[0]
		filtered := []string{}
		for _, name := range names {
			if strings.Contains(strings.ToLower(name), strings.ToLower(query)) {
				filtered = append(filtered, name)
			}
		}
		if len(filtered) == 0 {
			stderr.Fatalf("failed to find any enzymes for %s\n", query)
		}
		names = filtered
	}

	for _, name := range names {
		e, _ := enzyme.Lookup(name)
		fmt.Fprintf(w, "%s\t%s\t%s\n", e.Name, cutSite(e), overhangLabel(e))
	}
	w.Flush()
}

// cutSite renders a recognition sequence with a caret at the cut index,
// eg GAATTC cut at 1 renders G^AATTC.
func cutSite(e enzyme.Enzyme) string {
	return e.Site[:e.CutIndex] + "^" + e.Site[e.CutIndex:]
}

func overhangLabel(e enzyme.Enzyme) string {
	switch {
	case e.Overhang > 0:
		return fmt.Sprintf("5' overhang (%d)", e.Overhang)
	case e.Overhang < 0:
		return fmt.Sprintf("3' overhang (%d)", -e.Overhang)
	}
	return "blunt"
}

func init() {
	rootCmd.AddCommand(enzymesCmd)
}
