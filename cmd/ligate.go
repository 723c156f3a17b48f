package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/clonelab/clonelab/config"
	"github.com/clonelab/clonelab/internal/clone"
)

var (
	ligateVector   string
	ligateVectorID string
	ligateInsert   string
	ligateInsertID string
	ligateRatio    float64
	ligateOut      string
)

// ligateOutput mirrors the ligation response shape.
type ligateOutput struct {
	Products       []clone.Product `json:"products"`
	DesiredProduct *clone.Product  `json:"desired_product,omitempty"`
}

// ligateCmd predicts ligation products
var ligateCmd = &cobra.Command{
	Use:   "ligate",
	Short: "Predict the products of ligating an insert into a vector fragment",
	Long: `Predict the outcomes of a ligation reaction between two digest
fragments: the intended construct, the insert flipped, the vector closing on
itself, and, at high molar ratios, a multi-insert concatemer. Each product
carries a relative probability, normalized over the reaction.

The vector and insert come from files written by "clonelab digest". When a
file holds more than one fragment, pick one with --vector-id/--insert-id.`,
	Run: runLigate,
}

func runLigate(cmd *cobra.Command, args []string) {
	// the --ratio flag is bound to viper, so the config covers both the
	// flag and settings.yaml
	ratio := config.New().Ligation.MolarRatio

	vector, err := readFragment(ligateVector, ligateVectorID)
	if err != nil {
		stderr.Fatalln(err)
	}
	insert, err := readFragment(ligateInsert, ligateInsertID)
	if err != nil {
		stderr.Fatalln(err)
	}

	if compat := clone.CheckCompatibility(vector, insert); !compat.Compatible {
		stderr.Fatalf("fragments cannot be ligated: %v\n", compat.Warnings)
	}

	products, err := clone.Ligate(vector, insert, ratio)
	if err != nil {
		stderr.Fatalln(err)
	}

	out := ligateOutput{Products: products}
	for i := range products {
		if products[i].Desired {
			out.DesiredProduct = &products[i]
			break
		}
	}

	writeJSON(ligateOut, out)
}

func init() {
	rootCmd.AddCommand(ligateCmd)

	ligateCmd.Flags().StringVarP(&ligateVector, "vector", "v", "", "path to a JSON file with the vector fragment")
	ligateCmd.Flags().StringVar(&ligateVectorID, "vector-id", "", "id of the vector fragment within the file")
	ligateCmd.Flags().StringVarP(&ligateInsert, "insert", "i", "", "path to a JSON file with the insert fragment")
	ligateCmd.Flags().StringVar(&ligateInsertID, "insert-id", "", "id of the insert fragment within the file")
	ligateCmd.Flags().Float64VarP(&ligateRatio, "ratio", "r", 3.0, "insert:vector molar ratio")
	ligateCmd.Flags().StringVarP(&ligateOut, "out", "o", "", "path to write the products to (default: stdout)")

	ligateCmd.MarkFlagRequired("vector")
	ligateCmd.MarkFlagRequired("insert")

	viper.BindPFlag("ligation.molar-ratio", ligateCmd.Flags().Lookup("ratio"))
}
