package cmd

import (
	"github.com/spf13/cobra"

	"github.com/clonelab/clonelab/config"
	"github.com/clonelab/clonelab/internal/clone"
	"github.com/clonelab/clonelab/internal/enzyme"
)

var (
	cloneVector       string
	cloneInsert       string
	cloneEnzymes      []string
	cloneLinearVector bool
	cloneFeatures     string
	cloneRatio        float64
	cloneOut          string
)

// cloneOutput is the full digest-then-ligate report.
type cloneOutput struct {
	// Junctions maps each cut offset on the vector to the enzyme that
	// cut there
	Junctions map[int]string `json:"junctions"`

	VectorFragments []clone.Fragment `json:"vector_fragments"`
	InsertFragments []clone.Fragment `json:"insert_fragments"`

	// BackboneID and InsertID are the fragments picked for the ligation
	BackboneID string `json:"backbone_id"`
	InsertID   string `json:"insert_id"`

	Compatibility clone.Compatibility `json:"compatibility"`

	Products       []clone.Product `json:"products"`
	DesiredProduct *clone.Product  `json:"desired_product,omitempty"`
}

// cloneCmd runs the whole digest-then-ligate workflow
var cloneCmd = &cobra.Command{
	Use:   "clone",
	Short: "Digest a vector and an insert, then predict their ligation products",
	Long: `Run a whole cloning simulation in one shot: cut both the vector
and the insert with the named enzymes, take the largest fragment of each as
the backbone and insert, check their ends, and predict the ligation
products.

For finer control over which fragments get ligated, run "clonelab digest"
and "clonelab ligate" separately.`,
	Run: runClone,
}

func runClone(cmd *cobra.Command, args []string) {
	conf := config.New()

	vectorSeq, err := readSeq(cloneVector, topologyOf(!cloneLinearVector))
	if err != nil {
		stderr.Fatalln(err)
	}
	insertSeq, err := readSeq(cloneInsert, clone.Linear)
	if err != nil {
		stderr.Fatalln(err)
	}

	features, err := readFeatures(cloneFeatures)
	if err != nil {
		stderr.Fatalln(err)
	}

	vectorSites, err := enzyme.Locate(vectorSeq, cloneEnzymes)
	if err != nil {
		stderr.Fatalln(err)
	}
	insertSites, err := enzyme.Locate(insertSeq, cloneEnzymes)
	if err != nil {
		stderr.Fatalln(err)
	}

	vectorCuts := enzyme.Cuts(vectorSites)
	vectorFrags, err := clone.Digest(vectorSeq, vectorCuts, features)
	if err != nil {
		stderr.Fatalln(err)
	}
	insertFrags, err := clone.Digest(insertSeq, enzyme.Cuts(insertSites), nil)
	if err != nil {
		stderr.Fatalln(err)
	}

	// stash every fragment, then pull the two being ligated back out the
	// way a digest-then-ligate caller would
	var store clone.Store = clone.NewMemStore()
	for _, frag := range vectorFrags {
		store.Put(frag.ID, frag)
	}
	for _, frag := range insertFrags {
		store.Put(frag.ID, frag)
	}

	backbone, ok := store.Get(largest(vectorFrags).ID)
	if !ok {
		stderr.Fatalln("backbone fragment missing from the store")
	}
	insert, ok := store.Get(largest(insertFrags).ID)
	if !ok {
		stderr.Fatalln("insert fragment missing from the store")
	}

	compat := clone.CheckCompatibility(backbone, insert)
	if !compat.Compatible {
		stderr.Fatalf("fragments cannot be ligated: %v\n", compat.Warnings)
	}

	ratio := cloneRatio
	if !cmd.Flags().Changed("ratio") {
		ratio = conf.Ligation.MolarRatio
	}

	products, err := clone.Ligate(backbone, insert, ratio)
	if err != nil {
		stderr.Fatalln(err)
	}

	out := cloneOutput{
		Junctions:       clone.CutMap(vectorCuts),
		VectorFragments: vectorFrags,
		InsertFragments: insertFrags,
		BackboneID:      backbone.ID,
		InsertID:        insert.ID,
		Compatibility:   compat,
		Products:        products,
	}
	for i := range products {
		if products[i].Desired {
			out.DesiredProduct = &products[i]
			break
		}
	}

	writeJSON(cloneOut, out)
}

// largest returns the longest fragment of a digest.
func largest(fragments []clone.Fragment) clone.Fragment {
	best := fragments[0]
	for _, frag := range fragments[1:] {
		if frag.Length > best.Length {
			best = frag
		}
	}
	return best
}

func init() {
	rootCmd.AddCommand(cloneCmd)

	cloneCmd.Flags().StringVarP(&cloneVector, "vector", "v", "", "vector sequence, literal bases or @path to a raw sequence file")
	cloneCmd.Flags().StringVarP(&cloneInsert, "insert", "i", "", "insert sequence, literal bases or @path to a raw sequence file")
	cloneCmd.Flags().StringSliceVarP(&cloneEnzymes, "enzymes", "e", nil, "enzyme names to digest with")
	cloneCmd.Flags().BoolVar(&cloneLinearVector, "linear-vector", false, "treat the vector as linear instead of circular")
	cloneCmd.Flags().StringVarP(&cloneFeatures, "features", "f", "", "path to a JSON file of features on the vector")
	cloneCmd.Flags().Float64VarP(&cloneRatio, "ratio", "r", 3.0, "insert:vector molar ratio")
	cloneCmd.Flags().StringVarP(&cloneOut, "out", "o", "", "path to write the report to (default: stdout)")

	cloneCmd.MarkFlagRequired("vector")
	cloneCmd.MarkFlagRequired("insert")
	cloneCmd.MarkFlagRequired("enzymes")
}
