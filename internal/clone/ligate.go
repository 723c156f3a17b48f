package clone

import (
	"fmt"
	"sort"

	"github.com/TimothyStiles/poly/transform"
	"github.com/google/uuid"
)

// ProductType tags a predicted ligation outcome.
type ProductType string

const (
	// Correct is the vector followed by the insert in its given orientation
	Correct ProductType = "correct"

	// Reverse is the vector followed by the insert's reverse complement
	Reverse ProductType = "reverse"

	// SelfLigation is the vector closing on itself with no insert
	SelfLigation ProductType = "self-ligation"

	// Concatemer is the vector with tandem copies of the insert
	Concatemer ProductType = "concatemer"

	// Other is reserved for products that fit none of the above
	Other ProductType = "other"
)

// relative base weights for each product. These are a deliberate
// simplification: they don't vary with molar ratio beyond the concatemer
// being switched on above concatemerRatio.
const (
	correctWeight    = 0.6
	reverseWeight    = 0.2
	selfWeight       = 0.15
	concatemerWeight = 0.05

	// concatemerRatio is the insert:vector molar ratio above which a
	// concatemer product is predicted
	concatemerRatio = 2.0
)

// Product is a predicted outcome of a ligation reaction.
type Product struct {
	ID   string      `json:"id"`
	Type ProductType `json:"type"`
	Seq  string      `json:"seq"`

	Length int `json:"length"`

	// Probability is relative to the reaction's other products,
	// normalized so all products sum to 1
	Probability float64 `json:"probability"`

	// FragmentIDs are the fragments this product was built from
	FragmentIDs []string `json:"fragment_ids"`

	Description string `json:"description"`

	// Desired marks the single intended product of the reaction
	Desired bool `json:"is_desired"`

	Features []Feature `json:"features"`
}

// Compatibility is the result of checking two fragment ends against each
// other before a ligation.
type Compatibility struct {
	Compatible bool     `json:"compatible"`
	Warnings   []string `json:"warnings"`

	// Efficiency is "high" only when the ends are compatible with no warnings
	Efficiency string `json:"ligation_efficiency"`
}

// CheckCompatibility gates a ligation on a's 3' end joining b's 5' end.
// Blunt-to-blunt works but inefficiently; a sticky end can only take
// another sticky end.
func CheckCompatibility(a, b Fragment) Compatibility {
	compatible := true
	warnings := []string{}

	if a.ThreePrimeEnd == Blunt && b.FivePrimeEnd == Blunt {
		warnings = append(warnings, "blunt-end ligation has lower efficiency")
	}

	if a.ThreePrimeEnd == Sticky && b.FivePrimeEnd != Sticky {
		compatible = false
		warnings = append(warnings, "incompatible end types")
	}

	efficiency := "low"
	if compatible && len(warnings) == 0 {
		efficiency = "high"
	}

	return Compatibility{
		Compatible: compatible,
		Warnings:   warnings,
		Efficiency: efficiency,
	}
}

// Ligate predicts the products of ligating an insert fragment into a vector
// fragment, ordered by descending probability.
//
// Three products are always predicted: the correct orientation, the insert
// reversed, and the vector self-ligating without the insert. Above a 2:1
// insert:vector molar ratio a two-copy concatemer is predicted as well.
// Probabilities are renormalized over whichever products were generated,
// and exactly one product, the correct one, is flagged Desired no matter
// where it sorts.
func Ligate(vector, insert Fragment, molarRatio float64) ([]Product, error) {
	if molarRatio <= 0 {
		return nil, fmt.Errorf("molar ratio must be positive, got %v: %w", molarRatio, ErrInvalidInput)
	}

	if compat := CheckCompatibility(vector, insert); !compat.Compatible {
		return nil, fmt.Errorf(
			"vector %s end (%s) cannot join insert %s end (%s): %w",
			vector.ID, vector.ThreePrimeEnd, insert.ID, insert.FivePrimeEnd, ErrIncompatibleEnds,
		)
	}

	products := []Product{
		join(vector, insert, joinSpec{
			productType: Correct,
			description: "vector backbone with insert in correct orientation",
			desired:     true,
			weight:      correctWeight,
		}),
		join(vector, insert, joinSpec{
			productType:   Reverse,
			description:   "vector backbone with insert in reverse orientation",
			weight:        reverseWeight,
			reverseInsert: true,
		}),
		selfLigation(vector),
	}

	if molarRatio > concatemerRatio {
		products = append(products, join(vector, insert, joinSpec{
			productType:  Concatemer,
			description:  "vector with multiple insert copies",
			weight:       concatemerWeight,
			doubleInsert: true,
		}))
	}

	total := 0.0
	for _, p := range products {
		total += p.Probability
	}
	for i := range products {
		products[i].Probability /= total
	}

	sort.SliceStable(products, func(i, j int) bool {
		return products[i].Probability > products[j].Probability
	})

	return products, nil
}

// joinSpec is how one vector+insert product should be assembled.
type joinSpec struct {
	productType   ProductType
	description   string
	desired       bool
	weight        float64
	reverseInsert bool
	doubleInsert  bool
}

// join concatenates a vector and insert into a single product, remapping
// the insert's features past the vector and flipping their strand if the
// insert was reverse-complemented.
func join(vector, insert Fragment, spec joinSpec) Product {
	insertSeq := insert.Seq
	if spec.reverseInsert {
		insertSeq = transform.ReverseComplement(insertSeq)
	}

	seq := vector.Seq + insertSeq
	if spec.doubleInsert {
		seq += insertSeq
	}

	features := make([]Feature, 0, len(vector.Features)+2*len(insert.Features))
	for _, f := range vector.Features {
		features = append(features, f.copy())
	}
	features = append(features, shiftFeatures(insert.Features, vector.Length, spec.reverseInsert, false)...)
	if spec.doubleInsert {
		features = append(features, shiftFeatures(insert.Features, vector.Length+insert.Length, spec.reverseInsert, true)...)
	}

	return Product{
		ID:          uuid.NewString(),
		Type:        spec.productType,
		Seq:         seq,
		Length:      len(seq),
		Probability: spec.weight,
		FragmentIDs: []string{vector.ID, insert.ID},
		Description: spec.description,
		Desired:     spec.desired,
		Features:    features,
	}
}

// selfLigation is the vector alone, its own features unshifted.
func selfLigation(vector Fragment) Product {
	features := make([]Feature, 0, len(vector.Features))
	for _, f := range vector.Features {
		features = append(features, f.copy())
	}

	return Product{
		ID:          uuid.NewString(),
		Type:        SelfLigation,
		Seq:         vector.Seq,
		Length:      vector.Length,
		Probability: selfWeight,
		FragmentIDs: []string{vector.ID},
		Description: "vector self-ligation (no insert)",
		Features:    features,
	}
}

// shiftFeatures copies features forward by offset basepairs, negating their
// strand if the insert was reversed. secondCopy renames the copies so the
// two halves of a concatemer stay distinguishable.
func shiftFeatures(features []Feature, offset int, reversed, secondCopy bool) []Feature {
	shifted := make([]Feature, 0, len(features))

	for _, f := range features {
		c := f.copy()
		c.Start += offset
		c.End += offset
		if reversed {
			c.Strand = -c.Strand
		}
		if secondCopy {
			c.ID += "_copy2"
			c.Name += " (copy 2)"
		}
		shifted = append(shifted, c)
	}

	return shifted
}
