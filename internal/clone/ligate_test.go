package clone

import (
	"errors"
	"math"
	"reflect"
	"testing"
)

func testVector() Fragment {
	return Fragment{
		ID:            "vec1",
		Seq:           "AAATTT",
		Length:        6,
		Start:         0,
		End:           6,
		FivePrimeEnd:  Sticky,
		ThreePrimeEnd: Sticky,
		Features: []Feature{
			{ID: "ori", Name: "origin", Start: 1, End: 3, Strand: 1},
		},
	}
}

func testInsert() Fragment {
	return Fragment{
		ID:            "ins1",
		Seq:           "GGGCAT",
		Length:        6,
		Start:         0,
		End:           6,
		FivePrimeEnd:  Sticky,
		ThreePrimeEnd: Sticky,
		Features: []Feature{
			{ID: "gene", Name: "gfp", Start: 0, End: 4, Strand: 1},
		},
	}
}

func Test_CheckCompatibility(t *testing.T) {
	frag := func(five, three EndType) Fragment {
		return Fragment{FivePrimeEnd: five, ThreePrimeEnd: three}
	}

	type args struct {
		a Fragment
		b Fragment
	}
	tests := []struct {
		name           string
		args           args
		wantCompatible bool
		wantWarnings   int
		wantEfficiency string
	}{
		{
			"sticky to sticky",
			args{frag(Sticky, Sticky), frag(Sticky, Sticky)},
			true,
			0,
			"high",
		},
		{
			"blunt to blunt works but warns",
			args{frag(Sticky, Blunt), frag(Blunt, Sticky)},
			true,
			1,
			"low",
		},
		{
			"sticky to blunt is incompatible",
			args{frag(Sticky, Sticky), frag(Blunt, Sticky)},
			false,
			1,
			"low",
		},
		{
			"blunt to sticky",
			args{frag(Sticky, Blunt), frag(Sticky, Sticky)},
			true,
			0,
			"high",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CheckCompatibility(tt.args.a, tt.args.b)
			if got.Compatible != tt.wantCompatible {
				t.Errorf("CheckCompatibility().Compatible = %v, want %v", got.Compatible, tt.wantCompatible)
			}
			if len(got.Warnings) != tt.wantWarnings {
				t.Errorf("CheckCompatibility().Warnings = %v, want %d warnings", got.Warnings, tt.wantWarnings)
			}
			if got.Efficiency != tt.wantEfficiency {
				t.Errorf("CheckCompatibility().Efficiency = %s, want %s", got.Efficiency, tt.wantEfficiency)
			}
		})
	}
}

func Test_Ligate_normalization(t *testing.T) {
	type args struct {
		molarRatio float64
	}
	tests := []struct {
		name      string
		args      args
		wantTypes map[ProductType]float64
	}{
		{
			"three products below the concatemer threshold",
			args{molarRatio: 1.0},
			map[ProductType]float64{
				Correct:      0.6 / 0.95,
				Reverse:      0.2 / 0.95,
				SelfLigation: 0.15 / 0.95,
			},
		},
		{
			"four products above the concatemer threshold",
			args{molarRatio: 3.0},
			map[ProductType]float64{
				Correct:      0.6,
				Reverse:      0.2,
				SelfLigation: 0.15,
				Concatemer:   0.05,
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			products, err := Ligate(testVector(), testInsert(), tt.args.molarRatio)
			if err != nil {
				t.Fatalf("Ligate() error = %v", err)
			}

			if len(products) != len(tt.wantTypes) {
				t.Fatalf("Ligate() returned %d products, want %d", len(products), len(tt.wantTypes))
			}

			total := 0.0
			for _, p := range products {
				total += p.Probability

				want, ok := tt.wantTypes[p.Type]
				if !ok {
					t.Errorf("unexpected product type %s", p.Type)
					continue
				}
				if math.Abs(p.Probability-want) > 1e-9 {
					t.Errorf("%s probability = %v, want %v", p.Type, p.Probability, want)
				}
			}
			if math.Abs(total-1.0) > 1e-9 {
				t.Errorf("probabilities sum to %v, want 1.0", total)
			}

			for i := 1; i < len(products); i++ {
				if products[i].Probability > products[i-1].Probability {
					t.Errorf("products out of order at %d: %v after %v", i, products[i].Probability, products[i-1].Probability)
				}
			}
		})
	}
}

func Test_Ligate_desired(t *testing.T) {
	for _, ratio := range []float64{0.5, 1.0, 2.0, 2.5, 3.0, 10.0} {
		products, err := Ligate(testVector(), testInsert(), ratio)
		if err != nil {
			t.Fatalf("Ligate(%v) error = %v", ratio, err)
		}

		desired := []Product{}
		for _, p := range products {
			if p.Desired {
				desired = append(desired, p)
			}
		}
		if len(desired) != 1 {
			t.Fatalf("ratio %v: %d desired products, want exactly 1", ratio, len(desired))
		}
		if desired[0].Type != Correct {
			t.Errorf("ratio %v: desired product is %s, want correct", ratio, desired[0].Type)
		}
	}
}

func Test_Ligate_sequences(t *testing.T) {
	products, err := Ligate(testVector(), testInsert(), 3.0)
	if err != nil {
		t.Fatalf("Ligate() error = %v", err)
	}

	// insert GGGCAT reverse complements to ATGCCC
	wantSeqs := map[ProductType]string{
		Correct:      "AAATTTGGGCAT",
		Reverse:      "AAATTTATGCCC",
		SelfLigation: "AAATTT",
		Concatemer:   "AAATTTGGGCATGGGCAT",
	}

	for _, p := range products {
		if p.Seq != wantSeqs[p.Type] {
			t.Errorf("%s sequence = %s, want %s", p.Type, p.Seq, wantSeqs[p.Type])
		}
		if p.Length != len(p.Seq) {
			t.Errorf("%s length = %d, want %d", p.Type, p.Length, len(p.Seq))
		}
		if p.ID == "" {
			t.Errorf("%s has no id", p.Type)
		}

		wantIDs := []string{"vec1", "ins1"}
		if p.Type == SelfLigation {
			wantIDs = []string{"vec1"}
		}
		if !reflect.DeepEqual(p.FragmentIDs, wantIDs) {
			t.Errorf("%s fragment ids = %v, want %v", p.Type, p.FragmentIDs, wantIDs)
		}
	}
}

func Test_Ligate_features(t *testing.T) {
	products, err := Ligate(testVector(), testInsert(), 3.0)
	if err != nil {
		t.Fatalf("Ligate() error = %v", err)
	}

	byType := map[ProductType]Product{}
	for _, p := range products {
		byType[p.Type] = p
	}

	// correct: vector feature unshifted, insert feature pushed past the vector
	correct := byType[Correct]
	if len(correct.Features) != 2 {
		t.Fatalf("correct product has %d features, want 2", len(correct.Features))
	}
	if f := correct.Features[0]; f.ID != "ori" || f.Start != 1 || f.End != 3 || f.Strand != 1 {
		t.Errorf("vector feature = %+v, want ori at [1, 3) strand 1", f)
	}
	if f := correct.Features[1]; f.ID != "gene" || f.Start != 6 || f.End != 10 || f.Strand != 1 {
		t.Errorf("insert feature = %+v, want gene at [6, 10) strand 1", f)
	}

	// reverse: insert feature shifted and strand-flipped
	reverse := byType[Reverse]
	if f := reverse.Features[1]; f.Start != 6 || f.End != 10 || f.Strand != -1 {
		t.Errorf("reversed insert feature = %+v, want [6, 10) strand -1", f)
	}

	// self-ligation: only the vector's own features
	self := byType[SelfLigation]
	if len(self.Features) != 1 || self.Features[0].ID != "ori" {
		t.Errorf("self-ligation features = %v, want just ori", self.Features)
	}

	// concatemer: the second insert copy is shifted further and renamed
	concatemer := byType[Concatemer]
	if len(concatemer.Features) != 3 {
		t.Fatalf("concatemer has %d features, want 3", len(concatemer.Features))
	}
	second := concatemer.Features[2]
	if second.ID != "gene_copy2" || second.Name != "gfp (copy 2)" {
		t.Errorf("second copy = %s/%s, want gene_copy2/gfp (copy 2)", second.ID, second.Name)
	}
	if second.Start != 12 || second.End != 16 || second.Strand != 1 {
		t.Errorf("second copy at [%d, %d) strand %d, want [12, 16) strand 1", second.Start, second.End, second.Strand)
	}
}

func Test_Ligate_errors(t *testing.T) {
	type args struct {
		vector Fragment
		insert Fragment
		ratio  float64
	}
	tests := []struct {
		name    string
		args    args
		wantErr error
	}{
		{
			"zero molar ratio",
			args{testVector(), testInsert(), 0},
			ErrInvalidInput,
		},
		{
			"negative molar ratio",
			args{testVector(), testInsert(), -1.5},
			ErrInvalidInput,
		},
		{
			"sticky vector into blunt insert",
			args{
				testVector(),
				Fragment{ID: "blunt", Seq: "GGGCAT", Length: 6, FivePrimeEnd: Blunt, ThreePrimeEnd: Blunt},
				3.0,
			},
			ErrIncompatibleEnds,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Ligate(tt.args.vector, tt.args.insert, tt.args.ratio); !errors.Is(err, tt.wantErr) {
				t.Errorf("Ligate() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func Test_Ligate_inputsUntouched(t *testing.T) {
	vector := testVector()
	insert := testInsert()

	if _, err := Ligate(vector, insert, 3.0); err != nil {
		t.Fatalf("Ligate() error = %v", err)
	}

	if !reflect.DeepEqual(vector, testVector()) {
		t.Error("Ligate() mutated the vector fragment")
	}
	if !reflect.DeepEqual(insert, testInsert()) {
		t.Error("Ligate() mutated the insert fragment")
	}
}
