package clone

import (
	"reflect"
	"testing"
)

func Test_FeaturesInRange(t *testing.T) {
	features := []Feature{
		{ID: "middle", Start: 10, End: 20, Strand: 1},
		{ID: "head", Start: 0, End: 5, Strand: 1},
		{ID: "tail", Start: 95, End: 100, Strand: -1},
		{ID: "origin-spanning", Start: 95, End: 5, Strand: 1},
	}

	type args struct {
		start    int
		end      int
		seqLen   int
		circular bool
	}
	tests := []struct {
		name string
		args args
		want []string
	}{
		{
			"linear range catches overlapping feature",
			args{start: 5, end: 25, seqLen: 100, circular: false},
			[]string{"middle"},
		},
		{
			"features touching only a boundary miss",
			// head ends at the range start, middle starts at the range end
			args{start: 5, end: 10, seqLen: 100, circular: false},
			[]string{},
		},
		{
			"linear range over the whole sequence catches everything",
			args{start: 0, end: 100, seqLen: 100, circular: false},
			[]string{"middle", "head", "tail", "origin-spanning"},
		},
		{
			"wrapping query catches features on either side of the origin",
			args{start: 90, end: 10, seqLen: 100, circular: true},
			[]string{"head", "tail", "origin-spanning"},
		},
		{
			"wrapping query misses a feature in the middle",
			args{start: 95, end: 8, seqLen: 100, circular: true},
			[]string{"head", "tail", "origin-spanning"},
		},
		{
			"circular non-wrapping query behaves like linear",
			args{start: 5, end: 25, seqLen: 100, circular: true},
			[]string{"middle"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FeaturesInRange(features, tt.args.start, tt.args.end, tt.args.seqLen, tt.args.circular)

			gotIDs := []string{}
			for _, f := range got {
				gotIDs = append(gotIDs, f.ID)
			}
			if !reflect.DeepEqual(gotIDs, tt.want) {
				t.Errorf("FeaturesInRange() = %v, want %v", gotIDs, tt.want)
			}
		})
	}
}

func Test_FeaturesInRange_wrappingFeature(t *testing.T) {
	// a feature with start=95, end=5 against a wrapping query range
	// [90, 10) on a circular 100bp sequence
	features := []Feature{{ID: "wrap", Start: 95, End: 5, Strand: 1}}

	got := FeaturesInRange(features, 90, 10, 100, true)
	if len(got) != 1 || got[0].ID != "wrap" {
		t.Errorf("FeaturesInRange() = %v, want the wrapping feature", got)
	}
}

func Test_FeaturesInRange_copies(t *testing.T) {
	features := []Feature{{
		ID:         "f1",
		Start:      10,
		End:        20,
		Strand:     1,
		Qualifiers: map[string]string{"gene": "lacZ"},
	}}

	got := FeaturesInRange(features, 0, 100, 100, false)
	if len(got) != 1 {
		t.Fatalf("FeaturesInRange() returned %d features, want 1", len(got))
	}

	got[0].Qualifiers["gene"] = "mutated"
	if features[0].Qualifiers["gene"] != "lacZ" {
		t.Error("FeaturesInRange() shared a qualifier map with the input feature")
	}
}
