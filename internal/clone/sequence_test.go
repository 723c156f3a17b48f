package clone

import (
	"errors"
	"math"
	"testing"
)

func Test_NewSequence(t *testing.T) {
	type args struct {
		seq      string
		topology Topology
	}
	tests := []struct {
		name    string
		args    args
		want    string
		wantErr bool
	}{
		{
			"uppercases and keeps topology",
			args{"acgtACGTn", Circular},
			"ACGTACGTN",
			false,
		},
		{
			"strips whitespace and line breaks",
			args{"ACGT\nACGT\n", Linear},
			"ACGTACGT",
			false,
		},
		{
			"rejects non-DNA characters",
			args{"ACGU", Linear},
			"",
			true,
		},
		{
			"rejects an empty sequence",
			args{"", Linear},
			"",
			true,
		},
		{
			"rejects an unknown topology",
			args{"ACGT", Topology("twisted")},
			"",
			true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewSequence(tt.args.seq, tt.args.topology)
			if (err != nil) != tt.wantErr {
				t.Fatalf("NewSequence() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidInput) {
					t.Errorf("NewSequence() error = %v, want ErrInvalidInput", err)
				}
				return
			}
			if got.Seq != tt.want {
				t.Errorf("NewSequence().Seq = %v, want %v", got.Seq, tt.want)
			}
			if got.Topology != tt.args.topology {
				t.Errorf("NewSequence().Topology = %v, want %v", got.Topology, tt.args.topology)
			}
		})
	}
}

func Test_Sequence_GC(t *testing.T) {
	seq, err := NewSequence("GGCC", Linear)
	if err != nil {
		t.Fatalf("NewSequence() error = %v", err)
	}
	if gc := seq.GC(); math.Abs(gc-100.0) > 1e-9 {
		t.Errorf("GC() = %v, want 100", gc)
	}

	seq, _ = NewSequence("GCAT", Linear)
	if gc := seq.GC(); math.Abs(gc-50.0) > 1e-9 {
		t.Errorf("GC() = %v, want 50", gc)
	}
}
