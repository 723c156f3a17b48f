package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/clonelab/clonelab/config"
	"github.com/clonelab/clonelab/internal/clone"
)

// readSeq resolves a sequence argument: either the literal bases or, with a
// leading @, the path of a file holding a raw (optionally line-wrapped)
// sequence. FASTA/GenBank parsing is out of scope here, records should be
// converted to raw sequence + features JSON upstream.
func readSeq(arg string, topology clone.Topology) (clone.Sequence, error) {
	raw := arg
	if strings.HasPrefix(arg, "@") {
		contents, err := os.ReadFile(strings.TrimPrefix(arg, "@"))
		if err != nil {
			return clone.Sequence{}, err
		}
		raw = string(contents)
	}
	return clone.NewSequence(raw, topology)
}

// readFeatures parses a JSON file holding a list of features. An empty path
// means no features.
func readFeatures(path string) ([]clone.Feature, error) {
	if path == "" {
		return nil, nil
	}

	contents, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var features []clone.Feature
	if err := json.Unmarshal(contents, &features); err != nil {
		return nil, fmt.Errorf("failed to parse features from %s: %w", path, err)
	}
	return features, nil
}

// readFragment loads a fragment from a JSON file: either a digest command's
// output (picking the fragment with the passed id, or the sole fragment) or
// a single fragment object.
func readFragment(path, id string) (clone.Fragment, error) {
	contents, err := os.ReadFile(path)
	if err != nil {
		return clone.Fragment{}, err
	}

	var out digestOutput
	if err := json.Unmarshal(contents, &out); err == nil && len(out.Fragments) > 0 {
		if id == "" {
			if len(out.Fragments) > 1 {
				return clone.Fragment{}, fmt.Errorf("%s holds %d fragments, pass a fragment id", path, len(out.Fragments))
			}
			return out.Fragments[0], nil
		}
		for _, frag := range out.Fragments {
			if frag.ID == id {
				return frag, nil
			}
		}
		return clone.Fragment{}, fmt.Errorf("no fragment %s in %s", id, path)
	}

	var frag clone.Fragment
	if err := json.Unmarshal(contents, &frag); err != nil {
		return clone.Fragment{}, fmt.Errorf("failed to parse a fragment from %s: %w", path, err)
	}
	return frag, nil
}

// writeJSON writes a result to the output path, or stdout without one.
func writeJSON(out string, payload interface{}) {
	conf := config.New()

	var contents []byte
	var err error
	if conf.Output.Indent {
		contents, err = json.MarshalIndent(payload, "", "  ")
	} else {
		contents, err = json.Marshal(payload)
	}
	if err != nil {
		stderr.Fatalln(err)
	}
	contents = append(contents, '\n')

	if out == "" {
		os.Stdout.Write(contents)
		return
	}
	if err := os.WriteFile(out, contents, 0644); err != nil {
		stderr.Fatalln(err)
	}
}

// topologyOf maps the --circular flag to a topology tag.
func topologyOf(circular bool) clone.Topology {
	if circular {
		return clone.Circular
	}
	return clone.Linear
}
