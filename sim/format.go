package sim

import (
	"fmt"
	"io"
	"text/tabwriter"

	"gopkg.in/yaml.v3"
)

// Trace is a script's samples as written by WriteYAML.
type Trace struct {
	Script  string   `yaml:"script"`
	Samples []Sample `yaml:"samples"`
}

// WriteTable prints every every-th sample as aligned columns. The last sample
// is always printed.
func WriteTable(w io.Writer, samples []Sample, every int) error {
	if every < 1 {
		every = 1
	}
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tw, "tick\tx\ty\ths\tvs\tfacing\tstate\tframe\tflip\t")
	for i, s := range samples {
		if (i+1)%every != 0 && i != len(samples)-1 {
			continue
		}
		fmt.Fprintf(tw, "%d\t%.3f\t%.3f\t%.3f\t%.3f\t%s\t%s\t%d\t%t\t\n",
			s.Tick, s.X, s.Y, s.HS, s.VS, s.Facing, s.State, s.Frame, s.Flip)
	}
	return tw.Flush()
}

// WriteYAML writes the traces as a YAML stream, one document per script.
func WriteYAML(w io.Writer, traces ...Trace) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	for _, t := range traces {
		if err := enc.Encode(t); err != nil {
			return fmt.Errorf("sim: encode %s: %w", t.Script, err)
		}
	}
	return enc.Close()
}
