// Command locosim runs locomotion scripts headlessly and prints the
// per-tick trace.
//
//	locosim -config tuning.yaml -every 5 walk.yaml jump.yaml
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/automoto/stride/config"
	"github.com/automoto/stride/locomotion"
	"github.com/automoto/stride/sim"
	"golang.org/x/sync/errgroup"
)

func main() {
	configPath := flag.String("config", "", "Tuning file (YAML); defaults are used when empty")
	format := flag.String("format", "table", "Output format: table or yaml")
	every := flag.Int("every", 1, "Print every n-th tick in table output")
	flag.Parse()

	if flag.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "usage: locosim [flags] script.yaml...")
		flag.PrintDefaults()
		os.Exit(2)
	}
	if *format != "table" && *format != "yaml" {
		log.Fatalf("unknown format %q: want table or yaml", *format)
	}

	tuning, err := loadTuning(*configPath)
	if err != nil {
		log.Fatal(err)
	}

	traces, err := runAll(flag.Args(), tuning)
	if err != nil {
		log.Fatal(err)
	}

	if *format == "yaml" {
		if err := sim.WriteYAML(os.Stdout, traces...); err != nil {
			log.Fatal(err)
		}
		return
	}
	for i, tr := range traces {
		if i > 0 {
			fmt.Println()
		}
		fmt.Printf("# %s\n", tr.Script)
		if err := sim.WriteTable(os.Stdout, tr.Samples, *every); err != nil {
			log.Fatal(err)
		}
	}
}

func loadTuning(path string) (locomotion.Tuning, error) {
	if path == "" {
		return config.Locomotion, nil
	}
	f, err := config.ReadFile(path)
	if err != nil {
		return locomotion.Tuning{}, err
	}
	return f.ApplyTuning(config.Locomotion, config.Sheet.Frames())
}

// runAll runs every script concurrently. Output order follows paths.
func runAll(paths []string, tuning locomotion.Tuning) ([]sim.Trace, error) {
	traces := make([]sim.Trace, len(paths))
	var g errgroup.Group
	for i, path := range paths {
		g.Go(func() error {
			script, err := sim.LoadScript(path)
			if err != nil {
				return err
			}
			samples, err := sim.Run(script, tuning)
			if err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}
			traces[i] = sim.Trace{Script: script.Name, Samples: samples}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return traces, nil
}
