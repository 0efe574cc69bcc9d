// stablegen generates the stable-distribution table bundle (density
// grid, cumulative grid and tail breakpoints) and writes it to a
// file. This is the one-time offline batch step; expect the canonical
// geometry to take a long time.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/levystable/go-levy/stablegen"
)

func main() {
	var (
		out    = flag.String("o", "stable.levt", "write the bundle to `file`")
		npos   = flag.Int("npos", 0, "position nodes (0 means the canonical 200)")
		nalpha = flag.Int("nalpha", 0, "alpha nodes (0 means the canonical 76)")
		nbeta  = flag.Int("nbeta", 0, "beta nodes (0 means the canonical 101)")
		scanN  = flag.Int("scan", 0, "breakpoint scan points (0 means the canonical 100000)")
		quiet  = flag.Bool("q", false, "suppress per-cell progress")
	)
	flag.Parse()

	cfg := stablegen.Config{NPos: *npos, NAlpha: *nalpha, NBeta: *nbeta, ScanN: *scanN}
	if !*quiet {
		cfg.Progress = func(phase string, alpha, beta float64) {
			fmt.Fprintf(os.Stderr, "%s: alpha=%.2f beta=%.2f\n", phase, alpha, beta)
		}
	}

	b, err := stablegen.Generate(cfg)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if err := b.WriteFile(*out); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	fmt.Printf("wrote %s\n", *out)
}
