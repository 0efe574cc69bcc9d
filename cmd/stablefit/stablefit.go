// stablefit reads newline-separated numbers from stdin and fits a
// Lévy alpha-stable distribution to them by maximum likelihood.
//
// Any of the four parameters may be pinned with -alpha, -beta, -mu
// and -sigma; the rest are fitted. -tables names the table bundle
// produced by stablegen.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"

	"github.com/levystable/go-levy/levy"
	"github.com/levystable/go-levy/table"
)

func main() {
	var (
		tablePath = flag.String("tables", "stable.levt", "table bundle `file` produced by stablegen")
		par       = flag.Int("par", 0, "Nolan parametrization of mu (0 or 1)")
		alpha     = flag.Float64("alpha", math.NaN(), "fix alpha to `value` instead of fitting it")
		beta      = flag.Float64("beta", math.NaN(), "fix beta to `value` instead of fitting it")
		mu        = flag.Float64("mu", math.NaN(), "fix mu to `value` instead of fitting it")
		sigma     = flag.Float64("sigma", math.NaN(), "fix sigma to `value` instead of fitting it")
	)
	flag.Parse()
	if *par != 0 && *par != 1 {
		fmt.Fprintln(os.Stderr, "-par must be 0 or 1")
		os.Exit(2)
	}

	tab, err := table.LoadFile(*tablePath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	samples := readInput(os.Stdin)
	res, err := levy.Fit(tab, samples, constraints(*alpha, *beta, *mu, *sigma), levy.Par(*par))
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	fmt.Printf("N %d\n", len(samples))
	fmt.Printf("alpha %.6g  beta %.6g  mu %.6g  sigma %.6g\n",
		res.Alpha, res.Beta, res.Mu, res.Sigma)
	fmt.Printf("neg log likelihood %.6g\n", res.NegLogLikelihood)
}

// constraints pins each parameter passed on the command line; NaN
// (the unset flag default) leaves it free.
func constraints(alpha, beta, mu, sigma float64) levy.Constraints {
	var cs levy.Constraints
	if !math.IsNaN(alpha) {
		cs.Alpha = levy.Fix(alpha)
	}
	if !math.IsNaN(beta) {
		cs.Beta = levy.Fix(beta)
	}
	if !math.IsNaN(mu) {
		cs.Mu = levy.Fix(mu)
	}
	if !math.IsNaN(sigma) {
		cs.Sigma = levy.Fix(sigma)
	}
	return cs
}

func readInput(r io.Reader) (samples []float64) {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		l := scanner.Text()
		value, err := strconv.ParseFloat(l, 64)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}

		samples = append(samples, value)
	}
	if err := scanner.Err(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	return
}
