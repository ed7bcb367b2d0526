// Command calcx evaluates arithmetic expressions and, in -plot mode,
// samples them over an interval; with -poly it samples a raw polynomial
// instead.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/nsavage/calcx"
)

func main() {
	log.SetFlags(0)
	var (
		inname, verb, poly string
		given              [][2]string
		plot               bool
		xmin, xmax, dx     float64
	)
	addGiven := func(s string) error {
		d := strings.SplitN(s, "=", 2)
		if len(d) != 2 {
			return fmt.Errorf(`variable definitions must be "name=value", not %q`, s)
		}
		given = append(given, [2]string{strings.TrimSpace(d[0]), strings.TrimSpace(d[1])})
		return nil
	}
	flag.StringVar(&inname, "in", "", "input file (default stdin if no args given)")
	flag.StringVar(&verb, "fmt", "%v", "result formatting string, used outside -plot")
	flag.Func("given", "name=value variable definition (any number of times)", addGiven)
	flag.BoolVar(&plot, "plot", false, "sample each expression over [xmin, xmax] instead of evaluating it once")
	flag.Float64Var(&xmin, "xmin", -10, "plot: lower bound of x")
	flag.Float64Var(&xmax, "xmax", 10, "plot: upper bound of x")
	flag.Float64Var(&dx, "dx", 1, "plot: step size")
	flag.StringVar(&poly, "poly", "", "comma-separated polynomial coefficients, highest degree first; plots directly and ignores expression input")
	flag.Parse()

	ctx := calcx.NewContext()
	for _, d := range given {
		nm, vl := d[0], d[1]
		r, err := calcx.EvalIn(ctx, vl)
		if err != nil {
			log.Fatalf("setting %s: %v", nm, err)
		}
		ctx.Set(nm, r)
	}

	if poly != "" {
		coeffs, err := calcx.ParseCoefficients(poly)
		if err != nil {
			log.Fatal(err)
		}
		printPoints(calcx.Polynomial(coeffs, xmin, xmax, dx))
		return
	}

	var lines []string
	f, err := infile(inname, flag.NArg() == 0)
	if err != nil {
		log.Fatal(err)
	}
	if f != nil {
		sc := bufio.NewScanner(f)
		for sc.Scan() {
			if l := strings.TrimSpace(sc.Text()); l != "" {
				lines = append(lines, l)
			}
		}
		if err := sc.Err(); err != nil {
			log.Fatal(err)
		}
	}
	lines = append(lines, flag.Args()...)

	verb += "\n"
	for _, line := range lines {
		if plot {
			tokens, err := calcx.Lex(line)
			if err != nil {
				log.Fatal(err)
			}
			pts := calcx.Sample(tokens, xmin, xmax, dx)
			if pts == nil {
				fmt.Fprintf(os.Stderr, "%s: does not depend on x, nothing to plot\n", line)
				continue
			}
			printPoints(pts)
			continue
		}
		v, err := calcx.EvalIn(ctx, line)
		if err != nil {
			log.Fatal(err)
		}
		fmt.Printf(verb, v)
	}
}

func printPoints(pts []calcx.Point) {
	for _, p := range pts {
		fmt.Printf("%g\t%g\n", p.X, p.Y)
	}
}

func infile(inname string, std bool) (io.Reader, error) {
	var f *os.File
	switch {
	case inname != "" && inname != "-":
		in, err := os.Open(inname)
		if err != nil {
			return nil, err
		}
		f = in
	case inname == "-", std:
		f = os.Stdin
	}
	if f == nil {
		return nil, nil
	}
	return f, nil
}
