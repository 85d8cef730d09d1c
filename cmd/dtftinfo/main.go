// Command dtftinfo encodes byte values as repeating bit patterns,
// evaluates their DTFT spectra, and decodes them back through the
// nearest-neighbor reference dictionary.
//
// Usage:
//
//	dtftinfo [flags] [value ...]
//
// Values are parsed as Go integer literals (76, 0x4C, 0b01001100).
// Without arguments it round-trips a small set of representative values.
//
// Examples:
//
//	dtftinfo 0x4C
//	dtftinfo -split -top 5 0x4C 0xAA
//	dtftinfo -reps 20 -points 81 0xFF
package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"text/tabwriter"

	"github.com/cwbudde/algo-dtft/dsp/decode"
	"github.com/cwbudde/algo-dtft/dsp/dtft"
	"github.com/cwbudde/algo-dtft/dsp/encode"
)

var defaultValues = []byte{0x00, 0x0F, 0x4C, 0xAA, 0xFF}

func main() {
	reps := flag.Int("reps", decode.DefaultRepetitions, "pattern repetitions per signal")
	points := flag.Int("points", decode.DefaultPoints, "half-spectrum frequency points")
	split := flag.Bool("split", false, "use the two-goroutine split evaluation path")
	top := flag.Int("top", 0, "also print the N closest dictionary entries")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: dtftinfo [flags] [value ...]\n\n")
		fmt.Fprintf(os.Stderr, "Round-trips byte values through DTFT evaluation and spectral decoding.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  dtftinfo 0x4C\n")
		fmt.Fprintf(os.Stderr, "  dtftinfo -split -top 5 0x4C 0xAA\n")
	}
	flag.Parse()

	values, err := parseValues(flag.Args())
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	if err := run(values, *reps, *points, *split, *top); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func parseValues(args []string) ([]byte, error) {
	if len(args) == 0 {
		return defaultValues, nil
	}

	values := make([]byte, 0, len(args))

	for _, arg := range args {
		v, err := strconv.ParseUint(arg, 0, 8)
		if err != nil {
			return nil, fmt.Errorf("value %q: %w", arg, err)
		}

		values = append(values, byte(v))
	}

	return values, nil
}

func run(values []byte, reps, points int, split bool, top int) error {
	dict, err := decode.NewDictionary(decode.Config{Points: points, Repetitions: reps})
	if err != nil {
		return err
	}

	engine := dtft.NewEngine()
	defer engine.Close()

	omegas, err := dtft.HalfSpectrum(points)
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Value\tPattern\tSamples\tBins\tDecoded\tDistance\tOK\n")
	fmt.Fprintf(tw, "-----\t-------\t-------\t----\t-------\t--------\t--\n")

	for _, value := range values {
		sig, err := encode.Signal(value, reps)
		if err != nil {
			return err
		}

		var spec []complex128
		if split {
			spec, err = engine.ComputeSpectrumSplit(sig, omegas)
		} else {
			spec, err = engine.ComputeSpectrum(sig, omegas)
		}

		if err != nil {
			return err
		}

		match, err := dict.ClassifySpectrum(spec)
		if err != nil {
			return err
		}

		ok := "yes"
		if match.Value != value {
			ok = "NO"
		}

		fmt.Fprintf(tw, "%#02x\t%s\t%d\t%d\t%#02x\t%.6f\t%s\n",
			value, patternString(value), len(sig), len(spec), match.Value, match.Euclidean(), ok)

		if top > 0 {
			power := dtft.Power(spec)

			matches, err := dict.TopMatches(power, top)
			if err != nil {
				return err
			}

			for i, m := range matches {
				fmt.Fprintf(tw, "  %d.\t%s\t\t\t%#02x\t%.6f\t\n",
					i+1, patternString(m.Value), m.Value, m.Euclidean())
			}
		}
	}

	return tw.Flush()
}

func patternString(value byte) string {
	bits := encode.Bits(value)
	out := make([]byte, len(bits))

	for i, b := range bits {
		out[i] = '0' + b
	}

	return string(out)
}
