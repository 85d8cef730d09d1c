package decode_test

import (
	"fmt"

	"github.com/cwbudde/algo-dtft/dsp/decode"
	"github.com/cwbudde/algo-dtft/dsp/dtft"
	"github.com/cwbudde/algo-dtft/dsp/encode"
)

func Example() {
	dict, err := decode.NewDictionary(decode.Config{})
	if err != nil {
		fmt.Println(err)
		return
	}

	// Encode a byte as its repeated bit pattern and recover it from the
	// spectrum alone.
	sig, err := encode.Signal(0x4C, decode.DefaultRepetitions)
	if err != nil {
		fmt.Println(err)
		return
	}

	omegas, err := dtft.HalfSpectrum(decode.DefaultPoints)
	if err != nil {
		fmt.Println(err)
		return
	}

	spec, err := dtft.ComputeSpectrum(sig, omegas)
	if err != nil {
		fmt.Println(err)
		return
	}

	match, err := dict.ClassifySpectrum(spec)
	if err != nil {
		fmt.Println(err)
		return
	}

	fmt.Printf("decoded %#02x, distance %.1f\n", match.Value, match.Distance)
	// Output:
	// decoded 0x4c, distance 0.0
}
