package decode

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats"

	"github.com/cwbudde/algo-dtft/dsp/dtft"
	"github.com/cwbudde/algo-dtft/dsp/encode"
)

func buildDictionary(t *testing.T) *Dictionary {
	t.Helper()

	d, err := NewDictionary(Config{})
	require.NoError(t, err)
	require.Equal(t, DefaultPoints, d.Points())

	return d
}

func TestNewDictionary_Defaults(t *testing.T) {
	d := buildDictionary(t)

	for value := range 256 {
		entry := d.Entry(byte(value))
		require.Len(t, entry, DefaultPoints)

		// DC power of the reference spectrum is (popcount * reps)^2.
		bits := 0
		for _, b := range encode.Bits(byte(value)) {
			bits += int(b)
		}

		wantDC := float64(bits*DefaultRepetitions) * float64(bits*DefaultRepetitions)
		assert.InDelta(t, wantDC, entry[0], 1e-9, "value %#02x", value)
	}
}

func TestClassify_SelfConsistency(t *testing.T) {
	d := buildDictionary(t)

	// Classifying the exact stored reference must return the value itself
	// with zero distance.
	for value := range 256 {
		match, err := d.Classify(d.Entry(byte(value)))
		require.NoError(t, err)

		assert.Equal(t, byte(value), match.Value)
		assert.InDelta(t, 0, match.Distance, 1e-12)
	}
}

func TestClassify_EndToEnd0x4C(t *testing.T) {
	d := buildDictionary(t)

	sig, err := encode.Signal(0x4C, DefaultRepetitions)
	require.NoError(t, err)
	require.Len(t, sig, 80)

	omegas, err := dtft.HalfSpectrum(DefaultPoints)
	require.NoError(t, err)

	spec, err := dtft.ComputeSpectrum(sig, omegas)
	require.NoError(t, err)

	match, err := d.ClassifySpectrum(spec)
	require.NoError(t, err)

	assert.Equal(t, byte(0x4C), match.Value)
	assert.InDelta(t, 0, match.Distance, 1e-9)
}

func TestClassify_EndToEndSplitEngine(t *testing.T) {
	d := buildDictionary(t)

	e := dtft.NewEngine()
	defer e.Close()

	omegas, err := dtft.HalfSpectrum(DefaultPoints)
	require.NoError(t, err)

	for _, value := range []byte{0x00, 0x01, 0x4C, 0x80, 0xAA, 0xFF} {
		sig, err := encode.Signal(value, DefaultRepetitions)
		require.NoError(t, err)

		spec, err := e.ComputeSpectrumSplit(sig, omegas)
		require.NoError(t, err)

		match, err := d.ClassifySpectrum(spec)
		require.NoError(t, err)

		assert.Equal(t, value, match.Value)
	}
}

func TestClassify_LengthMismatch(t *testing.T) {
	d := buildDictionary(t)

	for _, bins := range []int{0, 1, 40, 42, 100} {
		_, err := d.Classify(make([]float64, bins))
		assert.ErrorIs(t, err, ErrSpectrumLength, "bins %d", bins)

		_, err = d.ClassifySpectrum(make([]complex128, bins))
		assert.ErrorIs(t, err, ErrSpectrumLength, "bins %d", bins)

		_, err = d.TopMatches(make([]float64, bins), 5)
		assert.ErrorIs(t, err, ErrSpectrumLength, "bins %d", bins)
	}
}

func TestClassify_TieKeepsLowestValue(t *testing.T) {
	// A dictionary where several entries are identical: the scan must keep
	// the earliest (lowest byte value) because only a strictly smaller
	// distance replaces the current best.
	spectra := make([][]float64, 256)
	for i := range spectra {
		spectra[i] = []float64{1, 2, 3}
	}

	d, err := FromSpectra(spectra)
	require.NoError(t, err)

	match, err := d.Classify([]float64{1, 2, 3})
	require.NoError(t, err)

	assert.Equal(t, byte(0), match.Value)
	assert.Zero(t, match.Distance)
}

func TestClassify_DistanceMatchesReference(t *testing.T) {
	d := buildDictionary(t)

	probe := d.Entry(0x10)
	for i := range probe {
		probe[i] += 0.5
	}

	match, err := d.Classify(probe)
	require.NoError(t, err)

	// Cross-check the squared Euclidean distance against gonum.
	want := floats.Distance(probe, d.Entry(match.Value), 2)
	assert.InDelta(t, want*want, match.Distance, 1e-6)
	assert.InDelta(t, want, match.Euclidean(), 1e-9)
}

func TestTopMatches(t *testing.T) {
	d := buildDictionary(t)

	probe := d.Entry(0x4C)

	top, err := d.TopMatches(probe, 5)
	require.NoError(t, err)
	require.Len(t, top, 5)

	assert.Equal(t, byte(0x4C), top[0].Value)
	assert.InDelta(t, 0, top[0].Distance, 1e-12)

	for i := 1; i < len(top); i++ {
		assert.GreaterOrEqual(t, top[i].Distance, top[i-1].Distance)
	}
}

func TestTopMatches_NClamped(t *testing.T) {
	d := buildDictionary(t)
	probe := d.Entry(0x00)

	top, err := d.TopMatches(probe, 0)
	require.NoError(t, err)
	assert.Len(t, top, 1)

	top, err = d.TopMatches(probe, 1000)
	require.NoError(t, err)
	assert.Len(t, top, 256)
}

func TestFromSpectra_Validation(t *testing.T) {
	_, err := FromSpectra(make([][]float64, 10))
	assert.ErrorIs(t, err, ErrDictionarySize)

	spectra := make([][]float64, 256)
	for i := range spectra {
		spectra[i] = make([]float64, 3)
	}

	spectra[7] = make([]float64, 4)

	_, err = FromSpectra(spectra)
	assert.Error(t, err)

	for i := range spectra {
		spectra[i] = nil
	}

	_, err = FromSpectra(spectra)
	assert.Error(t, err)
}

func TestFromSpectra_CopiesInput(t *testing.T) {
	spectra := make([][]float64, 256)
	for i := range spectra {
		spectra[i] = []float64{float64(i)}
	}

	d, err := FromSpectra(spectra)
	require.NoError(t, err)

	spectra[3][0] = 999

	assert.Equal(t, []float64{3}, d.Entry(3))
}
