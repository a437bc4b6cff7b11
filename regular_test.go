package charls

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestQuantizeTripleGradients(t *testing.T) {
	traits := NewTraits(computeDefaultPreset(255, 0), 8, 0)
	// a=west, b=north, c=north-west, d=north-east; D1=d-b, D2=b-c, D3=c-a.
	q1, q2, q3 := quantizeTriple(traits, 100, 100, 100, 100)
	require.Equal(t, 0, q1)
	require.Equal(t, 0, q2)
	require.Equal(t, 0, q3)

	q1, q2, q3 = quantizeTriple(traits, 100, 100, 100, 150)
	require.Greater(t, q1, 0)
}

func TestEncodeDecodeRegularRoundTrip(t *testing.T) {
	traits := NewTraits(computeDefaultPreset(255, 0), 8, 0)
	for _, sample := range []int{0, 1, 60, 128, 200, 255} {
		for _, neigh := range [][4]int{
			{100, 110, 105, 120},
			{50, 50, 50, 50},
			{200, 30, 90, 10},
		} {
			a, b, c, d := neigh[0], neigh[1], neigh[2], neigh[3]

			encContexts := newContextTable(traits.Range)
			w := NewBitWriter()
			reconstructed := encodeRegular(traits, encContexts, w, a, b, c, d, sample)
			data := w.EndScan()

			decContexts := newContextTable(traits.Range)
			luts := newGolombLUTCache(traits.Limit, traits.Qbpp)
			r := NewBitReader(data)
			got, err := decodeRegular(traits, decContexts, luts, r, a, b, c, d)
			require.NoError(t, err)
			require.Equal(t, reconstructed, got, "sample=%d neigh=%v", sample, neigh)
		}
	}
}

func TestEncodeDecodeRegularSequenceKeepsContextsInSync(t *testing.T) {
	traits := NewTraits(computeDefaultPreset(255, 0), 8, 0)
	samples := []int{128, 129, 130, 128, 127, 126, 200, 50, 51, 52}

	encContexts := newContextTable(traits.Range)
	w := NewBitWriter()
	prev := [4]int{128, 128, 128, 128}
	var reconstructedSamples []int
	for _, s := range samples {
		r := encodeRegular(traits, encContexts, w, prev[0], prev[1], prev[2], prev[3], s)
		reconstructedSamples = append(reconstructedSamples, r)
		prev = [4]int{r, prev[1], prev[2], prev[3]}
	}
	data := w.EndScan()

	decContexts := newContextTable(traits.Range)
	luts := newGolombLUTCache(traits.Limit, traits.Qbpp)
	reader := NewBitReader(data)
	prev = [4]int{128, 128, 128, 128}
	for i := range samples {
		got, err := decodeRegular(traits, decContexts, luts, reader, prev[0], prev[1], prev[2], prev[3])
		require.NoError(t, err)
		require.Equal(t, reconstructedSamples[i], got, "index=%d", i)
		prev = [4]int{got, prev[1], prev[2], prev[3]}
	}
}
