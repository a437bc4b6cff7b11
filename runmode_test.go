package charls

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestIncrementDecrementRunIndexBounds(t *testing.T) {
	require.Equal(t, 0, decrementRunIndex(0))
	require.Equal(t, 0, decrementRunIndex(1))
	require.Equal(t, len(runLengthJ)-1, incrementRunIndex(len(runLengthJ)-1))
	require.Equal(t, 1, incrementRunIndex(0))
}

func TestEncodeDecodeRunLengthRoundTrip(t *testing.T) {
	cases := []struct {
		runLength, maxRunLength int
		endOfLine                bool
	}{
		{0, 10, false},
		{3, 10, false},
		{10, 10, true},
		{1, 1, true},
		{0, 1, false},
		{100, 200, false},
		{200, 200, true},
	}
	for _, tc := range cases {
		runIndex := 0
		w := NewBitWriter()
		encodeRunLength(w, &runIndex, tc.runLength, tc.endOfLine)
		data := w.EndScan()

		decodeIndex := 0
		r := NewBitReader(data)
		gotLength, gotEOL, err := decodeRunLength(r, &decodeIndex, tc.maxRunLength)
		require.NoError(t, err)
		require.Equal(t, tc.runLength, gotLength, "case=%+v", tc)
		require.Equal(t, tc.endOfLine, gotEOL, "case=%+v", tc)
		require.Equal(t, runIndex, decodeIndex, "run index must advance identically")
	}
}

func TestEncodeDecodeRunLengthAdvancesRunIndexAcrossUnits(t *testing.T) {
	// A run long enough to cross several unit boundaries must leave
	// encode and decode's run index in lockstep.
	runIndexEnc := 0
	w := NewBitWriter()
	encodeRunLength(w, &runIndexEnc, 500, true)
	data := w.EndScan()

	runIndexDec := 0
	r := NewBitReader(data)
	length, eol, err := decodeRunLength(r, &runIndexDec, 500)
	require.NoError(t, err)
	require.Equal(t, 500, length)
	require.True(t, eol)
	require.Equal(t, runIndexEnc, runIndexDec)
	require.Greater(t, runIndexEnc, 0)
}

func TestRunInterruptionSetupPicksDescendingEdge(t *testing.T) {
	predicted, riType := runInterruptionSetup(10, 20)
	require.Equal(t, 10, predicted)
	require.Equal(t, 0, riType)

	predicted, riType = runInterruptionSetup(20, 10)
	require.Equal(t, 10, predicted)
	require.Equal(t, 1, riType)
}

func TestEncodeDecodeRunInterruptionPixelRoundTrip(t *testing.T) {
	traits := NewTraits(computeDefaultPreset(255, 0), 8, 0)
	for _, sample := range []int{0, 1, 50, 127, 128, 200, 254, 255} {
		for _, pair := range [][2]int{{100, 100}, {50, 80}, {80, 50}} {
			ra, rb := pair[0], pair[1]
			runContexts := newRunModeContexts(traits.Range)
			w := NewBitWriter()
			reconstructed := encodeRunInterruptionPixel(traits, &runContexts, w, 0, ra, rb, sample)
			data := w.EndScan()

			decodeContexts := newRunModeContexts(traits.Range)
			r := NewBitReader(data)
			got, err := decodeRunInterruptionPixel(traits, &decodeContexts, r, 0, ra, rb)
			require.NoError(t, err)
			require.Equal(t, reconstructed, got, "sample=%d ra=%d rb=%d", sample, ra, rb)
		}
	}
}
