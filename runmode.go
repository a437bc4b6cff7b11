package charls

// Run mode (component G): flat regions (all three causal gradients
// quantize to zero) are coded as a run length against an adaptive table
// of run-length units, terminated either by the line ending or by an
// "interruption" pixel that breaks the flat run, which is itself coded
// against one of two dedicated run-interruption contexts. Grounded on
// jpegls/lossless/run_mode.go (the J table, IncrementRunIndex/
// DecrementRunIndex) and on original_source/src/scan.h's
// EncodeRunPixels/DoRunMode/EncodeRIPixel/DecodeRunPixels.

// runLengthJ is the standard run-length unit exponent table of ISO/IEC
// 14495-1 Annex A Table A.5: run index i codes runs in units of
// 1<<runLengthJ[i] pixels.
var runLengthJ = [32]int{
	0, 0, 0, 0, 1, 1, 1, 1,
	2, 2, 2, 2, 3, 3, 3, 3,
	4, 4, 5, 5, 6, 6, 7, 7,
	8, 9, 10, 11, 12, 13, 14, 15,
}

func incrementRunIndex(runIndex int) int {
	if runIndex < len(runLengthJ)-1 {
		return runIndex + 1
	}
	return runIndex
}

func decrementRunIndex(runIndex int) int {
	if runIndex > 0 {
		return runIndex - 1
	}
	return 0
}

// encodeRunLength writes runLength as a sequence of full run-length
// units (one '1' bit each) followed by either a terse end-of-line marker
// or an explicit remainder, per original_source/src/scan.h's
// EncodeRunPixels.
func encodeRunLength(w *BitWriter, runIndex *int, runLength int, endOfLine bool) {
	for runLength >= (1 << uint(runLengthJ[*runIndex])) {
		w.AppendOnes(1)
		runLength -= 1 << uint(runLengthJ[*runIndex])
		*runIndex = incrementRunIndex(*runIndex)
	}
	if endOfLine {
		if runLength != 0 {
			w.AppendOnes(1)
		}
		return
	}
	w.AppendBits(0, 1)
	if runLengthJ[*runIndex] > 0 {
		w.AppendBits(uint32(runLength), runLengthJ[*runIndex])
	}
}

// decodeRunLength is encodeRunLength's inverse. maxRunLength is the
// number of pixels remaining in the line, including the would-be
// interruption pixel; the returned endOfLine is true when the run
// consumes the rest of the line outright.
func decodeRunLength(r *BitReader, runIndex *int, maxRunLength int) (runLength int, endOfLine bool, err error) {
	for {
		unit := 1 << uint(runLengthJ[*runIndex])
		if runLength+unit > maxRunLength {
			break
		}
		bit, e := r.ReadBit()
		if e != nil {
			return 0, false, e
		}
		if bit == 0 {
			rem, e := readRunRemainder(r, *runIndex)
			if e != nil {
				return 0, false, e
			}
			return runLength + rem, false, nil
		}
		runLength += unit
		*runIndex = incrementRunIndex(*runIndex)
	}
	if remaining := maxRunLength - runLength; remaining == 0 {
		return runLength, true, nil
	}
	bit, e := r.ReadBit()
	if e != nil {
		return 0, false, e
	}
	if bit == 1 {
		return maxRunLength, true, nil
	}
	rem, e := readRunRemainder(r, *runIndex)
	if e != nil {
		return 0, false, e
	}
	return runLength + rem, false, nil
}

func readRunRemainder(r *BitReader, runIndex int) (int, error) {
	if runLengthJ[runIndex] == 0 {
		return 0, nil
	}
	return r.ReadValue(runLengthJ[runIndex])
}

// runInterruptionSetup picks the predictor and run-interruption context
// index for the pixel that breaks a run, from its west (ra) and north
// (rb) causal neighbors: a descending edge (ra > rb) predicts from rb
// and is coded against context 1; otherwise it predicts from ra and is
// coded against context 0. This determines which of the two
// RunModeContext values (built once per scan by newRunModeContexts) a
// given interruption pixel uses.
func runInterruptionSetup(ra, rb int) (predicted, riType int) {
	if ra > rb {
		return rb, 1
	}
	return ra, 0
}

// newRunModeContexts builds the two run-interruption contexts for a scan.
func newRunModeContexts(rng int) [2]RunModeContext {
	return [2]RunModeContext{
		newRunModeContext(rng, 0),
		newRunModeContext(rng, 1),
	}
}

// encodeRunInterruptionPixel codes the pixel that ends a run and returns
// its reconstructed value.
func encodeRunInterruptionPixel(traits *Traits, runContexts *[2]RunModeContext, w *BitWriter, runIndex int, ra, rb, sample int) int {
	predicted, riType := runInterruptionSetup(ra, rb)
	ctx := &runContexts[riType]

	errorValue := traits.ComputeErrVal(sample - predicted)

	k := ctx.GetGolombCode()
	mapped := ctx.EncodeMapped(errorValue, k)
	w.AppendMappedValue(k, mapped, traits.Limit-runLengthJ[runIndex]-1, traits.Qbpp)
	ctx.UpdateVariables(errorValue, mapped, traits.Reset)

	return traits.ComputeReconstructedSample(predicted, errorValue)
}

// decodeRunInterruptionPixel is encodeRunInterruptionPixel's inverse.
func decodeRunInterruptionPixel(traits *Traits, runContexts *[2]RunModeContext, r *BitReader, runIndex int, ra, rb int) (int, error) {
	predicted, riType := runInterruptionSetup(ra, rb)
	ctx := &runContexts[riType]

	k := ctx.GetGolombCode()
	mapped, err := r.DecodeMappedValue(k, traits.Limit-runLengthJ[runIndex]-1, traits.Qbpp)
	if err != nil {
		return 0, err
	}
	errorValue := ctx.DecodeMapped(mapped, k)
	ctx.UpdateVariables(errorValue, mapped, traits.Reset)

	return traits.ComputeReconstructedSample(predicted, errorValue), nil
}
