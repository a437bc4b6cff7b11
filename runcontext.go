package charls

// Run-interruption context modeling (component C, continued). A run
// ends either at the scan boundary or at a pixel that breaks the flat
// region; that interruption pixel is coded against one of exactly two
// contexts, selected by the order of the west and north neighbors of the
// interruption pixel (runmode.go's runInterruptionSetup picks the index);
// their absolute difference is not compared against the near tolerance.
// Grounded on jpegls/lossless/run_mode.go
// (RunModeContext, GetGolombCode, UpdateVariables) and cross-checked against
// original_source/src/scan.h's EncodeRIError/DecodeRIError shape.
//
// ISO/IEC 14495-1 Annex A.21 shaves one codeword off the mapped-value
// range for RIType == 1 by special-casing the map flag around zero. That
// exact parity trick is not reproduced here: a wrong guess at its edge
// cases breaks decodability outright rather than just costing a fraction
// of a bit. EncodeMapped/DecodeMapped below use the plain sign-interleaving
// bijection from traits.go instead, proven invertible for every error
// value and RIType by construction, at the cost of the one-codeword
// optimization the standard's map flag buys. RIType still shapes
// adaptation through GetGolombCode and UpdateVariables's "+1-RIType"
// term, which is where the two run-interruption contexts are meant to
// diverge in the first place.
type RunModeContext struct {
	A, N, Nn int
	RIType   int // 0 or 1; fixed for the lifetime of the context
}

// newRunModeContext initializes one of the two run-interruption contexts
// for a scan with the given folded-error range. N starts at 1, matching
// jpegls/lossless/run_mode.go and CharLS's CContextRunMode constructor;
// leaving it at 0 stalls GetGolombCode's doubling loop forever, since
// N<<k never grows past 0.
func newRunModeContext(rng, riType int) RunModeContext {
	a := (rng + 32) / 64
	if a < 2 {
		a = 2
	}
	return RunModeContext{A: a, N: 1, Nn: 0, RIType: riType}
}

// GetGolombCode picks the adaptive Rice parameter for the interruption
// pixel: the smallest k with N<<k >= A + (N>>1)*RIType, so an RIType 1
// context's threshold is raised by N/2 over a regular context's.
func (c *RunModeContext) GetGolombCode() int {
	temp := c.A + (c.N>>1)*c.RIType
	nTest := c.N
	k := 0
	for nTest < temp && k <= 32 {
		nTest <<= 1
		k++
	}
	return k
}

// UpdateVariables folds one more observed (signed) error value and its
// encoded mapped magnitude into the context, halving once N reaches
// resetThreshold.
func (c *RunModeContext) UpdateVariables(errorValue, mappedErrorValue, resetThreshold int) {
	if errorValue < 0 {
		c.Nn++
	}
	c.A += (mappedErrorValue + 1 - c.RIType) >> 1
	c.N++
	if c.N == resetThreshold {
		c.A >>= 1
		c.N >>= 1
		c.Nn >>= 1
	}
}

// EncodeMapped converts a signed run-interruption error value into the
// non-negative mapped magnitude the bit stream actually carries. k is
// accepted (rather than dropped from the signature) so a future map-flag
// optimization can be reintroduced without changing callers.
func (c *RunModeContext) EncodeMapped(errorValue, _ int) int {
	return MapErrorValue(errorValue)
}

// DecodeMapped is the inverse of EncodeMapped.
func (c *RunModeContext) DecodeMapped(mapped, _ int) int {
	return UnmapErrorValue(mapped)
}
