package charls

// MED (median edge detector) prediction (component E). Grounded on
// jpegls/lossless/predictor.go's Predict function and on
// original_source/src/scan.h's GetPredictedValue. edgeDetection below
// computes the same three-way choice by comparing c against a and b
// directly instead of against max(a,b)/min(a,b).

// predict returns the MED prediction for the current sample given its
// west (a), north (b) and north-west (c) causal neighbors, per ISO/IEC
// 14495-1 §A.2 and Figure A.2. Written as the direct if/else chain from
// the standard's text; kept as a reference to check edgeDetection's
// sign-trick form against in tests.
func predict(a, b, c int) int {
	if c >= max(a, b) {
		return min(a, b)
	}
	if c <= min(a, b) {
		return max(a, b)
	}
	return a + b - c
}

// edgeDetection is the equivalent of predict that regular.go calls: it
// compares c against a and against b and branches on whether the two
// comparisons agree, so max(a,b)/min(a,b) are only computed for the
// chosen edge case.
func edgeDetection(a, b, c int) int {
	if (c >= a) == (c >= b) {
		if c >= a {
			return min(a, b)
		}
		return max(a, b)
	}
	return a + b - c
}
