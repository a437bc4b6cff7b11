package charls

// Gradient quantization (component D): reduces a local gradient into one
// of nine buckets {-4..4} against the three preset thresholds, then
// combines three such buckets into a single context index. Grounded on
// jpegls/lossless/predictor.go (GradientQuantizer, quantizeGradient,
// ComputeContextID) and on original_source/src/scan.h's
// InitQuantizationLUT, which precomputes the same thresholds into a
// table indexed by offset difference for speed.

// quantizeGradient buckets a gradient d against thresholds t1 < t2 < t3
// into {-4,...,4}, per ISO/IEC 14495-1 Table A.1.
func quantizeGradient(d, t1, t2, t3 int) int {
	switch {
	case d <= -t3:
		return -4
	case d <= -t2:
		return -3
	case d <= -t1:
		return -2
	case d < 0:
		return -1
	case d == 0:
		return 0
	case d < t1:
		return 1
	case d < t2:
		return 2
	case d < t3:
		return 3
	default:
		return 4
	}
}

// quantizationLUT precomputes quantizeGradient over the full range of
// differences a scan can produce, [-2*MaxVal, 2*MaxVal], so the hot inner
// loop of regular-mode context computation (quantizeTriple in regular.go)
// is a slice index rather than a comparison chain. One table is built per
// Traits and shared by every pixel in the scan. Mirrors
// InitQuantizationLUT's per-bit-depth precomputed tables.
type quantizationLUT struct {
	offset int
	table  []int8
}

func newQuantizationLUT(maxVal, t1, t2, t3 int) *quantizationLUT {
	offset := 2 * maxVal
	table := make([]int8, 4*maxVal+1)
	for d := -2 * maxVal; d <= 2*maxVal; d++ {
		table[d+offset] = int8(quantizeGradient(d, t1, t2, t3))
	}
	return &quantizationLUT{offset: offset, table: table}
}

func (q *quantizationLUT) quantize(d int) int {
	return int(q.table[d+q.offset])
}

// contextID combines three quantized gradients into a single signed
// context index in [-364, 364], per original_source/src/scan.h's
// ComputeContextID: (q1*9+q2)*9+q3.
func contextID(q1, q2, q3 int) int {
	return (q1*9+q2)*9 + q3
}

// bitwiseSign returns -1 for a negative int and 0 otherwise, the
// branchless sign extraction original_source/src/util.h calls
// BitWiseSign (i >> 31 for a 32-bit int).
func bitwiseSign(i int) int {
	if i < 0 {
		return -1
	}
	return 0
}

// applySign returns i negated when sign is -1 and unchanged when sign is
// 0, matching original_source/src/util.h's ApplySign: (sign ^ i) - sign.
func applySign(i, sign int) int {
	return (sign ^ i) - sign
}
