package charls

import "golang.org/x/exp/constraints"

// Traits bundles the sample-width-derived constants and formulas that the
// rest of the codec treats as parameters rather than literals: the
// folded-error range, the Golomb escape length, and the reconstruction
// arithmetic for both lossless (Near == 0) and near-lossless (Near > 0)
// scans. Grounded on jpegls/lossless/traits.go (Traits struct, NewTraits,
// ComputeReconstructedSample, ModuloRange, MapErrorValue/UnmapErrorValue)
// and on original_source/src/losslesstraits.h for the exact reconstruction
// and clamping arithmetic.
type Traits struct {
	MaxVal int
	Near   int
	Range  int
	Qbpp   int
	Limit  int
	Reset  int
	T1     int
	T2     int
	T3     int
	quant  *quantizationLUT
}

// NewTraits derives a Traits value from a resolved preset, the sample bit
// depth, and the near-lossless tolerance.
func NewTraits(preset Preset, bitsPerSample, near int) *Traits {
	rng := (preset.MaxVal+2*near)/(2*near+1) + 1
	qbpp := 0
	for (1 << uint(qbpp)) < rng {
		qbpp++
	}
	limit := 2 * (bitsPerSample + max(8, bitsPerSample))
	return &Traits{
		MaxVal: preset.MaxVal,
		Near:   near,
		Range:  rng,
		Qbpp:   qbpp,
		Limit:  limit,
		Reset:  preset.Reset,
		T1:     preset.T1,
		T2:     preset.T2,
		T3:     preset.T3,
		quant:  newQuantizationLUT(preset.MaxVal, preset.T1, preset.T2, preset.T3),
	}
}

// clamp is the one generic numeric helper, used by correctPrediction (and
// through it by ComputeReconstructedSample) below, replacing
// the several hand-written per-type clamp functions jpegls/lossless
// scatters across traits.go/predictor.go with a single definition.
func clamp[T constraints.Integer](v, lo, hi T) T {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// ComputeErrVal folds a raw prediction residual d into the representative
// range [-(Range/2), (Range-1)/2] (integer division) that the entropy
// coder operates on, taking
// the near-lossless quantization step into account (ISO/IEC 14495-1
// Annex A.4).
func (t *Traits) ComputeErrVal(d int) int {
	if t.Near == 0 {
		return t.moduloRange(d)
	}
	var e int
	if d > 0 {
		e = (d + t.Near) / (2*t.Near + 1)
	} else {
		e = -((t.Near - d) / (2*t.Near + 1))
	}
	return t.moduloRange(e)
}

func (t *Traits) moduloRange(e int) int {
	if e < 0 {
		e += t.Range
	}
	if e >= (t.Range+1)/2 {
		e -= t.Range
	}
	return e
}

// ComputeReconstructedSample rebuilds a sample from a predicted value and
// a folded error value, undoing the near-lossless quantization and
// wrapping/clamping exactly as original_source/src/losslesstraits.h's
// ComputeReconstructedSample does.
func (t *Traits) ComputeReconstructedSample(predicted, errVal int) int {
	rx := predicted + errVal*(2*t.Near+1)
	if rx < -t.Near {
		rx += t.Range * (2*t.Near + 1)
	} else if rx > t.MaxVal+t.Near {
		rx -= t.Range * (2*t.Near + 1)
	}
	return t.correctPrediction(rx)
}

// correctPrediction clamps a reconstructed value into [0, MaxVal],
// mirroring CorrectPrediction's branchless mask check for the in-range
// case and a sign-based clamp otherwise.
func (t *Traits) correctPrediction(predicted int) int {
	if predicted&t.MaxVal == predicted {
		return predicted
	}
	return clamp(predicted, 0, t.MaxVal)
}

// IsNear reports whether two samples are within the near-lossless
// tolerance of each other.
func (t *Traits) IsNear(a, b int) bool {
	d := a - b
	if d < 0 {
		d = -d
	}
	return d <= t.Near
}

// MapErrorValue applies the sign-interleaving bijection Z -> N that
// original_source/src/scan.h computes as (e >> 30) ^ (2*e); written here
// as the equivalent branch since the folded error values involved are
// always far smaller than the 32-bit trick's safety margin.
func MapErrorValue(e int) int {
	if e >= 0 {
		return 2 * e
	}
	return -2*e - 1
}

// UnmapErrorValue is the inverse of MapErrorValue.
func UnmapErrorValue(m int) int {
	if m%2 == 0 {
		return m / 2
	}
	return -(m + 1) / 2
}
