package charls

// defaultThreshold1, defaultThreshold2, defaultThreshold3 and
// defaultResetValue are the ISO/IEC 14495-1 Annex C.2.4.1.1 constants used
// to derive default preset coding parameters.
const (
	defaultThreshold1 = 3
	defaultThreshold2 = 7
	defaultThreshold3 = 21
	defaultResetValue = 64
)

// clampISO implements the clamping function of ISO/IEC 14495-1 Figure C.3:
// if i is out of [j, maximumSampleValue], the result is j.
func clampISO(i, j, maximumSampleValue int) int {
	if i > maximumSampleValue || i < j {
		return j
	}
	return i
}

// computeDefaultPreset derives (T1, T2, T3, Reset) from (maxVal, near) per
// ISO/IEC 14495-1 Annex C.2.4.1.1, matching original_source/src/util.h's
// ComputeDefault.
func computeDefaultPreset(maxVal, near int) Preset {
	limit := maxVal
	if limit > 4095 {
		limit = 4095
	}
	factor := (limit + 128) / 256

	t1 := clampISO(factor*(defaultThreshold1-2)+2+3*near, near+1, maxVal)
	t2 := clampISO(factor*(defaultThreshold2-3)+3+5*near, t1, maxVal)
	t3 := clampISO(factor*(defaultThreshold3-4)+4+7*near, t2, maxVal)

	return Preset{
		MaxVal: maxVal,
		T1:     t1,
		T2:     t2,
		T3:     t3,
		Reset:  defaultResetValue,
	}
}
