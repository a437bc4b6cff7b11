package charls

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestComputeDefaultPresetLossless8Bit(t *testing.T) {
	// The canonical ISO/IEC 14495-1 Annex C.2.4.1.1 example: 8-bit,
	// lossless (near=0) defaults to T1=3, T2=7, T3=21, RESET=64.
	preset := computeDefaultPreset(255, 0)
	require.Equal(t, 3, preset.T1)
	require.Equal(t, 7, preset.T2)
	require.Equal(t, 21, preset.T3)
	require.Equal(t, 64, preset.Reset)
}

func TestComputeDefaultPresetThresholdsAscend(t *testing.T) {
	for _, maxVal := range []int{3, 15, 255, 1023, 4095, 65535} {
		for _, near := range []int{0, 1, 3, 7} {
			preset := computeDefaultPreset(maxVal, near)
			require.LessOrEqual(t, preset.T1, preset.T2, "maxVal=%d near=%d", maxVal, near)
			require.LessOrEqual(t, preset.T2, preset.T3, "maxVal=%d near=%d", maxVal, near)
			// clampISO falls back to its lower bound near+1 when that bound
			// itself exceeds maxVal, so the ceiling is max(maxVal, near+1).
			require.LessOrEqual(t, preset.T3, max(maxVal, near+1))
			require.GreaterOrEqual(t, preset.T1, near+1)
		}
	}
}

func TestClampISO(t *testing.T) {
	require.Equal(t, 5, clampISO(5, 5, 100))
	require.Equal(t, 5, clampISO(2, 5, 100))
	require.Equal(t, 5, clampISO(200, 5, 100))
	require.Equal(t, 50, clampISO(50, 5, 100))
}

func TestPresetResolvedFillsZeroFields(t *testing.T) {
	preset := Preset{}
	resolved := preset.resolved(255, 0)
	require.Equal(t, 255, resolved.MaxVal)
	require.Equal(t, 3, resolved.T1)
	require.Equal(t, 64, resolved.Reset)
}

func TestPresetResolvedKeepsExplicitFields(t *testing.T) {
	preset := Preset{T1: 5}
	resolved := preset.resolved(255, 0)
	require.Equal(t, 5, resolved.T1)
	require.Equal(t, 7, resolved.T2) // still defaulted
}

func TestPresetValidateRejectsDescendingThresholds(t *testing.T) {
	preset := Preset{T1: 10, T2: 5}
	require.Error(t, preset.Validate(0))
}

func TestPresetValidateRejectsOutOfRangeReset(t *testing.T) {
	preset := Preset{Reset: 300}
	require.Error(t, preset.Validate(0))
}
