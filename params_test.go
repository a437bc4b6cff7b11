package charls

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestScanParamsValidateRejectsBadDimensions(t *testing.T) {
	p := ScanParams{Width: 0, Height: 10, Components: 1, BitsPerSample: 8}
	require.ErrorIs(t, p.Validate(), ErrInvalidParameter)
}

func TestScanParamsValidateRejectsBadBitDepth(t *testing.T) {
	p := ScanParams{Width: 10, Height: 10, Components: 1, BitsPerSample: 20}
	require.ErrorIs(t, p.Validate(), ErrInvalidParameter)
}

func TestScanParamsValidateSampleInterleaveRequiresThreeOrFourComponents(t *testing.T) {
	p := ScanParams{Width: 10, Height: 10, Components: 2, BitsPerSample: 8, Interleave: InterleaveSample}
	require.Error(t, p.Validate())

	p.Components = 3
	require.NoError(t, p.Validate())

	p.Components = 4
	require.NoError(t, p.Validate())
}

func TestScanParamsValidateManyComponentsRequireInterleaveNone(t *testing.T) {
	p := ScanParams{Width: 10, Height: 10, Components: 5, BitsPerSample: 8, Interleave: InterleaveLine}
	require.Error(t, p.Validate())

	p.Interleave = InterleaveNone
	require.NoError(t, p.Validate())
}

func TestScanParamsMaxVal(t *testing.T) {
	p := ScanParams{BitsPerSample: 8}
	require.Equal(t, 255, p.MaxVal())
	p.BitsPerSample = 12
	require.Equal(t, 4095, p.MaxVal())
}

func TestInterleaveModeString(t *testing.T) {
	require.Equal(t, "None", InterleaveNone.String())
	require.Equal(t, "Line", InterleaveLine.String())
	require.Equal(t, "Sample", InterleaveSample.String())
}

func TestScanParamsValidateColorTransformRequiresThreeComponents(t *testing.T) {
	p := ScanParams{Width: 10, Height: 10, Components: 4, BitsPerSample: 8, ColorTransform: ColorTransformHP1}
	require.ErrorIs(t, p.Validate(), ErrUnsupportedColorTransform)

	p.Components = 3
	require.NoError(t, p.Validate())
}

func TestScanParamsValidateColorTransformRejectsHighBitDepth(t *testing.T) {
	p := ScanParams{Width: 10, Height: 10, Components: 3, BitsPerSample: 12, ColorTransform: ColorTransformHP2}
	require.ErrorIs(t, p.Validate(), ErrUnsupportedBitDepth)
}

func TestComponentsPerLine(t *testing.T) {
	require.Equal(t, 1, componentsPerLine(ScanParams{Interleave: InterleaveNone}))
	require.Equal(t, 1, componentsPerLine(ScanParams{Interleave: InterleaveLine}))
	require.Equal(t, 3, componentsPerLine(ScanParams{Interleave: InterleaveSample, Components: 3}))
}
