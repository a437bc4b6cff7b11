// Package charls implements the JPEG-LS (ISO/IEC 14495-1) lossless and
// near-lossless still-image compression algorithm: context-adaptive
// median prediction, Golomb-Rice entropy coding, and run-length coding
// over flat regions.
//
// This package is a scan codec, not a file-format codec: it encodes and
// decodes a raw entropy-coded scan against caller-supplied ScanParams and
// Preset values, reading/writing samples through the LineSource/LineSink
// interfaces. Framing a scan into a JPEG-LS bitstream (SOI/SOF55/SOS
// markers, the JPEG-LS preset-parameters marker segment) is left to a
// caller; this package only ever sees the entropy-coded bytes between a
// scan's start and its terminating marker.
//
// Encoding a single-component, lossless scan:
//
//	w := charls.NewBitWriter()
//	params := charls.ScanParams{Width: 512, Height: 512, Components: 1, BitsPerSample: 8}
//	n, err := charls.EncodeScan(params, charls.Preset{}, 0, src, w)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// Decoding the result back, restricted to a region of interest:
//
//	r := charls.NewBitReader(encoded)
//	err := charls.DecodeScan(params, charls.Preset{}, 0, r, sink, charls.ROI{Y0: 0, Y1: 256})
//
// Near-lossless compression is selected with a nonzero near argument: the
// decoder then reconstructs samples within near of the original rather
// than bit-exact. Preset zero-value fields fall back to the ISO/IEC
// 14495-1 Annex C defaults for the scan's bit depth and near value.
package charls
