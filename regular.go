package charls

// Regular-mode pixel coding (component F): the common case where the
// three causal gradients around a pixel aren't all zero (that all-zero
// case is run mode instead; scan.go tells the two apart and only calls
// into this file when regular mode applies). Grounded on
// jpegls/lossless/{encoder,decoder}.go's DoRegular-equivalent bodies and
// on original_source/src/scan.h's DoRegular, including its use of the
// sign trick to halve the context table and the GolombCodeTable fast
// decode path.

// quantizeTriple buckets the three causal gradients D1=d-b, D2=b-c,
// D3=c-a around a pixel with west neighbor a, north neighbor b,
// north-west neighbor c and north-east neighbor d, per ISO/IEC
// 14495-1 Figure A.2, via the per-scan precomputed table.
func quantizeTriple(traits *Traits, a, b, c, d int) (int, int, int) {
	q1 := traits.quant.quantize(d - b)
	q2 := traits.quant.quantize(b - c)
	q3 := traits.quant.quantize(c - a)
	return q1, q2, q3
}

// regularContext resolves the signed context index for the three
// quantized gradients into (context pointer, sign), per
// original_source/src/scan.h: contexts are only stored for non-negative
// IDs, so a negative ID is looked up by absolute value and the sign is
// folded back into the predicted error.
func regularContext(contexts []Context, q1, q2, q3 int) (*Context, int) {
	id := contextID(q1, q2, q3)
	sign := bitwiseSign(id)
	index := applySign(id, sign)
	assert(index < numRegularContexts, "context index %d out of range", index)
	return &contexts[index], sign
}

// encodeRegular codes one pixel in regular mode: predicts, applies the
// context's bias, computes the folded error, XORs in the k==0
// bias-cancellation correction, writes it as a Golomb code, and returns
// the reconstructed sample value (identical to the input sample in
// lossless mode, a quantized neighbor in near-lossless mode).
func encodeRegular(traits *Traits, contexts []Context, w *BitWriter, a, b, c, d, sample int) int {
	q1, q2, q3 := quantizeTriple(traits, a, b, c, d)
	ctx, sign := regularContext(contexts, q1, q2, q3)

	predicted := traits.correctPrediction(edgeDetection(a, b, c) + applySign(ctx.C, sign))
	errorValue := traits.ComputeErrVal(applySign(sample-predicted, sign))

	k := ctx.ComputeGolombParameter()
	correction := ctx.GetErrorCorrection(k | traits.Near)
	w.AppendMappedValue(k, MapErrorValue(errorValue^correction), traits.Limit, traits.Qbpp)
	ctx.UpdateContext(errorValue, traits.Near, traits.Reset)

	return traits.ComputeReconstructedSample(predicted, applySign(errorValue, sign))
}

// decodeRegular is encodeRegular's inverse: reads one Golomb-coded error
// value (via the per-k short-code LUT when possible, falling back to the
// bit-by-bit decode) and reconstructs the sample.
func decodeRegular(traits *Traits, contexts []Context, luts *golombLUTCache, r *BitReader, a, b, c, d int) (int, error) {
	q1, q2, q3 := quantizeTriple(traits, a, b, c, d)
	ctx, sign := regularContext(contexts, q1, q2, q3)

	predicted := traits.correctPrediction(edgeDetection(a, b, c) + applySign(ctx.C, sign))

	k := ctx.ComputeGolombParameter()
	mappedError, err := decodeMappedFast(r, luts, k, traits.Limit, traits.Qbpp)
	if err != nil {
		return 0, err
	}
	correction := ctx.GetErrorCorrection(k | traits.Near)
	errorValue := UnmapErrorValue(mappedError) ^ correction

	ctx.UpdateContext(errorValue, traits.Near, traits.Reset)

	return traits.ComputeReconstructedSample(predicted, applySign(errorValue, sign)), nil
}

// decodeMappedFast tries the per-k short-code LUT first (the common
// case for well-predicted pixels) and falls back to the general
// bit-by-bit decode when the code is longer than the LUT covers.
func decodeMappedFast(r *BitReader, luts *golombLUTCache, k, limit, qbpp int) (int, error) {
	if luts != nil {
		lut := luts.forK(k)
		peeked := byte(r.PeekByte())
		if value, bitCount, ok := lut.lookup(peeked); ok {
			if err := r.Skip(bitCount); err != nil {
				return 0, err
			}
			return value, nil
		}
	}
	return r.DecodeMappedValue(k, limit, qbpp)
}
