package charls

// Per-k lookup tables that shortcut regular-mode decoding for the common
// case of a short Golomb code: the next 8 bits of the stream are enough
// to recover both the code length and the decoded value. Grounded on
// original_source/src/lookuptable.h's GolombCodeTable/GolombCode, with
// the flat [256]entry layout taken from jpeg/common/huffman.go's
// lookupTable ([256]int16, -1 sentinel for "no short code here").

// golombLUTEntry is one slot of a 256-entry per-k table: the decoded
// value and the number of bits the code actually occupied, or
// bitCount == 0 if the next 8 bits don't resolve to a complete short code.
type golombLUTEntry struct {
	value    int
	bitCount int
}

// golombLUT is a fast decode table for one Golomb parameter k, indexed by
// the next 8 bits of stream (MSB-first, left-justified as returned by
// BitReader.PeekByte).
type golombLUT struct {
	entries [256]golombLUTEntry
}

// maxLUTBits bounds how long a unary prefix the table will resolve; codes
// needing a longer prefix fall back to the bit-by-bit decode path.
const maxLUTBits = 8

// buildGolombLUT constructs the short-code table for Golomb parameter k
// against the regular-mode escape parameters (limit, qbpp), the same
// triple passed to BitWriter.AppendMappedValue / BitReader.DecodeMappedValue.
// Every byte value whose code (unary prefix + k low bits) fits within 8
// bits gets an entry; everything else is left with bitCount == 0.
func buildGolombLUT(k, limit, qbpp int) *golombLUT {
	lut := &golombLUT{}
	for highBits := 0; highBits+1+k <= maxLUTBits; highBits++ {
		if highBits >= limit-qbpp-1 {
			break
		}
		codeLen := highBits + 1 + k
		for low := 0; low < (1 << uint(k)); low++ {
			mappedError := (highBits << uint(k)) | low
			code := byte(1)<<uint(maxLUTBits-highBits-1) | byte(low)<<uint(maxLUTBits-codeLen)
			addEntry(lut, code, codeLen, golombLUTEntry{value: mappedError, bitCount: codeLen})
		}
	}
	return lut
}

// addEntry fills every byte whose top bitCount bits equal code with entry,
// mirroring GolombCodeTable::AddEntry's "fill 1<<(8-bitCount) slots" trick:
// the remaining 8-bitCount bits are don't-cares for matching purposes.
func addEntry(lut *golombLUT, code byte, bitCount int, entry golombLUTEntry) {
	fillCount := 1 << uint(maxLUTBits-bitCount)
	base := int(code)
	for i := 0; i < fillCount; i++ {
		lut.entries[base+i] = entry
	}
}

// lookup returns the decoded mapped error value and bits consumed for the
// given 8-bit peek, or ok == false if the code needs more than 8 bits and
// the caller must fall back to BitReader.DecodeMappedValue.
func (t *golombLUT) lookup(peeked byte) (value, bitCount int, ok bool) {
	e := t.entries[peeked]
	if e.bitCount == 0 {
		return 0, 0, false
	}
	return e.value, e.bitCount, true
}

// golombLUTCache lazily builds and caches one table per Golomb parameter
// k for a given (limit, qbpp) pair, since k only ranges over a handful of
// small values within any one scan. Grounded on jpegls/lossless/traits.go's
// pattern of precomputing small per-context tables.
type golombLUTCache struct {
	limit, qbpp int
	tables      []*golombLUT // indexed by k
}

func newGolombLUTCache(limit, qbpp int) *golombLUTCache {
	return &golombLUTCache{limit: limit, qbpp: qbpp}
}

func (c *golombLUTCache) forK(k int) *golombLUT {
	if k < len(c.tables) && c.tables[k] != nil {
		return c.tables[k]
	}
	for len(c.tables) <= k {
		c.tables = append(c.tables, nil)
	}
	lut := buildGolombLUT(k, c.limit, c.qbpp)
	c.tables[k] = lut
	return lut
}
