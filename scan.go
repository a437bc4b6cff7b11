package charls

import "fmt"

// Scan-level orchestration (component H): the public entry points that
// drive a full scan line by line, dispatching each pixel to regular mode
// or run mode and handling the three interleave layouts. Grounded on
// original_source/src/scan.h's DoScan/DoLine (line-buffer bookkeeping,
// per-component state, the west/north/north-west/north-east neighbor
// window, and the Triplet form of DoLine/EncodeRIPixel that codes a run
// across every component in lockstep) and on jpegls/lossless's
// encoder.go/decoder.go for the constructor-plus-internal-method
// orchestration style.

// LineSource supplies one line of samples at a time to an encoder. For
// InterleaveNone, each call returns Width samples of a single component;
// for InterleaveLine, Width samples of whichever component is currently
// being coded; for InterleaveSample, Width*Components samples with
// components interleaved per pixel.
type LineSource interface {
	NextLine(buf []uint16) error
}

// LineSink receives one reconstructed line at a time from a decoder, with
// the same layout convention as LineSource.
type LineSink interface {
	PutLine(buf []uint16) error
}

// ROI restricts decoding output to a rectangular region: only lines in
// [Y0,Y1) reach the sink, and within those lines only columns in
// [X0,X1) are included in the buffer passed to PutLine. The zero value
// means "the whole image" (resolved against ScanParams by ROI.resolve).
type ROI struct {
	Y0, Y1 int
	X0, X1 int
}

func (roi ROI) resolve(p ScanParams) ROI {
	out := roi
	if out.Y1 == 0 {
		out.Y1 = p.Height
	}
	if out.X1 == 0 {
		out.X1 = p.Width
	}
	return out
}

// componentsPerLine returns how many interleaved components one
// LineSource.NextLine/LineSink.PutLine call carries for p's interleave
// mode.
func componentsPerLine(p ScanParams) int {
	if p.Interleave == InterleaveSample {
		return p.Components
	}
	return 1
}

// scanUnit bundles the adaptive state for one independently-coded
// component (or, under InterleaveSample, the one state shared by all
// components; see newScanUnits).
type scanUnit struct {
	traits      *Traits
	contexts    []Context
	runContexts [2]RunModeContext
	runIndex    int
	luts        *golombLUTCache
}

func newScanUnit(traits *Traits) *scanUnit {
	return &scanUnit{
		traits:      traits,
		contexts:    newContextTable(traits.Range),
		runContexts: newRunModeContexts(traits.Range),
		luts:        newGolombLUTCache(traits.Limit, traits.Qbpp),
	}
}

// newScanUnits returns one scanUnit per component, except under
// InterleaveSample or InterleaveNone where there is exactly one: the
// former shares context state across the interleaved components (ISO/
// IEC 14495-1's Triplet coding), the latter only ever codes one
// component per EncodeScan/DecodeScan call in the first place.
func newScanUnits(p ScanParams, traits *Traits) []*scanUnit {
	n := p.Components
	if p.Interleave != InterleaveLine {
		n = 1
	}
	units := make([]*scanUnit, n)
	for i := range units {
		units[i] = newScanUnit(traits)
	}
	return units
}

// componentRows holds the previous and current line buffers for one
// component, sized Width+2 with sentinel columns at 0 and Width+1.
type componentRows struct {
	prev, cur []int
}

func newComponentRows(width int) *componentRows {
	return &componentRows{prev: make([]int, width+2), cur: make([]int, width+2)}
}

// startRow seeds the west and north-west sentinels for a new row: with
// no real neighbor to the west or northwest of column 1, both borrow the
// value of the north neighbor at column 1 (ISO/IEC 14495-1's edge
// convention, also applied by original_source/src/scan.h's line-init
// code and jpegls/lossless's DoLine).
func (cr *componentRows) startRow(width int) {
	cr.prev[0] = cr.prev[1]
	cr.cur[0] = cr.prev[1]
	cr.prev[width+1] = cr.prev[width]
}

func (cr *componentRows) advance() {
	cr.prev, cr.cur = cr.cur, cr.prev
}

func neighbors(rows *componentRows, x int) (a, b, c, d int) {
	return rows.cur[x-1], rows.prev[x], rows.prev[x-1], rows.prev[x+1]
}

// EncodeScan entropy-codes one scan's worth of lines read from src,
// writing to w, and returns the number of bytes written.
func EncodeScan(p ScanParams, preset Preset, near int, src LineSource, w *BitWriter) (int, error) {
	if err := p.Validate(); err != nil {
		return 0, err
	}
	resolved := preset.resolved(p.MaxVal(), near)
	if err := resolved.Validate(near); err != nil {
		return 0, err
	}
	traits := NewTraits(resolved, p.BitsPerSample, near)
	units := newScanUnits(p, traits)

	nComponents := 1
	if p.Interleave == InterleaveLine {
		nComponents = p.Components
	} else if p.Interleave == InterleaveSample {
		nComponents = p.Components
	}
	rows := make([]*componentRows, nComponents)
	for i := range rows {
		rows[i] = newComponentRows(p.Width)
	}

	lineBuf := make([]uint16, p.Width*componentsPerLine(p))
	for y := 0; y < p.Height; y++ {
		switch p.Interleave {
		case InterleaveSample:
			if err := src.NextLine(lineBuf); err != nil {
				return 0, fmt.Errorf("charls: reading line %d: %w", y, err)
			}
			encodeSampleLine(units[0], w, rows, p.Width, nComponents, lineBuf)
		case InterleaveLine:
			for comp := 0; comp < p.Components; comp++ {
				if err := src.NextLine(lineBuf); err != nil {
					return 0, fmt.Errorf("charls: reading line %d component %d: %w", y, comp, err)
				}
				encodeComponentLine(units[comp], w, rows[comp], p.Width, lineBuf)
			}
		default:
			if err := src.NextLine(lineBuf); err != nil {
				return 0, fmt.Errorf("charls: reading line %d: %w", y, err)
			}
			encodeComponentLine(units[0], w, rows[0], p.Width, lineBuf)
		}
	}
	return len(w.EndScan()), nil
}

// encodeComponentLine codes one full line of one component, reading raw
// samples from buf (overwritten in place with reconstructed values) and
// advancing the component's row buffers.
func encodeComponentLine(unit *scanUnit, w *BitWriter, rows *componentRows, width int, buf []uint16) {
	rows.startRow(width)
	for x := 0; x < width; x++ {
		rows.cur[x+1] = int(buf[x])
	}
	for x := 1; x <= width; {
		x = encodeOnePixelRun(unit, w, rows, width, x)
	}
	for x := 0; x < width; x++ {
		buf[x] = uint16(rows.cur[x+1])
	}
	rows.advance()
}

// encodeOnePixelRun codes the pixel (or run) starting at column x,
// returning the column just past what it coded.
func encodeOnePixelRun(unit *scanUnit, w *BitWriter, rows *componentRows, width, x int) int {
	a, b, c, d := neighbors(rows, x)
	q1, q2, q3 := quantizeTriple(unit.traits, a, b, c, d)
	if q1 != 0 || q2 != 0 || q3 != 0 {
		sample := rows.cur[x]
		rows.cur[x] = encodeRegular(unit.traits, unit.contexts, w, a, b, c, d, sample)
		return x + 1
	}

	maxRun := width - x + 1
	runLength := 0
	for runLength < maxRun && unit.traits.IsNear(rows.cur[x+runLength], a) {
		runLength++
	}
	endOfLine := runLength == maxRun

	encodeRunLength(w, &unit.runIndex, runLength, endOfLine)
	for i := 0; i < runLength; i++ {
		rows.cur[x+i] = a
	}
	x += runLength
	if !endOfLine {
		b = rows.prev[x]
		sample := rows.cur[x]
		rows.cur[x] = encodeRunInterruptionPixel(unit.traits, &unit.runContexts, w, unit.runIndex, a, b, sample)
		unit.runIndex = decrementRunIndex(unit.runIndex)
		x++
	}
	return x
}

// encodeSampleLine codes one full, sample-interleaved row: a pixel
// position is only eligible for run mode when every component's context
// quantizes to zero there, and a run's length is the longest span for
// which every component stays within tolerance of its own west neighbor,
// matching original_source/src/scan.h's Triplet-specialized DoLine, which
// shares run bookkeeping across components rather than interleaving
// independent per-component runs.
func encodeSampleLine(unit *scanUnit, w *BitWriter, rows []*componentRows, width, nComponents int, lineBuf []uint16) {
	for c := 0; c < nComponents; c++ {
		rows[c].startRow(width)
		for x := 0; x < width; x++ {
			rows[c].cur[x+1] = int(lineBuf[x*nComponents+c])
		}
	}

	x := 1
	for x <= width {
		if !allComponentsZeroContext(unit, rows, nComponents, x) {
			for c := 0; c < nComponents; c++ {
				a, b, cc, d := neighbors(rows[c], x)
				sample := rows[c].cur[x]
				rows[c].cur[x] = encodeRegular(unit.traits, unit.contexts, w, a, b, cc, d, sample)
			}
			x++
			continue
		}

		maxRun := width - x + 1
		runLength := maxRun
		for c := 0; c < nComponents; c++ {
			a := rows[c].cur[x-1]
			l := 0
			for l < maxRun && unit.traits.IsNear(rows[c].cur[x+l], a) {
				l++
			}
			if l < runLength {
				runLength = l
			}
		}
		endOfLine := runLength == maxRun

		encodeRunLength(w, &unit.runIndex, runLength, endOfLine)
		for c := 0; c < nComponents; c++ {
			a := rows[c].cur[x-1]
			for i := 0; i < runLength; i++ {
				rows[c].cur[x+i] = a
			}
		}
		x += runLength
		if !endOfLine {
			for c := 0; c < nComponents; c++ {
				a := rows[c].cur[x-1]
				b := rows[c].prev[x]
				sample := rows[c].cur[x]
				rows[c].cur[x] = encodeRunInterruptionPixel(unit.traits, &unit.runContexts, w, unit.runIndex, a, b, sample)
			}
			unit.runIndex = decrementRunIndex(unit.runIndex)
			x++
		}
	}

	for c := 0; c < nComponents; c++ {
		for x := 0; x < width; x++ {
			lineBuf[x*nComponents+c] = uint16(rows[c].cur[x+1])
		}
		rows[c].advance()
	}
}

func allComponentsZeroContext(unit *scanUnit, rows []*componentRows, nComponents, x int) bool {
	for c := 0; c < nComponents; c++ {
		a, b, cc, d := neighbors(rows[c], x)
		q1, q2, q3 := quantizeTriple(unit.traits, a, b, cc, d)
		if q1 != 0 || q2 != 0 || q3 != 0 {
			return false
		}
	}
	return true
}

// DecodeScan is EncodeScan's inverse: it reads a scan's entropy-coded
// bytes from r and writes reconstructed lines to sink, restricted to the
// given region of interest.
func DecodeScan(p ScanParams, preset Preset, near int, r *BitReader, sink LineSink, roi ROI) error {
	if err := p.Validate(); err != nil {
		return err
	}
	resolved := preset.resolved(p.MaxVal(), near)
	if err := resolved.Validate(near); err != nil {
		return err
	}
	traits := NewTraits(resolved, p.BitsPerSample, near)
	units := newScanUnits(p, traits)
	region := roi.resolve(p)

	nComponents := 1
	if p.Interleave == InterleaveLine || p.Interleave == InterleaveSample {
		nComponents = p.Components
	}
	rows := make([]*componentRows, nComponents)
	for i := range rows {
		rows[i] = newComponentRows(p.Width)
	}

	lineBuf := make([]uint16, p.Width*componentsPerLine(p))
	for y := 0; y < p.Height; y++ {
		switch p.Interleave {
		case InterleaveSample:
			if err := decodeSampleLine(units[0], r, rows, p.Width, nComponents); err != nil {
				return fmt.Errorf("charls: decoding line %d: %w", y, err)
			}
			if y >= region.Y0 && y < region.Y1 {
				for c := 0; c < nComponents; c++ {
					for x := 0; x < p.Width; x++ {
						lineBuf[x*nComponents+c] = uint16(rows[c].cur[x+1])
					}
				}
				if err := sink.PutLine(clipSample(lineBuf, nComponents, region)); err != nil {
					return fmt.Errorf("charls: writing line %d: %w", y, err)
				}
			}
			for c := 0; c < nComponents; c++ {
				rows[c].advance()
			}
		case InterleaveLine:
			for comp := 0; comp < p.Components; comp++ {
				if err := decodeComponentLine(units[comp], r, rows[comp], p.Width, lineBuf); err != nil {
					return fmt.Errorf("charls: decoding line %d component %d: %w", y, comp, err)
				}
				if y >= region.Y0 && y < region.Y1 {
					if err := sink.PutLine(clipNone(lineBuf, region)); err != nil {
						return fmt.Errorf("charls: writing line %d component %d: %w", y, comp, err)
					}
				}
			}
		default:
			if err := decodeComponentLine(units[0], r, rows[0], p.Width, lineBuf); err != nil {
				return fmt.Errorf("charls: decoding line %d: %w", y, err)
			}
			if y >= region.Y0 && y < region.Y1 {
				if err := sink.PutLine(clipNone(lineBuf, region)); err != nil {
					return fmt.Errorf("charls: writing line %d: %w", y, err)
				}
			}
		}
	}
	return r.EndScan()
}

func decodeComponentLine(unit *scanUnit, r *BitReader, rows *componentRows, width int, buf []uint16) error {
	rows.startRow(width)
	for x := 1; x <= width; {
		next, err := decodeOnePixelRun(unit, r, rows, width, x)
		if err != nil {
			return err
		}
		x = next
	}
	for x := 0; x < width; x++ {
		buf[x] = uint16(rows.cur[x+1])
	}
	rows.advance()
	return nil
}

func decodeOnePixelRun(unit *scanUnit, r *BitReader, rows *componentRows, width, x int) (int, error) {
	a, b, c, d := neighbors(rows, x)
	q1, q2, q3 := quantizeTriple(unit.traits, a, b, c, d)
	if q1 != 0 || q2 != 0 || q3 != 0 {
		sample, err := decodeRegular(unit.traits, unit.contexts, unit.luts, r, a, b, c, d)
		if err != nil {
			return 0, err
		}
		rows.cur[x] = sample
		return x + 1, nil
	}

	maxRun := width - x + 1
	runLength, endOfLine, err := decodeRunLength(r, &unit.runIndex, maxRun)
	if err != nil {
		return 0, err
	}
	for i := 0; i < runLength; i++ {
		rows.cur[x+i] = a
	}
	x += runLength
	if !endOfLine {
		b = rows.prev[x]
		sample, err := decodeRunInterruptionPixel(unit.traits, &unit.runContexts, r, unit.runIndex, a, b)
		if err != nil {
			return 0, err
		}
		rows.cur[x] = sample
		unit.runIndex = decrementRunIndex(unit.runIndex)
		x++
	}
	return x, nil
}

// decodeSampleLine is encodeSampleLine's inverse.
func decodeSampleLine(unit *scanUnit, r *BitReader, rows []*componentRows, width, nComponents int) error {
	for c := 0; c < nComponents; c++ {
		rows[c].startRow(width)
	}

	x := 1
	for x <= width {
		if !allComponentsZeroContext(unit, rows, nComponents, x) {
			for c := 0; c < nComponents; c++ {
				a, b, cc, d := neighbors(rows[c], x)
				sample, err := decodeRegular(unit.traits, unit.contexts, unit.luts, r, a, b, cc, d)
				if err != nil {
					return err
				}
				rows[c].cur[x] = sample
			}
			x++
			continue
		}

		maxRun := width - x + 1
		runLength, endOfLine, err := decodeRunLength(r, &unit.runIndex, maxRun)
		if err != nil {
			return err
		}
		for c := 0; c < nComponents; c++ {
			a := rows[c].cur[x-1]
			for i := 0; i < runLength; i++ {
				rows[c].cur[x+i] = a
			}
		}
		x += runLength
		if !endOfLine {
			for c := 0; c < nComponents; c++ {
				a := rows[c].cur[x-1]
				b := rows[c].prev[x]
				sample, err := decodeRunInterruptionPixel(unit.traits, &unit.runContexts, r, unit.runIndex, a, b)
				if err != nil {
					return err
				}
				rows[c].cur[x] = sample
			}
			unit.runIndex = decrementRunIndex(unit.runIndex)
			x++
		}
	}
	return nil
}

// clipNone restricts a non-sample-interleaved line buffer to the ROI's
// column range.
func clipNone(buf []uint16, region ROI) []uint16 {
	if region.X0 == 0 && region.X1 == len(buf) {
		return buf
	}
	return buf[region.X0:region.X1]
}

// clipSample restricts a sample-interleaved line buffer (nComponents
// values per pixel) to the ROI's column range.
func clipSample(buf []uint16, nComponents int, region ROI) []uint16 {
	if region.X0 == 0 && region.X1*nComponents == len(buf) {
		return buf
	}
	return buf[region.X0*nComponents : region.X1*nComponents]
}
