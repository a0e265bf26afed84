package huffman

import (
	"io"

	"github.com/pkg/errors"
)

// maxSizeByte is the largest alphabet size the metadata byte can record.  A
// full 256-symbol alphabet is recorded as 255; both select the dense form.
const maxSizeByte = 255

// MarshalTable returns the serialized form of a frequency table:
//
//     n := min(t.Len(), 255)
//     n > 128:  n, then the frequency of each symbol 0..255 (0 if absent)
//     n <= 128: n, then (symbol, frequency) for each present symbol, ascending
//
// The empty table serializes to no bytes at all.  ErrFrequencyRange is
// returned if a count does not fit in a byte, or if a dense table holds a
// present symbol with count 0.
//
func MarshalTable(t FrequencyTable) ([]byte, error) {
	n := t.Len()
	if n == 0 {
		return nil, nil
	}
	if max := t.Max(); max > MaxFrequency {
		return nil, errors.Wrapf(ErrFrequencyRange, "count %d > %d", max, MaxFrequency)
	}

	sizeByte := n
	if sizeByte > maxSizeByte {
		sizeByte = maxSizeByte
	}

	if t.Dense() {
		out := make([]byte, 1+NumSymbols)
		out[0] = byte(sizeByte)
		for i := 0; i < NumSymbols; i++ {
			if t.present[i] && t.counts[i] == 0 {
				return nil, errors.Wrapf(ErrFrequencyRange, "symbol %d has count 0 in dense form", i)
			}
			out[1+i] = byte(t.counts[i])
		}
		return out, nil
	}

	out := make([]byte, 0, 1+2*n)
	out = append(out, byte(sizeByte))
	for _, symbol := range t.Symbols() {
		out = append(out, byte(symbol), byte(t.counts[symbol]))
	}
	return out, nil
}

// WriteTable writes the serialized form of t to w and returns the number of
// bytes written.
func WriteTable(w io.Writer, t FrequencyTable) (int, error) {
	raw, err := MarshalTable(t)
	if err != nil {
		return 0, err
	}
	n, err := w.Write(raw)
	if err != nil {
		return n, errors.Wrap(err, "huffman: write table")
	}
	return n, nil
}

// ReadTable parses a serialized frequency table from the front of p.  It
// returns the table and the number of bytes it occupied; anything after that
// offset, such as an appended payload, is left untouched.
//
// An empty p is the empty table.  ErrCorrupt is returned if p is shorter than
// the layout its metadata byte declares, if a sparse entry repeats a symbol,
// or if the number of non-zero dense entries disagrees with the metadata byte.
//
func ReadTable(p []byte) (FrequencyTable, int, error) {
	var t FrequencyTable
	if len(p) == 0 {
		return t, 0, nil
	}

	n := int(p[0])
	if n > denseThreshold {
		end := 1 + NumSymbols
		if len(p) < end {
			return FrequencyTable{}, 0, corruptf("table: dense form needs %d bytes, have %d", end, len(p))
		}
		for i := 0; i < NumSymbols; i++ {
			if freq := p[1+i]; freq != 0 {
				t.Set(Symbol(i), uint32(freq))
			}
		}
		if t.Len() != n && !(n == maxSizeByte && t.Len() == NumSymbols) {
			return FrequencyTable{}, 0, corruptf("table: metadata declares %d symbols, dense form has %d", n, t.Len())
		}
		return t, end, nil
	}

	end := 1 + 2*n
	if len(p) < end {
		return FrequencyTable{}, 0, corruptf("table: %d sparse entries need %d bytes, have %d", n, end, len(p))
	}
	for i := 0; i < n; i++ {
		symbol := Symbol(p[1+2*i])
		if _, dup := t.Get(symbol); dup {
			return FrequencyTable{}, 0, corruptf("table: symbol %d repeated at entry %d", symbol, i)
		}
		t.Set(symbol, uint32(p[2+2*i]))
	}
	return t, end, nil
}
