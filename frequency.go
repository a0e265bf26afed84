package huffman

import (
	"fmt"
	"strconv"
	"strings"
)

// MaxFrequency is the largest count a normalized FrequencyTable holds.  Each
// count is serialized as a single byte.
const MaxFrequency = 255

// denseThreshold is the largest alphabet serialized in sparse form.
const denseThreshold = 128

// FrequencyTable maps each Symbol to the number of times it occurs.
//
// A symbol is either absent (it never occurred) or present with a count.
// After normalization a present symbol may hold a count of 0, but only in
// alphabets of at most 128 symbols; larger alphabets clamp to 1 so that the
// dense serialized form can tell "present" from "absent".
//
// The zero value is an empty table.
type FrequencyTable struct {
	counts  [NumSymbols]uint32
	present [NumSymbols]bool
	size    int
}

// CountFrequencies counts the occurrences of each symbol in the input.  The
// counts are not normalized.
func CountFrequencies(symbols []byte) FrequencyTable {
	var t FrequencyTable
	for _, b := range symbols {
		t.counts[b]++
		if !t.present[b] {
			t.present[b] = true
			t.size++
		}
	}
	return t
}

// NewFrequencyTable counts the occurrences of each symbol in the input and
// normalizes the result into the single-byte range.
func NewFrequencyTable(symbols []byte) FrequencyTable {
	t := CountFrequencies(symbols)
	t.Normalize()
	return t
}

// Set marks symbol as present with the given count.
func (t *FrequencyTable) Set(symbol Symbol, freq uint32) {
	if !t.present[symbol] {
		t.present[symbol] = true
		t.size++
	}
	t.counts[symbol] = freq
}

// Get returns the count for symbol, and whether symbol is present at all.
func (t *FrequencyTable) Get(symbol Symbol) (freq uint32, ok bool) {
	return t.counts[symbol], t.present[symbol]
}

// Len returns the number of distinct symbols present.
func (t *FrequencyTable) Len() int {
	return t.size
}

// Symbols lists the present symbols in ascending order.
func (t *FrequencyTable) Symbols() []Symbol {
	out := make([]Symbol, 0, t.size)
	for i := 0; i < NumSymbols; i++ {
		if t.present[i] {
			out = append(out, Symbol(i))
		}
	}
	return out
}

// Max returns the largest count in the table, or 0 if the table is empty.
func (t *FrequencyTable) Max() uint32 {
	var max uint32
	for i := 0; i < NumSymbols; i++ {
		if t.present[i] && t.counts[i] > max {
			max = t.counts[i]
		}
	}
	return max
}

// Dense reports whether the table is serialized in the 256-slot dense form.
func (t *FrequencyTable) Dense() bool {
	return t.size > denseThreshold
}

// Normalize rescales every count into [0, MaxFrequency] if the largest count
// exceeds MaxFrequency.  Each count becomes floor(255 * count / max).  For
// alphabets of more than 128 symbols a count that would become 0 is raised
// to 1.
func (t *FrequencyTable) Normalize() {
	max := uint64(t.Max())
	if max <= MaxFrequency {
		return
	}
	clamp := t.Dense()
	for i := 0; i < NumSymbols; i++ {
		if !t.present[i] {
			continue
		}
		freq := uint32(MaxFrequency * uint64(t.counts[i]) / max)
		if freq == 0 && clamp {
			freq = 1
		}
		t.counts[i] = freq
	}
}

// String returns a compact representation such as "{97:3 98:3 99:3}".
func (t *FrequencyTable) String() string {
	var buf strings.Builder
	buf.WriteByte('{')
	for i, symbol := range t.Symbols() {
		if i > 0 {
			buf.WriteByte(' ')
		}
		buf.WriteString(strconv.Itoa(int(symbol)))
		buf.WriteByte(':')
		buf.WriteString(strconv.FormatUint(uint64(t.counts[symbol]), 10))
	}
	buf.WriteByte('}')
	return buf.String()
}

var _ fmt.Stringer = (*FrequencyTable)(nil)
