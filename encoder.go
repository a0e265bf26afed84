package huffman

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/chronos-tachyon/assert"
	"github.com/icza/bitio"
	"github.com/pkg/errors"
)

// Bitstream is a sequence of bits packed most-significant-bit first.  The
// unused low-order bits of the final byte are always zero.
type Bitstream struct {
	data []byte
	size int
}

// ParseBitstream constructs a Bitstream from a string of '0' and '1'
// characters.
func ParseBitstream(str string) (Bitstream, error) {
	data := make([]byte, (len(str)+7)/8)
	for i := 0; i < len(str); i++ {
		switch str[i] {
		case '0':
		case '1':
			data[i/8] |= 0x80 >> uint(i%8)
		default:
			return Bitstream{}, errors.Errorf("invalid bit %q at index %d", str[i], i)
		}
	}
	return Bitstream{data: data, size: len(str)}, nil
}

// EncodeSymbols concatenates the code of every input symbol, in order.  It
// fails with ErrUnknownSymbol if the codebook lacks a symbol.
func EncodeSymbols(cb *Codebook, symbols []byte) (Bitstream, error) {
	var buf bytes.Buffer
	buf.Grow((estimateBits(len(symbols), cb.Len()) + 7) / 8)

	w := bitio.NewWriter(&buf)
	size := 0
	for i, b := range symbols {
		hc, found := cb.Encode(Symbol(b))
		if !found {
			return Bitstream{}, errors.Wrapf(ErrUnknownSymbol, "symbol %d at offset %d", b, i)
		}
		if err := w.WriteBits(hc.Bits, hc.Size); err != nil {
			return Bitstream{}, errors.Wrap(err, "huffman: write code")
		}
		size += int(hc.Size)
	}

	skipped, err := w.Align()
	if err != nil {
		return Bitstream{}, errors.Wrap(err, "huffman: align bitstream")
	}
	if err := w.Close(); err != nil {
		return Bitstream{}, errors.Wrap(err, "huffman: flush bitstream")
	}

	bs := Bitstream{data: buf.Bytes(), size: size}
	assert.Assertf(skipped == bs.PadCount(), "writer skipped %d bits, expected %d", skipped, bs.PadCount())
	return bs, nil
}

// Len returns the number of bits.
func (bs Bitstream) Len() int {
	return bs.size
}

// Bit returns the i'th bit.
func (bs Bitstream) Bit(i int) byte {
	return (bs.data[i/8] >> (7 - uint(i%8))) & 1
}

// Bytes returns the packed bits without the pad count.  The caller must not
// modify the result.
func (bs Bitstream) Bytes() []byte {
	return bs.data
}

// PadCount returns the number of filler bits in the final byte.
func (bs Bitstream) PadCount() byte {
	return byte((8 - bs.size%8) % 8)
}

// Pack returns the serialized payload: the pad count followed by the packed
// bits.
func (bs Bitstream) Pack() []byte {
	out := make([]byte, 1+len(bs.data))
	out[0] = bs.PadCount()
	copy(out[1:], bs.data)
	return out
}

// String returns the bits as a string of '0' and '1' characters.
func (bs Bitstream) String() string {
	var buf strings.Builder
	buf.Grow(bs.size)
	for i := 0; i < bs.size; i++ {
		buf.WriteByte('0' + bs.Bit(i))
	}
	return buf.String()
}

var _ fmt.Stringer = Bitstream{}
