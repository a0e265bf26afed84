package huffman

import (
	"fmt"
	"strconv"
)

// maxBitsPerCode is the longest Code that can be represented.  Trees built
// from 8-bit frequencies stay far below it.
const maxBitsPerCode = 64

// Code represents a sequence of bits.
type Code struct {
	// Size holds the number of valid bits.
	Size byte

	// Bits holds the actual values of the bits.  The most significant of
	// the Size valid bits is the first bit.
	Bits uint64
}

// MakeCode is a convenience function that constructs a Code.
func MakeCode(size byte, bits uint64) Code {
	return Code{Size: size, Bits: bits}
}

// ParseCode constructs a Code from a string of '0' and '1' characters.
func ParseCode(str string) (Code, error) {
	if len(str) > maxBitsPerCode {
		return Code{}, fmt.Errorf("code %q is longer than %d bits", str, maxBitsPerCode)
	}
	var hc Code
	for i := 0; i < len(str); i++ {
		switch str[i] {
		case '0':
			hc.push(0)
		case '1':
			hc.push(1)
		default:
			return Code{}, fmt.Errorf("invalid bit %q at index %d of code %q", str[i], i, str)
		}
	}
	return hc, nil
}

// Bit returns the i'th bit of the Code, counting from the first.
func (hc Code) Bit(i int) byte {
	return byte(hc.Bits>>(uint(hc.Size)-1-uint(i))) & 1
}

// HasPrefix reports whether prefix is a prefix of this Code.
func (hc Code) HasPrefix(prefix Code) bool {
	if prefix.Size > hc.Size {
		return false
	}
	return hc.Bits>>(hc.Size-prefix.Size) == prefix.Bits
}

// String returns the string representation of this Code.
func (hc Code) String() string {
	if hc.Size == 0 {
		return "\"\""
	}
	format := "%0" + strconv.FormatUint(uint64(hc.Size), 10) + "b"
	return strconv.Quote(fmt.Sprintf(format, hc.Bits))
}

var _ fmt.Stringer = Code{}

func (hc *Code) push(bit uint64) {
	hc.Bits = hc.Bits<<1 | bit
	hc.Size++
}

func (hc *Code) setLast(bit uint64) {
	hc.Bits = hc.Bits&^1 | bit
}

func (hc *Code) pop() {
	hc.Bits >>= 1
	hc.Size--
}
