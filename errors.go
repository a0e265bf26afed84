package huffman

import (
	"github.com/pkg/errors"
)

// ErrCorrupt is returned when serialized table or payload data is malformed.
// It is always wrapped with a description of what was wrong and where.
var ErrCorrupt = errors.New("huffman: corrupt data")

// ErrUnknownSymbol is returned when asked to encode a symbol that has no code.
var ErrUnknownSymbol = errors.New("huffman: symbol not in codebook")

// ErrFrequencyRange is returned when a frequency table holding counts above
// MaxFrequency is serialized.
var ErrFrequencyRange = errors.New("huffman: frequency out of range")

func corruptf(format string, args ...interface{}) error {
	return errors.Wrapf(ErrCorrupt, format, args...)
}
