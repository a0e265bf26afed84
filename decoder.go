package huffman

import (
	"bytes"

	"github.com/icza/bitio"
	"github.com/pkg/errors"
)

// Unpack parses a serialized payload produced by Bitstream.Pack.
//
// The payload is rejected with ErrCorrupt if the pad count byte is missing or
// larger than 7, if a non-zero pad count has no data byte to apply to, or if
// any padding bit is set.
//
func Unpack(payload []byte) (Bitstream, error) {
	if len(payload) == 0 {
		return Bitstream{}, corruptf("payload: missing pad count byte")
	}
	pad, data := payload[0], payload[1:]
	if pad > 7 {
		return Bitstream{}, corruptf("payload: pad count %d > 7", pad)
	}
	if len(data) == 0 {
		if pad != 0 {
			return Bitstream{}, corruptf("payload: pad count %d with no data", pad)
		}
		return Bitstream{}, nil
	}
	if mask := byte(1)<<pad - 1; data[len(data)-1]&mask != 0 {
		return Bitstream{}, corruptf("payload: padding bits set in final byte %#02x", data[len(data)-1])
	}
	return Bitstream{data: data, size: 8*len(data) - int(pad)}, nil
}

// DecodeSymbols walks the tree once per bit, 0 to the left and 1 to the
// right, emitting a symbol and restarting at the root on every leaf.
//
// The bitstream must end exactly on a symbol boundary; otherwise ErrCorrupt
// is returned and no output is produced.  For a single-leaf tree every bit
// must be 0.
//
func DecodeSymbols(t Tree, bs Bitstream) ([]byte, error) {
	if t.Empty() {
		if bs.Len() != 0 {
			return nil, corruptf("bitstream: %d bits but no tree", bs.Len())
		}
		return nil, nil
	}

	out := make([]byte, 0, estimateSymbols(bs.Len(), t.Len()))
	r := bitio.NewReader(bytes.NewReader(bs.data))

	if t.isLeaf(t.root) {
		symbol := byte(t.nodes[t.root].symbol)
		for i := 0; i < bs.Len(); i++ {
			bit, err := r.ReadBool()
			if err != nil {
				return nil, errors.Wrapf(err, "huffman: read bit %d", i)
			}
			if bit {
				return nil, corruptf("bitstream: bit %d is 1 but the only code is \"0\"", i)
			}
			out = append(out, symbol)
		}
		return out, nil
	}

	current := t.root
	for i := 0; i < bs.Len(); i++ {
		bit, err := r.ReadBool()
		if err != nil {
			return nil, errors.Wrapf(err, "huffman: read bit %d", i)
		}
		current = t.child(current, bit)
		if t.isLeaf(current) {
			out = append(out, byte(t.nodes[current].symbol))
			current = t.root
		}
	}
	if current != t.root {
		return nil, corruptf("bitstream: ends inside a code after %d symbols", len(out))
	}
	return out, nil
}
