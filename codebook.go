package huffman

import (
	"bytes"
	"fmt"
	"io"

	"github.com/chronos-tachyon/assert"
)

// Codebook maps each symbol of a Tree to its Code.
//
// Codes are read off the tree with left=0 and right=1, so no code is a prefix
// of another.  A tree consisting of a single leaf gets the one-bit code "0".
type Codebook struct {
	codes   [NumSymbols]Code
	present [NumSymbols]bool
	size    int
	minSize byte
	maxSize byte
}

// NewCodebook computes the Codebook for a tree.  The empty tree yields the
// empty Codebook.
func NewCodebook(t Tree) Codebook {
	var cb Codebook
	if t.Empty() {
		return cb
	}
	if t.isLeaf(t.root) {
		cb.set(t.nodes[t.root].symbol, MakeCode(1, 0))
		return cb
	}
	var path Code
	cb.fill(t, t.root, &path)
	return cb
}

// fill assigns codes to every leaf below index.  path is shared by the whole
// traversal: a bit is pushed on the way down and popped on the way back up.
func (cb *Codebook) fill(t Tree, index int32, path *Code) {
	n := &t.nodes[index]
	if n.kind == leafNode {
		cb.set(n.symbol, *path)
		return
	}

	assert.Assertf(path.Size < maxBitsPerCode, "code length exceeds %d bits", maxBitsPerCode)
	path.push(0)
	cb.fill(t, n.left, path)
	path.setLast(1)
	cb.fill(t, n.right, path)
	path.pop()
}

func (cb *Codebook) set(symbol Symbol, hc Code) {
	if cb.size == 0 {
		cb.minSize, cb.maxSize = hc.Size, hc.Size
	} else if cb.minSize > hc.Size {
		cb.minSize = hc.Size
	} else if cb.maxSize < hc.Size {
		cb.maxSize = hc.Size
	}
	cb.codes[symbol] = hc
	cb.present[symbol] = true
	cb.size++
}

// Encode returns the Code for symbol, and whether symbol has a code at all.
func (cb *Codebook) Encode(symbol Symbol) (Code, bool) {
	return cb.codes[symbol], cb.present[symbol]
}

// Len returns the number of symbols with a code.
func (cb *Codebook) Len() int {
	return cb.size
}

// MinSize is the bit length of the shortest code.
func (cb *Codebook) MinSize() byte {
	return cb.minSize
}

// MaxSize is the bit length of the longest code.
func (cb *Codebook) MaxSize() byte {
	return cb.maxSize
}

// Dump writes a programmer-readable debugging dump of the Codebook to the
// given writer.
func (cb *Codebook) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("Codebook{\n")
	fmt.Fprintf(&buf, "\tMinSize() = %d\n", cb.minSize)
	fmt.Fprintf(&buf, "\tMaxSize() = %d\n", cb.maxSize)
	for symbol := 0; symbol < NumSymbols; symbol++ {
		if cb.present[symbol] {
			fmt.Fprintf(&buf, "\tEncode(%d) = %s\n", symbol, cb.codes[symbol])
		}
	}
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}
