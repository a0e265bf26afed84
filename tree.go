package huffman

import (
	"bytes"
	"container/heap"
	"fmt"
	"io"
	"math"

	"github.com/chronos-tachyon/assert"
)

type nodeKind byte

const (
	leafNode nodeKind = iota
	internalNode
)

// node is one entry in a Tree's arena.  Leaves use symbol; internal nodes use
// left and right, which are indices into the same arena.
type node struct {
	kind   nodeKind
	symbol Symbol
	freq   uint32
	left   int32
	right  int32
}

// Tree is a Huffman code tree.  All nodes live in a single slice and refer to
// their children by index, so a Tree is released as a unit.
//
// The zero value is the empty tree, which has no root.
type Tree struct {
	nodes []node
	root  int32
}

// BuildTree constructs the Huffman tree for a frequency table.  An empty
// table yields the empty tree.
//
// Construction is deterministic: nodes are merged lowest-priority first,
// where priority is ordered by
//
//     1. frequency;
//     2. if both nodes are internal with equal frequency, the priority of
//        their right children;
//     3. a leaf before an internal node;
//     4. the lower symbol of two leaves.
//
// Each step pops a and then b and pushes the internal node {left: b, right: a}.
//
func BuildTree(freqs FrequencyTable) Tree {
	numLeaves := freqs.Len()
	if numLeaves == 0 {
		return Tree{}
	}

	t := Tree{nodes: make([]node, 0, 2*numLeaves-1)}
	for _, symbol := range freqs.Symbols() {
		freq, _ := freqs.Get(symbol)
		t.nodes = append(t.nodes, node{kind: leafNode, symbol: symbol, freq: freq})
	}

	h := nodeHeap{tree: &t, list: make([]int32, numLeaves)}
	for i := range h.list {
		h.list[i] = int32(i)
	}
	h.Init()

	for h.Len() > 1 {
		a := heap.Pop(&h).(int32)
		b := heap.Pop(&h).(int32)
		freqSum := t.nodes[a].freq + t.nodes[b].freq
		if freqSum < t.nodes[a].freq {
			freqSum = math.MaxUint32
		}
		t.nodes = append(t.nodes, node{
			kind:  internalNode,
			freq:  freqSum,
			left:  b,
			right: a,
		})
		heap.Push(&h, int32(len(t.nodes)-1))
	}

	t.root = heap.Pop(&h).(int32)
	assert.Assertf(len(t.nodes) == 2*numLeaves-1, "tree has %d nodes for %d leaves", len(t.nodes), numLeaves)
	return t
}

// Empty reports whether this is the empty tree.
func (t Tree) Empty() bool {
	return len(t.nodes) == 0
}

// Len returns the number of leaves, i.e. the number of distinct symbols.
func (t Tree) Len() int {
	return (len(t.nodes) + 1) / 2
}

// Weight returns the frequency of the root, which is the sum of all leaf
// frequencies saturated at math.MaxUint32.
func (t Tree) Weight() uint32 {
	if t.Empty() {
		return 0
	}
	return t.nodes[t.root].freq
}

func (t Tree) isLeaf(index int32) bool {
	return t.nodes[index].kind == leafNode
}

func (t Tree) child(index int32, bit bool) int32 {
	if bit {
		return t.nodes[index].right
	}
	return t.nodes[index].left
}

// less orders two nodes of the same tree by merge priority.
func (t Tree) less(i, j int32) bool {
	a, b := &t.nodes[i], &t.nodes[j]
	for a.freq == b.freq && a.kind == internalNode && b.kind == internalNode {
		a, b = &t.nodes[a.right], &t.nodes[b.right]
	}
	if a.freq != b.freq {
		return a.freq < b.freq
	}
	if a.kind != b.kind {
		return a.kind == leafNode
	}
	return a.symbol < b.symbol
}

// Dump writes a programmer-readable debugging dump of the tree to the given
// writer.  Nodes are listed in pre-order, keyed by their path from the root.
func (t Tree) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("Tree{\n")
	if !t.Empty() {
		t.walk(func(index int32, path Code) {
			n := &t.nodes[index]
			if n.kind == leafNode {
				fmt.Fprintf(&buf, "\t%s = %d:%d\n", path, n.symbol, n.freq)
			} else {
				fmt.Fprintf(&buf, "\t%s = [%d]\n", path, n.freq)
			}
		})
	}
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}

// walk visits every node in pre-order using an explicit stack.
//
// stackItem.x tracks progress through a node:
//   x=0 → visit the node itself
//   x=1 → descend into the left child
//   x=2 → descend into the right child
//   x=3 → done
func (t Tree) walk(visit func(index int32, path Code)) {
	type stackItem struct {
		index int32
		path  Code
		x     byte
	}

	stack := make([]stackItem, 0, 16)
	stack = append(stack, stackItem{index: t.root})
	for len(stack) != 0 {
		top := &stack[len(stack)-1]
		x := top.x
		top.x++
		switch {
		case x == 0:
			visit(top.index, top.path)
			if t.isLeaf(top.index) {
				top.x = 3
			}
		case x == 1 || x == 2:
			path := top.path
			path.push(uint64(x - 1))
			stack = append(stack, stackItem{index: t.child(top.index, x == 2), path: path})
		default:
			stack = stack[:len(stack)-1]
		}
	}
}

// type nodeHeap {{{

type nodeHeap struct {
	tree *Tree
	list []int32
}

func (h *nodeHeap) Init() {
	heap.Init(h)
}

func (h *nodeHeap) Len() int {
	return len(h.list)
}

func (h *nodeHeap) Swap(i, j int) {
	h.list[i], h.list[j] = h.list[j], h.list[i]
}

func (h *nodeHeap) Less(i, j int) bool {
	return h.tree.less(h.list[i], h.list[j])
}

func (h *nodeHeap) Push(x interface{}) {
	h.list = append(h.list, x.(int32))
}

func (h *nodeHeap) Pop() interface{} {
	last := len(h.list) - 1
	x := h.list[last]
	h.list = h.list[:last]
	return x
}

var _ heap.Interface = (*nodeHeap)(nil)

// }}}
