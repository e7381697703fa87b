package huffman

import (
	"container/heap"
	"sort"
)

// CodeTable maps each symbol to its prefix code, written as a string of
// '0'/'1'. The set of codes is prefix-free by construction: codes are only
// assigned at tree leaves. The table is side information — the encoded bytes
// cannot be decoded without it.
type CodeTable map[rune]string

// node is either a leaf (sym set, left/right nil) or an internal node.
type node struct {
	sym   rune
	leaf  bool
	freq  int
	order int // insertion sequence, breaks frequency ties deterministically
	left  *node
	right *node
}

type nodeHeap []*node

func (h nodeHeap) Len() int { return len(h) }
func (h nodeHeap) Less(i, j int) bool {
	if h[i].freq != h[j].freq {
		return h[i].freq < h[j].freq
	}
	return h[i].order < h[j].order
}
func (h nodeHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }
func (h *nodeHeap) Push(x any)   { *h = append(*h, x.(*node)) }
func (h *nodeHeap) Pop() any {
	old := *h
	n := old[len(old)-1]
	*h = old[:len(old)-1]
	return n
}

// BuildCodes derives a prefix-code table from a symbol frequency table.
//
// Leaves enter the queue in sorted symbol order and ties are broken by that
// insertion order, so the same frequencies always produce the same table.
// That matters: the table is persisted and must decode the same bytes later.
func BuildCodes(freq map[rune]int) (CodeTable, error) {
	if len(freq) == 0 {
		return nil, ErrEmptyInput
	}

	syms := make([]rune, 0, len(freq))
	for r := range freq {
		syms = append(syms, r)
	}
	sort.Slice(syms, func(i, j int) bool { return syms[i] < syms[j] })

	// A single distinct symbol has no internal node to descend from;
	// give it the one-bit code directly.
	if len(syms) == 1 {
		return CodeTable{syms[0]: "0"}, nil
	}

	h := make(nodeHeap, 0, len(syms))
	order := 0
	for _, r := range syms {
		h = append(h, &node{sym: r, leaf: true, freq: freq[r], order: order})
		order++
	}
	heap.Init(&h)

	for h.Len() > 1 {
		a := heap.Pop(&h).(*node) // first popped becomes the 0-branch
		b := heap.Pop(&h).(*node)
		heap.Push(&h, &node{freq: a.freq + b.freq, order: order, left: a, right: b})
		order++
	}
	root := heap.Pop(&h).(*node)

	table := make(CodeTable, len(syms))
	assign(root, "", table)
	return table, nil
}

func assign(n *node, prefix string, table CodeTable) {
	if n.leaf {
		table[n.sym] = prefix
		return
	}
	assign(n.left, prefix+"0", table)
	assign(n.right, prefix+"1", table)
}
