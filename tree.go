package huffpack

import (
	"container/heap"
	"errors"
	"io"

	"github.com/seif/huffpack/bitstream"
)

// countFrequencies scans the source once and returns one occurrence count
// per symbol, indexed 0..endOfData. The endOfData marker is forced to
// exactly 1 so the trie always grows a leaf for it, even when the source
// is empty.
func countFrequencies(r *bitstream.Reader) ([]uint64, error) {
	counts := make([]uint64, alphabetSize+1)
	for {
		v, err := r.ReadBits(bitsPerWord)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}
		counts[v]++
	}
	counts[endOfData] = 1
	return counts, nil
}

// buildTree assembles a minimum-weighted-path-length trie by greedy
// pairwise merging: repeatedly join the two lightest nodes under a fresh
// inner node until one root remains. Symbols with a zero count get no
// leaf. When only the endOfData leaf qualifies, that leaf is the root and
// its code is zero-length.
func buildTree(counts []uint64) node {
	h := &nodeHeap{}
	for sym, c := range counts {
		if c > 0 {
			heap.Push(h, &leaf{w: c, sym: uint16(sym)})
		}
	}
	for h.Len() > 1 {
		left := heap.Pop(h).(node)
		right := heap.Pop(h).(node)
		heap.Push(h, &inner{w: left.weight() + right.weight(), left: left, right: right})
	}
	return heap.Pop(h).(node)
}

// nodeHeap orders construction nodes by weight ascending. Equal weights
// fall back to insertion order, which keeps this implementation
// deterministic; the resulting shape is not part of the format, since the
// concrete trie always travels in the stream header.
type nodeHeap struct {
	nodes []node
	seq   []int
	next  int
}

func (h *nodeHeap) Len() int { return len(h.nodes) }

func (h *nodeHeap) Less(i, j int) bool {
	if h.nodes[i].weight() != h.nodes[j].weight() {
		return h.nodes[i].weight() < h.nodes[j].weight()
	}
	return h.seq[i] < h.seq[j]
}

func (h *nodeHeap) Swap(i, j int) {
	h.nodes[i], h.nodes[j] = h.nodes[j], h.nodes[i]
	h.seq[i], h.seq[j] = h.seq[j], h.seq[i]
}

func (h *nodeHeap) Push(x any) {
	h.nodes = append(h.nodes, x.(node))
	h.seq = append(h.seq, h.next)
	h.next++
}

func (h *nodeHeap) Pop() any {
	n := len(h.nodes) - 1
	item := h.nodes[n]
	h.nodes = h.nodes[:n]
	h.seq = h.seq[:n]
	return item
}
