package hufftree

import (
	"container/heap"
)

// Queue is a min-priority queue of tree nodes keyed by combined frequency.
//
// Nodes with equal frequency are extracted in insertion order, so that a
// given frequency table always produces the same tree.
//
type Queue struct {
	h       nodeHeap
	nextSeq uint64
}

// Len returns the number of nodes in the queue.
func (q *Queue) Len() int {
	return q.h.Len()
}

// Insert adds a node to the queue in O(log n).
func (q *Queue) Insert(node *Node) {
	heap.Push(&q.h, queueItem{node: node, seq: q.nextSeq})
	q.nextSeq++
}

// ExtractMin removes and returns the node with the smallest frequency in
// O(log n).  It returns ErrEmptyQueue if the queue is empty.
func (q *Queue) ExtractMin() (*Node, error) {
	if q.h.Len() == 0 {
		return nil, ErrEmptyQueue
	}
	item := heap.Pop(&q.h).(queueItem)
	return item.node, nil
}

// type queueItem + type nodeHeap {{{

type queueItem struct {
	node *Node
	seq  uint64
}

type nodeHeap struct {
	list []queueItem
}

func (h *nodeHeap) Len() int {
	return len(h.list)
}

func (h *nodeHeap) Swap(i, j int) {
	h.list[i], h.list[j] = h.list[j], h.list[i]
}

func (h *nodeHeap) Less(i, j int) bool {
	a, b := h.list[i], h.list[j]
	if a.node.Freq != b.node.Freq {
		return a.node.Freq < b.node.Freq
	}
	return a.seq < b.seq
}

func (h *nodeHeap) Push(x interface{}) {
	h.list = append(h.list, x.(queueItem))
}

func (h *nodeHeap) Pop() interface{} {
	last := uint(len(h.list)) - 1
	x := h.list[last]
	h.list[last] = queueItem{}
	h.list = h.list[:last]
	return x
}

var _ heap.Interface = (*nodeHeap)(nil)

// }}}
