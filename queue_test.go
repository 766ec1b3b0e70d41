package hufftree

import (
	"errors"
	"testing"
)

func TestQueue_ExtractMin(t *testing.T) {
	var q Queue
	nodes := []*Node{
		NewLeaf(10, 3),
		NewLeaf(11, 1),
		NewLeaf(12, 2),
		NewLeaf(13, 1),
		NewLeaf(14, 0.5),
	}
	for _, n := range nodes {
		q.Insert(n)
	}
	if q.Len() != len(nodes) {
		t.Errorf("expected Len %d, got %d", len(nodes), q.Len())
	}

	expect := []Symbol{14, 11, 13, 12, 10}
	for i, sym := range expect {
		n, err := q.ExtractMin()
		if err != nil {
			t.Fatalf("ExtractMin #%d failed: %v", i, err)
		}
		if n.Symbol != sym {
			t.Errorf("ExtractMin #%d: expected symbol %d, got %d", i, sym, n.Symbol)
		}
	}

	_, err := q.ExtractMin()
	if !errors.Is(err, ErrEmptyQueue) {
		t.Errorf("expected ErrEmptyQueue, got %v", err)
	}
}

func TestQueue_TiesFollowInsertionOrder(t *testing.T) {
	var q Queue
	for sym := Symbol(0); sym < 20; sym++ {
		q.Insert(NewLeaf(sym, 1))
	}
	for sym := Symbol(0); sym < 20; sym++ {
		n, err := q.ExtractMin()
		if err != nil {
			t.Fatalf("ExtractMin failed: %v", err)
		}
		if n.Symbol != sym {
			t.Fatalf("expected symbol %d, got %d", sym, n.Symbol)
		}
	}
}
