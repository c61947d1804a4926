package analyzer

import (
	"log"

	"github.com/pdgclone/pdgclone/domain"
)

// BiList holds two parallel node sequences: the benign-side list (List1)
// and the malicious-side list (List2). A clone group is a BiList whose
// entries at the same index were matched against each other; an
// equivalence class is a BiList whose entries are simply the statement
// nodes of one AST kind, split by which PDG they came from.
type BiList struct {
	List1 []*domain.Node
	List2 []*domain.Node
}

// NewBiList returns an empty BiList.
func NewBiList() *BiList {
	return &BiList{}
}

// AppendList appends one benign node and one malicious node as a matched
// pair.
func (b *BiList) AppendList(n1, n2 *domain.Node) {
	b.List1 = append(b.List1, n1)
	b.List2 = append(b.List2, n2)
}

// AppendEquivalence appends a single node to side 1 or side 2. Any other
// id is a programmer error: it is logged and returned rather than
// panicking.
func (b *BiList) AppendEquivalence(n *domain.Node, id int) error {
	switch id {
	case 1:
		b.List1 = append(b.List1, n)
	case 2:
		b.List2 = append(b.List2, n)
	default:
		log.Printf("analyzer: invalid equivalence id %d, expected 1 or 2", id)
		return domain.NewInvalidEquivalenceIDError(id)
	}
	return nil
}

// IsEmpty reports whether both sides are empty.
func (b *BiList) IsEmpty() bool {
	return len(b.List1) == 0 && len(b.List2) == 0
}

// RemoveAt deletes the matched pair at index i from both sides.
func (b *BiList) RemoveAt(i int) {
	b.List1 = append(b.List1[:i], b.List1[i+1:]...)
	b.List2 = append(b.List2[:i], b.List2[i+1:]...)
}

// PopLast drops the last matched pair, if any.
func (b *BiList) PopLast() {
	n := len(b.List1)
	if n == 0 {
		return
	}
	b.List1 = b.List1[:n-1]
	b.List2 = b.List2[:n-1]
}

// Copy returns a shallow copy: same node pointers, independent slices.
func (b *BiList) Copy() *BiList {
	out := &BiList{
		List1: make([]*domain.Node, len(b.List1)),
		List2: make([]*domain.Node, len(b.List2)),
	}
	copy(out.List1, b.List1)
	copy(out.List2, b.List2)
	return out
}

// Len reports the number of matched pairs (both sides always stay in
// lockstep for clone groups).
func (b *BiList) Len() int {
	return len(b.List1)
}
