package analyzer

import "github.com/pdgclone/pdgclone/domain"

// CollectDescendants returns every node under node, in pre-order,
// excluding node itself. Comment nodes are included here; they are only
// filtered out at the annotation and coverage stages. This walks an
// explicit stack rather than recursing so a deep PDG can't overflow the
// call stack.
func CollectDescendants(node *domain.Node) []*domain.Node {
	var out []*domain.Node
	stack := make([]*domain.Node, 0, len(node.Children))
	for i := len(node.Children) - 1; i >= 0; i-- {
		stack = append(stack, node.Children[i])
	}
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		out = append(out, cur)
		for i := len(cur.Children) - 1; i >= 0; i-- {
			stack = append(stack, cur.Children[i])
		}
	}
	return out
}

func sameShape(d1, d2 []*domain.Node) bool {
	if len(d1) != len(d2) {
		return false
	}
	for i := range d1 {
		if d1[i].Name != d2[i].Name {
			return false
		}
	}
	return true
}

// FindClones is the structural matcher. Given an anchor pair (n1, n2) —
// one node from the benign PDG, one from the malicious PDG — it either
// records them as a match (full descendant shape equality) or walks
// benign-side data-dependency parents looking for a node whose shape
// does match n2, recording every pair it visits in handled so it never
// revisits one. jump counts how many data-dependency parents this anchor
// attempt has tried so far (a match does not reset it); jumpMatch counts how many matches followed a non-zero jump, and
// triggers the snapshot-before-last-append behavior once positive.
func FindClones(n1, n2 *domain.Node, store *CloneStore, handled *HandledSet, jump, jumpMatch int) (int, int) {
	if n1.Name == n2.Name && sameShape(CollectDescendants(n1), CollectDescendants(n2)) {
		if jumpMatch > 0 {
			cur := store.Last()
			snapshot := cur.Copy()
			snapshot.PopLast()
			store.Append(snapshot)
		}
		handled.Add(n1.ID, n2.ID)
		recordMatch(n1, n2, store)
		if jump != 0 {
			jumpMatch++
		}
		return jump, jumpMatch
	}

	parents, err := n1.Edges(domain.EdgeData)
	if err != nil {
		return jump, jumpMatch
	}
	for _, e := range parents {
		p1 := e.Extremity
		if handled.Contains(p1.ID, n2.ID) {
			continue
		}
		jump++
		handled.Add(p1.ID, n2.ID)
		jump, jumpMatch = FindClones(p1, n2, store, handled, jump, jumpMatch)
	}
	return jump, jumpMatch
}

// recordMatch appends (n1, n2) to the current clone group, first
// dropping any entry whose parent is exactly (n1, n2) — a direct child
// match is subsumed by its parent's match. It then follows the matched
// pair's control and data dependencies to grow the group further.
func recordMatch(n1, n2 *domain.Node, store *CloneStore) {
	cur := store.Last()
	var drop []int
	for i := 0; i < cur.Len(); i++ {
		p1, p2 := cur.List1[i].Parent, cur.List2[i].Parent
		if p1 != nil && p2 != nil && p1.ID == n1.ID && p2.ID == n2.ID {
			drop = append(drop, i)
		}
	}
	for k := len(drop) - 1; k >= 0; k-- {
		cur.RemoveAt(drop[k])
	}
	cur.AppendList(n1, n2)
	followDependencies(n1, n2, store)
}

// followDependencies extends a match by trying every combination of the
// matched pair's control parents, then every combination of their data
// parents, as fresh anchors. Each anchor attempt gets its own empty
// handled set: this begins a new exploration, not a continuation of the
// current backward slice.
func followDependencies(n1, n2 *domain.Node, store *CloneStore) {
	followDependency(n1, n2, domain.EdgeControl, store)
	followDependency(n1, n2, domain.EdgeData, store)
}

func followDependency(n1, n2 *domain.Node, label domain.EdgeLabel, store *CloneStore) {
	edges1, err := n1.Edges(label)
	if err != nil {
		return
	}
	edges2, err := n2.Edges(label)
	if err != nil {
		return
	}
	for _, e1 := range edges1 {
		p1 := e1.Extremity
		if p1.ID == n1.ID {
			continue
		}
		for _, e2 := range edges2 {
			p2 := e2.Extremity
			if p2.ID == n2.ID {
				continue
			}
			FindClones(p1, p2, store, NewHandledSet(), 0, 0)
		}
	}
}

// FindAllClones runs the full discovery phase: it partitions both PDGs
// into equivalence classes and tries every cross-side pair within each
// class as an anchor, sharing one HandledSet across the whole run so a
// pair already ruled out for one anchor is never retried for another.
func FindAllClones(pdg1, pdg2 *domain.Node) (*CloneStore, error) {
	classes, err := Partition(pdg1, pdg2)
	if err != nil {
		return nil, err
	}
	store := NewCloneStore()
	handled := NewHandledSet()
	for _, kind := range classes.Kinds() {
		class := classes.Get(kind)
		for _, n2 := range class.List2 {
			for _, n1 := range class.List1 {
				store.Append(NewBiList())
				FindClones(n1, n2, store, handled, 0, 0)
				if store.Last().IsEmpty() {
					store.RemoveLast()
				}
			}
		}
	}
	return store, nil
}
