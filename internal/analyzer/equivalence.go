package analyzer

import (
	"sort"

	"github.com/pdgclone/pdgclone/domain"
)

// EquivalenceClasses partitions the statement nodes of two PDGs by AST
// kind. A node is only registered if it is a leaf statement: it must be
// itself a statement and have no control_dep_children (a BreakStatement
// or ContinueStatement qualifies; an IfStatement, which controls other
// statements, does not).
type EquivalenceClasses struct {
	classes map[string]*BiList
}

// NewEquivalenceClasses returns an empty partition.
func NewEquivalenceClasses() *EquivalenceClasses {
	return &EquivalenceClasses{classes: make(map[string]*BiList)}
}

// Get returns the BiList for an AST kind, or nil if no node of that kind
// was registered.
func (e *EquivalenceClasses) Get(kind string) *BiList {
	return e.classes[kind]
}

// Kinds returns the registered AST kinds in a stable, sorted order so
// that discovery runs are deterministic.
func (e *EquivalenceClasses) Kinds() []string {
	kinds := make([]string, 0, len(e.classes))
	for k := range e.classes {
		kinds = append(kinds, k)
	}
	sort.Strings(kinds)
	return kinds
}

// Partition walks both PDG roots and builds the combined equivalence
// classes: pdg1's eligible statements land on side 1, pdg2's on side 2.
func Partition(pdg1, pdg2 *domain.Node) (*EquivalenceClasses, error) {
	ec := NewEquivalenceClasses()
	if err := partitionWalk(pdg1, 1, ec); err != nil {
		return nil, err
	}
	if err := partitionWalk(pdg2, 2, ec); err != nil {
		return nil, err
	}
	return ec, nil
}

func partitionWalk(node *domain.Node, side int, ec *EquivalenceClasses) error {
	for _, child := range node.Children {
		if child.IsStatement {
			ctrlChildren, err := child.Edges(domain.EdgeControlChildren)
			if err != nil {
				return err
			}
			if len(ctrlChildren) == 0 {
				bl, ok := ec.classes[child.Name]
				if !ok {
					bl = NewBiList()
					ec.classes[child.Name] = bl
				}
				if err := bl.AppendEquivalence(child, side); err != nil {
					return err
				}
			}
		}
		if err := partitionWalk(child, side, ec); err != nil {
			return err
		}
	}
	return nil
}
