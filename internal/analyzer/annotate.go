package analyzer

import "github.com/pdgclone/pdgclone/domain"

// Annotate marks every node that participates in a surviving clone
// group — plus all of its descendants — with Clone = true, and records
// the malicious side's node names (comments excluded) as one entry of
// result.Similar per group.
func Annotate(store *CloneStore, result *domain.CloneResult) {
	for _, g := range store.Groups {
		for _, n := range g.List1 {
			markClone(n)
		}
		var names []string
		for _, n := range g.List2 {
			markClone(n)
			if !n.IsComment {
				names = append(names, n.Name)
			}
			for _, d := range CollectDescendants(n) {
				if !d.IsComment {
					names = append(names, d.Name)
				}
			}
		}
		result.Similar = append(result.Similar, names)
	}
}

func markClone(n *domain.Node) {
	n.Clone = true
	for _, d := range CollectDescendants(n) {
		d.Clone = true
	}
}

// Dissimilar walks the malicious PDG below node (node itself, the root,
// is not listed) and appends the name of every non-comment node whose
// Clone flag is still false. Descent continues into a cloned node's
// children too, since a cloned statement can still contain a
// sub-expression that never matched anything.
func Dissimilar(node *domain.Node, result *domain.CloneResult) {
	for _, child := range node.Children {
		if !child.Clone && !child.IsComment {
			result.Dissimilar = append(result.Dissimilar, child.Name)
		}
		Dissimilar(child, result)
	}
}

// Coverage counts, among root's descendants, how many carry Clone ==
// true (cloned) versus how many are eligible to be counted at all
// (cloned nodes, plus any non-comment node).
func Coverage(root *domain.Node) domain.Coverage {
	cloned, total := coverageWalk(root)
	return domain.Coverage{Cloned: cloned, Total: total}
}

func coverageWalk(node *domain.Node) (cloned, total int) {
	for _, child := range node.Children {
		switch {
		case child.Clone:
			cloned++
			total++
		case !child.IsComment:
			total++
		}
		c, t := coverageWalk(child)
		cloned += c
		total += t
	}
	return cloned, total
}
