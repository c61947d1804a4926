package analyzer

import "github.com/pdgclone/pdgclone/domain"

func nodeSliceEqual(a, b []*domain.Node) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i].ID != b[i].ID {
			return false
		}
	}
	return true
}

func containsNode(list []*domain.Node, n *domain.Node) bool {
	for _, c := range list {
		if c.ID == n.ID {
			return true
		}
	}
	return false
}

func allContained(sub, super []*domain.Node) bool {
	for _, n := range sub {
		if !containsNode(super, n) {
			return false
		}
	}
	return true
}

func literalTypes(nodes []*domain.Node) []domain.LiteralKind {
	var out []domain.LiteralKind
	for _, n := range nodes {
		out = append(out, collectLiterals(n)...)
	}
	return out
}

func collectLiterals(node *domain.Node) []domain.LiteralKind {
	if node.Name == "Literal" {
		return []domain.LiteralKind{node.LiteralType()}
	}
	var out []domain.LiteralKind
	for _, c := range node.Children {
		out = append(out, collectLiterals(c)...)
	}
	return out
}

func literalKindsEqual(a, b []domain.LiteralKind) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// sameTokens resolves the case where two groups share identical nodes on
// sideA (at positions i and j) but differ on sideB. It compares the
// literal-type sequences of sideB[i] and sideB[j] with sideA's own
// sequence: if exactly one of them agrees, the other group is dropped;
// if both agree or neither does, both groups are kept.
func sameTokens(store *CloneStore, sideA, sideB [][]*domain.Node, i, j int) (int, int) {
	tokensA := literalTypes(sideA[i])
	tokensBi := literalTypes(sideB[i])
	tokensBj := literalTypes(sideB[j])

	switch {
	case literalKindsEqual(tokensA, tokensBi) && literalKindsEqual(tokensA, tokensBj):
		// both sides are consistent; keep both groups
	case literalKindsEqual(tokensA, tokensBi):
		store.RemoveAt(j)
		j--
	case literalKindsEqual(tokensA, tokensBj):
		store.RemoveAt(i)
		i--
		j = i + 1
	}
	return i, j
}

// removeSubsumed checks the four subsumption conditions between groups i
// and j: a smaller side whose nodes all appear in the corresponding
// larger side on either the malicious list (a2/B) or the benign list
// (a1/A) makes the smaller group redundant.
func removeSubsumed(store *CloneStore, a1, a2 [][]*domain.Node, i, j int) (int, int) {
	switch {
	case len(a2[i]) > len(a2[j]) && allContained(a2[j], a2[i]):
		store.RemoveAt(j)
		j--
	case len(a2[i]) < len(a2[j]) && allContained(a2[i], a2[j]):
		store.RemoveAt(i)
		i--
		j = i + 1
	case len(a1[i]) > len(a1[j]) && allContained(a1[j], a1[i]):
		store.RemoveAt(j)
		j--
	case len(a1[i]) < len(a1[j]) && allContained(a1[i], a1[j]):
		store.RemoveAt(i)
		i--
		j = i + 1
	}
	return i, j
}

func groupSides(store *CloneStore) (a1, a2 [][]*domain.Node) {
	a1 = make([][]*domain.Node, len(store.Groups))
	a2 = make([][]*domain.Node, len(store.Groups))
	for k, g := range store.Groups {
		a1[k] = g.List1
		a2[k] = g.List2
	}
	return a1, a2
}

// Deduplicate removes exact duplicate groups, resolves same-side token
// disagreements (which can drop a group whose other side holds nodes no
// surviving group contains), and removes groups subsumed by a larger one.
func Deduplicate(store *CloneStore) {
	i := 0
	for i < len(store.Groups) {
		storeI := i
		j := i + 1
		for j < len(store.Groups) {
			if i < storeI {
				i = storeI
			}
			a1, a2 := groupSides(store)
			switch {
			case nodeSliceEqual(a1[i], a1[j]) && nodeSliceEqual(a2[i], a2[j]):
				store.RemoveAt(j)
				j--
			case nodeSliceEqual(a1[i], a1[j]):
				i, j = sameTokens(store, a1, a2, i, j)
			case nodeSliceEqual(a2[i], a2[j]):
				i, j = sameTokens(store, a2, a1, i, j)
			default:
				i, j = removeSubsumed(store, a1, a2, i, j)
			}
			j++
		}
		i++
	}
}

// ChangeLiterals walks every surviving group and records, for each
// positional mismatch between the malicious and benign literal-type
// sequences, a TokenMismatch on result.
func ChangeLiterals(store *CloneStore, result *domain.CloneResult) {
	for _, g := range store.Groups {
		mal := literalTypes(g.List2)
		ben := literalTypes(g.List1)
		n := len(ben)
		if len(mal) < n {
			n = len(mal)
		}
		for i := 0; i < n; i++ {
			if mal[i] != ben[i] {
				result.PbTokens = append(result.PbTokens, domain.TokenMismatch{
					Malicious: string(mal[i]),
					Benign:    string(ben[i]),
				})
			}
		}
	}
}
