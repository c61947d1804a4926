package analyzer

// CloneStore is the append-only (until deduplication) list of clone
// groups discovered across one pair of PDGs.
type CloneStore struct {
	Groups []*BiList
}

// NewCloneStore returns an empty store.
func NewCloneStore() *CloneStore {
	return &CloneStore{}
}

// Append adds a new group to the end of the store.
func (s *CloneStore) Append(g *BiList) {
	s.Groups = append(s.Groups, g)
}

// Last returns the most recently appended group, or nil if the store is
// empty.
func (s *CloneStore) Last() *BiList {
	if len(s.Groups) == 0 {
		return nil
	}
	return s.Groups[len(s.Groups)-1]
}

// RemoveLast drops the most recently appended group.
func (s *CloneStore) RemoveLast() {
	if len(s.Groups) > 0 {
		s.Groups = s.Groups[:len(s.Groups)-1]
	}
}

// RemoveAt drops the group at index i.
func (s *CloneStore) RemoveAt(i int) {
	s.Groups = append(s.Groups[:i], s.Groups[i+1:]...)
}

// Len reports how many groups remain.
func (s *CloneStore) Len() int {
	return len(s.Groups)
}
