// Package pdgio implements domain.PDGLoader, the narrow boundary between
// a serialized Program Dependence Graph on disk and the in-memory
// domain.Node tree the analyzer consumes. PDG construction from source is
// out of scope for this module; callers supply JSON that already
// describes the graph.
package pdgio

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/pdgclone/pdgclone/domain"
)

// wireNode is the on-disk shape of a single PDG vertex. Edges reference
// other nodes by ID rather than embedding them, since dependency edges
// cross the tree (a data-dependency parent is rarely an ancestor).
type wireNode struct {
	ID          int               `json:"id"`
	Name        string            `json:"name"`
	Children    []int             `json:"children"`
	IsStatement bool              `json:"is_statement"`
	IsComment   bool              `json:"is_comment"`
	Attributes  map[string]string `json:"attributes"`

	StatementDepChildren []int `json:"statement_dep_children"`
	ControlDepChildren   []int `json:"control_dep_children"`
	ControlDepParents    []int `json:"control_dep_parents"`
	DataDepParents       []int `json:"data_dep_parents"`
}

// wireGraph is the on-disk shape of a whole PDG: a flat node table plus
// the id of the tree's root.
type wireGraph struct {
	Root  int        `json:"root"`
	Nodes []wireNode `json:"nodes"`
}

// Loader implements domain.PDGLoader by reading a PDG JSON file from
// disk and resolving it into a domain.Node tree.
type Loader struct{}

// NewLoader creates a new PDG JSON loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load reads and decodes the PDG JSON file at path.
func (l *Loader) Load(path string) (*domain.Node, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, domain.NewFileNotFoundError(path, err)
	}

	var graph wireGraph
	if err := json.Unmarshal(data, &graph); err != nil {
		return nil, domain.NewParseError(path, err)
	}

	return buildTree(path, &graph)
}

func buildTree(path string, graph *wireGraph) (*domain.Node, error) {
	byID := make(map[int]*domain.Node, len(graph.Nodes))
	wireByID := make(map[int]wireNode, len(graph.Nodes))

	for _, w := range graph.Nodes {
		if _, dup := byID[w.ID]; dup {
			return nil, domain.NewParseError(path, fmt.Errorf("duplicate node id %d", w.ID))
		}
		byID[w.ID] = &domain.Node{
			ID:          w.ID,
			Name:        w.Name,
			IsStatement: w.IsStatement,
			IsComment:   w.IsComment,
			Attributes:  w.Attributes,
		}
		wireByID[w.ID] = w
	}

	resolve := func(ids []int) ([]*domain.Node, error) {
		if len(ids) == 0 {
			return nil, nil
		}
		out := make([]*domain.Node, 0, len(ids))
		for _, id := range ids {
			n, ok := byID[id]
			if !ok {
				return nil, domain.NewParseError(path, fmt.Errorf("reference to unknown node id %d", id))
			}
			out = append(out, n)
		}
		return out, nil
	}

	edgesOf := func(label domain.EdgeLabel, ids []int) ([]*domain.DependencyEdge, error) {
		nodes, err := resolve(ids)
		if err != nil {
			return nil, err
		}
		if nodes == nil {
			return nil, nil
		}
		edges := make([]*domain.DependencyEdge, len(nodes))
		for i, n := range nodes {
			edges[i] = &domain.DependencyEdge{Label: label, Extremity: n}
		}
		return edges, nil
	}

	for id, w := range wireByID {
		node := byID[id]

		children, err := resolve(w.Children)
		if err != nil {
			return nil, err
		}
		node.Children = children
		for _, c := range children {
			c.Parent = node
		}

		if node.StatementDepChildren, err = edgesOf(domain.EdgeStatement, w.StatementDepChildren); err != nil {
			return nil, err
		}
		if node.ControlDepChildren, err = edgesOf(domain.EdgeControlChildren, w.ControlDepChildren); err != nil {
			return nil, err
		}
		if node.ControlDepParents, err = edgesOf(domain.EdgeControl, w.ControlDepParents); err != nil {
			return nil, err
		}
		if node.DataDepParents, err = edgesOf(domain.EdgeData, w.DataDepParents); err != nil {
			return nil, err
		}
	}

	root, ok := byID[graph.Root]
	if !ok {
		return nil, domain.NewParseError(path, fmt.Errorf("root node id %d not present in node table", graph.Root))
	}
	return root, nil
}
