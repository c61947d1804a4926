package domain

import "log"

// EdgeLabel identifies one of the four dependency-edge families a Node
// exposes. PDG construction happens outside this module; Node and
// DependencyEdge are the contract a caller's PDG must satisfy.
type EdgeLabel string

const (
	// EdgeStatement reaches the sub-parts of the same statement (an
	// IfStatement's test expression, for example).
	EdgeStatement EdgeLabel = "statement"
	// EdgeControlChildren reaches the nodes a statement controls (the
	// body of an IfStatement).
	EdgeControlChildren EdgeLabel = "control_c"
	// EdgeControl reaches the nodes a statement is controlled by.
	EdgeControl EdgeLabel = "control"
	// EdgeData reaches the nodes a statement reads its values from.
	EdgeData EdgeLabel = "data"
)

// DependencyEdge is a directed, labelled edge to another Node.
type DependencyEdge struct {
	Label     EdgeLabel
	Extremity *Node
}

// Node is a PDG vertex: an AST element augmented with control- and
// data-dependency edges. Node graphs are read-only input to the clone
// engine; the only field the engine mutates is Clone.
type Node struct {
	ID     int
	Name   string
	Parent *Node

	Children []*Node

	IsStatement bool
	IsComment   bool

	// Clone is set by the annotator once this node is known to
	// participate in a surviving clone group.
	Clone bool

	// Attributes holds opaque metadata. Literal nodes carry their raw
	// token text under the "raw" key.
	Attributes map[string]string

	StatementDepChildren []*DependencyEdge
	ControlDepChildren   []*DependencyEdge
	ControlDepParents    []*DependencyEdge
	DataDepParents       []*DependencyEdge
}

// Edges returns the edge family named by label, or an error if label
// names none of the four known families. This is a programmer error
// per the error-handling design: it is logged and a nil slice is
// returned rather than causing a panic.
func (n *Node) Edges(label EdgeLabel) ([]*DependencyEdge, error) {
	switch label {
	case EdgeStatement:
		return n.StatementDepChildren, nil
	case EdgeControlChildren:
		return n.ControlDepChildren, nil
	case EdgeControl:
		return n.ControlDepParents, nil
	case EdgeData:
		return n.DataDepParents, nil
	default:
		log.Printf("domain: invalid dependency label %q, expected one of statement/control_c/control/data", label)
		return nil, NewInvalidDependencyLabelError(string(label))
	}
}

// LiteralKind is the canonical category of a Literal node's raw token.
type LiteralKind string

const (
	LiteralNumeric LiteralKind = "Num"
	LiteralString  LiteralKind = "Str"
	LiteralBoolean LiteralKind = "Bool"
	LiteralNull    LiteralKind = "Null"
	LiteralRegex   LiteralKind = "Regex"
	LiteralOther   LiteralKind = "Other"
)

// LiteralType classifies a Literal node's raw attribute into one of
// the canonical categories above. Non-Literal nodes return LiteralOther.
// Granularity is deliberately coarse (e.g. "1" and "2" are both
// LiteralNumeric) — see DESIGN.md for the rationale.
func (n *Node) LiteralType() LiteralKind {
	if n.Name != "Literal" {
		return LiteralOther
	}
	raw, ok := n.Attributes["raw"]
	if !ok || raw == "" {
		return LiteralOther
	}
	return classifyRaw(raw)
}

func classifyRaw(raw string) LiteralKind {
	switch raw {
	case "true", "false":
		return LiteralBoolean
	case "null", "undefined", "NaN":
		return LiteralNull
	}
	if len(raw) >= 2 && (raw[0] == '"' || raw[0] == '\'' || raw[0] == '`') {
		return LiteralString
	}
	if len(raw) >= 2 && raw[0] == '/' {
		return LiteralRegex
	}
	if isNumericLiteral(raw) {
		return LiteralNumeric
	}
	return LiteralOther
}

func isNumericLiteral(raw string) bool {
	sawDigit := false
	for i, r := range raw {
		switch {
		case r >= '0' && r <= '9':
			sawDigit = true
		case r == '.' || r == '-' || r == '+' || r == 'x' || r == 'X' ||
			(r >= 'a' && r <= 'f') || (r >= 'A' && r <= 'F'):
			// tolerate hex/float formatting
		case i == 0 && (r == '-' || r == '+'):
		default:
			return false
		}
	}
	return sawDigit
}
