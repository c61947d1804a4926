package constants

import "github.com/pdgclone/pdgclone/domain"

// Leaf statement kinds have no control-dependency children of their own;
// they match purely on name with an empty descendant list.
const (
	LeafBreakStatement    = "BreakStatement"
	LeafContinueStatement = "ContinueStatement"
)

// LiteralKindNames provides human-readable names for the literal-type
// categories used in pb_tokens.
var LiteralKindNames = map[domain.LiteralKind]string{
	domain.LiteralNumeric: "numeric",
	domain.LiteralString:  "string",
	domain.LiteralBoolean: "boolean",
	domain.LiteralNull:    "null",
	domain.LiteralRegex:   "regex",
	domain.LiteralOther:   "other",
}
