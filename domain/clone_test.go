package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultCloneRequest(t *testing.T) {
	req := DefaultCloneRequest()
	assert.Equal(t, OutputFormatText, req.OutputFormat)
	assert.Empty(t, req.BenignPath)
	assert.Empty(t, req.MaliciousPath)
}

func TestCloneRequestValidate(t *testing.T) {
	tests := []struct {
		name    string
		req     CloneRequest
		wantErr bool
	}{
		{"missing both", CloneRequest{}, true},
		{"missing malicious", CloneRequest{BenignPath: "a.json"}, true},
		{"missing benign", CloneRequest{MaliciousPath: "b.json"}, true},
		{"valid", CloneRequest{BenignPath: "a.json", MaliciousPath: "b.json"}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate()
			if tt.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestNodeEdgesDispatch(t *testing.T) {
	child := &Node{ID: 2, Name: "Identifier"}
	parent := &Node{ID: 1, Name: "IfStatement"}
	edge := &DependencyEdge{Label: EdgeControlChildren, Extremity: child}
	parent.ControlDepChildren = []*DependencyEdge{edge}

	got, err := parent.Edges(EdgeControlChildren)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Same(t, child, got[0].Extremity)

	_, err = parent.Edges(EdgeLabel("bogus"))
	require.Error(t, err)
}

func TestLiteralType(t *testing.T) {
	tests := []struct {
		name string
		node *Node
		want LiteralKind
	}{
		{"not a literal", &Node{Name: "Identifier"}, LiteralOther},
		{"number", &Node{Name: "Literal", Attributes: map[string]string{"raw": "42"}}, LiteralNumeric},
		{"negative float", &Node{Name: "Literal", Attributes: map[string]string{"raw": "-3.14"}}, LiteralNumeric},
		{"string double", &Node{Name: "Literal", Attributes: map[string]string{"raw": `"hi"`}}, LiteralString},
		{"string single", &Node{Name: "Literal", Attributes: map[string]string{"raw": "'hi'"}}, LiteralString},
		{"bool", &Node{Name: "Literal", Attributes: map[string]string{"raw": "true"}}, LiteralBoolean},
		{"null", &Node{Name: "Literal", Attributes: map[string]string{"raw": "null"}}, LiteralNull},
		{"regex", &Node{Name: "Literal", Attributes: map[string]string{"raw": "/ab+c/"}}, LiteralRegex},
		{"missing raw", &Node{Name: "Literal"}, LiteralOther},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.node.LiteralType())
		})
	}
}
