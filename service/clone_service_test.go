package service

import (
	"context"
	"testing"

	"github.com/pdgclone/pdgclone/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var nextTestID = 1

func newServiceTestNode(name string, isStatement bool, children ...*domain.Node) *domain.Node {
	id := nextTestID
	nextTestID++
	n := &domain.Node{
		ID:          id,
		Name:        name,
		IsStatement: isStatement,
		Children:    children,
		Attributes:  map[string]string{},
	}
	for _, c := range children {
		c.Parent = n
	}
	return n
}

func TestCloneService_DetectClones_IdentityPair(t *testing.T) {
	stmt1 := newServiceTestNode("ExpressionStatement", true)
	root1 := newServiceTestNode("Program", false, stmt1)

	stmt2 := newServiceTestNode("ExpressionStatement", true)
	root2 := newServiceTestNode("Program", false, stmt2)

	svc := NewCloneService()
	req := domain.CloneRequest{BenignPath: "benign.json", MaliciousPath: "malicious.json"}

	result, err := svc.DetectClones(context.Background(), root1, root2, req)
	require.NoError(t, err)

	assert.Equal(t, "benign.json", result.Benign)
	assert.Equal(t, "malicious.json", result.Malicious)
	require.Len(t, result.Similar, 1)
	assert.Contains(t, result.Benchmarks, "clones_detected")
	assert.Contains(t, result.Benchmarks, "clones_selected")
}

func TestCloneService_DetectClones_RequiresRoots(t *testing.T) {
	svc := NewCloneService()
	_, err := svc.DetectClones(context.Background(), nil, nil, domain.CloneRequest{})
	assert.Error(t, err)
}

func TestCloneService_DetectClones_RequiresContext(t *testing.T) {
	svc := NewCloneService()
	root := newServiceTestNode("Program", false)
	//lint:ignore SA1012 exercising the nil-context guard explicitly
	_, err := svc.DetectClones(nil, root, root, domain.CloneRequest{})
	assert.Error(t, err)
}

func TestCloneService_DetectClones_RespectsCancellation(t *testing.T) {
	svc := NewCloneService()
	root := newServiceTestNode("Program", false)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := svc.DetectClones(ctx, root, root, domain.CloneRequest{})
	assert.Error(t, err)
}
