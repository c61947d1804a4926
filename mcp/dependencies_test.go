package mcp

import "testing"

func TestNewDependencies_BuildsUseCaseAndRunner(t *testing.T) {
	deps := NewDependencies()

	if deps.BuildCloneUseCase() == nil {
		t.Fatal("expected a non-nil CloneUseCase")
	}
	if deps.BuildBatchRunner() == nil {
		t.Fatal("expected a non-nil BatchRunner")
	}
}
