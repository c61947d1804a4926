package e2e

import (
	"os"
	"os/exec"
	"path/filepath"
	"testing"
)

// buildPdgcloneBinary compiles cmd/pdgclone into a temporary binary and
// returns its path. The binary lives in t.TempDir(), which the testing
// package removes when the test ends.
func buildPdgcloneBinary(t *testing.T) string {
	t.Helper()

	repoRoot, err := filepath.Abs("..")
	if err != nil {
		t.Fatalf("failed to resolve repo root: %v", err)
	}

	binaryPath := filepath.Join(t.TempDir(), "pdgclone")
	cmd := exec.Command("go", "build", "-o", binaryPath, "./cmd/pdgclone")
	cmd.Dir = repoRoot

	if output, err := cmd.CombinedOutput(); err != nil {
		t.Fatalf("failed to build pdgclone binary: %v\n%s", err, output)
	}

	return binaryPath
}

// singleLeafPDG is a one-node Program/ExpressionStatement fixture: two
// files built from it always produce exactly one clone group.
const singleLeafPDG = `{
	"root": 1,
	"nodes": [
		{"id": 1, "name": "Program", "children": [2], "is_statement": false},
		{"id": 2, "name": "ExpressionStatement", "is_statement": true}
	]
}`

// writePDGFixture writes content as name under dir, failing the test on
// any write error.
func writePDGFixture(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write PDG fixture %s: %v", path, err)
	}
	return path
}
