package app

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/pdgclone/pdgclone/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockLoader struct{ mock.Mock }

func (m *mockLoader) Load(path string) (*domain.Node, error) {
	args := m.Called(path)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Node), args.Error(1)
}

type mockCloneService struct{ mock.Mock }

func (m *mockCloneService) DetectClones(ctx context.Context, benign, malicious *domain.Node, req domain.CloneRequest) (*domain.CloneResult, error) {
	args := m.Called(ctx, benign, malicious, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CloneResult), args.Error(1)
}

type mockFormatter struct{ mock.Mock }

func (m *mockFormatter) FormatCloneResult(result *domain.CloneResult, format domain.OutputFormat) (string, error) {
	args := m.Called(result, format)
	return args.String(0), args.Error(1)
}

type mockConfigLoader struct{ mock.Mock }

func (m *mockConfigLoader) LoadCloneConfig(path string) (*domain.CloneRequest, error) {
	args := m.Called(path)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CloneRequest), args.Error(1)
}

type bufferWriter struct {
	buf bytes.Buffer
}

func (b *bufferWriter) Write(_ io.Writer, outputPath string, format domain.OutputFormat, noOpen bool, writeFunc func(io.Writer) error) error {
	return writeFunc(&b.buf)
}

func TestCloneUseCase_Execute_Success(t *testing.T) {
	dir := t.TempDir()
	benignPath := filepath.Join(dir, "benign.json")
	maliciousPath := filepath.Join(dir, "malicious.json")
	require.NoError(t, os.WriteFile(benignPath, []byte("{}"), 0644))
	require.NoError(t, os.WriteFile(maliciousPath, []byte("{}"), 0644))

	benignNode := &domain.Node{ID: 1, Name: "Program"}
	maliciousNode := &domain.Node{ID: 2, Name: "Program"}
	result := &domain.CloneResult{Benign: benignPath, Malicious: maliciousPath}

	loader := &mockLoader{}
	loader.On("Load", benignPath).Return(benignNode, nil)
	loader.On("Load", maliciousPath).Return(maliciousNode, nil)

	service := &mockCloneService{}
	service.On("DetectClones", mock.Anything, benignNode, maliciousNode, mock.Anything).Return(result, nil)

	formatter := &mockFormatter{}
	formatter.On("FormatCloneResult", result, domain.OutputFormatText).Return("rendered", nil)

	uc := NewCloneUseCase(loader, service, formatter, nil)
	out := &bufferWriter{}
	uc.WithOutputWriter(out)

	err := uc.Execute(context.Background(), domain.CloneRequest{
		BenignPath:    benignPath,
		MaliciousPath: maliciousPath,
		OutputFormat:  domain.OutputFormatText,
	})
	require.NoError(t, err)
	assert.Equal(t, "rendered", out.buf.String())
}

func TestCloneUseCase_Execute_ValidationError(t *testing.T) {
	uc := NewCloneUseCase(&mockLoader{}, &mockCloneService{}, &mockFormatter{}, nil)
	err := uc.Execute(context.Background(), domain.CloneRequest{})
	assert.Error(t, err)
}

func TestCloneUseCase_Execute_LoaderError(t *testing.T) {
	dir := t.TempDir()
	benignPath := filepath.Join(dir, "benign.json")
	require.NoError(t, os.WriteFile(benignPath, []byte("{}"), 0644))

	loader := &mockLoader{}
	loader.On("Load", benignPath).Return(nil, domain.NewParseError(benignPath, nil))

	uc := NewCloneUseCase(loader, &mockCloneService{}, &mockFormatter{}, nil)
	err := uc.Execute(context.Background(), domain.CloneRequest{
		BenignPath:    benignPath,
		MaliciousPath: benignPath,
	})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load benign PDG")
}

func TestCloneUseCase_Execute_ServiceError(t *testing.T) {
	dir := t.TempDir()
	benignPath := filepath.Join(dir, "benign.json")
	require.NoError(t, os.WriteFile(benignPath, []byte("{}"), 0644))

	node := &domain.Node{ID: 1, Name: "Program"}
	loader := &mockLoader{}
	loader.On("Load", benignPath).Return(node, nil)

	service := &mockCloneService{}
	service.On("DetectClones", mock.Anything, node, node, mock.Anything).
		Return(nil, domain.NewAnalysisError("boom", nil))

	uc := NewCloneUseCase(loader, service, &mockFormatter{}, nil)
	err := uc.Execute(context.Background(), domain.CloneRequest{
		BenignPath:    benignPath,
		MaliciousPath: benignPath,
	})
	assert.Error(t, err)
}

func TestMergeCloneRequest_OverridesOnlyExplicitFields(t *testing.T) {
	base := domain.CloneRequest{BenignPath: "a.json", OutputFormat: domain.OutputFormatJSON}
	override := domain.CloneRequest{MaliciousPath: "b.json"}

	merged := mergeCloneRequest(base, override)
	assert.Equal(t, "a.json", merged.BenignPath)
	assert.Equal(t, "b.json", merged.MaliciousPath)
	assert.Equal(t, domain.OutputFormatJSON, merged.OutputFormat)
}
