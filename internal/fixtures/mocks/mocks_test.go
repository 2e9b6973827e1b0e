package mocks

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/amirasaad/aliasregistry/pkg/provider/token"
	"github.com/amirasaad/aliasregistry/pkg/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	_ repository.UnitOfWork  = (*MockUnitOfWork)(nil)
	_ repository.AliasIndex  = (*MockAliasIndex)(nil)
	_ repository.OwnerIndex  = (*MockOwnerIndex)(nil)
	_ repository.ConfigStore = (*MockConfigStore)(nil)
	_ token.Contract         = (*MockContract)(nil)
)

// Every mock in this directory must be reproducible from .mockery.yaml.
func TestMocksAreListedInMockeryConfig(t *testing.T) {
	raw, err := os.ReadFile(filepath.Join("..", "..", "..", ".mockery.yaml"))
	require.NoError(t, err)
	cfg := string(raw)
	assert.Contains(t, cfg, "dir: internal/fixtures/mocks")

	files, err := filepath.Glob("mock_*.go")
	require.NoError(t, err)
	require.NotEmpty(t, files)
	for _, f := range files {
		name := strings.TrimSuffix(strings.TrimPrefix(f, "mock_"), ".go")
		assert.Contains(t, cfg, "      "+name+":", "%s has no entry", f)
	}
}
