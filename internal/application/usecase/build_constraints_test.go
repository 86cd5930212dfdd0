package usecase_test

import (
	"go/build"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// File names ending in a GOOS or GOARCH suffix (such as _windows.go) are
// silently dropped from builds on other platforms.
func TestUsecaseFiles_BuildOnEveryPlatform(t *testing.T) {
	pkg, err := build.ImportDir(".", 0)
	require.NoError(t, err)

	assert.Empty(t, pkg.IgnoredGoFiles)
	assert.Contains(t, pkg.GoFiles, "window_registry.go")
	assert.Contains(t, pkg.XTestGoFiles, "window_registry_test.go")
}
