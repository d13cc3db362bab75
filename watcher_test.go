package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShaderName(t *testing.T) {
	name, ok := shaderName(filepath.Join("resources", "shaders", "bloom.fs"))
	assert.True(t, ok)
	assert.Equal(t, "bloom", name)

	name, ok = shaderName("model_lighting.vs")
	assert.True(t, ok)
	assert.Equal(t, "model_lighting", name)

	_, ok = shaderName("notes.txt")
	assert.False(t, ok)
	_, ok = shaderName("bloom.fs.swp")
	assert.False(t, ok)
}

func TestShaderWatcherReportsChanges(t *testing.T) {
	dir := t.TempDir()
	sw, err := newShaderWatcher(dir)
	require.NoError(t, err)
	defer sw.Close()

	require.NoError(t, os.WriteFile(filepath.Join(dir, "blur.fs"), []byte("void main() {}"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "README"), []byte("ignored"), 0o644))

	var names []string
	require.Eventually(t, func() bool {
		got, err := sw.drain()
		if err != nil {
			return false
		}
		names = append(names, got...)
		return len(names) > 0
	}, 2*time.Second, 10*time.Millisecond)
	assert.Contains(t, names, "blur")
	assert.NotContains(t, names, "README")
}

func TestShaderWatcherDrainDeduplicates(t *testing.T) {
	var sw shaderWatcher
	sw.note("blur")
	sw.note("bloom")
	sw.note("blur")

	names, err := sw.drain()
	require.NoError(t, err)
	assert.Equal(t, []string{"blur", "bloom"}, names)

	names, err = sw.drain()
	assert.NoError(t, err)
	assert.Empty(t, names)
}

func TestShaderWatcherKeepsEveryNameInABurst(t *testing.T) {
	var sw shaderWatcher
	for round := 0; round < 3; round++ {
		for i := 0; i < 40; i++ {
			sw.note(fmt.Sprintf("shader%d", i))
		}
	}

	names, err := sw.drain()
	require.NoError(t, err)
	require.Len(t, names, 40)
	assert.Equal(t, "shader0", names[0])
	assert.Equal(t, "shader39", names[39])
}

func TestShaderWatcherReportsFirstError(t *testing.T) {
	var sw shaderWatcher
	sw.fail(errors.New("first"))
	sw.fail(errors.New("second"))
	sw.note("blur")

	names, err := sw.drain()
	assert.EqualError(t, err, "first")
	assert.Equal(t, []string{"blur"}, names)

	_, err = sw.drain()
	assert.NoError(t, err)
}

func TestShaderWatcherMissingDir(t *testing.T) {
	_, err := newShaderWatcher(filepath.Join(t.TempDir(), "missing"))
	assert.Error(t, err)
}

func TestShaderLibraryPaths(t *testing.T) {
	lib := newShaderLibrary("shaders")
	vs, fs := lib.paths("bloom")
	assert.Equal(t, filepath.Join("shaders", "bloom.vs"), vs)
	assert.Equal(t, filepath.Join("shaders", "bloom.fs"), fs)
	assert.Empty(t, lib.names())
}

func TestRepositoryShadersExist(t *testing.T) {
	lib := newShaderLibrary(DefaultConfig().Path(DefaultConfig().Resources.ShaderDir))
	for _, name := range shaderNames {
		vs, fs := lib.paths(name)
		assert.FileExists(t, vs)
		assert.FileExists(t, fs)
	}
}
