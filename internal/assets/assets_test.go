package assets

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuiltinThemesHaveEveryFace(t *testing.T) {
	for _, name := range []string{"unicode", "pips"} {
		theme, err := Builtin(name)
		require.NoError(t, err, name)
		assert.Equal(t, name, theme.Name())
		for value := 1; value <= 6; value++ {
			face, err := theme.Face(value)
			assert.NoError(t, err)
			assert.NotEmpty(t, face)
		}
	}
}

func TestUnicodeFaces(t *testing.T) {
	theme, err := Builtin("unicode")
	require.NoError(t, err)

	face, err := theme.Face(3)
	require.NoError(t, err)
	assert.Equal(t, "⚂", face)
}

func TestBuiltinUnknown(t *testing.T) {
	_, err := Builtin("nope")
	assert.Error(t, err)
}

func TestLoadPartialTheme(t *testing.T) {
	theme, err := Load(filepath.Join("testdata", "partial.yaml"))
	require.NoError(t, err)

	face, err := theme.Face(2)
	require.NoError(t, err)
	assert.Equal(t, "two", face)

	_, err = theme.Face(6)
	assert.ErrorIs(t, err, ErrFaceNotFound)

	// out of range entries are dropped
	_, err = theme.Face(9)
	assert.ErrorIs(t, err, ErrFaceNotFound)
}

func TestLoadBrokenTheme(t *testing.T) {
	_, err := Load(filepath.Join("testdata", "broken.yaml"))
	assert.Error(t, err)
}

func TestResolveFallsBackToDefault(t *testing.T) {
	theme := Resolve(filepath.Join("testdata", "missing.yaml"))
	require.NotNil(t, theme)
	assert.Equal(t, DefaultThemeName, theme.Name())

	theme = Resolve(filepath.Join("testdata", "broken.yaml"))
	assert.Equal(t, DefaultThemeName, theme.Name())
}

func TestResolveKeepsPartialTheme(t *testing.T) {
	theme := Resolve(filepath.Join("testdata", "partial.yaml"))
	assert.Equal(t, "partial", theme.Name())

	_, err := theme.Face(5)
	assert.ErrorIs(t, err, ErrFaceNotFound)
}

func TestResolveByName(t *testing.T) {
	assert.Equal(t, "pips", Resolve("pips").Name())
	assert.Equal(t, DefaultThemeName, Resolve("").Name())
}
