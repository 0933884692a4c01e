package main

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateCollisionFreeName_NoCollision(t *testing.T) {
	name, err := createCollisionFreeName("data", func(string) bool { return false })
	require.NoError(t, err)
	assert.Equal(t, "data", name)
}

func TestCreateCollisionFreeName_AppendsSuffix(t *testing.T) {
	taken := map[string]bool{"data": true, "data-1": true}
	name, err := createCollisionFreeName("data", func(path string) bool { return taken[path] })
	require.NoError(t, err)
	assert.Equal(t, "data-2", name)
}

func TestCreateCollisionFreeName_GivesUpEventually(t *testing.T) {
	_, err := createCollisionFreeName("data", func(string) bool { return true })
	assert.True(t, errors.Is(err, errCollisionAvoidanceFailed))
}

func TestParseAndValidateFlags_Defaults(t *testing.T) {
	app, err := ParseAndValidateFlags([]string{})
	require.NoError(t, err)
	assert.Equal(t, "data", app.outDir)
	assert.Equal(t, uint64(42), app.seed)
	assert.Equal(t, 1, app.scale)
	assert.Equal(t, 1, app.workers)
	assert.Len(t, app.recipes, 22)
}

func TestParseAndValidateFlags_RejectsBadValues(t *testing.T) {
	_, err := ParseAndValidateFlags([]string{"-scale", "0"})
	assert.Error(t, err)

	_, err = ParseAndValidateFlags([]string{"-workers", "0"})
	assert.Error(t, err)

	_, err = ParseAndValidateFlags([]string{"-only", "nope.tsv"})
	assert.Error(t, err)
}

func TestParseAndValidateFlags_OnlySubset(t *testing.T) {
	app, err := ParseAndValidateFlags([]string{"-only", "bar.tsv, pie.tsv"})
	require.NoError(t, err)
	require.Len(t, app.recipes, 2)
	assert.Equal(t, "bar.tsv", app.recipes[0].Filename)
	assert.Equal(t, "pie.tsv", app.recipes[1].Filename)
}
