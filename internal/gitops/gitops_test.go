package gitops

import (
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInit(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, Init(dir))

	_, err := os.Stat(filepath.Join(dir, ".git"))
	require.NoError(t, err, ".git directory should exist")
}

func TestIsRepo(t *testing.T) {
	dir := t.TempDir()
	assert.False(t, IsRepo(dir), "empty dir should not be a repo")

	require.NoError(t, Init(dir))
	assert.True(t, IsRepo(dir), "initialized dir should be a repo")
}

func TestCommitAll(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, Init(dir))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "rules.yaml"), []byte("aliases: {}\n"), 0o644))

	hash, err := CommitAll(dir, "annotate: export journal sheet", "shiwake", "shiwake@localhost")
	require.NoError(t, err)
	assert.NotEmpty(t, hash)

	log := exec.Command("git", "log", "--format=%s|%an <%ae>", "-1")
	log.Dir = dir
	out, err := log.Output()
	require.NoError(t, err)
	assert.Contains(t, string(out), "annotate: export journal sheet")
	assert.Contains(t, string(out), "shiwake <shiwake@localhost>")
}

func TestCommitAll_NothingToCommit(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, Init(dir))

	_, err := CommitAll(dir, "empty", "shiwake", "shiwake@localhost")
	assert.Error(t, err)
}
