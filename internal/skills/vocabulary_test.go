package skills

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault_HasUniqueEntries(t *testing.T) {
	vocab := Default()
	require.Greater(t, vocab.Len(), 0)

	seen := make(map[string]bool)
	for _, skill := range vocab.Skills() {
		assert.False(t, seen[skill], "duplicate entry %s", skill)
		seen[skill] = true
	}
}

func TestNew_RejectsEmpty(t *testing.T) {
	_, err := New(nil)
	assert.Error(t, err)
}

func TestNew_RejectsBlankEntry(t *testing.T) {
	_, err := New([]string{"Python", "  "})
	assert.Error(t, err)
}

func TestNew_RejectsCaseInsensitiveDuplicate(t *testing.T) {
	_, err := New([]string{"Python", "python"})
	assert.Error(t, err)
}

func TestLoad_FromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "vocab.json")
	require.NoError(t, os.WriteFile(path, []byte(`["Go", "Python"]`), 0o644))

	vocab, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"Go", "Python"}, vocab.Skills())
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)
}

func TestLoad_InvalidJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "vocab.json")
	require.NoError(t, os.WriteFile(path, []byte(`{not json`), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestSkills_ReturnsCopy(t *testing.T) {
	vocab := Default()
	skills := vocab.Skills()
	skills[0] = "mutated"
	assert.NotEqual(t, "mutated", vocab.Skills()[0])
}
