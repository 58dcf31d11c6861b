package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validCatalog = `[
  {
    "title": "Data Analyst",
    "company": "Acme",
    "location": "Remote",
    "url": "https://jobs.example.com/1",
    "skills": ["Python", "SQL"]
  },
  {
    "title": "BI Developer",
    "company": "Globex",
    "location": "Chicago, IL",
    "url": "https://jobs.example.com/2",
    "skills": ["Tableau", "SQL", "Excel"]
  }
]`

func writeCatalog(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "catalog.json")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func TestLoad_ValidCatalog(t *testing.T) {
	jobs, err := Load(writeCatalog(t, validCatalog))
	require.NoError(t, err)
	require.Len(t, jobs, 2)

	// Catalog order is preserved.
	assert.Equal(t, "Data Analyst", jobs[0].Title)
	assert.Equal(t, "BI Developer", jobs[1].Title)
	assert.Equal(t, []string{"Python", "SQL"}, jobs[0].Skills)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}

func TestLoad_RejectsMissingRequiredField(t *testing.T) {
	// No "url" field.
	_, err := Load(writeCatalog(t, `[{"title":"X","company":"Y","location":"Z","skills":["SQL"]}]`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "schema")
}

func TestLoad_RejectsEmptySkills(t *testing.T) {
	_, err := Load(writeCatalog(t, `[{"title":"X","company":"Y","location":"Z","url":"https://x.test","skills":[]}]`))
	assert.Error(t, err)
}

func TestLoad_RejectsNonArrayDocument(t *testing.T) {
	_, err := Load(writeCatalog(t, `{"title":"X"}`))
	assert.Error(t, err)
}

func TestLoad_RejectsInvalidURL(t *testing.T) {
	_, err := Load(writeCatalog(t, `[{"title":"X","company":"Y","location":"Z","url":"not a url","skills":["SQL"]}]`))
	assert.Error(t, err)
}
