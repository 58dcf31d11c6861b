// Package catalog loads the static job catalog the matcher scores resumes against.
package catalog

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
)

// JobPosting is one immutable record from the static job catalog.
// Required skills are free-form strings and are not restricted to the
// global skill vocabulary.
type JobPosting struct {
	Title    string   `json:"title" validate:"required"`
	Company  string   `json:"company" validate:"required"`
	Location string   `json:"location" validate:"required"`
	URL      string   `json:"url" validate:"required,url"`
	Skills   []string `json:"skills" validate:"required,min=1,dive,required"`
}

// Load reads the job catalog from a JSON file. The file is validated against
// the catalog schema and per-record struct rules; any failure is returned so
// the caller can refuse to start without a valid catalog.
func Load(path string) ([]JobPosting, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file %s: %w", path, err)
	}

	if err := validateSchema(data); err != nil {
		return nil, err
	}

	var jobs []JobPosting
	if err := json.Unmarshal(data, &jobs); err != nil {
		return nil, fmt.Errorf("failed to parse catalog JSON: %w", err)
	}

	validate := validator.New()
	for i, job := range jobs {
		if err := validate.Struct(job); err != nil {
			return nil, fmt.Errorf("catalog entry %d (%s) is invalid: %w", i, job.Title, err)
		}
	}

	return jobs, nil
}
