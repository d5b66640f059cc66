package importer

import (
	"fmt"
	"os"
	"time"

	"github.com/alexanderramin/paceboard/internal/domain"
	"gopkg.in/yaml.v3"
)

// CompletionBatch is a standalone sync file: just the completions section
// of a class bundle.
type CompletionBatch struct {
	Completions []CompletionImport `yaml:"completions" json:"completions"`
}

// LoadCompletionBatch reads a sync file and converts it to records. Student
// ids are not checked against a roster here; the database foreign key does
// that when the batch is written.
func LoadCompletionBatch(path string) ([]*domain.CompletionRecord, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseCompletionBatch(data)
}

// ParseCompletionBatch parses sync file bytes (YAML or JSON).
func ParseCompletionBatch(data []byte) ([]*domain.CompletionRecord, error) {
	var batch CompletionBatch
	if err := yaml.Unmarshal(data, &batch); err != nil {
		return nil, fmt.Errorf("parsing completion batch: %w", err)
	}

	syncedAt := time.Now().UTC()
	records := make([]*domain.CompletionRecord, 0, len(batch.Completions))
	for i, r := range batch.Completions {
		if r.Student == "" || r.Activity == "" {
			return nil, fmt.Errorf("completions[%d]: student and activity are required", i)
		}
		rec, err := convertCompletion(r, syncedAt)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, nil
}
