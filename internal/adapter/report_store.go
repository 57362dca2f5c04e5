package adapter

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	m "prism.dev/pkg/prism/internal/model"
)

// Report file names inside the reports directory.
const (
	jsonReportName = "report.json"
	yamlReportName = "report.yaml"
)

// Supported report export formats.
const (
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// ReportStore persists and reloads pair results. Every field of a PairResult
// is a primitive, so both formats round-trip without loss.
type ReportStore interface {
	Save(dir m.Path, results []m.PairResult, format string) error
	Load(dir m.Path) ([]m.PairResult, error)
}

// FileReportStore writes reports as a single JSON or YAML file inside the
// reports directory.
type FileReportStore struct{}

// NewReportStore constructs a FileReportStore.
func NewReportStore() *FileReportStore {
	return &FileReportStore{}
}

// Save writes results to dir in the requested format, creating the
// directory if needed.
func (s *FileReportStore) Save(dir m.Path, results []m.PairResult, format string) error {
	if err := os.MkdirAll(string(dir), 0o750); err != nil {
		return fmt.Errorf("create reports dir: %w", err)
	}

	var (
		data []byte
		name string
		err  error
	)

	switch format {
	case FormatYAML:
		name = yamlReportName
		data, err = yaml.Marshal(results)
	case FormatJSON, "":
		name = jsonReportName
		data, err = json.MarshalIndent(results, "", "  ")
	default:
		return fmt.Errorf("unsupported report format: %s", format)
	}

	if err != nil {
		return fmt.Errorf("encode report: %w", err)
	}

	target := filepath.Join(string(dir), name)
	if err := os.WriteFile(target, data, 0o600); err != nil {
		return fmt.Errorf("write report: %w", err)
	}

	return nil
}

// Load reads a previously saved report from dir, preferring the JSON file
// when both formats are present.
func (s *FileReportStore) Load(dir m.Path) ([]m.PairResult, error) {
	jsonPath := filepath.Join(string(dir), jsonReportName)
	if data, err := os.ReadFile(jsonPath); err == nil {
		var results []m.PairResult
		if err := json.Unmarshal(data, &results); err != nil {
			return nil, fmt.Errorf("decode %s: %w", jsonPath, err)
		}

		return results, nil
	}

	yamlPath := filepath.Join(string(dir), yamlReportName)

	data, err := os.ReadFile(yamlPath)
	if err != nil {
		return nil, fmt.Errorf("no report found in %s", dir)
	}

	var results []m.PairResult
	if err := yaml.Unmarshal(data, &results); err != nil {
		return nil, fmt.Errorf("decode %s: %w", yamlPath, err)
	}

	return results, nil
}
