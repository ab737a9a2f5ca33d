package results

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
)

var nonAlnum = regexp.MustCompile(`[^a-zA-Z0-9]+`)

// sanitize normalizes a model identifier for use in a filename:
// every run of non-alphanumeric characters becomes one underscore.
func sanitize(model string) string {
	return nonAlnum.ReplaceAllString(model, "_")
}

// Filename builds the deterministic record name for a run. Provider,
// normalized model, and a one-second timestamp keep separate runs from
// colliding.
func Filename(provider, model, timestamp string) string {
	return fmt.Sprintf("results_%s_%s_%s.json", provider, sanitize(model), timestamp)
}

// Save writes one indented-JSON record for res under dir, creating the
// directory if needed. It returns the path written.
func Save(dir string, res *Result) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create results dir: %w", err)
	}

	path := filepath.Join(dir, Filename(res.APIProvider, res.Model, res.Timestamp))
	data, err := json.MarshalIndent(res, "", "  ")
	if err != nil {
		return "", fmt.Errorf("encode result: %w", err)
	}
	data = append(data, '\n')

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("write result: %w", err)
	}
	return path, nil
}
