package results

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
)

// Load reads a single result record. Older records may miss number_range;
// it is inferred from the histogram or the cumulative curve.
func Load(path string) (*Result, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read result: %w", err)
	}

	var res Result
	if err := json.Unmarshal(data, &res); err != nil {
		return nil, fmt.Errorf("decode result %s: %w", path, err)
	}

	if res.NumberRange == 0 {
		switch {
		case len(res.AttemptCounts) > 0:
			res.NumberRange = len(res.AttemptCounts)
		case len(res.CumulativePercentage) > 0:
			res.NumberRange = len(res.CumulativePercentage)
		}
	}
	return &res, nil
}

// LoadDir reads every result record under dir, sorted by filename so
// chart ordering is stable across runs.
func LoadDir(dir string) ([]*Result, error) {
	paths, err := filepath.Glob(filepath.Join(dir, "results_*.json"))
	if err != nil {
		return nil, err
	}
	sort.Strings(paths)

	loaded := make([]*Result, 0, len(paths))
	for _, path := range paths {
		res, err := Load(path)
		if err != nil {
			return nil, err
		}
		loaded = append(loaded, res)
	}
	return loaded, nil
}
