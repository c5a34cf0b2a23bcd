package memory

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// recordsFile is the on-disk layout of a refund seed file:
//
//	refunds:
//	  ORD123: approved
//	  "12345": Processed
type recordsFile struct {
	Refunds map[string]string `yaml:"refunds"`
}

// LoadRecordsFile reads seed records from a YAML file.
func LoadRecordsFile(path string) (map[string]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read refund records %s: %w", path, err)
	}

	var f recordsFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse refund records %s: %w", path, err)
	}
	if f.Refunds == nil {
		f.Refunds = map[string]string{}
	}
	return f.Refunds, nil
}

// MergeRecords returns base overlaid with extra. Neither input is modified.
func MergeRecords(base, extra map[string]string) map[string]string {
	out := make(map[string]string, len(base)+len(extra))
	for k, v := range base {
		out[normalizeID(k)] = v
	}
	for k, v := range extra {
		out[normalizeID(k)] = v
	}
	return out
}
