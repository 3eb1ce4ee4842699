// Package region holds the consolidated year -> code -> name dataset and
// resolves codes to province, city and district names.
package region

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Dataset maps a year to that year's code -> name table.
type Dataset map[int]map[string]string

// Region is the named hierarchy a code resolves to. Empty fields are unknown.
type Region struct {
	Province string
	City     string
	District string
}

// IsZero reports whether nothing was resolved.
func (r Region) IsZero() bool {
	return r == Region{}
}

// Lookup resolves a six-digit code against the table for year. The first
// two digits name the province (cc0000), the first four the city (cccc00).
// A province code fills only Province and a city code stops at City.
func (d Dataset) Lookup(year int, code string) Region {
	table, ok := d[year]
	if !ok || len(code) != 6 {
		return Region{}
	}
	provinceCode := code[:2] + "0000"
	cityCode := code[:4] + "00"

	r := Region{Province: table[provinceCode]}
	if code == provinceCode {
		return r
	}
	r.City = table[cityCode]
	if code == cityCode {
		return r
	}
	r.District = table[code]
	return r
}

// Marshal renders the dataset as two-space indented JSON with non-ASCII and
// HTML characters written literally.
func (d Dataset) Marshal() ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(d); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Write replaces the file at path with the dataset. The new content is
// written beside it first, so a failed write leaves the old file untouched.
func (d Dataset) Write(path string) error {
	data, err := d.Marshal()
	if err != nil {
		return fmt.Errorf("encode dataset: %w", err)
	}
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("ensure output dir: %w", err)
	}
	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("create temp output: %w", err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("write output: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close output: %w", err)
	}
	if err := os.Chmod(tmpName, 0o644); err != nil {
		return fmt.Errorf("chmod output: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		return fmt.Errorf("replace output: %w", err)
	}
	return nil
}

// Load reads a dataset previously written by Write.
func Load(path string) (Dataset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read dataset: %w", err)
	}
	var d Dataset
	if err := json.Unmarshal(data, &d); err != nil {
		return nil, fmt.Errorf("decode dataset %s: %w", path, err)
	}
	return d, nil
}
