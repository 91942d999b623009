package activity

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// WriteJSON encodes a summary as indented JSON and writes it to w.
// The output can be re-imported with [ReadJSON] for offline rendering.
func WriteJSON(s Summary, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(s); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// ExportJSON writes a summary to a JSON file at path.
func ExportJSON(s Summary, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return WriteJSON(s, f)
}

// ReadJSON decodes a summary from r.
func ReadJSON(r io.Reader) (Summary, error) {
	var s Summary
	if err := json.NewDecoder(r).Decode(&s); err != nil {
		return Summary{}, fmt.Errorf("decode: %w", err)
	}
	return s, nil
}

// ImportJSON reads a summary from a JSON file at path.
func ImportJSON(path string) (Summary, error) {
	f, err := os.Open(path)
	if err != nil {
		return Summary{}, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return ReadJSON(f)
}
