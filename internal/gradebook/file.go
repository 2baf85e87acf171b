package gradebook

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Format is a gradebook document encoding.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	// FormatCSV is export only.
	FormatCSV Format = "csv"
)

// FormatFor maps a file name to its Format by extension, ignoring case.
func FormatFor(path string) (Format, bool) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, true
	case ".yaml", ".yml":
		return FormatYAML, true
	case ".csv":
		return FormatCSV, true
	default:
		return "", false
	}
}

// Readable reports whether documents in f can be loaded.
func (f Format) Readable() bool {
	return f == FormatJSON || f == FormatYAML
}

// LoadFile reads a JSON or YAML gradebook from path.
func LoadFile(path string) (*Gradebook, error) {
	format, ok := FormatFor(path)
	if !ok || !format.Readable() {
		return nil, fmt.Errorf("%s: %w", path, ErrUnknownFormat)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open gradebook: %w", err)
	}
	defer f.Close()

	if format == FormatYAML {
		return ReadYAML(f)
	}
	return ReadJSON(f)
}

// SaveFile writes gb to path in the format implied by its extension. The
// document is fully encoded before the file is created.
func SaveFile(path string, gb *Gradebook) error {
	format, ok := FormatFor(path)
	if !ok {
		return fmt.Errorf("%s: %w", path, ErrUnknownFormat)
	}

	var buf bytes.Buffer
	var err error
	switch format {
	case FormatYAML:
		err = WriteYAML(&buf, gb)
	case FormatCSV:
		err = WriteCSV(&buf, gb)
	default:
		err = WriteJSON(&buf, gb)
	}
	if err != nil {
		return err
	}

	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// ReplaceExt swaps the extension of path for ext (which includes the dot).
func ReplaceExt(path, ext string) string {
	return strings.TrimSuffix(path, filepath.Ext(path)) + ext
}
