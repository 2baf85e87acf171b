package generator

import (
	"bufio"
	_ "embed"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"
)

//go:embed names.txt
var embeddedNames string

// NameSource supplies candidate student names in sortable "Last, First"
// form.
type NameSource interface {
	Names() ([]string, error)
}

// NameSourceFunc adapts a function to NameSource.
type NameSourceFunc func() ([]string, error)

func (f NameSourceFunc) Names() ([]string, error) { return f() }

// FileNames reads a "First Last" per line name list from path.
func FileNames(path string) NameSource {
	return NameSourceFunc(func() ([]string, error) {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrNamesUnavailable, err)
		}
		defer f.Close()
		return parseNames(f)
	})
}

// ReaderNames reads a "First Last" per line name list from r. The reader
// is consumed immediately, so the source can be used any number of times.
func ReaderNames(r io.Reader) NameSource {
	names, err := parseNames(r)
	return NameSourceFunc(func() ([]string, error) {
		if err != nil {
			return nil, err
		}
		return slices.Clone(names), nil
	})
}

// EmbeddedNames returns the name list bundled with the binary.
func EmbeddedNames() NameSource {
	return ReaderNames(strings.NewReader(embeddedNames))
}

// parseNames turns "First Last" lines into "Last, First". Lines with fewer
// than two tokens are skipped; extra tokens are ignored.
func parseNames(r io.Reader) ([]string, error) {
	var names []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		fields := strings.Fields(sc.Text())
		if len(fields) < 2 {
			continue
		}
		names = append(names, fields[1]+", "+fields[0])
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNamesUnavailable, err)
	}
	return names, nil
}
