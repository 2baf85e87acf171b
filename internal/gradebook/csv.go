package gradebook

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// WriteCSV writes a flattened, one-way export for spreadsheet inspection:
// a header of sortable_name, id and the assignment names, then one row per
// student. Each assignment cell reads (score, late, [(length, images), ...]).
func WriteCSV(w io.Writer, gb *Gradebook) error {
	cw := csv.NewWriter(w)

	header := append([]string{"sortable_name", "id"}, gb.AssignmentNames()...)
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	for _, s := range gb.Students {
		row := make([]string, 0, len(header))
		row = append(row, s.SortableName, strconv.Itoa(s.ID))
		for _, g := range s.Grades {
			row = append(row, formatCell(g))
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("write student %d: %w", s.ID, err)
		}
	}

	cw.Flush()
	return cw.Error()
}

func formatCell(g Grade) string {
	score := "None"
	if g.Score != nil {
		score = strconv.Itoa(*g.Score)
	}

	posts := make([]string, len(g.Posts))
	for i, p := range g.Posts {
		posts[i] = fmt.Sprintf("(%d, %d)", p.Length, p.Images)
	}
	return fmt.Sprintf("(%s, %d, [%s])", score, g.Late, strings.Join(posts, ", "))
}
