// Package summary prints one line of statistics per student.
package summary

import (
	"fmt"
	"io"
	"math"
	"slices"

	"github.com/designchallenge/gradebook/internal/gradebook"
)

const (
	// Dropped is how many of a student's lowest scores are ignored.
	Dropped = 2
	// NameWidth is the column width student names are cut and padded to.
	NameWidth = 30
)

// Stats are the figures reported for one student.
type Stats struct {
	Name string
	// Score is the mean of the graded scores after dropping the lowest
	// ones. NaN when nothing is left.
	Score float64
	Late  int
	Total int
}

// For computes the statistics for one student of gb.
func For(gb *gradebook.Gradebook, s gradebook.Student) Stats {
	scores := make([]int, 0, len(s.Grades))
	late := 0
	for _, g := range s.Grades {
		if g.Score != nil {
			scores = append(scores, *g.Score)
		}
		if g.IsLate() {
			late++
		}
	}
	return Stats{
		Name:  s.SortableName,
		Score: RobustMean(scores),
		Late:  late,
		Total: len(gb.Assignments),
	}
}

// RobustMean averages scores after discarding the Dropped lowest.
func RobustMean(scores []int) float64 {
	sorted := slices.Clone(scores)
	slices.Sort(sorted)
	if len(sorted) <= Dropped {
		return math.NaN()
	}
	kept := sorted[Dropped:]

	sum := 0
	for _, v := range kept {
		sum += v
	}
	return float64(sum) / float64(len(kept))
}

// String renders the stats as a fixed-width summary line.
func (st Stats) String() string {
	name := []rune(st.Name)
	if len(name) > NameWidth {
		name = name[:NameWidth]
	}
	return fmt.Sprintf("%*s - score:%5.2f late:%d/%d", NameWidth, string(name), st.Score, st.Late, st.Total)
}

// Write prints one summary line per student, in gradebook order.
func Write(w io.Writer, gb *gradebook.Gradebook) error {
	for _, s := range gb.Students {
		if _, err := fmt.Fprintln(w, For(gb, s)); err != nil {
			return fmt.Errorf("write summary: %w", err)
		}
	}
	return nil
}
