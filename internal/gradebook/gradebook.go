package gradebook

import "fmt"

// New builds a Gradebook and checks every structural invariant before
// returning it. The slices are used as given and must not be modified
// afterwards. Nil post lists are replaced by empty ones so every grade
// encodes with a posts array.
func New(assignments []Assignment, students []Student) (*Gradebook, error) {
	if assignments == nil {
		assignments = []Assignment{}
	}
	if students == nil {
		students = []Student{}
	}
	for _, s := range students {
		for gi := range s.Grades {
			if s.Grades[gi].Posts == nil {
				s.Grades[gi].Posts = []Post{}
			}
		}
	}
	gb := &Gradebook{Assignments: assignments, Students: students}
	if err := gb.Validate(); err != nil {
		return nil, err
	}
	return gb, nil
}

// Validate checks that every student has exactly one grade per
// assignment, that student ids are unique and that post counters are
// non-negative.
func (gb *Gradebook) Validate() error {
	for i, a := range gb.Assignments {
		if a.Name == "" {
			return &FieldError{Path: fmt.Sprintf("assignments[%d].name", i), Reason: "must not be empty"}
		}
	}

	seen := make(map[int]struct{}, len(gb.Students))
	for si, s := range gb.Students {
		if _, dup := seen[s.ID]; dup {
			return &DuplicateIDError{ID: s.ID}
		}
		seen[s.ID] = struct{}{}

		if len(s.Grades) != len(gb.Assignments) {
			return &AlignmentError{StudentID: s.ID, Grades: len(s.Grades), Assignments: len(gb.Assignments)}
		}

		for gi, g := range s.Grades {
			for pi, p := range g.Posts {
				path := fmt.Sprintf("students[%d].grades[%d].posts[%d]", si, gi, pi)
				if p.Length < 0 {
					return &FieldError{Path: path + ".length", Reason: "must not be negative"}
				}
				if p.Images < 0 {
					return &FieldError{Path: path + ".images", Reason: "must not be negative"}
				}
			}
		}
	}
	return nil
}
