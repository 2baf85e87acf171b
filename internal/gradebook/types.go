package gradebook

// LateThreshold is the number of hours late at which a grade counts as
// actually late. Shorter delays are treated as on time by consumers.
const LateThreshold = 4

// Gradebook is the root record: the ordered assignments and the students
// whose grades are index-aligned with them.
type Gradebook struct {
	Assignments []Assignment `json:"assignments" yaml:"assignments"`
	Students    []Student    `json:"students" yaml:"students"`
}

// Assignment identifies one column of the gradebook. It is written either
// as a plain name or as a {"name", "id"} record, in the form it was read
// or built in.
type Assignment struct {
	Name string
	// ID is the LMS identifier. Nil for assignments known only by name.
	ID *int

	record bool
}

// Student is one row of the gradebook. Grades[i] belongs to the i-th
// assignment of the enclosing Gradebook.
type Student struct {
	SortableName string  `json:"sortable_name" yaml:"sortable_name"`
	ID           int     `json:"id" yaml:"id"`
	Grades       []Grade `json:"grades" yaml:"grades"`
}

// Grade is a student's result on a single assignment.
type Grade struct {
	// Score is nil when the assignment has not been graded.
	Score *int `json:"score" yaml:"score"`

	// Late is the signed number of hours relative to the deadline.
	// Negative means submitted early.
	Late int `json:"late" yaml:"late"`

	Posts []Post `json:"posts" yaml:"posts"`
}

// Post describes one discussion post made for an assignment.
type Post struct {
	// Length is the character count after markup is stripped.
	Length int `json:"length" yaml:"length"`
	Images int `json:"images" yaml:"images"`
}

// Pair is an assignment together with the grade a student received on it.
type Pair struct {
	Assignment Assignment
	Grade      Grade
}

// Named returns a name-only assignment.
func Named(name string) Assignment {
	return Assignment{Name: name}
}

// NamedRecord returns an assignment written as a record with no id.
func NamedRecord(name string) Assignment {
	return Assignment{Name: name, record: true}
}

// WithID returns an assignment record carrying an LMS identifier.
func WithID(name string, id int) Assignment {
	return Assignment{Name: name, ID: &id, record: true}
}

// IsRecord reports whether the assignment is written as a record rather
// than a plain name.
func (a Assignment) IsRecord() bool {
	return a.record || a.ID != nil
}

// Score returns a pointer to s, for building graded Grade values.
func Score(s int) *int {
	return &s
}

// IsLate reports whether the grade was submitted at least LateThreshold
// hours after the deadline.
func (g Grade) IsLate() bool {
	return g.Late >= LateThreshold
}

// AssignmentNames returns the assignment names in order.
func (gb *Gradebook) AssignmentNames() []string {
	names := make([]string, len(gb.Assignments))
	for i, a := range gb.Assignments {
		names[i] = a.Name
	}
	return names
}

// Pairs returns the student's grades joined with the assignments they
// belong to. It is only meaningful for a validated Gradebook.
func (gb *Gradebook) Pairs(s Student) []Pair {
	n := min(len(gb.Assignments), len(s.Grades))
	pairs := make([]Pair, n)
	for i := range n {
		pairs[i] = Pair{Assignment: gb.Assignments[i], Grade: s.Grades[i]}
	}
	return pairs
}
