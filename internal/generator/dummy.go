package generator

import (
	"fmt"

	"github.com/designchallenge/gradebook/internal/gradebook"
)

// DefaultDummyCount is the student, assignment and post count used when
// the caller does not specify one.
const DefaultDummyCount = 5

const (
	dummyName    = "Student, Alfred"
	dummyFirstID = 1000
	dummyScore   = 50
	dummyLength  = 500
	dummyImages  = 1
)

// Dummy builds a fully deterministic fixture: every student is
// "Student, Alfred" with sequential ids from 1000, and every grade is a
// score of 50, on time, with posts posts of 500 characters and one image.
func Dummy(students, assignments, posts int) (*gradebook.Gradebook, error) {
	if students < 0 || assignments < 0 || posts < 0 {
		return nil, fmt.Errorf("dummy gradebook (%d, %d, %d): %w", students, assignments, posts, ErrNegativeCount)
	}

	names := make([]gradebook.Assignment, assignments)
	for i := range assignments {
		names[i] = gradebook.Named(fmt.Sprintf("Assignment %d", i))
	}

	roster := make([]gradebook.Student, students)
	for si := range students {
		grades := make([]gradebook.Grade, assignments)
		for ai := range assignments {
			ps := make([]gradebook.Post, posts)
			for pi := range ps {
				ps[pi] = gradebook.Post{Length: dummyLength, Images: dummyImages}
			}
			grades[ai] = gradebook.Grade{Score: gradebook.Score(dummyScore), Late: 0, Posts: ps}
		}
		roster[si] = gradebook.Student{SortableName: dummyName, ID: dummyFirstID + si, Grades: grades}
	}

	return gradebook.New(names, roster)
}
