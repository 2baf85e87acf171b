package gradebook

import (
	"errors"
	"testing"
)

func sampleStudents() []Student {
	return []Student{
		{SortableName: "Doe, Jane", ID: 1001, Grades: []Grade{
			{Score: Score(50), Late: -5, Posts: []Post{{Length: 600, Images: 1}}},
			{Score: nil, Late: 20, Posts: []Post{}},
		}},
		{SortableName: "Roe, Rick", ID: 1002, Grades: []Grade{
			{Score: Score(30), Late: 3, Posts: []Post{}},
			{Score: Score(45), Late: 0, Posts: []Post{{Length: 120, Images: 0}, {Length: 90, Images: 0}}},
		}},
	}
}

func TestNew_Valid(t *testing.T) {
	gb, err := New([]Assignment{Named("Discussion 1"), WithID("Discussion 2", 77)}, sampleStudents())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(gb.Students) != 2 {
		t.Errorf("expected 2 students, got %d", len(gb.Students))
	}
}

func TestNew_EmptyIsValid(t *testing.T) {
	gb, err := New(nil, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gb.Assignments == nil || gb.Students == nil {
		t.Error("expected empty, non-nil slices")
	}
}

func TestNew_Misaligned(t *testing.T) {
	_, err := New([]Assignment{Named("Only one")}, sampleStudents())
	var alignErr *AlignmentError
	if !errors.As(err, &alignErr) {
		t.Fatalf("expected *AlignmentError, got %v", err)
	}
	if alignErr.StudentID != 1001 || alignErr.Grades != 2 || alignErr.Assignments != 1 {
		t.Errorf("unexpected error fields: %+v", alignErr)
	}
}

func TestNew_DuplicateID(t *testing.T) {
	students := sampleStudents()
	students[1].ID = students[0].ID

	_, err := New([]Assignment{Named("a"), Named("b")}, students)
	var dupErr *DuplicateIDError
	if !errors.As(err, &dupErr) {
		t.Fatalf("expected *DuplicateIDError, got %v", err)
	}
	if dupErr.ID != 1001 {
		t.Errorf("expected id 1001, got %d", dupErr.ID)
	}
}

func TestNew_FieldErrors(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(a []Assignment, s []Student)
		path   string
	}{
		{
			name:   "negative length",
			mutate: func(_ []Assignment, s []Student) { s[0].Grades[0].Posts[0].Length = -1 },
			path:   "students[0].grades[0].posts[0].length",
		},
		{
			name:   "negative images",
			mutate: func(_ []Assignment, s []Student) { s[1].Grades[1].Posts[1].Images = -2 },
			path:   "students[1].grades[1].posts[1].images",
		},
		{
			name:   "empty assignment name",
			mutate: func(a []Assignment, _ []Student) { a[1].Name = "" },
			path:   "assignments[1].name",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assignments := []Assignment{Named("a"), Named("b")}
			students := sampleStudents()
			tt.mutate(assignments, students)

			_, err := New(assignments, students)
			var fieldErr *FieldError
			if !errors.As(err, &fieldErr) {
				t.Fatalf("expected *FieldError, got %v", err)
			}
			if fieldErr.Path != tt.path {
				t.Errorf("path = %q, want %q", fieldErr.Path, tt.path)
			}
		})
	}
}

func TestPairs(t *testing.T) {
	gb, err := New([]Assignment{Named("a"), Named("b")}, sampleStudents())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	pairs := gb.Pairs(gb.Students[1])
	if len(pairs) != 2 {
		t.Fatalf("expected 2 pairs, got %d", len(pairs))
	}
	if pairs[1].Assignment.Name != "b" || *pairs[1].Grade.Score != 45 {
		t.Errorf("unexpected second pair: %+v", pairs[1])
	}
}

func TestGrade_IsLate(t *testing.T) {
	tests := []struct {
		late int
		want bool
	}{
		{-48, false},
		{0, false},
		{3, false},
		{4, true},
		{72, true},
	}
	for _, tt := range tests {
		if got := (Grade{Late: tt.late}).IsLate(); got != tt.want {
			t.Errorf("Grade{Late: %d}.IsLate() = %v, want %v", tt.late, got, tt.want)
		}
	}
}

func TestNew_NilPostsBecomeEmpty(t *testing.T) {
	gb, err := New([]Assignment{Named("a")}, []Student{
		{SortableName: "Doe, Jane", ID: 1, Grades: []Grade{{Score: Score(40)}}},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gb.Students[0].Grades[0].Posts == nil {
		t.Error("expected an empty, non-nil post list")
	}
}
