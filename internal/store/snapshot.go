package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	"github.com/google/uuid"

	"github.com/designchallenge/gradebook/internal/gradebook"
)

// ErrNotFound is returned when no snapshot has the requested id.
var ErrNotFound = errors.New("gradebook snapshot not found")

// Record describes one saved snapshot.
type Record struct {
	ID        string
	Label     string
	CreatedAt time.Time
}

func builder() *entsql.DialectBuilder {
	return entsql.Dialect(dialect.SQLite)
}

// Save stores gb as a new snapshot and returns its record. Either the
// whole gradebook is written or nothing is.
func (s *Store) Save(ctx context.Context, label string, gb *gradebook.Gradebook) (Record, error) {
	rec := Record{
		ID:        uuid.NewString(),
		Label:     label,
		CreatedAt: time.Now().UTC(),
	}

	inserts := []*entsql.InsertBuilder{
		builder().Insert(GradebooksTable.Name).
			Columns("id", "label", "created_at").
			Values(rec.ID, rec.Label, rec.CreatedAt),
	}

	if len(gb.Assignments) > 0 {
		ins := builder().Insert(AssignmentsTable.Name).
			Columns("gradebook_id", "position", "name", "lms_id", "record")
		for i, a := range gb.Assignments {
			var lmsID any
			if a.ID != nil {
				lmsID = *a.ID
			}
			ins.Values(rec.ID, i, a.Name, lmsID, a.IsRecord())
		}
		inserts = append(inserts, ins)
	}

	for si, st := range gb.Students {
		inserts = append(inserts, builder().Insert(StudentsTable.Name).
			Columns("gradebook_id", "position", "sortable_name", "student_id").
			Values(rec.ID, si, st.SortableName, st.ID))

		if len(st.Grades) == 0 {
			continue
		}
		ins := builder().Insert(GradesTable.Name).
			Columns("gradebook_id", "student_position", "assignment_position", "score", "late", "posts")
		for ai, g := range st.Grades {
			posts := g.Posts
			if posts == nil {
				posts = []gradebook.Post{}
			}
			raw, err := json.Marshal(posts)
			if err != nil {
				return Record{}, fmt.Errorf("marshal posts: %w", err)
			}
			var score any
			if g.Score != nil {
				score = *g.Score
			}
			ins.Values(rec.ID, si, ai, score, g.Late, string(raw))
		}
		inserts = append(inserts, ins)
	}

	tx, err := s.drv.Tx(ctx)
	if err != nil {
		return Record{}, fmt.Errorf("begin transaction: %w", err)
	}
	for _, ins := range inserts {
		query, args := ins.Query()
		if err := tx.Exec(ctx, query, args, nil); err != nil {
			tx.Rollback()
			return Record{}, fmt.Errorf("save snapshot: %w", err)
		}
	}
	if err := tx.Commit(); err != nil {
		return Record{}, fmt.Errorf("commit snapshot: %w", err)
	}
	return rec, nil
}

// Load rebuilds the gradebook saved under id.
func (s *Store) Load(ctx context.Context, id string) (*gradebook.Gradebook, error) {
	b := builder()

	query, args := b.Select("id").From(b.Table(GradebooksTable.Name)).
		Where(entsql.EQ("id", id)).Query()
	var found string
	if err := s.db.QueryRowContext(ctx, query, args...).Scan(&found); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("query snapshot: %w", err)
	}

	assignments, err := s.loadAssignments(ctx, id)
	if err != nil {
		return nil, err
	}
	students, err := s.loadStudents(ctx, id, len(assignments))
	if err != nil {
		return nil, err
	}
	if err := s.loadGrades(ctx, id, students); err != nil {
		return nil, err
	}

	return gradebook.New(assignments, students)
}

func (s *Store) loadAssignments(ctx context.Context, id string) ([]gradebook.Assignment, error) {
	b := builder()
	query, args := b.Select("name", "lms_id", "record").From(b.Table(AssignmentsTable.Name)).
		Where(entsql.EQ("gradebook_id", id)).
		OrderBy("position").Query()

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query assignments: %w", err)
	}
	defer rows.Close()

	assignments := []gradebook.Assignment{}
	for rows.Next() {
		var (
			name   string
			lmsID  sql.NullInt64
			record bool
		)
		if err := rows.Scan(&name, &lmsID, &record); err != nil {
			return nil, fmt.Errorf("scan assignment: %w", err)
		}
		var a gradebook.Assignment
		switch {
		case lmsID.Valid:
			a = gradebook.WithID(name, int(lmsID.Int64))
		case record:
			a = gradebook.NamedRecord(name)
		default:
			a = gradebook.Named(name)
		}
		assignments = append(assignments, a)
	}
	return assignments, rows.Err()
}

func (s *Store) loadStudents(ctx context.Context, id string, nassign int) ([]gradebook.Student, error) {
	b := builder()
	query, args := b.Select("sortable_name", "student_id").From(b.Table(StudentsTable.Name)).
		Where(entsql.EQ("gradebook_id", id)).
		OrderBy("position").Query()

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query students: %w", err)
	}
	defer rows.Close()

	students := []gradebook.Student{}
	for rows.Next() {
		st := gradebook.Student{Grades: make([]gradebook.Grade, nassign)}
		if err := rows.Scan(&st.SortableName, &st.ID); err != nil {
			return nil, fmt.Errorf("scan student: %w", err)
		}
		students = append(students, st)
	}
	return students, rows.Err()
}

// loadGrades fills the pre-sized grade slices of students in place.
func (s *Store) loadGrades(ctx context.Context, id string, students []gradebook.Student) error {
	b := builder()
	query, args := b.Select("student_position", "assignment_position", "score", "late", "posts").
		From(b.Table(GradesTable.Name)).
		Where(entsql.EQ("gradebook_id", id)).
		OrderBy("student_position", "assignment_position").Query()

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("query grades: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			sp, ap int
			score  sql.NullInt64
			g      gradebook.Grade
			raw    []byte
		)
		if err := rows.Scan(&sp, &ap, &score, &g.Late, &raw); err != nil {
			return fmt.Errorf("scan grade: %w", err)
		}
		if sp < 0 || sp >= len(students) || ap < 0 || ap >= len(students[sp].Grades) {
			return fmt.Errorf("grade at (%d, %d) has no matching student or assignment", sp, ap)
		}
		if score.Valid {
			g.Score = gradebook.Score(int(score.Int64))
		}
		if err := json.Unmarshal(raw, &g.Posts); err != nil {
			return fmt.Errorf("decode posts: %w", err)
		}
		students[sp].Grades[ap] = g
	}
	return rows.Err()
}

// List returns all snapshots, newest first.
func (s *Store) List(ctx context.Context) ([]Record, error) {
	b := builder()
	query, args := b.Select("id", "label", "created_at").From(b.Table(GradebooksTable.Name)).
		OrderBy(entsql.Desc("created_at")).Query()

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query snapshots: %w", err)
	}
	defer rows.Close()

	var records []Record
	for rows.Next() {
		var r Record
		if err := rows.Scan(&r.ID, &r.Label, &r.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan snapshot: %w", err)
		}
		records = append(records, r)
	}
	return records, rows.Err()
}

// Delete removes a snapshot and, through cascading keys, its rows.
func (s *Store) Delete(ctx context.Context, id string) error {
	query, args := builder().Delete(GradebooksTable.Name).Where(entsql.EQ("id", id)).Query()

	var res sql.Result
	if err := s.drv.Exec(ctx, query, args, &res); err != nil {
		return fmt.Errorf("delete snapshot: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete snapshot: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("%s: %w", id, ErrNotFound)
	}
	return nil
}
