package store

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// GradebooksColumns holds the columns for the "gradebooks" table.
	GradebooksColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "label", Type: field.TypeString},
		{Name: "created_at", Type: field.TypeTime},
	}
	// GradebooksTable holds one row per saved snapshot.
	GradebooksTable = &schema.Table{
		Name:       "gradebooks",
		Columns:    GradebooksColumns,
		PrimaryKey: []*schema.Column{GradebooksColumns[0]},
		Indexes: []*schema.Index{
			{Name: "gradebook_created_at", Columns: []*schema.Column{GradebooksColumns[2]}},
		},
	}

	// AssignmentsColumns holds the columns for the "assignments" table.
	AssignmentsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "position", Type: field.TypeInt},
		{Name: "name", Type: field.TypeString},
		{Name: "lms_id", Type: field.TypeInt, Nullable: true},
		{Name: "gradebook_id", Type: field.TypeString},
		{Name: "record", Type: field.TypeBool, Default: false},
	}
	AssignmentsTable = &schema.Table{
		Name:       "assignments",
		Columns:    AssignmentsColumns,
		PrimaryKey: []*schema.Column{AssignmentsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "assignments_gradebooks_assignments",
				Columns:    []*schema.Column{AssignmentsColumns[4]},
				RefColumns: []*schema.Column{GradebooksColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{Name: "assignment_gradebook_id_position", Unique: true, Columns: []*schema.Column{AssignmentsColumns[4], AssignmentsColumns[1]}},
		},
	}

	// StudentsColumns holds the columns for the "students" table.
	StudentsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "position", Type: field.TypeInt},
		{Name: "sortable_name", Type: field.TypeString},
		{Name: "student_id", Type: field.TypeInt},
		{Name: "gradebook_id", Type: field.TypeString},
	}
	StudentsTable = &schema.Table{
		Name:       "students",
		Columns:    StudentsColumns,
		PrimaryKey: []*schema.Column{StudentsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "students_gradebooks_students",
				Columns:    []*schema.Column{StudentsColumns[4]},
				RefColumns: []*schema.Column{GradebooksColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{Name: "student_gradebook_id_position", Unique: true, Columns: []*schema.Column{StudentsColumns[4], StudentsColumns[1]}},
			{Name: "student_gradebook_id_student_id", Unique: true, Columns: []*schema.Column{StudentsColumns[4], StudentsColumns[3]}},
		},
	}

	// GradesColumns holds the columns for the "grades" table. Posts are
	// kept as a JSON array since nothing queries them individually.
	GradesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "student_position", Type: field.TypeInt},
		{Name: "assignment_position", Type: field.TypeInt},
		{Name: "score", Type: field.TypeInt, Nullable: true},
		{Name: "late", Type: field.TypeInt},
		{Name: "posts", Type: field.TypeJSON},
		{Name: "gradebook_id", Type: field.TypeString},
	}
	GradesTable = &schema.Table{
		Name:       "grades",
		Columns:    GradesColumns,
		PrimaryKey: []*schema.Column{GradesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "grades_gradebooks_grades",
				Columns:    []*schema.Column{GradesColumns[6]},
				RefColumns: []*schema.Column{GradebooksColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{Name: "grade_gradebook_id_student_position_assignment_position", Unique: true, Columns: []*schema.Column{GradesColumns[6], GradesColumns[1], GradesColumns[2]}},
		},
	}

	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		GradebooksTable,
		AssignmentsTable,
		StudentsTable,
		GradesTable,
	}
)

func init() {
	AssignmentsTable.ForeignKeys[0].RefTable = GradebooksTable
	StudentsTable.ForeignKeys[0].RefTable = GradebooksTable
	GradesTable.ForeignKeys[0].RefTable = GradebooksTable
}
