package gradebook

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const mixedDoc = `{
    "assignments": ["Discussion 1", {"name": "Discussion 2", "id": 77}],
    "students": [
        {
            "sortable_name": "Doe, Jane",
            "id": 1001,
            "grades": [
                {"score": 50, "late": -5, "posts": [{"length": 600, "images": 1}]},
                {"score": null, "late": 20, "posts": []}
            ]
        }
    ]
}`

func TestReadJSON_MixedAssignments(t *testing.T) {
	gb, err := ReadJSON(strings.NewReader(mixedDoc))
	require.NoError(t, err)

	require.Len(t, gb.Assignments, 2)
	assert.Equal(t, "Discussion 1", gb.Assignments[0].Name)
	assert.Nil(t, gb.Assignments[0].ID)
	require.NotNil(t, gb.Assignments[1].ID)
	assert.Equal(t, 77, *gb.Assignments[1].ID)

	require.Len(t, gb.Students, 1)
	assert.Nil(t, gb.Students[0].Grades[1].Score)
	assert.Equal(t, 20, gb.Students[0].Grades[1].Late)
}

func TestJSONRoundTrip(t *testing.T) {
	gb, err := ReadJSON(strings.NewReader(mixedDoc))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, WriteJSON(&buf, gb))
	assert.Contains(t, buf.String(), `"Discussion 1",`)
	assert.Contains(t, buf.String(), `"id": 77`)

	again, err := ReadJSON(&buf)
	require.NoError(t, err)
	assert.Equal(t, gb, again)
}

func TestYAMLRoundTrip(t *testing.T) {
	gb, err := ReadJSON(strings.NewReader(mixedDoc))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, WriteYAML(&buf, gb))
	assert.Contains(t, buf.String(), "sortable_name:")

	again, err := ReadYAML(&buf)
	require.NoError(t, err)
	assert.Equal(t, gb, again)
}

func TestReadJSON_Rejects(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"malformed", `{"assignments": [`},
		{"missing students", `{"assignments": []}`},
		{"missing late", `{"assignments": ["a"], "students": [{"sortable_name": "x", "id": 1, "grades": [{"score": 1, "posts": []}]}]}`},
		{"string score", `{"assignments": ["a"], "students": [{"sortable_name": "x", "id": 1, "grades": [{"score": "A", "late": 0, "posts": []}]}]}`},
		{"negative images", `{"assignments": ["a"], "students": [{"sortable_name": "x", "id": 1, "grades": [{"score": 1, "late": 0, "posts": [{"length": 1, "images": -1}]}]}]}`},
		{"record without name", `{"assignments": [{"id": 3}], "students": []}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ReadJSON(strings.NewReader(tt.doc))
			require.Error(t, err)
			var schemaErr *SchemaError
			assert.True(t, errors.As(err, &schemaErr), "expected *SchemaError, got %T", err)
		})
	}
}

func TestReadJSON_Misaligned(t *testing.T) {
	doc := `{"assignments": ["a", "b"], "students": [{"sortable_name": "x", "id": 1, "grades": [{"score": 1, "late": 0, "posts": []}]}]}`
	_, err := ReadJSON(strings.NewReader(doc))
	var alignErr *AlignmentError
	require.True(t, errors.As(err, &alignErr), "expected *AlignmentError, got %v", err)
}

func TestReadYAML_Rejects(t *testing.T) {
	_, err := ReadYAML(strings.NewReader("assignments: [a]\nstudents:\n  - sortable_name: x\n    grades: []\n"))
	var schemaErr *SchemaError
	require.True(t, errors.As(err, &schemaErr), "expected *SchemaError, got %v", err)
}

func TestRoundTrip_RecordWithoutID(t *testing.T) {
	const doc = `{"assignments": ["Intro", {"name": "Week 1"}], "students": []}`

	gb, err := ReadJSON(strings.NewReader(doc))
	require.NoError(t, err)
	assert.False(t, gb.Assignments[0].IsRecord())
	assert.True(t, gb.Assignments[1].IsRecord())
	assert.Nil(t, gb.Assignments[1].ID)

	var js bytes.Buffer
	require.NoError(t, WriteJSON(&js, gb))
	assert.Contains(t, js.String(), `"Intro",`)
	assert.Contains(t, js.String(), `"name": "Week 1"`)
	assert.NotContains(t, js.String(), `"id"`)

	var ym bytes.Buffer
	require.NoError(t, WriteYAML(&ym, gb))
	assert.Contains(t, ym.String(), "name: Week 1")

	fromYAML, err := ReadYAML(&ym)
	require.NoError(t, err)
	assert.Equal(t, gb, fromYAML)
}

func TestWriteJSON_NoHTMLEscaping(t *testing.T) {
	gb, err := New([]Assignment{Named("Q&A <live>")}, []Student{
		{SortableName: "O'Hara & Sons", ID: 1, Grades: []Grade{{Score: Score(40), Posts: []Post{}}}},
	})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, WriteJSON(&buf, gb))
	assert.Contains(t, buf.String(), `"O'Hara & Sons"`)
	assert.Contains(t, buf.String(), `"Q&A <live>"`)
	assert.NotContains(t, buf.String(), `\u0026`)
	assert.NotContains(t, buf.String(), `\u003c`)
}
