package render

import (
	"bytes"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/designchallenge/gradebook/internal/gradebook"
)

func testBook(t *testing.T) *gradebook.Gradebook {
	t.Helper()
	gb, err := gradebook.New(
		[]gradebook.Assignment{gradebook.Named("D1"), gradebook.Named("D2"), gradebook.Named("D3")},
		[]gradebook.Student{
			{SortableName: "Doe, Jane", ID: 1, Grades: []gradebook.Grade{
				{Score: gradebook.Score(50), Late: -10, Posts: []gradebook.Post{{Length: 500, Images: 1}}},
				{Score: gradebook.Score(35), Late: 30, Posts: []gradebook.Post{}},
				{Score: nil, Late: 0, Posts: make([]gradebook.Post, 7)},
			}},
			{SortableName: "O'Hara & Sons, Kim", ID: 2, Grades: []gradebook.Grade{
				{Score: gradebook.Score(40), Late: 4, Posts: []gradebook.Post{}},
				{Score: gradebook.Score(20), Late: 3, Posts: []gradebook.Post{}},
				{Score: gradebook.Score(30), Late: -4, Posts: []gradebook.Post{}},
			}},
		},
	)
	require.NoError(t, err)
	return gb
}

var clipIDPattern = regexp.MustCompile(`<clipPath id="(id-\d+)"`)

func TestTable_OneTextBoxPerCell(t *testing.T) {
	var buf bytes.Buffer
	ids := &Counter{}
	require.NoError(t, Table(&buf, testBook(t), ids))
	out := buf.String()

	// Two rows of one name plus three scores.
	assert.Equal(t, 8, strings.Count(out, "<text"))
	assert.Equal(t, 8, strings.Count(out, "<clipPath"))
	assert.Equal(t, 8, ids.Issued())

	seen := map[string]bool{}
	for _, m := range clipIDPattern.FindAllStringSubmatch(out, -1) {
		assert.False(t, seen[m[1]], "duplicate clip id %s", m[1])
		seen[m[1]] = true
		assert.Contains(t, out, `clip-path="url(#`+m[1]+`)"`)
	}
	assert.Len(t, seen, 8)
}

func TestTable_Encoding(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Table(&buf, testBook(t), &Counter{}))
	out := buf.String()

	assert.True(t, strings.HasPrefix(out, "<?xml"))
	assert.Contains(t, out, `width="230"`)
	assert.Contains(t, out, `height="50"`)

	// Late grades (>= 4 hours) are drawn in red: 35 (30h) and 40 (4h).
	assert.Equal(t, 2, strings.Count(out, `fill="#C00"`))
	assert.Contains(t, out, ">-</text>")
	assert.Contains(t, out, "&amp; Sons")

	// Post bars are capped at five posts.
	assert.Contains(t, out, `width="25" height="15"`)
	assert.Contains(t, out, `width="5" height="15"`)
}

func TestTable_SharedCounterKeepsIncrementing(t *testing.T) {
	ids := &Counter{}
	gb := testBook(t)

	var first, second bytes.Buffer
	require.NoError(t, Table(&first, gb, ids))
	require.NoError(t, Table(&second, gb, ids))

	assert.Contains(t, first.String(), `id="id-1"`)
	assert.NotContains(t, second.String(), `id="id-1"`)
	assert.Contains(t, second.String(), `id="id-9"`)
	assert.Equal(t, 16, ids.Issued())
}

func TestWriteFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "table.svg")
	require.NoError(t, WriteFile(path, testBook(t), &Counter{}))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "</svg>")
}

func TestCounter(t *testing.T) {
	var c Counter
	if got := c.Next(); got != "id-1" {
		t.Errorf("first id = %q, want id-1", got)
	}
	if got := c.Next(); got != "id-2" {
		t.Errorf("second id = %q, want id-2", got)
	}
}

func TestBox_Outer(t *testing.T) {
	w, h := DefaultBox().Outer()
	if w != 130 || h != 20 {
		t.Errorf("Outer() = (%d, %d), want (130, 20)", w, h)
	}
}
