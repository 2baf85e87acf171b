package gradebook

import (
	"bytes"
	"encoding/csv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteCSV_Shape(t *testing.T) {
	gb, err := New([]Assignment{Named("Discussion 1"), WithID("Discussion 2", 9)}, sampleStudents())
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, gb))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)

	header := records[0]
	assert.Equal(t, []string{"sortable_name", "id", "Discussion 1", "Discussion 2"}, header)
	for _, row := range records[1:] {
		assert.Len(t, row, len(gb.Assignments)+2)
	}

	assert.Equal(t, "Doe, Jane", records[1][0])
	assert.Equal(t, "1001", records[1][1])
	assert.Equal(t, "(50, -5, [(600, 1)])", records[1][2])
	assert.Equal(t, "(None, 20, [])", records[1][3])
	assert.Equal(t, "(45, 0, [(120, 0), (90, 0)])", records[2][3])
}

func TestWriteCSV_NoStudents(t *testing.T) {
	gb, err := New([]Assignment{Named("a")}, nil)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, gb))
	assert.Equal(t, "sortable_name,id,a\n", buf.String())
}
