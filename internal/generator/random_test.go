package generator

import (
	"bytes"
	"math/rand/v2"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/designchallenge/gradebook/internal/gradebook"
)

func seeded(seed uint64) *Generator {
	cfg := DefaultConfig()
	cfg.Seed = seed
	return New(cfg)
}

func TestGenerate_Invariants(t *testing.T) {
	for seed := uint64(1); seed <= 10; seed++ {
		gb, err := seeded(seed).Generate(20, Count(6), EmbeddedNames())
		require.NoError(t, err)

		require.Len(t, gb.Students, 20)
		require.Len(t, gb.Assignments, 6)
		assert.Equal(t, "Discussion 1", gb.Assignments[0].Name)
		assert.Equal(t, "Discussion 6", gb.Assignments[5].Name)

		ids := make(map[int]bool)
		var names []string
		for _, s := range gb.Students {
			assert.Len(t, s.Grades, len(gb.Assignments))
			assert.False(t, ids[s.ID], "duplicate id %d", s.ID)
			ids[s.ID] = true
			assert.GreaterOrEqual(t, s.ID, 1001)
			assert.LessOrEqual(t, s.ID, 8999)
			assert.Contains(t, s.SortableName, ", ")
			names = append(names, s.SortableName)
		}
		assert.True(t, slices.IsSorted(names), "students not sorted: %v", names)
	}
}

func TestGenerate_SameSeedSameGradebook(t *testing.T) {
	a, err := seeded(42).Generate(8, Count(4), EmbeddedNames())
	require.NoError(t, err)
	b, err := seeded(42).Generate(8, Count(4), EmbeddedNames())
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestGenerate_JSONRoundTrip(t *testing.T) {
	gb, err := seeded(7).Generate(12, Count(5), EmbeddedNames())
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, gradebook.WriteJSON(&buf, gb))
	back, err := gradebook.ReadJSON(&buf)
	require.NoError(t, err)
	assert.Equal(t, gb, back)
}

func TestGenerate_NamedAssignments(t *testing.T) {
	gb, err := seeded(3).Generate(2, Names("Intro", "Midterm reflection"), EmbeddedNames())
	require.NoError(t, err)
	assert.Equal(t, []string{"Intro", "Midterm reflection"}, gb.AssignmentNames())
	for _, s := range gb.Students {
		assert.Len(t, s.Grades, 2)
	}
}

func TestGenerate_NameErrors(t *testing.T) {
	g := seeded(1)

	_, err := g.Generate(3, Count(1), ReaderNames(strings.NewReader("Jane Doe\nJohn Roe\n")))
	assert.ErrorIs(t, err, ErrInsufficientNames)

	_, err = g.Generate(1, Count(1), FileNames(filepath.Join(t.TempDir(), "missing.txt")))
	assert.ErrorIs(t, err, ErrNamesUnavailable)

	_, err = g.Generate(1, Count(1), nil)
	assert.ErrorIs(t, err, ErrNamesUnavailable)

	_, err = g.Generate(-1, Count(1), EmbeddedNames())
	assert.ErrorIs(t, err, ErrNegativeCount)

	_, err = g.Generate(1, Count(-2), EmbeddedNames())
	assert.ErrorIs(t, err, ErrNegativeCount)
}

func TestGenerate_IDRange(t *testing.T) {
	names := ReaderNames(strings.NewReader("A One\nB Two\nC Three\nD Four\n"))

	cfg := DefaultConfig()
	cfg.Seed = 9
	cfg.IDs = Range{1, 3}

	_, err := New(cfg).Generate(4, Count(1), names)
	assert.ErrorIs(t, err, ErrIDRangeExhausted)

	gb, err := New(cfg).Generate(3, Count(1), names)
	require.NoError(t, err)
	var ids []int
	for _, s := range gb.Students {
		ids = append(ids, s.ID)
	}
	slices.Sort(ids)
	assert.Equal(t, []int{1, 2, 3}, ids)
}

func TestParseNames(t *testing.T) {
	src := "Jane Doe\n\nMadonna\n  Ada   Lovelace  \nJohn Ronald Tolkien\n"
	names, err := ReaderNames(strings.NewReader(src)).Names()
	require.NoError(t, err)
	assert.Equal(t, []string{"Doe, Jane", "Lovelace, Ada", "Ronald, John"}, names)
}

func TestEmbeddedNames(t *testing.T) {
	names, err := EmbeddedNames().Names()
	require.NoError(t, err)
	assert.GreaterOrEqual(t, len(names), 50)
}

func TestBiasedRange_StrongSkewsHigher(t *testing.T) {
	r := rand.New(rand.NewPCG(1, 2))
	rg := Range{100, 300}

	const n = 5000
	var strongSum, weakSum int
	for range n {
		s := BiasedRange(r, rg, true)
		w := BiasedRange(r, rg, false)
		require.True(t, s >= rg.Low && s <= rg.High, "strong draw %d out of range", s)
		require.True(t, w >= rg.Low && w <= rg.High, "weak draw %d out of range", w)
		strongSum += s
		weakSum += w
	}
	assert.GreaterOrEqual(t, strongSum/n, weakSum/n)
	// Max-of-two has mean ~2/3 of the way up the range, min-of-two ~1/3.
	assert.InDelta(t, 233, float64(strongSum)/n, 10)
	assert.InDelta(t, 167, float64(weakSum)/n, 10)
}

func TestBiasedRange_SingleValue(t *testing.T) {
	r := rand.New(rand.NewPCG(5, 5))
	for range 20 {
		assert.Equal(t, 1, BiasedRange(r, Range{1, 1}, true))
		assert.Equal(t, 1, BiasedRange(r, Range{1, 1}, false))
	}
}

func TestSampleGrade_LatenessPenalty(t *testing.T) {
	g := seeded(11)
	p := profile{
		posts:       Range{2, 5},
		firstLength: Range{700, 1300},
		laterLength: Range{100, 300},
		firstImages: Range{0, 2},
	}

	var penalized, spared int
	for i := range 2000 {
		strong := i%3 != 0
		grade, raw := g.sampleGrade(p, strong)
		require.NotNil(t, grade.Score)

		menu := g.cfg.WeakScores
		if strong {
			menu = g.cfg.StrongScores
		}
		require.Contains(t, menu, raw)

		if grade.Late > 12 {
			assert.Equal(t, raw-5, *grade.Score)
			penalized++
		} else {
			assert.Equal(t, raw, *grade.Score)
			spared++
		}

		inLate := grade.Late >= 4 && grade.Late <= 72
		inEarly := grade.Late >= -48 && grade.Late <= -4
		assert.True(t, inLate || inEarly, "lateness %d outside both ranges", grade.Late)

		require.GreaterOrEqual(t, len(grade.Posts), 2)
		require.LessOrEqual(t, len(grade.Posts), 5)
		first := grade.Posts[0]
		assert.True(t, first.Length >= 700 && first.Length <= 1300)
		assert.True(t, first.Images >= 0 && first.Images <= 2)
		for _, later := range grade.Posts[1:] {
			assert.True(t, later.Length >= 100 && later.Length <= 300)
			assert.Zero(t, later.Images)
		}
	}
	assert.Positive(t, penalized)
	assert.Positive(t, spared)
}

func TestDrawStrong_TwoInThree(t *testing.T) {
	g := seeded(21)
	const n = 6000
	strong := 0
	for range n {
		if g.drawStrong() {
			strong++
		}
	}
	assert.InDelta(t, 2.0/3.0, float64(strong)/n, 0.03)
}

func TestFileNames(t *testing.T) {
	path := filepath.Join(t.TempDir(), "names.txt")
	require.NoError(t, writeFile(path, "Jane Doe\nJohn Roe\n"))

	names, err := FileNames(path).Names()
	require.NoError(t, err)
	assert.Equal(t, []string{"Doe, Jane", "Roe, John"}, names)

	_, err = seeded(2).Generate(2, Count(1), FileNames(path))
	require.NoError(t, err)
}

func writeFile(path, content string) error {
	return os.WriteFile(path, []byte(content), 0o644)
}

func TestReaderNames_Reusable(t *testing.T) {
	src := ReaderNames(strings.NewReader("Jane Doe\nJohn Roe\n"))
	for range 3 {
		names, err := src.Names()
		require.NoError(t, err)
		assert.Equal(t, []string{"Doe, Jane", "Roe, John"}, names)
	}

	// Callers may modify the slice they get.
	names, _ := src.Names()
	names[0] = "changed"
	again, _ := src.Names()
	assert.Equal(t, "Doe, Jane", again[0])
}

func TestGenerate_RejectsInvalidConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Seed = 4
	cfg.Late = Range{72, 4}

	assert.NotPanics(t, func() {
		_, err := New(cfg).Generate(50, Count(5), EmbeddedNames())
		var verrs validator.ValidationErrors
		assert.ErrorAs(t, err, &verrs)
	})

	cfg = DefaultConfig()
	cfg.WeakScores = nil
	_, err := New(cfg).Generate(5, Count(2), EmbeddedNames())
	assert.Error(t, err)
}
