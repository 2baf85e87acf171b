package generator

import (
	"fmt"
	"math/rand/v2"
	"slices"
	"time"

	"github.com/designchallenge/gradebook/internal/gradebook"
)

// AssignmentSpec describes the assignments of a generated gradebook:
// either a count of synthesized names or an explicit list.
type AssignmentSpec struct {
	count int
	names []string
}

// Count asks for n assignments named "Discussion 1" .. "Discussion n".
func Count(n int) AssignmentSpec {
	return AssignmentSpec{count: n}
}

// Names uses the given assignment names in order.
func Names(names ...string) AssignmentSpec {
	return AssignmentSpec{count: len(names), names: names}
}

func (s AssignmentSpec) assignments() ([]gradebook.Assignment, error) {
	if s.count < 0 {
		return nil, fmt.Errorf("assignments %d: %w", s.count, ErrNegativeCount)
	}
	out := make([]gradebook.Assignment, s.count)
	for i := range out {
		if s.names != nil {
			out[i] = gradebook.Named(s.names[i])
		} else {
			out[i] = gradebook.Named(fmt.Sprintf("Discussion %d", i+1))
		}
	}
	return out, nil
}

// Generator produces synthetic gradebooks whose students split into
// strong and weak performers. All randomness comes from one seeded source.
type Generator struct {
	cfg Config
	rng *rand.Rand
}

// New creates a Generator. A zero cfg.Seed is replaced by the clock.
func New(cfg Config) *Generator {
	seed := cfg.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return &Generator{
		cfg: cfg,
		rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
	}
}

// Generate builds a gradebook with the given number of students. Names are
// drawn without replacement from names and sorted; ids are drawn
// independently, so they do not follow name order. The generator's Config
// is validated first.
func (g *Generator) Generate(students int, spec AssignmentSpec, names NameSource) (*gradebook.Gradebook, error) {
	if err := g.cfg.Validate(); err != nil {
		return nil, err
	}
	if students < 0 {
		return nil, fmt.Errorf("students %d: %w", students, ErrNegativeCount)
	}
	assignments, err := spec.assignments()
	if err != nil {
		return nil, err
	}

	roster, err := g.drawNames(students, names)
	if err != nil {
		return nil, err
	}
	ids, err := g.drawIDs(students)
	if err != nil {
		return nil, err
	}

	profiles := make([]profile, len(assignments))
	for i := range profiles {
		profiles[i] = g.drawProfile()
	}

	out := make([]gradebook.Student, students)
	for si := range students {
		strong := g.drawStrong()
		grades := make([]gradebook.Grade, len(profiles))
		for ai, p := range profiles {
			grades[ai], _ = g.sampleGrade(p, strong)
		}
		out[si] = gradebook.Student{SortableName: roster[si], ID: ids[si], Grades: grades}
	}

	return gradebook.New(assignments, out)
}

func (g *Generator) drawNames(n int, src NameSource) ([]string, error) {
	if src == nil {
		return nil, ErrNamesUnavailable
	}
	all, err := src.Names()
	if err != nil {
		return nil, fmt.Errorf("load names: %w", err)
	}
	if len(all) < n {
		return nil, fmt.Errorf("have %d names, need %d: %w", len(all), n, ErrInsufficientNames)
	}

	pool := slices.Clone(all)
	g.rng.Shuffle(len(pool), func(i, j int) { pool[i], pool[j] = pool[j], pool[i] })
	pool = pool[:n]
	slices.Sort(pool)
	return pool, nil
}

// drawIDs collects n distinct ids from the configured range, redrawing on
// collision.
func (g *Generator) drawIDs(n int) ([]int, error) {
	if span := g.cfg.IDs.High - g.cfg.IDs.Low + 1; n > span {
		return nil, fmt.Errorf("%d ids from %d..%d: %w", n, g.cfg.IDs.Low, g.cfg.IDs.High, ErrIDRangeExhausted)
	}

	seen := make(map[int]struct{}, n)
	ids := make([]int, 0, n)
	for len(ids) < n {
		id := uniform(g.rng, g.cfg.IDs)
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		ids = append(ids, id)
	}
	return ids, nil
}
