package generator

import (
	"math/rand/v2"

	"github.com/designchallenge/gradebook/internal/gradebook"
)

// Odds as 1-in-n chances.
const (
	weakOneIn = 3
	lateOneIn = 4
)

// uniform draws an integer from the inclusive range.
func uniform(r *rand.Rand, rg Range) int {
	return rg.Low + r.IntN(rg.High-rg.Low+1)
}

// BiasedRange draws two uniform integers from rg and keeps the larger for
// strong students and the smaller otherwise, skewing strong students
// toward the top of the range.
func BiasedRange(r *rand.Rand, rg Range, strong bool) int {
	a := uniform(r, rg)
	b := uniform(r, rg)
	if strong {
		return max(a, b)
	}
	return min(a, b)
}

// profile is the behavior drawn once per assignment and shared by every
// student's grade on it.
type profile struct {
	posts       Range
	firstLength Range
	laterLength Range
	firstImages Range
}

func choose[T any](r *rand.Rand, menu []T) T {
	return menu[r.IntN(len(menu))]
}

func (g *Generator) drawProfile() profile {
	return profile{
		posts:       choose(g.rng, g.cfg.PostCounts),
		firstLength: choose(g.rng, g.cfg.FirstLengths),
		laterLength: choose(g.rng, g.cfg.LaterLengths),
		firstImages: choose(g.rng, g.cfg.FirstImages),
	}
}

func (g *Generator) drawStrong() bool {
	return g.rng.IntN(weakOneIn) != 0
}

// sampleGrade draws one grade. The score comes first, then lateness, and
// the lateness penalty is applied last; rawScore is the score before the
// penalty.
func (g *Generator) sampleGrade(p profile, strong bool) (grade gradebook.Grade, rawScore int) {
	menu := g.cfg.WeakScores
	if strong {
		menu = g.cfg.StrongScores
	}
	rawScore = choose(g.rng, menu)

	var late int
	if g.rng.IntN(lateOneIn) == 0 {
		late = uniform(g.rng, g.cfg.Late)
	} else {
		late = uniform(g.rng, g.cfg.Early)
	}

	score := rawScore
	if late > g.cfg.PenaltyAfter {
		score -= g.cfg.Penalty
	}

	posts := []gradebook.Post{{
		Length: BiasedRange(g.rng, p.firstLength, strong),
		Images: BiasedRange(g.rng, p.firstImages, strong),
	}}
	for range BiasedRange(g.rng, p.posts, strong) - 1 {
		posts = append(posts, gradebook.Post{
			Length: BiasedRange(g.rng, p.laterLength, strong),
			Images: 0,
		})
	}

	return gradebook.Grade{Score: gradebook.Score(score), Late: late, Posts: posts}, rawScore
}
