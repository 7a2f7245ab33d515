package app

import (
	"math/rand"

	"trivia-session-service/internal/domain"
)

// SelectBatch draws the question batch for one play-through: filter the pool
// to the requested difficulty (and category, when non-empty), shuffle the
// matches uniformly, and keep at most batchSize of them. A pool with fewer
// matches than batchSize yields a shorter batch; that is not an error.
//
// The rng is injected so tests can assert exact permutations with a seeded
// source. Called once per session start, never mid-play.
func SelectBatch(rng *rand.Rand, pool []domain.Question, difficulty domain.Difficulty, category string, batchSize int) []domain.Question {
	seen := make(map[string]struct{}, len(pool))
	matched := make([]domain.Question, 0, len(pool))
	for _, q := range pool {
		if q.Difficulty != difficulty {
			continue
		}
		if category != "" && q.Category != category {
			continue
		}
		if _, dup := seen[q.ID]; dup {
			continue
		}
		seen[q.ID] = struct{}{}
		matched = append(matched, q)
	}

	// Fisher-Yates over the filtered set.
	for i := len(matched) - 1; i >= 1; i-- {
		j := rng.Intn(i + 1)
		matched[i], matched[j] = matched[j], matched[i]
	}

	if batchSize >= 0 && len(matched) > batchSize {
		matched = matched[:batchSize]
	}
	return matched
}
