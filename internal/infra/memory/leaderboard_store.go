package memory

import (
	"context"
	"sync"

	"trivia-session-service/internal/domain"
)

// LeaderboardStore keeps the score list in process memory. It backs tests and
// runs without any configured persistence; scores are lost on exit.
type LeaderboardStore struct {
	mu      sync.Mutex
	entries []domain.ScoreEntry
}

func NewLeaderboardStore() *LeaderboardStore {
	return &LeaderboardStore{}
}

func (s *LeaderboardStore) Record(_ context.Context, entry domain.ScoreEntry) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	extended := append(append([]domain.ScoreEntry(nil), s.entries...), entry)
	kept, rank := domain.Standings(extended, entry.ID)
	s.entries = kept
	return rank, nil
}

func (s *LeaderboardStore) List(_ context.Context, limit int) ([]domain.ScoreEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	n := len(s.entries)
	if limit >= 0 && limit < n {
		n = limit
	}
	out := make([]domain.ScoreEntry, n)
	copy(out, s.entries[:n])
	return out, nil
}
