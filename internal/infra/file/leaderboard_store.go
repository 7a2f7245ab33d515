package file

import (
	"context"
	"encoding/json"
	"log"
	"os"
	"path/filepath"
	"sync"

	"trivia-session-service/internal/domain"
)

// LeaderboardStore persists the score list as a JSON array in a single local
// file. Reads are load-on-demand and fail soft: a missing, unreadable, or
// malformed file is treated as an empty leaderboard, never as a fatal error.
type LeaderboardStore struct {
	path string
	mu   sync.Mutex
}

func NewLeaderboardStore(path string) *LeaderboardStore {
	return &LeaderboardStore{path: path}
}

func (s *LeaderboardStore) Record(_ context.Context, entry domain.ScoreEntry) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries := append(s.load(), entry)
	kept, rank := domain.Standings(entries, entry.ID)
	if err := s.save(kept); err != nil {
		// Best effort: the rank is still valid for this process, the next
		// read just won't see the new entry.
		log.Printf("leaderboard: save %s failed: %v", s.path, err)
	}
	return rank, nil
}

func (s *LeaderboardStore) List(_ context.Context, limit int) ([]domain.ScoreEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries := s.load()
	if limit >= 0 && limit < len(entries) {
		entries = entries[:limit]
	}
	return entries, nil
}

func (s *LeaderboardStore) load() []domain.ScoreEntry {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if !os.IsNotExist(err) {
			log.Printf("leaderboard: read %s failed: %v", s.path, err)
		}
		return nil
	}
	var entries []domain.ScoreEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		log.Printf("leaderboard: malformed %s, starting empty: %v", s.path, err)
		return nil
	}
	return entries
}

func (s *LeaderboardStore) save(entries []domain.ScoreEntry) error {
	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return err
	}
	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, s.path)
}
