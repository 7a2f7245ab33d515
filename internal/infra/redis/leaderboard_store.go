package redis

import (
	"context"
	"encoding/json"
	"log"
	"sync"

	"github.com/redis/go-redis/v9"

	"trivia-session-service/internal/domain"
)

// DefaultLeaderboardKey is the fixed logical key the score list lives under.
const DefaultLeaderboardKey = "trivia:leaderboard"

// LeaderboardStore keeps the score list as a JSON blob under a single Redis
// key. The read-modify-write cycle is serialized by the local mutex; the
// store is meant for one process owning the key, mirroring the local-device
// semantics of the file store.
type LeaderboardStore struct {
	client *redis.Client
	key    string
	mu     sync.Mutex
}

func NewLeaderboardStore(client *redis.Client, key string) *LeaderboardStore {
	if key == "" {
		key = DefaultLeaderboardKey
	}
	return &LeaderboardStore{client: client, key: key}
}

func (s *LeaderboardStore) Record(ctx context.Context, entry domain.ScoreEntry) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries := append(s.load(ctx), entry)
	kept, rank := domain.Standings(entries, entry.ID)

	data, err := json.Marshal(kept)
	if err != nil {
		return rank, err
	}
	if err := s.client.Set(ctx, s.key, data, 0).Err(); err != nil {
		// Best effort, same contract as the file store.
		log.Printf("leaderboard: redis set %s failed: %v", s.key, err)
	}
	return rank, nil
}

func (s *LeaderboardStore) List(ctx context.Context, limit int) ([]domain.ScoreEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries := s.load(ctx)
	if limit >= 0 && limit < len(entries) {
		entries = entries[:limit]
	}
	return entries, nil
}

// load degrades to an empty board on any read or decode failure.
func (s *LeaderboardStore) load(ctx context.Context) []domain.ScoreEntry {
	data, err := s.client.Get(ctx, s.key).Bytes()
	if err != nil {
		if err != redis.Nil {
			log.Printf("leaderboard: redis get %s failed: %v", s.key, err)
		}
		return nil
	}
	var entries []domain.ScoreEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		log.Printf("leaderboard: malformed blob at %s, starting empty: %v", s.key, err)
		return nil
	}
	return entries
}
