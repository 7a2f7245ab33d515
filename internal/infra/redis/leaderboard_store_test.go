package redis

import (
	"context"
	"testing"
	"time"

	miniredis "github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"trivia-session-service/internal/domain"
)

func TestLeaderboardStoreRecordsUnderFixedKey(t *testing.T) {
	mr, client := newTestRedis(t)
	store := NewLeaderboardStore(client, "")
	ctx := context.Background()
	base := time.Date(2026, 5, 23, 12, 0, 0, 0, time.UTC)

	rank, err := store.Record(ctx, entry("Alice", 40, base))
	if err != nil {
		t.Fatalf("record: %v", err)
	}
	if rank != 1 {
		t.Fatalf("expected rank 1, got %d", rank)
	}
	if !mr.Exists(DefaultLeaderboardKey) {
		t.Fatalf("expected blob under %s", DefaultLeaderboardKey)
	}

	rank, _ = store.Record(ctx, entry("Bob", 70, base.Add(time.Minute)))
	if rank != 1 {
		t.Fatalf("expected higher score at rank 1, got %d", rank)
	}

	entries, err := store.List(ctx, 10)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(entries) != 2 || entries[0].Name != "Bob" {
		t.Fatalf("unexpected list: %+v", entries)
	}
}

func TestLeaderboardStoreCorruptBlobIsEmpty(t *testing.T) {
	mr, client := newTestRedis(t)
	if err := mr.Set(DefaultLeaderboardKey, "{not json"); err != nil {
		t.Fatalf("seed corrupt blob: %v", err)
	}

	store := NewLeaderboardStore(client, "")
	entries, err := store.List(context.Background(), 10)
	if err != nil {
		t.Fatalf("list should not fail on corrupt state: %v", err)
	}
	if len(entries) != 0 {
		t.Fatalf("expected empty board, got %+v", entries)
	}
}

func TestLeaderboardStoreCustomKey(t *testing.T) {
	mr, client := newTestRedis(t)
	store := NewLeaderboardStore(client, "myapp:scores")

	_, err := store.Record(context.Background(), entry("Alice", 10, time.Now()))
	if err != nil {
		t.Fatalf("record: %v", err)
	}
	if !mr.Exists("myapp:scores") {
		t.Fatal("expected blob under custom key")
	}
}

func newTestRedis(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	t.Helper()
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("run miniredis: %v", err)
	}
	t.Cleanup(mr.Close)
	return mr, redis.NewClient(&redis.Options{Addr: mr.Addr()})
}

func entry(name string, score int, at time.Time) domain.ScoreEntry {
	return domain.ScoreEntry{
		ID:        uuid.NewString(),
		Name:      name,
		Score:     score,
		Timestamp: at,
	}
}
