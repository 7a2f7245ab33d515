package memory

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"

	"trivia-session-service/internal/domain"
)

func TestLeaderboardStoreRanksAndCaps(t *testing.T) {
	ctx := context.Background()
	store := NewLeaderboardStore()
	base := time.Date(2026, 5, 23, 12, 0, 0, 0, time.UTC)

	rank, err := store.Record(ctx, entry("Alice", 40, base))
	if err != nil {
		t.Fatalf("record: %v", err)
	}
	if rank != 1 {
		t.Fatalf("expected rank 1 on empty board, got %d", rank)
	}

	rank, _ = store.Record(ctx, entry("Bob", 60, base.Add(time.Minute)))
	if rank != 1 {
		t.Fatalf("expected new top score at rank 1, got %d", rank)
	}

	rank, _ = store.Record(ctx, entry("Carol", 50, base.Add(2*time.Minute)))
	if rank != 2 {
		t.Fatalf("expected rank 2, got %d", rank)
	}

	entries, err := store.List(ctx, 10)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	for i := 1; i < len(entries); i++ {
		if entries[i].Score > entries[i-1].Score {
			t.Fatalf("scores not descending: %+v", entries)
		}
	}
}

func TestLeaderboardStoreDropsLowScoreWhenFull(t *testing.T) {
	ctx := context.Background()
	store := NewLeaderboardStore()
	base := time.Date(2026, 5, 23, 12, 0, 0, 0, time.UTC)

	for i := 0; i < domain.LeaderboardCapacity; i++ {
		if _, err := store.Record(ctx, entry(fmt.Sprintf("P%d", i), 40+i, base)); err != nil {
			t.Fatalf("seed record: %v", err)
		}
	}

	rank, err := store.Record(ctx, entry("Late", 10, base.Add(time.Hour)))
	if err != nil {
		t.Fatalf("record: %v", err)
	}
	if rank != domain.UnrankedPosition {
		t.Fatalf("expected unranked, got %d", rank)
	}

	entries, _ := store.List(ctx, domain.LeaderboardCapacity+5)
	if len(entries) != domain.LeaderboardCapacity {
		t.Fatalf("expected board to stay at %d, got %d", domain.LeaderboardCapacity, len(entries))
	}
	for _, e := range entries {
		if e.Name == "Late" {
			t.Fatal("dropped entry still on the board")
		}
	}
}

func TestLeaderboardStoreListLimit(t *testing.T) {
	ctx := context.Background()
	store := NewLeaderboardStore()
	base := time.Date(2026, 5, 23, 12, 0, 0, 0, time.UTC)

	for i := 0; i < 5; i++ {
		_, _ = store.Record(ctx, entry(fmt.Sprintf("P%d", i), i*10, base))
	}
	entries, err := store.List(ctx, 3)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(entries) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(entries))
	}
}

func entry(name string, score int, at time.Time) domain.ScoreEntry {
	return domain.ScoreEntry{
		ID:        uuid.NewString(),
		Name:      name,
		Score:     score,
		Timestamp: at,
	}
}
