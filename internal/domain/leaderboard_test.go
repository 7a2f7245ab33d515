package domain

import (
	"fmt"
	"testing"
	"time"
)

func TestSortEntriesOrdersByScoreThenTimestamp(t *testing.T) {
	base := time.Date(2026, 5, 23, 12, 0, 0, 0, time.UTC)
	entries := []ScoreEntry{
		{ID: "a", Name: "A", Score: 10, Timestamp: base},
		{ID: "b", Name: "B", Score: 30, Timestamp: base.Add(2 * time.Minute)},
		{ID: "c", Name: "C", Score: 30, Timestamp: base.Add(time.Minute)},
		{ID: "d", Name: "D", Score: 20, Timestamp: base},
	}

	SortEntries(entries)

	wantOrder := []string{"c", "b", "d", "a"} // earlier timestamp wins the 30-30 tie
	for i, id := range wantOrder {
		if entries[i].ID != id {
			t.Fatalf("position %d: expected %s, got %s", i, id, entries[i].ID)
		}
	}
	for i := 1; i < len(entries); i++ {
		if entries[i].Score > entries[i-1].Score {
			t.Fatalf("scores not descending at %d", i)
		}
	}
}

func TestStandingsTruncatesAndRanks(t *testing.T) {
	base := time.Date(2026, 5, 23, 12, 0, 0, 0, time.UTC)
	var entries []ScoreEntry
	for i := 0; i < LeaderboardCapacity; i++ {
		entries = append(entries, ScoreEntry{
			ID:        fmt.Sprintf("old%d", i),
			Name:      "Old",
			Score:     40 + i,
			Timestamp: base,
		})
	}

	// A low score against a full board of >=40 gets dropped.
	loser := ScoreEntry{ID: "loser", Name: "L", Score: 10, Timestamp: base.Add(time.Hour)}
	kept, rank := Standings(append(entries, loser), loser.ID)
	if rank != UnrankedPosition {
		t.Fatalf("expected unranked, got %d", rank)
	}
	if len(kept) != LeaderboardCapacity {
		t.Fatalf("expected board to stay at %d, got %d", LeaderboardCapacity, len(kept))
	}
	for _, e := range kept {
		if e.ID == "loser" {
			t.Fatal("truncated entry still present")
		}
	}

	// A top score lands at rank 1 and pushes the weakest entry off.
	winner := ScoreEntry{ID: "winner", Name: "W", Score: 100, Timestamp: base.Add(time.Hour)}
	kept, rank = Standings(append(entries, winner), winner.ID)
	if rank != 1 {
		t.Fatalf("expected rank 1, got %d", rank)
	}
	if len(kept) != LeaderboardCapacity {
		t.Fatalf("expected board capped at %d, got %d", LeaderboardCapacity, len(kept))
	}
}

func TestRankOfMissingEntry(t *testing.T) {
	if r := RankOf(nil, "nope"); r != UnrankedPosition {
		t.Fatalf("expected unranked for empty board, got %d", r)
	}
}

func TestDifficultyPoints(t *testing.T) {
	cases := map[Difficulty]int{
		DifficultyEasy:   10,
		DifficultyMedium: 20,
		DifficultyHard:   30,
	}
	for d, want := range cases {
		if got := d.Points(); got != want {
			t.Fatalf("%s: expected %d points, got %d", d, want, got)
		}
	}
}
