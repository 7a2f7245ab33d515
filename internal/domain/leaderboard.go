package domain

import "sort"

// SortEntries orders a leaderboard in place: score descending, ties broken
// by earlier timestamp (the earlier achiever keeps the higher spot), then
// by name so the order is fully deterministic.
func SortEntries(entries []ScoreEntry) {
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Score != entries[j].Score {
			return entries[i].Score > entries[j].Score
		}
		if !entries[i].Timestamp.Equal(entries[j].Timestamp) {
			return entries[i].Timestamp.Before(entries[j].Timestamp)
		}
		return entries[i].Name < entries[j].Name
	})
}

// RankOf returns the 1-based position of the entry with the given ID, or
// UnrankedPosition when the entry is not present (truncated away).
func RankOf(entries []ScoreEntry, id string) int {
	for i := range entries {
		if entries[i].ID == id {
			return i + 1
		}
	}
	return UnrankedPosition
}

// Standings applies the capacity rule to a freshly extended leaderboard:
// sort, truncate to LeaderboardCapacity, and report the rank of the entry
// identified by id within the surviving list.
func Standings(entries []ScoreEntry, id string) ([]ScoreEntry, int) {
	SortEntries(entries)
	if len(entries) > LeaderboardCapacity {
		entries = entries[:LeaderboardCapacity]
	}
	return entries, RankOf(entries, id)
}
