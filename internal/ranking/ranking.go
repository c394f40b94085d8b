// Package ranking computes the weekly login ranking from aggregated
// (user, count) pairs. The aggregation query and the ranking pass are
// deliberately separate so the arithmetic is testable without a
// database.
package ranking

import (
	"sort"
	"time"

	"github.com/hanbit-board/apiserver/types"
)

// Limit caps the candidate set before ranking. Ties at the boundary
// are cut, not extended.
const Limit = 20

// Entry is one ranked row of the weekly output.
type Entry struct {
	Username        string `json:"username"`
	LoginCount      int    `json:"loginCount"`
	Rank            int    `json:"rank"`
	SharedRankCount int    `json:"sharedRankCount"`
}

// WeekWindow returns the Monday 00:00:00 and Sunday 23:59:59 bounding
// the week containing now, in now's location.
func WeekWindow(now time.Time) (start, end time.Time) {
	// time.Weekday counts Sunday as 0; shift so Monday is day 0.
	daysSinceMonday := (int(now.Weekday()) + 6) % 7
	year, month, day := now.AddDate(0, 0, -daysSinceMonday).Date()
	start = time.Date(year, month, day, 0, 0, 0, 0, now.Location())
	end = start.AddDate(0, 0, 6).Add(23*time.Hour + 59*time.Minute + 59*time.Second)
	return start, end
}

// Rank orders counts descending and assigns competition ranks: tied
// counts share a rank and the next distinct count's rank advances by
// the size of the tie. Equal counts keep their input order. A second
// pass annotates every row with the number of rows sharing its rank.
// An empty input yields an empty (non-nil) slice.
func Rank(counts []types.LoginCount) []Entry {
	ordered := make([]types.LoginCount, len(counts))
	copy(ordered, counts)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].LoginCount > ordered[j].LoginCount
	})
	if len(ordered) > Limit {
		ordered = ordered[:Limit]
	}

	entries := make([]Entry, 0, len(ordered))
	currentRank := 1
	sameRankCount := 0
	previousCount := -1
	for i, row := range ordered {
		if i == 0 || row.LoginCount != previousCount {
			currentRank += sameRankCount
			sameRankCount = 1
			previousCount = row.LoginCount
		} else {
			sameRankCount++
		}
		entries = append(entries, Entry{
			Username:   row.Username,
			LoginCount: row.LoginCount,
			Rank:       currentRank,
		})
	}

	shared := make(map[int]int, len(entries))
	for _, entry := range entries {
		shared[entry.Rank]++
	}
	for i := range entries {
		entries[i].SharedRankCount = shared[entries[i].Rank]
	}
	return entries
}
