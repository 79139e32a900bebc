// Package leaderboard folds challenge records into per-user scores.
package leaderboard

import (
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/thomaswright/algorithm-arena/internal/domain"
)

// points is the score schedule: 3/2/1 for the podium, nothing for honorable
// mentions and any other rank.
func points(rank int) int {
	switch rank {
	case 0:
		return 3
	case 1:
		return 2
	case 2:
		return 1
	default:
		return 0
	}
}

// Board is the fully aggregated standing across all challenges. Entries is
// ordered by descending score, ties by ascending username under Unicode
// collation.
type Board struct {
	Entries []domain.LeaderboardEntry
}

// Aggregate fans every (record, entry, username) occurrence into one
// submission row, scores each user, and returns the sorted board. The same
// records always yield an identically ordered board.
func Aggregate(records []domain.ChallengeRecord) Board {
	submissions := map[string][]domain.SubmissionRecord{}
	var seen []string

	for _, rec := range records {
		for _, entry := range rec.Winners {
			for _, username := range entry.Usernames {
				if _, ok := submissions[username]; !ok {
					seen = append(seen, username)
				}
				submissions[username] = append(submissions[username], domain.SubmissionRecord{
					Username:       username,
					ChallengeID:    rec.ID,
					Rank:           entry.Rank,
					SubmissionLink: entry.SubmissionLink,
				})
			}
		}
	}

	entries := make([]domain.LeaderboardEntry, 0, len(seen))
	for _, username := range seen {
		subs := submissions[username]
		score := 0
		for _, sub := range subs {
			score += points(sub.Rank)
		}
		entries = append(entries, domain.LeaderboardEntry{
			Username:    username,
			Submissions: subs,
			Score:       score,
		})
	}

	// Collation rather than byte order keeps mixed-case handles in natural
	// lexical order. The stable sort plus first-seen iteration keeps the
	// result deterministic for a fixed input sequence.
	cl := collate.New(language.Und)
	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].Score != entries[j].Score {
			return entries[i].Score > entries[j].Score
		}
		return cl.CompareString(entries[i].Username, entries[j].Username) < 0
	})

	return Board{Entries: entries}
}

// Displayed returns the rows rendered on the leaderboard. Users whose score
// is zero keep their submission history in Entries but get no row here.
func (b Board) Displayed() []domain.LeaderboardEntry {
	displayed := make([]domain.LeaderboardEntry, 0, len(b.Entries))
	for _, entry := range b.Entries {
		if entry.Score == 0 {
			continue
		}
		displayed = append(displayed, entry)
	}
	return displayed
}
