package domain

import (
	"strconv"
	"strings"
)

// ChallengeID is the sequence number of one challenge iteration.
type ChallengeID int

// RankHonorableMention marks winner entries beyond the top three. They keep
// their submission history but earn no medal.
const RankHonorableMention = -1

// RawDocument is one fetched challenge README, immutable once fetched.
type RawDocument struct {
	ID       ChallengeID
	Slug     string
	URL      string
	Markdown string
}

// WinnerEntry is one parsed bullet from a document's winners section.
// Co-winners stay in a single entry sharing one rank and one submission
// link; they fan out into separate submission rows during aggregation.
type WinnerEntry struct {
	Usernames      []string
	SubmissionLink string
	Comment        string
	VideoLink      string
	ImageLink      string
	Rank           int
}

// ChallengeRecord is the structured form of one challenge document. Title
// and Summary are rendered HTML fragments and may be empty when the README
// does not follow the template.
type ChallengeRecord struct {
	ID      ChallengeID
	URL     string
	Title   string
	Summary string
	Winners []WinnerEntry
}

// SubmissionRecord is a denormalized join row: one per (user, entry)
// appearance across all challenges.
type SubmissionRecord struct {
	Username       string
	ChallengeID    ChallengeID
	Rank           int
	SubmissionLink string
}

// LeaderboardEntry is one user's aggregated standing.
type LeaderboardEntry struct {
	Username    string
	Submissions []SubmissionRecord
	Score       int
}

// ParseChallengeID pulls the sequence number out of a repository slug.
// Slugs look like "weekly-challenge-17-word-ladder"; the number is the
// third dash-separated token.
func ParseChallengeID(slug string) (ChallengeID, bool) {
	parts := strings.Split(slug, "-")
	if len(parts) < 3 {
		return 0, false
	}
	n, err := strconv.Atoi(parts[2])
	if err != nil {
		return 0, false
	}
	return ChallengeID(n), true
}
