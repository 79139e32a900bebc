// Package winners parses the winners section of a challenge README into
// ordered winner entries.
package winners

import (
	"strings"

	"github.com/thomaswright/algorithm-arena/internal/domain"
	"github.com/thomaswright/algorithm-arena/internal/extract"
)

// topPlaces is how many surviving entries receive a numeric rank; the rest
// are honorable mentions.
const topPlaces = 3

// Parse splits a winners section on bullet delimiters and builds one entry
// per bullet that mentions at least one user. Bullets without a mention are
// dropped. Ranks follow the order of surviving entries: 0, 1, 2, then the
// honorable-mention sentinel. A bullet naming several users stays a single
// entry sharing one rank and one submission link.
func Parse(section, repoURL string) []domain.WinnerEntry {
	var entries []domain.WinnerEntry
	for _, bullet := range strings.Split(section, "*") {
		usernames := extract.Usernames(bullet)
		if len(usernames) == 0 {
			continue
		}

		entry := domain.WinnerEntry{
			Usernames:      usernames,
			SubmissionLink: extract.SubmissionLink(bullet, repoURL),
		}

		// Image tags come out first so their URLs are not mistaken for
		// video links; the first bare asset link left afterwards is the
		// video. The residue is the author's comment.
		rest := bullet
		if images := extract.ImageTags(rest); len(images) > 0 {
			entry.ImageLink = images[0]
		}
		rest = extract.StripImageTags(rest)
		if links := extract.AssetLinks(rest); len(links) > 0 {
			entry.VideoLink = links[0]
		}
		rest = extract.StripAssetLinks(rest)
		entry.Comment = strings.TrimSpace(rest)

		entry.Rank = len(entries)
		if entry.Rank >= topPlaces {
			entry.Rank = domain.RankHonorableMention
		}
		entries = append(entries, entry)
	}
	return entries
}
