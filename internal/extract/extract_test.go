package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBetween(t *testing.T) {
	t.Parallel()

	text := "intro\n### Winner\n* @alice\n### Prizes\nstuff"

	assert.Equal(t, "\n* @alice\n", Between(text, "### Winner", "### Prizes"))
	assert.Equal(t, "", Between(text, "### Missing", "### Prizes"))
	assert.Equal(t, "", Between(text, "### Winner", "### Missing"))

	// The end marker must occur after the start marker.
	assert.Equal(t, "", Between("### Prizes then ### Winner", "### Winner", "### Prizes"))
}

func TestUsernames(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []string{"alice", "bob"}, Usernames("winner @alice, runner-up @bob!"))
	assert.Equal(t, []string{"carol"}, Usernames("@carol: great entry"))
	assert.Nil(t, Usernames("no mentions here"))
}

func TestUsernamesSkipsURLEmbeddedMentions(t *testing.T) {
	t.Parallel()

	text := "see https://social.example/@alice for @bob"
	assert.Equal(t, []string{"bob"}, Usernames(text))

	// A mention at the very start of the text still matches.
	assert.Equal(t, []string{"carol"}, Usernames("@carol"))
}

func TestSubmissionLink(t *testing.T) {
	t.Parallel()

	repo := "https://github.com/Algorithm-Arena/weekly-challenge-1-sorting"

	text := "entry at " + repo + "/issues/12 looks great"
	assert.Equal(t, repo+"/issues/12", SubmissionLink(text, repo))

	upper := "HTTPS://GITHUB.COM/ALGORITHM-ARENA/WEEKLY-CHALLENGE-1-SORTING/ISSUES/7"
	assert.Equal(t, upper, SubmissionLink("link "+upper, repo))

	assert.Equal(t, "", SubmissionLink("nothing relevant", repo))
	assert.Equal(t, "", SubmissionLink(repo+"/issues/abc", repo))
}

func TestAssetLinks(t *testing.T) {
	t.Parallel()

	text := "demo https://github.com/user-attachments/assets/abc-123 and prose"

	assert.Equal(t, []string{"https://github.com/user-attachments/assets/abc-123"}, AssetLinks(text))
	assert.Equal(t, "demo  and prose", StripAssetLinks(text))
	assert.Nil(t, AssetLinks("https://example.com/video.mp4"))
}

func TestImageTags(t *testing.T) {
	t.Parallel()

	text := "shot ![screenshot](https://github.com/user-attachments/assets/img-1) end"

	assert.Equal(t, []string{"https://github.com/user-attachments/assets/img-1"}, ImageTags(text))
	assert.Equal(t, "shot  end", StripImageTags(text))

	// Image tags pointing elsewhere are left alone.
	other := "![pic](https://example.com/pic.png)"
	assert.Nil(t, ImageTags(other))
	assert.Equal(t, other, StripImageTags(other))
}
