// Package extract holds the primitive text operations used to pull
// structured fragments out of challenge READMEs. Every function is total:
// a missing marker, mention, or link yields an empty result, never an error.
package extract

import (
	"regexp"
	"strings"
)

// assetPrefix is the external host serving submission screenshots and
// video recordings attached to winner bullets.
const assetPrefix = "https://github.com/user-attachments/assets/"

var (
	mentionExpr  = regexp.MustCompile(`@([^\s.,!?;:]+)`)
	assetExpr    = regexp.MustCompile(regexp.QuoteMeta(assetPrefix) + `[^\s)]*`)
	imageTagExpr = regexp.MustCompile(`!\[[^\]]*\]\((` + regexp.QuoteMeta(assetPrefix) + `[^\s)]*)\)`)
)

// Between returns the text strictly between the first occurrence of start
// and the first occurrence of end found after it. Returns "" when either
// marker is absent.
func Between(text, start, end string) string {
	i := strings.Index(text, start)
	if i == -1 {
		return ""
	}
	rest := text[i+len(start):]
	j := strings.Index(rest, end)
	if j == -1 {
		return ""
	}
	return rest[:j]
}

// Usernames returns every @handle mention in order of appearance. A handle
// is a maximal run of characters excluding whitespace and sentence
// terminators. A mention directly preceded by a slash is part of a profile
// URL, not a mention, and is skipped.
func Usernames(text string) []string {
	var handles []string
	for _, m := range mentionExpr.FindAllStringSubmatchIndex(text, -1) {
		if m[0] > 0 && text[m[0]-1] == '/' {
			continue
		}
		handles = append(handles, text[m[2]:m[3]])
	}
	return handles
}

// SubmissionLink returns the first issue-tracker link under repoURL,
// matched case-insensitively, or "" when the text has none.
func SubmissionLink(text, repoURL string) string {
	expr, err := regexp.Compile(`(?i)` + regexp.QuoteMeta(repoURL+"/issues/") + `\d+`)
	if err != nil {
		return ""
	}
	return expr.FindString(text)
}

// AssetLinks returns every bare URL under the external asset host, in order.
func AssetLinks(text string) []string {
	return assetExpr.FindAllString(text, -1)
}

// StripAssetLinks removes asset URLs, leaving the surrounding prose.
func StripAssetLinks(text string) string {
	return assetExpr.ReplaceAllString(text, "")
}

// ImageTags returns the URLs embedded in markdown image tags whose target
// lives under the external asset host.
func ImageTags(text string) []string {
	var urls []string
	for _, m := range imageTagExpr.FindAllStringSubmatch(text, -1) {
		urls = append(urls, m[1])
	}
	return urls
}

// StripImageTags removes those image tags entirely, alt text included.
func StripImageTags(text string) string {
	return imageTagExpr.ReplaceAllString(text, "")
}
