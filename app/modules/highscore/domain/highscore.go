// Package highscoredomain holds the rules for all-time high score tables.
package highscoredomain

import (
	"fmt"
	"slices"
	"strings"

	highscoretypes "github.com/Black-And-White-Club/pinball-bot/pkg/types/highscore"
	"github.com/gosimple/slug"
)

// MaxSearchResults is the most tables a search may match before it is
// considered too broad to offer as choices.
const MaxSearchResults = 10

// DefaultScoresToShow caps how many scores a table listing includes.
const DefaultScoresToShow = 10

// SearchOutcome classifies a table search.
type SearchOutcome int

const (
	SearchNotFound SearchOutcome = iota
	SearchFound
	SearchTooBroad
)

// ClassifySearch decides what a search returning count tables means.
func ClassifySearch(count int) SearchOutcome {
	switch {
	case count == 0:
		return SearchNotFound
	case count > MaxSearchResults:
		return SearchTooBroad
	default:
		return SearchFound
	}
}

// TableSlug derives the stable key for a table name.
func TableSlug(tableName string) string {
	return slug.Make(tableName)
}

// FirstAuthor returns the first of a comma separated author list.
func FirstAuthor(authorName string) string {
	first, _, _ := strings.Cut(authorName, ", ")
	return strings.TrimSpace(first)
}

// CandidateLabel renders a table choice as "Name (FirstAuthor... v1.0)".
func CandidateLabel(t highscoretypes.Table) string {
	author := FirstAuthor(t.AuthorName)
	if author == "" {
		author = "Unknown Author"
	}
	return fmt.Sprintf("%s (%s... %s)", t.TableName, author, t.VersionNumber)
}

// SortScores orders scores best first, keeping earlier posts ahead on ties.
func SortScores(scores []highscoretypes.Score) {
	slices.SortStableFunc(scores, func(a, b highscoretypes.Score) int {
		switch {
		case a.Score > b.Score:
			return -1
		case a.Score < b.Score:
			return 1
		}
		return a.CreatedAt.Compare(b.CreatedAt)
	})
}

// TopScores returns at most n scores, best first. The input is not modified.
func TopScores(scores []highscoretypes.Score, n int) []highscoretypes.Score {
	out := slices.Clone(scores)
	SortScores(out)
	if n > 0 && len(out) > n {
		out = out[:n]
	}
	return out
}

// IsDuplicate reports whether username already holds exactly score.
func IsDuplicate(scores []highscoretypes.Score, username string, score int64) bool {
	return slices.ContainsFunc(scores, func(s highscoretypes.Score) bool {
		return s.Username == username && s.Score == score
	})
}

// ShouldCrossPost reports whether a weekly score is announced in the high
// score channel: when it ranks within cutoff or the player asked for it.
func ShouldCrossPost(rank, cutoff int, requested bool) bool {
	return requested || (rank >= 1 && rank <= cutoff)
}

// ParseTextCommand splits a "!high <score> <table search>" message.
func ParseTextCommand(content string) (rawScore, searchTerm string, ok bool) {
	fields := strings.Fields(content)
	if len(fields) < 3 || !strings.EqualFold(fields[0], "!high") {
		return "", "", false
	}
	return fields[1], strings.Join(fields[2:], " "), true
}
