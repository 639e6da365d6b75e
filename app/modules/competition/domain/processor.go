package competitiondomain

import (
	"fmt"
	"slices"
	"strings"
	"time"

	competitiontypes "github.com/Black-And-White-Club/pinball-bot/pkg/types/competition"
)

// PostedAtLayout formats ScoreEntry.PostedAt.
const PostedAtLayout = "01/02/2006 15:04:05"

// ScoreResult is the outcome of processing one submission.
type ScoreResult struct {
	Leaderboard   competitiontypes.Leaderboard
	Username      string
	Score         int64
	PreviousScore int64
	ScoreDiff     int64
	RankChange    int
	Rank          int
	CurrentRank   string
	Mode          string
	NewEntry      bool
}

// NormalizeUsername trims trailing whitespace and strips backticks, falling
// back to the user id when nothing is left.
func NormalizeUsername(identity competitiontypes.Identity) string {
	name := strings.ReplaceAll(strings.TrimRight(identity.Username, " \t\r\n"), "`", "")
	if name == "" {
		return identity.UserID
	}
	return name
}

// ProcessScore applies a validated score to the week's leaderboard and returns
// the re-sorted, re-pointed result. week.Scores is never modified.
func ProcessScore(identity competitiontypes.Identity, score int64, week *competitiontypes.Week, now time.Time) ScoreResult {
	if week == nil {
		panic("competition: ProcessScore called without a week")
	}

	username := NormalizeUsername(identity)
	mode := week.Mode
	if mode == "" {
		mode = competitiontypes.DefaultMode
	}
	postedAt := now.Format(PostedAtLayout)

	previous := week.Scores.Clone()
	scores := week.Scores.Clone()

	var previousScore int64
	idx := scores.IndexOf(username)
	if idx >= 0 {
		entry := &scores[idx]
		previousScore = entry.Score
		entry.Score = score
		entry.Diff = score - previousScore
		entry.Mode = mode
		entry.PostedAt = postedAt
		if identity.AvatarRef != "" {
			entry.AvatarRef = identity.AvatarRef
		}
	} else {
		scores = append(scores, competitiontypes.ScoreEntry{
			UserID:    identity.UserID,
			Username:  username,
			Score:     score,
			Diff:      score,
			Mode:      mode,
			PostedAt:  postedAt,
			AvatarRef: identity.AvatarRef,
		})
	}

	SortLeaderboard(scores)
	AssignPoints(scores)

	newIndex := scores.IndexOf(username)
	return ScoreResult{
		Leaderboard:   scores,
		Username:      username,
		Score:         score,
		PreviousScore: previousScore,
		ScoreDiff:     score - previousScore,
		RankChange:    RankChange(username, previous, scores),
		Rank:          newIndex + 1,
		CurrentRank:   RankText(newIndex+1, len(scores)),
		Mode:          mode,
		NewEntry:      idx < 0,
	}
}

// SortLeaderboard orders entries by score descending, keeping the relative
// order of equal scores.
func SortLeaderboard(lb competitiontypes.Leaderboard) {
	slices.SortStableFunc(lb, func(a, b competitiontypes.ScoreEntry) int {
		switch {
		case a.Score > b.Score:
			return -1
		case a.Score < b.Score:
			return 1
		default:
			return 0
		}
	})
}

// RankChange is positive when username moved toward first place. A player
// absent from before is credited with the positions between them and last.
func RankChange(username string, before, after competitiontypes.Leaderboard) int {
	newIndex := after.IndexOf(username)
	prevIndex := before.IndexOf(username)
	if prevIndex < 0 {
		return len(after) - newIndex
	}
	return prevIndex - newIndex
}

// RankText renders a 1-based rank such as "3 of 15".
func RankText(rank, total int) string {
	return fmt.Sprintf("%d of %d", rank, total)
}
