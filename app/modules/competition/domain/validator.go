package competitiondomain

import (
	"regexp"
	"strconv"
	"strings"
)

// InvalidScoreMessage is shown to players verbatim.
const InvalidScoreMessage = "The score needs to be a number between 1 and 999999999999999."

// MaxScore is the largest score accepted.
const MaxScore int64 = 999_999_999_999_999

var scorePattern = regexp.MustCompile(`^[1-9][0-9]{0,14}$`)

// ValidationError reports a rejected score submission.
type ValidationError struct {
	Input string
}

func (e *ValidationError) Error() string { return InvalidScoreMessage }

// ValidateScore normalizes a raw score such as "12,345" into its integer value.
func ValidateScore(raw string) (int64, error) {
	normalized := strings.ReplaceAll(strings.TrimSpace(raw), ",", "")
	if !scorePattern.MatchString(normalized) {
		return 0, &ValidationError{Input: raw}
	}

	score, err := strconv.ParseInt(normalized, 10, 64)
	if err != nil {
		return 0, &ValidationError{Input: raw}
	}
	return score, nil
}
