package competitiontypes

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"
)

// UnmarshalJSON accepts numeric fields written as numbers or numeric strings.
// Weeks imported from older stores carry both. Anything unparseable
// decodes as zero so one bad entry never poisons a whole leaderboard.
func (e *ScoreEntry) UnmarshalJSON(data []byte) error {
	type plain ScoreEntry
	var raw struct {
		plain
		Score  json.RawMessage `json:"score"`
		Diff   json.RawMessage `json:"diff"`
		Points json.RawMessage `json:"points"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*e = ScoreEntry(raw.plain)
	e.Score = lenientInt(raw.Score)
	e.Diff = lenientInt(raw.Diff)
	e.Points = int(lenientInt(raw.Points))
	return nil
}

func lenientInt(raw json.RawMessage) int64 {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return 0
	}

	var s string
	if raw[0] == '"' {
		if err := json.Unmarshal(raw, &s); err != nil {
			return 0
		}
		s = strings.ReplaceAll(strings.TrimSpace(s), ",", "")
	} else {
		s = string(raw)
	}

	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		return n
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return int64(f)
	}
	return 0
}
