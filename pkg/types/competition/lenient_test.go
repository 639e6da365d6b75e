package competitiontypes

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScoreEntryUnmarshalLenient(t *testing.T) {
	tests := []struct {
		name       string
		in         string
		wantScore  int64
		wantPoints int
	}{
		{"numbers", `{"username":"amy","score":70000,"points":12}`, 70000, 12},
		{"numeric strings", `{"username":"amy","score":"70,000","points":"12"}`, 70000, 12},
		{"float", `{"username":"amy","score":70000.0,"points":12}`, 70000, 12},
		{"garbage", `{"username":"amy","score":"lots","points":{}}`, 0, 0},
		{"missing", `{"username":"amy"}`, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var e ScoreEntry
			require.NoError(t, json.Unmarshal([]byte(tt.in), &e))
			assert.Equal(t, "amy", e.Username)
			assert.Equal(t, tt.wantScore, e.Score)
			assert.Equal(t, tt.wantPoints, e.Points)
		})
	}
}

func TestScoreEntryRoundTrip(t *testing.T) {
	in := ScoreEntry{UserID: "1", Username: "Bob", Score: 80000, Diff: 30000, Mode: DefaultMode, Points: 12, PostedAt: "01/02/2026 10:00:00"}
	data, err := json.Marshal(in)
	require.NoError(t, err)

	var out ScoreEntry
	require.NoError(t, json.Unmarshal(data, &out))
	assert.Equal(t, in, out)
}
