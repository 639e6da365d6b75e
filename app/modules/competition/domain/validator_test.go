package competitiondomain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateScore(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    int64
		wantErr bool
	}{
		{name: "zero rejected", raw: "0", wantErr: true},
		{name: "minimum", raw: "1", want: 1},
		{name: "maximum", raw: "999999999999999", want: MaxScore},
		{name: "one past maximum", raw: "1000000000000000", wantErr: true},
		{name: "thousands separators", raw: "12,345", want: 12345},
		{name: "surrounding whitespace", raw: "  50000 ", want: 50000},
		{name: "leading zero", raw: "0123", wantErr: true},
		{name: "negative", raw: "-5", wantErr: true},
		{name: "decimal", raw: "12.5", wantErr: true},
		{name: "letters", raw: "12k", wantErr: true},
		{name: "empty", raw: "", wantErr: true},
		{name: "only commas", raw: ",,,", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ValidateScore(tt.raw)
			if tt.wantErr {
				require.Error(t, err)
				var vErr *ValidationError
				require.ErrorAs(t, err, &vErr)
				assert.Equal(t, tt.raw, vErr.Input)
				assert.Equal(t, InvalidScoreMessage, err.Error())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
