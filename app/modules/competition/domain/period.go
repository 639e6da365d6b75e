package competitiondomain

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/olebedev/when"
	"github.com/olebedev/when/rules/common"
	"github.com/olebedev/when/rules/en"
)

// DateLayout is the storage format of week and season dates.
const DateLayout = "2006-01-02"

// WeekLength is the time between consecutive week starts.
const WeekLength = 7 * 24 * time.Hour

// ErrInvalidDate is returned for a date override that cannot be understood.
var ErrInvalidDate = errors.New("invalid date")

var dateParser = func() *when.Parser {
	w := when.New(nil)
	w.Add(en.All...)
	w.Add(common.All...)
	return w
}()

// ParseDate accepts YYYY-MM-DD or natural language such as "tomorrow",
// resolved against base, and returns YYYY-MM-DD.
func ParseDate(input string, base time.Time) (string, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return "", fmt.Errorf("%w: empty", ErrInvalidDate)
	}
	if t, err := time.Parse(DateLayout, input); err == nil {
		return t.Format(DateLayout), nil
	}

	r, err := dateParser.Parse(strings.ToLower(input), base)
	if err != nil {
		return "", fmt.Errorf("%w: %q: %v", ErrInvalidDate, input, err)
	}
	if r == nil {
		return "", fmt.Errorf("%w: %q", ErrInvalidDate, input)
	}
	return r.Time.Format(DateLayout), nil
}

// ShiftDate moves a YYYY-MM-DD date by d.
func ShiftDate(date string, d time.Duration) (string, error) {
	t, err := time.Parse(DateLayout, date)
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrInvalidDate, date)
	}
	return t.Add(d).Format(DateLayout), nil
}

// NextPeriod is the period one week after the given one.
func NextPeriod(start, end string) (string, string, error) {
	nextStart, err := ShiftDate(start, WeekLength)
	if err != nil {
		return "", "", err
	}
	nextEnd, err := ShiftDate(end, WeekLength)
	if err != nil {
		return "", "", err
	}
	return nextStart, nextEnd, nil
}
