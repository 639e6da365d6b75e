package competitionservice

import "errors"

var (
	// ErrNoActiveWeek means the channel has no open week. Handlers publish a
	// failure event rather than retrying.
	ErrNoActiveWeek = errors.New("no active week for this channel")

	ErrChannelRequired  = errors.New("channel name is required")
	ErrTableRequired    = errors.New("table is required")
	ErrNoFieldsToUpdate = errors.New("no fields to update")
	ErrUserNotFound     = errors.New("user has not posted a score this week")
	ErrMissingROMURL    = errors.New("missing rom url (set romRequired to false for tables without a rom)")
	ErrMissingROMName   = errors.New("missing rom version (set romRequired to false for tables without a rom)")
)
