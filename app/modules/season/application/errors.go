package seasonservice

import "errors"

var (
	ErrChannelRequired     = errors.New("channel name is required")
	ErrNoActiveSeason      = errors.New("no active season")
	ErrSeasonNotFound      = errors.New("season not found")
	ErrNoFieldsToUpdate    = errors.New("no fields to update")
	ErrInvalidSeasonNumber = errors.New("season number must be positive")
	ErrInvalidSeasonRange  = errors.New("season end is before season start")
)
