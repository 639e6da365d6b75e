package playoffservice

import "errors"

var (
	ErrChannelRequired = errors.New("channel name is required")
	ErrNoActivePlayoff = errors.New("no active playoff for this channel")
	ErrNoActiveRound   = errors.New("no active playoff round for this channel")
	ErrEmptySeed       = errors.New("seed usernames must not be empty")
	ErrDuplicateSeed   = errors.New("a player may only hold one seed")
	// ErrInvalidRound covers empty, odd-length and self-repeating game lists.
	ErrInvalidRound = errors.New("a round needs a non-empty, even list of distinct seeds")
	ErrUnknownSeed  = errors.New("round references a seed that is not in the bracket")
)
