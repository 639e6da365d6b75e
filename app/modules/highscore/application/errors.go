package highscoreservice

import "errors"

var (
	ErrVPSIDRequired      = errors.New("vps id is required")
	ErrTableNameRequired  = errors.New("table name is required")
	ErrUserRequired       = errors.New("user is required")
	ErrSearchTermRequired = errors.New("a vps id or search term is required")
	ErrNoTablesFound      = errors.New("no high score tables match that search")
	ErrSearchTooBroad     = errors.New("too many tables match that search, try something more specific")
	ErrTableNotFound      = errors.New("high score table not found")
	ErrScoreNotFound      = errors.New("no matching high score to remove")
)
