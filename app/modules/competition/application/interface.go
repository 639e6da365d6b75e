package competitionservice

import (
	"context"

	competitiondomain "github.com/Black-And-White-Club/pinball-bot/app/modules/competition/domain"
	"github.com/Black-And-White-Club/pinball-bot/pkg/results"
	competitiontypes "github.com/Black-And-White-Club/pinball-bot/pkg/types/competition"
)

// WeekResult is the outcome of operations returning a single week.
type WeekResult = results.OperationResult[*competitiontypes.Week, error]

// ScorePosted is an accepted score and the week it was applied to.
type ScorePosted struct {
	Week *competitiontypes.Week
	competitiondomain.ScoreResult
}

// ScoreResult is the outcome of PostScore and EditScore.
type ScoreResult = results.OperationResult[*ScorePosted, error]

// ScoreRemoved is an entry taken off a leaderboard.
type ScoreRemoved struct {
	Week    *competitiontypes.Week
	Removed competitiontypes.ScoreEntry
}

// RemoveScoreResult is the outcome of RemoveScore.
type RemoveScoreResult = results.OperationResult[*ScoreRemoved, error]

// WeekCreated is a new week and the week it replaced, if any.
type WeekCreated struct {
	Week   *competitiontypes.Week
	Closed *competitiontypes.Week
}

// CreateWeekResult is the outcome of CreateWeek.
type CreateWeekResult = results.OperationResult[*WeekCreated, error]

// UserScore is a player's entry and rank in the current week.
type UserScore struct {
	Entry    competitiontypes.ScoreEntry
	Rank     int
	RankText string
}

// UserScoreResult is the outcome of GetUserScore.
type UserScoreResult = results.OperationResult[*UserScore, error]

// RaffleDraw is the winner of a weekly raffle.
type RaffleDraw struct {
	Week         *competitiontypes.Week
	Winner       competitiontypes.ScoreEntry
	Participants int
}

// RaffleResult is the outcome of RunRaffle.
type RaffleResult = results.OperationResult[*RaffleDraw, error]

// PostScoreRequest is a player's weekly score submission.
type PostScoreRequest struct {
	ChannelName      string
	User             competitiontypes.Identity
	RawScore         string
	PostToHighScores bool
	AttachmentURL    string
}

// CreateWeekRequest opens a new week. Empty period fields continue from the
// previous week.
type CreateWeekRequest struct {
	ChannelName   string
	Table         string
	AuthorName    string
	VersionNumber string
	VPSID         string
	Mode          string
	TableURL      string
	ROMURL        string
	ROMName       string
	B2SURL        string
	Notes         string
	PeriodStart   string
	PeriodEnd     string
	// ROMRequired defaults to true. When false the ROM fields are stored as "N/A".
	ROMRequired *bool
}

// WeekUpdate lists the fields to change on the current week.
type WeekUpdate struct {
	WeekNumber    *int
	PeriodStart   *string
	PeriodEnd     *string
	Table         *string
	AuthorName    *string
	VersionNumber *string
	VPSID         *string
	Mode          *string
	TableURL      *string
	ROMURL        *string
	ROMName       *string
	B2SURL        *string
	Notes         *string
}

// Service defines the weekly competition operations.
type Service interface {
	PostScore(ctx context.Context, req PostScoreRequest) (ScoreResult, error)
	EditScore(ctx context.Context, channel, username, rawScore string) (ScoreResult, error)
	RemoveScore(ctx context.Context, channel string, rank int) (RemoveScoreResult, error)
	CreateWeek(ctx context.Context, req CreateWeekRequest) (CreateWeekResult, error)
	EditCurrentWeek(ctx context.Context, channel string, update WeekUpdate) (WeekResult, error)
	GetCurrentWeek(ctx context.Context, channel string) (WeekResult, error)
	GetUserScore(ctx context.Context, channel, username string) (UserScoreResult, error)
	RunRaffle(ctx context.Context, channel string) (RaffleResult, error)
}
