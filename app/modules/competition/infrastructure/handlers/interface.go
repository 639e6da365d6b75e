package competitionhandlers

import (
	"context"

	competitionevents "github.com/Black-And-White-Club/pinball-bot/pkg/events/competition"
	"github.com/Black-And-White-Club/pinball-bot/pkg/handlerwrapper"
)

// Handlers defines the interface for competition event handlers.
type Handlers interface {
	HandleScorePostRequested(ctx context.Context, payload *competitionevents.ScorePostRequestedPayloadV1) ([]handlerwrapper.Result, error)
	HandleScoreEditRequested(ctx context.Context, payload *competitionevents.ScoreEditRequestedPayloadV1) ([]handlerwrapper.Result, error)
	HandleScoreRemoveRequested(ctx context.Context, payload *competitionevents.ScoreRemoveRequestedPayloadV1) ([]handlerwrapper.Result, error)
	HandleWeekCreateRequested(ctx context.Context, payload *competitionevents.WeekCreateRequestedPayloadV1) ([]handlerwrapper.Result, error)
	HandleWeekEditRequested(ctx context.Context, payload *competitionevents.WeekEditRequestedPayloadV1) ([]handlerwrapper.Result, error)
	HandleRaffleRequested(ctx context.Context, payload *competitionevents.RaffleRequestedPayloadV1) ([]handlerwrapper.Result, error)
}
