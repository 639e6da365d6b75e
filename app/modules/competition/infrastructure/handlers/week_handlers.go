package competitionhandlers

import (
	"context"

	competitionservice "github.com/Black-And-White-Club/pinball-bot/app/modules/competition/application"
	competitionevents "github.com/Black-And-White-Club/pinball-bot/pkg/events/competition"
	"github.com/Black-And-White-Club/pinball-bot/pkg/handlerwrapper"
	"github.com/Black-And-White-Club/pinball-bot/pkg/observability/attr"
)

// HandleWeekCreateRequested closes the current week and opens the next.
func (h *CompetitionHandlers) HandleWeekCreateRequested(ctx context.Context, payload *competitionevents.WeekCreateRequestedPayloadV1) ([]handlerwrapper.Result, error) {
	ctx, span := h.tracer.Start(ctx, "CompetitionHandlers.HandleWeekCreateRequested")
	defer span.End()

	h.logger.InfoContext(ctx, "Week creation requested",
		attr.ExtractCorrelationID(ctx),
		attr.Channel(payload.ChannelName),
		attr.String("table", payload.Table),
	)

	result, err := h.service.CreateWeek(ctx, competitionservice.CreateWeekRequest{
		ChannelName:   payload.ChannelName,
		Table:         payload.Table,
		AuthorName:    payload.AuthorName,
		VersionNumber: payload.VersionNumber,
		VPSID:         payload.VPSID,
		Mode:          payload.Mode,
		TableURL:      payload.TableURL,
		ROMURL:        payload.ROMURL,
		ROMName:       payload.ROMName,
		B2SURL:        payload.B2SURL,
		Notes:         payload.Notes,
		PeriodStart:   payload.PeriodStart,
		PeriodEnd:     payload.PeriodEnd,
		ROMRequired:   payload.ROMRequired,
	})
	if err != nil {
		return nil, err
	}
	if result.IsFailure() {
		return weekFailed(competitionevents.WeekCreateFailedV1, payload.ChannelName, *result.Failure), nil
	}

	created := *result.Success
	return []handlerwrapper.Result{
		{
			Topic: competitionevents.WeekCreatedV1,
			Payload: &competitionevents.WeekCreatedPayloadV1{
				Week:       *created.Week,
				ClosedWeek: created.Closed,
			},
		},
		leaderboardUpdated(created.Week),
	}, nil
}

// HandleWeekEditRequested changes fields of the current week.
func (h *CompetitionHandlers) HandleWeekEditRequested(ctx context.Context, payload *competitionevents.WeekEditRequestedPayloadV1) ([]handlerwrapper.Result, error) {
	ctx, span := h.tracer.Start(ctx, "CompetitionHandlers.HandleWeekEditRequested")
	defer span.End()

	result, err := h.service.EditCurrentWeek(ctx, payload.ChannelName, competitionservice.WeekUpdate{
		WeekNumber:    payload.WeekNumber,
		PeriodStart:   payload.PeriodStart,
		PeriodEnd:     payload.PeriodEnd,
		Table:         payload.Table,
		AuthorName:    payload.AuthorName,
		VersionNumber: payload.VersionNumber,
		VPSID:         payload.VPSID,
		Mode:          payload.Mode,
		TableURL:      payload.TableURL,
		ROMURL:        payload.ROMURL,
		ROMName:       payload.ROMName,
		B2SURL:        payload.B2SURL,
		Notes:         payload.Notes,
	})
	if err != nil {
		return nil, err
	}
	if result.IsFailure() {
		return weekFailed(competitionevents.WeekEditFailedV1, payload.ChannelName, *result.Failure), nil
	}

	return []handlerwrapper.Result{{
		Topic:   competitionevents.WeekEditedV1,
		Payload: &competitionevents.WeekEditedPayloadV1{Week: **result.Success},
	}}, nil
}

// HandleRaffleRequested draws a raffle winner among this week's players.
func (h *CompetitionHandlers) HandleRaffleRequested(ctx context.Context, payload *competitionevents.RaffleRequestedPayloadV1) ([]handlerwrapper.Result, error) {
	ctx, span := h.tracer.Start(ctx, "CompetitionHandlers.HandleRaffleRequested")
	defer span.End()

	result, err := h.service.RunRaffle(ctx, payload.ChannelName)
	if err != nil {
		return nil, err
	}
	if result.IsFailure() {
		return []handlerwrapper.Result{{
			Topic: competitionevents.RaffleFailedV1,
			Payload: &competitionevents.RaffleFailedPayloadV1{
				ChannelName: payload.ChannelName,
				Reason:      (*result.Failure).Error(),
			},
		}}, nil
	}

	draw := *result.Success
	return []handlerwrapper.Result{{
		Topic: competitionevents.RaffleDrawnV1,
		Payload: &competitionevents.RaffleDrawnPayloadV1{
			ChannelName:  payload.ChannelName,
			WeekNumber:   draw.Week.WeekNumber,
			Winner:       draw.Winner.Username,
			Participants: draw.Participants,
		},
	}}, nil
}
