package competitionhandlers

import (
	"context"

	competitionservice "github.com/Black-And-White-Club/pinball-bot/app/modules/competition/application"
	competitionevents "github.com/Black-And-White-Club/pinball-bot/pkg/events/competition"
	"github.com/Black-And-White-Club/pinball-bot/pkg/handlerwrapper"
	"github.com/Black-And-White-Club/pinball-bot/pkg/observability/attr"
)

// HandleScorePostRequested applies a player's weekly score submission.
func (h *CompetitionHandlers) HandleScorePostRequested(ctx context.Context, payload *competitionevents.ScorePostRequestedPayloadV1) ([]handlerwrapper.Result, error) {
	ctx, span := h.tracer.Start(ctx, "CompetitionHandlers.HandleScorePostRequested")
	defer span.End()

	h.logger.InfoContext(ctx, "Score post requested",
		attr.ExtractCorrelationID(ctx),
		attr.Channel(payload.ChannelName),
		attr.String("username", payload.User.Username),
	)

	result, err := h.service.PostScore(ctx, competitionservice.PostScoreRequest{
		ChannelName:      payload.ChannelName,
		User:             payload.User,
		RawScore:         payload.Score,
		PostToHighScores: payload.PostToHighScores,
		AttachmentURL:    payload.AttachmentURL,
	})
	if err != nil {
		return nil, err
	}
	if result.IsFailure() {
		return scoreFailed(competitionevents.ScorePostFailedV1, payload.ChannelName, payload.User.Username, *result.Failure), nil
	}

	return scorePostedResults(competitionevents.ScorePostedV1, *result.Success), nil
}

// HandleScoreEditRequested sets a player's score on an admin's behalf.
func (h *CompetitionHandlers) HandleScoreEditRequested(ctx context.Context, payload *competitionevents.ScoreEditRequestedPayloadV1) ([]handlerwrapper.Result, error) {
	ctx, span := h.tracer.Start(ctx, "CompetitionHandlers.HandleScoreEditRequested")
	defer span.End()

	result, err := h.service.EditScore(ctx, payload.ChannelName, payload.Username, payload.Score)
	if err != nil {
		return nil, err
	}
	if result.IsFailure() {
		return scoreFailed(competitionevents.ScoreEditFailedV1, payload.ChannelName, payload.Username, *result.Failure), nil
	}

	return scorePostedResults(competitionevents.ScoreEditedV1, *result.Success), nil
}

// HandleScoreRemoveRequested removes the entry at a rank.
func (h *CompetitionHandlers) HandleScoreRemoveRequested(ctx context.Context, payload *competitionevents.ScoreRemoveRequestedPayloadV1) ([]handlerwrapper.Result, error) {
	ctx, span := h.tracer.Start(ctx, "CompetitionHandlers.HandleScoreRemoveRequested")
	defer span.End()

	result, err := h.service.RemoveScore(ctx, payload.ChannelName, payload.Rank)
	if err != nil {
		return nil, err
	}
	if result.IsFailure() {
		return scoreFailed(competitionevents.ScoreRemoveFailedV1, payload.ChannelName, "", *result.Failure), nil
	}

	removed := *result.Success
	h.logger.InfoContext(ctx, "Score removed",
		attr.ExtractCorrelationID(ctx),
		attr.Channel(payload.ChannelName),
		attr.String("username", removed.Removed.Username),
		attr.Int("rank", payload.Rank),
	)

	return []handlerwrapper.Result{
		{
			Topic: competitionevents.ScoreRemovedV1,
			Payload: &competitionevents.ScoreRemovedPayloadV1{
				ChannelName: payload.ChannelName,
				Removed:     removed.Removed,
				Leaderboard: removed.Week.Scores,
			},
		},
		leaderboardUpdated(removed.Week),
	}, nil
}

func scorePostedResults(topic string, posted *competitionservice.ScorePosted) []handlerwrapper.Result {
	entry, _ := posted.Leaderboard.Lookup(posted.Username)
	return []handlerwrapper.Result{
		{
			Topic: topic,
			Payload: &competitionevents.ScorePostedPayloadV1{
				ChannelName:   posted.Week.ChannelName,
				WeekNumber:    posted.Week.WeekNumber,
				Table:         posted.Week.Table,
				Username:      posted.Username,
				UserID:        entry.UserID,
				Score:         posted.Score,
				PreviousScore: posted.PreviousScore,
				ScoreDiff:     posted.ScoreDiff,
				RankChange:    posted.RankChange,
				CurrentRank:   posted.CurrentRank,
				Mode:          posted.Mode,
				Leaderboard:   posted.Leaderboard,
			},
		},
		leaderboardUpdated(posted.Week),
	}
}
