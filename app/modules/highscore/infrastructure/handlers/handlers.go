package highscorehandlers

import (
	"context"
	"log/slog"

	highscoreservice "github.com/Black-And-White-Club/pinball-bot/app/modules/highscore/application"
	highscoredomain "github.com/Black-And-White-Club/pinball-bot/app/modules/highscore/domain"
	highscoreevents "github.com/Black-And-White-Club/pinball-bot/pkg/events/highscore"
	"github.com/Black-And-White-Club/pinball-bot/pkg/handlerwrapper"
	"github.com/Black-And-White-Club/pinball-bot/pkg/observability/attr"
	"go.opentelemetry.io/otel/trace"
)

// Handlers defines the interface for high score event handlers.
type Handlers interface {
	HandlePostRequested(ctx context.Context, payload *highscoreevents.PostRequestedPayloadV1) ([]handlerwrapper.Result, error)
	HandleSelectionSubmitted(ctx context.Context, payload *highscoreevents.SelectionSubmittedPayloadV1) ([]handlerwrapper.Result, error)
	HandleRemoveRequested(ctx context.Context, payload *highscoreevents.RemoveRequestedPayloadV1) ([]handlerwrapper.Result, error)
	HandleTableEnsureRequested(ctx context.Context, payload *highscoreevents.TableEnsureRequestedPayloadV1) ([]handlerwrapper.Result, error)
}

// HighScoreHandlers implements the Handlers interface.
type HighScoreHandlers struct {
	service highscoreservice.Service
	logger  *slog.Logger
	tracer  trace.Tracer
}

// NewHighScoreHandlers creates a new HighScoreHandlers instance.
func NewHighScoreHandlers(service highscoreservice.Service, logger *slog.Logger, tracer trace.Tracer) Handlers {
	return &HighScoreHandlers{
		service: service,
		logger:  logger,
		tracer:  tracer,
	}
}

// HandlePostRequested offers the tables a high score can be posted to.
func (h *HighScoreHandlers) HandlePostRequested(ctx context.Context, payload *highscoreevents.PostRequestedPayloadV1) ([]handlerwrapper.Result, error) {
	ctx, span := h.tracer.Start(ctx, "HighScoreHandlers.HandlePostRequested")
	defer span.End()

	h.logger.InfoContext(ctx, "High score post requested",
		attr.ExtractCorrelationID(ctx),
		attr.String("username", payload.Username),
		attr.String("search_term", payload.SearchTerm),
	)

	result, err := h.service.RequestHighScorePost(ctx, highscoreservice.PostRequest{
		UserID:        payload.UserID,
		Username:      payload.Username,
		RawScore:      payload.Score,
		SearchTerm:    payload.SearchTerm,
		AttachmentURL: payload.AttachmentURL,
	})
	if err != nil {
		return nil, err
	}
	if result.IsFailure() {
		return failed(highscoreevents.PostFailedV1, payload.UserID, *result.Failure), nil
	}

	found := *result.Success
	candidates := make([]highscoreevents.Candidate, 0, len(found.Tables))
	for _, t := range found.Tables {
		candidates = append(candidates, highscoreevents.Candidate{
			Label:         highscoredomain.CandidateLabel(t),
			VPSID:         t.VPSID,
			VersionNumber: t.VersionNumber,
			Score:         found.Score,
		})
	}
	return []handlerwrapper.Result{{
		Topic: highscoreevents.CandidatesFoundV1,
		Payload: &highscoreevents.CandidatesFoundPayloadV1{
			UserID:     payload.UserID,
			SearchTerm: payload.SearchTerm,
			Candidates: candidates,
		},
	}}, nil
}

// HandleSelectionSubmitted records the score on the chosen table.
func (h *HighScoreHandlers) HandleSelectionSubmitted(ctx context.Context, payload *highscoreevents.SelectionSubmittedPayloadV1) ([]handlerwrapper.Result, error) {
	ctx, span := h.tracer.Start(ctx, "HighScoreHandlers.HandleSelectionSubmitted")
	defer span.End()

	result, err := h.service.SubmitHighScoreSelection(ctx, highscoreservice.SelectionRequest{
		UserID:        payload.UserID,
		Username:      payload.Username,
		VPSID:         payload.VPSID,
		VersionNumber: payload.VersionNumber,
		Score:         payload.Score,
	})
	if err != nil {
		return nil, err
	}
	if result.IsFailure() {
		return failed(highscoreevents.PostFailedV1, payload.UserID, *result.Failure), nil
	}

	posted := *result.Success
	return []handlerwrapper.Result{{
		Topic: highscoreevents.PostedV1,
		Payload: &highscoreevents.PostedPayloadV1{
			Table:     posted.Table,
			Score:     posted.Score,
			TopScores: posted.TopScores,
			Announce:  true,
			NewTop:    posted.NewTop,
		},
	}}, nil
}

// HandleRemoveRequested deletes a score from a table.
func (h *HighScoreHandlers) HandleRemoveRequested(ctx context.Context, payload *highscoreevents.RemoveRequestedPayloadV1) ([]handlerwrapper.Result, error) {
	ctx, span := h.tracer.Start(ctx, "HighScoreHandlers.HandleRemoveRequested")
	defer span.End()

	result, err := h.service.RemoveHighScore(ctx, payload.VPSID, payload.Username, payload.Score)
	if err != nil {
		return nil, err
	}
	if result.IsFailure() {
		return failed(highscoreevents.RemoveFailedV1, "", *result.Failure), nil
	}

	removed := *result.Success
	return []handlerwrapper.Result{{
		Topic: highscoreevents.RemovedV1,
		Payload: &highscoreevents.RemovedPayloadV1{
			VPSID:    removed.VPSID,
			Username: removed.Username,
			Score:    removed.Score,
			Removed:  removed.Removed,
		},
	}}, nil
}

// HandleTableEnsureRequested registers a table version by hand.
func (h *HighScoreHandlers) HandleTableEnsureRequested(ctx context.Context, payload *highscoreevents.TableEnsureRequestedPayloadV1) ([]handlerwrapper.Result, error) {
	ctx, span := h.tracer.Start(ctx, "HighScoreHandlers.HandleTableEnsureRequested")
	defer span.End()

	result, err := h.service.EnsureTable(ctx, payload.Table)
	if err != nil {
		return nil, err
	}
	if result.IsFailure() {
		return failed(highscoreevents.TableEnsureFailedV1, "", *result.Failure), nil
	}

	ensured := *result.Success
	return []handlerwrapper.Result{{
		Topic: highscoreevents.TableEnsuredV1,
		Payload: &highscoreevents.TableEnsuredPayloadV1{
			Table:   ensured.Table,
			Outcome: string(ensured.Outcome),
		},
	}}, nil
}

func failed(topic, userID string, err error) []handlerwrapper.Result {
	return []handlerwrapper.Result{{
		Topic: topic,
		Payload: &highscoreevents.FailedPayloadV1{
			UserID: userID,
			Reason: err.Error(),
		},
	}}
}
