package highscoreservice

import (
	"context"
	"errors"
	"strconv"
	"strings"

	competitiondomain "github.com/Black-And-White-Club/pinball-bot/app/modules/competition/domain"
	highscoredomain "github.com/Black-And-White-Club/pinball-bot/app/modules/highscore/domain"
	highscoredb "github.com/Black-And-White-Club/pinball-bot/app/modules/highscore/infrastructure/repositories"
	"github.com/Black-And-White-Club/pinball-bot/pkg/observability/attr"
	"github.com/Black-And-White-Club/pinball-bot/pkg/results"
	competitiontypes "github.com/Black-And-White-Club/pinball-bot/pkg/types/competition"
	"github.com/uptrace/bun"
)

// pendingKey identifies whose attachment is waiting. Gateways without user
// ids fall back to the username.
func pendingKey(userID, username string) string {
	if userID != "" {
		return userID
	}
	return "name:" + strings.ToLower(username)
}

// RequestHighScorePost validates the score and finds the tables it may be
// posted to. Any attachment is held until the user picks one.
func (s *HighScoreService) RequestHighScorePost(ctx context.Context, req PostRequest) (CandidatesResult, error) {
	return withTelemetry(s, ctx, "RequestHighScorePost", req.Username, func(ctx context.Context) (CandidatesResult, error) {
		fail := func(err error) (CandidatesResult, error) {
			return results.FailureResult[*PostCandidates, error](err), nil
		}

		if req.UserID == "" && req.Username == "" {
			return fail(ErrUserRequired)
		}
		score, err := competitiondomain.ValidateScore(req.RawScore)
		if err != nil {
			return fail(err)
		}

		found, err := s.searchTables(ctx, nil, req.SearchTerm)
		if err != nil {
			if isBusinessError(err) {
				return fail(err)
			}
			return CandidatesResult{}, err
		}

		if req.AttachmentURL != "" {
			s.pending.Put(pendingKey(req.UserID, req.Username), req.AttachmentURL)
		}

		candidates := &PostCandidates{Score: score, SearchTerm: req.SearchTerm}
		for i := range found {
			candidates.Tables = append(candidates.Tables, found[i].ToType())
		}
		return results.SuccessResult[*PostCandidates, error](candidates), nil
	})
}

// SubmitHighScoreSelection records the score on the chosen table version.
// A pending attachment becomes the post URL.
func (s *HighScoreService) SubmitHighScoreSelection(ctx context.Context, req SelectionRequest) (PostedResult, error) {
	submitTx := func(ctx context.Context, db bun.IDB) (PostedResult, error) {
		fail := func(err error) (PostedResult, error) {
			return results.FailureResult[*Posted, error](err), nil
		}

		if req.Username == "" {
			return fail(ErrUserRequired)
		}
		if req.Score < 1 || req.Score > competitiondomain.MaxScore {
			return fail(&competitiondomain.ValidationError{Input: strconv.FormatInt(req.Score, 10)})
		}
		table, err := s.lookupTable(ctx, db, req.VPSID, req.VersionNumber)
		if err != nil {
			if errors.Is(err, ErrTableNotFound) {
				return fail(err)
			}
			return PostedResult{}, err
		}

		existing, err := s.repo.ListScores(ctx, db, table.ID)
		if err != nil {
			return PostedResult{}, err
		}

		postURL, _ := s.pending.Take(pendingKey(req.UserID, req.Username))
		posted, err := s.saveScore(ctx, db, table, existing, &highscoredb.HighScore{
			UserID:   req.UserID,
			Username: req.Username,
			Score:    req.Score,
			Mode:     req.Mode,
			PostURL:  postURL,
		})
		if err != nil {
			return PostedResult{}, err
		}
		return results.SuccessResult[*Posted, error](posted), nil
	}

	return withTelemetry(s, ctx, "SubmitHighScoreSelection", req.VPSID, func(ctx context.Context) (PostedResult, error) {
		return runInTx(s, ctx, submitTx)
	})
}

// CrossPostWeeklyScore copies a weekly score onto its table's high scores,
// registering the table version first if needed. A score the player already
// holds on that version is not recorded twice.
func (s *HighScoreService) CrossPostWeeklyScore(ctx context.Context, req CrossPostRequest) (CrossPostResult, error) {
	crossPostTx := func(ctx context.Context, db bun.IDB) (CrossPostResult, error) {
		if err := validateTable(req.Table); err != nil {
			return results.FailureResult[*CrossPosted, error](err), nil
		}
		if req.Username == "" {
			return results.FailureResult[*CrossPosted, error](ErrUserRequired), nil
		}

		table, _, err := s.ensureTable(ctx, db, req.Table)
		if err != nil {
			return CrossPostResult{}, err
		}

		existing, err := s.repo.ListScores(ctx, db, table.ID)
		if err != nil {
			return CrossPostResult{}, err
		}
		if highscoredomain.IsDuplicate(toScores(existing), req.Username, req.Score) {
			s.logger.InfoContext(ctx, "High score already recorded",
				attr.ExtractCorrelationID(ctx),
				attr.String("vps_id", req.Table.VPSID),
				attr.String("username", req.Username),
				attr.Int64("score", req.Score),
			)
			return results.SuccessResult[*CrossPosted, error](&CrossPosted{Duplicate: true}), nil
		}

		posted, err := s.saveScore(ctx, db, table, existing, &highscoredb.HighScore{
			UserID:   req.UserID,
			Username: req.Username,
			Score:    req.Score,
			Mode:     req.Mode,
			PostURL:  req.PostURL,
		})
		if err != nil {
			return CrossPostResult{}, err
		}
		return results.SuccessResult[*CrossPosted, error](&CrossPosted{
			Posted:    posted,
			Announce:  req.DoPost,
			Subscript: req.Subscript,
		}), nil
	}

	return withTelemetry(s, ctx, "CrossPostWeeklyScore", req.Table.VPSID, func(ctx context.Context) (CrossPostResult, error) {
		return runInTx(s, ctx, crossPostTx)
	})
}

// saveScore inserts row against table and returns the version's top scores.
// existing holds the scores already on the version.
func (s *HighScoreService) saveScore(ctx context.Context, db bun.IDB, table *highscoredb.TableVersion, existing []highscoredb.HighScore, row *highscoredb.HighScore) (*Posted, error) {
	newTop := true
	for i := range existing {
		if existing[i].Score >= row.Score {
			newTop = false
			break
		}
	}

	row.TableID = table.ID
	if row.Mode == "" {
		row.Mode = competitiontypes.DefaultMode
	}
	row.CreatedAt = s.now()
	if err := s.repo.InsertScore(ctx, db, row); err != nil {
		return nil, err
	}

	scores := append(toScores(existing), row.ToType())
	return &Posted{
		Table:     table.ToType(),
		Score:     row.ToType(),
		TopScores: highscoredomain.TopScores(scores, highscoredomain.DefaultScoresToShow),
		NewTop:    newTop,
	}, nil
}

// RemoveHighScore deletes a score from every version of a table.
func (s *HighScoreService) RemoveHighScore(ctx context.Context, vpsID, username string, score int64) (RemovedResult, error) {
	removeTx := func(ctx context.Context, db bun.IDB) (RemovedResult, error) {
		fail := func(err error) (RemovedResult, error) {
			return results.FailureResult[*Removed, error](err), nil
		}

		if vpsID == "" {
			return fail(ErrVPSIDRequired)
		}
		if username == "" {
			return fail(ErrUserRequired)
		}
		n, err := s.repo.DeleteScores(ctx, db, vpsID, username, score)
		if err != nil {
			return RemovedResult{}, err
		}
		if n == 0 {
			return fail(ErrScoreNotFound)
		}
		return results.SuccessResult[*Removed, error](&Removed{
			VPSID:    vpsID,
			Username: username,
			Score:    score,
			Removed:  n,
		}), nil
	}

	return withTelemetry(s, ctx, "RemoveHighScore", vpsID, func(ctx context.Context) (RemovedResult, error) {
		return runInTx(s, ctx, removeTx)
	})
}
