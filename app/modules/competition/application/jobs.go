package competitionservice

import (
	highscoredomain "github.com/Black-And-White-Club/pinball-bot/app/modules/highscore/domain"
	"github.com/Black-And-White-Club/pinball-bot/internal/queue"
	competitiontypes "github.com/Black-And-White-Club/pinball-bot/pkg/types/competition"
	highscoretypes "github.com/Black-And-White-Club/pinball-bot/pkg/types/highscore"
	"github.com/riverqueue/river"
)

// tableFromWeek describes the week's table version for the high score lists.
func tableFromWeek(w *competitiontypes.Week) highscoretypes.Table {
	return highscoretypes.Table{
		VPSID:         w.VPSID,
		TableName:     w.Table,
		Slug:          highscoredomain.TableSlug(w.Table),
		AuthorName:    w.AuthorName,
		VersionNumber: w.VersionNumber,
		VersionURL:    w.TableURL,
		ROMName:       w.ROMName,
	}
}

func crossPostJob(posted *ScorePosted, req PostScoreRequest, cutoff int) queue.CrossPostHighScoreJob {
	return queue.CrossPostHighScoreJob{
		Table:     tableFromWeek(posted.Week),
		UserID:    req.User.UserID,
		Username:  posted.Username,
		Score:     posted.Score,
		Mode:      posted.Mode,
		PostURL:   req.AttachmentURL,
		Subscript: "#" + posted.Week.ChannelName,
		DoPost:    highscoredomain.ShouldCrossPost(posted.Rank, cutoff, req.PostToHighScores),
	}
}

// closedWeekJobs are the follow-ups owed when a week is superseded.
func closedWeekJobs(closed *competitiontypes.Week) []river.JobArgs {
	jobs := []river.JobArgs{queue.AdvancePlayoffRoundJob{
		ChannelName: closed.ChannelName,
		WeekNumber:  closed.WeekNumber,
		Leaderboard: closed.Scores,
	}}
	if len(closed.Scores) > 0 {
		jobs = append(jobs, queue.BraggingRightsJob{
			ChannelName: closed.ChannelName,
			WeekNumber:  closed.WeekNumber,
			Table:       closed.Table,
			Winner:      closed.Scores[0],
		})
	}
	return jobs
}
