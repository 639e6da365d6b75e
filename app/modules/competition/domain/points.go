package competitiondomain

import competitiontypes "github.com/Black-And-White-Club/pinball-bot/pkg/types/competition"

// pointsByRank is the weekly points table for the top ten finishers.
var pointsByRank = [...]int{12, 10, 9, 8, 7, 6, 5, 4, 3, 2}

// ParticipationPoints is awarded to every finisher outside the top ten.
const ParticipationPoints = 1

// PointsForPosition returns the points for a 0-based leaderboard position.
func PointsForPosition(position int) int {
	if position >= 0 && position < len(pointsByRank) {
		return pointsByRank[position]
	}
	return ParticipationPoints
}

// AssignPoints rewrites every entry's points from its position.
// The leaderboard must already be sorted.
func AssignPoints(sorted competitiontypes.Leaderboard) {
	for i := range sorted {
		sorted[i].Points = PointsForPosition(i)
	}
}
