//go:build integration

package testutils

import (
	"fmt"
	"strings"
	"time"

	"github.com/brianvoe/gofakeit/v7"

	competitionservice "github.com/Black-And-White-Club/pinball-bot/app/modules/competition/application"
	competitiontypes "github.com/Black-And-White-Club/pinball-bot/pkg/types/competition"
	highscoretypes "github.com/Black-And-White-Club/pinball-bot/pkg/types/highscore"
)

// TestDataGenerator provides methods to create test data for integration tests
type TestDataGenerator struct {
	faker *gofakeit.Faker
	seed  int64
}

// NewTestDataGenerator creates a new test data generator with optional seed
func NewTestDataGenerator(seed ...int64) *TestDataGenerator {
	var s int64
	if len(seed) > 0 {
		s = seed[0]
	} else {
		s = time.Now().UnixNano()
	}

	return &TestDataGenerator{
		faker: gofakeit.New(uint64(s)),
		seed:  s,
	}
}

// Players returns n distinct identities.
func (g *TestDataGenerator) Players(n int) []competitiontypes.Identity {
	players := make([]competitiontypes.Identity, n)
	for i := range players {
		players[i] = competitiontypes.Identity{
			UserID:   g.faker.Numerify("##################"),
			Username: fmt.Sprintf("%s%d", strings.ToLower(g.faker.Username()), i),
		}
	}
	return players
}

// DistinctScores returns n different scores, best first.
func (g *TestDataGenerator) DistinctScores(n int) []int64 {
	scores := make([]int64, n)
	next := int64(g.faker.Number(50_000_000, 90_000_000))
	for i := range scores {
		scores[i] = next
		next -= int64(g.faker.Number(1_000, 2_000_000))
	}
	return scores
}

// Table describes a random table version.
func (g *TestDataGenerator) Table() highscoretypes.Table {
	name := fmt.Sprintf("%s %s (%s %d)",
		g.faker.Adjective(), g.faker.Noun(), g.faker.Company(), g.faker.Number(1978, 2024))
	return highscoretypes.Table{
		VPSID:         g.faker.LetterN(10),
		TableName:     name,
		AuthorName:    g.faker.Username() + ", " + g.faker.Username(),
		VersionNumber: fmt.Sprintf("%d.%d", g.faker.Number(1, 4), g.faker.Number(0, 9)),
		VersionURL:    g.faker.URL(),
	}
}

// WeekRequest opens a week on a random table.
func (g *TestDataGenerator) WeekRequest(channel string) competitionservice.CreateWeekRequest {
	table := g.Table()
	return competitionservice.CreateWeekRequest{
		ChannelName:   channel,
		Table:         table.TableName,
		AuthorName:    table.AuthorName,
		VersionNumber: table.VersionNumber,
		VPSID:         table.VPSID,
		TableURL:      table.VersionURL,
		ROMURL:        g.faker.URL(),
		ROMName:       strings.ToLower(g.faker.LetterN(6)),
	}
}
