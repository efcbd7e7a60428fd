package factory

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/alicebob/miniredis/v2"

	"github.com/mcoot/seabattle/internal/model"
	"github.com/mcoot/seabattle/internal/services/match"
	"github.com/mcoot/seabattle/internal/services/player"
	redisstorage "github.com/mcoot/seabattle/internal/storage/redis"
)

type IntegrationSuite struct {
	suite.Suite
	app *TestApp
	ctx context.Context
}

func TestIntegrationSuite(t *testing.T) {
	suite.Run(t, new(IntegrationSuite))
}

func (s *IntegrationSuite) SetupTest() {
	s.app = NewTestApp()
	s.ctx = context.Background()
}

// Test: a scripted console game from greeting to recorded history
func (s *IntegrationSuite) TestCompleteConsoleMatch() {
	// Both fleets get the same known layout
	s.app.QueueFleet()
	s.app.QueueFleet()

	// Every user shot hits, so the computer never moves
	input := strings.Join([]string{
		"1 1", "1 2", "1 3",
		"1 5", "1 6",
		"3 1", "3 2",
		"3 4", "3 6", "5 1", "5 3",
	}, "\n") + "\n"
	out := &bytes.Buffer{}

	session, err := s.app.MatchController.NewMatch(s.ctx, match.Options{
		UserInput: s.app.NewConsole(strings.NewReader(input), out),
		Notifier:  s.app.NewAnnouncer(out),
		Renderer:  s.app.NewRenderer(out),
	})
	s.Require().NoError(err)
	s.Equal(0, s.app.MockRandom.Remaining())

	summary, err := s.app.MatchController.Run(s.ctx, session)
	s.Require().NoError(err)

	s.Equal(model.SideUser, summary.Winner)
	s.Equal(11, summary.UserShots)
	s.Equal(11, summary.UserHits)
	s.Equal(0, summary.ComputerShots)

	text := out.String()
	s.Equal(7, strings.Count(text, "Ship destroyed!"))
	s.Equal(4, strings.Count(text, "Ship hit!"))
	s.Contains(text, "User wins!")

	history, err := s.app.MatchController.History(s.ctx, 5)
	s.Require().NoError(err)
	s.Require().Len(history, 1)
	s.Equal(session.Match.ID, history[0].ID)
}

// Test: rejected input is announced and the user is asked again
func (s *IntegrationSuite) TestRejectedShotsAreReprompted() {
	s.app.QueueFleet()
	s.app.QueueFleet()

	input := "7 1\n1 1\n1 1\n"
	out := &bytes.Buffer{}

	session, err := s.app.MatchController.NewMatch(s.ctx, match.Options{
		UserInput: s.app.NewConsole(strings.NewReader(input), out),
		Notifier:  s.app.NewAnnouncer(out),
	})
	s.Require().NoError(err)

	_, err = s.app.MatchController.Run(s.ctx, session)
	s.ErrorIs(err, model.ErrInputClosed)

	text := out.String()
	s.Contains(text, s.app.Messages.OutOfBounds)
	s.Contains(text, s.app.Messages.AlreadyTargeted)
	s.Equal(1, session.Match.Shots[model.SideUser])
}

// Test: the computer's move is announced before its result
func (s *IntegrationSuite) TestComputerMoveIsAnnounced() {
	s.app.QueueFleet()
	s.app.QueueFleet()
	// Computer aims at (6,6), which is water on the known layout
	s.app.MockRandom.QueueIntn(5, 5)

	var events []model.Event
	out := &bytes.Buffer{}
	session, err := s.app.MatchController.NewMatch(s.ctx, match.Options{
		UserInput: s.app.NewConsole(strings.NewReader("6 6\n"), out),
		Notifier: player.Broadcast(
			s.app.NewAnnouncer(out),
			player.NotifierFunc(func(e model.Event) { events = append(events, e) }),
		),
	})
	s.Require().NoError(err)

	for i := 0; i < 2; i++ {
		_, err = s.app.MatchController.Step(s.ctx, session)
		s.Require().NoError(err)
	}

	s.Contains(out.String(), "Computer move: 6 6\nMiss!")
	s.Equal(model.SideUser, session.Match.Turn)
	s.Equal(model.EventTurnChanged, events[len(events)-1].Type)
}

// Test: New validates its configuration
func (s *IntegrationSuite) TestNewRejectsInvalidConfig() {
	_, err := New(Config{BoardSize: 3})
	s.ErrorIs(err, model.ErrInvalidBoardSize)

	_, err = New(Config{Locale: "xx"})
	s.Error(err)

	_, err = New(Config{StorageType: "sqlite"})
	s.Error(err)

	_, err = New(Config{StorageType: StorageTypeRedis})
	s.Error(err)

	_, err = New(Config{Strategy: "psychic"})
	s.Error(err)
}

// Test: a seeded app plays the same computer-vs-computer match twice
func (s *IntegrationSuite) TestSeededAppsAreReproducible() {
	seed := uint64(42)
	play := func() *model.MatchSummary {
		app, err := New(Config{Seed: &seed})
		s.Require().NoError(err)
		session, err := app.MatchController.NewMatch(s.ctx, match.Options{})
		s.Require().NoError(err)
		summary, err := app.MatchController.Run(s.ctx, session)
		s.Require().NoError(err)
		return summary
	}

	first, second := play(), play()
	s.Equal(first.Winner, second.Winner)
	s.Equal(first.Moves, second.Moves)
	s.Equal(first.UserHits, second.UserHits)
}

// Test: the redis backend is wired when configured
func (s *IntegrationSuite) TestRedisStorage() {
	mr := miniredis.RunT(s.T())
	redisCfg := redisstorage.DefaultConfig()
	redisCfg.URL = "redis://" + mr.Addr()
	seed := uint64(3)

	app, err := New(Config{StorageType: StorageTypeRedis, RedisConfig: &redisCfg, BoardSize: 7, Seed: &seed})
	s.Require().NoError(err)
	defer func() { s.NoError(app.Close()) }()

	session, err := app.MatchController.NewMatch(s.ctx, match.Options{})
	s.Require().NoError(err)
	s.Equal(7, session.Board(model.SideUser).Size())

	_, err = app.MatchController.Run(s.ctx, session)
	s.Require().NoError(err)

	history, err := app.MatchController.History(s.ctx, 0)
	s.Require().NoError(err)
	s.Len(history, 1)
	s.Equal(7, history[0].BoardSize)
}
