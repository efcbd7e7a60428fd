package bot_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/mcoot/seabattle/internal/dependencies/mocks"
	"github.com/mcoot/seabattle/internal/dependencies/random"
	"github.com/mcoot/seabattle/internal/model"
	"github.com/mcoot/seabattle/internal/services/bot"
)

type StrategySuite struct {
	suite.Suite
	mockRandom *mocks.MockRandom
	strategy   *bot.RandomStrategy
}

func TestStrategySuite(t *testing.T) {
	suite.Run(t, new(StrategySuite))
}

func (s *StrategySuite) SetupTest() {
	s.mockRandom = mocks.NewMockRandom()
	s.strategy = bot.NewRandomStrategy(s.mockRandom)
}

func (s *StrategySuite) TestChooseTarget_EmptyBoard() {
	board := model.NewBoard(6)
	s.mockRandom.QueueIntn(3, 4)

	target := s.strategy.ChooseTarget(board)
	s.Equal(model.Coordinate{Row: 3, Col: 4}, target)
	s.Equal([]int{6, 6}, s.mockRandom.Calls)
}

func (s *StrategySuite) TestChooseTarget_SkipsBusyCoordinates() {
	board := model.NewBoard(6)
	_, err := board.Shoot(model.Coordinate{Row: 1, Col: 1})
	s.Require().NoError(err)
	_, err = board.Shoot(model.Coordinate{Row: 2, Col: 2})
	s.Require().NoError(err)

	s.mockRandom.QueueIntn(1, 1, 2, 2, 5, 0)

	target := s.strategy.ChooseTarget(board)
	s.Equal(model.Coordinate{Row: 5, Col: 0}, target)
}

func (s *StrategySuite) TestChooseTarget_FullBoardReturnsOrigin() {
	board := model.NewBoard(6)
	for row := 0; row < 6; row++ {
		for col := 0; col < 6; col++ {
			_, err := board.Shoot(model.Coordinate{Row: row, Col: col})
			s.Require().NoError(err)
		}
	}

	s.Equal(model.Coordinate{}, s.strategy.ChooseTarget(board))
	s.Empty(s.mockRandom.Calls)
}

func (s *StrategySuite) TestChooseTarget_NeverPicksBusyAcrossSeeds() {
	for seed := uint64(1); seed <= 50; seed++ {
		strategy := bot.NewRandomStrategy(random.NewSeeded(seed))
		board := model.NewBoard(6)

		for shot := 0; shot < 36; shot++ {
			target := strategy.ChooseTarget(board)
			s.Require().False(board.IsBusy(target), "seed %d shot %d", seed, shot)
			_, err := board.Shoot(target)
			s.Require().NoError(err)
		}
		s.Equal(36, board.BusyCount())
	}
}

func (s *StrategySuite) TestLookup() {
	strategy, err := bot.Lookup("random", s.mockRandom)
	s.Require().NoError(err)
	s.IsType(&bot.RandomStrategy{}, strategy)

	strategy, err = bot.Lookup("", s.mockRandom)
	s.Require().NoError(err)
	s.NotNil(strategy)

	_, err = bot.Lookup("hunter", s.mockRandom)
	s.Error(err)
	s.Equal([]string{"random"}, bot.Strategies())
}
