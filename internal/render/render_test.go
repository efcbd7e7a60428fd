package render

import (
	"bytes"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/mcoot/seabattle/internal/model"
)

type RenderSuite struct {
	suite.Suite
	out      *bytes.Buffer
	palette  Palette
	messages Messages
	board    *model.Board
}

func TestRenderSuite(t *testing.T) {
	suite.Run(t, new(RenderSuite))
}

func (s *RenderSuite) SetupTest() {
	s.out = &bytes.Buffer{}
	s.palette = NewPalette(false)
	messages, err := LookupMessages("en")
	s.Require().NoError(err)
	s.messages = messages

	s.board = model.NewBoard(6)
	s.Require().NoError(s.board.PlaceShip(model.NewShip(model.Coordinate{Row: 0, Col: 0}, 2, model.Horizontal)))
	s.board.Reset()
}

func (s *RenderSuite) lines() []string {
	return strings.Split(strings.TrimRight(s.out.String(), "\n"), "\n")
}

// Style tests

func (s *RenderSuite) TestStylizeDisabledIsIdentity() {
	for _, style := range []Style{StylePlain, StyleShip, StyleHit, StyleFailure} {
		s.Equal("text", s.palette.Stylize("text", style))
	}
}

func (s *RenderSuite) TestStylizeEnabledAddsEscapes() {
	p := NewPalette(true)
	styled := p.Stylize("text", StyleHit)
	s.Contains(styled, "\x1b[")
	s.Contains(styled, "text")
	s.Equal("text", p.Stylize("text", StylePlain))
}

// Board tests

func (s *RenderSuite) TestBoardLinesHeader() {
	lines := s.palette.BoardLines(s.board)
	s.Require().Len(lines, 7)
	s.Equal("  | 1 | 2 | 3 | 4 | 5 | 6 |", lines[0])
}

func (s *RenderSuite) TestBoardLinesShowsShips() {
	lines := s.palette.BoardLines(s.board)
	s.Equal("1 | ■ | ■ | □ | □ | □ | □ |", lines[1])
	s.Equal("2 | □ | □ | □ | □ | □ | □ |", lines[2])
}

func (s *RenderSuite) TestBoardLinesHiddenConcealsShips() {
	s.board.SetHidden(true)
	lines := s.palette.BoardLines(s.board)
	s.NotContains(strings.Join(lines, "\n"), "■")
}

func (s *RenderSuite) TestBoardLinesShowsShotResults() {
	_, err := s.board.Shoot(model.Coordinate{Row: 5, Col: 5})
	s.Require().NoError(err)
	_, err = s.board.Shoot(model.Coordinate{Row: 0, Col: 0})
	s.Require().NoError(err)

	lines := s.palette.BoardLines(s.board)
	s.Equal("1 | ● | ■ | □ | □ | □ | □ |", lines[1])
	s.Equal("6 | □ | □ | □ | □ | □ | • |", lines[6])

	_, err = s.board.Shoot(model.Coordinate{Row: 0, Col: 1})
	s.Require().NoError(err)
	lines = s.palette.BoardLines(s.board)
	s.Equal("1 | X | X | • | □ | □ | □ |", lines[1])
}

func (s *RenderSuite) TestHiddenBoardStillShowsHits() {
	s.board.SetHidden(true)
	_, err := s.board.Shoot(model.Coordinate{Row: 0, Col: 0})
	s.Require().NoError(err)

	lines := s.palette.BoardLines(s.board)
	s.Equal("1 | ● | □ | □ | □ | □ | □ |", lines[1])
}

// Renderer tests

func (s *RenderSuite) TestRenderPanelsSideBySide() {
	computer := model.NewBoard(6)
	computer.SetHidden(true)
	r := NewRenderer(s.out, s.palette, s.messages)

	r.Render(s.board, computer)

	lines := s.lines()
	s.Require().Len(lines, 9)
	s.True(strings.HasPrefix(lines[0], "      User fleet:"))
	s.True(strings.HasSuffix(lines[0], "Computer fleet:"))
	s.Equal(43, strings.Index(lines[0], "Computer fleet:"))

	header := "  | 1 | 2 | 3 | 4 | 5 | 6 |"
	s.Equal(header+strings.Repeat(" ", 10)+header, lines[1])
	s.Equal(strings.Repeat("-", 64), lines[8])
}

func (s *RenderSuite) TestRenderRussianTitlesAlign() {
	ru, err := LookupMessages("ru")
	s.Require().NoError(err)
	r := NewRenderer(s.out, s.palette, ru)

	r.Render(s.board, model.NewBoard(6))

	first := []rune(s.lines()[0])
	s.Equal("      Флот пользователя:"+strings.Repeat(" ", 19)+"Флот компьютера:", string(first))
}

func (s *RenderSuite) TestGreetingMentionsInputFormat() {
	r := NewRenderer(s.out, s.palette, s.messages)
	r.Greeting()
	s.Contains(s.out.String(), s.messages.InputFormat)
	s.Contains(s.out.String(), "SEA BATTLE")
}

// Messages tests

func (s *RenderSuite) TestLookupMessagesDefaultsToEnglish() {
	m, err := LookupMessages("")
	s.Require().NoError(err)
	s.Equal("Miss!", m.Miss)
}

func (s *RenderSuite) TestLookupMessagesUnknownLocale() {
	_, err := LookupMessages("fr")
	s.Error(err)
}

func (s *RenderSuite) TestLocales() {
	s.Equal([]string{"en", "ru"}, Locales())
}

func (s *RenderSuite) TestEveryLocaleIsComplete() {
	for _, locale := range Locales() {
		m, err := LookupMessages(locale)
		s.Require().NoError(err)
		s.NotEmpty(m.Prompt, locale)
		s.NotEmpty(m.Miss, locale)
		s.NotEmpty(m.UserWon, locale)
		s.NotEmpty(m.ComputerWon, locale)
		s.Contains(fmt.Sprintf(m.ComputerMove, 1, 2), "1 2", locale)
		s.Contains(fmt.Sprintf(m.UserMove, 1, 2), "1 2", locale)
	}
}

// Announcer tests

func (s *RenderSuite) announce(events ...model.Event) []string {
	a := NewAnnouncer(s.out, s.palette, s.messages)
	for _, e := range events {
		a.Notify(e)
	}
	return s.lines()
}

func (s *RenderSuite) TestAnnounceShotResults() {
	lines := s.announce(
		model.Event{Type: model.EventShotResolved, Payload: model.ShotResolvedPayload{Result: model.ShotMiss}},
		model.Event{Type: model.EventShotResolved, Payload: model.ShotResolvedPayload{Result: model.ShotHit}},
		model.Event{Type: model.EventShotResolved, Payload: model.ShotResolvedPayload{Result: model.ShotDestroyed}},
	)
	s.Equal([]string{"Miss!", "Ship hit!", "Ship destroyed!"}, lines)
}

func (s *RenderSuite) TestAnnounceComputerMoveIsOneIndexed() {
	lines := s.announce(model.Event{
		Type:    model.EventTargetChosen,
		Side:    model.SideComputer,
		Payload: model.TargetChosenPayload{Target: model.Coordinate{Row: 0, Col: 4}},
	})
	s.Equal([]string{"Computer move: 1 5"}, lines)
}

func (s *RenderSuite) TestAnnounceRejectedShots() {
	lines := s.announce(
		model.Event{Type: model.EventShotRejected, Payload: model.ShotRejectedPayload{
			Err: fmt.Errorf("%w: (6, 0)", model.ErrOutOfBounds),
		}},
		model.Event{Type: model.EventShotRejected, Payload: model.ShotRejectedPayload{
			Err: fmt.Errorf("%w: (1, 1)", model.ErrAlreadyTargeted),
		}},
	)
	s.Equal([]string{s.messages.OutOfBounds, s.messages.AlreadyTargeted}, lines)
}

func (s *RenderSuite) TestAnnounceWinner() {
	lines := s.announce(model.Event{
		Type:    model.EventMatchComplete,
		Payload: model.MatchCompletePayload{Winner: model.SideComputer, Moves: 20},
	})
	s.Require().Len(lines, 3)
	s.Equal(strings.Repeat(" ", 22)+"Computer wins!", lines[1])
}

func (s *RenderSuite) TestAnnounceIgnoresSilentEvents() {
	a := NewAnnouncer(s.out, s.palette, s.messages)
	a.Notify(model.Event{Type: model.EventTurnChanged, Payload: model.TurnChangedPayload{Next: model.SideUser}})
	a.Notify(model.Event{Type: model.EventMatchStarted, Payload: model.MatchStartedPayload{BoardSize: 6}})
	s.Empty(s.out.String())
}

func (s *RenderSuite) TestAnnounceRussian() {
	ru, err := LookupMessages("ru")
	s.Require().NoError(err)
	a := NewAnnouncer(s.out, s.palette, ru)
	a.Notify(model.Event{Type: model.EventShotResolved, Payload: model.ShotResolvedPayload{Result: model.ShotMiss}})
	s.Equal("Мимо!\n", s.out.String())
}
