package match

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/mcoot/seabattle/internal/dependencies/clock"
	"github.com/mcoot/seabattle/internal/model"
	"github.com/mcoot/seabattle/internal/services/bot"
	"github.com/mcoot/seabattle/internal/services/placement"
	"github.com/mcoot/seabattle/internal/services/player"
	"github.com/mcoot/seabattle/internal/storage"
)

// Renderer draws both boards; the computer's board is normally hidden
type Renderer interface {
	Render(user, computer *model.Board)
}

// Options configures the collaborators of a single match
type Options struct {
	// UserInput supplies the user's targets; nil plays the user side automatically
	UserInput player.InputSource
	// Notifier receives match events; nil discards them
	Notifier player.Notifier
	// Renderer draws the boards before every move; nil skips rendering
	Renderer Renderer
}

// Session is a match together with its boards and players
type Session struct {
	Match *model.Match

	boards   map[model.Side]*model.Board
	players  map[model.Side]player.Player
	notifier player.Notifier
	renderer Renderer
}

// Board returns the board belonging to the given side
func (s *Session) Board(side model.Side) *model.Board {
	return s.boards[side]
}

func (s *Session) render() {
	if s.renderer != nil {
		s.renderer.Render(s.boards[model.SideUser], s.boards[model.SideComputer])
	}
}

// Controller manages match setup, turn order and the win condition
type Controller struct {
	storage   storage.Storage
	placement *placement.Service
	strategy  bot.Strategy
	clock     clock.Clock
	boardSize int
	logger    *slog.Logger
}

// NewController creates a new match Controller
func NewController(
	store storage.Storage,
	placementService *placement.Service,
	strategy bot.Strategy,
	clk clock.Clock,
	boardSize int,
	logger *slog.Logger,
) *Controller {
	return &Controller{
		storage:   store,
		placement: placementService,
		strategy:  strategy,
		clock:     clk,
		boardSize: boardSize,
		logger:    logger.With(slog.String("component", "match-controller")),
	}
}

// BoardSize returns the size every match of this controller is played on
func (c *Controller) BoardSize() int {
	return c.boardSize
}

// NewMatch places both fleets at random and starts a match
func (c *Controller) NewMatch(ctx context.Context, opts Options) (*Session, error) {
	userBoard, err := c.placement.GenerateBoard(ctx, c.boardSize)
	if err != nil {
		return nil, err
	}
	computerBoard, err := c.placement.GenerateBoard(ctx, c.boardSize)
	if err != nil {
		return nil, err
	}
	computerBoard.SetHidden(true)

	return c.StartMatch(userBoard, computerBoard, opts), nil
}

// StartMatch begins a match on boards whose fleets are already placed.
// The user always moves first.
func (c *Controller) StartMatch(userBoard, computerBoard *model.Board, opts Options) *Session {
	now := c.clock.Now()
	m := &model.Match{
		ID:        model.MatchID(uuid.NewString()),
		State:     model.MatchInProgress,
		BoardSize: userBoard.Size(),
		Turn:      model.SideUser,
		Shots:     make(map[model.Side]int),
		Hits:      make(map[model.Side]int),
		StartedAt: now,
		UpdatedAt: now,
	}

	session := &Session{
		Match:    m,
		boards:   map[model.Side]*model.Board{model.SideUser: userBoard, model.SideComputer: computerBoard},
		renderer: opts.Renderer,
	}
	session.notifier = c.stamp(m, opts.Notifier)

	var user player.Player
	if opts.UserInput != nil {
		user = player.NewHuman(model.SideUser, userBoard, computerBoard, opts.UserInput, session.notifier)
	} else {
		user = player.NewAutomated(model.SideUser, userBoard, computerBoard, c.strategy, session.notifier)
	}
	computer := player.NewAutomated(model.SideComputer, computerBoard, userBoard, c.strategy, session.notifier)
	session.players = map[model.Side]player.Player{model.SideUser: user, model.SideComputer: computer}

	session.notifier.Notify(model.Event{
		Type:    model.EventMatchStarted,
		Side:    m.Turn,
		Payload: model.MatchStartedPayload{BoardSize: m.BoardSize, FirstTurn: m.Turn},
	})

	c.logger.Info("match started",
		slog.String("match_id", string(m.ID)),
		slog.Int("board_size", m.BoardSize),
		slog.Bool("interactive", opts.UserInput != nil),
	)

	return session
}

// Step plays one move for the side whose turn it is.
// A hit or kill keeps the turn with the same side.
func (c *Controller) Step(ctx context.Context, session *Session) (model.ShotResult, error) {
	m := session.Match
	if m.State.IsTerminal() {
		return model.ShotMiss, model.ErrMatchComplete
	}

	side := m.Turn
	result, err := session.players[side].Move(ctx)
	if err != nil {
		return model.ShotMiss, err
	}

	m.Moves++
	m.Shots[side]++
	if result.GrantsRepeat() {
		m.Hits[side]++
	}
	m.UpdatedAt = c.clock.Now()

	if session.boards[model.SideComputer].FleetDestroyed() {
		m.State = model.MatchUserWon
	} else if session.boards[model.SideUser].FleetDestroyed() {
		m.State = model.MatchComputerWon
	}

	if m.State.IsTerminal() {
		c.logger.Info("match completed",
			slog.String("match_id", string(m.ID)),
			slog.String("winner", string(m.Winner())),
			slog.Int("moves", m.Moves),
		)
		return result, nil
	}

	if !result.GrantsRepeat() {
		m.Turn = side.Opponent()
		session.notifier.Notify(model.Event{
			Type:    model.EventTurnChanged,
			Side:    side,
			Payload: model.TurnChangedPayload{Next: m.Turn},
		})
	}

	return result, nil
}

// Run plays the match to completion and records its summary
func (c *Controller) Run(ctx context.Context, session *Session) (*model.MatchSummary, error) {
	for !session.Match.State.IsTerminal() {
		session.render()
		if _, err := c.Step(ctx, session); err != nil {
			c.logger.Warn("match interrupted",
				slog.String("match_id", string(session.Match.ID)),
				slog.String("error", err.Error()),
			)
			return nil, err
		}
	}

	m := session.Match
	session.notifier.Notify(model.Event{
		Type:    model.EventMatchComplete,
		Side:    m.Winner(),
		Payload: model.MatchCompletePayload{Winner: m.Winner(), Moves: m.Moves},
	})
	session.render()

	summary := c.summarize(m)
	if err := c.storage.SaveMatchSummary(ctx, summary); err != nil {
		c.logger.Error("failed to save match summary",
			slog.String("match_id", string(m.ID)),
			slog.String("error", err.Error()),
		)
		return summary, err
	}

	return summary, nil
}

// History returns the most recent match summaries
func (c *Controller) History(ctx context.Context, limit int) ([]*model.MatchSummary, error) {
	return c.storage.ListMatchSummaries(ctx, limit)
}

func (c *Controller) summarize(m *model.Match) *model.MatchSummary {
	return &model.MatchSummary{
		ID:            m.ID,
		BoardSize:     m.BoardSize,
		Winner:        m.Winner(),
		Moves:         m.Moves,
		UserShots:     m.Shots[model.SideUser],
		ComputerShots: m.Shots[model.SideComputer],
		UserHits:      m.Hits[model.SideUser],
		ComputerHits:  m.Hits[model.SideComputer],
		StartedAt:     m.StartedAt,
		CompletedAt:   c.clock.Now(),
	}
}

// stamp fills in the match id and time on events raised by players
func (c *Controller) stamp(m *model.Match, next player.Notifier) player.Notifier {
	if next == nil {
		next = player.NopNotifier
	}
	return player.NotifierFunc(func(event model.Event) {
		event.MatchID = m.ID
		event.Timestamp = c.clock.Now()
		next.Notify(event)
	})
}
