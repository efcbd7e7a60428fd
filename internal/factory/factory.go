package factory

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/mcoot/seabattle/internal/console"
	"github.com/mcoot/seabattle/internal/dependencies/clock"
	"github.com/mcoot/seabattle/internal/dependencies/random"
	"github.com/mcoot/seabattle/internal/model"
	"github.com/mcoot/seabattle/internal/render"
	"github.com/mcoot/seabattle/internal/services/bot"
	"github.com/mcoot/seabattle/internal/services/match"
	"github.com/mcoot/seabattle/internal/services/placement"
	"github.com/mcoot/seabattle/internal/storage"
	"github.com/mcoot/seabattle/internal/storage/memory"
	redisstorage "github.com/mcoot/seabattle/internal/storage/redis"
)

// Storage type constants
const (
	StorageTypeMemory = "memory"
	StorageTypeRedis  = "redis"
)

// App contains all wired application components
type App struct {
	// Storage
	Storage storage.Storage

	// External dependencies
	Clock  clock.Clock
	Random random.Random

	// Services
	PlacementService *placement.Service
	Strategy         bot.Strategy
	MatchController  *match.Controller

	// Presentation
	Palette  render.Palette
	Messages render.Messages
}

// Config holds configuration for the application factory
type Config struct {
	// Logger is the application logger (optional)
	// If nil, a no-op logger is used
	Logger *slog.Logger
	// StorageType selects the storage backend ("memory" or "redis")
	// If empty, defaults to "memory"
	StorageType string
	// RedisConfig holds Redis connection settings (required if StorageType is "redis")
	RedisConfig *redisstorage.Config
	// BoardSize is the grid dimension for every match
	// If zero, defaults to model.DefaultBoardSize
	BoardSize int
	// Seed makes fleet placement and computer targeting reproducible (optional)
	Seed *uint64
	// Strategy names the computer's targeting strategy
	// If empty, defaults to bot.StrategyRandom
	Strategy string
	// Locale selects the message catalog ("en" or "ru")
	// If empty, defaults to render.DefaultLocale
	Locale string
	// Colors enables ANSI colours in terminal output
	Colors bool
}

// New creates a new application with all dependencies wired
func New(cfg Config) (*App, error) {
	// Use no-op logger if not provided
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	boardSize := cfg.BoardSize
	if boardSize == 0 {
		boardSize = model.DefaultBoardSize
	}
	if err := placement.ValidateBoardSize(boardSize); err != nil {
		return nil, err
	}

	messages, err := render.LookupMessages(cfg.Locale)
	if err != nil {
		return nil, err
	}

	// Create storage based on type
	var store storage.Storage
	storageType := cfg.StorageType
	if storageType == "" {
		storageType = StorageTypeMemory
	}

	switch storageType {
	case StorageTypeMemory:
		store = memory.New()
	case StorageTypeRedis:
		if cfg.RedisConfig == nil {
			return nil, errors.New("RedisConfig required when StorageType is redis")
		}
		redisStore, err := redisstorage.New(*cfg.RedisConfig)
		if err != nil {
			return nil, err
		}
		store = redisStore
	default:
		return nil, errors.New("invalid StorageType: must be 'memory' or 'redis'")
	}

	// Create external dependencies
	clk := clock.New()
	var rnd random.Random = random.New()
	if cfg.Seed != nil {
		rnd = random.NewSeeded(*cfg.Seed)
	}

	return newWithDependencies(store, clk, rnd, settings{
		boardSize: boardSize,
		strategy:  cfg.Strategy,
		palette:   render.NewPalette(cfg.Colors),
		messages:  messages,
	}, logger)
}

// settings are the validated, non-dependency parts of Config
type settings struct {
	boardSize int
	strategy  string
	palette   render.Palette
	messages  render.Messages
}

// newWithDependencies creates an App with the given dependencies (useful for testing)
func newWithDependencies(
	store storage.Storage,
	clk clock.Clock,
	rnd random.Random,
	opts settings,
	logger *slog.Logger,
) (*App, error) {
	strategy, err := bot.Lookup(opts.strategy, rnd)
	if err != nil {
		return nil, fmt.Errorf("computer strategy: %w", err)
	}

	placementService := placement.New(rnd, logger)
	matchController := match.NewController(store, placementService, strategy, clk, opts.boardSize, logger)

	return &App{
		Storage:          store,
		Clock:            clk,
		Random:           rnd,
		PlacementService: placementService,
		Strategy:         strategy,
		MatchController:  matchController,
		Palette:          opts.palette,
		Messages:         opts.messages,
	}, nil
}

// NewRenderer creates a board renderer writing to out
func (a *App) NewRenderer(out io.Writer) *render.Renderer {
	return render.NewRenderer(out, a.Palette, a.Messages)
}

// NewAnnouncer creates an event announcer writing to out
func (a *App) NewAnnouncer(out io.Writer) *render.Announcer {
	return render.NewAnnouncer(out, a.Palette, a.Messages)
}

// NewConsole creates a target reader prompting on out
func (a *App) NewConsole(in io.Reader, out io.Writer) *console.Reader {
	return console.NewReader(in, out, a.Palette, a.Messages)
}

// Close releases the storage backend, if it holds any resources
func (a *App) Close() error {
	if closer, ok := a.Storage.(io.Closer); ok {
		return closer.Close()
	}
	return nil
}
