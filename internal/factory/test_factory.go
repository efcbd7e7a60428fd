package factory

import (
	"time"

	"github.com/mcoot/seabattle/internal/dependencies/mocks"
	"github.com/mcoot/seabattle/internal/model"
	"github.com/mcoot/seabattle/internal/render"
	"github.com/mcoot/seabattle/internal/storage/memory"
	"github.com/mcoot/seabattle/internal/testutil"
)

// TestApp extends App with test-specific helpers
type TestApp struct {
	*App

	// Mocks for test control
	MockClock  *mocks.MockClock
	MockRandom *mocks.MockRandom
}

// NewTestApp creates an App configured for testing with mocked dependencies
func NewTestApp() *TestApp {
	store := memory.New()
	mockClock := mocks.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	mockRandom := mocks.NewMockRandom()

	messages, err := render.LookupMessages(render.DefaultLocale)
	if err != nil {
		panic(err)
	}
	app, err := newWithDependencies(store, mockClock, mockRandom, settings{
		boardSize: model.DefaultBoardSize,
		palette:   render.NewPalette(false),
		messages:  messages,
	}, testutil.NopLogger())
	if err != nil {
		panic(err)
	}

	return &TestApp{
		App:        app,
		MockClock:  mockClock,
		MockRandom: mockRandom,
	}
}

// QueueFleet queues the draws that place the standard fleet on a 6x6 board
// with no rejected attempts
func (t *TestApp) QueueFleet() {
	t.MockRandom.QueueIntn(
		0, 0, 1,
		0, 4, 1,
		2, 0, 1,
		2, 3, 0,
		2, 5, 0,
		4, 0, 0,
		4, 2, 0,
	)
}
