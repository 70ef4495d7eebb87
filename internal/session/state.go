// Package session models the interactive view state as a value with pure
// transitions. The only side effect, fetching futures, is performed by Run.
package session

import (
	"context"
	"log"

	"github.com/jonathan/alternate-futures/internal/timeline"
	"github.com/jonathan/alternate-futures/internal/types"
)

// Mode is the active view.
type Mode string

// Views
const (
	ModeInput    Mode = "input"
	ModeTimeline Mode = "timeline"
	ModeFutures  Mode = "futures"
)

const (
	// DefaultFutureCount is the initial number of future roles requested interactively.
	DefaultFutureCount = 2
	// DefaultSpanYears is the initial projection window used interactively.
	DefaultSpanYears = 5

	// NoResultsMessage is shown when generation succeeds with nothing to display.
	NoResultsMessage = "No results generated. Check your API key and try different input."
	// FailureMessage is shown when the generation call fails.
	FailureMessage = "Failed to generate. Verify your API key and try again."
)

// State is the complete view state.
type State struct {
	Mode           Mode
	Loading        bool
	ResumeText     string
	LastResumeText string
	RealEvents     []types.TimelineEntry
	Futures        []types.TimelineEntry
	Error          string
	// FuturesKey increments on every successful generation so renderers can
	// tell a fresh result from a repeated one.
	FuturesKey  int
	FutureCount int
	SpanYears   int
}

// Request is the generation call a transition asks the caller to perform.
type Request struct {
	ResumeText  string
	FutureCount int
	SpanYears   int
}

// Fetcher performs a generation call.
type Fetcher func(ctx context.Context, req Request) ([]types.TimelineEntry, error)

// New returns the initial state.
func New() State {
	return State{
		Mode:        ModeInput,
		FutureCount: DefaultFutureCount,
		SpanYears:   DefaultSpanYears,
	}
}

// ChangeText updates the input buffer and re-parses the real timeline.
func (s State) ChangeText(text string) State {
	s.ResumeText = text
	s.RealEvents = timeline.Parse(text)
	return s
}

// SetFutureCount sets the number of future roles for the next request.
func (s State) SetFutureCount(n int) State {
	s.FutureCount = n
	return s
}

// SetSpanYears sets the projection window for the next request.
func (s State) SetSpanYears(n int) State {
	s.SpanYears = n
	return s
}

// SelectMode switches the active view.
func (s State) SelectMode(m Mode) State {
	s.Mode = m
	return s
}

// NewInput returns to the input view, keeping the buffer.
func (s State) NewInput() State {
	return s.SelectMode(ModeInput)
}

// Submit starts generation for text. ok is false while a request is in flight;
// the caller must not perform a request in that case.
func (s State) Submit(text string) (State, Request, bool) {
	if s.Loading {
		return s, Request{}, false
	}
	s.ResumeText = text
	return s.begin(text)
}

// Regenerate repeats generation for the last submitted text. Without one it
// returns to the input view and requests nothing.
func (s State) Regenerate() (State, Request, bool) {
	if s.Loading {
		return s, Request{}, false
	}
	if s.LastResumeText == "" {
		return s.NewInput(), Request{}, false
	}
	return s.begin(s.LastResumeText)
}

func (s State) begin(text string) (State, Request, bool) {
	s.Loading = true
	s.Error = ""
	s.LastResumeText = text
	s.RealEvents = timeline.Parse(text)
	return s, Request{ResumeText: text, FutureCount: s.FutureCount, SpanYears: s.SpanYears}, true
}

// Succeed records a completed generation and shows the futures view.
func (s State) Succeed(items []types.TimelineEntry) State {
	s.Loading = false
	s.Futures = append([]types.TimelineEntry(nil), items...)
	s.FuturesKey++
	if len(items) == 0 {
		s.Error = NoResultsMessage
	}
	s.Mode = ModeFutures
	return s
}

// Fail records a failed generation. Previously displayed results and the
// active view are kept.
func (s State) Fail(err error) State {
	s.Loading = false
	s.Error = FailureMessage
	if err != nil {
		log.Printf("[session] generation failed: %v", err)
	}
	return s
}

// Run performs req with fetch and applies the completion transition.
func Run(ctx context.Context, s State, req Request, fetch Fetcher) State {
	items, err := fetch(ctx, req)
	if err != nil {
		return s.Fail(err)
	}
	return s.Succeed(items)
}
