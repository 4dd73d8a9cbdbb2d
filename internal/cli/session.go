package cli

import (
	"bufio"
	"context"
	"io"
	"strings"
	"trip-route-cli/internal/domain"

	"go.uber.org/zap"
)

// DefaultSentinel ends the interactive loop when entered at any prompt.
const DefaultSentinel = "q"

type State int

const (
	AwaitingOrigin State = iota
	AwaitingDestination
	Processing
	Done
)

func (s State) String() string {
	switch s {
	case AwaitingOrigin:
		return "AwaitingOrigin"
	case AwaitingDestination:
		return "AwaitingDestination"
	case Processing:
		return "Processing"
	case Done:
		return "Done"
	default:
		return "Unknown"
	}
}

// Evaluator is the part of services.TripEvaluator the session needs.
type Evaluator interface {
	Evaluate(ctx context.Context, origin, destination string) (*domain.TripReport, error)
}

// Session is the interactive prompt loop:
//
//	AwaitingOrigin -> AwaitingDestination -> Processing -> AwaitingOrigin
//
// The sentinel at either prompt, end of input, or a cancelled context moves it
// to Done. Errors while Processing are shown and never end the loop.
type Session struct {
	in        io.Reader
	presenter *Presenter
	evaluator Evaluator
	sentinel  string
	log       *zap.Logger

	state       State
	origin      string
	destination string
	lines       <-chan string
}

func NewSession(in io.Reader, presenter *Presenter, evaluator Evaluator, log *zap.Logger) *Session {
	if log == nil {
		log = zap.NewNop()
	}
	return &Session{
		in:        in,
		presenter: presenter,
		evaluator: evaluator,
		sentinel:  DefaultSentinel,
		log:       log,
		state:     AwaitingOrigin,
	}
}

func (s *Session) State() State { return s.state }

// Run drives the state machine until Done.
func (s *Session) Run(ctx context.Context) error {
	readCtx, cancel := context.WithCancel(ctx)
	defer cancel()
	s.lines = readLines(readCtx, s.in)

	s.presenter.Intro(s.sentinel)
	for s.state != Done {
		s.step(ctx)
	}
	s.presenter.Goodbye()

	return nil
}

func (s *Session) step(ctx context.Context) {
	prev := s.state

	switch s.state {
	case AwaitingOrigin:
		s.origin = ""
		s.destination = ""
		s.presenter.Prompt("Origin")
		s.origin, s.state = s.ask(ctx, AwaitingOrigin, AwaitingDestination)

	case AwaitingDestination:
		s.presenter.Prompt("Destination")
		s.destination, s.state = s.ask(ctx, AwaitingDestination, Processing)

	case Processing:
		report, err := s.evaluator.Evaluate(ctx, s.origin, s.destination)
		switch {
		case err != nil && ctx.Err() != nil:
			s.state = Done
		case err != nil:
			s.log.Debug("trip evaluation failed",
				zap.String("origin", s.origin),
				zap.String("destination", s.destination),
				zap.Error(err),
			)
			s.presenter.Error(err)
			s.state = AwaitingOrigin
		default:
			s.presenter.Report(report)
			s.state = AwaitingOrigin
		}
	}

	if prev != s.state {
		s.log.Debug("session transition", zap.Stringer("from", prev), zap.Stringer("to", s.state))
	}
}

// ask reads one answer. Blank input keeps the current state so the prompt
// repeats.
func (s *Session) ask(ctx context.Context, current, next State) (string, State) {
	var line string
	var ok bool
	select {
	case <-ctx.Done():
	case line, ok = <-s.lines:
	}
	if !ok {
		return "", Done
	}

	answer := strings.TrimSpace(line)
	switch {
	case strings.EqualFold(answer, s.sentinel):
		return "", Done
	case answer == "":
		return "", current
	default:
		return answer, next
	}
}

// readLines feeds in line by line until EOF or ctx is done. The channel is
// closed on EOF so that a closed stdin ends the session.
func readLines(ctx context.Context, in io.Reader) <-chan string {
	out := make(chan string)
	go func() {
		defer close(out)
		sc := bufio.NewScanner(in)
		for sc.Scan() {
			select {
			case out <- sc.Text():
			case <-ctx.Done():
				return
			}
		}
	}()
	return out
}
