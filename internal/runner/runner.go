// Package runner drives the timed prompt/response loop.
package runner

import (
	"bufio"
	"fmt"
	"io"
	"time"

	"wpm/internal/generator"
	"wpm/internal/model"
)

// Runner executes one timed typing test against an input/output pair.
type Runner struct {
	cfg    model.Config
	words  []string
	gen    *generator.Generator
	clock  Clock
	lines  <-chan lineResult
	out    io.Writer
	errOut io.Writer

	// Decorate, when set, transforms a prompt word for display. The raw
	// word is always what gets recorded and scored.
	Decorate func(string) string
}

type lineResult struct {
	text string
	err  error
}

// New constructs a Runner. The word list must be non-empty.
func New(cfg model.Config, words []string, gen *generator.Generator, clock Clock, in io.Reader, out, errOut io.Writer) (*Runner, error) {
	if len(words) == 0 {
		return nil, fmt.Errorf("word list is empty")
	}
	return &Runner{
		cfg:    cfg,
		words:  words,
		gen:    gen,
		clock:  clock,
		lines:  readLines(in),
		out:    out,
		errOut: errOut,
	}, nil
}

// readLines feeds input lines over a channel so the soft and strict
// deadline paths share one reader. The line terminator is stripped by the
// scanner; everything else is kept verbatim.
func readLines(in io.Reader) <-chan lineResult {
	ch := make(chan lineResult)
	go func() {
		defer close(ch)
		scanner := bufio.NewScanner(in)
		for scanner.Scan() {
			ch <- lineResult{text: scanner.Text()}
		}
		err := scanner.Err()
		if err == nil {
			err = io.EOF
		}
		ch <- lineResult{err: err}
	}()
	return ch
}

// Run executes the test loop until the deadline passes or input ends.
//
// The deadline is checked only between prompts: by default an individual
// read blocks with no timeout, so a session can overrun the configured
// duration while waiting on the final line. Strict mode instead races each
// read against the remaining time and ends the loop when it expires.
func (r *Runner) Run() (model.Session, error) {
	var session model.Session
	deadline := r.clock.Now().Add(r.cfg.Duration)
	r.debugf("dictionary size: %d", len(r.words))
	r.debugf("deadline: %s", deadline.Format(time.RFC3339Nano))

	for {
		now := r.clock.Now()
		if !now.Before(deadline) {
			break
		}
		idx, word := r.gen.Pick(r.words)
		session.Prompted = append(session.Prompted, word)
		r.debugf("draw %d: index %d word %q at %s",
			len(session.Prompted), idx, word, now.Format(time.RFC3339Nano))

		display := word
		if r.Decorate != nil {
			display = r.Decorate(word)
		}
		if _, err := fmt.Fprintln(r.out, display); err != nil {
			return model.Session{}, fmt.Errorf("failed to write prompt: %w", err)
		}

		typed, ok := r.readLine(deadline)
		if !ok {
			// The last prompt went unanswered; drop it so the
			// sequences stay parallel for scoring.
			session.Prompted = session.Prompted[:len(session.Typed)]
			break
		}
		session.Typed = append(session.Typed, typed)
	}
	return session, nil
}

func (r *Runner) readLine(deadline time.Time) (string, bool) {
	if !r.cfg.Strict {
		res, ok := <-r.lines
		if !ok || res.err != nil {
			r.debugf("input ended: %v", errOrClosed(res, ok))
			return "", false
		}
		return res.text, true
	}

	remaining := deadline.Sub(r.clock.Now())
	if remaining <= 0 {
		return "", false
	}
	timer := time.NewTimer(remaining)
	defer timer.Stop()
	select {
	case res, ok := <-r.lines:
		if !ok || res.err != nil {
			r.debugf("input ended: %v", errOrClosed(res, ok))
			return "", false
		}
		return res.text, true
	case <-timer.C:
		r.debugf("hard deadline reached mid-read")
		return "", false
	}
}

func errOrClosed(res lineResult, ok bool) error {
	if !ok {
		return io.ErrClosedPipe
	}
	return res.err
}

func (r *Runner) debugf(format string, args ...any) {
	if !r.cfg.Debug {
		return
	}
	if _, err := fmt.Fprintf(r.errOut, "debug: "+format+"\n", args...); err != nil {
		// Best-effort diagnostics.
		_ = err
	}
}
