package runner

import (
	"bytes"
	"io"
	"reflect"
	"strings"
	"testing"
	"time"

	"wpm/internal/generator"
	"wpm/internal/model"
)

// stepClock advances by a fixed step on every Now call, so deadline expiry
// can be simulated without real delays.
type stepClock struct {
	now  time.Time
	step time.Duration
}

func (c *stepClock) Now() time.Time {
	t := c.now
	c.now = c.now.Add(c.step)
	return t
}

func newTestRunner(t *testing.T, cfg model.Config, words []string, clock Clock, input string) (*Runner, *bytes.Buffer) {
	t.Helper()
	var out bytes.Buffer
	r, err := New(cfg, words, generator.NewSeeded(1), clock, strings.NewReader(input), &out, io.Discard)
	if err != nil {
		t.Fatalf("new runner: %v", err)
	}
	return r, &out
}

func TestEmptyWordListFails(t *testing.T) {
	_, err := New(model.Config{Duration: time.Second}, nil, generator.NewSeeded(1), SystemClock(), strings.NewReader(""), io.Discard, io.Discard)
	if err == nil {
		t.Fatalf("expected error for empty word list")
	}
}

func TestZeroDurationProducesEmptySession(t *testing.T) {
	clock := &stepClock{now: time.Unix(0, 0), step: 100 * time.Millisecond}
	r, out := newTestRunner(t, model.Config{Duration: 0}, []string{"cat"}, clock, "cat\n")
	session, err := r.Run()
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if len(session.Prompted) != 0 || len(session.Typed) != 0 {
		t.Fatalf("expected empty session, got %+v", session)
	}
	if out.Len() != 0 {
		t.Fatalf("expected no prompts written, got %q", out.String())
	}
}

func TestDeadlineBoundsPromptCount(t *testing.T) {
	// One Now call resolves the deadline, one per loop check: with a
	// 400ms step and a 1s duration exactly two prompts fit.
	clock := &stepClock{now: time.Unix(0, 0), step: 400 * time.Millisecond}
	r, out := newTestRunner(t, model.Config{Duration: time.Second}, []string{"cat"}, clock, "cat\nfish\n")
	session, err := r.Run()
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if !reflect.DeepEqual(session.Prompted, []string{"cat", "cat"}) {
		t.Fatalf("unexpected prompts: %v", session.Prompted)
	}
	if !reflect.DeepEqual(session.Typed, []string{"cat", "fish"}) {
		t.Fatalf("unexpected typed lines: %v", session.Typed)
	}
	if out.String() != "cat\ncat\n" {
		t.Fatalf("unexpected prompt output: %q", out.String())
	}
}

func TestInputExhaustionKeepsSequencesParallel(t *testing.T) {
	clock := &stepClock{now: time.Unix(0, 0), step: time.Millisecond}
	r, _ := newTestRunner(t, model.Config{Duration: time.Minute}, []string{"cat"}, clock, "a\nb\n")
	session, err := r.Run()
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if len(session.Prompted) != len(session.Typed) {
		t.Fatalf("sequences diverged: %d prompted, %d typed", len(session.Prompted), len(session.Typed))
	}
	if !reflect.DeepEqual(session.Typed, []string{"a", "b"}) {
		t.Fatalf("unexpected typed lines: %v", session.Typed)
	}
}

func TestTypedLinesKeepWhitespaceAndCase(t *testing.T) {
	clock := &stepClock{now: time.Unix(0, 0), step: 600 * time.Millisecond}
	r, _ := newTestRunner(t, model.Config{Duration: time.Second}, []string{"cat"}, clock, "  Cat \n")
	session, err := r.Run()
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if len(session.Typed) != 1 || session.Typed[0] != "  Cat " {
		t.Fatalf("expected raw line preserved, got %v", session.Typed)
	}
}

func TestSeededRunsProduceIdenticalPrompts(t *testing.T) {
	words := []string{"cat", "dog", "fish", "bird", "word"}
	input := strings.Repeat("x\n", 10)
	run := func() []string {
		clock := &stepClock{now: time.Unix(0, 0), step: 200 * time.Millisecond}
		r, err := New(model.Config{Duration: time.Second}, words, generator.NewSeeded(42), clock, strings.NewReader(input), io.Discard, io.Discard)
		if err != nil {
			t.Fatalf("new runner: %v", err)
		}
		session, err := r.Run()
		if err != nil {
			t.Fatalf("run: %v", err)
		}
		return session.Prompted
	}
	first := run()
	second := run()
	if len(first) == 0 {
		t.Fatalf("expected at least one prompt")
	}
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("prompt sequences diverged:\n%v\n%v", first, second)
	}
}

func TestDecorateChangesDisplayOnly(t *testing.T) {
	clock := &stepClock{now: time.Unix(0, 0), step: 600 * time.Millisecond}
	r, out := newTestRunner(t, model.Config{Duration: time.Second}, []string{"cat"}, clock, "cat\n")
	r.Decorate = strings.ToUpper
	session, err := r.Run()
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if out.String() != "CAT\n" {
		t.Fatalf("expected decorated prompt, got %q", out.String())
	}
	if len(session.Prompted) != 1 || session.Prompted[0] != "cat" {
		t.Fatalf("expected raw word recorded, got %v", session.Prompted)
	}
}

func TestStrictModeEndsBlockedRead(t *testing.T) {
	pr, pw := io.Pipe()
	t.Cleanup(func() {
		_ = pw.Close()
	})
	cfg := model.Config{Duration: 50 * time.Millisecond, Strict: true}
	r, err := New(cfg, []string{"cat"}, generator.NewSeeded(1), SystemClock(), pr, io.Discard, io.Discard)
	if err != nil {
		t.Fatalf("new runner: %v", err)
	}
	done := make(chan model.Session, 1)
	go func() {
		session, rerr := r.Run()
		if rerr != nil {
			t.Errorf("run: %v", rerr)
		}
		done <- session
	}()
	select {
	case session := <-done:
		if len(session.Prompted) != len(session.Typed) {
			t.Fatalf("sequences diverged: %+v", session)
		}
		if len(session.Typed) != 0 {
			t.Fatalf("expected no typed lines, got %v", session.Typed)
		}
	case <-time.After(2 * time.Second):
		t.Fatalf("strict run did not finish after deadline")
	}
}

func TestDebugModeDoesNotConsumeClockTicks(t *testing.T) {
	// The per-draw trace reuses the loop's timestamp, so enabling debug
	// must not change how many prompts fit before the deadline.
	input := strings.Repeat("x\n", 10)
	run := func(debug bool) int {
		clock := &stepClock{now: time.Unix(0, 0), step: 200 * time.Millisecond}
		cfg := model.Config{Duration: time.Second, Debug: debug}
		r, err := New(cfg, []string{"cat"}, generator.NewSeeded(1), clock, strings.NewReader(input), io.Discard, io.Discard)
		if err != nil {
			t.Fatalf("new runner: %v", err)
		}
		session, err := r.Run()
		if err != nil {
			t.Fatalf("run: %v", err)
		}
		return len(session.Prompted)
	}
	plain := run(false)
	debugged := run(true)
	if plain != debugged {
		t.Fatalf("prompt count changed with debug: %d vs %d", plain, debugged)
	}
	if plain != 4 {
		t.Fatalf("expected 4 prompts with a 200ms step and 1s deadline, got %d", plain)
	}
}

func TestDebugTraceGoesToErrOut(t *testing.T) {
	clock := &stepClock{now: time.Unix(0, 0), step: time.Second}
	var out, errOut bytes.Buffer
	cfg := model.Config{Duration: 10 * time.Second, Debug: true}
	r, err := New(cfg, []string{"cat"}, generator.NewSeeded(1), clock, strings.NewReader("cat\n"), &out, &errOut)
	if err != nil {
		t.Fatalf("new runner: %v", err)
	}
	if _, err := r.Run(); err != nil {
		t.Fatalf("run: %v", err)
	}
	trace := errOut.String()
	if !strings.Contains(trace, "dictionary size: 1") {
		t.Fatalf("expected dictionary size in trace, got %q", trace)
	}
	if !strings.Contains(trace, "index 0") {
		t.Fatalf("expected draw index in trace, got %q", trace)
	}
	if strings.Contains(out.String(), "debug:") {
		t.Fatalf("debug trace leaked to stdout: %q", out.String())
	}
}
