// Package stats scores sessions and renders the result report.
package stats

import (
	"fmt"
	"io"

	"wpm/internal/model"
)

// Score counts exact-match positions and computes words per minute as
// correct hits normalized to a 60-second rate. Pure: the session is only
// read, never mutated.
func Score(session model.Session, durationSeconds int) model.Result {
	n := len(session.Prompted)
	if len(session.Typed) < n {
		n = len(session.Typed)
	}
	correct := 0
	for i := 0; i < n; i++ {
		if session.Prompted[i] == session.Typed[i] {
			correct++
		}
	}
	wpm := 0.0
	if durationSeconds > 0 {
		wpm = float64(correct) / (float64(durationSeconds) / 60.0)
	}
	return model.Result{
		Correct:         correct,
		DurationSeconds: durationSeconds,
		WPM:             wpm,
	}
}

// RenderReport writes the final report line.
func RenderReport(w io.Writer, res model.Result) error {
	_, err := fmt.Fprintf(w, "%d words correct in %d seconds for a WPM of %.2f\n",
		res.Correct, res.DurationSeconds, res.WPM)
	if err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	return nil
}
