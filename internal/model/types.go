// Package model defines shared data structures.
package model

import "time"

// Config defines test settings resolved from flags and the config file.
type Config struct {
	Duration time.Duration
	Debug    bool
	Strict   bool
}

// DurationSeconds returns the configured duration in whole seconds.
func (c Config) DurationSeconds() int {
	return int(c.Duration / time.Second)
}

// Session records one test run as two parallel sequences. Typed[i] is the
// response to Prompted[i]; the sequences are equal length at scoring time.
type Session struct {
	Prompted []string
	Typed    []string
}

// Result summarizes a scored session.
type Result struct {
	Correct         int
	DurationSeconds int
	WPM             float64
}
