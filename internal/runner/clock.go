package runner

import "time"

// Clock abstracts the time source so tests can simulate deadline expiry.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time {
	return time.Now()
}

// SystemClock returns the wall-clock time source.
func SystemClock() Clock {
	return systemClock{}
}
