// Package clock supplies the current time to the services so that rules
// depending on "now" can be exercised with a fixed instant.
package clock

import "time"

type Clock interface {
	Now() time.Time
}

type System struct{}

func (System) Now() time.Time {
	return time.Now().UTC()
}

type Fixed struct {
	At time.Time
}

func (f Fixed) Now() time.Time {
	return f.At
}

// Func adapts a plain function.
type Func func() time.Time

func (f Func) Now() time.Time {
	return f()
}
