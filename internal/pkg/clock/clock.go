// Package clock abstracts the wall clock so code that stamps and expires
// build drafts can be driven against a fixed instant in tests.
package clock

import "time"

//go:generate mockgen -destination=mock/mock.go -package=mockclock github.com/rubika-tools/planner-api/internal/pkg/clock Clock

// Clock supplies the current time.
type Clock interface {
	Now() time.Time
}

// Real reads the system clock.
type Real struct{}

// Now returns the current time.
func (c *Real) Now() time.Time {
	return time.Now()
}

// New returns a Clock backed by the system time.
func New() Clock {
	return &Real{}
}
