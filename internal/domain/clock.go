package domain

import "time"

// Clock supplies the current wall time to operations that stamp
// entities (sale timestamps, createdAt dates). Injecting it keeps
// every timestamped operation reproducible under test.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the real wall clock.
type SystemClock struct{}

// Now returns the current local time.
func (SystemClock) Now() time.Time { return time.Now() }

// Today formats the clock's current date in the document date layout.
func Today(c Clock) string { return c.Now().Format(DateLayout) }

// TimeOfDay formats the clock's current time in the document time
// layout (12-hour with AM/PM).
func TimeOfDay(c Clock) string { return c.Now().Format(TimeLayout) }
