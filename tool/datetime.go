package tool

import (
	"context"
	"time"
)

// DateTime reports the current date and time. The clock is injectable so
// tests get stable output.
type DateTime struct {
	now func() time.Time
}

// NewDateTime creates a datetime tool using the system clock.
func NewDateTime() *DateTime {
	return &DateTime{now: time.Now}
}

// NewDateTimeWithClock creates a datetime tool with a custom clock.
func NewDateTimeWithClock(now func() time.Time) *DateTime {
	return &DateTime{now: now}
}

// Name returns the name of the tool.
func (d *DateTime) Name() string {
	return "datetime"
}

// Description returns the description of the tool.
func (d *DateTime) Description() string {
	return "Gets current date and time. Input is ignored."
}

// Call returns the current time formatted as "2006-01-02 15:04:05".
func (d *DateTime) Call(ctx context.Context, _ string) (string, error) {
	return "Current date and time: " + d.now().Format("2006-01-02 15:04:05"), nil
}
