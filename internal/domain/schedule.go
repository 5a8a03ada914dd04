package domain

import (
	"errors"
	"fmt"
)

var ErrScheduleNotFound = errors.New("no schedule matches the label")

// ScheduleSlot is a resolved schedule identifier for a given label.
type ScheduleSlot struct {
	ID    string
	Label string
}

// AmbiguousScheduleError reports a label filter that matched more than
// one schedule record. The caller must not pick one silently.
type AmbiguousScheduleError struct {
	Label string
	Count int
}

func (e *AmbiguousScheduleError) Error() string {
	return fmt.Sprintf("schedule label %q matches %d records", e.Label, e.Count)
}
