package platform

import (
	"errors"
	"fmt"
)

// ErrChannelNotFound indicates the upstream returned no items for a channel
// or playlist lookup.
var ErrChannelNotFound = errors.New("channel not found")

// StageError reports a failed upstream call, tagged with the pipeline stage
// and the identifier being fetched. One channel's StageError never aborts the
// run; the caller logs it and moves on to the next channel.
type StageError struct {
	Stage string // "overview", "uploads", "listing", "details"
	ID    string
	Err   error
}

func (e *StageError) Error() string {
	return fmt.Sprintf("fetching %s for %s: %v", e.Stage, e.ID, e.Err)
}

func (e *StageError) Unwrap() error {
	return e.Err
}
