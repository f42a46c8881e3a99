package task

import "errors"

// No-op sentinels. Lifecycle operations never corrupt state: on any of
// these the returned character is the input, unchanged. Callers at the
// HTTP boundary treat them as "re-render current state", not failures.
var (
	ErrTaskNotFound        = errors.New("task: not found")
	ErrAlreadyCompleted    = errors.New("task: already completed")
	ErrNotScheduled        = errors.New("task: not scheduled today")
	ErrDirectionNotAllowed = errors.New("task: direction not allowed for habit")
)
