package terraform

import (
	"fmt"
	"time"
)

// ConfigurationError reports a request the runner refused before spawning
// any terraform process. Never retried.
type ConfigurationError struct {
	Reason string
}

func (e ConfigurationError) Error() string {
	return fmt.Sprintf("Invalid request: %s", e.Reason)
}

// ExecutionError reports a terraform process that exited with a status the
// runner does not recognize as benign.
type ExecutionError struct {
	ExitCode int
	Stderr   string
}

func (e ExecutionError) Error() string {
	return fmt.Sprintf("terraform exited with status %d.\nStderr: %s", e.ExitCode, e.Stderr)
}

// ParseError reports malformed machine-readable terraform output.
type ParseError struct {
	Raw string
	Err error
}

func (e ParseError) Error() string {
	return fmt.Sprintf("Failed to parse terraform output.\nError: %s\nOutput: %s", e.Err, e.Raw)
}

// TimeoutError reports a terraform process that was killed after exceeding
// the allotted time.
type TimeoutError struct {
	Duration time.Duration
}

func (e TimeoutError) Error() string {
	return fmt.Sprintf("terraform did not exit within %s, process group killed", e.Duration)
}

// DriftError reports that check mode found changes pending, i.e. the
// provisioned infrastructure has drifted from the declared configuration.
type DriftError struct {
	Workspace string
}

func (e DriftError) Error() string {
	return fmt.Sprintf("Drift detected: workspace '%s' has changes pending", e.Workspace)
}
