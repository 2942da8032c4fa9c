package models

// Result captures everything the CI platform consumes from a single
// invocation: the exit status mapping, the plan/check "changes detected"
// signal, and any structured outputs.
type Result struct {
	ExitCode        int                    `json:"exit_code"`
	Workspace       string                 `json:"workspace,omitempty"`
	ChangesDetected bool                   `json:"changes_detected,omitempty"`
	Outputs         map[string]interface{} `json:"outputs,omitempty"`
	Versions        map[string]string      `json:"versions,omitempty"`
}
