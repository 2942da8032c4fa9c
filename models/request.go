package models

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/terraform-ci/terraform-action/storage"
)

type Mode string

const (
	ModePlan             Mode = "plan"
	ModeApply            Mode = "apply"
	ModeDestroy          Mode = "destroy"
	ModeOutput           Mode = "output"
	ModeValidate         Mode = "validate"
	ModeFmt              Mode = "fmt"
	ModeFmtCheck         Mode = "fmt-check"
	ModeNewWorkspace     Mode = "new-workspace"
	ModeDestroyWorkspace Mode = "destroy-workspace"
	ModeVersion          Mode = "version"
	ModeCheck            Mode = "check"
)

const DefaultWorkspace = "default"

// KnownModes lists every action mode in the order they appear in the docs.
var KnownModes = []Mode{
	ModePlan,
	ModeApply,
	ModeDestroy,
	ModeOutput,
	ModeValidate,
	ModeFmt,
	ModeFmtCheck,
	ModeNewWorkspace,
	ModeDestroyWorkspace,
	ModeVersion,
	ModeCheck,
}

// Request describes a single CI step invocation. It is built once from the
// step's declared inputs and never mutated after validation.
type Request struct {
	Mode                    Mode                   `json:"mode"`
	Path                    string                 `json:"path"`
	Workspace               string                 `json:"workspace,omitempty"`                 // optional
	Vars                    map[string]interface{} `json:"vars,omitempty"`                      // optional
	VarFiles                []string               `json:"var_files,omitempty"`                 // optional
	Env                     map[string]string      `json:"env,omitempty"`                       // optional
	AutoApprove             bool                   `json:"auto_approve,omitempty"`              // optional
	Targets                 []string               `json:"targets,omitempty"`                   // optional
	StrictNew               bool                   `json:"strict_new,omitempty"`                // optional
	GenerateRandomWorkspace bool                   `json:"generate_random_workspace,omitempty"` // optional
	BackendType             string                 `json:"backend_type,omitempty"`              // optional
	BackendConfig           map[string]interface{} `json:"backend_config,omitempty"`            // optional
	PluginDir               string                 `json:"plugin_dir,omitempty"`                // optional
	PrivateKey              string                 `json:"private_key,omitempty"`               // optional
	PlanStorage             storage.Model          `json:"plan_storage,omitempty"`              // optional
	Timeout                 time.Duration          `json:"-"`
}

// workspace names become part of backend state paths, so restrict them to
// the characters every backend accepts
var workspacePattern = regexp.MustCompile(`^[a-zA-Z0-9_-]+$`)

func (r Request) Validate() error {
	if r.Path == "" {
		return fmt.Errorf("Missing required field `path`")
	}

	known := false
	for _, mode := range KnownModes {
		if mode == r.Mode {
			known = true
			break
		}
	}
	if !known {
		names := make([]string, len(KnownModes))
		for i, mode := range KnownModes {
			names[i] = fmt.Sprintf("'%s'", mode)
		}
		return fmt.Errorf("Unknown value for `mode`: '%s', supported values: %s", r.Mode, strings.Join(names, ", "))
	}

	if !workspacePattern.MatchString(r.WorkspaceName()) {
		return fmt.Errorf("Invalid workspace name '%s', must match '%s'", r.Workspace, workspacePattern.String())
	}

	for _, target := range r.Targets {
		if strings.TrimSpace(target) == "" {
			return fmt.Errorf("`targets` must not contain blank entries")
		}
	}

	if r.GenerateRandomWorkspace && r.Mode != ModeNewWorkspace {
		return fmt.Errorf("`generate_random_workspace` is only valid with mode '%s'", ModeNewWorkspace)
	}

	return nil
}

// WorkspaceName returns the requested workspace, falling back to the CLI's
// default workspace when the input was omitted.
func (r Request) WorkspaceName() string {
	if r.Workspace == "" {
		return DefaultWorkspace
	}
	return r.Workspace
}
