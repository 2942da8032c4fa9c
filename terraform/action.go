package terraform

import (
	"errors"
	"fmt"
	"io/ioutil"
	"os"
	"path/filepath"
	"strings"

	"github.com/terraform-ci/terraform-action/logger"
	"github.com/terraform-ci/terraform-action/models"
	"github.com/terraform-ci/terraform-action/namer"
	"github.com/terraform-ci/terraform-action/storage"
)

const nameClashRetries = 10

// Action runs a single CI step against the terraform CLI. It owns
// workspace lifecycle and the mapping from process outcomes to CI results;
// it does not serialize concurrent jobs sharing a workspace, callers must.
type Action struct {
	Client    Client
	Namer     namer.Namer
	PlanStore storage.Storage
	Logger    logger.Logger
}

// Run executes the request and stamps the result with the exit status the
// CI platform should report.
func (a Action) Run(req models.Request) (models.Result, error) {
	result, err := a.dispatch(req)
	result.ExitCode = exitStatus(err)
	return result, err
}

func exitStatus(err error) int {
	if err == nil {
		return 0
	}
	var execErr ExecutionError
	if errors.As(err, &execErr) && execErr.ExitCode > 0 {
		return execErr.ExitCode
	}
	return 1
}

func (a Action) dispatch(req models.Request) (models.Result, error) {
	if err := req.Validate(); err != nil {
		return models.Result{}, ConfigurationError{Reason: err.Error()}
	}
	if (req.Mode == models.ModeApply || req.Mode == models.ModeDestroy) && req.AutoApprove == false {
		return models.Result{}, ConfigurationError{
			Reason: fmt.Sprintf("`auto_approve` must be true to run %s unattended", req.Mode),
		}
	}

	switch req.Mode {
	case models.ModeVersion:
		return a.version()
	case models.ModeFmt:
		return a.runFmt()
	case models.ModeFmtCheck:
		return a.fmtCheck()
	case models.ModeValidate:
		return a.validate()
	}

	// every remaining mode touches backend state
	if err := a.Client.InitWithBackend(); err != nil {
		return models.Result{}, err
	}

	switch req.Mode {
	case models.ModeNewWorkspace:
		return a.newWorkspace(req)
	case models.ModeDestroyWorkspace:
		return a.destroyWorkspace(req.WorkspaceName())
	}

	workspace := req.WorkspaceName()
	if err := a.ensureWorkspace(workspace); err != nil {
		return models.Result{}, err
	}

	switch req.Mode {
	case models.ModePlan:
		return a.plan(workspace)
	case models.ModeCheck:
		return a.check(workspace)
	case models.ModeApply:
		return a.apply(workspace)
	case models.ModeDestroy:
		return a.destroy(workspace)
	case models.ModeOutput:
		return a.output(workspace)
	}

	return models.Result{}, ConfigurationError{Reason: fmt.Sprintf("Unknown mode '%s'", req.Mode)}
}

func (a Action) plan(workspace string) (models.Result, error) {
	a.Logger.InfoSection("Terraform Plan")
	defer a.Logger.EndSection()

	planOutPath := ""
	var planFile PlanFile
	if a.PlanStore != nil {
		tmpDir, err := ioutil.TempDir("", "terraform-action-plan")
		if err != nil {
			return models.Result{}, fmt.Errorf("Failed to create tmp dir: %s", err)
		}
		defer os.RemoveAll(tmpDir)

		planFile = a.planFileFor(workspace, tmpDir)
		planOutPath = planFile.LocalPath
	}

	changesDetected, err := a.Client.Plan(planOutPath)
	if err != nil {
		a.Logger.Error("Failed To Run Terraform Plan!")
		return models.Result{}, err
	}

	if changesDetected && a.PlanStore != nil {
		if err := planFile.Upload(); err != nil {
			return models.Result{}, err
		}
		a.Logger.Info(fmt.Sprintf("Saved plan file to '%s'", planFile.RemotePath))
	}

	if changesDetected {
		a.Logger.Warn("Plan Finished: Changes Pending")
	} else {
		a.Logger.Success("Plan Finished: No Changes")
	}

	return models.Result{Workspace: workspace, ChangesDetected: changesDetected}, nil
}

// check is plan with the inverse success policy: pending changes mean the
// infrastructure drifted, which fails the step.
func (a Action) check(workspace string) (models.Result, error) {
	a.Logger.InfoSection("Terraform Drift Check")
	defer a.Logger.EndSection()

	changesDetected, err := a.Client.Plan("")
	if err != nil {
		return models.Result{}, err
	}

	if changesDetected {
		a.Logger.Error("Drift Detected!")
		return models.Result{Workspace: workspace, ChangesDetected: true}, DriftError{Workspace: workspace}
	}

	a.Logger.Success("No Drift Detected")
	return models.Result{Workspace: workspace}, nil
}

func (a Action) apply(workspace string) (models.Result, error) {
	a.Logger.InfoSection("Terraform Apply")
	defer a.Logger.EndSection()

	if a.PlanStore != nil {
		tmpDir, err := ioutil.TempDir("", "terraform-action-apply")
		if err != nil {
			return models.Result{}, fmt.Errorf("Failed to create tmp dir: %s", err)
		}
		defer os.RemoveAll(tmpDir)

		planFile := a.planFileFor(workspace, tmpDir)
		planExists, err := planFile.Exists()
		if err != nil {
			return models.Result{}, err
		}
		if planExists {
			return a.applySavedPlan(workspace, planFile)
		}
	}

	if err := a.Client.Apply(); err != nil {
		a.Logger.Error("Failed To Run Terraform Apply!")
		return models.Result{}, err
	}

	return a.applyResult(workspace)
}

func (a Action) applySavedPlan(workspace string, planFile PlanFile) (models.Result, error) {
	if err := planFile.Download(); err != nil {
		return models.Result{}, err
	}
	a.Logger.Info(fmt.Sprintf("Applying saved plan '%s'", planFile.RemotePath))

	if err := a.Client.ApplyPlanFile(planFile.LocalPath); err != nil {
		a.Logger.Error("Failed To Run Terraform Apply!")
		return models.Result{}, err
	}

	// the plan is single-use, a stale one must never be applied twice
	if err := planFile.Delete(); err != nil {
		return models.Result{}, err
	}

	return a.applyResult(workspace)
}

func (a Action) applyResult(workspace string) (models.Result, error) {
	outputs, err := a.Client.Output()
	if err != nil {
		return models.Result{}, err
	}

	a.Logger.Success("Successfully Ran Terraform Apply!")
	return models.Result{Workspace: workspace, Outputs: outputs}, nil
}

func (a Action) destroy(workspace string) (models.Result, error) {
	a.Logger.WarnSection("Terraform Destroy")
	defer a.Logger.EndSection()

	if err := a.Client.Destroy(); err != nil {
		a.Logger.Error("Failed To Run Terraform Destroy!")
		return models.Result{}, err
	}

	a.Logger.Success("Successfully Ran Terraform Destroy!")
	return models.Result{Workspace: workspace}, nil
}

func (a Action) output(workspace string) (models.Result, error) {
	outputs, err := a.Client.Output()
	if err != nil {
		return models.Result{}, err
	}

	return models.Result{Workspace: workspace, Outputs: outputs}, nil
}

func (a Action) validate() (models.Result, error) {
	if err := a.Client.InitWithoutBackend(); err != nil {
		return models.Result{}, err
	}

	if err := a.Client.Validate(); err != nil {
		a.Logger.Error("Configuration Is Invalid!")
		return models.Result{}, err
	}

	a.Logger.Success("Configuration Is Valid")
	return models.Result{}, nil
}

func (a Action) runFmt() (models.Result, error) {
	if err := a.Client.Fmt(); err != nil {
		return models.Result{}, err
	}
	return models.Result{}, nil
}

func (a Action) fmtCheck() (models.Result, error) {
	files, err := a.Client.FmtCheck()
	if err != nil {
		return models.Result{}, err
	}

	if len(files) > 0 {
		a.Logger.Error("The following files are not properly formatted:")
		for _, file := range files {
			a.Logger.Error("  " + file)
		}
		return models.Result{ChangesDetected: true}, ExecutionError{
			ExitCode: 1,
			Stderr:   fmt.Sprintf("unformatted files: %s", strings.Join(files, ", ")),
		}
	}

	a.Logger.Success("All Files Are Properly Formatted")
	return models.Result{}, nil
}

func (a Action) version() (models.Result, error) {
	raw, err := a.Client.Version()
	if err != nil {
		return models.Result{}, err
	}

	versions, err := ParseVersions(raw)
	if err != nil {
		return models.Result{}, err
	}

	return models.Result{Versions: versions}, nil
}

func (a Action) newWorkspace(req models.Request) (models.Result, error) {
	name := req.WorkspaceName()

	existing, err := a.Client.WorkspaceList()
	if err != nil {
		return models.Result{}, err
	}

	if req.GenerateRandomWorkspace {
		name, err = a.randomWorkspaceName(existing)
		if err != nil {
			return models.Result{}, err
		}
	} else if containsWorkspace(existing, name) {
		if req.StrictNew {
			return models.Result{}, ConfigurationError{Reason: fmt.Sprintf("Workspace '%s' already exists", name)}
		}
		a.Logger.Info(fmt.Sprintf("Workspace '%s' already exists, nothing to do", name))
		return models.Result{Workspace: name}, nil
	}

	if err := a.Client.WorkspaceNew(name); err != nil {
		return models.Result{}, err
	}

	a.Logger.Success(fmt.Sprintf("Created workspace '%s'", name))
	return models.Result{Workspace: name}, nil
}

func (a Action) destroyWorkspace(name string) (models.Result, error) {
	if name == models.DefaultWorkspace {
		return models.Result{}, ConfigurationError{Reason: "Cannot delete the 'default' workspace"}
	}

	existing, err := a.Client.WorkspaceList()
	if err != nil {
		return models.Result{}, err
	}
	if !containsWorkspace(existing, name) {
		a.Logger.Info(fmt.Sprintf("Workspace '%s' does not exist, nothing to do", name))
		return models.Result{Workspace: name}, nil
	}

	if err := a.Client.WorkspaceDelete(name); err != nil {
		return models.Result{}, err
	}

	a.Logger.Success(fmt.Sprintf("Deleted workspace '%s'", name))
	return models.Result{Workspace: name}, nil
}

func (a Action) ensureWorkspace(name string) error {
	existing, err := a.Client.WorkspaceList()
	if err != nil {
		return err
	}

	if !containsWorkspace(existing, name) {
		a.Logger.Warn(fmt.Sprintf("Workspace '%s' does not exist, creating...", name))
		// `workspace new` selects the new workspace as a side effect
		return a.Client.WorkspaceNew(name)
	}

	return a.Client.WorkspaceSelect(name)
}

func (a Action) randomWorkspaceName(existing []string) (string, error) {
	for i := 0; i < nameClashRetries; i++ {
		candidate := a.Namer.RandomName()
		if !containsWorkspace(existing, candidate) {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("Failed to generate a non-clashing workspace name after %d attempts", nameClashRetries)
}

func (a Action) planFileFor(workspace string, tmpDir string) PlanFile {
	filename := fmt.Sprintf("%s.tfplan", workspace)
	return PlanFile{
		LocalPath:     filepath.Join(tmpDir, filename),
		RemotePath:    filename,
		StorageDriver: a.PlanStore,
	}
}

func containsWorkspace(workspaces []string, name string) bool {
	for _, workspace := range workspaces {
		if workspace == name {
			return true
		}
	}
	return false
}
