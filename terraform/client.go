package terraform

import (
	"bufio"
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/ioutil"
	"os"
	"os/exec"
	"path"
	"strings"

	"github.com/terraform-ci/terraform-action/models"
	"github.com/terraform-ci/terraform-action/runner"

	yamlConverter "github.com/ghodss/yaml"
	yaml "gopkg.in/yaml.v2"
)

//go:generate counterfeiter . Client

type Client interface {
	InitWithBackend() error
	InitWithoutBackend() error
	Plan(string) (bool, error)
	Apply() error
	ApplyPlanFile(string) error
	Destroy() error
	Output() (map[string]interface{}, error)
	Validate() error
	Fmt() error
	FmtCheck() ([]string, error)
	Version() (string, error)
	WorkspaceList() ([]string, error)
	WorkspaceNew(string) error
	WorkspaceSelect(string) error
	WorkspaceDelete(string) error
}

// defaultChangesExitCode is the `-detailed-exitcode` convention: 0 means
// clean, 2 means the plan succeeded with changes pending.
const defaultChangesExitCode = 2

type client struct {
	model           models.Request
	logWriter       io.Writer
	changesExitCode int
}

func NewClient(model models.Request, logWriter io.Writer) Client {
	return client{
		model:           model,
		logWriter:       logWriter,
		changesExitCode: defaultChangesExitCode,
	}
}

// NewClientWithConvention overrides the exit status treated as "changes
// pending", for CLI versions that deviate from the detailed-exitcode
// default.
func NewClientWithConvention(model models.Request, logWriter io.Writer, changesExitCode int) Client {
	return client{
		model:           model,
		logWriter:       logWriter,
		changesExitCode: changesExitCode,
	}
}

func (c client) InitWithBackend() error {
	if c.model.BackendType != "" {
		if err := c.writeBackendOverride(); err != nil {
			return err
		}
	}

	initCmd := c.terraformCmd(c.initArgs(true), nil)
	if output, err := initCmd.CombinedOutput(); err != nil {
		return c.translateError(err, output)
	}

	return nil
}

func (c client) InitWithoutBackend() error {
	initCmd := c.terraformCmd(c.initArgs(false), nil)
	if output, err := initCmd.CombinedOutput(); err != nil {
		return c.translateError(err, output)
	}

	return nil
}

func (c client) initArgs(backend bool) []string {
	initArgs := []string{
		"init",
		"-input=false",
		"-get=true",
		fmt.Sprintf("-backend=%t", backend),
	}
	if backend {
		for key, value := range c.model.BackendConfig {
			initArgs = append(initArgs, fmt.Sprintf("-backend-config=%s=%v", key, value))
		}
	}
	if c.model.PluginDir != "" {
		initArgs = append(initArgs, fmt.Sprintf("-plugin-dir=%s", c.model.PluginDir))
	}
	return initArgs
}

func (c client) writeBackendOverride() error {
	backendPath := path.Join(c.model.Path, "action_backend_override.tf")
	backendContent := fmt.Sprintf(`terraform { backend "%s" {} }`, c.model.BackendType)
	return ioutil.WriteFile(backendPath, []byte(backendContent), 0755)
}

// Plan reports whether changes are pending. A non-zero exit matching the
// changes convention is a successful plan, not an error.
func (c client) Plan(planOutPath string) (bool, error) {
	varFile, err := c.writeVarFile()
	if err != nil {
		return false, err
	}
	defer os.RemoveAll(varFile)

	planCmd := c.terraformCmd(c.planArgs(planOutPath, varFile), nil)
	var stderr bytes.Buffer
	planCmd.Stdout = c.logWriter
	planCmd.Stderr = io.MultiWriter(c.logWriter, &stderr)

	err = planCmd.Run()
	if err == nil {
		return false, nil
	}
	if exitErr, ok := err.(*exec.ExitError); ok && exitErr.ExitCode() == c.changesExitCode {
		return true, nil
	}

	return false, c.translateError(err, stderr.Bytes())
}

func (c client) planArgs(planOutPath string, varFile string) []string {
	planArgs := []string{
		"plan",
		"-input=false", // do not prompt for inputs
		"-detailed-exitcode",
	}
	if planOutPath != "" {
		planArgs = append(planArgs, fmt.Sprintf("-out=%s", planOutPath))
	}
	planArgs = append(planArgs, fmt.Sprintf("-var-file=%s", varFile))
	planArgs = append(planArgs, c.targetArgs()...)

	return planArgs
}

func (c client) Apply() error {
	varFile, err := c.writeVarFile()
	if err != nil {
		return err
	}
	defer os.RemoveAll(varFile)

	return c.runStreaming(c.applyArgs(varFile))
}

func (c client) applyArgs(varFile string) []string {
	applyArgs := []string{
		"apply",
		"-input=false", // do not prompt for inputs
		"-auto-approve",
		fmt.Sprintf("-var-file=%s", varFile),
	}
	applyArgs = append(applyArgs, c.targetArgs()...)

	return applyArgs
}

// ApplyPlanFile applies a previously saved plan. Variables are baked into
// the plan file, no var file is passed.
func (c client) ApplyPlanFile(planPath string) error {
	return c.runStreaming([]string{
		"apply",
		"-input=false",
		"-auto-approve",
		planPath,
	})
}

func (c client) Destroy() error {
	varFile, err := c.writeVarFile()
	if err != nil {
		return err
	}
	defer os.RemoveAll(varFile)

	return c.runStreaming(c.destroyArgs(varFile))
}

func (c client) destroyArgs(varFile string) []string {
	destroyArgs := []string{
		"destroy",
		"-input=false",
		"-auto-approve", // do not prompt for confirmation
		fmt.Sprintf("-var-file=%s", varFile),
	}
	destroyArgs = append(destroyArgs, c.targetArgs()...)

	return destroyArgs
}

func (c client) Output() (map[string]interface{}, error) {
	outputCmd := c.terraformCmd([]string{
		"output",
		"-json",
	}, nil)

	rawOutput, err := outputCmd.Output()
	if err != nil {
		// TF CLI currently doesn't provide a nice way to detect an empty set of outputs
		// https://github.com/hashicorp/terraform/issues/11696
		if exitErr, ok := err.(*exec.ExitError); ok && strings.Contains(string(exitErr.Stderr), "no outputs defined") {
			rawOutput = []byte("{}")
		} else {
			return nil, c.translateError(err, rawOutput)
		}
	}

	tfOutput := map[string]map[string]interface{}{}
	if err = json.Unmarshal(rawOutput, &tfOutput); err != nil {
		return nil, ParseError{Raw: string(rawOutput), Err: err}
	}

	outputs := map[string]interface{}{}
	for key, field := range tfOutput {
		outputs[key] = field["value"]
	}

	return outputs, nil
}

func (c client) Validate() error {
	return c.runStreaming([]string{
		"validate",
	})
}

func (c client) Fmt() error {
	return c.runStreaming([]string{
		"fmt",
	})
}

// FmtCheck returns the files that would be rewritten by fmt. The CLI exits
// non-zero when files need formatting, which is a result here, not an
// error.
func (c client) FmtCheck() ([]string, error) {
	fmtCmd := c.terraformCmd([]string{
		"fmt",
		"-check",
		"-list=true",
	}, nil)

	rawOutput, err := fmtCmd.Output()
	files := scanLines(rawOutput)
	if err != nil {
		if _, ok := err.(*exec.ExitError); ok && len(files) > 0 {
			return files, nil
		}
		return nil, c.translateError(err, rawOutput)
	}

	return files, nil
}

func (c client) Version() (string, error) {
	versionCmd := c.terraformCmd([]string{
		"-v",
	}, nil)

	output, err := versionCmd.Output()
	if err != nil {
		return "", c.translateError(err, output)
	}

	return strings.TrimSpace(string(output)), nil
}

func (c client) WorkspaceList() ([]string, error) {
	cmd := c.terraformCmd([]string{
		"workspace",
		"list",
	}, nil)

	rawOutput, err := cmd.Output()
	if err != nil {
		return nil, c.translateError(err, rawOutput)
	}

	workspaces := []string{}
	for _, line := range scanLines(rawOutput) {
		workspace := strings.TrimSpace(strings.TrimPrefix(line, "*"))
		if len(workspace) > 0 {
			workspaces = append(workspaces, workspace)
		}
	}

	return workspaces, nil
}

func (c client) WorkspaceNew(workspaceName string) error {
	cmd := c.terraformCmd([]string{
		"workspace",
		"new",
		workspaceName,
	}, nil)

	if output, err := cmd.CombinedOutput(); err != nil {
		return c.translateError(err, output)
	}

	return nil
}

func (c client) WorkspaceSelect(workspaceName string) error {
	cmd := c.terraformCmd([]string{
		"workspace",
		"select",
		workspaceName,
	}, nil)

	if output, err := cmd.CombinedOutput(); err != nil {
		return c.translateError(err, output)
	}

	return nil
}

func (c client) WorkspaceDelete(workspaceName string) error {
	cmd := c.terraformCmd([]string{
		"workspace",
		"delete",
		workspaceName,
	}, []string{
		"TF_WORKSPACE=default",
	})

	if output, err := cmd.CombinedOutput(); err != nil {
		return c.translateError(err, output)
	}

	return nil
}

func (c client) runStreaming(args []string) error {
	cmd := c.terraformCmd(args, nil)
	var stderr bytes.Buffer
	cmd.Stdout = c.logWriter
	cmd.Stderr = io.MultiWriter(c.logWriter, &stderr)

	return c.translateError(cmd.Run(), stderr.Bytes())
}

func (c client) targetArgs() []string {
	targetArgs := []string{}
	for _, target := range c.model.Targets {
		targetArgs = append(targetArgs, fmt.Sprintf("-target=%s", target))
	}
	return targetArgs
}

func (c client) terraformCmd(args []string, env []string) *runner.Runner {
	// args are passed as a vector, never through a shell, so target and
	// variable values cannot smuggle extra commands
	cmd := exec.Command("terraform", args...)

	cmd.Dir = c.model.Path
	cmd.Env = os.Environ()
	cmd.Env = append(cmd.Env, "CHECKPOINT_DISABLE=1")
	cmd.Env = append(cmd.Env, "TF_IN_AUTOMATION=1")
	for _, e := range env {
		cmd.Env = append(cmd.Env, e)
	}

	for key, value := range c.model.Env {
		cmd.Env = append(cmd.Env, fmt.Sprintf("%s=%s", key, value))
	}

	return runner.New(cmd, c.logWriter, c.model.Timeout)
}

// translateError maps a raw process error onto the runner error taxonomy.
// stderr is a fallback for invocations that captured output themselves.
func (c client) translateError(err error, stderr []byte) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, runner.ErrTimedOut) {
		return TimeoutError{Duration: c.model.Timeout}
	}
	if exitErr, ok := err.(*exec.ExitError); ok {
		captured := exitErr.Stderr
		if len(captured) == 0 {
			captured = stderr
		}
		return ExecutionError{ExitCode: exitErr.ExitCode(), Stderr: string(captured)}
	}
	return err
}

func (c client) writeVarFile() (string, error) {
	yamlContents, err := yaml.Marshal(c.model.Vars)
	if err != nil {
		return "", err
	}

	// avoids marshalling errors around map[interface{}]interface{}
	jsonFileContents, err := yamlConverter.YAMLToJSON(yamlContents)
	if err != nil {
		return "", err
	}

	varsFile, err := ioutil.TempFile("", "vars-file-*.tfvars.json")
	if err != nil {
		return "", err
	}
	if _, err := varsFile.Write(jsonFileContents); err != nil {
		return "", err
	}
	if err := varsFile.Close(); err != nil {
		return "", err
	}

	return varsFile.Name(), nil
}

func scanLines(rawOutput []byte) []string {
	lines := []string{}
	scanner := bufio.NewScanner(bytes.NewReader(rawOutput))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if len(line) > 0 {
			lines = append(lines, line)
		}
	}
	return lines
}
