package actionio

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/terraform-ci/terraform-action/models"
)

// WriteOutputs emits the workflow commands that surface a result as CI
// step outputs.
func WriteOutputs(w io.Writer, result models.Result) error {
	if result.Workspace != "" {
		if err := writeOutput(w, "workspace", result.Workspace); err != nil {
			return err
		}
	}

	if err := writeOutput(w, "changes-detected", strconv.FormatBool(result.ChangesDetected)); err != nil {
		return err
	}

	for _, name := range sortedKeys(result.Outputs) {
		value, err := formatValue(result.Outputs[name])
		if err != nil {
			return fmt.Errorf("Failed to encode output '%s': %s", name, err)
		}
		if err := writeOutput(w, name, value); err != nil {
			return err
		}
	}

	return writeVersions(w, result.Versions)
}

// writeVersions emits the terraform version first, then each provider
// version under the provider's name.
func writeVersions(w io.Writer, versions map[string]string) error {
	if len(versions) == 0 {
		return nil
	}

	if version, ok := versions["terraform"]; ok {
		if err := writeOutput(w, "terraform", version); err != nil {
			return err
		}
	}

	providers := []string{}
	for name := range versions {
		if name != "terraform" {
			providers = append(providers, name)
		}
	}
	sort.Strings(providers)

	for _, name := range providers {
		if err := writeOutput(w, name, versions[name]); err != nil {
			return err
		}
	}

	return nil
}

func writeOutput(w io.Writer, name string, value string) error {
	_, err := fmt.Fprintf(w, "::set-output name=%s::%s\n", name, escapeData(value))
	return err
}

// escapeData applies the workflow-command escaping rules for output data.
func escapeData(value string) string {
	value = strings.Replace(value, "%", "%25", -1)
	value = strings.Replace(value, "\r", "%0D", -1)
	value = strings.Replace(value, "\n", "%0A", -1)
	return value
}

func formatValue(value interface{}) (string, error) {
	if str, ok := value.(string); ok {
		return str, nil
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	// output values are data, not HTML: `&`, `<`, `>` must survive verbatim
	enc.SetEscapeHTML(false)
	if err := enc.Encode(value); err != nil {
		return "", err
	}
	return strings.TrimSuffix(buf.String(), "\n"), nil
}

func sortedKeys(m map[string]interface{}) []string {
	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
