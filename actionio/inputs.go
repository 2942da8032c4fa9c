package actionio

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	yamlConverter "github.com/ghodss/yaml"

	"github.com/terraform-ci/terraform-action/models"
	"github.com/terraform-ci/terraform-action/storage"
)

// LoadRequest builds an invocation request from the INPUT_* environment
// variables the CI platform sets for each declared action input.
func LoadRequest() (models.Request, error) {
	req := models.Request{
		Mode:        models.Mode(inputOrDefault("mode", string(models.ModePlan))),
		Path:        input("path"),
		Workspace:   inputOrDefault("workspace", models.DefaultWorkspace),
		VarFiles:    splitList(input("var_file")),
		Targets:     splitList(input("target")),
		BackendType: input("backend_type"),
		PluginDir:   input("plugin_dir"),
		PrivateKey:  input("private_key"),
	}

	if rawVars := input("variables"); rawVars != "" {
		vars := map[string]interface{}{}
		if err := yamlConverter.Unmarshal([]byte(rawVars), &vars); err != nil {
			return models.Request{}, fmt.Errorf("Failed to parse `variables` input as a YAML map: %s", err)
		}
		req.Vars = vars
	}

	if rawBackendConfig := input("backend_config"); rawBackendConfig != "" {
		backendConfig := map[string]interface{}{}
		if err := yamlConverter.Unmarshal([]byte(rawBackendConfig), &backendConfig); err != nil {
			return models.Request{}, fmt.Errorf("Failed to parse `backend_config` input as a YAML map: %s", err)
		}
		req.BackendConfig = backendConfig
	}

	var err error
	if req.AutoApprove, err = boolInput("auto_approve"); err != nil {
		return models.Request{}, err
	}
	if req.StrictNew, err = boolInput("strict_new"); err != nil {
		return models.Request{}, err
	}
	if req.GenerateRandomWorkspace, err = boolInput("generate_random_workspace"); err != nil {
		return models.Request{}, err
	}

	if rawTimeout := input("timeout"); rawTimeout != "" {
		seconds, err := strconv.Atoi(rawTimeout)
		if err != nil {
			return models.Request{}, fmt.Errorf("Failed to parse `timeout` input as seconds: %s", err)
		}
		req.Timeout = time.Duration(seconds) * time.Second
	}

	if bucket := input("plan_bucket"); bucket != "" {
		req.PlanStorage = storage.Model{
			Bucket:          bucket,
			BucketPath:      input("plan_bucket_path"),
			AccessKeyID:     input("aws_access_key_id"),
			SecretAccessKey: input("aws_secret_access_key"),
			RegionName:      input("aws_region"),
		}
	}

	return req, nil
}

func input(name string) string {
	return strings.TrimSpace(os.Getenv("INPUT_" + strings.ToUpper(name)))
}

func inputOrDefault(name string, defaultValue string) string {
	if value := input(name); value != "" {
		return value
	}
	return defaultValue
}

func boolInput(name string) (bool, error) {
	raw := input(name)
	if raw == "" {
		return false, nil
	}
	value, err := strconv.ParseBool(strings.ToLower(raw))
	if err != nil {
		return false, fmt.Errorf("Failed to parse `%s` input as a boolean: %s", name, err)
	}
	return value, nil
}

// splitList accepts both comma-separated and newline-separated input lists.
func splitList(raw string) []string {
	if raw == "" {
		return nil
	}

	items := []string{}
	for _, field := range strings.FieldsFunc(raw, func(r rune) bool { return r == ',' || r == '\n' }) {
		if item := strings.TrimSpace(field); item != "" {
			items = append(items, item)
		}
	}
	return items
}
