package models

import (
	"fmt"
	"io/ioutil"
	"strings"

	"github.com/hashicorp/hcl"
	"gopkg.in/yaml.v2"
)

// ParseVarsFromFiles reads every file listed in `var_files` and folds its
// variables into Vars. Files ending in `.tfvars` are parsed as HCL,
// everything else as YAML/JSON. Explicit `vars` entries win over file
// entries, later files win over earlier ones.
func (r *Request) ParseVarsFromFiles() error {
	merged := map[string]interface{}{}

	for _, varFile := range r.VarFiles {
		fileVars, err := parseVarFile(varFile)
		if err != nil {
			return err
		}

		for key, value := range fileVars {
			merged[key] = value
		}
	}

	for key, value := range r.Vars {
		merged[key] = value
	}

	r.Vars = merged

	return nil
}

func parseVarFile(filepath string) (map[string]interface{}, error) {
	fileContents, readErr := ioutil.ReadFile(filepath)
	if readErr != nil {
		return nil, fmt.Errorf("Failed to read var file at '%s': %s", filepath, readErr)
	}

	fileVars := map[string]interface{}{}

	if strings.HasSuffix(filepath, ".tfvars") {
		readErr = hcl.Unmarshal(fileContents, &fileVars)
	} else {
		readErr = yaml.Unmarshal(fileContents, &fileVars)
	}

	if readErr != nil {
		return nil, fmt.Errorf("Failed to parse var file at '%s': %s", filepath, readErr)
	}

	if strings.HasSuffix(filepath, ".tfvars") {
		if err := flattenMultiMaps(fileVars); err != nil {
			return nil, err
		}
	}

	return fileVars, nil
}

// HCL parses nested blocks as a list of maps, terraform expects a single map
func flattenMultiMaps(m map[string]interface{}) error {
	for k, v := range m {
		switch v := v.(type) {
		case []map[string]interface{}:
			switch {
			case len(v) > 1:
				return fmt.Errorf("multiple map declarations not supported for variables")
			case len(v) == 1:
				m[k] = v[0]
			}
		}
	}
	return nil
}
