package terraform

import (
	"fmt"
	"os"

	"github.com/terraform-ci/terraform-action/storage"
)

// PlanFile is the binary plan artifact handed from a plan step to a later
// apply step through the configured storage driver.
type PlanFile struct {
	LocalPath     string
	RemotePath    string
	StorageDriver storage.Storage
}

func (p PlanFile) Exists() (bool, error) {
	version, err := p.StorageDriver.Version(p.RemotePath)
	if err != nil {
		return false, fmt.Errorf("Failed to check for existing plan file at '%s': %s", p.RemotePath, err)
	}
	return version.IsZero() == false, nil
}

func (p PlanFile) Download() error {
	planFile, createErr := os.Create(p.LocalPath)
	if createErr != nil {
		return fmt.Errorf("Failed to create plan file at '%s': %s", p.LocalPath, createErr)
	}
	defer planFile.Close()

	if _, err := p.StorageDriver.Download(p.RemotePath, planFile); err != nil {
		return err
	}

	return planFile.Close()
}

func (p PlanFile) Upload() error {
	planFile, err := os.Open(p.LocalPath)
	if err != nil {
		return fmt.Errorf("Failed to open plan file at '%s'", p.LocalPath)
	}
	defer planFile.Close()

	if _, err = p.StorageDriver.Upload(p.RemotePath, planFile); err != nil {
		return fmt.Errorf("Failed to upload plan file: %s", err)
	}

	return nil
}

func (p PlanFile) Delete() error {
	if err := p.StorageDriver.Delete(p.RemotePath); err != nil {
		return fmt.Errorf("Failed to delete plan file at '%s': %s", p.RemotePath, err)
	}
	return nil
}
