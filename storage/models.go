package storage

import (
	"fmt"
	"strings"
)

const (
	S3Driver = "s3"
)

type Model struct {
	Driver string `json:"driver,omitempty"` // optional

	// S3 driver
	Bucket               string `json:"bucket"`
	BucketPath           string `json:"bucket_path"`
	AccessKeyID          string `json:"access_key_id,omitempty"`          // optional
	SecretAccessKey      string `json:"secret_access_key,omitempty"`      // optional
	RegionName           string `json:"region_name,omitempty"`            // optional
	Endpoint             string `json:"endpoint,omitempty"`               // optional
	ServerSideEncryption string `json:"server_side_encryption,omitempty"` // optional
	SSEKMSKeyId          string `json:"sse_kms_key_id,omitempty"`         // optional
}

func (m Model) Validate() error {
	knownDrivers := []string{
		"",
		S3Driver,
	}
	isUnknownDriver := true
	for _, driver := range knownDrivers {
		if driver == m.Driver {
			isUnknownDriver = false
			break
		}
	}
	if isUnknownDriver {
		for i, value := range knownDrivers {
			knownDrivers[i] = fmt.Sprintf("'%s'", value)
		}
		return fmt.Errorf(
			"Unknown value for `plan_storage.driver`: '%s', Supported driver values: %s",
			m.Driver,
			strings.Join(knownDrivers, ", "),
		)
	}

	missingFields := []string{}
	if m.Bucket == "" {
		missingFields = append(missingFields, "plan_storage.bucket")
	}
	if m.BucketPath == "" {
		missingFields = append(missingFields, "plan_storage.bucket_path")
	}

	if len(missingFields) > 0 {
		for i, value := range missingFields {
			missingFields[i] = fmt.Sprintf("'%s'", value)
		}
		return fmt.Errorf("Missing fields: %s", strings.Join(missingFields, ", "))
	}
	return nil
}

func (m Model) IsZero() bool {
	return m == Model{}
}
