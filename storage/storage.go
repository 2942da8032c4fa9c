package storage

import (
	"io"
	"time"
)

// Storage persists plan artifacts between CI steps, e.g. a plan step on a
// pull request followed by an apply step once it merges.
type Storage interface {
	Download(string, io.Writer) (Version, error)
	Upload(string, io.Reader) (Version, error)
	Delete(string) error
	Version(string) (Version, error)
}

type Version struct {
	LastModified time.Time
	Key          string
}

func (v Version) IsZero() bool {
	return v == Version{}
}

func BuildDriver(m Model) Storage {
	driverType := m.Driver
	if driverType == "" {
		driverType = S3Driver
	}

	var storageDriver Storage
	switch driverType {
	case S3Driver:
		storageDriver = NewS3(m)
	default:
		// calling model.Validate will throw error for this case
		return null{}
	}

	return storageDriver
}
