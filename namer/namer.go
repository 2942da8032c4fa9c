package namer

import (
	"fmt"

	"github.com/Pallinder/go-randomdata"
)

// Namer generates workspace names for ephemeral review environments.
type Namer interface {
	RandomName() string
}

func New() Namer {
	return &adjNounNamer{}
}

type adjNounNamer struct{}

func (n adjNounNamer) RandomName() string {
	return fmt.Sprintf("%s-%s", randomdata.Adjective(), randomdata.Noun())
}
