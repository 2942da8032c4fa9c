package terraform

import (
	"errors"
	"regexp"
)

var (
	terraformVersionPattern = regexp.MustCompile(`Terraform v(\S+)`)
	providerVersionPattern  = regexp.MustCompile(`provider\.(\w+) v(\S+)`)
)

// ParseVersions extracts the terraform and provider versions from the
// CLI's version output, e.g.:
//
//	Terraform v0.12.28
//	+ provider.acme v1.5.0
//
// yields {"terraform": "0.12.28", "acme": "1.5.0"}.
func ParseVersions(raw string) (map[string]string, error) {
	match := terraformVersionPattern.FindStringSubmatch(raw)
	if match == nil {
		return nil, ParseError{Raw: raw, Err: errors.New("unexpected terraform version output")}
	}

	versions := map[string]string{
		"terraform": match[1],
	}
	for _, provider := range providerVersionPattern.FindAllStringSubmatch(raw, -1) {
		versions[provider[1]] = provider[2]
	}

	return versions, nil
}
