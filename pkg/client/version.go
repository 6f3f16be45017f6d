package client

import (
	"fmt"

	"github.com/Masterminds/semver"
)

// supportedAPIVersionRange is the range of volume API versions that provide the consistency group API.
const supportedAPIVersionRange = ">= 2.0, < 4.0"

var supportedAPIVersions = mustConstraint(supportedAPIVersionRange)

func mustConstraint(c string) *semver.Constraints {
	constraints, err := semver.NewConstraint(c)
	if err != nil {
		panic(err)
	}
	return constraints
}

// ParseAPIVersion parses a volume API version in the MAJOR.MINOR form, e.g. "3.10".
func ParseAPIVersion(v string) (*semver.Version, error) {
	version, err := semver.NewVersion(v)
	if err != nil {
		return nil, fmt.Errorf("invalid volume API version '%s': %w", v, err)
	}
	if version.Patch() != 0 || version.Prerelease() != "" {
		return nil, fmt.Errorf("invalid volume API version '%s': must be in the MAJOR.MINOR form", v)
	}
	if !supportedAPIVersions.Check(version) {
		return nil, fmt.Errorf("unsupported volume API version '%s': must be %s", v, supportedAPIVersionRange)
	}
	return version, nil
}

// apiVersionHeader returns the OpenStack-API-Version header value for the version. Only 3.x microversions are
// negotiated with the header, version 2 is selected by the endpoint URL alone.
func apiVersionHeader(v *semver.Version) (string, bool) {
	if v == nil || v.Major() < 3 {
		return "", false
	}
	return fmt.Sprintf("volume %d.%d", v.Major(), v.Minor()), true
}
