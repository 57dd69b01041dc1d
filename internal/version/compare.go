package version

import (
	"strings"

	"github.com/Masterminds/semver/v3"
	"github.com/rxtech-lab/argo-screener/pkg/errors"
)

// CheckConfigCompatibility reports whether a config file written for configVersion
// can be read by a screener at binaryVersion.
//
// An empty config version or a "main" binary always passes. Otherwise the majors
// must match and the config's minor may not be newer than the binary's, since a
// newer minor can carry keys this binary ignores.
func CheckConfigCompatibility(binaryVersion, configVersion string) error {
	binaryVersion = strings.TrimPrefix(binaryVersion, "v")
	configVersion = strings.TrimPrefix(configVersion, "v")

	if configVersion == "" || binaryVersion == "main" {
		return nil
	}

	binary, err := semver.NewVersion(binaryVersion)
	if err != nil {
		return errors.Wrapf(errors.ErrCodeInvalidConfiguration, err, "invalid screener version '%s'", binaryVersion)
	}

	config, err := semver.NewVersion(configVersion)
	if err != nil {
		return errors.Wrapf(errors.ErrCodeInvalidConfiguration, err, "invalid config version '%s'", configVersion)
	}

	if binary.Major() != config.Major() {
		return errors.Newf(errors.ErrCodeInvalidConfiguration, "major version mismatch: screener is %d.x.x but config is %d.x.x",
			binary.Major(), config.Major())
	}

	if config.Minor() > binary.Minor() {
		return errors.Newf(errors.ErrCodeInvalidConfiguration, "config version %d.%d is newer than screener %d.%d",
			config.Major(), config.Minor(), binary.Major(), binary.Minor())
	}

	return nil
}
