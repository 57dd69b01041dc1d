package version

import (
	"testing"

	"github.com/rxtech-lab/argo-screener/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckConfigCompatibility(t *testing.T) {
	tests := []struct {
		name          string
		binaryVersion string
		configVersion string
		expectError   bool
		errorContains string
	}{
		{name: "exact match", binaryVersion: "0.3.0", configVersion: "0.3.0"},
		{name: "config patch higher", binaryVersion: "0.3.0", configVersion: "0.3.4"},
		{name: "config minor older", binaryVersion: "1.4.2", configVersion: "1.1.0"},
		{name: "v prefix", binaryVersion: "v1.2.0", configVersion: "v1.2.0"},
		{name: "config version unset", binaryVersion: "1.2.0", configVersion: ""},
		{name: "development build", binaryVersion: "main", configVersion: "9.9.9"},
		{
			name:          "config minor newer",
			binaryVersion: "1.2.0",
			configVersion: "1.3.0",
			expectError:   true,
			errorContains: "newer than screener",
		},
		{
			name:          "major differs",
			binaryVersion: "2.0.0",
			configVersion: "1.2.0",
			expectError:   true,
			errorContains: "major version mismatch",
		},
		{
			name:          "invalid config version",
			binaryVersion: "1.0.0",
			configVersion: "latest",
			expectError:   true,
			errorContains: "invalid config version",
		},
		{
			name:          "invalid screener version",
			binaryVersion: "dev-build",
			configVersion: "1.0.0",
			expectError:   true,
			errorContains: "invalid screener version",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CheckConfigCompatibility(tt.binaryVersion, tt.configVersion)
			if !tt.expectError {
				assert.NoError(t, err)

				return
			}

			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errorContains)
			assert.True(t, errors.HasCode(err, errors.ErrCodeInvalidConfiguration))
		})
	}
}

func TestGetVersion(t *testing.T) {
	original := Version
	defer func() { Version = original }()

	Version = "v9.8.7"
	assert.Equal(t, "v9.8.7", GetVersion())
}
