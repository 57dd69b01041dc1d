package version

// Version is the screener release. Set at build time with
// -ldflags "-X github.com/rxtech-lab/argo-screener/internal/version.Version=v1.2.3".
// "main" marks a development build.
var Version = "v0.3.0"

// GetVersion returns the current screener version.
func GetVersion() string {
	return Version
}
