package version

import "fmt"

// Set at build time with -ldflags "-X github.com/idilsaglam/meetfocus/internal/version.Version=..."
var (
	Version = "dev"
	Commit  = "none"
)

func Full() string {
	return fmt.Sprintf("meetfocus %s (%s)", Version, Commit)
}
