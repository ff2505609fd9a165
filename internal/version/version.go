package version

// Set via -ldflags "-X github.com/mj1618/keycycle/internal/version.Version=..." at build time.
var (
	Version   = "dev"
	Commit    = "none"
	BuildDate = "unknown"
)
