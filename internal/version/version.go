package version

// Build information, overridden via ldflags:
//
//	-X github.com/tacogips/plugtool/internal/version.Version=v1.2.3
var (
	Version   = "dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)
