package version

// Build information set by ldflags
var (
	Version = "dev"     // -X github.com/extload/extload/internal/version.Version={{.Version}}
	Commit  = "unknown" // -X github.com/extload/extload/internal/version.Commit={{.Commit}}
	Date    = "unknown" // -X github.com/extload/extload/internal/version.Date={{.Date}}
)
