package app

// Build information, set with -ldflags "-X github.com/hyperifyio/rireport/internal/app.BuildVersion=...".
var (
    // BuildVersion is recorded in manifests and printed by "rireport version".
    BuildVersion = "0.0.0-dev"
    BuildCommit  = "unknown"
    BuildDate    = "unknown"
)
