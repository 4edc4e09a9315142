package config

// Version is the kindred binary version.
// Set at build time via: -ldflags "-X github.com/kindredlab/kindred/internal/config.Version=<tag>"
// Defaults to "dev" when built without ldflags.
var Version = "dev"
