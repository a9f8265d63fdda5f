package version

// Value is overridden at build time:
// -ldflags "-X git-visual-rebase/internal/version.Value=v0.3.0"
var Value = "dev"
