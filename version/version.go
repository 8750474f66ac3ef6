package version

// Version is the current version of iconize.
var Version = "0.1.0"

// Revision is set via ldflags at build time.
var Revision = "dev"
