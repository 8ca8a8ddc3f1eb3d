// Package buildinfo carries the version stamped at link time.
package buildinfo

// Version is overridden via -ldflags "-X atvremote/internal/buildinfo.Version=...".
var Version = "dev"
