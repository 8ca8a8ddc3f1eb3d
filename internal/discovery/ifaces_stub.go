//go:build !linux

package discovery

// multicastInterfaces returns nil on platforms without netlink; the browser
// then listens on every interface.
func multicastInterfaces() []string { return nil }
