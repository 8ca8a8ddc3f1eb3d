//go:build linux

package discovery

import (
	"net"

	"github.com/vishvananda/netlink"
)

// multicastInterfaces lists the up, multicast-capable, non-loopback
// interfaces. mDNS traffic on anything else is noise.
func multicastInterfaces() []string {
	links, err := netlink.LinkList()
	if err != nil {
		return nil
	}

	var out []string
	for _, link := range links {
		attrs := link.Attrs()
		if attrs == nil {
			continue
		}
		flags := attrs.Flags
		if flags&net.FlagUp == 0 || flags&net.FlagMulticast == 0 || flags&net.FlagLoopback != 0 {
			continue
		}
		out = append(out, attrs.Name)
	}
	return out
}
