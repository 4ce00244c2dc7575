package pkg

import (
	"net"
	"net/http"
	"regexp"
	"strings"
)

var (
	localDockerIpRegex = regexp.MustCompile(`^172\.\d{1,3}\.0\.1$`)
)

// IPIsLocal reports whether the address is loopback or a docker bridge gateway.
func IPIsLocal(ipAddr string) bool {
	if host, _, err := net.SplitHostPort(ipAddr); err == nil {
		ipAddr = host
	}
	if ip := net.ParseIP(ipAddr); ip != nil && ip.IsLoopback() {
		return true
	}
	return localDockerIpRegex.MatchString(ipAddr)
}

// ReadUserIP returns the client IP, honoring reverse proxy headers. Local
// addresses are all reported as "localhost".
func ReadUserIP(r *http.Request) string {
	ipAddr := r.Header.Get("X-Real-Ip")
	if ipAddr == "" {
		// client, proxy1, proxy2
		if forwarded := r.Header.Get("X-Forwarded-For"); forwarded != "" {
			ipAddr = strings.TrimSpace(strings.Split(forwarded, ",")[0])
		}
	}
	if ipAddr == "" {
		ipAddr = r.RemoteAddr
	}

	if host, _, err := net.SplitHostPort(ipAddr); err == nil {
		ipAddr = host
	}
	if IPIsLocal(ipAddr) {
		return "localhost"
	}
	return ipAddr
}
