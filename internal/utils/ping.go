package utils

import (
	"fmt"
	"net"
	"time"
)

// DefaultPingTimeout bounds a PingHost call when the caller has no deadline of its own
const DefaultPingTimeout = 1500 * time.Millisecond

// PingHost checks that something accepts TCP connections at host:port
func PingHost(host, port string, timeout time.Duration) error {
	if host == "" {
		return fmt.Errorf("no host to ping")
	}
	if port == "" {
		return fmt.Errorf("no port to ping on %s", host)
	}
	if timeout <= 0 {
		timeout = DefaultPingTimeout
	}

	address := net.JoinHostPort(host, port)

	conn, err := net.DialTimeout("tcp", address, timeout)
	if err != nil {
		return fmt.Errorf("failed to connect to %s: %w", address, err)
	}
	defer conn.Close()

	return nil
}
