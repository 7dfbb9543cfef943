package config

import (
	"errors"
	"net"
	"net/url"
	"strconv"
	"strings"
)

// validateHostPort accepts "host:port" or an http(s) URL carrying a host and
// port.
func validateHostPort(addr string) error {
	if strings.Contains(addr, "://") {
		u, err := url.Parse(addr)
		if err != nil {
			return err
		}
		if u.Scheme != "http" && u.Scheme != "https" {
			return errors.New("address scheme must be http or https")
		}
		addr = u.Host
		if u.Port() == "" {
			return nil
		}
	}

	host, port, err := net.SplitHostPort(addr)
	if err != nil {
		return err
	}
	if host != "" && host != "localhost" && net.ParseIP(host) == nil {
		return errors.New("incorrect IP-address provided")
	}
	p, err := strconv.Atoi(port)
	if err != nil {
		return err
	}
	if p < 1 || p > 65535 {
		return errors.New("port number must be between 1 and 65535")
	}
	return nil
}
