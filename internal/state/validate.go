package state

import (
	"fmt"
	"net"
	"net/url"
	"slices"
	"strings"

	"github.com/hashicorp/go-version"

	"github.com/steviee/go-modlist/internal/catalog"
)

var validLogLevels = []string{"debug", "info", "warn", "error"}

// ValidateLoader validates a mod loader name against the supported loaders.
func ValidateLoader(loader string) error {
	if loader == "" {
		return fmt.Errorf("loader cannot be empty")
	}
	if !catalog.IsKnownLoader(loader) {
		return fmt.Errorf("invalid loader: %q (must be one of %s)", loader, strings.Join(catalog.Loaders, ", "))
	}
	return nil
}

// ValidateGameVersion validates a Minecraft version string such as "1.20.1",
// "1.21-rc1" or a snapshot like "24w14a".
func ValidateGameVersion(v string) error {
	if v == "" {
		return fmt.Errorf("game version cannot be empty")
	}
	if strings.ContainsAny(v, " \t") {
		return fmt.Errorf("game version cannot contain spaces: %q", v)
	}
	if _, err := version.NewVersion(v); err != nil {
		return fmt.Errorf("invalid game version %q: %w", v, err)
	}
	return nil
}

// ValidateLogLevel validates a logging level.
func ValidateLogLevel(level string) error {
	if !slices.Contains(validLogLevels, level) {
		return fmt.Errorf("invalid log level: %q (must be debug, info, warn, or error)", level)
	}
	return nil
}

// ValidateBaseURL validates an absolute http(s) API base URL.
func ValidateBaseURL(raw string) error {
	if raw == "" {
		return fmt.Errorf("base URL cannot be empty")
	}
	u, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("parse base URL: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("base URL must be http or https: %q", raw)
	}
	if u.Host == "" {
		return fmt.Errorf("base URL has no host: %q", raw)
	}
	return nil
}

// ValidateListenAddr validates a host:port listen address. The host may be empty.
func ValidateListenAddr(addr string) error {
	if addr == "" {
		return fmt.Errorf("listen address cannot be empty")
	}
	_, port, err := net.SplitHostPort(addr)
	if err != nil {
		return fmt.Errorf("invalid listen address %q: %w", addr, err)
	}
	if port == "" {
		return fmt.Errorf("listen address %q has no port", addr)
	}
	return nil
}
