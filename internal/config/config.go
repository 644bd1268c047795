package config

import (
	"encoding/hex"
	"fmt"
	"log/slog"
	"net"
	"strconv"
	"strings"
)

// DefaultListen binds every IPv4 interface on the well-known control port.
const DefaultListen = "0.0.0.0:7000"

// DefaultCredentialDigest is the SHA-256 of the built-in shared secret "foobar".
const DefaultCredentialDigest = "c3ab8ff13720e8ad9047dd39466b3c8974e592c2fa383d4a3960714caef0c4f2"

// Config is the immutable server configuration handed to the HTTP server at
// construction time.
type Config struct {
	// Listen is the IPv4 host:port the control server binds.
	Listen string `yaml:"listen"`
	// CredentialDigest is the lower-case hex SHA-256 of the shared secret
	// clients send in the Authorization header.
	CredentialDigest string `yaml:"credential_digest"`
	// LogLevel is one of debug, info, warn, error.
	LogLevel string `yaml:"log_level"`
}

// ValidationError reports which field of a config failed validation.
type ValidationError struct {
	Path string
	Err  error
}

func (e *ValidationError) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Path != "" {
		return fmt.Sprintf("%s: %v", e.Path, e.Err)
	}
	return e.Err.Error()
}

func (e *ValidationError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// DefaultConfig returns the compiled-in configuration.
func DefaultConfig() *Config {
	return &Config{
		Listen:           DefaultListen,
		CredentialDigest: DefaultCredentialDigest,
		LogLevel:         "info",
	}
}

// Validate checks every field.
func (c *Config) Validate() error {
	host, port, err := net.SplitHostPort(c.Listen)
	if err != nil {
		return &ValidationError{Path: "listen", Err: fmt.Errorf("listen must be host:port: %w", err)}
	}
	if host != "" {
		ip := net.ParseIP(host)
		if ip == nil || ip.To4() == nil {
			return &ValidationError{Path: "listen", Err: fmt.Errorf("listen host %q is not an IPv4 address", host)}
		}
	}
	if n, err := strconv.Atoi(port); err != nil || n < 0 || n > 65535 {
		return &ValidationError{Path: "listen", Err: fmt.Errorf("listen port %q is not a valid port number", port)}
	}

	digest, err := hex.DecodeString(c.CredentialDigest)
	if err != nil || len(digest) != 32 {
		return &ValidationError{Path: "credential_digest", Err: fmt.Errorf("credential_digest must be 64 hex characters")}
	}
	if c.CredentialDigest != strings.ToLower(c.CredentialDigest) {
		return &ValidationError{Path: "credential_digest", Err: fmt.Errorf("credential_digest must be lower-case hex")}
	}

	if _, err := ParseLogLevel(c.LogLevel); err != nil {
		return &ValidationError{Path: "log_level", Err: err}
	}
	return nil
}

// SlogLevel returns the slog level for LogLevel, defaulting to info.
func (c *Config) SlogLevel() slog.Level {
	level, err := ParseLogLevel(c.LogLevel)
	if err != nil {
		return slog.LevelInfo
	}
	return level
}

// ParseLogLevel maps a config log level name to a slog level.
func ParseLogLevel(s string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("log_level must be one of: debug, info, warn, error")
	}
}
