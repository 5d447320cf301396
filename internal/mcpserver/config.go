package mcpserver

import (
	"log/slog"
	"os"
	"strconv"

	"github.com/erraggy/oasmerge/config"
)

// serverConfig holds all configurable MCP server defaults.
// Loaded once at startup from environment variables via loadConfig().
type serverConfig struct {
	// ConfigFile is the profile file used by the merge tool. Empty means
	// the built-in profiles.
	ConfigFile string

	// MaxInlineSize caps inline spec content in bytes.
	MaxInlineSize int64

	// MaxMergeSpecs caps the number of specs per merge call.
	MaxMergeSpecs int

	// IncludeInfo keeps info-level conversion issues in convert results.
	IncludeInfo bool
}

// cfg is the active server configuration, initialized at package load time.
var cfg = loadConfig()

// loadConfig reads configuration from OASMERGE_* environment variables.
// Invalid values log a warning and fall back to the hardcoded default.
func loadConfig() *serverConfig {
	return &serverConfig{
		ConfigFile:    os.Getenv("OASMERGE_CONFIG"),
		MaxInlineSize: int64(envInt("OASMERGE_MAX_INLINE_SIZE", 10*1024*1024)),
		MaxMergeSpecs: envInt("OASMERGE_MAX_MERGE_SPECS", 20),
		IncludeInfo:   envBool("OASMERGE_CONVERT_INCLUDE_INFO", true),
	}
}

// profiles returns the configured merge profiles.
func (c *serverConfig) profiles() (*config.Config, error) {
	if c.ConfigFile == "" {
		return config.Default(), nil
	}
	return config.LoadFile(c.ConfigFile)
}

func envBool(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		slog.Warn("invalid bool env var, using default", "key", key, "value", v, "default", fallback)
		return fallback
	}
	return b
}

func envInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		slog.Warn("invalid int env var, using default", "key", key, "value", v, "default", fallback)
		return fallback
	}
	return n
}
