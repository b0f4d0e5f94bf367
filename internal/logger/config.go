package logger

import (
	"log/slog"
	"strings"
)

// Config selects the slog handler and the attributes stamped on every record
type Config struct {
	Level       string
	Format      string
	ServiceName string
	Version     string
	Environment string
	AddSource   bool
}

// CLIConfig is used by itemctl: text records on stderr, tagged with the tool name
func CLIConfig(level string) Config {
	return Config{
		Level:       level,
		Format:      LogFormatText,
		ServiceName: CLIServiceName,
		Version:     DefaultVersion,
		Environment: EnvironmentDev,
	}
}

// LogLevel parses Level the way slog does ("warn", "ERROR", "info+2").
// "warning" is accepted as an alias and anything unparseable falls back to info.
func (c Config) LogLevel() slog.Level {
	name := strings.TrimSpace(c.Level)
	if strings.EqualFold(name, LogLevelWarning) {
		return slog.LevelWarn
	}
	var level slog.Level
	if err := level.UnmarshalText([]byte(name)); err != nil {
		return slog.LevelInfo
	}
	return level
}

// IsJSON reports whether records are written as JSON
func (c Config) IsJSON() bool {
	return strings.EqualFold(strings.TrimSpace(c.Format), LogFormatJSON)
}

// BaseAttributes returns the non-empty service attributes
func (c Config) BaseAttributes() []slog.Attr {
	attrs := make([]slog.Attr, 0, 3)
	for _, kv := range [][2]string{
		{AttrKeyService, c.ServiceName},
		{AttrKeyVersion, c.Version},
		{AttrKeyEnvironment, c.Environment},
	} {
		if kv[1] != "" {
			attrs = append(attrs, slog.String(kv[0], kv[1]))
		}
	}
	return attrs
}
