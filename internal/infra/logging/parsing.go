package logging

import (
	"fmt"
	"strings"
)

// ParseLevel parses a level name. An empty string yields DefaultLevel.
// Fatal and panic map to DiscardLevel since nothing logs above error.
func ParseLevel(levelStr string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(levelStr)) {
	case "":
		return DefaultLevel, nil
	case "discard", "off", "fatal", "panic":
		return DiscardLevel, nil
	case "error":
		return ErrorLevel, nil
	case "warn", "warning":
		return WarnLevel, nil
	case "info":
		return InfoLevel, nil
	case "debug":
		return DebugLevel, nil
	case "trace":
		return TraceLevel, nil
	default:
		return 0, fmt.Errorf("invalid log level %q", levelStr)
	}
}

// ParseFormat parses a format name. An empty string yields DefaultFormat.
func ParseFormat(formatStr string) (Format, error) {
	switch Format(strings.ToLower(strings.TrimSpace(formatStr))) {
	case "":
		return DefaultFormat, nil
	case ConsoleFormat:
		return ConsoleFormat, nil
	case JSONFormat:
		return JSONFormat, nil
	default:
		return "", fmt.Errorf("invalid log format %q", formatStr)
	}
}
