// File: level.go
// Title: Log Levels
// Description: Log levels with their names, console abbreviations and ANSI
//              colors kept in one table, plus parsing of level names.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2025-03-02
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation
// - 2025-03-02 v0.2.0: Removed audit level, table of level attributes

package log

import (
	"slices"

	"github.com/msto63/easyfmt/foundation/utils/stringx"
)

// Level represents the importance level of a log message
type Level int

const (
	LevelTrace Level = iota
	LevelDebug
	LevelInfo
	LevelWarn
	LevelError
	// LevelFatal is the highest level. LevelFatal+1 disables logging.
	LevelFatal
)

type levelAttrs struct {
	name    string
	short   string
	color   string
	aliases []string
}

var levels = [...]levelAttrs{
	LevelTrace: {"trace", "TRC", "\033[37m", []string{"trc"}},
	LevelDebug: {"debug", "DBG", "\033[36m", []string{"dbg"}},
	LevelInfo:  {"info", "INF", "\033[32m", []string{"inf", "information"}},
	LevelWarn:  {"warn", "WRN", "\033[33m", []string{"wrn", "warning"}},
	LevelError: {"error", "ERR", "\033[31m", []string{"err"}},
	LevelFatal: {"fatal", "FTL", "\033[35m", []string{"ftl"}},
}

const colorReset = "\033[0m"

func (l Level) attrs() levelAttrs {
	if l < LevelTrace || l > LevelFatal {
		return levelAttrs{name: "unknown", short: "???", color: colorReset}
	}
	return levels[l]
}

// String returns the lower-case level name used in structured output.
func (l Level) String() string {
	return l.attrs().name
}

// ShortString returns the three-letter tag used by the text formatter.
func (l Level) ShortString() string {
	return l.attrs().short
}

// Color returns the ANSI color sequence of the console formatter.
func (l Level) Color() string {
	return l.attrs().color
}

// ShouldLog reports whether l passes the minimum level.
func (l Level) ShouldLog(minLevel Level) bool {
	return l >= minLevel
}

// ParseLevel accepts a level name, its short tag or a common alias, in any
// case. Unknown input yields LevelInfo and a *ParseError.
func ParseLevel(level string) (Level, error) {
	name := stringx.ToLower(stringx.TrimSpace(level))
	for l, a := range levels {
		if name == a.name || slices.Contains(a.aliases, name) {
			return Level(l), nil
		}
	}
	return LevelInfo, &ParseError{Input: level, Type: "level"}
}

// ParseError reports an unrecognized level or format name.
type ParseError struct {
	Input string
	Type  string
}

func (e *ParseError) Error() string {
	return "invalid " + e.Type + ": " + e.Input
}

// DefaultLevel returns the level of a logger built by New.
func DefaultLevel() Level {
	return LevelInfo
}
