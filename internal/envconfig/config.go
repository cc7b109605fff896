// Package envconfig reads tinytorch configuration from environment variables.
package envconfig

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/tinytorch/tinytorch/internal/tensor"
)

// Var returns an environment variable stripped of leading and trailing quotes or spaces.
func Var(key string) string {
	return strings.Trim(strings.TrimSpace(os.Getenv(key)), "\"'")
}

// LogLevel returns the log level for the application.
// Values are 0 or false INFO (Default), 1 or true DEBUG, 2 TRACE
func LogLevel() slog.Level {
	level := slog.LevelInfo
	if s := Var("TINYTORCH_DEBUG"); s != "" {
		if b, _ := strconv.ParseBool(s); b {
			level = slog.LevelDebug
		} else if i, _ := strconv.ParseInt(s, 10, 64); i != 0 {
			level = slog.Level(i * -4)
		}
	}

	return level
}

// DefaultDType returns the element type used when none is given.
// Configurable via TINYTORCH_DTYPE. Default: float32.
func DefaultDType() tensor.DataType {
	if s := Var("TINYTORCH_DTYPE"); s != "" {
		dt, err := tensor.ParseDataType(s)
		if err != nil {
			slog.Warn("invalid environment variable, using default", "key", "TINYTORCH_DTYPE", "value", s, "default", tensor.Float32)
			return tensor.Float32
		}
		return dt
	}
	return tensor.Float32
}

// BoolWithDefault returns a function reading a bool, falling back to defaultValue when unset.
func BoolWithDefault(k string) func(defaultValue bool) bool {
	return func(defaultValue bool) bool {
		if s := Var(k); s != "" {
			b, err := strconv.ParseBool(s)
			if err != nil {
				return true
			}
			return b
		}
		return defaultValue
	}
}

// Bool returns a function reading a bool that defaults to false.
func Bool(k string) func() bool {
	withDefault := BoolWithDefault(k)
	return func() bool {
		return withDefault(false)
	}
}

// Uint returns a function reading an unsigned integer with a default.
func Uint(key string, defaultValue uint) func() uint {
	return func() uint {
		if s := Var(key); s != "" {
			if n, err := strconv.ParseUint(s, 10, 64); err != nil {
				slog.Warn("invalid environment variable, using default", "key", key, "value", s, "default", defaultValue)
			} else {
				return uint(n)
			}
		}
		return defaultValue
	}
}

var (
	// Precision is the number of decimal places printed for floats. Configurable via TINYTORCH_PRECISION.
	Precision = Uint("TINYTORCH_PRECISION", 4)
	// Threshold is the element count above which dumps are elided. Configurable via TINYTORCH_THRESHOLD.
	Threshold = Uint("TINYTORCH_THRESHOLD", 1000)
	// EdgeItems is the number of items kept at each end of an elided dimension. Configurable via TINYTORCH_EDGEITEMS.
	EdgeItems = Uint("TINYTORCH_EDGEITEMS", 3)
	// NoDump disables element dumps in CLI output. Configurable via TINYTORCH_NODUMP.
	NoDump = Bool("TINYTORCH_NODUMP")
)

// EnvVar describes one configuration variable.
type EnvVar struct {
	Name        string
	Value       any
	Description string
}

// AsMap returns every configuration variable with its current value.
func AsMap() map[string]EnvVar {
	return map[string]EnvVar{
		"TINYTORCH_DEBUG":     {"TINYTORCH_DEBUG", LogLevel(), "Show additional debug information (e.g. TINYTORCH_DEBUG=1)"},
		"TINYTORCH_DTYPE":     {"TINYTORCH_DTYPE", DefaultDType(), "Element type used when --dtype is not given (default: float32)"},
		"TINYTORCH_PRECISION": {"TINYTORCH_PRECISION", Precision(), "Decimal places printed for floats (default: 4)"},
		"TINYTORCH_THRESHOLD": {"TINYTORCH_THRESHOLD", Threshold(), "Element count above which dumps are summarized (default: 1000)"},
		"TINYTORCH_EDGEITEMS": {"TINYTORCH_EDGEITEMS", EdgeItems(), "Items kept at each end of a summarized dimension (default: 3)"},
		"TINYTORCH_NODUMP":    {"TINYTORCH_NODUMP", NoDump(), "Print descriptions only, without element dumps"},
	}
}

// Values returns every configuration value formatted as a string.
func Values() map[string]string {
	vals := make(map[string]string)
	for k, v := range AsMap() {
		vals[k] = fmt.Sprintf("%v", v.Value)
	}
	return vals
}
