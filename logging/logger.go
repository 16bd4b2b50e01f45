package logging

import (
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
)

var (
	logout = zerolog.ConsoleWriter{
		Out:        os.Stdout,
		TimeFormat: time.RFC3339,
		// Format the sweep label
		FormatPrepare: func(e map[string]interface{}) error {
			e["sweep"] = fmt.Sprintf("[%s]", e["sweep"])
			return nil
		},
		// Change the order in which things appear
		PartsOrder: []string{
			zerolog.TimestampFieldName,
			zerolog.LevelFieldName,
			"sweep",
			zerolog.MessageFieldName,
		},
		// Prevent the sweep label from being printed again
		FieldsExclude: []string{"sweep"},
	}
)

// GetLogger returns a formatted logger tagged with the given sweep label
func GetLogger(label string) zerolog.Logger {
	// Disable logging based on the GLOG environment variable
	var logLevel zerolog.Level
	if os.Getenv("GLOG") == "no" {
		logLevel = zerolog.Disabled
	} else {
		logLevel = zerolog.InfoLevel
	}

	return zerolog.New(logout).
		Level(logLevel).
		With().
		Timestamp().
		Str("sweep", label).
		Logger()
}
