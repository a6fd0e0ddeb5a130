// Package logger builds the logrus logger used across the game.
package logger

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

// DefaultFile is where logs go when no file is configured. The terminal is
// owned by the screen while the game runs, so logs never go to stdout.
const DefaultFile = "marshcrawl.log"

// Options configures New.
type Options struct {
	Level  string // logrus level name; LOG_LEVEL overrides it
	Format string // "text" or "json"
	File   string
}

// New creates a logger writing to opts.File. The returned closer releases the
// file and must be called on shutdown.
func New(opts Options) (*logrus.Logger, io.Closer, error) {
	file := opts.File
	if file == "" {
		file = DefaultFile
	}
	f, err := os.OpenFile(file, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("logger: open %q: %w", file, err)
	}

	log := logrus.New()
	Configure(log, opts)
	log.SetOutput(f)
	return log, f, nil
}

// Configure applies the level and formatter from opts to log.
func Configure(log *logrus.Logger, opts Options) {
	levelName := opts.Level
	if env := os.Getenv("LOG_LEVEL"); env != "" {
		levelName = env
	}
	if levelName == "" {
		levelName = "info"
	}
	level, err := logrus.ParseLevel(levelName)
	if err != nil {
		level = logrus.InfoLevel
	}
	log.SetLevel(level)

	if strings.ToLower(opts.Format) == "json" {
		log.SetFormatter(&logrus.JSONFormatter{})
	} else {
		log.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
			DisableColors: true,
		})
	}
}
