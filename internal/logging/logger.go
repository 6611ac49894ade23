package logging

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Config selects the level, the encoding and the destinations of application logs.
type Config struct {
	Level        string // debug, info, warn, error
	Format       string // json, text
	Output       io.Writer
	LogstashAddr string
	Service      string
}

// Logger is the application logger. Close releases the Logstash connection when one is set up.
type Logger struct {
	zerolog.Logger
	logstash *LogstashWriter
}

func New(cfg Config) (*Logger, error) {
	output := cfg.Output
	if output == nil {
		output = os.Stdout
	}

	level, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(cfg.Level)))
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}

	if cfg.Format == "text" {
		output = zerolog.ConsoleWriter{Out: output, TimeFormat: time.RFC3339}
	}

	var logstash *LogstashWriter
	if strings.TrimSpace(cfg.LogstashAddr) != "" {
		logstash, err = NewLogstashWriter(cfg.LogstashAddr)
		if err != nil {
			return nil, err
		}
		// Logstash always receives JSON, whatever the console format.
		output = zerolog.MultiLevelWriter(output, logstash)
	}

	ctx := zerolog.New(output).Level(level).With().Timestamp()
	if cfg.Service != "" {
		ctx = ctx.Str("service", cfg.Service)
	}
	return &Logger{Logger: ctx.Logger(), logstash: logstash}, nil
}

func (l *Logger) Close() error {
	if l == nil || l.logstash == nil {
		return nil
	}
	return l.logstash.Close()
}
