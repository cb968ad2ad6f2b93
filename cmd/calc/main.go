package main

import (
	"flag"
	"os"

	"github.com/graeme-hill/calcstuff-go/lib"
	"github.com/rs/zerolog"
)

func main() {
	configPath := flag.String("config", "calc.toml", "path to config file")
	logLevel := flag.String("log-level", "", "log level (debug, info, warn, error); overrides config")
	flag.Parse()

	config, err := lib.LoadConfig(*configPath)
	if err != nil {
		bootLogger := zerolog.New(os.Stderr)
		bootLogger.Fatal().Err(err).Msg("loading config")
	}
	if *logLevel != "" {
		config.LogLevel = *logLevel
	}

	level, err := zerolog.ParseLevel(config.LogLevel)
	if err != nil {
		level = zerolog.WarnLevel
	}

	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(level).
		With().Timestamp().Str("component", "calc").Logger()

	if err := lib.Repl(os.Stdin, os.Stdout, config.Prompt, logger); err != nil {
		logger.Fatal().Err(err).Msg("repl failed")
	}
}
