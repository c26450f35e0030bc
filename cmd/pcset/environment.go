package main

import (
	"encoding/json"
	"io"
	"strings"
	"unicode"

	"github.com/RyanBlaney/sonido-sets/algorithms/pcset"
	"github.com/RyanBlaney/sonido-sets/analysis"
	"github.com/RyanBlaney/sonido-sets/config"
	"github.com/RyanBlaney/sonido-sets/logging"
)

// environment carries the global flags and output sinks shared by every command
type environment struct {
	configPath *string
	universe   *int
	names      *bool
	verbose    *bool
	logLevel   *string

	out    io.Writer
	errOut io.Writer
	logger logging.Logger
}

// load resolves the configuration: defaults, then the config file, then flags
func (e *environment) load() (*config.File, error) {
	cfg := config.Default()
	if *e.configPath != "" {
		loaded, err := config.LoadFile(*e.configPath)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	if *e.universe != 0 {
		cfg.Analysis.Universe = *e.universe
		cfg.Row.Universe = *e.universe
	}
	if *e.names {
		cfg.Analysis.Representation = pcset.Named.String()
		cfg.Row.Representation = pcset.Named.String()
	}
	if *e.logLevel != "" {
		cfg.Analysis.LogLevel = *e.logLevel
	}
	if *e.verbose {
		cfg.Analysis.LogLevel = logging.DebugLevel.String()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	level, _ := cfg.Analysis.Level()
	logger := logging.NewDefaultLoggerWithWriters(e.errOut, e.errOut)
	logger.SetLevel(level)
	e.logger = logger.WithFields(logging.Fields{"component": "cli"})
	return cfg, nil
}

func (e *environment) setAnalyzer() (*analysis.SetAnalyzer, error) {
	cfg, err := e.load()
	if err != nil {
		return nil, err
	}
	return analysis.NewSetAnalyzer(&cfg.Analysis, e.logger)
}

func (e *environment) rowAnalyzer() (*analysis.RowAnalyzer, error) {
	cfg, err := e.load()
	if err != nil {
		return nil, err
	}
	return analysis.NewRowAnalyzer(&cfg.Row, e.logger)
}

// fail reports err and returns the failure exit code
func (e *environment) fail(err error, msg string) int {
	if e.logger == nil {
		e.logger = logging.NewDefaultLoggerWithWriters(e.errOut, e.errOut)
	}
	e.logger.Error(err, msg)
	return 1
}

// emit writes v as indented JSON
func (e *environment) emit(v any) int {
	enc := json.NewEncoder(e.out)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return e.fail(err, "Failed to encode result")
	}
	return 0
}

// splitTokens accepts pitches as separate arguments, comma lists or both
func splitTokens(args []string) []string {
	var tokens []string
	for _, arg := range args {
		tokens = append(tokens, strings.FieldsFunc(arg, func(r rune) bool {
			return r == ',' || unicode.IsSpace(r) || r == '[' || r == ']'
		})...)
	}
	return tokens
}

// parsePitches reads integers or note names in universe
func parsePitches(args []string, universe int) ([]int, error) {
	return pcset.ParsePitches(splitTokens(args), universe)
}
