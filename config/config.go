package config

import (
	"fmt"

	"github.com/BurntSushi/toml"

	"github.com/RyanBlaney/sonido-sets/algorithms/common"
	"github.com/RyanBlaney/sonido-sets/algorithms/pcset"
	"github.com/RyanBlaney/sonido-sets/algorithms/scale"
	"github.com/RyanBlaney/sonido-sets/logging"
)

// AnalysisConfig controls set analysis
type AnalysisConfig struct {
	Universe       int    `json:"universe" toml:"universe"`
	Representation string `json:"representation" toml:"representation"` // "numeric", "named"
	CVVariant      string `json:"cv_variant" toml:"cv_variant"`         // "prime", "nondegenerate"

	// Subset enumeration
	IncludeSubsets        bool `json:"include_subsets" toml:"include_subsets"`
	UniqueAbstractSubsets bool `json:"unique_abstract_subsets" toml:"unique_abstract_subsets"`
	MaxEnumerationSize    int  `json:"max_enumeration_size" toml:"max_enumeration_size"` // largest set whose subsets are listed

	IncludeFourier bool   `json:"include_fourier" toml:"include_fourier"`
	LogLevel       string `json:"log_level" toml:"log_level"`
}

// RowConfig controls tone row analysis
type RowConfig struct {
	Universe       int    `json:"universe" toml:"universe"`
	Labels         bool   `json:"labels" toml:"labels"`
	Representation string `json:"representation" toml:"representation"`
	SectorSize     int    `json:"sector_size,omitempty" toml:"sector_size"` // 0 disables sectors
}

// File is the layout of a configuration file
type File struct {
	Analysis AnalysisConfig `json:"analysis" toml:"analysis"`
	Row      RowConfig      `json:"row" toml:"row"`
}

// DefaultAnalysisConfig returns defaults for the twelve-tone universe
func DefaultAnalysisConfig() *AnalysisConfig {
	return &AnalysisConfig{
		Universe:              12,
		Representation:        pcset.Numeric.String(),
		CVVariant:             scale.CVPrime.String(),
		IncludeSubsets:        false,
		UniqueAbstractSubsets: true,
		MaxEnumerationSize:    12,
		IncludeFourier:        true,
		LogLevel:              "info",
	}
}

// DefaultRowConfig returns defaults for the twelve-tone universe
func DefaultRowConfig() *RowConfig {
	return &RowConfig{
		Universe:       12,
		Labels:         true,
		Representation: pcset.Numeric.String(),
	}
}

// Default returns a File holding every default
func Default() *File {
	return &File{
		Analysis: *DefaultAnalysisConfig(),
		Row:      *DefaultRowConfig(),
	}
}

// LoadFile reads a TOML file over the defaults. Unknown keys are rejected.
func LoadFile(path string) (*File, error) {
	cfg := Default()
	md, err := toml.DecodeFile(path, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to decode config %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("unknown config key %q in %s", undecoded[0].String(), path)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks both sections
func (f *File) Validate() error {
	if err := f.Analysis.Validate(); err != nil {
		return fmt.Errorf("analysis: %w", err)
	}
	if err := f.Row.Validate(); err != nil {
		return fmt.Errorf("row: %w", err)
	}
	return nil
}

// Validate checks the universe and every enumerated option
func (c *AnalysisConfig) Validate() error {
	if err := common.ValidateModulus(c.Universe); err != nil {
		return err
	}
	if _, err := c.PitchRepresentation(); err != nil {
		return err
	}
	if _, err := c.Variant(); err != nil {
		return err
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	if c.MaxEnumerationSize < 0 {
		return fmt.Errorf("max_enumeration_size %d is negative", c.MaxEnumerationSize)
	}
	return nil
}

// PitchRepresentation parses Representation
func (c *AnalysisConfig) PitchRepresentation() (pcset.Representation, error) {
	return parseRepresentation(c.Representation, c.Universe)
}

// Variant parses CVVariant
func (c *AnalysisConfig) Variant() (scale.CVVariant, error) {
	return scale.ParseCVVariant(c.CVVariant)
}

// Level parses LogLevel
func (c *AnalysisConfig) Level() (logging.Level, error) {
	return logging.ParseLevel(c.LogLevel)
}

// Validate checks the universe, representation and sector size
func (c *RowConfig) Validate() error {
	if err := common.ValidateModulus(c.Universe); err != nil {
		return err
	}
	if _, err := c.PitchRepresentation(); err != nil {
		return err
	}
	if c.SectorSize < 0 || (c.SectorSize > 0 && c.Universe%c.SectorSize != 0) {
		return common.Errorf(common.ErrLengthMismatch, "sector_size %d does not divide universe %d", c.SectorSize, c.Universe)
	}
	return nil
}

// PitchRepresentation parses Representation
func (c *RowConfig) PitchRepresentation() (pcset.Representation, error) {
	return parseRepresentation(c.Representation, c.Universe)
}

func parseRepresentation(name string, universe int) (pcset.Representation, error) {
	rep, err := pcset.ParseRepresentation(name)
	if err != nil {
		return rep, err
	}
	if rep == pcset.Named && universe != pcset.NamedUniverse {
		return rep, common.Errorf(common.ErrUnknownPitch, "named representation needs universe %d, got %d", pcset.NamedUniverse, universe)
	}
	return rep, nil
}
