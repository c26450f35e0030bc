package analysis

import (
	"fmt"

	"github.com/RyanBlaney/sonido-sets/algorithms/pcset"
	"github.com/RyanBlaney/sonido-sets/algorithms/serial"
	"github.com/RyanBlaney/sonido-sets/config"
	"github.com/RyanBlaney/sonido-sets/logging"
)

// RowReport collects the serial properties of a tone row
type RowReport struct {
	Universe int      `json:"universe"`
	Row      []int    `json:"row"`
	Pitches  []string `json:"pitches,omitempty"`

	Matrix  [][]int    `json:"matrix"`
	Labeled [][]string `json:"labeled,omitempty"`
	Sectors [][]int    `json:"sectors,omitempty"`

	AllInterval      bool                    `json:"all_interval"`
	Derivations      []serial.Derivation     `json:"derivations"`
	Combinatoriality serial.Combinatoriality `json:"combinatoriality"`
	Combinatorial    bool                    `json:"combinatorial"`
	Summary          string                  `json:"summary"`
}

// FormReport is one named form of a row
type FormReport struct {
	Form    serial.RowForm `json:"form"`
	Pcs     []int          `json:"pcs"`
	Pitches []string       `json:"pitches,omitempty"`
}

// RowAnalyzer builds row reports under a RowConfig
type RowAnalyzer struct {
	config         *config.RowConfig
	representation pcset.Representation
	logger         logging.Logger
}

// NewRowAnalyzer validates cfg and scopes logger to the analyzer. A nil cfg
// uses the defaults; a nil logger derives one from the global logger.
func NewRowAnalyzer(cfg *config.RowConfig, logger logging.Logger) (*RowAnalyzer, error) {
	if cfg == nil {
		cfg = config.DefaultRowConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid row config: %w", err)
	}
	rep, _ := cfg.PitchRepresentation()

	if logger == nil {
		logger = logging.GetGlobalLogger()
	}
	return &RowAnalyzer{
		config:         cfg,
		representation: rep,
		logger: logger.WithFields(logging.Fields{
			"component": "row_analyzer",
			"universe":  cfg.Universe,
		}),
	}, nil
}

// Universe returns the configured universe
func (a *RowAnalyzer) Universe() int {
	return a.config.Universe
}

// Analyze validates pcs as a row and reports on it
func (a *RowAnalyzer) Analyze(pcs []int) (*RowReport, error) {
	row, err := serial.NewRow(a.config.Universe, pcs...)
	if err != nil {
		return nil, err
	}
	logger := a.logger.WithFields(logging.Fields{"row": row.String()})
	logger.Debug("Analyzing row")

	matrix := row.Matrix()
	report := &RowReport{
		Universe:    row.Universe(),
		Row:         row.Pcs(),
		Matrix:      matrix.Rows(),
		AllInterval: row.AllInterval(),
	}

	if a.representation == pcset.Named {
		if report.Pitches, err = pcset.FormatPitches(report.Row, row.Universe(), pcset.Named); err != nil {
			return nil, err
		}
	}
	if a.config.Labels {
		if report.Labeled, err = matrix.Labeled(a.representation); err != nil {
			return nil, err
		}
	}
	if a.config.SectorSize > 0 {
		if report.Sectors, err = matrix.Sectors(a.config.SectorSize); err != nil {
			return nil, err
		}
	}

	if report.Derivations, err = row.Derivations(); err != nil {
		logger.Error(err, "Derivation analysis failed")
		return nil, err
	}

	// a one-element universe has no halves to compare
	if row.Universe() > 1 {
		if report.Combinatoriality, err = row.Combinatoriality(); err != nil {
			logger.Error(err, "Combinatoriality analysis failed")
			return nil, err
		}
	}
	report.Combinatorial = report.Combinatoriality.Combinatorial()
	report.Summary = report.Combinatoriality.String()

	logger.Debug("Row analysis complete", logging.Fields{
		"all_interval":  report.AllInterval,
		"combinatorial": report.Combinatorial,
	})
	return report, nil
}

// Form resolves a row-form label such as "RI5" against pcs
func (a *RowAnalyzer) Form(pcs []int, label string) (*FormReport, error) {
	row, err := serial.NewRow(a.config.Universe, pcs...)
	if err != nil {
		return nil, err
	}
	form, err := serial.ParseRowForm(label)
	if err != nil {
		return nil, err
	}
	form.Level %= row.Universe()

	report := &FormReport{Form: form, Pcs: row.Form(form)}
	if a.representation == pcset.Named {
		if report.Pitches, err = pcset.FormatPitches(report.Pcs, row.Universe(), pcset.Named); err != nil {
			return nil, err
		}
	}
	return report, nil
}
