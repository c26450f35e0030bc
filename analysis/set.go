package analysis

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/RyanBlaney/sonido-sets/algorithms/common"
	"github.com/RyanBlaney/sonido-sets/algorithms/pcset"
	"github.com/RyanBlaney/sonido-sets/algorithms/scale"
	"github.com/RyanBlaney/sonido-sets/config"
	"github.com/RyanBlaney/sonido-sets/logging"
)

// SetReport collects every property of a single pitch-class set
type SetReport struct {
	Universe    int      `json:"universe"`
	Pcs         []int    `json:"pcs"`
	Pitches     []string `json:"pitches,omitempty"`
	Cardinality int      `json:"cardinality"`

	NormalOrder         []int `json:"normal_order"`
	PrimeForm           []int `json:"prime_form"`
	IntervalClassVector []int `json:"interval_class_vector"`
	IndexVector         []int `json:"index_vector"`
	Complement          []int `json:"complement"`
	SetClassSize        int   `json:"set_class_size"` // distinct members under T/I

	Symmetry               []pcset.Axis `json:"symmetry"`
	InversionallySymmetric bool         `json:"inversionally_symmetric"`

	WellFormed               bool   `json:"well_formed"`
	Generator                int    `json:"generator,omitempty"`
	Degenerate               bool   `json:"degenerate"`
	CardinalityEqualsVariety bool   `json:"cardinality_equals_variety"`
	CVVariant                string `json:"cv_variant"`
	MaximallyEven            bool   `json:"maximally_even"`
	MyhillsProperty          bool   `json:"myhills_property"`

	IntervalContent IntervalContent `json:"interval_content"`
	Fourier         *FourierSummary `json:"fourier,omitempty"`
	Subsets         *SubsetsReport  `json:"subsets,omitempty"`
}

// IntervalContent summarizes the interval-class vector
type IntervalContent struct {
	Total    int     `json:"total"` // number of unordered pairs
	Mean     float64 `json:"mean"`
	Variance float64 `json:"variance"`
}

// FourierSummary holds the DFT magnitudes of the characteristic vector and
// the strongest component above F_0
type FourierSummary struct {
	Magnitudes []float64 `json:"magnitudes"`
	Peak       float64   `json:"peak"`
	Dominant   int       `json:"dominant,omitempty"`
}

// SubsetsReport lists literal and abstract subsets, or records why they were skipped
type SubsetsReport struct {
	Literal  [][]int `json:"literal,omitempty"`
	Abstract [][]int `json:"abstract,omitempty"`
	Skipped  bool    `json:"skipped,omitempty"`
}

// ComparisonReport is the outcome of comparing two sets
type ComparisonReport struct {
	Relation          pcset.Relation `json:"relation"`
	Description       string         `json:"description"`
	FourierEquivalent bool           `json:"fourier_equivalent"`
}

// InclusionReport lists the members of a subset's set-class found in a superset
type InclusionReport struct {
	Subset     []int             `json:"subset"`
	Superset   []int             `json:"superset"`
	Inclusions []pcset.Inclusion `json:"inclusions"`
	TnCount    int               `json:"tn_count"`
	TnICount   int               `json:"tni_count"`
	Unique     int               `json:"unique"` // distinct included sets
}

// SetAnalyzer builds set reports under an AnalysisConfig
type SetAnalyzer struct {
	config         *config.AnalysisConfig
	representation pcset.Representation
	variant        scale.CVVariant
	logger         logging.Logger
}

// NewSetAnalyzer validates cfg and scopes logger to the analyzer. A nil cfg
// uses the defaults; a nil logger derives one from the global logger.
func NewSetAnalyzer(cfg *config.AnalysisConfig, logger logging.Logger) (*SetAnalyzer, error) {
	if cfg == nil {
		cfg = config.DefaultAnalysisConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid analysis config: %w", err)
	}

	rep, _ := cfg.PitchRepresentation()
	variant, _ := cfg.Variant()
	level, _ := cfg.Level()

	if logger == nil {
		logger = logging.GetGlobalLogger()
	}
	logger = logger.WithFields(logging.Fields{
		"component": "set_analyzer",
		"universe":  cfg.Universe,
	})
	logger.SetLevel(level)

	return &SetAnalyzer{
		config:         cfg,
		representation: rep,
		variant:        variant,
		logger:         logger,
	}, nil
}

// Universe returns the configured universe
func (a *SetAnalyzer) Universe() int {
	return a.config.Universe
}

// Analyze reduces pcs into the configured universe and reports on the set
func (a *SetAnalyzer) Analyze(pcs []int) (*SetReport, error) {
	s, err := pcset.New(a.config.Universe, pcs...)
	if err != nil {
		return nil, err
	}
	return a.AnalyzeSet(s)
}

// AnalyzeSet reports every property of s
func (a *SetAnalyzer) AnalyzeSet(s pcset.Set) (*SetReport, error) {
	if s.IsEmpty() {
		return nil, common.Errorf(common.ErrEmptyInput, "nothing to analyze")
	}

	logger := a.logger.WithFields(logging.Fields{"set": s.String()})
	logger.Debug("Analyzing set", logging.Fields{"cardinality": s.Len()})

	report := &SetReport{
		Universe:               s.Universe(),
		Pcs:                    s.Pcs(),
		Cardinality:            s.Len(),
		IntervalClassVector:    s.IntervalClassVector(),
		IndexVector:            s.IndexVector(),
		Complement:             s.Complement().Pcs(),
		InversionallySymmetric: s.InversionallySymmetric(),
		CVVariant:              a.variant.String(),
	}

	var err error
	if report.Pitches, err = a.pitches(report.Pcs, s.Universe()); err != nil {
		return nil, err
	}
	if report.NormalOrder, err = s.NormalOrder(); err != nil {
		return nil, err
	}
	if report.PrimeForm, err = s.PrimeForm(); err != nil {
		return nil, err
	}
	if report.Symmetry, err = s.Symmetry(); err != nil {
		return nil, err
	}

	class, err := s.SetClass()
	if err != nil {
		return nil, err
	}
	report.SetClassSize = len(class.Distinct())

	if err := a.scaleProperties(s, report); err != nil {
		logger.Error(err, "Scale analysis failed")
		return nil, err
	}

	report.IntervalContent = summarizeIntervals(report.IntervalClassVector)
	if a.config.IncludeFourier {
		report.Fourier = summarizeFourier(s.FourierMagnitudes())
	}
	if a.config.IncludeSubsets {
		report.Subsets = a.subsets(s, logger)
	}

	logger.Debug("Set analysis complete", logging.Fields{
		"prime_form":     pcset.Bracket(report.PrimeForm),
		"maximally_even": report.MaximallyEven,
		"well_formed":    report.WellFormed,
	})
	return report, nil
}

func (a *SetAnalyzer) scaleProperties(s pcset.Set, report *SetReport) error {
	generator, wellFormed, err := scale.WellFormed(s)
	if err != nil {
		return err
	}
	report.WellFormed = wellFormed
	report.Generator = generator

	if report.Degenerate, err = scale.Degenerate(s); err != nil {
		return err
	}
	if report.CardinalityEqualsVariety, err = scale.CardinalityEqualsVariety(s, a.variant); err != nil {
		return err
	}
	if report.MaximallyEven, err = scale.IsMaximallyEven(s); err != nil {
		return err
	}
	report.MyhillsProperty, err = scale.MyhillsProperty(s)
	return err
}

func (a *SetAnalyzer) subsets(s pcset.Set, logger logging.Logger) *SubsetsReport {
	if s.Len() > a.config.MaxEnumerationSize {
		logger.Warn("Skipping subset enumeration", logging.Fields{
			"cardinality": s.Len(),
			"limit":       a.config.MaxEnumerationSize,
		})
		return &SubsetsReport{Skipped: true}
	}
	return &SubsetsReport{
		Literal:  s.AllLiteralSubsets(),
		Abstract: s.AbstractSubsets(a.config.UniqueAbstractSubsets),
	}
}

// Compare relates two sets of the configured universe
func (a *SetAnalyzer) Compare(first, second []int) (*ComparisonReport, error) {
	x, err := pcset.New(a.config.Universe, first...)
	if err != nil {
		return nil, err
	}
	y, err := pcset.New(a.config.Universe, second...)
	if err != nil {
		return nil, err
	}

	rel, err := pcset.Compare(x, y)
	if err != nil {
		return nil, err
	}
	a.logger.Debug("Compared sets", logging.Fields{
		"first":    x.String(),
		"second":   y.String(),
		"relation": rel.Kind.String(),
	})

	return &ComparisonReport{
		Relation:          rel,
		Description:       rel.String(),
		FourierEquivalent: pcset.FourierEquivalent(x, y),
	}, nil
}

// Inclusions finds every T/I form of subset inside superset
func (a *SetAnalyzer) Inclusions(subset, superset []int) (*InclusionReport, error) {
	sub, err := pcset.New(a.config.Universe, subset...)
	if err != nil {
		return nil, err
	}
	super, err := pcset.New(a.config.Universe, superset...)
	if err != nil {
		return nil, err
	}

	found, err := super.ContainsSubset(sub)
	if err != nil {
		return nil, err
	}

	report := &InclusionReport{
		Subset:     sub.Pcs(),
		Superset:   super.Pcs(),
		Inclusions: []pcset.Inclusion{},
	}
	distinct := make([][]int, 0, len(found))
	for _, inc := range found {
		report.Inclusions = append(report.Inclusions, inc)
		distinct = append(distinct, inc.Pcs)
		if inc.Transform.Op == pcset.Inversion {
			report.TnICount++
		} else {
			report.TnCount++
		}
	}
	report.Unique = len(common.UniqueSubarrays(distinct, false))

	a.logger.Debug("Searched inclusions", logging.Fields{
		"subset":   sub.String(),
		"superset": super.String(),
		"found":    len(found),
	})
	return report, nil
}

func (a *SetAnalyzer) pitches(pcs []int, universe int) ([]string, error) {
	if a.representation != pcset.Named {
		return nil, nil
	}
	return pcset.FormatPitches(pcs, universe, pcset.Named)
}

func summarizeIntervals(icv []int) IntervalContent {
	content := IntervalContent{}
	if len(icv) == 0 {
		return content
	}

	values := make([]float64, len(icv))
	for i, count := range icv {
		values[i] = float64(count)
		content.Total += count
	}
	if len(values) < 2 {
		content.Mean = values[0]
		return content
	}
	content.Mean, content.Variance = stat.MeanVariance(values, nil)
	return content
}

func summarizeFourier(magnitudes []float64) *FourierSummary {
	summary := &FourierSummary{Magnitudes: magnitudes}
	if len(magnitudes) > 1 {
		summary.Peak = floats.Max(magnitudes[1:])
		summary.Dominant = floats.MaxIdx(magnitudes[1:]) + 1
	}
	return summary
}
