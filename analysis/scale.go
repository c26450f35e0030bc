package analysis

import (
	"github.com/RyanBlaney/sonido-sets/algorithms/pcset"
	"github.com/RyanBlaney/sonido-sets/algorithms/scale"
	"github.com/RyanBlaney/sonido-sets/logging"
)

// EvennessReport lists the maximally even sets of one cardinality
type EvennessReport struct {
	Universe    int     `json:"universe"`
	Cardinality int     `json:"cardinality"`
	Canonical   []int   `json:"canonical"`
	Intervals   []int   `json:"intervals"`
	Sets        [][]int `json:"sets"`
}

// ConversionReport is a proportional mapping between universes
type ConversionReport struct {
	From   int   `json:"from"`
	To     int   `json:"to"`
	Input  []int `json:"input"`
	Output []int `json:"output"`
}

// MaximallyEven generates every maximally even set of cardinality in the
// configured universe
func (a *SetAnalyzer) MaximallyEven(cardinality int) (*EvennessReport, error) {
	universe := a.config.Universe

	canonical, err := scale.MaxEvenInts(cardinality, universe)
	if err != nil {
		return nil, err
	}
	intervals, err := scale.MaxEvenIntervals(cardinality, universe)
	if err != nil {
		return nil, err
	}
	sets, err := scale.GenerateMaximallyEven(cardinality, universe)
	if err != nil {
		return nil, err
	}

	a.logger.Debug("Generated maximally even sets", logging.Fields{
		"cardinality": cardinality,
		"count":       len(sets),
	})
	return &EvennessReport{
		Universe:    universe,
		Cardinality: cardinality,
		Canonical:   canonical,
		Intervals:   intervals,
		Sets:        sets,
	}, nil
}

// GenerateWellFormed stacks interval from start and analyzes the result
func (a *SetAnalyzer) GenerateWellFormed(start, interval, cardinality int) (*SetReport, error) {
	s, err := scale.GenerateWellFormed(start, interval, cardinality, a.config.Universe)
	if err != nil {
		return nil, err
	}
	if s.Len() < cardinality {
		a.logger.Warn("Generator cycle closed early", logging.Fields{
			"interval":    interval,
			"requested":   cardinality,
			"cardinality": s.Len(),
		})
	}
	return a.AnalyzeSet(s)
}

// Convert maps pcs from the configured universe into outUniverse
func (a *SetAnalyzer) Convert(pcs []int, outUniverse int) (*ConversionReport, error) {
	s, err := pcset.New(a.config.Universe, pcs...)
	if err != nil {
		return nil, err
	}
	converted, err := scale.ConvertSet(s, outUniverse)
	if err != nil {
		return nil, err
	}
	return &ConversionReport{
		From:   a.config.Universe,
		To:     outUniverse,
		Input:  s.Pcs(),
		Output: converted.Pcs(),
	}, nil
}
