package main

import (
	"gopkg.in/alecthomas/kingpin.v2"

	"github.com/RyanBlaney/sonido-sets/logging"
)

func pcsetScale(app *kingpin.Application, env *environment) (*kingpin.CmdClause, handler) {
	scale := app.Command("scale", "scale theory: maximal evenness, well-formed generation, conversion")

	even := scale.Command("even", "list the maximally even sets of a cardinality")
	evenCardinality := even.Arg("cardinality", "number of pitch classes").Required().Int()

	generate := scale.Command("generate", "stack a generator interval and analyze the result")
	genStart := generate.Flag("start", "first pitch class").Default("0").Int()
	genInterval := generate.Arg("interval", "generator interval").Required().Int()
	genCardinality := generate.Arg("cardinality", "number of stacked intervals").Required().Int()

	convert := scale.Command("convert", "map a set proportionally into another universe")
	convertTo := convert.Arg("to", "target universe").Required().Int()
	convertPitches := convert.Arg("pitches", "pitch classes in the source universe").Required().Strings()

	return scale, func(input string) int {
		analyzer, err := env.setAnalyzer()
		if err != nil {
			return env.fail(err, "Invalid configuration")
		}

		switch input {
		case even.FullCommand():
			report, err := analyzer.MaximallyEven(*evenCardinality)
			if err != nil {
				return env.fail(err, "Maximally even generation failed")
			}
			return env.emit(report)
		case generate.FullCommand():
			report, err := analyzer.GenerateWellFormed(*genStart, *genInterval, *genCardinality)
			if err != nil {
				return env.fail(err, "Well-formed generation failed")
			}
			return env.emit(report)
		case convert.FullCommand():
			pcs, err := parsePitches(*convertPitches, analyzer.Universe())
			if err != nil {
				return env.fail(err, "Invalid pitches")
			}
			report, err := analyzer.Convert(pcs, *convertTo)
			if err != nil {
				return env.fail(err, "Conversion failed")
			}
			return env.emit(report)
		}
		env.logger.Warn("Unhandled scale command", logging.Fields{"input": input})
		return 2
	}
}
