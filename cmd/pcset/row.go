package main

import (
	"gopkg.in/alecthomas/kingpin.v2"

	"github.com/RyanBlaney/sonido-sets/logging"
)

func pcsetRow(app *kingpin.Application, env *environment) (*kingpin.CmdClause, handler) {
	row := app.Command("row", "tone row matrix, derivation and combinatoriality")

	analyze := row.Command("analyze", "build the matrix and report serial properties")
	analyzePitches := analyze.Arg("pitches", "the row, every pitch class once").Required().Strings()

	form := row.Command("form", "print one row form such as P0, I5, R11 or RI3")
	formLabel := form.Arg("form", "row form label").Required().String()
	formPitches := form.Arg("pitches", "the row, every pitch class once").Required().Strings()

	return row, func(input string) int {
		analyzer, err := env.rowAnalyzer()
		if err != nil {
			return env.fail(err, "Invalid configuration")
		}
		universe := analyzer.Universe()

		switch input {
		case analyze.FullCommand():
			pcs, err := parsePitches(*analyzePitches, universe)
			if err != nil {
				return env.fail(err, "Invalid row")
			}
			report, err := analyzer.Analyze(pcs)
			if err != nil {
				return env.fail(err, "Row analysis failed")
			}
			return env.emit(report)
		case form.FullCommand():
			pcs, err := parsePitches(*formPitches, universe)
			if err != nil {
				return env.fail(err, "Invalid row")
			}
			report, err := analyzer.Form(pcs, *formLabel)
			if err != nil {
				return env.fail(err, "Row form lookup failed")
			}
			return env.emit(report)
		}
		env.logger.Warn("Unhandled row command", logging.Fields{"input": input})
		return 2
	}
}
