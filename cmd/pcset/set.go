package main

import (
	"gopkg.in/alecthomas/kingpin.v2"
)

func pcsetSet(app *kingpin.Application, env *environment) (*kingpin.CmdClause, handler) {
	set := app.Command("set", "report every property of a pitch-class set")
	pitches := set.Arg("pitches", "pitch classes, as integers or note names").Required().Strings()

	return set, func(input string) int {
		analyzer, err := env.setAnalyzer()
		if err != nil {
			return env.fail(err, "Invalid configuration")
		}
		pcs, err := parsePitches(*pitches, analyzer.Universe())
		if err != nil {
			return env.fail(err, "Invalid pitches")
		}
		report, err := analyzer.Analyze(pcs)
		if err != nil {
			return env.fail(err, "Set analysis failed")
		}
		return env.emit(report)
	}
}

func pcsetCompare(app *kingpin.Application, env *environment) (*kingpin.CmdClause, handler) {
	compare := app.Command("compare", "relate two sets by T/I equivalence, Z-relation or inclusion")
	first := compare.Arg("first", "first set, comma separated").Required().String()
	second := compare.Arg("second", "second set, comma separated").Required().String()

	return compare, func(input string) int {
		analyzer, err := env.setAnalyzer()
		if err != nil {
			return env.fail(err, "Invalid configuration")
		}
		a, err := parsePitches([]string{*first}, analyzer.Universe())
		if err != nil {
			return env.fail(err, "Invalid first set")
		}
		b, err := parsePitches([]string{*second}, analyzer.Universe())
		if err != nil {
			return env.fail(err, "Invalid second set")
		}
		report, err := analyzer.Compare(a, b)
		if err != nil {
			return env.fail(err, "Comparison failed")
		}
		return env.emit(report)
	}
}

func pcsetContains(app *kingpin.Application, env *environment) (*kingpin.CmdClause, handler) {
	contains := app.Command("contains", "find every T/I form of a subset inside a superset")
	subset := contains.Arg("subset", "subset, comma separated").Required().String()
	superset := contains.Arg("superset", "superset, comma separated").Required().String()

	return contains, func(input string) int {
		analyzer, err := env.setAnalyzer()
		if err != nil {
			return env.fail(err, "Invalid configuration")
		}
		sub, err := parsePitches([]string{*subset}, analyzer.Universe())
		if err != nil {
			return env.fail(err, "Invalid subset")
		}
		super, err := parsePitches([]string{*superset}, analyzer.Universe())
		if err != nil {
			return env.fail(err, "Invalid superset")
		}
		report, err := analyzer.Inclusions(sub, super)
		if err != nil {
			return env.fail(err, "Inclusion search failed")
		}
		return env.emit(report)
	}
}
