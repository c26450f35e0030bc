// Package analysis runs the set, scale and serial engines under a
// configuration and collects their results into JSON-ready reports. It is the
// only layer besides the command line that logs.
package analysis
