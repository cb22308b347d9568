// Package constants provides named constants used throughout the montyhall codebase.
// This centralizes the fixed experiment parameters and file names.
package constants

// Door count constants
const (
	// MinDoors is the smallest door count for which the host can open a door
	// and still leave two closed doors.
	MinDoors = 3

	// HeadlineDoors is the classic three-door game. It gets its own, larger
	// trial count.
	HeadlineDoors = 3

	// DefaultMaxDoors is the largest door count simulated by default.
	DefaultMaxDoors = 30
)

// Trial count constants
const (
	// DefaultThreeDoorTrials is the number of games played for the three-door case.
	DefaultThreeDoorTrials = 10000

	// DefaultOtherTrials is the number of games played for every other door count.
	// Larger door counts therefore carry more variance in the reported rate.
	DefaultOtherTrials = 1000
)

// File name constants
const (
	// DefaultOutputFile is the results table written by a run.
	DefaultOutputFile = "montyHall.csv"

	// DefaultTraceFile receives one JSON line per game at trace log level.
	DefaultTraceFile = "montyHall.trace.jsonl"

	// DefaultLogLevel is the operational log level.
	DefaultLogLevel = "info"
)

// Header is the column header row of the results table.
var Header = []string{"Doors", "Switch?", "Theoretical", "Experimental"}
