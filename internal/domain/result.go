package domain

import "time"

// RunSummary describes what a generator run produced
type RunSummary struct {
	TestFiles  int           // Number of test files considered
	Records    int           // Number of records appended
	Bytes      int64         // Bytes appended to the output file
	OutputPath string        // Where records were appended
	Duration   time.Duration // Time taken by the run
}
