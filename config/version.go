package config

// Version system:
// vMAJOR.MINOR.PATCH

// Centralized version control
const (
	// Executable
	Main_version = "v1.0.0"

	// Modular tools
	Benchmark   = "v1.1.0" // Formerly Lab Buddy's "-benchmark" wrapper
	Compare     = "v1.0.0"
	Sequence    = "v1.0.0"
	SanityCheck = "v1.0.0"
)

// Fixed workload of the compare tool.
const (
	SequenceIndex = 15
	TimingRuns    = 10000
)
