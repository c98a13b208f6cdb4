package exitcodes

// Exit codes for dirsweep
// These codes form the operational contract with scripts and operators
const (
	Success         = 0 // Traversal completed (per-entry errors do not change this)
	UsageError      = 1 // Wrong arguments or unparsable minimum age
	InvalidConfig   = 2 // Configuration file invalid or missing
	SafetyViolation = 3 // Safety validator refused the sweep root
	RuntimeError    = 4 // Runtime error during execution
)
