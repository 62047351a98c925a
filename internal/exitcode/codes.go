// Package exitcode defines named exit codes for the deepwalker CLI.
//
// Each code maps a specific termination condition to a numeric value
// recognized by shell scripts and CI pipelines.
package exitcode

// Exit code constants.
//
// A user interrupt exits with Success: a partial report is still written
// and the run is considered deliberately stopped, not failed.
const (
	Success = 0 // Run finished (or was interrupted by the user)
	Error   = 1 // Invalid directory, bad flags, or uncaught top-level error
)

// Name returns the human-readable name for the given exit code.
// Unknown codes return "unknown".
func Name(code int) string {
	switch code {
	case Success:
		return "Success"
	case Error:
		return "Error"
	default:
		return "unknown"
	}
}
