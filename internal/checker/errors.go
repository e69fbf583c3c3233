package checker

import "errors"

// Sentinel errors for common failure conditions.
// These can be used with errors.Is() for error type checking.
var (
	// ErrDockerNotFound indicates the container runtime binary is missing
	ErrDockerNotFound = errors.New("docker not found. Install docker to run the style checker")

	// ErrNoReport indicates the checker container produced no report file
	ErrNoReport = errors.New("checker produced no report file")
)
