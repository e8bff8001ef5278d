// Package harness provides utilities for integration testing the xrf CLI.
// It handles binary compilation, environment isolation, and command execution.
//
// Environment variables managed:
//   - XRF_HOME: Isolated per test (temp directory)
//   - XRF_DEBUG: Disabled to reduce noise
//   - XRF_BACKEND: Cleared so the built-in backend is used
package harness
