// Package helper acquires and launches RAMMap, the Sysinternals tool that
// performs the actual memory-reclaim operations.
//
// The executable is downloaded on first use as a zip archive, extracted to
// the configured path and reused afterwards. Downloads are retried with
// backoff and guarded by a circuit breaker so a dashboard that keeps
// dispatching while offline fails fast instead of hammering the network.
//
// Spawned processes are started and reaped in the background; the caller
// never waits for RAMMap to exit.
package helper
