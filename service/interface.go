// Package service runs long-lived subsystems in dependency order
package service

// Service defines the lifecycle interface for infrastructure subsystems
// Services manage long-lived resources: the terminal, the audio backend, the simulation goroutine
//
// Lifecycle:
//  1. Construction (explicit, with its dependencies passed in)
//  2. Init() - acquire resources that can fail
//  3. Start() - launch background goroutines
//  4. [runtime operation]
//  5. Stop() - halt goroutines, release resources
type Service interface {
	// Name returns the unique identifier for this service
	Name() string

	// Dependencies returns names of services that must start before this one and stop after it
	Dependencies() []string

	// Init acquires resources; called for every service before any Start
	Init() error

	// Start begins service operation (launches goroutines if any)
	Start() error

	// Stop halts service operation and releases resources
	// Must be idempotent - safe to call multiple times
	Stop() error
}
