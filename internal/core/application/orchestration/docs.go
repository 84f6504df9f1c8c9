// Package orchestration reacts to integration events from the upstream
// delivery services. Each event updates the track through a command handler
// and, where the delivery flow requires it, triggers the driver assignment
// for the next leg. The package is transport agnostic, the kafka adapter
// feeds decoded events into the Coordinator.
package orchestration
