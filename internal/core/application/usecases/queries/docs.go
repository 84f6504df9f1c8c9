// Package queries contains read-only operations for track data.
// Implements the Query side of the CQRS architecture. Detail queries load
// through the domain repositories, list queries read the database directly
// for efficient filtering and paging.
package queries
