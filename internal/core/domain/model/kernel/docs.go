// Package kernel contains shared value objects used across all domain aggregates.
//
// The kernel holds concepts that do not belong to any single aggregate:
// entity identifiers (UUID) and geographic coordinates (GeoPoint). All value
// objects here are immutable and validated at construction; zero values are
// invalid and fail Validate().
package kernel
