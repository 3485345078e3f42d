// Package kernel contains shared value objects used across the domain model.
// These are the building blocks that aggregates and entities are composed of,
// with validation enforced at construction time.
package kernel
