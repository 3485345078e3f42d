// Package unit contains the shipment tracking domain model: the ShipmentUnit
// aggregate root, the immutable Checkpoint entity it owns, and the closed
// Status enumeration.
//
// All types follow the construct-only-through-validated-factory pattern:
// private fields, New*/Restore* constructors joined with errors.Join, and a
// Validate method that rejects zero-value instances. There are no setters
// after creation; the aggregate changes only through AddCheckpoint.
package unit
