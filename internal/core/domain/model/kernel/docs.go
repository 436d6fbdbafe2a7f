// Package kernel holds the value objects shared by every aggregate of the
// workflow engine: UUID identifiers for orders, tasks and staff, and the
// shop-facing OrderNumber.
//
// Value objects reject their zero value in Validate so aggregates rebuilt from
// storage cannot silently carry an empty identifier.
package kernel
