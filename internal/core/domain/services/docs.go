// Package services provides domain services of the tailoring workflow: rules
// that span several aggregates or work on collections of them.
//
// The package includes:
//   - StatusPolicy: decides which order status a saved task announces
//     (LastWriteWins and Monotonic implementations)
//   - PartitionTasks: groups a staff member's tasks into board columns
//   - StaffRanker: orders assignment candidates for a stage
//
// Everything here is pure: no I/O, no clocks, no shared state.
package services
