// Package order provides the Order aggregate of the tailoring workflow: one
// production job, or one line item of a larger job.
//
// The package includes:
//   - Order: identity, customer/service references, measurements and status
//   - Status: Placed, Cutting, Handworking, Tailoring, Quality Check,
//     Ready to Deliver and Delivered
//   - StatusForStage: the stage-to-status lookup table used by status synchronization
//
// Key business rules:
//   - Order numbers are immutable once assigned
//   - A line item is an Order with a parent; items cannot have items of their own
//   - Production statuses are written by status synchronization, not set directly
//   - Delivered is terminal
package order
