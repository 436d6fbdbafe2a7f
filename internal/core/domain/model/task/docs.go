// Package task provides the Task aggregate: one unit of assigned work for one
// production stage of an order or line item.
//
// The package includes:
//   - Task: the aggregate root holding assignment, progress and history
//   - Stage: the production steps (Cutting, Handworking, Tailoring, Quality Check)
//   - Status: Pending, In Progress, Done and Reassigned
//   - HistoryEntry: append-only record of assignment activity
//   - TaskSaved: the event emitted after a task write
//
// Key business rules:
//   - A task is active while it is neither flagged as reassigned nor in Reassigned status
//   - Reassignment never overwrites: the old task is flipped to Reassigned, its history
//     grows by one entry, and a fresh Pending task takes over the stage
//   - A reassigned task is frozen; its status can no longer change
package task
