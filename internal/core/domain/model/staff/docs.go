// Package staff provides the read model of shop staff as seen by task assignment.
//
// The package includes:
//   - Staff: identity, role and the capability attributes used for ranking
//   - Role: Admin, Manager, Cutter, Tailor and Handworker
//   - RoleForStage: the explicit table telling which role works which stage
//
// Staff records are owned by the staff directory. The workflow only reads them:
// to check that an assignee exists and is active, and to rank candidates for a stage.
package staff
