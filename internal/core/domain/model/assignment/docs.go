// Package assignment contains the Assignment entity linking a worker to a
// job with a role and an activity status.
//
// A worker may hold at most one active (Assigned or Started) assignment per
// job; the uniqueness is enforced by the assign-worker use case, not here.
// Removal does not delete the record — re-assignment after removal creates a
// new record, preserving history.
package assignment
