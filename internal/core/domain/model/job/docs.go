// Package job contains the Job aggregate root and its lifecycle state machine.
//
// The aggregate is the single authority over a job's shop-floor stage. All
// transitions — manual advancement, supervisor overrides, and the automatic
// derivations triggered by assignment and quality-ledger activity — go through
// its methods, which enforce the fixed sequence
//
//	New -> Assigned -> InProgress -> QcInProgress -> ReadyForDelivery -> Delivered -> Invoiced
//
// and the single permitted regression Assigned -> New. Every transition is
// recorded as a StageChange event for post-commit notification.
package job
