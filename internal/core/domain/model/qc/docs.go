// Package qc contains the quality-control entities: the HoldingPoint
// catalogue entry and the per-job Signoff.
//
// Holding points form an ordered, administratively maintained catalogue of
// inspection checkpoints. When a job's quality ledger is initialized, the
// currently active catalogue is snapshotted into one pending Signoff per
// holding point; later catalogue edits never retroactively alter a job's
// ledger. Sign-off order is tracked by sequence number but not enforced —
// any holding point may be signed in any order.
package qc
