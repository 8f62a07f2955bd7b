// Package delivery contains the delivery Note aggregate and its numbering
// scheme.
//
// Exactly one note exists per job, created once the job clears QC. The note
// carries a sequential, year-scoped human-readable number (DN-25-0007) and
// walks the status chain Generated -> Dispatched -> Delivered -> Signed,
// with each transition precondition-checked against the current status.
// A signed note is immutable except for corrective notes.
package delivery
