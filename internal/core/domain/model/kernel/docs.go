// Package kernel provides core domain primitives for the workshop system.
//
// It currently contains a single building block:
//   - UUID: a value object for entity identifiers with validation and
//     comparison capabilities
//
// Kernel primitives are immutable and thread-safe, and enforce that they are
// created through their factory functions rather than as zero values.
package kernel
