// Package services provides domain services that orchestrate business operations
// across multiple domain entities in the workshop system. It implements business
// workflows that don't naturally belong to a single aggregate root.
//
// The package includes:
//   - QualityGate: A domain service evaluating a job's holding point sign-offs
//
// Domain services coordinate between aggregates, implementing business logic that
// spans multiple bounded contexts following Domain-Driven Design principles.
package services
