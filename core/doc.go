// Package core defines the fundamental index types and the error carrier
// shared by every lvlclust package.
//
// What:
//
//   - PointIndex / ClusterLabel / ArcIndex: compact unsigned identifiers with
//     a reserved top sentinel (NAPoint, NALabel) marking "not assigned".
//   - Kind: enumerated failure classes (InvalidInput, NoSolution, …) usable
//     as errors.Is targets.
//   - Error: a failure record carrying its kind, the source location where it
//     was raised, and a message; the most recent record is retrievable via
//     LatestError.
//
// Why:
//
//   - The clustering engine indexes millions of points; 32-bit identifiers
//     halve the footprint of every arc array and label buffer.
//   - Enumerated kinds keep error branching exact across package boundaries
//     without string matching.
//
// Errors:
//
//   - Every fallible lvlclust operation returns nil or a *core.Error; helpers
//     propagate kinds upward unchanged and never mask a downstream failure.
package core
