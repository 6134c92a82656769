// Package writers turns a built profile model into serialized outputs.
//
// Design:
//   • Writers own all presentation knowledge (TSV matrices, JSON).
//   • core/profile stays domain-only; app only picks a format name.
//   • JSON goes through pkg/api (v1) for a stable wire format.
package writers
