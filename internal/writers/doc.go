// Package writers turns rotated grids into serialized outputs.
//
// Design:
//   • Writers own all presentation knowledge (text rows, JSON).
//   • Engine stays domain-only; app stays orchestration-only.
//   • JSON goes through pkg/api (v1) for a stable wire format.
package writers
