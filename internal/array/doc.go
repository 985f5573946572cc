// Package array provides the numeric array model shared by all plotting
// commands, together with loaders for the two on-disk source formats:
//
//   - NumPy .npy dumps (self-describing binary container, arbitrary rank)
//   - headerless delimited text tables (2D only)
//
// Arrays are loaded once, read-only, and discarded after rendering; nothing
// in this package outlives a single invocation.
package array
