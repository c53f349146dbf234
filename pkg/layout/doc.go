// Package layout computes collage geometry: the representative aspect ratio
// of a set of images, the row/column grid that holds them, and the sampled
// subset shown when a row limit would otherwise be exceeded.
//
// All functions are pure and deterministic for a given randomness source;
// nothing in this package touches the filesystem or global state.
package layout
