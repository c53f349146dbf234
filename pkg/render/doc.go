// Package render turns a computed layout into pixels: it fits source images
// into cells with letterboxing, blits them onto the shared canvas, and draws
// the optional title and sample-label overlays.
//
// The canvas is the only long-lived mutable buffer in a run. It is owned by
// a single Assembler; concurrent cell workers each write a disjoint cell
// rectangle, so no locking is needed.
package render
