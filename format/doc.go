// Package format enumerates the OpenDDL output encodings.
//
// TextFormat is the human-readable encoding produced by the encode
// package. BinaryFormat is recognized by name so callers and tools can
// select it, but no binary writer exists yet; asking for it surfaces
// ErrBadFormat at the write entry points.
package format
