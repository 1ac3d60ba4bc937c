// Package bitfield provides word-granular bit field access for integer compression.
// It is the storage primitive shared by every packing strategy in this module.
//
// # Layout
//
// A buffer is a slice of 32-bit words. A field is written at an absolute bit
// offset with a fixed width between 0 and 32 bits; fields are packed
// back-to-back so a field may straddle two consecutive words. Bits fill each
// word from least significant to most significant.
//
// # Out-of-range policy
//
// The primitive never grows the buffer and never panics on out-of-range
// offsets. A write whose field runs past the last word silently drops the
// excess bits; a read from past the last word yields 0. Callers that size
// buffers with WordCount never hit either case, and the strategy layers rely
// on this leniency when handed short buffers instead of failing mid-decode.
//
// # Example Usage
//
//	import "github.com/wordpack/wordpack/bitfield"
//
//	values := []uint32{5, 12, 3, 15, 7, 2, 9, 11}
//	width := bitfield.MinWidth(values) // 4 bits (max value 15)
//
//	words := make([]uint32, bitfield.WordCount(len(values), width))
//	for i, v := range values {
//		bitfield.Write(words, i*width, width, v)
//	}
//
//	// Fields are independently addressable; no sequential decode needed.
//	third := bitfield.Read(words, 2*width, width) // 3
package bitfield
