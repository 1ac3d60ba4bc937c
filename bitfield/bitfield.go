package bitfield

import "math/bits"

// WordBits is the width of one storage word. Every buffer produced by the
// packing strategies is a []uint32, so fields never straddle more than two
// words.
const WordBits = 32

// Write stores the low width bits of value into words at the given absolute
// bit offset. A field crossing a word boundary is split between the two
// consecutive words. Bits that would land past the end of words are dropped
// silently; a width of 0 writes nothing.
//
// Write assumes the target bits are still zero, as they are in a freshly
// allocated buffer. It ORs into place and does not clear first.
//
// Example:
//
//	words := make([]uint32, 2)
//	bitfield.Write(words, 28, 8, 0xAB) // low 4 bits in words[0], high 4 in words[1]
func Write(words []uint32, startBit, width int, value uint32) {
	if width <= 0 || startBit < 0 {
		return
	}
	if width < WordBits {
		value &= (1 << width) - 1
	}

	idx := startBit / WordBits
	if idx >= len(words) {
		return
	}
	off := startBit % WordBits
	words[idx] |= value << off

	// Spill the bits that did not fit into the next word, if there is one.
	if off+width > WordBits && idx+1 < len(words) {
		words[idx+1] |= value >> (WordBits - off)
	}
}

// Read extracts a width-bit field from words at the given absolute bit
// offset, reassembling fields split across a word boundary. A read starting
// past the end of words returns 0, and a field whose tail runs past the end
// yields only its in-range low bits; a width of 0 reads 0.
//
// Example:
//
//	v := bitfield.Read(words, 28, 8) // inverse of the Write example above
func Read(words []uint32, startBit, width int) uint32 {
	if width <= 0 || startBit < 0 {
		return 0
	}
	idx := startBit / WordBits
	if idx >= len(words) {
		return 0
	}
	off := startBit % WordBits

	v := words[idx] >> off
	if off+width > WordBits && idx+1 < len(words) {
		v |= words[idx+1] << (WordBits - off)
	}
	if width < WordBits {
		v &= (1 << width) - 1
	}
	return v
}

// MinWidth returns the narrowest field width that can hold every value in
// the slice. Empty input needs no storage and reports 0. A slice of zeros
// reports 1, not 0: elements still occupy one bit each so that every index
// stays addressable.
//
// Example:
//
//	bitfield.MinWidth([]uint32{5, 12, 3, 15}) // 4
//	bitfield.MinWidth([]uint32{0, 0, 0})      // 1
func MinWidth(values []uint32) int {
	if len(values) == 0 {
		return 0
	}
	var maxVal uint32
	for _, v := range values {
		maxVal = max(maxVal, v)
	}
	if maxVal == 0 {
		return 1
	}
	return bits.Len32(maxVal)
}

// WordCount returns the number of words needed to store count fields of the
// given width, rounding the final partial word up.
func WordCount(count, width int) int {
	if count == 0 || width == 0 {
		return 0
	}
	return (count*width + WordBits - 1) / WordBits
}
