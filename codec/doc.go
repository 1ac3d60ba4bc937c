// Package codec implements fixed-width integer compression over 32-bit words
// with O(1) random access into the compressed buffer.
//
// # Strategies
//
// Three unsigned strategies share one contract and differ only in layout:
//
//   - Simple: every element stored at the minimal width, fields packed back
//     to back and allowed to straddle word boundaries. Densest layout.
//   - Aligned: fields never straddle a word boundary, so any element is one
//     word read away. A leading offset word holds the minimum value, which
//     extends the strategy to negative input.
//   - Overflow: a narrow main region plus a side table for rare large
//     outliers, each outlier stored once and referenced inline by a flagged
//     index. Falls back to simple behavior when outliers are too common.
//
// Two signed wrappers reuse the simple layout: ZigZag interleaves sign into
// the low bit, SignSplit keeps a separate sign-bit region ahead of the
// magnitudes.
//
// # State model
//
// Compress returns an Encoded value: the packed words together with the
// immutable State needed to interpret them. Decompress and Get take the
// Encoded value explicitly, so strategy values carry no state of their own
// and any number of goroutines can read the same buffer concurrently. The
// buffer does not describe its own layout (the aligned offset word is the
// one exception); without the State it is opaque.
//
// # Example Usage
//
//	import "github.com/wordpack/wordpack/codec"
//
//	c, err := codec.New("overflow")
//	if err != nil {
//		// unknown strategy name
//	}
//
//	enc, err := c.Compress([]int64{1, 2, 3, 1024, 4, 5, 2048, 6})
//	if err != nil {
//		// negative or over-wide input
//	}
//
//	v, err := c.Get(enc, 3)  // 1024, without decoding the rest
//	all, err := c.Decompress(enc)
//
// # Errors
//
// Get fails with ErrIndexOutOfRange outside [0, Count); Compress rejects
// values outside a strategy's domain with ErrNegativeValue or
// ErrValueTooWide. Handing an Encoded value to a strategy other than the one
// that produced it fails with ErrKindMismatch. Test with errors.Is.
package codec
