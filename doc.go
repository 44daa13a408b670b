// Package transcode provides pure, allocation-free conversions between
// UTF-8, UTF-16 (native-endian code units) and Latin-1 (ISO-8859-1).
//
// Every function in this package is a plain transformation of one
// input buffer into one output buffer: no state survives a call, no
// function performs I/O, and none of the converters retry or block.
// Callers own and size all buffers; see each function's doc comment
// for its buffer-size precondition.
//
// The package is organized around three concerns:
//
//   - decoding a single UTF-8 code point with byte-exact failure
//     reporting (DecodeOne and the Reporters it drives),
//   - bounded conversion between UTF-16 and UTF-8, including the
//     truncation-fill behavior that keeps a partially filled
//     destination buffer well-formed UTF-8 even when it was cut off
//     mid code point, and
//   - bridging to and from the single-byte Latin-1 subset of
//     Unicode (U+0000..U+00FF).
package transcode
