// Package huffcoding implements a static Huffman coder for 7-bit symbols.
//
// Encoding happens in three passes over the input: a frequency pass that
// produces a sorted FrequencyTable, a two-queue merge that builds the Huffman
// tree from that table, and a packing pass that concatenates each symbol's
// Code and serializes the result MSB-first into bytes.
//
// The packed format has no header.  The first bits of the stream hold a
// padding prefix of zero or more 0 bits followed by a single 1 bit, sized so
// that the whole stream is a multiple of 8 bits long.  Decoding strips that
// prefix and walks the same tree that produced the codes, so the decoder must
// be given the tree (or be able to rebuild it from the original input).
//
// References:
//
//     <https://en.wikipedia.org/wiki/Huffman_coding#Compression>
//
//     <https://en.wikipedia.org/wiki/Huffman_coding#Construction>, two-queue method
//
package huffcoding
