// Package huffman implements a byte-oriented Huffman compressor.
//
// The code is built from the symbol frequencies of the whole input.  Only the
// frequency table is stored; the decoder rebuilds the identical tree from it,
// so tree construction is fully deterministic.
//
// Serialized layout:
//
//     table:   n, then either 256 frequency bytes (n > 128)
//              or n (symbol, frequency) pairs
//     payload: pad count (0..7), then the code bits packed MSB-first
//
// The payload may be stored on its own or directly after the table.
//
// References:
//
//     <https://en.wikipedia.org/wiki/Huffman_coding>
//
package huffman
