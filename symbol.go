package huffman

// Symbol represents one unit of the input alphabet.  Every byte value is a
// valid symbol; text and binary input are treated alike.
type Symbol byte

// NumSymbols is the size of the largest supported alphabet.
const NumSymbols = 256

// MaxSymbol is the maximum valid symbol.
const MaxSymbol = Symbol(NumSymbols - 1)
