package huffman

// Alphabets larger than this usually come from binary or already-compressed
// data, where most codes are close to 8 bits long.
const binaryAlphabetHint = 230

// estimateBits guesses the encoded size of numSymbols symbols drawn from an
// alphabet of alphabetSize symbols.  It is a capacity hint only.
func estimateBits(numSymbols int, alphabetSize int) int {
	bits := numSymbols * 5
	if alphabetSize > binaryAlphabetHint {
		bits = bits * 8 / 5
	}
	return bits
}

// estimateSymbols is the inverse of estimateBits.
func estimateSymbols(numBits int, alphabetSize int) int {
	if alphabetSize > binaryAlphabetHint {
		return numBits / 8
	}
	return numBits / 5
}
