package huffman

import (
	"encoding"
	"io"
	"log"
)

// Logger receives one line per encode or decode.  *log.Logger satisfies it.
type Logger interface {
	Printf(format string, v ...interface{})
}

// Codec runs the full encode and decode pipelines.  It holds no per-call
// state and may be shared.
type Codec struct {
	logger Logger
}

// NewCodec returns a Codec that reports to logger.  A nil logger discards.
func NewCodec(logger Logger) *Codec {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Codec{logger: logger}
}

// Encoding is the result of encoding a symbol sequence.
type Encoding struct {
	// Table holds the normalized symbol frequencies.
	Table FrequencyTable

	// Tree is the Huffman tree built from Table.
	Tree Tree

	// Codebook holds the code of every symbol in Tree.
	Codebook Codebook

	// Bits is the encoded input.
	Bits Bitstream

	// BytesUsed is the serialized size: table bytes, plus the pad count
	// byte, plus the packed bits.  It is 0 for empty input.
	BytesUsed int

	table []byte
}

// TableBytes returns the serialized frequency table.
func (e *Encoding) TableBytes() []byte {
	return e.table
}

// PayloadBytes returns the serialized payload, or nil for empty input.
func (e *Encoding) PayloadBytes() []byte {
	if e.Tree.Empty() {
		return nil
	}
	return e.Bits.Pack()
}

// MarshalBinary returns the combined form: the table immediately followed by
// the payload.
func (e *Encoding) MarshalBinary() ([]byte, error) {
	payload := e.PayloadBytes()
	out := make([]byte, 0, len(e.table)+len(payload))
	out = append(out, e.table...)
	out = append(out, payload...)
	return out, nil
}

var _ encoding.BinaryMarshaler = (*Encoding)(nil)

// Encode builds the code for symbols and encodes them.  Empty input is not an
// error: it yields an empty Encoding with BytesUsed == 0.
func (c *Codec) Encode(symbols []byte) (*Encoding, error) {
	if len(symbols) == 0 {
		c.logger.Printf("huffman: encode: empty input")
		return &Encoding{}, nil
	}

	table := NewFrequencyTable(symbols)
	tree := BuildTree(table)
	cb := NewCodebook(tree)
	bits, err := EncodeSymbols(&cb, symbols)
	if err != nil {
		return nil, err
	}
	raw, err := MarshalTable(table)
	if err != nil {
		return nil, err
	}

	e := &Encoding{
		Table:     table,
		Tree:      tree,
		Codebook:  cb,
		Bits:      bits,
		BytesUsed: len(raw) + 1 + len(bits.Bytes()),
		table:     raw,
	}
	c.logger.Printf("huffman: encode: %d symbols, alphabet %d (%s table), codes %d..%d bits, %d bytes used",
		len(symbols), table.Len(), tableForm(&table), cb.MinSize(), cb.MaxSize(), e.BytesUsed)
	return e, nil
}

// Decode decodes the combined form produced by Encoding.MarshalBinary.
func (c *Codec) Decode(data []byte) ([]byte, error) {
	table, n, err := ReadTable(data)
	if err != nil {
		return nil, err
	}
	return c.decode(table, data[n:])
}

// DecodeParts decodes a table and a payload stored separately.  The table
// must occupy all of tableData.
func (c *Codec) DecodeParts(tableData []byte, payload []byte) ([]byte, error) {
	table, n, err := ReadTable(tableData)
	if err != nil {
		return nil, err
	}
	if n != len(tableData) {
		return nil, corruptf("table: %d trailing bytes", len(tableData)-n)
	}
	return c.decode(table, payload)
}

func (c *Codec) decode(table FrequencyTable, payload []byte) ([]byte, error) {
	if table.Len() == 0 {
		if len(payload) != 0 {
			return nil, corruptf("payload: %d bytes but no table", len(payload))
		}
		c.logger.Printf("huffman: decode: empty input")
		return nil, nil
	}

	bits, err := Unpack(payload)
	if err != nil {
		return nil, err
	}
	if bits.Len() == 0 {
		return nil, corruptf("payload: no bits for a %d-symbol table", table.Len())
	}

	out, err := DecodeSymbols(BuildTree(table), bits)
	if err != nil {
		return nil, err
	}
	c.logger.Printf("huffman: decode: %d bits, alphabet %d (%s table), %d symbols",
		bits.Len(), table.Len(), tableForm(&table), len(out))
	return out, nil
}

func tableForm(t *FrequencyTable) string {
	if t.Dense() {
		return "dense"
	}
	return "sparse"
}
