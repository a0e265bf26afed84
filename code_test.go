package huffman

import (
	"testing"
)

func TestCode(t *testing.T) {
	hc, err := ParseCode("0110")
	if err != nil {
		t.Fatalf("ParseCode failed: %v", err)
	}
	if hc != MakeCode(4, 6) {
		t.Errorf("expected {4, 6}, got %#v", hc)
	}
	if expect, actual := "\"0110\"", hc.String(); expect != actual {
		t.Errorf("wrong string:\n\texpect: %s\n\tactual: %s", expect, actual)
	}
	for i, expect := range []byte{0, 1, 1, 0} {
		if actual := hc.Bit(i); expect != actual {
			t.Errorf("bit %d: expected %d, got %d", i, expect, actual)
		}
	}
	if expect, actual := "\"\"", (Code{}).String(); expect != actual {
		t.Errorf("wrong string:\n\texpect: %s\n\tactual: %s", expect, actual)
	}
	if _, err := ParseCode("012"); err == nil {
		t.Errorf("expected error for invalid bit")
	}
}

func TestCode_HasPrefix(t *testing.T) {
	type testRow struct {
		code   string
		prefix string
		expect bool
	}

	testData := [...]testRow{
		{code: "0110", prefix: "", expect: true},
		{code: "0110", prefix: "0", expect: true},
		{code: "0110", prefix: "011", expect: true},
		{code: "0110", prefix: "0110", expect: true},
		{code: "0110", prefix: "1", expect: false},
		{code: "0110", prefix: "010", expect: false},
		{code: "01", prefix: "0110", expect: false},
	}
	for _, row := range testData {
		t.Run(row.code+"/"+row.prefix, func(t *testing.T) {
			hc, _ := ParseCode(row.code)
			prefix, _ := ParseCode(row.prefix)
			if actual := hc.HasPrefix(prefix); row.expect != actual {
				t.Errorf("expected %v, got %v", row.expect, actual)
			}
		})
	}
}
