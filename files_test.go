package huffman

import (
	"bytes"
	"os"
	"path/filepath"
	"sort"
	"testing"
)

func listDir(t *testing.T, dir string) []string {
	t.Helper()
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("%v", err)
	}
	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		names = append(names, entry.Name())
	}
	sort.Strings(names)
	return names
}

func TestEncodeToFiles_Combined(t *testing.T) {
	c := NewCodec(nil)
	dir := t.TempDir()
	input := []byte(lipsum)
	huf := filepath.Join(dir, "lipsum.huf")
	dec := filepath.Join(dir, "lipsum.out")

	used, err := c.EncodeToFiles(input, huf, "")
	if err != nil {
		t.Fatalf("EncodeToFiles failed: %v", err)
	}

	e := mustEncode(t, c, input)
	expect, _ := e.MarshalBinary()
	actual, err := os.ReadFile(huf)
	if err != nil {
		t.Fatalf("%v", err)
	}
	if !bytes.Equal(expect, actual) {
		t.Errorf("combined file differs from MarshalBinary")
	}
	if used != len(actual) {
		t.Errorf("expected %d bytes used, got %d", len(actual), used)
	}

	out, err := c.DecodeFromFiles(huf, huf, dec)
	if err != nil {
		t.Fatalf("DecodeFromFiles failed: %v", err)
	}
	if !bytes.Equal(input, out) {
		t.Errorf("round trip mismatch")
	}
	written, err := os.ReadFile(dec)
	if err != nil {
		t.Fatalf("%v", err)
	}
	if !bytes.Equal(input, written) {
		t.Errorf("output file mismatch")
	}

	expectNames := []string{"lipsum.huf", "lipsum.out"}
	if names := listDir(t, dir); !equalStrings(expectNames, names) {
		t.Errorf("unexpected directory contents:\n\texpect: %q\n\tactual: %q", expectNames, names)
	}
}

func TestEncodeToFiles_Separate(t *testing.T) {
	c := NewCodec(nil)
	dir := t.TempDir()
	input := []byte("abcabcabc")
	tbl := filepath.Join(dir, "abc.tbl")
	dat := filepath.Join(dir, "abc.dat")

	used, err := c.EncodeToFiles(input, tbl, dat)
	if err != nil {
		t.Fatalf("EncodeToFiles failed: %v", err)
	}
	if used != 10 {
		t.Errorf("expected 10 bytes used, got %d", used)
	}

	tblData, _ := os.ReadFile(tbl)
	datData, _ := os.ReadFile(dat)
	if expect := []byte{3, 'a', 3, 'b', 3, 'c', 3}; !bytes.Equal(expect, tblData) {
		t.Errorf("wrong table file:\n\texpect: %#v\n\tactual: %#v", expect, tblData)
	}
	if expect := []byte{1, 0x4a, 0x52}; !bytes.Equal(expect, datData) {
		t.Errorf("wrong payload file:\n\texpect: %#v\n\tactual: %#v", expect, datData)
	}

	out, err := c.DecodeFromFiles(tbl, dat, "")
	if err != nil {
		t.Fatalf("DecodeFromFiles failed: %v", err)
	}
	if !bytes.Equal(input, out) {
		t.Errorf("round trip mismatch: %q", out)
	}
}

func TestEncodeToFiles_SeparateFailure(t *testing.T) {
	c := NewCodec(nil)
	dir := t.TempDir()
	tbl := filepath.Join(dir, "x.tbl")
	dat := filepath.Join(dir, "missing", "x.dat")

	if _, err := c.EncodeToFiles([]byte("abcabc"), tbl, dat); err == nil {
		t.Fatalf("expected an error writing the payload into a missing directory")
	}
	if _, err := os.Stat(tbl); !os.IsNotExist(err) {
		t.Errorf("table file exists after a failed payload write: %v", err)
	}
	if names := listDir(t, dir); len(names) != 0 {
		t.Errorf("unexpected directory contents: %q", names)
	}

	// An existing pair must survive a failed rewrite untouched.
	oldDat := filepath.Join(dir, "x.dat")
	if _, err := c.EncodeToFiles([]byte("xyzxyzxyz"), tbl, oldDat); err != nil {
		t.Fatalf("EncodeToFiles failed: %v", err)
	}
	expectTbl, _ := os.ReadFile(tbl)
	if _, err := c.EncodeToFiles([]byte("abcabc"), tbl, dat); err == nil {
		t.Fatalf("expected an error writing the payload into a missing directory")
	}
	actualTbl, _ := os.ReadFile(tbl)
	if !bytes.Equal(expectTbl, actualTbl) {
		t.Errorf("table file changed:\n\texpect: %#v\n\tactual: %#v", expectTbl, actualTbl)
	}
	out, err := c.DecodeFromFiles(tbl, oldDat, "")
	if err != nil || string(out) != "xyzxyzxyz" {
		t.Errorf("expected the old pair to decode, got %q, %v", out, err)
	}
	expectNames := []string{"x.dat", "x.tbl"}
	if names := listDir(t, dir); !equalStrings(expectNames, names) {
		t.Errorf("unexpected directory contents:\n\texpect: %q\n\tactual: %q", expectNames, names)
	}
}

func TestEncodeToFiles_Empty(t *testing.T) {
	c := NewCodec(nil)
	dir := t.TempDir()
	huf := filepath.Join(dir, "empty.huf")

	used, err := c.EncodeToFiles(nil, huf, "")
	if err != nil {
		t.Fatalf("EncodeToFiles failed: %v", err)
	}
	if used != 0 {
		t.Errorf("expected 0 bytes used, got %d", used)
	}
	info, err := os.Stat(huf)
	if err != nil {
		t.Fatalf("%v", err)
	}
	if info.Size() != 0 {
		t.Errorf("expected an empty file, got %d bytes", info.Size())
	}

	out, err := c.DecodeFromFiles(huf, "", "")
	if err != nil || len(out) != 0 {
		t.Errorf("expected empty output, got %q, %v", out, err)
	}
}

func TestEncodeFile(t *testing.T) {
	c := NewCodec(nil)
	dir := t.TempDir()
	src := filepath.Join(dir, "src.bin")
	huf := filepath.Join(dir, "src.huf")
	dst := filepath.Join(dir, "dst.bin")

	input := bytes.Repeat([]byte(lipsum), 10)
	if err := os.WriteFile(src, input, 0o644); err != nil {
		t.Fatalf("%v", err)
	}

	stats, err := c.EncodeFile(src, huf, "")
	if err != nil {
		t.Fatalf("EncodeFile failed: %v", err)
	}
	if stats.OriginalSize != len(input) {
		t.Errorf("expected original size %d, got %d", len(input), stats.OriginalSize)
	}
	if stats.Ratio() <= 1 {
		t.Errorf("expected a ratio above 1, got %f", stats.Ratio())
	}

	decStats, err := c.DecodeFile(huf, "", dst)
	if err != nil {
		t.Fatalf("DecodeFile failed: %v", err)
	}
	if decStats != stats {
		t.Errorf("stats differ:\n\texpect: %+v\n\tactual: %+v", stats, decStats)
	}
	out, _ := os.ReadFile(dst)
	if !bytes.Equal(input, out) {
		t.Errorf("round trip mismatch")
	}

	if (Stats{}).Ratio() != 0 {
		t.Errorf("expected ratio 0 for no bytes used")
	}
}

func TestFiles_Errors(t *testing.T) {
	c := NewCodec(nil)
	dir := t.TempDir()

	_, err := c.DecodeFromFiles(filepath.Join(dir, "missing.huf"), "", "")
	if !isErr(err, os.ErrNotExist) {
		t.Errorf("expected os.ErrNotExist, got %v", err)
	}

	_, err = c.EncodeFile(filepath.Join(dir, "missing.txt"), filepath.Join(dir, "x.huf"), "")
	if !isErr(err, os.ErrNotExist) {
		t.Errorf("expected os.ErrNotExist, got %v", err)
	}

	_, err = c.EncodeToFiles([]byte("abc"), filepath.Join(dir, "no", "such", "dir.huf"), "")
	if err == nil {
		t.Errorf("expected an error writing into a missing directory")
	}

	corrupt := filepath.Join(dir, "corrupt.huf")
	if err := os.WriteFile(corrupt, []byte{3, 'a', 3}, 0o644); err != nil {
		t.Fatalf("%v", err)
	}
	out := filepath.Join(dir, "corrupt.out")
	if _, err := c.DecodeFromFiles(corrupt, "", out); !isErr(err, ErrCorrupt) {
		t.Errorf("expected ErrCorrupt, got %v", err)
	}
	if _, err := os.Stat(out); !os.IsNotExist(err) {
		t.Errorf("output file was written for corrupt input")
	}

	expectNames := []string{"corrupt.huf"}
	if names := listDir(t, dir); !equalStrings(expectNames, names) {
		t.Errorf("unexpected directory contents:\n\texpect: %q\n\tactual: %q", expectNames, names)
	}
}

func equalStrings(a []string, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
