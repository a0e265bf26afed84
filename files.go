package huffman

import (
	"os"
	"path/filepath"

	"github.com/pkg/errors"
)

// Stats describes the sizes involved in one file operation.
type Stats struct {
	// OriginalSize is the length of the unencoded data.
	OriginalSize int

	// BytesUsed is the serialized size of table and payload.
	BytesUsed int
}

// Ratio returns OriginalSize / BytesUsed, or 0 if no bytes were used.
func (s Stats) Ratio() float64 {
	if s.BytesUsed == 0 {
		return 0
	}
	return float64(s.OriginalSize) / float64(s.BytesUsed)
}

// EncodeToFiles encodes input and writes the table to treePath and the
// payload to payloadPath.  If payloadPath is empty or names the same file as
// treePath, a single combined file is written instead.  Empty input produces
// empty files.
//
// It returns the number of bytes used, as Encoding.BytesUsed.
//
func (c *Codec) EncodeToFiles(input []byte, treePath string, payloadPath string) (int, error) {
	e, err := c.Encode(input)
	if err != nil {
		return 0, err
	}
	if combined(treePath, payloadPath) {
		if err := writeFile(treePath, e.TableBytes(), e.PayloadBytes()); err != nil {
			return 0, err
		}
		return e.BytesUsed, nil
	}
	err = writeFiles(
		fileOutput{path: treePath, chunks: [][]byte{e.TableBytes()}},
		fileOutput{path: payloadPath, chunks: [][]byte{e.PayloadBytes()}},
	)
	if err != nil {
		return 0, err
	}
	return e.BytesUsed, nil
}

// DecodeFromFiles reads the table from treePath and the payload from
// payloadPath, with the same combined-file rule as EncodeToFiles, and returns
// the decoded bytes.  If outputPath is not empty, the decoded bytes are also
// written there.
func (c *Codec) DecodeFromFiles(treePath string, payloadPath string, outputPath string) ([]byte, error) {
	out, _, err := c.decodeFiles(treePath, payloadPath)
	if err != nil {
		return nil, err
	}
	if outputPath != "" {
		if err := writeFile(outputPath, out); err != nil {
			return nil, err
		}
	}
	return out, nil
}

// EncodeFile reads srcPath in full and encodes it with EncodeToFiles.
func (c *Codec) EncodeFile(srcPath string, treePath string, payloadPath string) (Stats, error) {
	input, err := readFile(srcPath)
	if err != nil {
		return Stats{}, err
	}
	used, err := c.EncodeToFiles(input, treePath, payloadPath)
	if err != nil {
		return Stats{}, err
	}
	return Stats{OriginalSize: len(input), BytesUsed: used}, nil
}

// DecodeFile decodes with DecodeFromFiles and writes the result to dstPath.
// BytesUsed in the result is the total size of the files read.
func (c *Codec) DecodeFile(treePath string, payloadPath string, dstPath string) (Stats, error) {
	out, used, err := c.decodeFiles(treePath, payloadPath)
	if err != nil {
		return Stats{}, err
	}
	if err := writeFile(dstPath, out); err != nil {
		return Stats{}, err
	}
	return Stats{OriginalSize: len(out), BytesUsed: used}, nil
}

func (c *Codec) decodeFiles(treePath string, payloadPath string) ([]byte, int, error) {
	treeData, err := readFile(treePath)
	if err != nil {
		return nil, 0, err
	}
	if combined(treePath, payloadPath) {
		out, err := c.Decode(treeData)
		if err != nil {
			return nil, 0, errors.Wrapf(err, "huffman: decode %s", treePath)
		}
		return out, len(treeData), nil
	}

	payload, err := readFile(payloadPath)
	if err != nil {
		return nil, 0, err
	}
	out, err := c.DecodeParts(treeData, payload)
	if err != nil {
		return nil, 0, errors.Wrapf(err, "huffman: decode %s + %s", treePath, payloadPath)
	}
	return out, len(treeData) + len(payload), nil
}

func combined(treePath string, payloadPath string) bool {
	return payloadPath == "" || filepath.Clean(payloadPath) == filepath.Clean(treePath)
}

func readFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "huffman: read")
	}
	return data, nil
}

type fileOutput struct {
	path   string
	chunks [][]byte
}

// writeFile writes the concatenation of chunks to path.  See writeFiles.
func writeFile(path string, chunks ...[]byte) error {
	return writeFiles(fileOutput{path: path, chunks: chunks})
}

// writeFiles writes a group of files that are only meaningful together.
// Every file is first written in full to a temporary file in its destination
// directory; nothing is renamed into place until all writes have succeeded.
// If a rename fails, the files already renamed are removed again, so a
// failure never leaves one new file next to a stale partner.
func writeFiles(outputs ...fileOutput) error {
	tmpNames := make([]string, 0, len(outputs))
	for _, out := range outputs {
		tmpName, err := stageFile(out.path, out.chunks)
		if err != nil {
			removeAll(tmpNames)
			return err
		}
		tmpNames = append(tmpNames, tmpName)
	}

	for i, out := range outputs {
		if err := os.Rename(tmpNames[i], out.path); err != nil {
			for _, done := range outputs[:i] {
				os.Remove(done.path)
			}
			removeAll(tmpNames[i:])
			return errors.Wrap(err, "huffman: rename")
		}
	}
	return nil
}

// stageFile writes chunks to a new temporary file next to path and returns
// its name.  The temporary file is removed on error.
func stageFile(path string, chunks [][]byte) (tmpName string, err error) {
	f, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".tmp*")
	if err != nil {
		return "", errors.Wrap(err, "huffman: create")
	}
	tmpName = f.Name()
	defer func() {
		if err != nil {
			f.Close()
			os.Remove(tmpName)
		}
	}()

	for _, chunk := range chunks {
		if _, err = f.Write(chunk); err != nil {
			return "", errors.Wrapf(err, "huffman: write %s", path)
		}
	}
	if err = f.Chmod(0o644); err != nil {
		return "", errors.Wrapf(err, "huffman: chmod %s", path)
	}
	if err = f.Close(); err != nil {
		return "", errors.Wrapf(err, "huffman: close %s", path)
	}
	return tmpName, nil
}

func removeAll(names []string) {
	for _, name := range names {
		os.Remove(name)
	}
}
