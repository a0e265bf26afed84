// Command huffman compresses and decompresses files with a byte-oriented
// Huffman code.
//
//    huffman encode input.txt input.huf
//    huffman decode input.huf input.out
//    huffman -tree input.tbl encode input.txt input.dat
//
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/pkg/errors"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/chronos-tachyon/huffman/v2"
)

const logFlags = log.LstdFlags | log.Lmicroseconds | log.Lshortfile

var errUsage = errors.New("usage")

func main() {
	log.SetFlags(logFlags)
	err := run(os.Args[1:], os.Stdout, os.Stderr)
	if errors.Is(err, errUsage) {
		os.Exit(2)
	}
	if err != nil {
		log.Fatalf("%+v", err)
	}
}

func run(args []string, stdout io.Writer, stderr io.Writer) error {
	fs := flag.NewFlagSet("huffman", flag.ContinueOnError)
	fs.SetOutput(stderr)
	treePath := fs.String("tree", "", "keep the frequency table in this file instead of before the payload")
	verbose := fs.Bool("v", false, "verbosity")
	fs.Usage = func() {
		fmt.Fprintf(stderr, "usage: huffman [flags] encode|decode src dst\n")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return errUsage
	}
	if fs.NArg() != 3 {
		fs.Usage()
		return errUsage
	}

	var logger huffman.Logger
	if *verbose {
		logger = log.New(stderr, "", logFlags)
	}
	codec := huffman.NewCodec(logger)
	p := message.NewPrinter(language.English)

	command, src, dst := fs.Arg(0), fs.Arg(1), fs.Arg(2)
	switch command {
	case "encode", "en":
		tree, payload := dst, ""
		if *treePath != "" {
			tree, payload = *treePath, dst
		}
		stats, err := codec.EncodeFile(src, tree, payload)
		if err != nil {
			return err
		}
		p.Fprintf(stdout, "encoded %s (%d bytes) to %s (%d bytes): %.3f compression ratio\n",
			src, stats.OriginalSize, dst, stats.BytesUsed, stats.Ratio())

	case "decode", "de":
		tree, payload := src, ""
		if *treePath != "" {
			tree, payload = *treePath, src
		}
		stats, err := codec.DecodeFile(tree, payload, dst)
		if err != nil {
			return err
		}
		p.Fprintf(stdout, "decoded %s (%d bytes) to %s (%d bytes): %.3f compression ratio\n",
			src, stats.BytesUsed, dst, stats.OriginalSize, stats.Ratio())

	default:
		fmt.Fprintf(stderr, "unknown command %q\n", command)
		fs.Usage()
		return errUsage
	}
	return nil
}
