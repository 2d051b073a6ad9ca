// Command huff encodes and decodes 7-bit text files with a static Huffman
// code.
//
// The encoded file carries no header, so decoding rebuilds the tree from the
// original source file:
//
//    huff encode -source input.txt -out input.huff
//    huff decode -source input.txt -in input.huff -out input.out
//    huff dump -source input.txt
//
package main

import (
	"bufio"
	"bytes"
	"flag"
	"fmt"
	"io/ioutil"
	"log"
	"os"

	"github.com/pkg/errors"

	"github.com/chronos-tachyon/huffcoding"
)

var (
	source  = flag.String("source", "", "original text file the code is derived from")
	in      = flag.String("in", "", "encoded file to decode")
	out     = flag.String("out", "", "output file")
	verbose = flag.Bool("verbose", false, "verbosity")
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "usage: %s encode|decode|dump [flags]\n", os.Args[0])
		flag.PrintDefaults()
	}
	if len(os.Args) < 2 {
		flag.Usage()
		os.Exit(1)
	}
	cmd := os.Args[1]
	if err := flag.CommandLine.Parse(os.Args[2:]); err != nil {
		os.Exit(1)
	}
	if *source == "" {
		flag.Usage()
		os.Exit(1)
	}

	var err error
	switch cmd {
	case "encode":
		err = encodeFile(*source, *out)
	case "decode":
		err = decodeFile(*source, *in, *out)
	case "dump":
		err = dumpFile(*source)
	default:
		flag.Usage()
		os.Exit(1)
	}
	if err != nil {
		log.Fatalf("%v", err)
	}
}

// newEncoder derives the code for the file at sourcePath.  The file is read
// once, and the returned data is kept for the encoding pass.
func newEncoder(sourcePath string) (*huffcoding.Encoder, []byte, error) {
	data, err := ioutil.ReadFile(sourcePath)
	if err != nil {
		return nil, nil, errors.Wrap(err, "")
	}
	var e huffcoding.Encoder
	if err := e.Init(huffcoding.NewSymbolReader(bytes.NewReader(data))); err != nil {
		return nil, nil, errors.Wrap(err, sourcePath)
	}
	if *verbose {
		log.Printf("%s: %d symbols, %d distinct", sourcePath, len(data), e.Codes().Len())
	}
	return &e, data, nil
}

func encodeFile(sourcePath, outPath string) error {
	e, data, err := newEncoder(sourcePath)
	if err != nil {
		return err
	}

	// Encode into memory first so that a bad input never leaves a partial
	// output file behind.
	var buf bytes.Buffer
	if err := e.Encode(&buf, huffcoding.NewSymbolReader(bytes.NewReader(data))); err != nil {
		return errors.Wrap(err, sourcePath)
	}
	if err := writeOutput(outPath, buf.Bytes()); err != nil {
		return err
	}
	if *verbose {
		log.Printf("%s: %d bytes -> %d bytes", sourcePath, len(data), buf.Len())
	}
	return nil
}

func decodeFile(sourcePath, inPath, outPath string) error {
	e, _, err := newEncoder(sourcePath)
	if err != nil {
		return err
	}

	var d huffcoding.Decoder
	if err := d.Init(e.Tree()); err != nil {
		return errors.Wrap(err, sourcePath)
	}

	packed, err := readInput(inPath)
	if err != nil {
		return err
	}
	var buf bytes.Buffer
	if err := d.DecodeBytes(huffcoding.NewSymbolWriter(&buf), packed); err != nil {
		return errors.Wrap(err, inPath)
	}
	return writeOutput(outPath, buf.Bytes())
}

func dumpFile(sourcePath string) error {
	e, _, err := newEncoder(sourcePath)
	if err != nil {
		return err
	}
	w := bufio.NewWriter(os.Stdout)
	if _, err := e.Dump(w); err != nil {
		return errors.Wrap(err, "")
	}
	return errors.Wrap(w.Flush(), "")
}

// readInput reads the named file, or stdin if path is empty.
func readInput(path string) ([]byte, error) {
	if path == "" {
		data, err := ioutil.ReadAll(os.Stdin)
		return data, errors.Wrap(err, "stdin")
	}
	data, err := ioutil.ReadFile(path)
	return data, errors.Wrap(err, "")
}

// writeOutput writes data to the named file, or stdout if path is empty.
func writeOutput(path string, data []byte) error {
	if path == "" {
		_, err := os.Stdout.Write(data)
		return errors.Wrap(err, "stdout")
	}
	return errors.Wrap(ioutil.WriteFile(path, data, 0644), "")
}
