// Command hufftree builds Huffman code trees and uses them to compress and
// decompress files.
//
// Usage:
//
//	hufftree freq [options] <input>                     byte histogram → frequency table
//	hufftree createcode [options] <freqs>               frequency table → tree file
//	hufftree encode [options] <tree> <input>            data → compressed bits
//	hufftree decode [options] <tree> <compressed>       compressed bits → data
//	hufftree roundtrip [options] <input>                compress and verify in memory
//
// Use "-" as an input path to read from stdin, and "-o -" to write to stdout.
package main

import (
	"fmt"
	"io"
	"os"
)

func main() {
	if err := run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "hufftree: %v\n", err)
		os.Exit(exitCode(err))
	}
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	if len(args) < 1 {
		printUsage(stderr)
		return errUsage
	}

	env := &environ{stdin: stdin, stdout: stdout, stderr: stderr}
	switch args[0] {
	case "freq":
		return runFreq(env, args[1:])
	case "createcode":
		return runCreateCode(env, args[1:])
	case "encode":
		return runEncode(env, args[1:])
	case "decode":
		return runDecode(env, args[1:])
	case "roundtrip":
		return runRoundTrip(env, args[1:])
	case "-h", "-help", "--help", "help":
		printUsage(stdout)
		return nil
	default:
		fmt.Fprintf(stderr, "hufftree: unknown command %q\n\n", args[0])
		printUsage(stderr)
		return errUsage
	}
}

func printUsage(w io.Writer) {
	fmt.Fprintf(w, `Usage:
  hufftree freq [options] <input>                Count byte frequencies
  hufftree createcode [options] <freqs>          Build a Huffman tree file
  hufftree encode [options] <tree> <input>       Compress a file
  hufftree decode [options] <tree> <compressed>  Decompress a file
  hufftree roundtrip [options] <input>           Compress and verify in memory

Use "-" as input to read from stdin, "-o -" to write to stdout.

Run "hufftree <command> -h" for command-specific options.
`)
}
